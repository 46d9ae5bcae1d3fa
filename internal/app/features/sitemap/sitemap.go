// internal/app/features/sitemap/sitemap.go
package sitemap

import (
	"encoding/xml"
	"net/http"

	errorsfeature "github.com/seftonweb/southportlocal/internal/app/features/errors"
	businessstore "github.com/seftonweb/southportlocal/internal/app/store/businesses"
	categorystore "github.com/seftonweb/southportlocal/internal/app/store/categories"
	"github.com/seftonweb/southportlocal/internal/app/system/collections"
	"github.com/seftonweb/southportlocal/internal/app/system/viewdata"
	"github.com/seftonweb/southportlocal/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves sitemap.xml and robots.txt. Only live, indexable URLs are
// listed: coming-soon collections stay out until they cross their threshold.
type Handler struct {
	businesses *businessstore.Store
	categories *categorystore.Store
	errLog     *errorsfeature.ErrorLogger
	logger     *zap.Logger
}

// NewHandler creates a new sitemap Handler.
func NewHandler(db *mongo.Database, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		businesses: businessstore.New(db),
		categories: categorystore.New(db),
		errLog:     errLog,
		logger:     logger,
	}
}

// Routes returns the sitemap routes, mounted at the site root.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/sitemap.xml", h.Sitemap)
	r.Get("/robots.txt", h.Robots)
	return r
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []urlEntry
}

type urlEntry struct {
	XMLName xml.Name `xml:"url"`
	Loc     string   `xml:"loc"`
}

// Sitemap writes the full sitemap.
func (h *Handler) Sitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	set := urlset{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	add := func(path string) {
		set.URLs = append(set.URLs, urlEntry{Loc: viewdata.CanonicalFor(path)})
	}

	add("/")
	add("/collections")
	add("/guides")
	add("/blog")
	add("/contact")

	cats, err := h.categories.GetAll(ctx)
	if err != nil {
		h.errLog.Log(r, "sitemap: failed to list categories", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	for _, c := range cats {
		add("/" + c.Slug)
	}

	businesses, err := h.businesses.GetAll(ctx)
	if err != nil {
		h.errLog.Log(r, "sitemap: failed to list businesses", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	for _, b := range businesses {
		add("/" + b.CategorySlug + "/" + b.Slug)
	}

	part := collections.Resolve(ctx, models.DefaultCollections, h.businesses, h.logger)
	for _, st := range part.Live {
		add("/collections/" + st.Collection.Slug)
	}
	if st := collections.ResolveOne(ctx, models.OpenAccommodation, h.businesses, h.logger); st.Live {
		add("/the-open-accommodation")
	}

	for _, g := range models.Guides {
		add("/guides/" + g.Slug)
	}
	for _, p := range models.BlogPosts {
		add("/blog/" + p.Slug)
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write([]byte(xml.Header))
	if err := xml.NewEncoder(w).Encode(set); err != nil {
		h.logger.Warn("sitemap encode failed", zap.Error(err))
	}
}

// Robots writes robots.txt, pointing crawlers at the sitemap and keeping them
// out of the admin area.
func (h *Handler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	body := "User-agent: *\n" +
		"Disallow: /admin/\n" +
		"Sitemap: " + viewdata.CanonicalFor("/sitemap.xml") + "\n"
	w.Write([]byte(body))
}
