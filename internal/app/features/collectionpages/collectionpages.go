// internal/app/features/collectionpages/collectionpages.go
package collectionpages

import (
	"net/http"

	errorsfeature "github.com/seftonweb/southportlocal/internal/app/features/errors"
	businessstore "github.com/seftonweb/southportlocal/internal/app/store/businesses"
	"github.com/seftonweb/southportlocal/internal/app/system/collections"
	"github.com/seftonweb/southportlocal/internal/app/system/ranking"
	"github.com/seftonweb/southportlocal/internal/app/system/viewdata"
	"github.com/seftonweb/southportlocal/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the curated collection index and individual collection pages.
type Handler struct {
	businesses *businessstore.Store
	errLog     *errorsfeature.ErrorLogger
	notFound   http.HandlerFunc
	logger     *zap.Logger
}

// NewHandler creates a new collections Handler.
func NewHandler(db *mongo.Database, errLog *errorsfeature.ErrorLogger, notFound http.HandlerFunc, logger *zap.Logger) *Handler {
	return &Handler{
		businesses: businessstore.New(db),
		errLog:     errLog,
		notFound:   notFound,
		logger:     logger,
	}
}

// IndexVM is the view model for the collections index page.
type IndexVM struct {
	viewdata.BaseVM
	Live       []collections.Status
	ComingSoon []collections.Status
}

// ShowVM is the view model for a single collection page.
type ShowVM struct {
	viewdata.BaseVM
	Collection models.Collection
	Count      int
	ComingSoon bool
	Businesses []models.Business
}

// Routes returns a chi.Router with collection routes mounted at /collections.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	r.Get("/{slug}", h.Show)
	return r
}

// Index renders every configured collection, live ones first.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	part := collections.Resolve(r.Context(), models.DefaultCollections, h.businesses, h.logger)

	vm := IndexVM{
		BaseVM:     viewdata.NewBaseVM(r, "Collections", "Curated collections of the best places in Southport, from dog-friendly dining to live music nights."),
		Live:       part.Live,
		ComingSoon: part.ComingSoon,
	}
	vm.CanonicalURL = viewdata.CanonicalFor("/collections")

	templates.Render(w, r, "collectionpages/index", vm)
}

// Show renders one collection. A collection that has not reached its minimum
// listing count renders as a noindexed "coming soon" page rather than a 404,
// so the URL is stable from day one.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	def, ok := models.CollectionBySlug(slug)
	if !ok {
		h.notFound(w, r)
		return
	}

	status := collections.ResolveOne(r.Context(), def, h.businesses, h.logger)

	vm := ShowVM{
		BaseVM:     viewdata.NewBaseVM(r, def.Title, def.MetaDescription),
		Collection: def,
		Count:      status.Count,
		ComingSoon: !status.Live,
	}
	vm.CanonicalURL = viewdata.CanonicalFor("/collections/" + def.Slug)

	if !status.Live {
		vm.Noindex = true
		templates.Render(w, r, "collectionpages/show", vm)
		return
	}

	businesses, err := h.businesses.ListByTags(r.Context(), def.Tags, def.CategorySlugs)
	if err != nil {
		h.errLog.Log(r, "failed to list collection businesses", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ranking.Sort(businesses)
	vm.Businesses = businesses

	templates.Render(w, r, "collectionpages/show", vm)
}
