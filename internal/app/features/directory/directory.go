// internal/app/features/directory/directory.go
package directory

import (
	"html/template"
	"net/http"

	errorsfeature "github.com/seftonweb/southportlocal/internal/app/features/errors"
	businessstore "github.com/seftonweb/southportlocal/internal/app/store/businesses"
	categorystore "github.com/seftonweb/southportlocal/internal/app/store/categories"
	"github.com/seftonweb/southportlocal/internal/app/system/htmlsanitize"
	"github.com/seftonweb/southportlocal/internal/app/system/ranking"
	"github.com/seftonweb/southportlocal/internal/app/system/viewdata"
	"github.com/seftonweb/southportlocal/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides the public directory pages: category listings and
// individual business pages.
type Handler struct {
	businesses *businessstore.Store
	categories *categorystore.Store
	errLog     *errorsfeature.ErrorLogger
	notFound   http.HandlerFunc
	logger     *zap.Logger
}

// NewHandler creates a new directory Handler. notFound renders the site 404
// page so unknown categories and businesses share it.
func NewHandler(db *mongo.Database, errLog *errorsfeature.ErrorLogger, notFound http.HandlerFunc, logger *zap.Logger) *Handler {
	return &Handler{
		businesses: businessstore.New(db),
		categories: categorystore.New(db),
		errLog:     errLog,
		notFound:   notFound,
		logger:     logger,
	}
}

// CategoryVM is the view model for a category listing page.
type CategoryVM struct {
	viewdata.BaseVM
	Category   models.Category
	Businesses []models.Business
}

// BusinessVM is the view model for a single business page.
type BusinessVM struct {
	viewdata.BaseVM
	Category models.Category
	Business models.Business
	LongHTML template.HTML
}

// Routes returns the directory routes. These are mounted at the site root,
// after every fixed route, so /{category} only sees paths nothing else
// claimed.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/{category}", h.ShowCategory)
	r.Get("/{category}/{business}", h.ShowBusiness)
	return r
}

// ShowCategory renders the ranked listing page for one category.
func (h *Handler) ShowCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "category")

	cat, err := h.categories.GetBySlug(r.Context(), slug)
	if err == mongo.ErrNoDocuments {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.errLog.Log(r, "failed to load category", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	businesses, err := h.businesses.ListByCategory(r.Context(), cat.Slug)
	if err != nil {
		h.errLog.Log(r, "failed to list businesses", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ranking.Sort(businesses)

	vm := CategoryVM{
		BaseVM:     viewdata.NewBaseVM(r, cat.Name, cat.MetaDescription),
		Category:   cat,
		Businesses: businesses,
	}
	vm.CanonicalURL = viewdata.CanonicalFor("/" + cat.Slug)

	templates.Render(w, r, "directory/category", vm)
}

// ShowBusiness renders a single business page. The category segment in the
// URL must match the business's own category, otherwise 404.
func (h *Handler) ShowBusiness(w http.ResponseWriter, r *http.Request) {
	categorySlug := chi.URLParam(r, "category")
	businessSlug := chi.URLParam(r, "business")

	biz, err := h.businesses.GetBySlug(r.Context(), businessSlug)
	if err == mongo.ErrNoDocuments {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.errLog.Log(r, "failed to load business", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if biz.CategorySlug != categorySlug {
		h.notFound(w, r)
		return
	}

	cat, err := h.categories.GetBySlug(r.Context(), categorySlug)
	if err != nil && err != mongo.ErrNoDocuments {
		h.errLog.Log(r, "failed to load category for business", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	meta := biz.ShortDescription
	if meta == "" {
		meta = biz.Name + " in Southport: address, contact details and visitor information."
	}

	vm := BusinessVM{
		BaseVM:   viewdata.NewBaseVM(r, biz.Name, meta),
		Category: cat,
		Business: biz,
		LongHTML: htmlsanitize.PrepareForDisplay(biz.LongDescription),
	}
	vm.CanonicalURL = viewdata.CanonicalFor("/" + biz.CategorySlug + "/" + biz.Slug)

	templates.Render(w, r, "directory/business", vm)
}
