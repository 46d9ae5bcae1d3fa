// internal/app/features/home/home.go
package home

import (
	"net/http"

	businessstore "github.com/seftonweb/southportlocal/internal/app/store/businesses"
	categorystore "github.com/seftonweb/southportlocal/internal/app/store/categories"
	"github.com/seftonweb/southportlocal/internal/app/system/collections"
	"github.com/seftonweb/southportlocal/internal/app/system/viewdata"
	"github.com/seftonweb/southportlocal/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// featuredLimit caps the featured strip on the home page.
const featuredLimit = 6

// Handler provides home page handlers.
type Handler struct {
	businesses *businessstore.Store
	categories *categorystore.Store
	logger     *zap.Logger
}

// NewHandler creates a new home Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		businesses: businessstore.New(db),
		categories: categorystore.New(db),
		logger:     logger,
	}
}

// CategoryTile is one entry in the home page category grid.
type CategoryTile struct {
	Slug        string
	Name        string
	Description string
	Count       int
}

// HomeVM is the view model for the home page.
type HomeVM struct {
	viewdata.BaseVM
	Featured        []models.Business
	Categories      []CategoryTile
	LiveCollections []collections.Status
}

// Routes returns a chi.Router with home routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	return r
}

// Index renders the home page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vm := HomeVM{
		BaseVM: viewdata.NewBaseVM(r, "", "Independent local guide to Southport: restaurants, pubs, cafes, hotels, shopping and things to do."),
	}
	vm.CanonicalURL = viewdata.CanonicalFor("/")

	featured, err := h.businesses.ListFeatured(ctx, featuredLimit)
	if err != nil {
		h.logger.Warn("failed to load featured businesses", zap.Error(err))
	} else {
		vm.Featured = featured
	}

	cats, err := h.categories.GetAll(ctx)
	if err != nil {
		h.logger.Warn("failed to load categories", zap.Error(err))
	}
	counts, err := h.businesses.CountByCategory(ctx)
	if err != nil {
		h.logger.Warn("failed to count businesses by category", zap.Error(err))
		counts = map[string]int{}
	}
	for _, c := range cats {
		vm.Categories = append(vm.Categories, CategoryTile{
			Slug:        c.Slug,
			Name:        c.Name,
			Description: c.Description,
			Count:       counts[c.Slug],
		})
	}

	part := collections.Resolve(ctx, models.DefaultCollections, h.businesses, h.logger)
	vm.LiveCollections = part.Live

	templates.Render(w, r, "home/index", vm)
}
