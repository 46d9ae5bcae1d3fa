// internal/app/features/events/events.go
package events

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

// Handler serves event landing pages. Currently there is one: accommodation
// for The Open at Royal Birkdale. It reuses the collection machinery but has
// its own route and template.
type Handler struct {
	businesses *businessstore.Store
	errLog     *errorsfeature.ErrorLogger
	logger     *zap.Logger
}

// NewHandler creates a new events Handler.
func NewHandler(db *mongo.Database, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		businesses: businessstore.New(db),
		errLog:     errLog,
		logger:     logger,
	}
}

// OpenVM is the view model for the Open accommodation page.
type OpenVM struct {
	viewdata.BaseVM
	Collection models.Collection
	ComingSoon bool
	Businesses []models.Business
}

// Routes returns a chi.Router serving the event page. Mounted in bootstrap
// at /the-open-accommodation.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.OpenAccommodation)
	return r
}

// OpenAccommodation renders the golf week accommodation page.
func (h *Handler) OpenAccommodation(w http.ResponseWriter, r *http.Request) {
	def := models.OpenAccommodation
	status := collections.ResolveOne(r.Context(), def, h.businesses, h.logger)

	vm := OpenVM{
		BaseVM:     viewdata.NewBaseVM(r, def.Title, def.MetaDescription),
		Collection: def,
		ComingSoon: !status.Live,
	}
	vm.CanonicalURL = viewdata.CanonicalFor("/the-open-accommodation")

	if status.Live {
		businesses, err := h.businesses.ListByTags(r.Context(), def.Tags, def.CategorySlugs)
		if err != nil {
			h.errLog.Log(r, "failed to list accommodation for event page", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		ranking.Sort(businesses)
		vm.Businesses = businesses
	} else {
		vm.Noindex = true
	}

	templates.Render(w, r, "events/open_accommodation", vm)
}
