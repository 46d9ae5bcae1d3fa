// internal/app/features/guides/guides.go
package guides

import (
	"net/http"

	"github.com/seftonweb/southportlocal/internal/app/system/viewdata"
	"github.com/seftonweb/southportlocal/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// Handler serves the long-form guide pages. Guide bodies are hand-authored
// templates; the registry in the models package drives routing and listing.
type Handler struct {
	notFound http.HandlerFunc
}

// NewHandler creates a new guides Handler.
func NewHandler(notFound http.HandlerFunc) *Handler {
	return &Handler{notFound: notFound}
}

// IndexVM is the view model for the guide index.
type IndexVM struct {
	viewdata.BaseVM
	Guides []models.Guide
}

// ShowVM is the view model for a single guide page.
type ShowVM struct {
	viewdata.BaseVM
	Guide models.Guide
}

// Routes returns a chi.Router with guide routes mounted at /guides.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	r.Get("/{slug}", h.Show)
	return r
}

// Index lists the published guides, newest first.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	vm := IndexVM{
		BaseVM: viewdata.NewBaseVM(r, "Guides", "Long-form local guides to Southport: weekends, shopping, walks and days out."),
		Guides: models.Guides,
	}
	vm.CanonicalURL = viewdata.CanonicalFor("/guides")

	templates.Render(w, r, "guides/index", vm)
}

// Show renders one guide. Each guide body is its own template named after
// the guide slug.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	guide, ok := models.GuideBySlug(slug)
	if !ok {
		h.notFound(w, r)
		return
	}

	vm := ShowVM{
		BaseVM: viewdata.NewBaseVM(r, guide.Title, guide.MetaDescription),
		Guide:  guide,
	}
	vm.CanonicalURL = viewdata.CanonicalFor("/guides/" + guide.Slug)

	templates.Render(w, r, "guides/"+guide.Slug, vm)
}
