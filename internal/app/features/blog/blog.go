// internal/app/features/blog/blog.go
package blog

import (
	"net/http"

	"github.com/seftonweb/southportlocal/internal/app/system/viewdata"
	"github.com/seftonweb/southportlocal/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// Handler serves the dated blog posts. Like guides, post bodies are
// hand-authored templates and the registry drives routing.
type Handler struct {
	notFound http.HandlerFunc
}

// NewHandler creates a new blog Handler.
func NewHandler(notFound http.HandlerFunc) *Handler {
	return &Handler{notFound: notFound}
}

// IndexVM is the view model for the blog index.
type IndexVM struct {
	viewdata.BaseVM
	Posts []models.BlogPost
}

// ShowVM is the view model for a single post.
type ShowVM struct {
	viewdata.BaseVM
	Post models.BlogPost
}

// Routes returns a chi.Router with blog routes mounted at /blog.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	r.Get("/{slug}", h.Show)
	return r
}

// Index lists the published posts, newest first.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	vm := IndexVM{
		BaseVM: viewdata.NewBaseVM(r, "Blog", "News and notes from around Southport: openings, events and what's on."),
		Posts:  models.BlogPosts,
	}
	vm.CanonicalURL = viewdata.CanonicalFor("/blog")

	templates.Render(w, r, "blog/index", vm)
}

// Show renders one post, template named after the post slug.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, ok := models.BlogPostBySlug(slug)
	if !ok {
		h.notFound(w, r)
		return
	}

	vm := ShowVM{
		BaseVM: viewdata.NewBaseVM(r, post.Title, post.MetaDescription),
		Post:   post,
	}
	vm.CanonicalURL = viewdata.CanonicalFor("/blog/" + post.Slug)

	templates.Render(w, r, "blog/"+post.Slug, vm)
}
