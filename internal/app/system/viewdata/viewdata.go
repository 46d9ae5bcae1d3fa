// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"

	"github.com/seftonweb/southportlocal/internal/app/system/auth"
	"github.com/seftonweb/southportlocal/internal/domain/models"
)

// NavCategory is one entry in the site navigation menu.
type NavCategory struct {
	Slug string
	Name string
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "Meta description for search"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Site identity (from config)
	SiteName string

	// Page context
	Title           string
	MetaDescription string
	CanonicalURL    string
	Noindex         bool
	CurrentPath     string
	BackURL         string

	// Navigation
	NavCategories []NavCategory

	// Admin context (from auth middleware)
	IsAdmin    bool
	AdminEmail string

	// Security
	CSRFToken string // CSRF token for forms (use in hidden input field)
}

var (
	siteName = models.DefaultSiteName
	baseURL  string
)

// NavLoader is a function that loads the navigation categories.
// This is set by bootstrap to avoid circular dependencies.
type NavLoader func(ctx context.Context) []NavCategory

var navLoader NavLoader

// Init sets the site identity used on every page.
// Call this once at startup from bootstrap.
func Init(name, canonicalBase string) {
	if name != "" {
		siteName = name
	}
	baseURL = strings.TrimRight(canonicalBase, "/")
}

// SetNavLoader sets the function used to load the navigation categories.
// Call this once at startup from bootstrap after the category store is available.
func SetNavLoader(loader NavLoader) {
	navLoader = loader
}

// SiteName returns the configured site name.
func SiteName() string {
	return siteName
}

// CanonicalFor returns the absolute canonical URL for a site path.
// Returns the bare path when no base URL is configured (dev mode).
func CanonicalFor(path string) string {
	if baseURL == "" {
		return path
	}
	return baseURL + path
}

// NewBaseVM creates a fully populated BaseVM for a page.
// This is the preferred way to create a BaseVM for embedding in view models.
func NewBaseVM(r *http.Request, title, metaDescription string) BaseVM {
	vm := BaseVM{
		SiteName:        siteName,
		Title:           title,
		MetaDescription: metaDescription,
		CanonicalURL:    CanonicalFor(r.URL.Path),
		CurrentPath:     httpnav.CurrentPath(r),
		BackURL:         httpnav.ResolveBackURL(r, "/"),
		CSRFToken:       csrf.Token(r),
	}

	if admin, ok := auth.CurrentAdmin(r); ok {
		vm.IsAdmin = true
		vm.AdminEmail = admin.Email
	}

	if navLoader != nil {
		vm.NavCategories = navLoader(r.Context())
	}

	return vm
}

// NewAdminVM creates a BaseVM for an admin page. Admin pages are never
// indexed and skip the public navigation.
func NewAdminVM(r *http.Request, title string) BaseVM {
	vm := NewBaseVM(r, title, "")
	vm.Noindex = true
	vm.NavCategories = nil
	return vm
}
