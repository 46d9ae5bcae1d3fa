// internal/app/resources/resources.go
package resources

import (
	"embed"
	"io/fs"
	"net/http"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

// Embed the shared template set: the site_header/site_footer layout pair and
// the partials (business_card, flash_error) that feature templates invoke.
//
//go:embed templates/*.gohtml
var sharedFS embed.FS

// Site-wide stylesheet and script, served at /assets.
//
//go:embed assets/css/*.css assets/js/*.js
var assetsFS embed.FS

var registerOnce sync.Once

// LoadSharedTemplates registers the shared set with the waffle template
// engine. Must run before templates.Boot() in BuildHandler; features parse
// against the shared partials.
func LoadSharedTemplates() {
	registerOnce.Do(func() {
		templates.Register(templates.Set{
			Name:     "shared",
			FS:       sharedFS,
			Patterns: []string{"templates/*.gohtml"},
		})
	})
}

// Assets returns the embedded assets filesystem rooted at assets/.
func Assets() fs.FS {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic("assets subdirectory missing from embed: " + err.Error())
	}
	return sub
}

// AssetsHandler serves the embedded assets under the given URL prefix.
func AssetsHandler(prefix string) http.Handler {
	return http.StripPrefix(prefix, http.FileServer(http.FS(Assets())))
}
