// internal/app/features/guides/templates.go
package guides

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "guides",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
