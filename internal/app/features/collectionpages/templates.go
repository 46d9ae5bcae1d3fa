// internal/app/features/collectionpages/templates.go
package collectionpages

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "collectionpages",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
