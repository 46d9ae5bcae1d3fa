package testutil

import (
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/seftonweb/southportlocal/internal/app/resources"
)

var (
	bootOnce sync.Once
	bootErr  error
)

// BootTemplatesOnce boots the template engine for tests: the shared set plus
// whatever feature sets have registered via init(). Safe to call from every
// test; only the first call does work.
func BootTemplatesOnce() error {
	bootOnce.Do(func() {
		resources.LoadSharedTemplates()

		eng := templates.New(false)
		logger := zap.NewNop()

		bootErr = eng.Boot(logger)
		if bootErr != nil {
			return
		}
		templates.UseEngine(eng, logger)
	})
	return bootErr
}

// MustBootTemplates calls BootTemplatesOnce and fails the test on error.
func MustBootTemplates(t interface{ Fatalf(string, ...any) }) {
	if err := BootTemplatesOnce(); err != nil {
		t.Fatalf("failed to boot templates: %v", err)
	}
}
