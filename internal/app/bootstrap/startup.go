// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/seftonweb/southportlocal/internal/app/resources"
	businessstore "github.com/seftonweb/southportlocal/internal/app/store/businesses"
	"github.com/seftonweb/southportlocal/internal/app/system/photos"
	"github.com/seftonweb/southportlocal/internal/app/system/tasks"
	"github.com/seftonweb/southportlocal/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs after the database and schema are ready but before requests
// are served. It registers the shared templates, applies timeout overrides
// and launches the background jobs. A non-nil error aborts the server.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	// Allow per-environment timeout overrides (SOUTHPORT_TIMEOUT_*).
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("applied timeout overrides from environment", zap.Int("count", n))
	}

	startTaskRunner(appCfg, deps, logger)

	return nil
}

// taskRunner is kept at package level so Shutdown can stop it.
var taskRunner *tasks.Runner

func startTaskRunner(appCfg AppConfig, deps DBDeps, logger *zap.Logger) {
	db := deps.MongoDatabase
	taskRunner = tasks.New(logger)

	// Re-run the tag classifier so edited listings pick up collection tags.
	taskRunner.Register(tasks.ClassifySweepJob(db, logger))

	// Remove stored enquiries past the retention window.
	taskRunner.Register(tasks.ContactLogCleanupJob(db, logger, appCfg.ContactRetention))

	// Fill in listing photos from Google Places, if a key is configured.
	if appCfg.PlacesAPIKey != "" {
		client := photos.NewClient(appCfg.PlacesAPIKey, logger)
		fetcher := photos.NewFetcher(client, businessstore.New(db), logger)
		taskRunner.Register(tasks.PhotoSweepJob(fetcher, logger))
	} else {
		logger.Info("places_api_key not set; photo sweep disabled")
	}

	taskRunner.Start()
}
