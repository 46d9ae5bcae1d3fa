// internal/app/system/tasks/jobs.go
package tasks

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	businessstore "github.com/seftonweb/southportlocal/internal/app/store/businesses"
	contactstore "github.com/seftonweb/southportlocal/internal/app/store/contactlog"
	"github.com/seftonweb/southportlocal/internal/app/system/photos"
	"github.com/seftonweb/southportlocal/internal/app/system/tagging"
)

// ClassifySweepJob re-runs the tag classifier over the whole catalog. The
// classifier is additive and idempotent, so the nightly sweep only picks up
// listings whose text changed or that were imported without tags.
func ClassifySweepJob(db *mongo.Database, logger *zap.Logger) Job {
	return Job{
		Name:     "classify-sweep",
		Interval: 24 * time.Hour,
		Run: func(ctx context.Context) error {
			store := businessstore.New(db)
			businesses, err := store.GetAll(ctx)
			if err != nil {
				return err
			}
			tagging.Run(ctx, businesses, store, logger)
			return nil
		},
	}
}

// PhotoSweepJob fetches place photos for listings that are still missing one.
// Each run handles one batch, so the backlog drains gradually without
// hammering the Places API.
func PhotoSweepJob(fetcher *photos.Fetcher, logger *zap.Logger) Job {
	return Job{
		Name:     "photo-sweep",
		Interval: 6 * time.Hour,
		Run: func(ctx context.Context) error {
			sum, err := fetcher.Sweep(ctx)
			if err != nil {
				return err
			}
			if sum.Updated > 0 {
				logger.Info("photo sweep stored new images",
					zap.Int("updated", sum.Updated))
			}
			return nil
		},
	}
}

// ContactLogCleanupJob prunes contact submissions older than the retention
// window.
func ContactLogCleanupJob(db *mongo.Database, logger *zap.Logger, retention time.Duration) Job {
	return Job{
		Name:     "contact-log-cleanup",
		Interval: 24 * time.Hour,
		Run: func(ctx context.Context) error {
			store := contactstore.New(db)
			deleted, err := store.DeleteOlderThan(ctx, time.Now().UTC().Add(-retention))
			if err != nil {
				return err
			}
			if deleted > 0 {
				logger.Info("pruned old contact submissions",
					zap.Int64("deleted", deleted),
					zap.Duration("retention", retention))
			}
			return nil
		},
	}
}
