package tagging

import (
	"context"

	"go.uber.org/zap"

	"github.com/seftonweb/southportlocal/internal/domain/models"
)

// TagWriter persists newly matched tags for one business. The businesses
// store satisfies this with an $addToSet update keyed by slug.
type TagWriter interface {
	AddTags(ctx context.Context, slug string, tags []string) error
}

// Summary reports the outcome of one classification sweep.
type Summary struct {
	Processed int
	Tagged    int // records that gained at least one tag
	Skipped   int // records matching no new rules
	Failed    int // records whose tag write failed
}

// Run classifies every business in the snapshot and persists new tags.
// Persistence failures are logged per record and do not abort the sweep;
// failed records are simply picked up on the next run.
func Run(ctx context.Context, businesses []models.Business, w TagWriter, logger *zap.Logger) Summary {
	var sum Summary
	for _, b := range businesses {
		sum.Processed++

		added := Classify(b)
		if len(added) == 0 {
			sum.Skipped++
			continue
		}

		if err := w.AddTags(ctx, b.Slug, added); err != nil {
			sum.Failed++
			logger.Warn("failed to store classifier tags",
				zap.String("slug", b.Slug),
				zap.Strings("tags", added),
				zap.Error(err))
			continue
		}

		sum.Tagged++
		logger.Debug("classifier tagged business",
			zap.String("slug", b.Slug),
			zap.Strings("tags", added))
	}

	logger.Info("tag classification sweep complete",
		zap.Int("processed", sum.Processed),
		zap.Int("tagged", sum.Tagged),
		zap.Int("skipped", sum.Skipped),
		zap.Int("failed", sum.Failed))
	return sum
}
