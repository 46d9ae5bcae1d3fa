// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	categorystore "github.com/seftonweb/southportlocal/internal/app/store/categories"
	"github.com/seftonweb/southportlocal/internal/domain/models"
)

// SeedAll seeds default data if not already present.
func SeedAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if err := seedCategories(ctx, db, logger); err != nil {
		return err
	}
	return nil
}

// seedCategories creates the directory categories if they don't exist.
// Existing categories keep any operator edits; only missing slugs are added.
func seedCategories(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := categorystore.New(db)

	for _, cat := range models.DefaultCategories {
		exists, err := store.Exists(ctx, cat.Slug)
		if err != nil {
			logger.Error("failed to check if category exists",
				zap.String("slug", cat.Slug),
				zap.Error(err))
			return err
		}
		if !exists {
			if err := store.Upsert(ctx, cat); err != nil {
				logger.Error("failed to seed category",
					zap.String("slug", cat.Slug),
					zap.Error(err))
				return err
			}
			logger.Info("seeded category", zap.String("slug", cat.Slug))
		}
	}

	return nil
}
