package photos

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/seftonweb/southportlocal/internal/domain/models"
)

// DefaultBatchSize bounds how many listings one sweep touches, keeping API
// usage predictable.
const DefaultBatchSize = 5

// DefaultDelay is the pause between Places requests within a batch.
const DefaultDelay = 2 * time.Second

// PhotoStore is the slice of the businesses store the fetcher needs.
type PhotoStore interface {
	ListMissingPhotos(ctx context.Context, limit int64) ([]models.Business, error)
	SetPhoto(ctx context.Context, slug, imageURL string) error
}

// Resolver resolves a photo URL for a place. *Client implements this; tests
// supply a stub.
type Resolver interface {
	PhotoURL(ctx context.Context, placeID string) (string, error)
}

// Summary reports the outcome of one photo sweep.
type Summary struct {
	Processed int
	Updated   int
	NoPhoto   int
	Failed    int
}

// Fetcher works through listings that have a place ID but no image yet.
type Fetcher struct {
	resolver  Resolver
	store     PhotoStore
	logger    *zap.Logger
	batchSize int64
	delay     time.Duration
}

// NewFetcher creates a Fetcher with the default batch size and delay.
func NewFetcher(resolver Resolver, store PhotoStore, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		resolver:  resolver,
		store:     store,
		logger:    logger,
		batchSize: DefaultBatchSize,
		delay:     DefaultDelay,
	}
}

// WithBatch overrides batch size and inter-request delay. Used by the CLI and
// tests.
func (f *Fetcher) WithBatch(size int64, delay time.Duration) *Fetcher {
	if size > 0 {
		f.batchSize = size
	}
	f.delay = delay
	return f
}

// Sweep fetches a photo for one batch of listings. Per-listing failures are
// logged and counted; the sweep carries on so one bad place ID cannot stall
// the backlog.
func (f *Fetcher) Sweep(ctx context.Context) (Summary, error) {
	var sum Summary

	businesses, err := f.store.ListMissingPhotos(ctx, f.batchSize)
	if err != nil {
		return sum, err
	}

	for i, b := range businesses {
		if i > 0 && f.delay > 0 {
			select {
			case <-ctx.Done():
				return sum, ctx.Err()
			case <-time.After(f.delay):
			}
		}

		sum.Processed++

		photoURL, err := f.resolver.PhotoURL(ctx, b.GooglePlaceID)
		if errors.Is(err, ErrNoPhoto) {
			sum.NoPhoto++
			f.logger.Debug("place has no photo",
				zap.String("slug", b.Slug),
				zap.String("place_id", b.GooglePlaceID))
			continue
		}
		if err != nil {
			sum.Failed++
			f.logger.Warn("photo lookup failed",
				zap.String("slug", b.Slug),
				zap.String("place_id", b.GooglePlaceID),
				zap.Error(err))
			continue
		}

		if err := f.store.SetPhoto(ctx, b.Slug, photoURL); err != nil {
			sum.Failed++
			f.logger.Warn("failed to store photo url",
				zap.String("slug", b.Slug),
				zap.Error(err))
			continue
		}

		sum.Updated++
	}

	f.logger.Info("photo sweep complete",
		zap.Int("processed", sum.Processed),
		zap.Int("updated", sum.Updated),
		zap.Int("no_photo", sum.NoPhoto),
		zap.Int("failed", sum.Failed))

	return sum, nil
}
