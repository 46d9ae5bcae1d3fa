// cmd/southportctl/cmd_photos.go
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	businessstore "github.com/seftonweb/southportlocal/internal/app/store/businesses"
	"github.com/seftonweb/southportlocal/internal/app/system/photos"
	"github.com/seftonweb/southportlocal/internal/app/system/timeouts"
)

var (
	photosAPIKey string
	photosBatch  int64
	photosDelay  time.Duration
)

// fetchPhotosCmd fills in photos for listings that have a Google Place ID
// but no image yet. One batch per invocation; run it repeatedly (or leave it
// to the server's background sweep) to work through a backlog.
var fetchPhotosCmd = &cobra.Command{
	Use:   "fetch-photos",
	Short: "Fetch listing photos from Google Places",
	RunE: func(cmd *cobra.Command, args []string) error {
		if photosAPIKey == "" {
			return fmt.Errorf("a Places API key is required (--api-key or SOUTHPORT_PLACES_API_KEY)")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeouts.Batch())
		defer cancel()

		client, db, err := connect(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		fetcher := photos.NewFetcher(photos.NewClient(photosAPIKey, logger), businessstore.New(db), logger).
			WithBatch(photosBatch, photosDelay)

		sum, err := fetcher.Sweep(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("processed %d listings: %d updated, %d without photos, %d failed\n",
			sum.Processed, sum.Updated, sum.NoPhoto, sum.Failed)
		return nil
	},
}

func init() {
	fetchPhotosCmd.Flags().StringVar(&photosAPIKey, "api-key", envOr("SOUTHPORT_PLACES_API_KEY", ""), "Google Places API key")
	fetchPhotosCmd.Flags().Int64Var(&photosBatch, "batch", photos.DefaultBatchSize, "listings to process in this run")
	fetchPhotosCmd.Flags().DurationVar(&photosDelay, "delay", photos.DefaultDelay, "pause between Places requests")
}
