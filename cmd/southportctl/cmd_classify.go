// cmd/southportctl/cmd_classify.go
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	businessstore "github.com/seftonweb/southportlocal/internal/app/store/businesses"
	"github.com/seftonweb/southportlocal/internal/app/system/tagging"
	"github.com/seftonweb/southportlocal/internal/app/system/timeouts"
)

// classifyCmd runs the tag classifier over every listing. The server runs
// the same sweep on a schedule; this command exists for one-off runs after
// a bulk import or a rule change.
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Run the tag classifier over all listings",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeouts.Batch())
		defer cancel()

		client, db, err := connect(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		store := businessstore.New(db)
		all, err := store.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("load listings: %w", err)
		}

		sum := tagging.Run(ctx, all, store, logger)
		fmt.Printf("classified %d listings: %d tagged, %d unchanged, %d failed\n",
			sum.Processed, sum.Tagged, sum.Skipped, sum.Failed)
		return nil
	},
}
