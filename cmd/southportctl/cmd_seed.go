// cmd/southportctl/cmd_seed.go
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seftonweb/southportlocal/internal/app/system/indexes"
	"github.com/seftonweb/southportlocal/internal/app/system/seeding"
	"github.com/seftonweb/southportlocal/internal/app/system/timeouts"
	"github.com/seftonweb/southportlocal/internal/app/system/validators"
)

// seedCmd prepares a fresh database: collections, validators, indexes and
// the default category set. Safe to re-run; every step is idempotent.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create collections, indexes and the default category set",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeouts.Batch())
		defer cancel()

		client, db, err := connect(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		if err := validators.EnsureAll(ctx, db); err != nil {
			return fmt.Errorf("ensure validators: %w", err)
		}
		if err := indexes.EnsureAll(ctx, db); err != nil {
			return fmt.Errorf("ensure indexes: %w", err)
		}
		if err := seeding.SeedAll(ctx, db, logger); err != nil {
			return fmt.Errorf("seed default data: %w", err)
		}

		fmt.Printf("database %q ready\n", mongoDB)
		return nil
	},
}
