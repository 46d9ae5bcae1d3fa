// cmd/southportctl/cmd_import.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	businessstore "github.com/seftonweb/southportlocal/internal/app/store/businesses"
	categorystore "github.com/seftonweb/southportlocal/internal/app/store/categories"
	"github.com/seftonweb/southportlocal/internal/app/system/importing"
	"github.com/seftonweb/southportlocal/internal/app/system/timeouts"
)

// importCSVCmd bulk-loads listings from a CSV export. Rows are upserted by
// slug, so re-running the same file updates rather than duplicates.
var importCSVCmd = &cobra.Command{
	Use:   "import-csv <file>",
	Short: "Import listings from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), timeouts.Batch())
		defer cancel()

		client, db, err := connect(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		importer := importing.New(businessstore.New(db), categorystore.New(db), logger)
		sum, err := importer.Run(ctx, f)
		if err != nil {
			return err
		}

		fmt.Printf("imported %d of %d rows (%d skipped, %d failed)\n",
			sum.Imported, sum.Rows, sum.Skipped, sum.Failed)
		return nil
	},
}
