// cmd/southportctl/main.go
package main

import (
	"context"
	"fmt"
	"os"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	mongoURI string
	mongoDB  string
	verbose  bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "southportctl",
	Short: "Operator tooling for the Southport Local directory",
	Long: `southportctl bundles the offline jobs used to run the directory:
seeding a fresh database, bulk-importing listings from CSV, running the
tag classifier, fetching listing photos from Google Places, and hashing
the operator password.

Database flags default to the same SOUTHPORT_* environment variables the
server reads, so the tool works against the same database without extra
configuration.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&mongoURI, "mongo-uri", envOr("SOUTHPORT_MONGO_URI", "mongodb://localhost:27017"), "MongoDB connection URI")
	rootCmd.PersistentFlags().StringVar(&mongoDB, "mongo-db", envOr("SOUTHPORT_MONGO_DATABASE", "southportlocal"), "MongoDB database name")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(importCSVCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(fetchPhotosCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// connect opens the MongoDB connection shared by the database subcommands.
// The caller is responsible for disconnecting the returned client.
func connect(ctx context.Context) (*mongo.Client, *mongo.Database, error) {
	client, err := wafflemongo.ConnectWithPool(ctx, mongoURI, mongoDB, wafflemongo.DefaultPoolConfig())
	if err != nil {
		return nil, nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	return client, client.Database(mongoDB), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
