package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/course-recommender/internal/catalog"
	"github.com/jonathan/course-recommender/internal/observability"
)

var embedCatalogCommand = &cobra.Command{
	Use:   "embed-catalog",
	Short: "Embed every active catalog course and persist the vectors",
	Long: `Builds the canonical text for each active course, embeds it with the
Gemini embedding model, and writes the vector back to the course store.
Per-course failures are reported and do not stop the pass.`,
	RunE: runEmbedCatalog,
}

var (
	embedConfigPath  string
	embedAPIKey      string
	embedDatabaseURL string
	embedWorkers     int
	embedVerbose     bool
)

func init() {
	embedCatalogCommand.Flags().StringVar(&embedConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	embedCatalogCommand.Flags().StringVar(&embedAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	embedCatalogCommand.Flags().StringVar(&embedDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	embedCatalogCommand.Flags().IntVar(&embedWorkers, "workers", 0, "Concurrent embedding calls (default 4)")
	embedCatalogCommand.Flags().BoolVarP(&embedVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(embedCatalogCommand)
}

func runEmbedCatalog(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergeConfig(embedConfigPath, embedAPIKey, embedDatabaseURL, "", embedWorkers, embedVerbose)
	if err != nil {
		return err
	}

	store, client, err := openStoreAndClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	defer client.Close() //nolint:errcheck // nothing to do on close failure

	courses, err := store.ActiveCourses(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	embedder := catalog.NewEmbedder(client, store, catalog.WithWorkers(cfg.Workers))
	result := embedder.EmbedCourses(ctx, courses)

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintBatchResult(result)
	} else {
		fmt.Printf("Embedded %d courses, %d failed\n", result.Succeeded, result.Failed)
	}

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d courses failed to embed", result.Failed, len(courses))
	}
	return nil
}
