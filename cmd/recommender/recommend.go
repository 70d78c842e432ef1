package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/course-recommender/internal/observability"
	"github.com/jonathan/course-recommender/internal/recommend"
)

var recommendCommand = &cobra.Command{
	Use:   "recommend",
	Short: "Rank catalog courses against an assessment profile",
	Long: `Builds the canonical profile text from an assessment profile JSON file,
embeds it, and prints the ranked course recommendations as JSON.`,
	RunE: runRecommend,
}

var (
	recConfigPath  string
	recProfile     string
	recAPIKey      string
	recDatabaseURL string
	recVerbose     bool
)

func init() {
	recommendCommand.Flags().StringVar(&recConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	recommendCommand.Flags().StringVarP(&recProfile, "profile", "p", "", "Path to assessment profile JSON file")
	recommendCommand.Flags().StringVar(&recAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	recommendCommand.Flags().StringVar(&recDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	recommendCommand.Flags().BoolVarP(&recVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(recommendCommand)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergeConfig(recConfigPath, recAPIKey, recDatabaseURL, recProfile, 0, recVerbose)
	if err != nil {
		return err
	}

	p, err := loadProfile(cfg.Profile)
	if err != nil {
		return err
	}

	store, client, err := openStoreAndClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	defer client.Close() //nolint:errcheck // nothing to do on close failure

	recommender := recommend.NewRecommender(store, client)
	recs, err := recommender.RecommendForProfile(ctx, p)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintRecommendations(recs)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(recs); err != nil {
		return fmt.Errorf("failed to encode recommendations: %w", err)
	}
	return nil
}
