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

var skillGapsCommand = &cobra.Command{
	Use:   "skill-gaps",
	Short: "Map each of the profile's skill gaps to courses",
	Long: `Resolves every skill gap on an assessment profile to a short course list,
combining direct keyword matches with semantic matches, and prints the
per-gap mapping as JSON.`,
	RunE: runSkillGaps,
}

var (
	gapsConfigPath  string
	gapsProfile     string
	gapsAPIKey      string
	gapsDatabaseURL string
	gapsVerbose     bool
)

func init() {
	skillGapsCommand.Flags().StringVar(&gapsConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	skillGapsCommand.Flags().StringVarP(&gapsProfile, "profile", "p", "", "Path to assessment profile JSON file")
	skillGapsCommand.Flags().StringVar(&gapsAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	skillGapsCommand.Flags().StringVar(&gapsDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	skillGapsCommand.Flags().BoolVarP(&gapsVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(skillGapsCommand)
}

func runSkillGaps(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := mergeConfig(gapsConfigPath, gapsAPIKey, gapsDatabaseURL, gapsProfile, 0, gapsVerbose)
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
	mapping, err := recommender.SkillGapCourses(ctx, p)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintSkillGapCourses(mapping)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(mapping); err != nil {
		return fmt.Errorf("failed to encode skill gap mapping: %w", err)
	}
	return nil
}
