package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/course-recommender/internal/config"
	"github.com/jonathan/course-recommender/internal/db"
	"github.com/jonathan/course-recommender/internal/embedding"
	"github.com/jonathan/course-recommender/internal/schemas"
	"github.com/jonathan/course-recommender/internal/types"
)

// mergeConfig loads the optional config file and overlays flag and env values.
// Precedence: flag > config file > environment.
func mergeConfig(configPath, apiKey, databaseURL, profilePath string, workers int, verbose bool) (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if profilePath != "" {
		cfg.Profile = profilePath
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required (use --api-key or GEMINI_API_KEY)")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL is required (use --db-url or DATABASE_URL)")
	}
	return cfg, nil
}

// openStoreAndClient connects the course store and the embedding client.
func openStoreAndClient(ctx context.Context, cfg *config.Config) (*db.DB, *embedding.GeminiClient, error) {
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	client, err := embedding.NewGeminiClient(ctx, cfg.APIKey)
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	return store, client, nil
}

// loadProfile validates and parses an assessment profile JSON file.
func loadProfile(path string) (*types.AssessmentProfile, error) {
	if path == "" {
		return nil, fmt.Errorf("profile path is required (use --profile)")
	}

	if err := schemas.ValidateProfileFile(path); err != nil {
		return nil, fmt.Errorf("invalid assessment profile: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	var p types.AssessmentProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &p, nil
}
