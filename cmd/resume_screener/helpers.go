package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/embeddings"
	"github.com/jonathan/resume-screener/internal/matching"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// loadEngineConfig loads the engine config from a file after schema
// validation, or returns the defaults when no path is given.
func loadEngineConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	if err := schemas.ValidateFile(schemas.ConfigSchema, path); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config.LoadConfig(path)
}

// loadTaxonomy loads a taxonomy from the config's path after schema
// validation, falling back to the embedded default taxonomy.
func loadTaxonomy(cfg *config.Config) (*skills.Taxonomy, error) {
	if cfg.TaxonomyPath == "" {
		return skills.DefaultTaxonomy(), nil
	}
	if err := schemas.ValidateFile(schemas.TaxonomySchema, cfg.TaxonomyPath); err != nil {
		return nil, fmt.Errorf("taxonomy %s: %w", cfg.TaxonomyPath, err)
	}
	return skills.LoadTaxonomy(cfg.TaxonomyPath)
}

// loadJobDescription reads a JobDescription JSON file.
func loadJobDescription(path string) (*types.JobDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	var job types.JobDescription
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job JSON: %w", err)
	}
	return &job, nil
}

// resolveProvider builds the Gemini embedding provider when an API key is
// available and embeddings are not disabled. A nil provider means scoring
// skips the semantic sub-score and renormalizes the remaining weights.
func resolveProvider(ctx context.Context, apiKey string, disabled bool) (embeddings.Provider, error) {
	if disabled {
		return nil, nil
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		fmt.Fprintf(os.Stderr, "Warning: no API key; semantic similarity will be skipped\n")
		return nil, nil
	}
	provider, err := embeddings.NewGeminiProvider(ctx, apiKey, "")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize embedding provider: %w", err)
	}
	return provider, nil
}

// newScorer wires config + provider into a scorer.
func newScorer(cfg *config.Config, provider embeddings.Provider) (*matching.Scorer, error) {
	scorer, err := matching.NewScorer(cfg, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create scorer: %w", err)
	}
	return scorer, nil
}

// writeJSON marshals v with indentation to path, or to stdout when path is empty.
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
