// Package config provides configuration loading and validation for the screening engine.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// weightSumTolerance is the floating tolerance when checking that the five
// scoring weights sum to 1.0.
const weightSumTolerance = 1e-6

// Weights holds the blend weights for the five match sub-scores.
// The five values must be non-negative and sum to 1.0.
type Weights struct {
	Skills             float64 `json:"skill_weight"`
	Experience         float64 `json:"experience_weight"`
	Education          float64 `json:"education_weight"`
	TextSimilarity     float64 `json:"text_similarity_weight"`
	SemanticSimilarity float64 `json:"semantic_similarity_weight"`
}

// Sum returns the total of the five weights.
func (w Weights) Sum() float64 {
	return w.Skills + w.Experience + w.Education + w.TextSimilarity + w.SemanticSimilarity
}

// Validate checks that every weight is non-negative and the sum is 1.0
// within tolerance.
func (w Weights) Validate() error {
	named := []struct {
		name  string
		value float64
	}{
		{"skill_weight", w.Skills},
		{"experience_weight", w.Experience},
		{"education_weight", w.Education},
		{"text_similarity_weight", w.TextSimilarity},
		{"semantic_similarity_weight", w.SemanticSimilarity},
	}
	for _, nv := range named {
		if nv.value < 0 {
			return fmt.Errorf("config error: %q must be non-negative, got %v", nv.name, nv.value)
		}
	}
	if diff := math.Abs(w.Sum() - 1.0); diff > weightSumTolerance {
		return fmt.Errorf("config error: scoring weights must sum to 1.0, got %v", w.Sum())
	}
	return nil
}

// FitThresholds are the inclusive lower bounds for the fit-level labels,
// evaluated top-down.
type FitThresholds struct {
	Excellent float64 `json:"excellent"`
	Good      float64 `json:"good"`
	Fair      float64 `json:"fair"`
}

// ExperienceBands are the inclusive lower bounds (in years) for the
// experience-level labels. Values at a boundary resolve to the higher band.
type ExperienceBands struct {
	Mid    float64 `json:"mid"`
	Senior float64 `json:"senior"`
	Lead   float64 `json:"lead"`
}

// Config is the engine configuration. All scoring constants live here so they
// can be tuned without touching extraction or scoring logic.
type Config struct {
	Weights       Weights         `json:"weights"`
	FitThresholds FitThresholds   `json:"fit_thresholds"`
	Bands         ExperienceBands `json:"experience_bands"`

	// EducationPartialCredit is the score given when the candidate has a
	// degree below the required level. A candidate with no degree at all
	// scores 0 when education is required.
	EducationPartialCredit float64 `json:"education_partial_credit"`

	// TaxonomyPath optionally points at a taxonomy JSON file. Empty means
	// the embedded default taxonomy is used.
	TaxonomyPath string `json:"taxonomy_path,omitempty"`

	// BatchWorkers bounds the number of concurrent scoring workers in a batch.
	BatchWorkers int `json:"batch_workers,omitempty"`
}

// DefaultConfig returns the engine defaults: the documented weight blend,
// 85/70/50 fit thresholds and 2/5/10 experience bands.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Skills:             0.40,
			Experience:         0.20,
			Education:          0.15,
			TextSimilarity:     0.15,
			SemanticSimilarity: 0.10,
		},
		FitThresholds:          FitThresholds{Excellent: 85, Good: 70, Fair: 50},
		Bands:                  ExperienceBands{Mid: 2, Senior: 5, Lead: 10},
		EducationPartialCredit: 50,
		BatchWorkers:           4,
	}
}

// LoadConfig loads configuration from a JSON file, applying defaults for any
// omitted sections, and validates the result.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the full configuration. Weight errors are fatal at load
// time; they are never deferred to scoring.
func (c *Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}

	if c.FitThresholds.Excellent < c.FitThresholds.Good ||
		c.FitThresholds.Good < c.FitThresholds.Fair {
		return fmt.Errorf("config error: fit thresholds must be non-increasing (excellent >= good >= fair)")
	}

	if c.Bands.Mid < 0 || c.Bands.Senior < c.Bands.Mid || c.Bands.Lead < c.Bands.Senior {
		return fmt.Errorf("config error: experience bands must be non-negative and increasing")
	}

	if c.EducationPartialCredit < 0 || c.EducationPartialCredit > 100 {
		return fmt.Errorf("config error: 'education_partial_credit' must be in [0, 100]")
	}

	if c.BatchWorkers < 0 {
		return fmt.Errorf("config error: 'batch_workers' must be non-negative")
	}

	if c.TaxonomyPath != "" {
		if _, err := os.Stat(c.TaxonomyPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.TaxonomyPath)
		}
	}

	return nil
}

// ExperienceLevelFor maps years of experience to a band label using the
// configured thresholds. Boundary values resolve to the higher band.
func (c *Config) ExperienceLevelFor(years float64) string {
	switch {
	case years >= c.Bands.Lead:
		return "lead"
	case years >= c.Bands.Senior:
		return "senior"
	case years >= c.Bands.Mid:
		return "mid"
	default:
		return "entry"
	}
}

// FitLevelFor maps an overall score to its fit-level label.
func (c *Config) FitLevelFor(score float64) string {
	switch {
	case score >= c.FitThresholds.Excellent:
		return "Excellent"
	case score >= c.FitThresholds.Good:
		return "Good"
	case score >= c.FitThresholds.Fair:
		return "Fair"
	default:
		return "Poor"
	}
}
