package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/observability"
)

var (
	matchResume  string
	matchJob     string
	matchOut     string
	matchConfig  string
	matchAPIKey  string
	matchNoEmbed bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one resume against a job description",
	Long:  "Extracts a profile from the resume text, scores it against the job description JSON, and writes the match result with sub-scores and recommendations.",
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchResume, "resume", "", "Path to resume text file (required)")
	matchCmd.Flags().StringVar(&matchJob, "job", "", "Path to job description JSON (required)")
	matchCmd.Flags().StringVar(&matchOut, "out", "", "Path for match result JSON output (default: stdout)")
	matchCmd.Flags().StringVar(&matchConfig, "config", "", "Path to engine config JSON (default: built-in defaults)")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API key (default: GEMINI_API_KEY env var)")
	matchCmd.Flags().BoolVar(&matchNoEmbed, "no-embeddings", false, "Skip semantic similarity even when an API key is set")
	_ = matchCmd.MarkFlagRequired("resume")
	_ = matchCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadEngineConfig(matchConfig)
	if err != nil {
		return err
	}
	taxonomy, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}
	job, err := loadJobDescription(matchJob)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(matchResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	provider, err := resolveProvider(ctx, matchAPIKey, matchNoEmbed)
	if err != nil {
		return err
	}
	scorer, err := newScorer(cfg, provider)
	if err != nil {
		return err
	}

	extractor := extraction.NewExtractor(taxonomy, cfg)
	profile := extractor.ExtractProfile(string(raw), filepath.Base(matchResume))

	result, err := scorer.Score(ctx, &profile, job)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	if err := writeJSON(matchOut, result); err != nil {
		return err
	}
	if matchOut != "" {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintMatchResult(result)
	}
	return nil
}
