package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/observability"
)

var (
	extractIn     string
	extractOut    string
	extractConfig string
	extractQuiet  bool
)

var extractCmd = &cobra.Command{
	Use:   "extract-profile",
	Short: "Extract a structured candidate profile from resume text",
	Long:  "Reads a plain-text resume file, extracts contact info, skills, experience and education, and writes the profile as JSON.",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractIn, "in", "", "Path to resume text file (required)")
	extractCmd.Flags().StringVar(&extractOut, "out", "", "Path for profile JSON output (default: stdout)")
	extractCmd.Flags().StringVar(&extractConfig, "config", "", "Path to engine config JSON (default: built-in defaults)")
	extractCmd.Flags().BoolVar(&extractQuiet, "quiet", false, "Suppress the human-readable summary")
	_ = extractCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	cfg, err := loadEngineConfig(extractConfig)
	if err != nil {
		return err
	}
	taxonomy, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(extractIn)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	extractor := extraction.NewExtractor(taxonomy, cfg)
	profile := extractor.ExtractProfile(string(raw), filepath.Base(extractIn))

	if err := writeJSON(extractOut, profile); err != nil {
		return err
	}

	if !extractQuiet && extractOut != "" {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintProfile(&profile)
	}
	return nil
}
