package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/matching"
	"github.com/jonathan/resume-screener/internal/observability"
)

var (
	batchDir     string
	batchJob     string
	batchOut     string
	batchConfig  string
	batchAPIKey  string
	batchNoEmbed bool
	batchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "match-batch",
	Short: "Score a directory of resumes against one job description",
	Long:  "Extracts and scores every .txt resume in a directory against the job description JSON, producing a ranked batch result. Individual failures are reported without aborting the batch.",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchDir, "dir", "", "Directory of resume .txt files (required)")
	batchCmd.Flags().StringVar(&batchJob, "job", "", "Path to job description JSON (required)")
	batchCmd.Flags().StringVar(&batchOut, "out", "", "Path for batch result JSON output (default: stdout)")
	batchCmd.Flags().StringVar(&batchConfig, "config", "", "Path to engine config JSON (default: built-in defaults)")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API key (default: GEMINI_API_KEY env var)")
	batchCmd.Flags().BoolVar(&batchNoEmbed, "no-embeddings", false, "Skip semantic similarity even when an API key is set")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Concurrent scoring workers (default: from config)")
	_ = batchCmd.MarkFlagRequired("dir")
	_ = batchCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadEngineConfig(batchConfig)
	if err != nil {
		return err
	}
	taxonomy, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}
	job, err := loadJobDescription(batchJob)
	if err != nil {
		return err
	}

	filenames, err := listResumeFiles(batchDir)
	if err != nil {
		return err
	}
	if len(filenames) == 0 {
		return fmt.Errorf("no .txt resume files found in %s", batchDir)
	}

	provider, err := resolveProvider(ctx, batchAPIKey, batchNoEmbed)
	if err != nil {
		return err
	}
	scorer, err := newScorer(cfg, provider)
	if err != nil {
		return err
	}

	workers := batchWorkers
	if workers < 1 {
		workers = cfg.BatchWorkers
	}

	extractor := extraction.NewExtractor(taxonomy, cfg)
	batch := matching.NewBatch(scorer, extractor, workers)

	load := func(filename string) (string, error) {
		data, err := os.ReadFile(filepath.Join(batchDir, filename))
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	result := batch.Run(ctx, filenames, load, job)

	if err := writeJSON(batchOut, result); err != nil {
		return err
	}
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintBatchResult(result)
	return nil
}

// listResumeFiles returns the sorted base names of .txt files in dir.
func listResumeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) == ".txt" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
