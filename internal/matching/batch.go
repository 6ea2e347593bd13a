package matching

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/types"
)

// TextLoader resolves a candidate filename to its decoded plain text.
// File-format decoding lives outside the engine; the orchestrator only sees
// this boundary.
type TextLoader func(filename string) (string, error)

// Batch fans the scorer out over many candidates for one job. Per-candidate
// scoring is independent, so candidates are dispatched to a bounded worker
// pool with no shared mutable state.
type Batch struct {
	scorer    *Scorer
	extractor *extraction.Extractor
	workers   int
}

// NewBatch creates a batch orchestrator. workers bounds concurrent scoring;
// values below 1 are treated as 1.
func NewBatch(scorer *Scorer, extractor *extraction.Extractor, workers int) *Batch {
	if workers < 1 {
		workers = 1
	}
	return &Batch{scorer: scorer, extractor: extractor, workers: workers}
}

// batchOutcome is the per-candidate slot filled by a worker.
type batchOutcome struct {
	result *types.MatchResult
	errMsg string
}

// Run scores every named candidate against the job. A candidate whose text
// cannot be loaded or scored becomes a failed entry; one bad resume never
// aborts the batch. When the context is cancelled mid-batch, completed
// results are still returned and unfinished candidates are reported as
// failed (best-effort partial return). Successful results are sorted by
// overall score descending, ties broken by candidate name then filename.
func (b *Batch) Run(ctx context.Context, filenames []string, load TextLoader, job *types.JobDescription) *types.BatchResult {
	start := time.Now()

	outcomes := make([]batchOutcome, len(filenames))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for i, filename := range filenames {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				outcomes[i] = batchOutcome{errMsg: "not processed: " + err.Error()}
				return nil
			}

			text, err := load(filename)
			if err != nil {
				outcomes[i] = batchOutcome{errMsg: "failed to load resume text: " + err.Error()}
				return nil
			}

			profile := b.extractor.ExtractProfile(text, filename)
			result, err := b.scorer.Score(gctx, &profile, job)
			if err != nil {
				outcomes[i] = batchOutcome{errMsg: "scoring failed: " + err.Error()}
				return nil
			}

			outcomes[i] = batchOutcome{result: result}
			return nil
		})
	}

	// Workers never return errors; per-candidate failures are recorded in
	// their outcome slots.
	_ = g.Wait()

	batch := &types.BatchResult{
		BatchID:  uuid.NewString(),
		JobTitle: job.Title,
		Results:  []types.MatchResult{},
		Failed:   []types.BatchEntryError{},
		Total:    len(filenames),
	}

	for i, outcome := range outcomes {
		switch {
		case outcome.result != nil:
			batch.Results = append(batch.Results, *outcome.result)
		case outcome.errMsg != "":
			batch.Failed = append(batch.Failed, types.BatchEntryError{
				Filename: filenames[i],
				Reason:   outcome.errMsg,
			})
		default:
			// Slot never filled: the batch was cancelled before this
			// candidate was picked up.
			batch.Failed = append(batch.Failed, types.BatchEntryError{
				Filename: filenames[i],
				Reason:   "not processed: batch cancelled",
			})
		}
	}

	SortResults(batch.Results)

	batch.ElapsedMS = time.Since(start).Milliseconds()
	return batch
}

// ScoreProfiles is the batch form over already-extracted profiles. Scoring
// failures become failed entries keyed by the profile's source id.
func (b *Batch) ScoreProfiles(ctx context.Context, profiles []types.CandidateProfile, job *types.JobDescription) *types.BatchResult {
	start := time.Now()

	outcomes := make([]batchOutcome, len(profiles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for i := range profiles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				outcomes[i] = batchOutcome{errMsg: "not processed: " + err.Error()}
				return nil
			}
			result, err := b.scorer.Score(gctx, &profiles[i], job)
			if err != nil {
				outcomes[i] = batchOutcome{errMsg: "scoring failed: " + err.Error()}
				return nil
			}
			outcomes[i] = batchOutcome{result: result}
			return nil
		})
	}
	_ = g.Wait()

	batch := &types.BatchResult{
		BatchID:  uuid.NewString(),
		JobTitle: job.Title,
		Results:  []types.MatchResult{},
		Failed:   []types.BatchEntryError{},
		Total:    len(profiles),
	}
	for i, outcome := range outcomes {
		if outcome.result != nil {
			batch.Results = append(batch.Results, *outcome.result)
		} else {
			batch.Failed = append(batch.Failed, types.BatchEntryError{
				Filename: profiles[i].SourceID,
				Reason:   outcome.errMsg,
			})
		}
	}

	SortResults(batch.Results)

	batch.ElapsedMS = time.Since(start).Milliseconds()
	return batch
}

// SortResults orders match results by overall score descending, breaking ties
// by candidate name ascending and finally filename ascending so rankings are
// stable across runs.
func SortResults(results []types.MatchResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].OverallScore != results[j].OverallScore {
			return results[i].OverallScore > results[j].OverallScore
		}
		if results[i].CandidateName != results[j].CandidateName {
			return results[i].CandidateName < results[j].CandidateName
		}
		return results[i].Filename < results[j].Filename
	})
}
