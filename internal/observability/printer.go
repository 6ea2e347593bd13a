// Package observability provides formatted human-readable output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// maxCandidatesToShow bounds the ranked table in batch output
	maxCandidatesToShow = 10
)

// Printer handles formatted output for the CLI.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintProfile outputs a human-readable summary of an extracted profile.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	fmt.Fprintf(p.out, "Source:     %s\n", profile.SourceID)
	if profile.Name != "" {
		fmt.Fprintf(p.out, "Name:       %s\n", profile.Name)
	}
	if profile.Email != "" {
		fmt.Fprintf(p.out, "Email:      %s\n", profile.Email)
	}
	years := fmt.Sprintf("%g", profile.YearsExperience)
	if profile.YearsEstimated {
		years += " (estimated)"
	}
	fmt.Fprintf(p.out, "Experience: %s years, %s level\n", years, profile.ExperienceLevel)
	fmt.Fprintf(p.out, "Education:  %s\n", profile.Education.HighestLevel)
	fmt.Fprintf(p.out, "Skills:     %d found\n", profile.Skills.TotalSkills)

	shown := profile.Skills.Skills
	if len(shown) > maxItemsToShow {
		fmt.Fprintf(p.out, "  %s ... and %d more\n", strings.Join(shown[:maxItemsToShow], ", "), len(shown)-maxItemsToShow)
	} else if len(shown) > 0 {
		fmt.Fprintf(p.out, "  %s\n", strings.Join(shown, ", "))
	}

	if len(profile.Certifications) > 0 {
		fmt.Fprintf(p.out, "Certifications: %s\n", strings.Join(profile.Certifications, ", "))
	}
}

// PrintMatchResult outputs a human-readable summary of one match.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	name := result.CandidateName
	if name == "" {
		name = result.Filename
	}
	fmt.Fprintf(p.out, "%s: %.1f%% - %s\n", name, result.OverallScore, result.FitLevel)
	fmt.Fprintf(p.out, "  Skills:     %.1f%% (%d/%d matched)\n",
		result.SkillMatch.MatchPercentage, result.SkillMatch.TotalMatched, result.SkillMatch.TotalRequired)
	fmt.Fprintf(p.out, "  Experience: %.1f%%\n", result.ExperienceMatch.Score)
	fmt.Fprintf(p.out, "  Education:  %.1f%%\n", result.EducationMatch.Score)
	fmt.Fprintf(p.out, "  Text similarity: %.1f%%\n", result.TextSimilarity)
	if result.SemanticSkipped {
		fmt.Fprintf(p.out, "  Semantic similarity: skipped (no embedding backend)\n")
	} else {
		fmt.Fprintf(p.out, "  Semantic similarity: %.1f%%\n", result.SemanticSimilarity)
	}

	if len(result.SkillMatch.MissingSkills) > 0 {
		missing := result.SkillMatch.MissingSkills
		if len(missing) > maxItemsToShow {
			missing = missing[:maxItemsToShow]
		}
		fmt.Fprintf(p.out, "  Missing skills: %s\n", strings.Join(missing, ", "))
	}

	for _, rec := range result.Recommendations {
		fmt.Fprintf(p.out, "  - %s\n", rec)
	}
}

// PrintBatchResult outputs the ranked candidate table for a batch.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBatchResult(batch *types.BatchResult) {
	if batch == nil {
		return
	}

	fmt.Fprintf(p.out, "Job: %s\n", batch.JobTitle)
	fmt.Fprintf(p.out, "Scored %d of %d candidates in %dms\n\n", len(batch.Results), batch.Total, batch.ElapsedMS)

	count := len(batch.Results)
	if count > maxCandidatesToShow {
		count = maxCandidatesToShow
	}
	for i := 0; i < count; i++ {
		r := batch.Results[i]
		name := r.CandidateName
		if name == "" {
			name = r.Filename
		}
		fmt.Fprintf(p.out, "%2d. %s (%s): %.1f%% - %s\n", i+1, name, r.Filename, r.OverallScore, r.FitLevel)
	}
	if len(batch.Results) > count {
		fmt.Fprintf(p.out, "    ... and %d more\n", len(batch.Results)-count)
	}

	if len(batch.Failed) > 0 {
		fmt.Fprintf(p.out, "\nFailed entries:\n")
		for _, f := range batch.Failed {
			fmt.Fprintf(p.out, "  %s: %s\n", f.Filename, f.Reason)
		}
	}
}
