package matching

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// MatchSkills computes the overlap between a job's required skills and a
// candidate's skill inventory. Comparison is case-insensitive; matched and
// missing keep the job's original casing and ordering, extra skills keep the
// inventory's sorted order. With no required skills the requirement is
// trivially satisfied and the percentage is 100.
func MatchSkills(candidateSkills, requiredSkills []string) types.SkillMatch {
	candidateSet := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		candidateSet[strings.ToLower(s)] = true
	}

	// Dedupe required skills case-insensitively, keeping first spelling
	seenRequired := make(map[string]bool, len(requiredSkills))
	required := make([]string, 0, len(requiredSkills))
	for _, s := range requiredSkills {
		lower := strings.ToLower(s)
		if seenRequired[lower] {
			continue
		}
		seenRequired[lower] = true
		required = append(required, s)
	}

	matched := []string{}
	missing := []string{}
	for _, s := range required {
		if candidateSet[strings.ToLower(s)] {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}

	extra := []string{}
	for _, s := range candidateSkills {
		if !seenRequired[strings.ToLower(s)] {
			extra = append(extra, s)
		}
	}
	sort.Strings(extra)

	percentage := 100.0
	if len(required) > 0 {
		percentage = 100 * float64(len(matched)) / float64(len(required))
	}

	return types.SkillMatch{
		MatchPercentage: percentage,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		ExtraSkills:     extra,
		TotalRequired:   len(required),
		TotalMatched:    len(matched),
	}
}
