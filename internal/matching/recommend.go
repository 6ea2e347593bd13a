package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// defaultRecommendation is emitted when no rule fires.
const defaultRecommendation = "Candidate profile reviewed; no specific gaps identified"

// buildRecommendations evaluates the recommendation rules in a fixed order.
// Any number of rules may fire; their output order is the rule order, which
// keeps recommendations deterministic for identical inputs.
func buildRecommendations(fitLevel string, skill types.SkillMatch, exp types.ExperienceMatch, edu types.EducationMatch) []string {
	recs := []string{}

	if fitLevel == "Excellent" {
		recs = append(recs, "Highly recommended for interview")
	}
	if len(skill.MissingSkills) > 0 {
		recs = append(recs, fmt.Sprintf("Consider additional training in: %s", strings.Join(skill.MissingSkills, ", ")))
	}
	if !exp.MeetsRequirement {
		recs = append(recs, fmt.Sprintf("Experience gap of %g years", math.Abs(exp.Difference)))
	}
	if !edu.MeetsRequirement {
		recs = append(recs, "Does not meet minimum education requirement")
	}

	if len(recs) == 0 {
		recs = append(recs, defaultRecommendation)
	}
	return recs
}
