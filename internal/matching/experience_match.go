package matching

import "github.com/jonathan/resume-screener/internal/types"

// MatchExperience compares candidate years against the job requirement.
// Meeting the requirement scores 100. A shortfall decays linearly with its
// size relative to the requirement: score = max(0, 100*(1 + diff/required)),
// so a candidate with half the required years scores 50 and one with none
// scores 0. No requirement (zero or unset) is unconditionally met.
func MatchExperience(candidateYears, requiredYears float64) types.ExperienceMatch {
	diff := candidateYears - requiredYears

	if requiredYears <= 0 {
		return types.ExperienceMatch{Score: 100, MeetsRequirement: true, Difference: diff}
	}

	if diff >= 0 {
		return types.ExperienceMatch{Score: 100, MeetsRequirement: true, Difference: diff}
	}

	score := 100 * (1 + diff/requiredYears)
	if score < 0 {
		score = 0
	}
	return types.ExperienceMatch{Score: score, MeetsRequirement: false, Difference: diff}
}
