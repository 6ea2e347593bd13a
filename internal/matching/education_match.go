package matching

import "github.com/jonathan/resume-screener/internal/types"

// MatchEducation compares the candidate's highest education level against the
// job's minimum under the level ordering. Meeting the requirement scores 100.
// A candidate below the bar keeps partial credit (configurable, default 50)
// for having some recognized education; with no recognized education at all
// the score is 0.
func MatchEducation(candidate types.EducationRecord, required types.EducationLevel, partialCredit float64) types.EducationMatch {
	m := types.EducationMatch{
		CandidateLevel: candidate.HighestLevel,
		RequiredLevel:  required,
	}

	if required == types.EducationNone || candidate.HighestLevel >= required {
		m.Score = 100
		m.MeetsRequirement = true
		return m
	}

	if candidate.HighestLevel == types.EducationNone {
		m.Score = 0
		return m
	}

	m.Score = partialCredit
	return m
}
