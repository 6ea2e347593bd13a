package matching

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/embeddings"
	"github.com/jonathan/resume-screener/internal/types"
)

// Scorer compares candidate profiles against job descriptions. It holds only
// read-only configuration and a shared embedding provider, so one Scorer is
// safe for concurrent use across batch workers.
type Scorer struct {
	cfg      *config.Config
	provider embeddings.Provider // nil means semantic similarity is skipped
	validate *validator.Validate
}

// NewScorer creates a Scorer. The weight configuration is validated here;
// a malformed weight set is an InvalidConfigurationError and no Scorer is
// returned. provider may be nil, in which case every result carries the
// semantic-skipped flag and renormalized weights.
func NewScorer(cfg *config.Config, provider embeddings.Provider) (*Scorer, error) {
	if cfg == nil {
		return nil, &InvalidConfigurationError{Message: "config is nil"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &InvalidConfigurationError{Message: "scoring config rejected", Cause: err}
	}

	return &Scorer{
		cfg:      cfg,
		provider: provider,
		validate: validator.New(),
	}, nil
}

// Score produces the full match result for one (profile, job) pair. It is a
// pure function of its inputs apart from the embedding call; missing optional
// profile fields never fail scoring. A malformed job description returns an
// InvalidInputError. An unavailable embedding backend does not fail the
// match: the semantic sub-score is excluded, the remaining weights are
// renormalized and the result is flagged.
func (s *Scorer) Score(ctx context.Context, profile *types.CandidateProfile, job *types.JobDescription) (*types.MatchResult, error) {
	if err := s.validate.Struct(job); err != nil {
		return nil, &InvalidInputError{Message: "job description rejected", Cause: err}
	}

	skillMatch := MatchSkills(profile.Skills.Skills, job.RequiredSkills)
	expMatch := MatchExperience(profile.YearsExperience, job.RequiredYears)
	eduMatch := MatchEducation(profile.Education, job.MinEducationLevel(), s.cfg.EducationPartialCredit)
	textSim := LexicalSimilarity(profile.RawText, job.Description)

	semanticSim := 0.0
	semanticSkipped := true
	if s.provider != nil {
		if sim, err := embeddings.Similarity(ctx, s.provider, profile.RawText, job.Description); err == nil {
			semanticSim = 100 * sim
			semanticSkipped = false
		}
	}

	weights := s.cfg.Weights
	if semanticSkipped {
		weights = renormalizeWithoutSemantic(weights)
	}

	overall := skillMatch.MatchPercentage*weights.Skills +
		expMatch.Score*weights.Experience +
		eduMatch.Score*weights.Education +
		textSim*weights.TextSimilarity +
		semanticSim*weights.SemanticSimilarity
	overall = clampScore(overall)

	fitLevel := s.cfg.FitLevelFor(overall)

	return &types.MatchResult{
		CandidateName:      profile.Name,
		Filename:           profile.SourceID,
		OverallScore:       overall,
		FitLevel:           fitLevel,
		SkillMatch:         skillMatch,
		ExperienceMatch:    expMatch,
		EducationMatch:     eduMatch,
		TextSimilarity:     textSim,
		SemanticSimilarity: semanticSim,
		SemanticSkipped:    semanticSkipped,
		Recommendations:    buildRecommendations(fitLevel, skillMatch, expMatch, eduMatch),
	}, nil
}

// renormalizeWithoutSemantic redistributes the semantic weight across the
// remaining four sub-scores so their proportions are preserved.
func renormalizeWithoutSemantic(w config.Weights) config.Weights {
	remaining := w.Skills + w.Experience + w.Education + w.TextSimilarity
	if remaining <= 0 {
		return config.Weights{}
	}
	scale := 1.0 / remaining
	return config.Weights{
		Skills:         w.Skills * scale,
		Experience:     w.Experience * scale,
		Education:      w.Education * scale,
		TextSimilarity: w.TextSimilarity * scale,
	}
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
