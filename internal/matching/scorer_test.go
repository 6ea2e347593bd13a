package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/types"
)

// stubProvider returns a fixed embedding for every input, so any two texts
// have cosine similarity 1.
type stubProvider struct {
	vector []float32
	err    error
}

func (p *stubProvider) ModelID() string { return "stub" }

func (p *stubProvider) Embed(_ context.Context, _ string) ([]float32, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.vector, nil
}

func backendProfile() *types.CandidateProfile {
	return &types.CandidateProfile{
		SourceID:        "jane_doe.txt",
		Name:            "Jane Doe",
		YearsExperience: 6,
		ExperienceLevel: "senior",
		Skills: types.SkillInventory{
			Skills:      []string{"AWS", "Django", "PostgreSQL", "Python"},
			TotalSkills: 4,
		},
		Education: types.EducationRecord{
			HighestLevel: types.EducationBachelors,
			HasDegree:    true,
		},
		RawText: "Jane Doe. Senior backend engineer. Python Django PostgreSQL AWS. Built scalable web services.",
	}
}

func backendJob() *types.JobDescription {
	return &types.JobDescription{
		Title:             "Senior Backend Engineer",
		Description:       "Senior backend engineer building Python Django web services on AWS.",
		RequiredSkills:    []string{"Python", "Django", "AWS"},
		RequiredEducation: "bachelors",
		RequiredYears:     5,
	}
}

func TestNewScorer_RejectsInvalidWeights(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Weights.Skills = 0.90

	_, err := NewScorer(cfg, nil)
	require.Error(t, err)

	var cfgErr *InvalidConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestNewScorer_RejectsNilConfig(t *testing.T) {
	_, err := NewScorer(nil, nil)
	require.Error(t, err)
}

func TestScore_StrongCandidate(t *testing.T) {
	scorer, err := NewScorer(config.DefaultConfig(), nil)
	require.NoError(t, err)

	result, err := scorer.Score(context.Background(), backendProfile(), backendJob())
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.SkillMatch.MatchPercentage)
	assert.Equal(t, 100.0, result.ExperienceMatch.Score)
	assert.Equal(t, 100.0, result.EducationMatch.Score)
	assert.GreaterOrEqual(t, result.OverallScore, 85.0)
	assert.Equal(t, "Excellent", result.FitLevel)
	assert.Contains(t, result.Recommendations, "Highly recommended for interview")
	assert.Equal(t, "Jane Doe", result.CandidateName)
	assert.Equal(t, "jane_doe.txt", result.Filename)
}

func TestScore_RejectsInvalidJob(t *testing.T) {
	scorer, err := NewScorer(config.DefaultConfig(), nil)
	require.NoError(t, err)

	job := backendJob()
	job.Title = ""

	_, err = scorer.Score(context.Background(), backendProfile(), job)
	require.Error(t, err)

	var inputErr *InvalidInputError
	assert.True(t, errors.As(err, &inputErr))
}

func TestScore_RejectsNegativeRequiredYears(t *testing.T) {
	scorer, err := NewScorer(config.DefaultConfig(), nil)
	require.NoError(t, err)

	job := backendJob()
	job.RequiredYears = -1

	_, err = scorer.Score(context.Background(), backendProfile(), job)
	require.Error(t, err)
}

func TestScore_NilProviderSkipsSemantic(t *testing.T) {
	scorer, err := NewScorer(config.DefaultConfig(), nil)
	require.NoError(t, err)

	result, err := scorer.Score(context.Background(), backendProfile(), backendJob())
	require.NoError(t, err)

	assert.True(t, result.SemanticSkipped)
	assert.Equal(t, 0.0, result.SemanticSimilarity)
}

func TestScore_ProviderErrorSkipsSemanticWithoutFailing(t *testing.T) {
	provider := &stubProvider{err: errors.New("backend down")}
	scorer, err := NewScorer(config.DefaultConfig(), provider)
	require.NoError(t, err)

	result, err := scorer.Score(context.Background(), backendProfile(), backendJob())
	require.NoError(t, err)
	assert.True(t, result.SemanticSkipped)
}

func TestScore_ProviderContributesSemanticScore(t *testing.T) {
	provider := &stubProvider{vector: []float32{1, 0, 0}}
	scorer, err := NewScorer(config.DefaultConfig(), provider)
	require.NoError(t, err)

	result, err := scorer.Score(context.Background(), backendProfile(), backendJob())
	require.NoError(t, err)

	assert.False(t, result.SemanticSkipped)
	assert.InDelta(t, 100.0, result.SemanticSimilarity, 1e-6)
}

func TestScore_SkippedSemanticRenormalizesWeights(t *testing.T) {
	profile := backendProfile()
	profile.RawText = ""
	job := backendJob()
	job.Description = ""

	// Without renormalization the four remaining sub-scores at 100 would cap
	// the overall at 90 under the default weights.
	scorer, err := NewScorer(config.DefaultConfig(), nil)
	require.NoError(t, err)

	result, err := scorer.Score(context.Background(), profile, job)
	require.NoError(t, err)

	assert.True(t, result.SemanticSkipped)
	assert.Equal(t, 0.0, result.TextSimilarity)

	// skills/experience/education all at 100, text at 0: the renormalized
	// blend is (0.40+0.20+0.15)/0.90 * 100.
	assert.InDelta(t, 100*0.75/0.90, result.OverallScore, 1e-9)
}

func TestScore_Deterministic(t *testing.T) {
	scorer, err := NewScorer(config.DefaultConfig(), nil)
	require.NoError(t, err)

	first, err := scorer.Score(context.Background(), backendProfile(), backendJob())
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := scorer.Score(context.Background(), backendProfile(), backendJob())
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestScore_PoorCandidate(t *testing.T) {
	scorer, err := NewScorer(config.DefaultConfig(), nil)
	require.NoError(t, err)

	profile := &types.CandidateProfile{
		SourceID:        "novice.txt",
		YearsExperience: 0,
		ExperienceLevel: "entry",
		Skills:          types.SkillInventory{Skills: []string{}},
		Education:       types.EducationRecord{HighestLevel: types.EducationNone},
		RawText:         "Recent graduate seeking first role.",
	}

	result, err := scorer.Score(context.Background(), profile, backendJob())
	require.NoError(t, err)

	assert.Equal(t, "Poor", result.FitLevel)
	assert.Contains(t, result.Recommendations, "Consider additional training in: Python, Django, AWS")
	assert.Contains(t, result.Recommendations, "Experience gap of 5 years")
	assert.Contains(t, result.Recommendations, "Does not meet minimum education requirement")
}

func TestRenormalizeWithoutSemantic_PreservesProportions(t *testing.T) {
	w := renormalizeWithoutSemantic(config.DefaultConfig().Weights)

	assert.InDelta(t, 1.0, w.Skills+w.Experience+w.Education+w.TextSimilarity, 1e-9)
	assert.InDelta(t, w.Skills/w.Experience, 2.0, 1e-9)
	assert.Equal(t, 0.0, w.SemanticSimilarity)
}
