package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchExperience_MeetsRequirement(t *testing.T) {
	m := MatchExperience(7, 5)

	assert.Equal(t, 100.0, m.Score)
	assert.True(t, m.MeetsRequirement)
	assert.Equal(t, 2.0, m.Difference)
}

func TestMatchExperience_ExactYears(t *testing.T) {
	m := MatchExperience(5, 5)

	assert.Equal(t, 100.0, m.Score)
	assert.True(t, m.MeetsRequirement)
}

func TestMatchExperience_NoRequirement(t *testing.T) {
	m := MatchExperience(0, 0)

	assert.Equal(t, 100.0, m.Score)
	assert.True(t, m.MeetsRequirement)
}

func TestMatchExperience_LinearDecay(t *testing.T) {
	// Half the required years scores 50.
	m := MatchExperience(2.5, 5)
	assert.InDelta(t, 50.0, m.Score, 1e-9)
	assert.False(t, m.MeetsRequirement)
	assert.Equal(t, -2.5, m.Difference)

	// 4 of 5 years scores 80.
	m = MatchExperience(4, 5)
	assert.InDelta(t, 80.0, m.Score, 1e-9)
}

func TestMatchExperience_ZeroYearsScoresZero(t *testing.T) {
	m := MatchExperience(0, 5)

	assert.Equal(t, 0.0, m.Score)
	assert.False(t, m.MeetsRequirement)
}
