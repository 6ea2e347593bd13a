package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSkills_FullMatch(t *testing.T) {
	m := MatchSkills([]string{"AWS", "Django", "Python"}, []string{"Python", "Django", "AWS"})

	assert.Equal(t, 100.0, m.MatchPercentage)
	assert.Equal(t, []string{"Python", "Django", "AWS"}, m.MatchedSkills)
	assert.Empty(t, m.MissingSkills)
	assert.Equal(t, 3, m.TotalRequired)
	assert.Equal(t, 3, m.TotalMatched)
}

func TestMatchSkills_PartialMatch(t *testing.T) {
	m := MatchSkills([]string{"Python", "Go"}, []string{"Python", "Kubernetes", "Terraform", "Go"})

	assert.Equal(t, 50.0, m.MatchPercentage)
	assert.Equal(t, []string{"Python", "Go"}, m.MatchedSkills)
	assert.Equal(t, []string{"Kubernetes", "Terraform"}, m.MissingSkills)
}

func TestMatchSkills_CaseInsensitive(t *testing.T) {
	m := MatchSkills([]string{"python", "POSTGRESQL"}, []string{"Python", "PostgreSQL"})

	assert.Equal(t, 100.0, m.MatchPercentage)
	assert.Equal(t, []string{"Python", "PostgreSQL"}, m.MatchedSkills)
}

func TestMatchSkills_DuplicateRequiredCountedOnce(t *testing.T) {
	m := MatchSkills([]string{"Python"}, []string{"Python", "python", "PYTHON"})

	assert.Equal(t, 1, m.TotalRequired)
	assert.Equal(t, []string{"Python"}, m.MatchedSkills)
	assert.Equal(t, 100.0, m.MatchPercentage)
}

func TestMatchSkills_EmptyRequiredIsSatisfied(t *testing.T) {
	m := MatchSkills([]string{"Python", "Go"}, nil)

	assert.Equal(t, 100.0, m.MatchPercentage)
	assert.Equal(t, 0, m.TotalRequired)
	assert.Empty(t, m.MissingSkills)
	assert.Equal(t, []string{"Go", "Python"}, m.ExtraSkills)
}

func TestMatchSkills_EmptyCandidate(t *testing.T) {
	m := MatchSkills(nil, []string{"Python", "Go"})

	assert.Equal(t, 0.0, m.MatchPercentage)
	assert.Equal(t, []string{"Python", "Go"}, m.MissingSkills)
	assert.Empty(t, m.MatchedSkills)
}

func TestMatchSkills_PartitionInvariant(t *testing.T) {
	m := MatchSkills([]string{"Python", "Redis", "Go"}, []string{"Python", "Kafka", "Go", "Spark"})

	assert.Equal(t, m.TotalRequired, len(m.MatchedSkills)+len(m.MissingSkills))
	assert.Equal(t, m.TotalMatched, len(m.MatchedSkills))
	assert.Equal(t, []string{"Redis"}, m.ExtraSkills)
}
