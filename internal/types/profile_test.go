package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEducationLevel_Ordering(t *testing.T) {
	assert.True(t, EducationNone < EducationHighSchool)
	assert.True(t, EducationHighSchool < EducationAssociate)
	assert.True(t, EducationAssociate < EducationBachelors)
	assert.True(t, EducationBachelors < EducationMasters)
	assert.True(t, EducationMasters < EducationDoctorate)
}

func TestParseEducationLevel_UnknownMapsToNone(t *testing.T) {
	assert.Equal(t, EducationNone, ParseEducationLevel("kindergarten"))
	assert.Equal(t, EducationMasters, ParseEducationLevel("masters"))
}

func TestEducationLevel_JSONRoundTrip(t *testing.T) {
	record := EducationRecord{HighestLevel: EducationDoctorate, HasDegree: true}

	data, err := json.Marshal(record)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"doctorate"`)

	var decoded EducationRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, EducationDoctorate, decoded.HighestLevel)
}

func TestSkillInventory_Contains(t *testing.T) {
	inv := SkillInventory{Skills: []string{"Go", "Python"}}

	assert.True(t, inv.Contains("Go"))
	assert.False(t, inv.Contains("Rust"))
}

func TestJobDescription_MinEducationLevel(t *testing.T) {
	job := JobDescription{Title: "Engineer"}
	assert.Equal(t, EducationNone, job.MinEducationLevel())

	job.RequiredEducation = "bachelors"
	assert.Equal(t, EducationBachelors, job.MinEducationLevel())
}
