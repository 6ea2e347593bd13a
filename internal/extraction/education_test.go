package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestExtractEducation_HighestLevelWins(t *testing.T) {
	text := `EDUCATION
Master of Science in Computer Science, MIT
Bachelor of Science in Mathematics, UCLA`

	record := ExtractEducation(text)

	assert.Equal(t, types.EducationMasters, record.HighestLevel)
	assert.True(t, record.HasDegree)
	assert.Equal(t, []string{"Master of Science", "Bachelor of Science"}, record.DegreeMentions)
}

func TestExtractEducation_MentionsOrderedByPosition(t *testing.T) {
	text := "Bachelor of Arts in History. Later earned a PhD in Linguistics."
	record := ExtractEducation(text)

	assert.Equal(t, types.EducationDoctorate, record.HighestLevel)
	assert.Equal(t, []string{"Bachelor of Arts", "PhD"}, record.DegreeMentions)
}

func TestExtractEducation_AbbreviatedForms(t *testing.T) {
	record := ExtractEducation("B.Sc in Physics, M.Sc in Astronomy")

	assert.Equal(t, types.EducationMasters, record.HighestLevel)
	assert.True(t, record.HasDegree)
}

func TestExtractEducation_AssociateIsNotDegree(t *testing.T) {
	record := ExtractEducation("Associate Degree in Welding Technology")

	assert.Equal(t, types.EducationAssociate, record.HighestLevel)
	assert.False(t, record.HasDegree)
}

func TestExtractEducation_HighSchoolOnly(t *testing.T) {
	record := ExtractEducation("High School Diploma, Lincoln High, 2010")

	assert.Equal(t, types.EducationHighSchool, record.HighestLevel)
	assert.False(t, record.HasDegree)
}

func TestExtractEducation_NoMentions(t *testing.T) {
	record := ExtractEducation("A resume without any credentials listed.")

	assert.Equal(t, types.EducationNone, record.HighestLevel)
	assert.False(t, record.HasDegree)
	assert.Empty(t, record.DegreeMentions)
}

func TestExtractEducation_EachLevelRecordedOnce(t *testing.T) {
	text := "Bachelor of Science, also a Bachelor of Arts, plus a Bachelors in Music"
	record := ExtractEducation(text)

	assert.Equal(t, []string{"Bachelor of Science"}, record.DegreeMentions)
}
