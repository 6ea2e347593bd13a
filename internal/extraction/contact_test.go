package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContact_AllFields(t *testing.T) {
	text := `John Smith
john.smith@example.com | (555) 123-4567
linkedin.com/in/johnsmith | github.com/johnsmith

EXPERIENCE
Senior Engineer at Acme`

	contact := ExtractContact(text)

	assert.Equal(t, "John Smith", contact.Name)
	assert.Equal(t, "john.smith@example.com", contact.Email)
	assert.Equal(t, "(555) 123-4567", contact.Phone)
	assert.Equal(t, "linkedin.com/in/johnsmith", contact.LinkedIn)
	assert.Equal(t, "github.com/johnsmith", contact.GitHub)
}

func TestExtractContact_FirstEmailWins(t *testing.T) {
	text := "Contact: primary@example.com or backup@example.com"
	contact := ExtractContact(text)
	assert.Equal(t, "primary@example.com", contact.Email)
}

func TestExtractContact_MissingFieldsStayEmpty(t *testing.T) {
	contact := ExtractContact("A resume with no contact details at all.")

	assert.Empty(t, contact.Email)
	assert.Empty(t, contact.Phone)
	assert.Empty(t, contact.LinkedIn)
	assert.Empty(t, contact.GitHub)
}

func TestExtractName_SkipsContactLines(t *testing.T) {
	text := `jane.doe@example.com
Jane Doe
555-123-4567`

	assert.Equal(t, "Jane Doe", extractName(text))
}

func TestExtractName_RejectsLongLines(t *testing.T) {
	text := "Accomplished Results Driven Software Engineering Professional Leader\nmore text"
	assert.Equal(t, "", extractName(text))
}

func TestExtractName_RejectsLowercase(t *testing.T) {
	text := "resume of candidate\nsome body text here today"
	assert.Equal(t, "", extractName(text))
}

func TestExtractName_OnlyScansTopOfDocument(t *testing.T) {
	text := `header line one two three four five six
another line of body text here
third line of body text here
fourth line of body text here
fifth line of body text here
Jane Doe`

	assert.Equal(t, "", extractName(text))
}
