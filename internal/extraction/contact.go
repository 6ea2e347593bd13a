// Package extraction provides the heuristic recognizers that turn normalized
// resume text into a CandidateProfile. Each recognizer is independent and
// best-effort: a miss leaves the field unset and never fails the extraction.
package extraction

import (
	"regexp"
	"strings"
)

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{2,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,4}`)
	urlRe      = regexp.MustCompile(`https?://[^\s]+`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
)

// ContactInfo holds the contact identifiers recognized in a document.
// Empty fields mean nothing was recognized.
type ContactInfo struct {
	Name     string
	Email    string
	Phone    string
	LinkedIn string
	GitHub   string
}

// ExtractContact pulls contact identifiers from cleaned text. When a pattern
// matches more than once, the first occurrence by text position wins.
func ExtractContact(text string) ContactInfo {
	return ContactInfo{
		Name:     extractName(text),
		Email:    emailRe.FindString(text),
		Phone:    strings.TrimSpace(phoneRe.FindString(text)),
		LinkedIn: linkedinRe.FindString(text),
		GitHub:   githubRe.FindString(text),
	}
}

// maxNameLines is how far down the document the name heuristic looks.
const maxNameLines = 5

// extractName looks for the candidate name in the first few lines: a line of
// 2-4 capitalized words that carries no email, phone or URL.
func extractName(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	checked := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if checked++; checked > maxNameLines {
			break
		}

		if emailRe.MatchString(line) || phoneRe.MatchString(line) || urlRe.MatchString(line) {
			continue
		}

		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if allCapitalized(words) {
			return line
		}
	}

	return ""
}

func allCapitalized(words []string) bool {
	for _, word := range words {
		r := rune(word[0])
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
