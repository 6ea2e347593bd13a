package extraction

import (
	"sort"
	"strings"
)

// sectionHeaders maps section names to the header keywords that introduce them.
var sectionHeaders = map[string][]string{
	"summary":        {"SUMMARY", "PROFILE", "OBJECTIVE", "PROFESSIONAL SUMMARY", "ABOUT"},
	"experience":     {"EXPERIENCE", "WORK HISTORY", "EMPLOYMENT", "PROFESSIONAL EXPERIENCE", "WORK EXPERIENCE"},
	"education":      {"EDUCATION", "ACADEMIC BACKGROUND", "QUALIFICATIONS"},
	"skills":         {"SKILLS", "TECHNICAL SKILLS", "CORE COMPETENCIES", "EXPERTISE"},
	"certifications": {"CERTIFICATIONS", "CERTIFICATES", "LICENSES"},
	"projects":       {"PROJECTS", "KEY PROJECTS"},
}

// headerMaxOffset is how far from the start of a line a header keyword may sit
// and still count as a section heading.
const headerMaxOffset = 5

type sectionMark struct {
	pos  int
	name string
}

// ExtractSections splits cleaned text into named resume sections by locating
// common section headings. Text before the first heading is not assigned to
// any section. Missing sections are simply absent from the map.
func ExtractSections(text string) map[string]string {
	textUpper := strings.ToUpper(text)

	marks := make([]sectionMark, 0, len(sectionHeaders))
	for name, keywords := range sectionHeaders {
		for _, keyword := range keywords {
			pos, ok := findHeading(textUpper, keyword)
			if !ok {
				continue
			}
			marks = append(marks, sectionMark{pos: pos, name: name})
			break
		}
	}

	sort.Slice(marks, func(i, j int) bool { return marks[i].pos < marks[j].pos })

	sections := make(map[string]string, len(marks))
	for i, mark := range marks {
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1].pos
		}
		body := text[mark.pos:end]
		// Drop the heading line itself
		if nl := strings.Index(body, "\n"); nl >= 0 {
			body = body[nl+1:]
		} else {
			body = ""
		}
		sections[mark.name] = strings.TrimSpace(body)
	}

	return sections
}

// findHeading locates the first occurrence of keyword that sits at (or near)
// the start of a line. Mid-line mentions, like "years of experience" in a
// summary paragraph, are skipped.
func findHeading(textUpper, keyword string) (int, bool) {
	from := 0
	for {
		idx := strings.Index(textUpper[from:], keyword)
		if idx < 0 {
			return 0, false
		}
		pos := from + idx
		from = pos + 1

		lineStart := strings.LastIndex(textUpper[:pos], "\n")
		if pos-lineStart-1 < headerMaxOffset {
			return pos, true
		}
	}
}
