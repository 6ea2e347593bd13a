package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Extract scans text for taxonomy skills and returns the resulting inventory.
// Matching is case-insensitive and boundary-aware: a term only matches when
// the characters on either side are not letters or digits, so "java" never
// matches inside "javascript". Longer terms are tried first and claim their
// span of text, which gives more specific skills precedence over shorter ones
// that are their substrings. Occurrences are counted without overlap; alias
// hits count toward the canonical skill.
//
// Extract is a pure function of (text, taxonomy) and is safe for concurrent
// use with a shared taxonomy.
func Extract(text string, tax *Taxonomy) types.SkillInventory {
	inv := types.SkillInventory{
		Skills:       []string{},
		Categories:   map[string][]string{},
		MentionCount: map[string]int{},
	}
	if text == "" || tax == nil {
		return inv
	}

	textLower := strings.ToLower(text)
	consumed := make([]bool, len(textLower))

	for _, term := range tax.terms {
		countTermMentions(textLower, consumed, term, inv.MentionCount)
	}

	for skill := range inv.MentionCount {
		inv.Skills = append(inv.Skills, skill)
	}
	sort.Strings(inv.Skills)
	inv.TotalSkills = len(inv.Skills)

	for _, skill := range inv.Skills {
		cat := tax.CategoryOf(skill)
		inv.Categories[cat] = append(inv.Categories[cat], skill)
	}

	return inv
}

// countTermMentions finds non-overlapping, boundary-checked occurrences of a
// term, marks their spans as consumed and adds them to the mention counts.
func countTermMentions(textLower string, consumed []bool, term matchTerm, counts map[string]int) {
	from := 0
	for {
		idx := strings.Index(textLower[from:], term.text)
		if idx < 0 {
			return
		}
		start := from + idx
		end := start + len(term.text)
		from = start + 1

		if !atBoundary(textLower, start, end) {
			continue
		}
		if spanConsumed(consumed, start, end) {
			continue
		}

		for i := start; i < end; i++ {
			consumed[i] = true
		}
		counts[term.canonical]++
		from = end
	}
}

// atBoundary reports whether text[start:end] is delimited by non-word
// characters on both sides.
func atBoundary(text string, start, end int) bool {
	if start > 0 && isWordChar(text[start-1]) {
		return false
	}
	if end < len(text) && isWordChar(text[end]) {
		return false
	}
	return true
}

// spanConsumed reports whether any position in [start, end) was already
// claimed by a longer term.
func spanConsumed(consumed []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if consumed[i] {
			return true
		}
	}
	return false
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
}
