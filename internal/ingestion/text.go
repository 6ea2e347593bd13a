// Package ingestion provides text normalization for resume and job description text.
// It consumes already-decoded plain text; file-format decoding happens upstream.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe  = regexp.MustCompile(`[ \t]+`)
	blankLinesRe  = regexp.MustCompile(`\n\n\n+`)
	bulletGlyphRe = regexp.MustCompile(`[•●◦▪▫·]`)
	nonWordRe     = regexp.MustCompile(`[^a-z0-9+#./-]+`)
)

// CleanText cleans and normalizes raw document text while preserving line
// structure. Line structure matters downstream: the name heuristic and
// section detection both operate on lines.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF -> LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// Strip bullet glyphs; the text they introduced stays
	content = bulletGlyphRe.ReplaceAllString(content, "")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = blankLinesRe.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine collapses runs of spaces and tabs within a single line and trims
// the edges, so a stripped bullet glyph leaves no stray indentation behind.
func cleanLine(line string) string {
	line = multiSpaceRe.ReplaceAllString(line, " ")
	return strings.TrimSpace(line)
}

// NormalizeForComparison lowercases text and strips punctuation so two
// documents can be compared token-by-token. Characters that are meaningful
// inside skill names (+ # . / -) are kept.
func NormalizeForComparison(text string) string {
	text = strings.ToLower(text)
	text = nonWordRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
