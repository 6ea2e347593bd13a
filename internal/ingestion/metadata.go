package ingestion

import "strings"

// Metadata describes a normalized document.
type Metadata struct {
	SourceID  string `json:"source_id,omitempty"`
	WordCount int    `json:"word_count"`
	CharCount int    `json:"char_count"`
	LineCount int    `json:"line_count"`
}

// NewMetadata computes metadata for cleaned text.
func NewMetadata(cleanedText, sourceID string) *Metadata {
	lineCount := 0
	if cleanedText != "" {
		lineCount = strings.Count(cleanedText, "\n") + 1
	}
	return &Metadata{
		SourceID:  sourceID,
		WordCount: len(strings.Fields(cleanedText)),
		CharCount: len(cleanedText),
		LineCount: lineCount,
	}
}
