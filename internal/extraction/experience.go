package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var explicitYearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`experience[:\s]+(\d{1,2})\+?\s*years?`),
	regexp.MustCompile(`(\d{1,2})\s*-\s*\d{1,2}\s*years?\s*(?:of\s*)?experience`),
}

var (
	closedRangeRe = regexp.MustCompile(`\b(19\d{2}|20\d{2})\s*[-–]\s*(19\d{2}|20\d{2})\b`)
	openRangeRe   = regexp.MustCompile(`\b(19\d{2}|20\d{2})\s*[-–]\s*(?:present|current|now)\b`)
)

// maxPlausibleYears bounds date-range estimates; spans outside (0, 50) are noise.
const maxPlausibleYears = 50

// ExperienceEstimate is the years-of-experience signal found in a document.
// Estimated is true when no signal existed and Years defaulted to zero; the
// caller must not treat that as a confirmed zero.
type ExperienceEstimate struct {
	Years     float64
	Estimated bool
}

// ExtractYearsExperience estimates total years of experience. Explicit
// statements ("7 years of experience") take precedence, with the largest
// stated figure winning. Absent those, the span from the earliest start year
// to the latest end year across work-history date ranges is used; open-ended
// ranges ("2019 - Present") end at the reference time. historyText narrows the
// date scan to the work-history section when one was detected; pass the full
// text otherwise.
func ExtractYearsExperience(text, historyText string, now time.Time) ExperienceEstimate {
	textLower := strings.ToLower(text)

	if years, ok := explicitYears(textLower); ok {
		return ExperienceEstimate{Years: years}
	}

	scanText := strings.ToLower(historyText)
	if scanText == "" {
		scanText = textLower
	}
	if years, ok := yearsFromDateRanges(scanText, now); ok {
		return ExperienceEstimate{Years: years}
	}

	return ExperienceEstimate{Years: 0, Estimated: true}
}

// explicitYears finds the largest explicitly stated experience figure.
func explicitYears(textLower string) (float64, bool) {
	maxYears := 0
	found := false
	for _, re := range explicitYearsPatterns {
		for _, m := range re.FindAllStringSubmatch(textLower, -1) {
			years, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			found = true
			if years > maxYears {
				maxYears = years
			}
		}
	}
	return float64(maxYears), found
}

// yearsFromDateRanges estimates experience as the span from the earliest
// start year to the latest end year across all recognized date ranges.
func yearsFromDateRanges(textLower string, now time.Time) (float64, bool) {
	earliest, latest := 0, 0

	record := func(start, end int) {
		if end < start || end-start >= maxPlausibleYears {
			return
		}
		if earliest == 0 || start < earliest {
			earliest = start
		}
		if end > latest {
			latest = end
		}
	}

	for _, m := range closedRangeRe.FindAllStringSubmatch(textLower, -1) {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		record(start, end)
	}
	for _, m := range openRangeRe.FindAllStringSubmatch(textLower, -1) {
		start, _ := strconv.Atoi(m[1])
		record(start, now.Year())
	}

	if earliest == 0 {
		return 0, false
	}

	span := latest - earliest
	if span <= 0 || span >= maxPlausibleYears {
		return 0, false
	}
	return float64(span), true
}
