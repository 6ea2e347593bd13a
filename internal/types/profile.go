// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// EducationLevel is an ordered enumeration of recognized education levels.
// The zero value is EducationNone.
type EducationLevel int

const (
	EducationNone EducationLevel = iota
	EducationHighSchool
	EducationAssociate
	EducationBachelors
	EducationMasters
	EducationDoctorate
)

// educationLevelNames maps levels to their wire representation
var educationLevelNames = map[EducationLevel]string{
	EducationNone:       "none",
	EducationHighSchool: "high_school",
	EducationAssociate:  "associate",
	EducationBachelors:  "bachelors",
	EducationMasters:    "masters",
	EducationDoctorate:  "doctorate",
}

// String returns the wire name for the level ("none" for unknown values).
func (l EducationLevel) String() string {
	if name, ok := educationLevelNames[l]; ok {
		return name
	}
	return "none"
}

// ParseEducationLevel maps a wire name back to an EducationLevel.
// Unknown names map to EducationNone.
func ParseEducationLevel(name string) EducationLevel {
	for level, n := range educationLevelNames {
		if n == name {
			return level
		}
	}
	return EducationNone
}

// MarshalText implements encoding.TextMarshaler so levels serialize as their wire names.
func (l EducationLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *EducationLevel) UnmarshalText(text []byte) error {
	*l = ParseEducationLevel(string(text))
	return nil
}

// SkillInventory holds the normalized skills extracted from a document.
// Every skill listed in Categories and MentionCount also appears in Skills.
type SkillInventory struct {
	Skills       []string            `json:"skills"`        // Unique canonical skills, sorted
	Categories   map[string][]string `json:"categories"`    // Category name -> skills found in it
	MentionCount map[string]int      `json:"mention_count"` // Canonical skill -> occurrence count
	TotalSkills  int                 `json:"total_skills"`
}

// Contains reports whether the inventory includes the given canonical skill.
func (s *SkillInventory) Contains(skill string) bool {
	for _, have := range s.Skills {
		if have == skill {
			return true
		}
	}
	return false
}

// EducationRecord holds the education signals extracted from a document.
type EducationRecord struct {
	HighestLevel   EducationLevel `json:"highest_level"`
	HasDegree      bool           `json:"has_degree"`      // True iff HighestLevel >= bachelors
	DegreeMentions []string       `json:"degree_mentions"` // Raw keyword hits, in document order
}

// CandidateProfile is an immutable snapshot of the facts extracted from one resume.
// Optional contact fields are empty strings when extraction found nothing;
// that is a degraded extraction, not an error.
type CandidateProfile struct {
	SourceID string `json:"source_id"` // Filename or document id supplied by the caller

	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`

	YearsExperience float64 `json:"years_experience"`
	// YearsEstimated is true when no experience signal was found and the zero
	// years value is an estimate rather than a confirmed figure.
	YearsEstimated  bool   `json:"years_estimated,omitempty"`
	ExperienceLevel string `json:"experience_level"` // entry, mid, senior, lead

	Skills         SkillInventory  `json:"skills"`
	Education      EducationRecord `json:"education"`
	Certifications []string        `json:"certifications"`

	// RawText is the normalized source text, retained for similarity scoring.
	RawText string `json:"raw_text,omitempty"`

	// WordCount and CharCount describe the normalized source text.
	WordCount int `json:"word_count"`
	CharCount int `json:"char_count"`
}
