package extraction

import (
	"time"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// Extractor assembles candidate profiles from raw resume text. It holds only
// read-only configuration and is safe for concurrent use.
type Extractor struct {
	taxonomy *skills.Taxonomy
	cfg      *config.Config
	now      func() time.Time
}

// NewExtractor creates an Extractor with the given taxonomy and engine config.
func NewExtractor(taxonomy *skills.Taxonomy, cfg *config.Config) *Extractor {
	return &Extractor{
		taxonomy: taxonomy,
		cfg:      cfg,
		now:      time.Now,
	}
}

// WithClock overrides the reference time used for open-ended date ranges.
// Tests use this to pin "Present" to a fixed year.
func (e *Extractor) WithClock(now func() time.Time) *Extractor {
	e.now = now
	return e
}

// ExtractProfile runs every recognizer over the raw text and composes the
// results into an immutable CandidateProfile. Recognizer misses leave fields
// at their documented defaults; extraction never fails for missing signals.
// Re-extraction produces a new profile, it does not patch an old one.
func (e *Extractor) ExtractProfile(rawText, sourceID string) types.CandidateProfile {
	cleaned := ingestion.CleanText(rawText)
	meta := ingestion.NewMetadata(cleaned, sourceID)
	sections := ExtractSections(cleaned)

	contact := ExtractContact(cleaned)
	inventory := skills.Extract(cleaned, e.taxonomy)
	education := ExtractEducation(cleaned)
	experience := ExtractYearsExperience(cleaned, sections["experience"], e.now())
	certs := ExtractCertifications(cleaned, e.taxonomy.Certifications)

	return types.CandidateProfile{
		SourceID: sourceID,

		Name:     contact.Name,
		Email:    contact.Email,
		Phone:    contact.Phone,
		LinkedIn: contact.LinkedIn,
		GitHub:   contact.GitHub,

		YearsExperience: experience.Years,
		YearsEstimated:  experience.Estimated,
		ExperienceLevel: e.cfg.ExperienceLevelFor(experience.Years),

		Skills:         inventory,
		Education:      education,
		Certifications: certs,

		RawText:   cleaned,
		WordCount: meta.WordCount,
		CharCount: meta.CharCount,
	}
}
