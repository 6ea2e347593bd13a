package types

// SkillMatch describes the overlap between required and candidate skills.
// Matched and Missing partition the required skill list; Extra lists candidate
// skills the job did not ask for.
type SkillMatch struct {
	MatchPercentage float64  `json:"match_percentage"` // 0-100
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	ExtraSkills     []string `json:"extra_skills"`
	TotalRequired   int      `json:"total_required"`
	TotalMatched    int      `json:"total_matched"`
}

// ExperienceMatch describes how the candidate's years compare to the requirement.
type ExperienceMatch struct {
	Score            float64 `json:"score"` // 0-100
	MeetsRequirement bool    `json:"meets_requirement"`
	Difference       float64 `json:"difference"` // candidate years - required years
}

// EducationMatch describes how the candidate's education compares to the requirement.
type EducationMatch struct {
	Score            float64        `json:"score"` // 0-100
	MeetsRequirement bool           `json:"meets_requirement"`
	CandidateLevel   EducationLevel `json:"candidate_level"`
	RequiredLevel    EducationLevel `json:"required_level"`
}

// MatchResult is the full scoring outcome for one (profile, job) pair.
// It is a pure function of its inputs; identical inputs produce identical results.
type MatchResult struct {
	CandidateName string `json:"candidate_name,omitempty"`
	Filename      string `json:"filename"`

	OverallScore float64 `json:"overall_score"` // 0-100
	FitLevel     string  `json:"fit_level"`     // Excellent, Good, Fair, Poor

	SkillMatch         SkillMatch      `json:"skill_match"`
	ExperienceMatch    ExperienceMatch `json:"experience_match"`
	EducationMatch     EducationMatch  `json:"education_match"`
	TextSimilarity     float64         `json:"text_similarity"`     // 0-100
	SemanticSimilarity float64         `json:"semantic_similarity"` // 0-100

	// SemanticSkipped is true when the embedding backend was unavailable and
	// the semantic sub-score was excluded, with remaining weights renormalized.
	SemanticSkipped bool `json:"semantic_skipped,omitempty"`

	Recommendations []string `json:"recommendations"`
}

// BatchEntryError records a candidate that could not be scored.
type BatchEntryError struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// BatchResult aggregates the outcome of scoring many candidates against one job.
// Results are sorted by overall score descending, ties broken by candidate name.
type BatchResult struct {
	BatchID   string            `json:"batch_id"`
	JobTitle  string            `json:"job_title"`
	Results   []MatchResult     `json:"results"`
	Failed    []BatchEntryError `json:"failed"`
	Total     int               `json:"total"`
	ElapsedMS int64             `json:"elapsed_ms"`
}
