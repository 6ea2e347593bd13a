package types

// JobDescription represents the structured requirements for one role.
// It is supplied per request and never mutated by the engine.
type JobDescription struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description,omitempty"`

	// RequiredSkills are matched case-insensitively against candidate skills.
	// Each entry must be non-empty when the list is present.
	RequiredSkills []string `json:"required_skills,omitempty" validate:"omitempty,dive,min=1"`

	// RequiredEducation is the minimum education level, or empty for no requirement.
	RequiredEducation string `json:"required_education,omitempty" validate:"omitempty,oneof=none high_school associate bachelors masters doctorate"`

	// RequiredYears is the minimum years of experience, 0 for no requirement.
	RequiredYears float64 `json:"required_years,omitempty" validate:"omitempty,gte=0"`
}

// MinEducationLevel returns the required education level, or EducationNone
// when the job has no education requirement.
func (j *JobDescription) MinEducationLevel() EducationLevel {
	if j.RequiredEducation == "" {
		return EducationNone
	}
	return ParseEducationLevel(j.RequiredEducation)
}
