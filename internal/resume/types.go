// Package resume extracts structured fields from raw resume text using
// line-shape heuristics. Extraction is best effort: fields that no rule
// recognizes come back null or empty, never as an error.
package resume

// Structured is the parsed view of a resume.
type Structured struct {
	Name       *string           `json:"name"`
	Email      *string           `json:"email"`
	Phone      *string           `json:"phone"`
	Skills     []string          `json:"skills"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
}

// EducationEntry pairs a degree with the school line that follows it.
// Year is only set when the school line carries a lone year instead of
// a date range.
type EducationEntry struct {
	Degree   string  `json:"degree"`
	School   *string `json:"school"`
	Location *string `json:"location"`
	Start    *string `json:"start"`
	End      *string `json:"end"`
	Year     *string `json:"year"`
}

// ExperienceEntry is one role from an experience section.
type ExperienceEntry struct {
	Company  *string  `json:"company"`
	Title    *string  `json:"title"`
	Location *string  `json:"location"`
	Start    *string  `json:"start"`
	End      *string  `json:"end"`
	Bullets  []string `json:"bullets"`
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
