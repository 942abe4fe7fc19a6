package model

// Go models for the resume being assembled by the form sections and rendered
// into the exported document.

type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type ExperienceEntry struct {
	Position    string `json:"position"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Snapshot is the complete resume state at one instant. Values handed out by
// the store are never mutated afterwards; use Clone before changing a copy.
type Snapshot struct {
	FullName   string            `json:"fullName"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Summary    string            `json:"summary"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	Skills     []string          `json:"skills"`
}

// Clone returns a deep copy whose slices share no backing arrays with s.
// Empty sequences come back as non-nil empty slices so JSON output is stable.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Education = append(make([]EducationEntry, 0, len(s.Education)), s.Education...)
	out.Experience = append(make([]ExperienceEntry, 0, len(s.Experience)), s.Experience...)
	out.Skills = append(make([]string, 0, len(s.Skills)), s.Skills...)
	return out
}
