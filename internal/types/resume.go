// Package types provides type definitions for the resume data model shared across the resumeforge packages.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PersonalInfo holds the singleton contact block of a resume.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	Summary  string `json:"summary"`
}

// Experience is one work history entry. When Current is set, EndDate is kept
// but not displayed.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education is one school entry.
type Education struct {
	ID        string `json:"id"`
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	GPA       string `json:"gpa"`
}

// Skill is a named skill with a proficiency level.
type Skill struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

// Resume is a value snapshot of everything the user has entered.
type Resume struct {
	Personal   PersonalInfo `json:"personal"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Skills     []Skill      `json:"skills"`
}

// NewExperience returns an entry with every field at its default.
func NewExperience(id string) Experience {
	return Experience{ID: id}
}

// NewEducation returns an entry with every field at its default.
func NewEducation(id string) Education {
	return Education{ID: id}
}

// NewSkill returns a skill with an empty name at the default level.
func NewSkill(id string) Skill {
	return Skill{ID: id, Level: DefaultSkillLevel}
}
