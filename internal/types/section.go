package types

import "strings"

// Section identifies one logical group of the form.
type Section string

const (
	SectionPersonal   Section = "personal"
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
	// SectionPreview is only reachable in the tabbed layout.
	SectionPreview Section = "preview"
)

// FormSections are the four sections tracked for completeness, in navigation order.
var FormSections = []Section{SectionPersonal, SectionExperience, SectionEducation, SectionSkills}

// Title returns the heading used for the section.
func (s Section) Title() string {
	switch s {
	case SectionPersonal:
		return "Personal Info"
	case SectionExperience:
		return "Experience"
	case SectionEducation:
		return "Education"
	case SectionSkills:
		return "Skills"
	case SectionPreview:
		return "Preview"
	default:
		return string(s)
	}
}

// ParseSection resolves a section name. "info", "exp", "edu" and "skill" are accepted as shorthands.
func ParseSection(s string) (Section, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "personal", "info":
		return SectionPersonal, nil
	case "experience", "exp":
		return SectionExperience, nil
	case "education", "edu":
		return SectionEducation, nil
	case "skills", "skill":
		return SectionSkills, nil
	case "preview":
		return SectionPreview, nil
	default:
		return "", &InvalidValueError{Field: "section", Value: s, Reason: "unknown section"}
	}
}
