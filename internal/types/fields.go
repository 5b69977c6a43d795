package types

import (
	"strconv"
	"strings"
)

// PersonalField names an editable PersonalInfo field.
type PersonalField string

const (
	PersonalFullName PersonalField = "fullName"
	PersonalEmail    PersonalField = "email"
	PersonalPhone    PersonalField = "phone"
	PersonalLocation PersonalField = "location"
	PersonalWebsite  PersonalField = "website"
	PersonalLinkedIn PersonalField = "linkedin"
	PersonalSummary  PersonalField = "summary"
)

// PersonalFields lists the fields in form order.
var PersonalFields = []PersonalField{
	PersonalFullName, PersonalEmail, PersonalPhone, PersonalLocation,
	PersonalWebsite, PersonalLinkedIn, PersonalSummary,
}

// ExperienceField names an editable Experience field.
type ExperienceField string

const (
	ExperienceCompany     ExperienceField = "company"
	ExperiencePosition    ExperienceField = "position"
	ExperienceStartDate   ExperienceField = "startDate"
	ExperienceEndDate     ExperienceField = "endDate"
	ExperienceCurrent     ExperienceField = "current"
	ExperienceDescription ExperienceField = "description"
)

// ExperienceFields lists the fields in form order.
var ExperienceFields = []ExperienceField{
	ExperienceCompany, ExperiencePosition, ExperienceStartDate,
	ExperienceEndDate, ExperienceCurrent, ExperienceDescription,
}

// EducationField names an editable Education field.
type EducationField string

const (
	EducationSchool     EducationField = "school"
	EducationDegree     EducationField = "degree"
	EducationStudyField EducationField = "field"
	EducationStartDate  EducationField = "startDate"
	EducationEndDate    EducationField = "endDate"
	EducationGPA        EducationField = "gpa"
)

// EducationFields lists the fields in form order.
var EducationFields = []EducationField{
	EducationSchool, EducationDegree, EducationStudyField,
	EducationStartDate, EducationEndDate, EducationGPA,
}

// SkillField names an editable Skill field.
type SkillField string

const (
	SkillName       SkillField = "name"
	SkillLevelField SkillField = "level"
)

// SkillFields lists the fields in form order.
var SkillFields = []SkillField{SkillName, SkillLevelField}

// ParsePersonalField matches a field name case-insensitively.
func ParsePersonalField(s string) (PersonalField, error) {
	for _, f := range PersonalFields {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", &UnknownFieldError{Kind: "personal", Field: s}
}

// ParseExperienceField matches a field name case-insensitively.
func ParseExperienceField(s string) (ExperienceField, error) {
	for _, f := range ExperienceFields {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", &UnknownFieldError{Kind: "experience", Field: s}
}

// ParseEducationField matches a field name case-insensitively.
func ParseEducationField(s string) (EducationField, error) {
	for _, f := range EducationFields {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", &UnknownFieldError{Kind: "education", Field: s}
}

// ParseSkillField matches a field name case-insensitively.
func ParseSkillField(s string) (SkillField, error) {
	for _, f := range SkillFields {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", &UnknownFieldError{Kind: "skill", Field: s}
}

// Set replaces a single field.
func (p *PersonalInfo) Set(field PersonalField, value string) error {
	switch field {
	case PersonalFullName:
		p.FullName = value
	case PersonalEmail:
		p.Email = value
	case PersonalPhone:
		p.Phone = value
	case PersonalLocation:
		p.Location = value
	case PersonalWebsite:
		p.Website = value
	case PersonalLinkedIn:
		p.LinkedIn = value
	case PersonalSummary:
		p.Summary = value
	default:
		return &UnknownFieldError{Kind: "personal", Field: string(field)}
	}
	return nil
}

// Get returns the current value of a field, or "" for an unknown one.
func (p PersonalInfo) Get(field PersonalField) string {
	switch field {
	case PersonalFullName:
		return p.FullName
	case PersonalEmail:
		return p.Email
	case PersonalPhone:
		return p.Phone
	case PersonalLocation:
		return p.Location
	case PersonalWebsite:
		return p.Website
	case PersonalLinkedIn:
		return p.LinkedIn
	case PersonalSummary:
		return p.Summary
	}
	return ""
}

// Set replaces a single field. The current flag accepts anything strconv.ParseBool does.
// Setting current does not touch EndDate.
func (e *Experience) Set(field ExperienceField, value string) error {
	switch field {
	case ExperienceCompany:
		e.Company = value
	case ExperiencePosition:
		e.Position = value
	case ExperienceStartDate:
		e.StartDate = value
	case ExperienceEndDate:
		e.EndDate = value
	case ExperienceCurrent:
		current, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return &InvalidValueError{Field: string(field), Value: value, Reason: "expected true or false"}
		}
		e.Current = current
	case ExperienceDescription:
		e.Description = value
	default:
		return &UnknownFieldError{Kind: "experience", Field: string(field)}
	}
	return nil
}

// Set replaces a single field.
func (e *Education) Set(field EducationField, value string) error {
	switch field {
	case EducationSchool:
		e.School = value
	case EducationDegree:
		e.Degree = value
	case EducationStudyField:
		e.Field = value
	case EducationStartDate:
		e.StartDate = value
	case EducationEndDate:
		e.EndDate = value
	case EducationGPA:
		e.GPA = value
	default:
		return &UnknownFieldError{Kind: "education", Field: string(field)}
	}
	return nil
}

// Set replaces a single field. Levels are matched case-insensitively.
func (s *Skill) Set(field SkillField, value string) error {
	switch field {
	case SkillName:
		s.Name = value
	case SkillLevelField:
		lvl, err := ParseSkillLevel(value)
		if err != nil {
			return err
		}
		s.Level = lvl
	default:
		return &UnknownFieldError{Kind: "skill", Field: string(field)}
	}
	return nil
}
