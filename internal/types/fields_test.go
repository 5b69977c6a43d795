package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntries_Defaults(t *testing.T) {
	exp := NewExperience("e1")
	assert.Equal(t, Experience{ID: "e1"}, exp)
	assert.False(t, exp.Current)

	edu := NewEducation("d1")
	assert.Equal(t, Education{ID: "d1"}, edu)

	skill := NewSkill("s1")
	assert.Equal(t, "s1", skill.ID)
	assert.Equal(t, "", skill.Name)
	assert.Equal(t, SkillIntermediate, skill.Level)
}

func TestPersonalInfo_SetAndGet(t *testing.T) {
	var p PersonalInfo
	for _, f := range PersonalFields {
		require.NoError(t, p.Set(f, "v-"+string(f)))
	}
	for _, f := range PersonalFields {
		assert.Equal(t, "v-"+string(f), p.Get(f))
	}
	assert.Equal(t, "v-linkedin", p.LinkedIn)
}

func TestPersonalInfo_SetUnknownField(t *testing.T) {
	var p PersonalInfo
	err := p.Set(PersonalField("nickname"), "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownField))
	assert.Equal(t, PersonalInfo{}, p)
}

func TestExperience_SetCurrentKeepsEndDate(t *testing.T) {
	exp := NewExperience("e1")
	require.NoError(t, exp.Set(ExperienceEndDate, "2022-01"))
	require.NoError(t, exp.Set(ExperienceCurrent, "true"))

	assert.True(t, exp.Current)
	assert.Equal(t, "2022-01", exp.EndDate)
}

func TestExperience_SetCurrentRejectsNonBool(t *testing.T) {
	exp := NewExperience("e1")
	err := exp.Set(ExperienceCurrent, "sometimes")

	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "current", invalid.Field)
	assert.False(t, exp.Current)
}

func TestExperience_DescriptionKeepsLineBreaks(t *testing.T) {
	exp := NewExperience("e1")
	require.NoError(t, exp.Set(ExperienceDescription, "line one\nline two"))
	assert.Equal(t, "line one\nline two", exp.Description)
}

func TestEducation_SetAllFields(t *testing.T) {
	edu := NewEducation("d1")
	require.NoError(t, edu.Set(EducationSchool, "MIT"))
	require.NoError(t, edu.Set(EducationDegree, "BSc"))
	require.NoError(t, edu.Set(EducationStudyField, "Physics"))
	require.NoError(t, edu.Set(EducationStartDate, "2014-09"))
	require.NoError(t, edu.Set(EducationEndDate, "2018-06"))
	require.NoError(t, edu.Set(EducationGPA, "3.9"))

	assert.Equal(t, Education{
		ID: "d1", School: "MIT", Degree: "BSc", Field: "Physics",
		StartDate: "2014-09", EndDate: "2018-06", GPA: "3.9",
	}, edu)
}

func TestSkill_SetLevel(t *testing.T) {
	skill := NewSkill("s1")
	require.NoError(t, skill.Set(SkillLevelField, "expert"))
	assert.Equal(t, SkillExpert, skill.Level)

	err := skill.Set(SkillLevelField, "Guru")
	require.Error(t, err)
	assert.Equal(t, SkillExpert, skill.Level)
}

func TestParseFields(t *testing.T) {
	tests := []struct {
		name    string
		parse   func(string) error
		input   string
		wantErr bool
	}{
		{"personal camel case", func(s string) error { _, err := ParsePersonalField(s); return err }, "fullName", false},
		{"personal lower case", func(s string) error { _, err := ParsePersonalField(s); return err }, "fullname", false},
		{"personal unknown", func(s string) error { _, err := ParsePersonalField(s); return err }, "age", true},
		{"experience", func(s string) error { _, err := ParseExperienceField(s); return err }, "startDate", false},
		{"experience unknown", func(s string) error { _, err := ParseExperienceField(s); return err }, "gpa", true},
		{"education", func(s string) error { _, err := ParseEducationField(s); return err }, "gpa", false},
		{"skill", func(s string) error { _, err := ParseSkillField(s); return err }, "level", false},
		{"skill unknown", func(s string) error { _, err := ParseSkillField(s); return err }, "company", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownField)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseSection(t *testing.T) {
	s, err := ParseSection("Skill")
	require.NoError(t, err)
	assert.Equal(t, SectionSkills, s)

	s, err = ParseSection("edu")
	require.NoError(t, err)
	assert.Equal(t, SectionEducation, s)

	for alias, want := range map[string]Section{
		"info": SectionPersonal, "exp": SectionExperience, "skills": SectionSkills, "PREVIEW": SectionPreview,
	} {
		s, err = ParseSection(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, want, s, alias)
	}

	_, err = ParseSection("hobbies")
	assert.Error(t, err)

	assert.Equal(t, "Personal Info", SectionPersonal.Title())
}
