package types

import (
	"fmt"
	"strings"
)

// SkillLevel is the proficiency attached to a Skill.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillExpert       SkillLevel = "Expert"

	// DefaultSkillLevel is assigned to newly added skills.
	DefaultSkillLevel = SkillIntermediate
)

// SkillLevels lists the levels in ascending order, as offered by the level picker.
var SkillLevels = []SkillLevel{SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert}

// ParseSkillLevel matches a level name case-insensitively.
func ParseSkillLevel(s string) (SkillLevel, error) {
	for _, lvl := range SkillLevels {
		if strings.EqualFold(string(lvl), strings.TrimSpace(s)) {
			return lvl, nil
		}
	}
	return "", &InvalidValueError{Field: "level", Value: s, Reason: fmt.Sprintf("must be one of %v", SkillLevels)}
}
