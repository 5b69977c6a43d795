package builder

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/jonathan/resumeforge/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestNew_Empty(t *testing.T) {
	s := New()
	snap := s.Snapshot()

	assert.Equal(t, types.PersonalInfo{}, snap.Personal)
	assert.Empty(t, snap.Experience)
	assert.Empty(t, snap.Education)
	assert.Empty(t, snap.Skills)
}

func TestAdd_AppendsWithDefaults(t *testing.T) {
	s := New(WithIDGenerator(sequentialIDs()))

	expID := s.AddExperience()
	eduID := s.AddEducation()
	skillID := s.AddSkill()

	assert.Equal(t, []types.Experience{{ID: expID}}, s.Experience())
	assert.Equal(t, []types.Education{{ID: eduID}}, s.Education())
	assert.Equal(t, []types.Skill{{ID: skillID, Level: types.SkillIntermediate}}, s.Skills())
}

func TestAdd_UUIDsAreUnique(t *testing.T) {
	s := New()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := s.AddExperience()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestAddRemove_IDsStayUnique(t *testing.T) {
	s := New()
	rng := rand.New(rand.NewSource(42))
	var live []string
	adds, removes := 0, 0

	for i := 0; i < 200; i++ {
		if len(live) == 0 || rng.Intn(3) > 0 {
			live = append(live, s.AddSkill())
			adds++
			continue
		}
		pos := rng.Intn(len(live))
		s.RemoveSkill(live[pos])
		live = append(live[:pos], live[pos+1:]...)
		removes++
	}

	skills := s.Skills()
	require.Len(t, skills, adds-removes)

	seen := map[string]bool{}
	for i, sk := range skills {
		assert.False(t, seen[sk.ID])
		seen[sk.ID] = true
		assert.Equal(t, live[i], sk.ID, "order must follow insertion order")
	}
}

func TestRemove_PreservesOrder(t *testing.T) {
	s := New(WithIDGenerator(sequentialIDs()))
	a := s.AddEducation()
	b := s.AddEducation()
	c := s.AddEducation()

	s.RemoveEducation(b)

	edu := s.Education()
	require.Len(t, edu, 2)
	assert.Equal(t, a, edu[0].ID)
	assert.Equal(t, c, edu[1].ID)
}

func TestRemove_UnknownIDIsNoOp(t *testing.T) {
	s := New(WithIDGenerator(sequentialIDs()))
	s.AddExperience()
	before := s.Snapshot()

	s.RemoveExperience("missing")
	s.RemoveEducation("missing")
	s.RemoveSkill("missing")

	assert.Equal(t, before, s.Snapshot())
}

func TestUpdate_ChangesOnlyTargetField(t *testing.T) {
	s := New(WithIDGenerator(sequentialIDs()))
	first := s.AddExperience()
	second := s.AddExperience()
	require.NoError(t, s.UpdateExperience(first, types.ExperienceCompany, "Acme"))
	require.NoError(t, s.UpdateExperience(second, types.ExperienceCompany, "Globex"))
	before := s.Experience()

	require.NoError(t, s.UpdateExperience(second, types.ExperiencePosition, "Engineer"))

	after := s.Experience()
	assert.Equal(t, before[0], after[0])

	expected := before[1]
	expected.Position = "Engineer"
	assert.Equal(t, expected, after[1])
}

func TestUpdate_UnknownIDIsNoOp(t *testing.T) {
	s := New(WithIDGenerator(sequentialIDs()))
	s.AddSkill()
	before := s.Snapshot()

	assert.NoError(t, s.UpdateSkill("missing", types.SkillName, "Go"))
	assert.NoError(t, s.UpdateEducation("missing", types.EducationSchool, "MIT"))
	assert.NoError(t, s.UpdateExperience("missing", types.ExperienceCompany, "Acme"))

	assert.Equal(t, before, s.Snapshot())
}

func TestUpdate_InvalidValueLeavesEntry(t *testing.T) {
	s := New(WithIDGenerator(sequentialIDs()))
	id := s.AddSkill()

	err := s.UpdateSkill(id, types.SkillLevelField, "Wizard")
	require.Error(t, err)
	assert.Equal(t, types.SkillIntermediate, s.Skills()[0].Level)
}

func TestSetPersonalField(t *testing.T) {
	s := New()
	require.NoError(t, s.SetPersonalField(types.PersonalFullName, "Ada Lovelace"))
	require.NoError(t, s.SetPersonalField(types.PersonalSummary, "first\nsecond"))

	p := s.Personal()
	assert.Equal(t, "Ada Lovelace", p.FullName)
	assert.Equal(t, "first\nsecond", p.Summary)
	assert.Equal(t, "", p.Email)

	assert.ErrorIs(t, s.SetPersonalField("age", "36"), types.ErrUnknownField)
}

func TestReadersReturnCopies(t *testing.T) {
	s := New(WithIDGenerator(sequentialIDs()))
	s.AddExperience()

	exp := s.Experience()
	exp[0].Company = "mutated"
	snap := s.Snapshot()
	snap.Experience[0].Position = "mutated"

	assert.Equal(t, "", s.Experience()[0].Company)
	assert.Equal(t, "", s.Experience()[0].Position)
}

func TestSnapshotIsStableAfterRemove(t *testing.T) {
	s := New(WithIDGenerator(sequentialIDs()))
	a := s.AddSkill()
	s.AddSkill()
	snap := s.Snapshot()

	s.RemoveSkill(a)

	require.Len(t, snap.Skills, 2)
	assert.Equal(t, a, snap.Skills[0].ID)
}

func TestReset(t *testing.T) {
	s := New()
	require.NoError(t, s.SetPersonalField(types.PersonalEmail, "a@b.com"))
	s.AddExperience()
	s.AddSkill()

	s.Reset()

	assert.Equal(t, types.Resume{}, s.Snapshot())
}

func TestIDAt(t *testing.T) {
	s := New(WithIDGenerator(sequentialIDs()))
	a := s.AddExperience()
	b := s.AddExperience()

	id, ok := s.IDAt(types.SectionExperience, 1)
	require.True(t, ok)
	assert.Equal(t, b, id)

	id, ok = s.IDAt(types.SectionExperience, 0)
	require.True(t, ok)
	assert.Equal(t, a, id)

	_, ok = s.IDAt(types.SectionExperience, 2)
	assert.False(t, ok)
	_, ok = s.IDAt(types.SectionPersonal, 0)
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len(types.SectionExperience))
}
