// Package builder holds the in-memory resume being edited: the personal info
// record and the ordered experience, education and skill collections.
package builder

import (
	"slices"

	"github.com/google/uuid"
	"github.com/jonathan/resumeforge/internal/types"
)

// Store owns every entry of one editing session. It is not safe for
// concurrent use; the form front-end drives it from a single goroutine.
type Store struct {
	personal   types.PersonalInfo
	experience []types.Experience
	education  []types.Education
	skills     []types.Skill

	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the uuid-based id source. The generator must never
// return an id twice.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset discards everything entered so far.
func (s *Store) Reset() {
	s.personal = types.PersonalInfo{}
	s.experience = nil
	s.education = nil
	s.skills = nil
}

// SetPersonalField replaces one personal info field.
func (s *Store) SetPersonalField(field types.PersonalField, value string) error {
	return s.personal.Set(field, value)
}

// AddExperience appends a blank experience entry and returns its id.
func (s *Store) AddExperience() string {
	id := s.newID()
	s.experience = append(s.experience, types.NewExperience(id))
	return id
}

// UpdateExperience replaces one field of the entry with the given id.
// An unknown id is ignored.
func (s *Store) UpdateExperience(id string, field types.ExperienceField, value string) error {
	i := indexOf(s.experience, id, func(e types.Experience) string { return e.ID })
	if i < 0 {
		return nil
	}
	return s.experience[i].Set(field, value)
}

// RemoveExperience deletes the entry with the given id, if any.
func (s *Store) RemoveExperience(id string) {
	s.experience = removeID(s.experience, id, func(e types.Experience) string { return e.ID })
}

// AddEducation appends a blank education entry and returns its id.
func (s *Store) AddEducation() string {
	id := s.newID()
	s.education = append(s.education, types.NewEducation(id))
	return id
}

// UpdateEducation replaces one field of the entry with the given id.
// An unknown id is ignored.
func (s *Store) UpdateEducation(id string, field types.EducationField, value string) error {
	i := indexOf(s.education, id, func(e types.Education) string { return e.ID })
	if i < 0 {
		return nil
	}
	return s.education[i].Set(field, value)
}

// RemoveEducation deletes the entry with the given id, if any.
func (s *Store) RemoveEducation(id string) {
	s.education = removeID(s.education, id, func(e types.Education) string { return e.ID })
}

// AddSkill appends a skill at the default level and returns its id.
func (s *Store) AddSkill() string {
	id := s.newID()
	s.skills = append(s.skills, types.NewSkill(id))
	return id
}

// UpdateSkill replaces one field of the skill with the given id.
// An unknown id is ignored.
func (s *Store) UpdateSkill(id string, field types.SkillField, value string) error {
	i := indexOf(s.skills, id, func(sk types.Skill) string { return sk.ID })
	if i < 0 {
		return nil
	}
	return s.skills[i].Set(field, value)
}

// RemoveSkill deletes the skill with the given id, if any.
func (s *Store) RemoveSkill(id string) {
	s.skills = removeID(s.skills, id, func(sk types.Skill) string { return sk.ID })
}

// Personal returns a copy of the personal info record.
func (s *Store) Personal() types.PersonalInfo {
	return s.personal
}

// Experience returns a copy of the experience entries in display order.
func (s *Store) Experience() []types.Experience {
	return slices.Clone(s.experience)
}

// Education returns a copy of the education entries in display order.
func (s *Store) Education() []types.Education {
	return slices.Clone(s.education)
}

// Skills returns a copy of the skills in display order.
func (s *Store) Skills() []types.Skill {
	return slices.Clone(s.skills)
}

// Snapshot copies the whole store into a Resume value.
func (s *Store) Snapshot() types.Resume {
	return types.Resume{
		Personal:   s.personal,
		Experience: s.Experience(),
		Education:  s.Education(),
		Skills:     s.Skills(),
	}
}

// Len reports the number of entries held for a collection section.
// Personal and unknown sections report zero.
func (s *Store) Len(section types.Section) int {
	switch section {
	case types.SectionExperience:
		return len(s.experience)
	case types.SectionEducation:
		return len(s.education)
	case types.SectionSkills:
		return len(s.skills)
	}
	return 0
}

// IDAt returns the id of the entry at a 0-based position in a collection.
func (s *Store) IDAt(section types.Section, pos int) (string, bool) {
	if pos < 0 || pos >= s.Len(section) {
		return "", false
	}
	switch section {
	case types.SectionExperience:
		return s.experience[pos].ID, true
	case types.SectionEducation:
		return s.education[pos].ID, true
	case types.SectionSkills:
		return s.skills[pos].ID, true
	}
	return "", false
}

func indexOf[T any](items []T, id string, idOf func(T) string) int {
	return slices.IndexFunc(items, func(item T) bool { return idOf(item) == id })
}

// removeID keeps the relative order of the remaining items.
func removeID[T any](items []T, id string, idOf func(T) string) []T {
	i := indexOf(items, id, idOf)
	if i < 0 {
		return items
	}
	return slices.Delete(items, i, i+1)
}
