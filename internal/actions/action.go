// Package actions applies form input events to a resume session. The
// interactive console and replayed scripts both go through Apply.
package actions

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resumeforge/internal/builder"
	"github.com/jonathan/resumeforge/internal/logger"
	"github.com/jonathan/resumeforge/internal/types"
	"github.com/jonathan/resumeforge/internal/view"
)

// Op is the kind of form event.
type Op string

const (
	OpSet    Op = "set"
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpRemove Op = "remove"
	OpGoTo   Op = "goto"
	OpNext   Op = "next"
	OpBack   Op = "back"
	OpReset  Op = "reset"
	OpExport Op = "export"
)

// Action is one form event. Ref names an entry by id, 1-based position or "last".
type Action struct {
	Op      Op     `yaml:"op" json:"op"`
	Section string `yaml:"section,omitempty" json:"section,omitempty"`
	Ref     string `yaml:"ref,omitempty" json:"ref,omitempty"`
	Field   string `yaml:"field,omitempty" json:"field,omitempty"`
	Value   string `yaml:"value,omitempty" json:"value,omitempty"`
}

func (a Action) String() string {
	parts := []string{string(a.Op)}
	for _, p := range []string{a.Section, a.Ref, a.Field} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// ErrNotCollection is returned when an entry operation names the personal or preview section.
var ErrNotCollection = errors.New("section has no entries")

// Session is one editing session: the store plus its section cursor.
type Session struct {
	Store *builder.Store
	View  *view.Controller
	Log   *logger.Logger
}

// NewSession wires a store and controller together.
func NewSession(store *builder.Store, ctrl *view.Controller, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	return &Session{Store: store, View: ctrl, Log: log}
}

// Apply performs a and returns a short description of the outcome.
func (s *Session) Apply(ctx context.Context, a Action) (string, error) {
	s.Log.Debug("applying action", "op", a.Op, "section", a.Section, "ref", a.Ref, "field", a.Field)

	switch a.Op {
	case OpSet:
		field, err := types.ParsePersonalField(a.Field)
		if err != nil {
			return "", err
		}
		if err := s.Store.SetPersonalField(field, a.Value); err != nil {
			return "", err
		}
		return fmt.Sprintf("set %s", field), nil

	case OpAdd:
		section, err := collection(a.Section)
		if err != nil {
			return "", err
		}
		var id string
		switch section {
		case types.SectionExperience:
			id = s.Store.AddExperience()
		case types.SectionEducation:
			id = s.Store.AddEducation()
		case types.SectionSkills:
			id = s.Store.AddSkill()
		}
		return fmt.Sprintf("added %s #%d (%s)", section, s.Store.Len(section), id), nil

	case OpUpdate:
		section, err := collection(a.Section)
		if err != nil {
			return "", err
		}
		id, ok := s.resolve(section, a.Ref)
		if !ok {
			s.Log.Warn("entry not found", "op", a.Op, "section", section, "ref", a.Ref)
			return fmt.Sprintf("no %s entry %q, nothing changed", section, a.Ref), nil
		}
		if err := s.update(section, id, a.Field, a.Value); err != nil {
			return "", err
		}
		return fmt.Sprintf("updated %s %s", section, a.Field), nil

	case OpRemove:
		section, err := collection(a.Section)
		if err != nil {
			return "", err
		}
		id, ok := s.resolve(section, a.Ref)
		if !ok {
			s.Log.Warn("entry not found", "op", a.Op, "section", section, "ref", a.Ref)
			return fmt.Sprintf("no %s entry %q, nothing removed", section, a.Ref), nil
		}
		switch section {
		case types.SectionExperience:
			s.Store.RemoveExperience(id)
		case types.SectionEducation:
			s.Store.RemoveEducation(id)
		case types.SectionSkills:
			s.Store.RemoveSkill(id)
		}
		return fmt.Sprintf("removed %s %s", section, id), nil

	case OpGoTo:
		section, err := types.ParseSection(a.Section)
		if err != nil {
			return "", err
		}
		if err := s.View.GoTo(section); err != nil {
			return "", err
		}
		return "now on " + section.Title(), nil

	case OpNext:
		s.View.Advance()
		return "now on " + s.View.Active().Title(), nil

	case OpBack:
		s.View.Retreat()
		return "now on " + s.View.Active().Title(), nil

	case OpReset:
		s.Store.Reset()
		s.View.Reset()
		return "started a new resume", nil

	case OpExport:
		if err := s.View.Export(ctx); err != nil {
			return "", err
		}
		return "exported resume", nil
	}

	return "", fmt.Errorf("unknown action %q", a.Op)
}

func (s *Session) update(section types.Section, id, fieldName, value string) error {
	switch section {
	case types.SectionExperience:
		field, err := types.ParseExperienceField(fieldName)
		if err != nil {
			return err
		}
		return s.Store.UpdateExperience(id, field, value)
	case types.SectionEducation:
		field, err := types.ParseEducationField(fieldName)
		if err != nil {
			return err
		}
		return s.Store.UpdateEducation(id, field, value)
	case types.SectionSkills:
		field, err := types.ParseSkillField(fieldName)
		if err != nil {
			return err
		}
		return s.Store.UpdateSkill(id, field, value)
	}
	return fmt.Errorf("%w: %s", ErrNotCollection, section)
}

// resolve maps a ref to an entry id. Unknown ids are passed through so the
// store can ignore them; positions outside the collection do not resolve.
func (s *Session) resolve(section types.Section, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	if strings.EqualFold(ref, "last") {
		return s.Store.IDAt(section, s.Store.Len(section)-1)
	}
	if n, err := strconv.Atoi(ref); err == nil {
		return s.Store.IDAt(section, n-1)
	}
	return ref, true
}

func collection(name string) (types.Section, error) {
	section, err := types.ParseSection(name)
	if err != nil {
		return "", err
	}
	switch section {
	case types.SectionExperience, types.SectionEducation, types.SectionSkills:
		return section, nil
	}
	return "", fmt.Errorf("%w: %s", ErrNotCollection, section)
}
