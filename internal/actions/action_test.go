package actions

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jonathan/resumeforge/internal/builder"
	"github.com/jonathan/resumeforge/internal/logger"
	"github.com/jonathan/resumeforge/internal/types"
	"github.com/jonathan/resumeforge/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingPrinter struct {
	calls int
}

func (p *recordingPrinter) Print(context.Context) error {
	p.calls++
	return nil
}

func newTestSession(layout view.Layout) (*Session, *recordingPrinter) {
	n := 0
	store := builder.New(builder.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}))
	printer := &recordingPrinter{}
	return NewSession(store, view.New(store, printer, layout), nil), printer
}

func apply(t *testing.T, s *Session, a Action) string {
	t.Helper()
	msg, err := s.Apply(context.Background(), a)
	require.NoError(t, err, a.String())
	return msg
}

func TestApply_SetPersonal(t *testing.T) {
	s, _ := newTestSession(view.LayoutTabs)

	apply(t, s, Action{Op: OpSet, Field: "fullName", Value: "Ada"})
	apply(t, s, Action{Op: OpSet, Field: "EMAIL", Value: "ada@example.com"})

	p := s.Store.Personal()
	assert.Equal(t, "Ada", p.FullName)
	assert.Equal(t, "ada@example.com", p.Email)

	_, err := s.Apply(context.Background(), Action{Op: OpSet, Field: "age", Value: "36"})
	assert.ErrorIs(t, err, types.ErrUnknownField)
}

func TestApply_AddUpdateRemoveByPosition(t *testing.T) {
	s, _ := newTestSession(view.LayoutTabs)

	msg := apply(t, s, Action{Op: OpAdd, Section: "experience"})
	assert.Equal(t, "added experience #1 (id-1)", msg)
	apply(t, s, Action{Op: OpAdd, Section: "exp"})

	apply(t, s, Action{Op: OpUpdate, Section: "experience", Ref: "2", Field: "company", Value: "Globex"})
	apply(t, s, Action{Op: OpUpdate, Section: "experience", Ref: "id-1", Field: "company", Value: "Acme"})
	apply(t, s, Action{Op: OpUpdate, Section: "experience", Ref: "last", Field: "current", Value: "true"})

	exp := s.Store.Experience()
	require.Len(t, exp, 2)
	assert.Equal(t, "Acme", exp[0].Company)
	assert.Equal(t, "Globex", exp[1].Company)
	assert.True(t, exp[1].Current)

	apply(t, s, Action{Op: OpRemove, Section: "experience", Ref: "1"})
	exp = s.Store.Experience()
	require.Len(t, exp, 1)
	assert.Equal(t, "id-2", exp[0].ID)
}

func TestApply_UnknownRefIsNoOp(t *testing.T) {
	s, _ := newTestSession(view.LayoutTabs)
	apply(t, s, Action{Op: OpAdd, Section: "skills"})
	before := s.Store.Snapshot()

	msg := apply(t, s, Action{Op: OpUpdate, Section: "skills", Ref: "7", Field: "name", Value: "Go"})
	assert.Contains(t, msg, "nothing changed")
	apply(t, s, Action{Op: OpUpdate, Section: "skills", Ref: "no-such-id", Field: "name", Value: "Go"})
	apply(t, s, Action{Op: OpRemove, Section: "skills", Ref: "no-such-id"})
	apply(t, s, Action{Op: OpRemove, Section: "education", Ref: "last"})

	assert.Equal(t, before, s.Store.Snapshot())
}

func TestApply_UnknownRefIsLogged(t *testing.T) {
	s, _ := newTestSession(view.LayoutTabs)
	core, logs := observer.New(zap.WarnLevel)
	s.Log = &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	apply(t, s, Action{Op: OpRemove, Section: "skills", Ref: "3"})

	entries := logs.FilterMessage("entry not found").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "3", entries[0].ContextMap()["ref"])
}

func TestApply_EntryOpsNeedCollection(t *testing.T) {
	s, _ := newTestSession(view.LayoutTabs)

	_, err := s.Apply(context.Background(), Action{Op: OpAdd, Section: "personal"})
	assert.ErrorIs(t, err, ErrNotCollection)

	_, err = s.Apply(context.Background(), Action{Op: OpAdd, Section: "hobbies"})
	assert.Error(t, err)
}

func TestApply_UpdateBadField(t *testing.T) {
	s, _ := newTestSession(view.LayoutTabs)
	apply(t, s, Action{Op: OpAdd, Section: "education"})

	_, err := s.Apply(context.Background(), Action{Op: OpUpdate, Section: "education", Ref: "1", Field: "company", Value: "x"})
	assert.ErrorIs(t, err, types.ErrUnknownField)
}

func TestApply_Navigation(t *testing.T) {
	s, _ := newTestSession(view.LayoutSteps)

	apply(t, s, Action{Op: OpNext})
	assert.Equal(t, types.SectionExperience, s.View.Active())

	apply(t, s, Action{Op: OpGoTo, Section: "skills"})
	apply(t, s, Action{Op: OpNext})
	assert.Equal(t, types.SectionSkills, s.View.Active())

	apply(t, s, Action{Op: OpBack})
	assert.Equal(t, types.SectionEducation, s.View.Active())

	_, err := s.Apply(context.Background(), Action{Op: OpGoTo, Section: "preview"})
	assert.Error(t, err)
}

func TestApply_ExportIsGated(t *testing.T) {
	s, printer := newTestSession(view.LayoutTabs)

	_, err := s.Apply(context.Background(), Action{Op: OpExport})
	assert.ErrorIs(t, err, view.ErrNotEligible)
	assert.Equal(t, 0, printer.calls)

	apply(t, s, Action{Op: OpAdd, Section: "skills"})
	apply(t, s, Action{Op: OpAdd, Section: "education"})
	apply(t, s, Action{Op: OpExport})
	assert.Equal(t, 1, printer.calls)
}

func TestApply_Reset(t *testing.T) {
	s, _ := newTestSession(view.LayoutTabs)
	apply(t, s, Action{Op: OpSet, Field: "fullName", Value: "Ada"})
	apply(t, s, Action{Op: OpAdd, Section: "skills"})
	apply(t, s, Action{Op: OpGoTo, Section: "skills"})

	apply(t, s, Action{Op: OpReset})

	assert.Equal(t, types.Resume{}, s.Store.Snapshot())
	assert.Equal(t, types.SectionPersonal, s.View.Active())
}

func TestApply_UnknownOp(t *testing.T) {
	s, _ := newTestSession(view.LayoutTabs)
	_, err := s.Apply(context.Background(), Action{Op: "undo"})
	assert.Error(t, err)
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	s, _ := newTestSession(view.LayoutTabs)

	err := s.Run(context.Background(), []Action{
		{Op: OpAdd, Section: "skills"},
		{Op: OpUpdate, Section: "skills", Ref: "1", Field: "level", Value: "Wizard"},
		{Op: OpAdd, Section: "skills"},
	})

	var scriptErr *ScriptError
	require.ErrorAs(t, err, &scriptErr)
	assert.Equal(t, 1, scriptErr.Index)
	assert.Contains(t, err.Error(), "action 2 (update skills 1 level)")
	assert.Equal(t, 1, s.Store.Len(types.SectionSkills))
}

func TestRun_CancelledContext(t *testing.T) {
	s, _ := newTestSession(view.LayoutTabs)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, []Action{{Op: OpAdd, Section: "skills"}})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, s.Store.Len(types.SectionSkills))
}
