// Package view tracks which form section is on screen and gates export.
package view

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jonathan/resumeforge/internal/builder"
	"github.com/jonathan/resumeforge/internal/completion"
	"github.com/jonathan/resumeforge/internal/types"
)

// ErrNotEligible is returned by Export when the resume is below the export threshold.
var ErrNotEligible = errors.New("resume is not complete enough to export")

// Layout selects how the sections are presented.
type Layout string

const (
	// LayoutTabs shows one tab per section plus a preview tab.
	LayoutTabs Layout = "tabs"
	// LayoutSteps walks the sections as numbered steps with a side-by-side preview.
	LayoutSteps Layout = "steps"
)

// ParseLayout resolves a layout name; empty means tabs.
func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case "", LayoutTabs:
		return LayoutTabs, nil
	case LayoutSteps:
		return LayoutSteps, nil
	}
	return "", fmt.Errorf("unknown layout %q (want %q or %q)", s, LayoutTabs, LayoutSteps)
}

// Printer is the external "print the current view" capability.
type Printer interface {
	Print(ctx context.Context) error
}

// Controller is the section cursor over a Store.
type Controller struct {
	store   *builder.Store
	printer Printer
	layout  Layout
	active  types.Section
}

// New creates a controller positioned on the personal section.
func New(store *builder.Store, printer Printer, layout Layout) *Controller {
	if layout == "" {
		layout = LayoutTabs
	}
	return &Controller{
		store:   store,
		printer: printer,
		layout:  layout,
		active:  types.SectionPersonal,
	}
}

// Active returns the section on screen.
func (c *Controller) Active() types.Section {
	return c.active
}

// Layout returns the presentation layout.
func (c *Controller) Layout() Layout {
	return c.layout
}

// Step returns the 1-based step number of the active section, or 0 on the preview tab.
func (c *Controller) Step() int {
	return slices.Index(types.FormSections, c.active) + 1
}

// StepCount is the number of form steps.
func (c *Controller) StepCount() int {
	return len(types.FormSections)
}

// Sections lists what the layout can show, in order.
func (c *Controller) Sections() []types.Section {
	sections := slices.Clone(types.FormSections)
	if c.layout == LayoutTabs {
		sections = append(sections, types.SectionPreview)
	}
	return sections
}

// GoTo jumps to any section the layout offers. Completeness of earlier
// sections is not checked.
func (c *Controller) GoTo(section types.Section) error {
	if !slices.Contains(c.Sections(), section) {
		return fmt.Errorf("section %q is not available in the %s layout", section, c.layout)
	}
	c.active = section
	return nil
}

// Advance moves to the next form section and stays put on the last one.
// The preview tab has no next section.
func (c *Controller) Advance() {
	i := slices.Index(types.FormSections, c.active)
	if i < 0 || i == len(types.FormSections)-1 {
		return
	}
	c.active = types.FormSections[i+1]
}

// Retreat moves to the previous form section and stays put on the first one.
// From the preview tab it returns to the last form section.
func (c *Controller) Retreat() {
	i := slices.Index(types.FormSections, c.active)
	switch {
	case i < 0:
		c.active = types.FormSections[len(types.FormSections)-1]
	case i > 0:
		c.active = types.FormSections[i-1]
	}
}

// Reset puts the cursor back on the personal section.
func (c *Controller) Reset() {
	c.active = types.SectionPersonal
}

// Progress evaluates the current store.
func (c *Controller) Progress() completion.Report {
	return completion.BuildReport(c.store.Snapshot())
}

// CanExport reports whether Export would print.
func (c *Controller) CanExport() bool {
	return completion.CanExport(c.store.Snapshot())
}

// Export prints the current resume. It refuses with ErrNotEligible below the
// export threshold, without calling the printer.
func (c *Controller) Export(ctx context.Context) error {
	if !c.CanExport() {
		return fmt.Errorf("%w: %d%% complete, %d%% required",
			ErrNotEligible, completion.Percentage(c.store.Snapshot()), completion.ExportThreshold)
	}
	if c.printer == nil {
		return errors.New("no printer configured")
	}
	return c.printer.Print(ctx)
}
