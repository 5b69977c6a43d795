// Package observability provides the boxed console summaries shown while
// editing: progress, the fields of a section, and exported documents.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resumeforge/internal/completion"
	"github.com/jonathan/resumeforge/internal/export"
	"github.com/jonathan/resumeforge/internal/preview"
	"github.com/jonathan/resumeforge/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// barWidth is the number of cells in the progress bar
	barWidth = 20
	// maxLinesToShow caps the text excerpt of an exported document
	maxLinesToShow = 5
)

// Printer handles formatted console output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to the console; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4)))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad right-fills s to the inner box width, counting runes.
func pad(s string) string {
	n := len([]rune(s))
	if n >= boxWidth-4 {
		return s
	}
	return s + strings.Repeat(" ", boxWidth-4-n)
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

// ProgressBar renders pct as a fixed-width bar.
func ProgressBar(pct int) string {
	pct = max(0, min(pct, 100))
	filled := pct * barWidth / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + "]"
}

// PrintProgress outputs the completion state of every form section.
func (p *Printer) PrintProgress(rep completion.Report, active types.Section) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s %d%%\n\n", ProgressBar(rep.Percentage), rep.Percentage))
	for _, s := range rep.Sections {
		mark := "·"
		if s.Complete {
			mark = "✓"
		}
		cursor := " "
		if s.Section == active {
			cursor = ">"
		}
		line := fmt.Sprintf("%s %s %s", cursor, mark, s.Section.Title())
		if s.Section != types.SectionPersonal {
			line += fmt.Sprintf(" (%d)", s.Entries)
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\n")
	if rep.CanExport {
		sb.WriteString("Export: ready")
	} else {
		sb.WriteString(fmt.Sprintf("Export: available at %d%%", completion.ExportThreshold))
	}

	p.printBox("PROGRESS", sb.String())
}

// PrintSection outputs the current values of one section. Collection
// entries are numbered from 1 so they can be referenced by position.
func (p *Printer) PrintSection(r types.Resume, section types.Section) {
	var sb strings.Builder

	switch section {
	case types.SectionPersonal:
		for _, f := range types.PersonalFields {
			sb.WriteString(fmt.Sprintf("%-9s %s\n", string(f)+":", firstLine(r.Personal.Get(f))))
		}
	case types.SectionExperience:
		for i, e := range r.Experience {
			sb.WriteString(fmt.Sprintf("#%d %s\n", i+1, e.ID))
			sb.WriteString(fmt.Sprintf("   %s @ %s\n", orDash(e.Position), orDash(e.Company)))
			sb.WriteString(fmt.Sprintf("   %s\n", preview.ExperienceDateRange(e)))
		}
	case types.SectionEducation:
		for i, e := range r.Education {
			sb.WriteString(fmt.Sprintf("#%d %s\n", i+1, e.ID))
			sb.WriteString(fmt.Sprintf("   %s in %s, %s\n", orDash(e.Degree), orDash(e.Field), orDash(e.School)))
			sb.WriteString(fmt.Sprintf("   %s\n", preview.EducationDateRange(e)))
		}
	case types.SectionSkills:
		for i, s := range r.Skills {
			sb.WriteString(fmt.Sprintf("#%d %s (%s)  %s\n", i+1, orDash(s.Name), s.Level, s.ID))
		}
	}

	content := strings.TrimSuffix(sb.String(), "\n")
	if content == "" {
		content = "No entries yet. Use \"add " + string(section) + "\"."
	}
	p.printBox(strings.ToUpper(section.Title()), content)
}

// PrintDocument outputs a summary of an exported PDF.
func (p *Printer) PrintDocument(path string, doc *export.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:   %s\n", path))
	sb.WriteString(fmt.Sprintf("Pages:  %d\n", doc.Pages))

	var lines []string
	for _, l := range strings.Split(doc.Text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) > 0 {
		sb.WriteString("\n")
		count := min(len(lines), maxLinesToShow)
		for _, l := range lines[:count] {
			sb.WriteString(l + "\n")
		}
		if len(lines) > maxLinesToShow {
			sb.WriteString(fmt.Sprintf("... and %d more lines\n", len(lines)-maxLinesToShow))
		}
	}

	p.printBox("EXPORTED PDF", strings.TrimSuffix(sb.String(), "\n"))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
