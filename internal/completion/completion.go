// Package completion derives section completeness and the overall completion
// percentage from a resume snapshot. Nothing here is cached; every call
// recomputes from the snapshot it is given.
package completion

import (
	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resumeforge/internal/types"
)

// ExportThreshold is the minimum percentage at which export is offered.
const ExportThreshold = 50

var validate = validator.New()

// personalPresence carries the two fields the personal section needs.
type personalPresence struct {
	FullName string `validate:"required"`
	Email    string `validate:"required"`
}

// IsSectionComplete reports whether a section counts towards completion.
// Personal needs a name and an email; the collections need at least one
// entry, even a blank one. Preview and unknown sections are never complete.
func IsSectionComplete(r types.Resume, section types.Section) bool {
	switch section {
	case types.SectionPersonal:
		return validate.Struct(personalPresence{
			FullName: r.Personal.FullName,
			Email:    r.Personal.Email,
		}) == nil
	case types.SectionExperience:
		return len(r.Experience) > 0
	case types.SectionEducation:
		return len(r.Education) > 0
	case types.SectionSkills:
		return len(r.Skills) > 0
	}
	return false
}

// Percentage returns the share of complete sections, 0 to 100.
func Percentage(r types.Resume) int {
	done := 0
	for _, s := range types.FormSections {
		if IsSectionComplete(r, s) {
			done++
		}
	}
	return done * 100 / len(types.FormSections)
}

// CanExport reports whether the resume is far enough along to print.
func CanExport(r types.Resume) bool {
	return Percentage(r) >= ExportThreshold
}

// SectionStatus is one line of a progress report.
type SectionStatus struct {
	Section  types.Section `json:"section"`
	Complete bool          `json:"complete"`
	Entries  int           `json:"entries"`
}

// Report summarises progress for display.
type Report struct {
	Sections   []SectionStatus `json:"sections"`
	Percentage int             `json:"percentage"`
	CanExport  bool            `json:"can_export"`
}

// BuildReport evaluates every section of r.
func BuildReport(r types.Resume) Report {
	rep := Report{Sections: make([]SectionStatus, 0, len(types.FormSections))}
	for _, s := range types.FormSections {
		rep.Sections = append(rep.Sections, SectionStatus{
			Section:  s,
			Complete: IsSectionComplete(r, s),
			Entries:  entries(r, s),
		})
	}
	rep.Percentage = Percentage(r)
	rep.CanExport = rep.Percentage >= ExportThreshold
	return rep
}

func entries(r types.Resume, s types.Section) int {
	switch s {
	case types.SectionExperience:
		return len(r.Experience)
	case types.SectionEducation:
		return len(r.Education)
	case types.SectionSkills:
		return len(r.Skills)
	}
	return 0
}
