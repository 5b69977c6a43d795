// Package preview projects a resume snapshot into the read-only structure the
// renderers display: header, summary, experience, education, skills.
package preview

import "github.com/jonathan/resumeforge/internal/types"

// PresentLabel replaces the end date of an ongoing position.
const PresentLabel = "Present"

// Preview is the display form of a resume. Optional blocks are nil when
// they have nothing to show. When Empty is true every block is nil.
type Preview struct {
	Empty      bool               `json:"empty"`
	Header     Header             `json:"header"`
	Summary    *SummaryBlock      `json:"summary,omitempty"`
	Experience *ExperienceSection `json:"experience,omitempty"`
	Education  *EducationSection  `json:"education,omitempty"`
	Skills     *SkillsSection     `json:"skills,omitempty"`
}

// Header is the name line followed by the non-empty contact lines.
type Header struct {
	Name    string   `json:"name"`
	Contact []string `json:"contact,omitempty"`
}

// SummaryBlock keeps the summary text verbatim, line breaks included.
type SummaryBlock struct {
	Text string `json:"text"`
}

// ExperienceSection lists positions in entry order.
type ExperienceSection struct {
	Items []ExperienceItem `json:"items"`
}

// ExperienceItem is one position.
type ExperienceItem struct {
	ID          string `json:"id"`
	Position    string `json:"position"`
	Company     string `json:"company"`
	DateRange   string `json:"date_range"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// EducationSection lists schools in entry order.
type EducationSection struct {
	Items []EducationItem `json:"items"`
}

// EducationItem is one school.
type EducationItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	School    string `json:"school"`
	GPA       string `json:"gpa,omitempty"`
	DateRange string `json:"date_range"`
}

// SkillsSection lists skills in entry order.
type SkillsSection struct {
	Items []SkillItem `json:"items"`
}

// SkillItem is one skill badge.
type SkillItem struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Level types.SkillLevel `json:"level"`
}

// Build derives the preview of r.
func Build(r types.Resume) Preview {
	if IsEmpty(r) {
		return Preview{Empty: true}
	}

	p := Preview{Header: buildHeader(r.Personal)}

	if r.Personal.Summary != "" {
		p.Summary = &SummaryBlock{Text: r.Personal.Summary}
	}

	if len(r.Experience) > 0 {
		items := make([]ExperienceItem, 0, len(r.Experience))
		for _, exp := range r.Experience {
			items = append(items, ExperienceItem{
				ID:          exp.ID,
				Position:    exp.Position,
				Company:     exp.Company,
				DateRange:   ExperienceDateRange(exp),
				Current:     exp.Current,
				Description: exp.Description,
			})
		}
		p.Experience = &ExperienceSection{Items: items}
	}

	if len(r.Education) > 0 {
		items := make([]EducationItem, 0, len(r.Education))
		for _, edu := range r.Education {
			items = append(items, EducationItem{
				ID:        edu.ID,
				Title:     educationTitle(edu),
				School:    edu.School,
				GPA:       edu.GPA,
				DateRange: EducationDateRange(edu),
			})
		}
		p.Education = &EducationSection{Items: items}
	}

	if len(r.Skills) > 0 {
		items := make([]SkillItem, 0, len(r.Skills))
		for _, sk := range r.Skills {
			items = append(items, SkillItem{ID: sk.ID, Name: sk.Name, Level: sk.Level})
		}
		p.Skills = &SkillsSection{Items: items}
	}

	return p
}

// IsEmpty reports whether there is nothing worth previewing: no name and no
// entries in any collection.
func IsEmpty(r types.Resume) bool {
	return r.Personal.FullName == "" &&
		len(r.Experience) == 0 &&
		len(r.Education) == 0 &&
		len(r.Skills) == 0
}

// ExperienceDateRange formats "<start> - <end>", with Present for a current position.
func ExperienceDateRange(exp types.Experience) string {
	end := exp.EndDate
	if exp.Current {
		end = PresentLabel
	}
	return exp.StartDate + " - " + end
}

// EducationDateRange formats "<start> - <end>".
func EducationDateRange(edu types.Education) string {
	return edu.StartDate + " - " + edu.EndDate
}

func educationTitle(edu types.Education) string {
	return edu.Degree + " in " + edu.Field
}

func buildHeader(p types.PersonalInfo) Header {
	h := Header{Name: p.FullName}
	for _, line := range []string{p.Email, p.Phone, p.Location, p.Website, p.LinkedIn} {
		if line != "" {
			h.Contact = append(h.Contact, line)
		}
	}
	return h
}

// Blocks lists the section titles present in display order. The header is
// always first and is not listed.
func (p Preview) Blocks() []string {
	var blocks []string
	if p.Summary != nil {
		blocks = append(blocks, "Summary")
	}
	if p.Experience != nil {
		blocks = append(blocks, types.SectionExperience.Title())
	}
	if p.Education != nil {
		blocks = append(blocks, types.SectionEducation.Title())
	}
	if p.Skills != nil {
		blocks = append(blocks, types.SectionSkills.Title())
	}
	return blocks
}
