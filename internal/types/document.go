package types

import "strings"

// Category is the coarse business-maturity tag that drives which section
// templates apply. It is always derived from the stage answer, never
// user-supplied directly.
type Category string

// The three supported categories.
const (
	CategoryNewCompany  Category = "NewCompany"
	CategoryScaleUp     Category = "ScaleUp"
	CategoryEstablished Category = "Established"
)

// SectionTemplate is the static definition of one document section: its
// title and the subsection prompts the generated content must address.
type SectionTemplate struct {
	Title             string   `json:"title"`
	SubsectionPrompts []string `json:"subsection_prompts"`
}

// FailedSectionPrefix marks section content that could not be generated.
// Existing stored documents contain this prefix, so consumers match on it;
// it must stay stable.
const FailedSectionPrefix = "Error generating"

// GeneratedSection is one section of an assembled plan. When generation
// failed after all retries, Failed is true and Content carries the sentinel
// string instead of generated text; the section is never dropped.
type GeneratedSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Failed  bool   `json:"failed,omitempty"`
}

// IsFailed reports whether a section holds sentinel error content rather
// than generated text. It checks both the structured flag and the legacy
// content prefix so documents persisted before the flag existed still
// classify correctly.
func (s GeneratedSection) IsFailed() bool {
	return s.Failed || strings.HasPrefix(s.Content, FailedSectionPrefix)
}

// BusinessPlanDocument is the assembled output of one pipeline run.
// Sections always has exactly one entry per template of the resolved
// category, in template order. The document is immutable after assembly,
// except that a caller may overwrite Title before saving.
type BusinessPlanDocument struct {
	Title        string             `json:"title"`
	BusinessIdea string             `json:"business_idea"`
	Location     string             `json:"location"`
	Category     Category           `json:"category"`
	Sections     []GeneratedSection `json:"sections"`
}

// FailedSections returns the titles of sections holding sentinel content.
// Callers use this to offer per-section retry instead of treating the whole
// generation as failed.
func (d *BusinessPlanDocument) FailedSections() []string {
	var failed []string
	for _, s := range d.Sections {
		if s.IsFailed() {
			failed = append(failed, s.Title)
		}
	}
	return failed
}
