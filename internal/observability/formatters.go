// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"planpilot/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintClassification outputs the resolved business category and the template
// set that drives generation.
func (p *Printer) PrintClassification(category types.Category, businessType, location string, templates []types.SectionTemplate) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Category:  %s\n", category))
	sb.WriteString(fmt.Sprintf("Business:  %s\n", businessType))
	sb.WriteString(fmt.Sprintf("Location:  %s\n", location))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Sections (%d):\n", len(templates)))
	count := min(len(templates), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s (%d prompts)\n", templates[i].Title, len(templates[i].SubsectionPrompts)))
	}
	if len(templates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(templates)-maxItemsToShow))
	}

	p.printBox("CLASSIFICATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDocumentSummary outputs the assembled plan overview, flagging failed
// sections.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintDocumentSummary(doc *types.BusinessPlanDocument) {
	if doc == nil {
		return
	}

	failed := doc.FailedSections()
	if len(failed) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fmt.Sprintf("✅ ALL %d SECTIONS GENERATED", len(doc.Sections)))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated %d sections, %d failed:\n\n", len(doc.Sections), len(failed)))
	for i, title := range failed {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", title))
		if i < len(failed)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("GENERATION SUMMARY", sb.String())
}
