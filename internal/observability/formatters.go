// Package observability provides logging setup and formatted CLI output.
package observability

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

var (
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorGray  = lipgloss.Color("245")

	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleInfo    = lipgloss.NewStyle().Foreground(colorGray)
)

// Printer handles formatted output for the CLI
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
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad truncates or pads s to the inner box width, counting runes.
func pad(s string) string {
	width := boxWidth - 4
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-3]) + "..."
	}
	return s + strings.Repeat(" ", width-len(r))
}

// Success prints a success line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.out, styleSuccess.Render("✓")+" "+fmt.Sprintf(format, args...))
}

// Error prints an error line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.out, styleError.Render("✗")+" "+fmt.Sprintf(format, args...))
}

// Info prints a status line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.out, styleInfo.Render("›")+" "+fmt.Sprintf(format, args...))
}

// PrintDocument outputs a summary of the resume document.
func (p *Printer) PrintDocument(doc types.ResumeDocument) {
	header := layout.BuildHeader(doc.PersonalInfo)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", header.Name))
	if len(header.Contact) > 0 {
		sb.WriteString(fmt.Sprintf("Contact:  %s\n", strings.Join(header.Contact, " • ")))
	}
	sb.WriteString("\n")

	counts := []struct {
		label string
		n     int
	}{
		{"Websites", len(doc.PersonalInfo.Websites)},
		{"Experience", len(doc.WorkExperience)},
		{"Education", len(doc.Education)},
		{"Skills", len(doc.Skills)},
		{"Achievements", len(doc.Achievements)},
		{"Awards", len(doc.Awards)},
		{"Certifications", len(doc.Certifications)},
	}
	for _, c := range counts {
		sb.WriteString(fmt.Sprintf("%-15s %d\n", c.label+":", c.n))
	}

	sections := layout.SortedCustomSections(doc.CustomSections)
	if len(sections) > 0 {
		sb.WriteString("\nCustom Sections:\n")
		count := min(len(sections), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", sections[i].Title, sections[i].Type()))
		}
		if len(sections) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(sections)-maxItemsToShow))
		}
	}

	p.printBox("RESUME DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTemplates outputs the template catalog, marking the selected one.
func (p *Printer) PrintTemplates(list []types.TemplateStyle, selected string) {
	var sb strings.Builder
	for _, t := range list {
		marker := " "
		if t.ID == selected {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %-10s %s\n", marker, t.ID, t.Name))
		sb.WriteString(fmt.Sprintf("  %s\n", t.Layout.LayoutType))
	}
	p.printBox("TEMPLATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidation outputs the result of validating a document. A nil err
// prints a success box; schema errors are listed field by field.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(err error) {
	if err == nil {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %s │\n", pad("✅ DOCUMENT IS VALID"))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var verr *schemas.ValidationError
	if !errors.As(err, &verr) {
		p.printBox("VALIDATION FAILED", err.Error())
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d errors:\n\n", len(verr.Errors)))
	for i, fe := range verr.Errors {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", fe.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", fe.Message))
		if i < len(verr.Errors)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("VALIDATION FAILED", strings.TrimSuffix(sb.String(), "\n"))
}
