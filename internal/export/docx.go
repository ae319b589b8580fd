package export

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/richtext"
	"github.com/jonathan/resume-builder/internal/types"
)

// ParagraphStyle names a paragraph style defined in the DOCX package.
type ParagraphStyle string

// Paragraph styles.
const (
	StyleNormal   ParagraphStyle = ""
	StyleHeading1 ParagraphStyle = "Heading1"
	StyleHeading2 ParagraphStyle = "Heading2"
)

// Alignment is a paragraph justification.
type Alignment string

// Alignments.
const (
	AlignLeft   Alignment = ""
	AlignCenter Alignment = "center"
)

// Document is a word-processor document: an ordered list of paragraphs.
type Document struct {
	Paragraphs []Paragraph
}

// Paragraph is a block of runs.
type Paragraph struct {
	Style ParagraphStyle
	Align Alignment
	Runs  []Run
}

// Run is a span of text with uniform formatting. Size is in points; zero
// means the style default.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Size   int
}

// Text returns the concatenated text of the paragraph.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

const (
	bullet      = "• "
	separator   = " • "
	contactSize = 10
)

// BuildDocument derives the DOCX tree straight from doc. Sections follow
// the same visibility and order rules as the preview.
func BuildDocument(doc types.ResumeDocument) Document {
	header := layout.BuildHeader(doc.PersonalInfo)
	var out Document

	out.add(Paragraph{Style: StyleHeading1, Align: AlignCenter, Runs: []Run{{Text: header.Name}}})
	if len(header.Contact) > 0 {
		out.add(Paragraph{Align: AlignCenter, Runs: []Run{{Text: strings.Join(header.Contact, separator), Size: contactSize}}})
	}
	if len(header.Links) > 0 {
		labels := make([]string, 0, len(header.Links))
		for _, l := range header.Links {
			labels = append(labels, richtext.Plain(l.Label))
		}
		out.add(Paragraph{Align: AlignCenter, Runs: []Run{{Text: strings.Join(labels, separator), Size: contactSize}}})
	}

	for _, s := range layout.Sections(doc) {
		out.add(Paragraph{})
		out.add(Paragraph{Style: StyleHeading2, Runs: []Run{{Text: s.Title}}})
		switch s.Kind {
		case layout.KindSummary:
			out.add(Paragraph{Runs: rich(s.Summary, false)})
		case layout.KindExperience:
			for _, e := range s.Experience {
				out.experience(e)
			}
		case layout.KindEducation:
			for _, e := range s.Education {
				out.education(e)
			}
		case layout.KindSkills:
			for _, g := range s.Skills {
				var runs []Run
				if g.Category != "" {
					runs = append(runs, Run{Text: g.Category + ": ", Bold: true})
				}
				runs = append(runs, Run{Text: strings.Join(g.Skills, ", ")})
				out.add(Paragraph{Runs: runs})
			}
		case layout.KindCustom:
			out.custom(s.Custom)
		default:
			for _, n := range s.Notes {
				runs := append([]Run{{Text: bullet}}, rich(n.Description, false)...)
				if n.Date != "" {
					runs = append(runs, Run{Text: separator + n.Date, Italic: true})
				}
				out.add(Paragraph{Runs: runs})
			}
		}
	}
	return out
}

func (d *Document) add(p Paragraph) {
	d.Paragraphs = append(d.Paragraphs, p)
}

func (d *Document) bullets(items []string) {
	for _, item := range items {
		d.add(Paragraph{Runs: append([]Run{{Text: bullet}}, rich(item, false)...)})
	}
}

func (d *Document) experience(e layout.ExperienceEntry) {
	runs := rich(e.Position, true)
	if e.Company != "" {
		runs = append(runs, Run{Text: " - "})
		runs = append(runs, rich(e.Company, false)...)
	}
	if e.Location != "" {
		runs = append(runs, Run{Text: separator + e.Location})
	}
	d.add(Paragraph{Runs: runs})
	if e.Dates != "" {
		d.add(Paragraph{Runs: []Run{{Text: e.Dates, Italic: true}}})
	}
	d.bullets(e.Description)
	d.bullets(e.Achievements)
	if len(e.Technologies) > 0 {
		d.add(Paragraph{Runs: []Run{
			{Text: "Technologies: ", Bold: true},
			{Text: strings.Join(e.Technologies, ", ")},
		}})
	}
	d.add(Paragraph{})
}

func (d *Document) education(e layout.EducationEntry) {
	title := rich(e.Degree, true)
	if e.Field != "" {
		title = append(title, Run{Text: " in ", Bold: true})
		title = append(title, rich(e.Field, true)...)
	}
	d.add(Paragraph{Runs: title})

	place := rich(e.Institution, false)
	if e.Location != "" {
		place = append(place, Run{Text: separator + e.Location})
	}
	d.add(Paragraph{Runs: place})

	dates := e.Dates
	if e.GPA != "" {
		if dates != "" {
			dates += separator
		}
		dates += "GPA: " + e.GPA
	}
	if dates != "" {
		d.add(Paragraph{Runs: []Run{{Text: dates, Italic: true}}})
	}
	d.add(Paragraph{})
}

func (d *Document) custom(c *layout.CustomEntry) {
	if c == nil {
		return
	}
	switch c.Type {
	case types.SectionList:
		d.bullets(c.Items)
	case types.SectionParagraph:
		d.add(Paragraph{Runs: rich(c.Text, false)})
	case types.SectionTable:
		if len(c.Headers) > 0 {
			d.add(Paragraph{Runs: []Run{{Text: strings.Join(plain(c.Headers), " | "), Bold: true}}})
		}
		for _, row := range c.Rows {
			d.add(Paragraph{Runs: []Run{{Text: strings.Join(plain(row), " | ")}}})
		}
	}
}

// rich converts **bold** markup into runs. bold forces every run bold.
func rich(s string, bold bool) []Run {
	segs := richtext.Segments(s)
	runs := make([]Run, 0, len(segs))
	for _, seg := range segs {
		runs = append(runs, Run{Text: seg.Text, Bold: bold || seg.Bold})
	}
	return runs
}

func plain(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = richtext.Plain(c)
	}
	return out
}
