package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/gomutex/godocx/wml/ctypes"
	"github.com/gomutex/godocx/wml/stypes"
)

// DOCXContentType is the MIME type of a .docx file.
const DOCXContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Half-inch page margins, in twentieths of a point.
const pageMargin = 720

// WriteDOCX serializes d as an OOXML word-processing package.
// Nothing is written to w unless the whole package builds.
func WriteDOCX(w io.Writer, d Document) error {
	out, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	defer out.Close() //nolint:errcheck

	for _, p := range d.Paragraphs {
		writeParagraph(out, p)
	}
	setMargins(out)

	var buf bytes.Buffer
	if err := out.Write(&buf); err != nil {
		return fmt.Errorf("failed to write package: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

func writeParagraph(out *docx.RootDoc, p Paragraph) {
	para := out.AddEmptyParagraph()
	if p.Style != StyleNormal {
		para.Style(string(p.Style))
	}
	if p.Align == AlignCenter {
		para.Justification(stypes.JustificationCenter)
	}
	for _, r := range p.Runs {
		if r.Text == "" {
			continue
		}
		run := para.AddText(r.Text)
		if r.Bold {
			run.Bold(true)
		}
		if r.Italic {
			run.Italic(true)
		}
		if r.Size > 0 {
			run.Size(uint64(r.Size))
		}
	}
}

func setMargins(out *docx.RootDoc) {
	body := out.Document.Body
	if body == nil {
		return
	}
	if body.SectPr == nil {
		body.SectPr = ctypes.NewSectionProper()
	}
	m, gutter := pageMargin, 0
	body.SectPr.PageMargin = &ctypes.PageMargin{
		Top: &m, Right: &m, Bottom: &m, Left: &m,
		Header: &m, Footer: &m, Gutter: &gutter,
	}
}
