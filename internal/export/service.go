package export

import (
	"bytes"
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/types"
)

// PDFContentType is the MIME type of a .pdf file.
const PDFContentType = "application/pdf"

// File is a finished export ready for download.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Service runs exports under a per-kind in-flight guard. Exports read the
// document they are given and never modify it.
type Service struct {
	pdf    *PDFExporter
	guard  *Guard
	logger *log.Logger
}

// NewService creates an export service. A nil logger uses the default logger.
func NewService(pdf *PDFExporter, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{pdf: pdf, guard: NewGuard(), logger: logger}
}

// Guard exposes the in-flight guard.
func (s *Service) Guard() *Guard {
	return s.guard
}

// PDF prints previewHTML, the rendered preview page of doc.
// It returns ErrBusy if a PDF export is already running.
func (s *Service) PDF(ctx context.Context, doc types.ResumeDocument, previewHTML string) (File, error) {
	release, ok := s.guard.TryAcquire(KindPDF)
	if !ok {
		return File{}, ErrBusy
	}
	defer release()

	if s.pdf == nil {
		return File{}, &ExportError{Kind: KindPDF, Message: "no PDF generator configured"}
	}
	data, err := s.pdf.Export(ctx, previewHTML)
	if err != nil {
		s.logger.Error("pdf export failed", "err", err)
		return File{}, err
	}
	name := Filename(doc, "pdf")
	s.logger.Info("exported", "kind", KindPDF, "file", name, "bytes", len(data))
	return File{Name: name, ContentType: PDFContentType, Data: data}, nil
}

// DOCX builds the word-processor export of doc.
// It returns ErrBusy if a DOCX export is already running.
func (s *Service) DOCX(ctx context.Context, doc types.ResumeDocument) (File, error) {
	release, ok := s.guard.TryAcquire(KindDOCX)
	if !ok {
		return File{}, ErrBusy
	}
	defer release()

	if err := ctx.Err(); err != nil {
		return File{}, &ExportError{Kind: KindDOCX, Message: "cancelled", Cause: err}
	}

	var buf bytes.Buffer
	if err := WriteDOCX(&buf, BuildDocument(doc)); err != nil {
		s.logger.Error("docx export failed", "err", err)
		return File{}, &ExportError{Kind: KindDOCX, Message: "failed to write document", Cause: err}
	}
	name := Filename(doc, "docx")
	s.logger.Info("exported", "kind", KindDOCX, "file", name, "bytes", buf.Len())
	return File{Name: name, ContentType: DOCXContentType, Data: buf.Bytes()}, nil
}

// All runs the PDF and DOCX exports concurrently. Either failure fails the
// whole call and no files are returned.
func (s *Service) All(ctx context.Context, doc types.ResumeDocument, previewHTML string) ([]File, error) {
	var pdf, docx File
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pdf, err = s.PDF(gctx, doc, previewHTML)
		return err
	})
	g.Go(func() error {
		var err error
		docx, err = s.DOCX(gctx, doc)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return []File{pdf, docx}, nil
}

// IsBusy reports whether err means an export of the same kind was running.
func IsBusy(err error) bool {
	return errors.Is(err, ErrBusy)
}
