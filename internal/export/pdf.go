package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PreviewSelector locates the preview surface in a rendered page.
const PreviewSelector = ".resume-preview"

// DefaultTimeout bounds a single browser print.
const DefaultTimeout = 60 * time.Second

// PageOptions controls the printed page. Sizes are in inches.
type PageOptions struct {
	Margin      float64
	PaperWidth  float64
	PaperHeight float64
	Scale       float64
}

// DefaultPageOptions is a US letter page with half-inch margins.
func DefaultPageOptions() PageOptions {
	return PageOptions{
		Margin:      0.5,
		PaperWidth:  8.5,
		PaperHeight: 11,
		Scale:       1,
	}
}

// Rasterizer turns a complete HTML page into PDF bytes.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string, opts PageOptions) ([]byte, error)
}

// ChromeRasterizer prints pages with a headless Chrome driven by chromedp.
type ChromeRasterizer struct {
	// ExecPath overrides Chrome discovery when set.
	ExecPath string
	Timeout  time.Duration
}

// Rasterize writes html to a temp file, loads it and prints it to PDF.
func (c *ChromeRasterizer) Rasterize(ctx context.Context, html string, opts PageOptions) ([]byte, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if c.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(c.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write page: %w", err)
	}

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady(PreviewSelector, chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(opts.PaperWidth).
				WithPaperHeight(opts.PaperHeight).
				WithMarginTop(opts.Margin).
				WithMarginBottom(opts.Margin).
				WithMarginLeft(opts.Margin).
				WithMarginRight(opts.Margin).
				WithScale(opts.Scale).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("browser print failed: %w", err)
	}
	return pdf, nil
}

// PDFExporter prints the rendered preview page.
type PDFExporter struct {
	raster Rasterizer
	opts   PageOptions
	logger *log.Logger
}

// NewPDFExporter creates an exporter. A nil logger uses the default logger.
func NewPDFExporter(raster Rasterizer, opts PageOptions, logger *log.Logger) *PDFExporter {
	if logger == nil {
		logger = log.Default()
	}
	return &PDFExporter{raster: raster, opts: opts, logger: logger}
}

// Export checks that html carries the preview surface and prints it.
func (e *PDFExporter) Export(ctx context.Context, html string) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &ExportError{Kind: KindPDF, Message: "failed to parse preview", Cause: err}
	}
	if doc.Find(PreviewSelector).Length() == 0 {
		return nil, &ExportError{Kind: KindPDF, Message: "preview surface not found"}
	}

	start := time.Now()
	data, err := e.raster.Rasterize(ctx, html, e.opts)
	if err != nil {
		return nil, &ExportError{Kind: KindPDF, Message: "failed to generate PDF", Cause: err}
	}
	if len(data) == 0 {
		return nil, &ExportError{Kind: KindPDF, Message: "generator returned no data"}
	}
	e.logger.Debug("pdf generated", "bytes", len(data), "took", time.Since(start))
	return data, nil
}
