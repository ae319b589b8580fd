package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
)

var (
	exportFormat string
	exportOutDir string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the resume to PDF and/or DOCX",
	Long:  "Exports the stored resume. PDF is printed from the rendered preview with headless Chrome; DOCX is built from the document itself.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "Export format: pdf, docx or all")
	exportCmd.Flags().StringVarP(&exportOutDir, "out-dir", "d", "", "Output directory (default from config)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	switch exportFormat {
	case "pdf", "docx", "all":
	default:
		return fmt.Errorf("invalid format %q: must be pdf, docx or all", exportFormat)
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close() //nolint:errcheck

	outDir := a.cfg.Export.OutputDir
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ctx := cmd.Context()
	progress := observability.NewProgress(a.logger)

	var files []export.File
	switch exportFormat {
	case "docx":
		f, err := a.exports.DOCX(ctx, a.store.Document())
		if err != nil {
			return err
		}
		files = append(files, f)
	default:
		doc, html, err := a.preview()
		if err != nil {
			return fmt.Errorf("failed to render preview: %w", err)
		}
		if exportFormat == "pdf" {
			f, err := a.exports.PDF(ctx, doc, html)
			if err != nil {
				return err
			}
			files = append(files, f)
		} else {
			files, err = a.exports.All(ctx, doc, html)
			if err != nil {
				return err
			}
		}
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	for _, f := range files {
		path := filepath.Join(outDir, f.Name)
		if err := os.WriteFile(path, f.Data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		printer.Success("Wrote %s (%d bytes)", path, len(f.Data))
	}
	progress.Done(fmt.Sprintf("Exported %d file(s)", len(files)))
	return nil
}
