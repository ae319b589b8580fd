package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the resume preview as HTML",
	Long:  "Renders the stored resume under the selected template and writes the HTML page to a file, or to stdout when --out is not given.",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Path to output HTML file")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close() //nolint:errcheck

	_, html, err := a.preview()
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}

	if renderOutput == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), html)
		return err
	}

	if dir := filepath.Dir(renderOutput); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(renderOutput, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	observability.NewPrinter(cmd.OutOrStdout()).Success("Rendered %s", renderOutput)
	return nil
}
