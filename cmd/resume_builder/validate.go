package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a resume document JSON file",
	Long:  "Validates a saved resume document against the document schema and prints each failing field.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	err := schemas.ValidateDocumentFile(args[0])

	var (
		verr      *schemas.ValidationError
		decodeErr *schemas.DecodeError
	)
	switch {
	case err == nil:
		observability.NewPrinter(cmd.OutOrStdout()).PrintValidation(nil)
		return nil
	case errors.As(err, &verr):
		observability.NewPrinter(cmd.OutOrStdout()).PrintValidation(err)
		return fmt.Errorf("validation failed with %d error(s)", len(verr.Errors))
	case errors.As(err, &decodeErr):
		observability.NewPrinter(cmd.OutOrStdout()).PrintValidation(err)
		return fmt.Errorf("validation failed: %w", err)
	default:
		return err
	}
}
