package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List and select resume templates",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the template catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close() //nolint:errcheck

		observability.NewPrinter(cmd.OutOrStdout()).PrintTemplates(a.registry.List(), a.registry.Selected())
		return nil
	},
}

var templatesSelectCmd = &cobra.Command{
	Use:   "select <id>",
	Short: "Select a template, clearing typography and color overrides",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close() //nolint:errcheck

		if err := a.registry.Select(cmd.Context(), args[0]); err != nil {
			return err
		}
		observability.NewPrinter(cmd.OutOrStdout()).Success("Selected template %s", args[0])
		return nil
	},
}

var templatesResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear typography and color overrides",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close() //nolint:errcheck

		a.registry.ResetOverrides(cmd.Context())
		observability.NewPrinter(cmd.OutOrStdout()).Success("Cleared template overrides")
		return nil
	},
}

func init() {
	templatesCmd.AddCommand(templatesListCmd, templatesSelectCmd, templatesResetCmd)
	rootCmd.AddCommand(templatesCmd)
}
