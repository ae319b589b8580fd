// Package main provides the resume_builder CLI: the local HTTP API server
// plus commands to inspect, render and export the stored resume.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/observability"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "resume_builder",
	Short:         "Resume builder",
	Long:          "Resume builder edits a single resume document, previews it under one of eleven templates and exports it to PDF or DOCX.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		flags := flagConfig()
		merged := flags.MergeWithDefaults(*cfg)
		cfg = &merged
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		level, err := observability.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logger := observability.NewLogger(cmd.ErrOrStderr(), level)

		ctx := observability.WithLogger(cmd.Context(), logger)
		cmd.SetContext(withConfig(ctx, cfg))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (json, yaml or toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// flagConfig gathers command-line flag values into a partial Config. Unset
// flags stay zero so the loaded configuration fills them.
func flagConfig() config.Config {
	return config.Config{
		Port:     servePort,
		LogLevel: logLevel,
		Export:   config.ExportConfig{OutputDir: exportOutDir},
	}
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
