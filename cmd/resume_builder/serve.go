package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start an HTTP server that exposes the document, template, preview and export endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close() //nolint:errcheck

	srv := server.New(server.Config{Port: a.cfg.Port}, server.Deps{
		Store:    a.store,
		Registry: a.registry,
		Renderer: a.renderer,
		Exports:  a.exports,
		Logger:   a.logger,
	})
	return srv.Start(cmd.Context())
}
