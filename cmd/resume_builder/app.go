package main

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

type ctxKey int

const configKey ctxKey = 0

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg
	}
	d := config.Defaults()
	return &d
}

// app holds the components shared by the commands
type app struct {
	cfg      *config.Config
	kv       storage.KV
	store    *document.Store
	registry *templates.Registry
	renderer *rendering.Renderer
	exports  *export.Service
	logger   *log.Logger
}

// openApp builds the components from the configuration carried by cmd.
// Callers must Close the returned app.
func openApp(cmd *cobra.Command) (*app, error) {
	ctx := cmd.Context()
	cfg := configFromContext(ctx)
	logger := observability.LoggerFromContext(ctx)

	kv, err := storage.Open(ctx, storage.Options{
		Backend:       cfg.Storage.Backend,
		Path:          cfg.Storage.Path,
		RedisAddr:     cfg.Storage.RedisAddr,
		RedisPassword: cfg.Storage.RedisPassword,
		RedisDB:       cfg.Storage.RedisDB,
		DatabaseURL:   cfg.Storage.DatabaseURL,
		Namespace:     cfg.Storage.Namespace,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("storage opened", "backend", cfg.Storage.Backend, "namespace", cfg.Storage.Namespace)

	var renderer *rendering.Renderer
	if cfg.TemplateDir != "" {
		renderer, err = rendering.NewRendererFromDir(cfg.TemplateDir)
	} else {
		renderer, err = rendering.NewRenderer()
	}
	if err != nil {
		return nil, errors.Join(err, kv.Close())
	}

	raster := &export.ChromeRasterizer{ExecPath: cfg.Export.ChromePath, Timeout: cfg.Export.Timeout}
	return &app{
		cfg:      cfg,
		kv:       kv,
		store:    document.NewStore(ctx, kv, logger),
		registry: templates.NewRegistry(ctx, kv, logger),
		renderer: renderer,
		exports:  export.NewService(export.NewPDFExporter(raster, export.DefaultPageOptions(), logger), logger),
		logger:   logger,
	}, nil
}

// Close releases the storage backend
func (a *app) Close() error {
	return a.kv.Close()
}

// preview renders the current document under the effective template
func (a *app) preview() (types.ResumeDocument, string, error) {
	doc := a.store.Document()
	html, err := a.renderer.Render(doc, a.registry.Effective())
	return doc, html, err
}
