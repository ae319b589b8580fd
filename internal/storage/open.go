package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/db"
)

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Options selects and configures a backend.
type Options struct {
	Backend       string
	Path          string // directory for file, database file for sqlite
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DatabaseURL   string
	Namespace     string // optional key prefix
}

// Open builds the configured backend, wrapped with the namespace prefix if one is set.
func Open(ctx context.Context, opts Options) (KV, error) {
	var (
		kv  KV
		err error
	)

	switch opts.Backend {
	case BackendMemory, "":
		kv = NewMemoryKV()
	case BackendFile:
		kv, err = NewFileKV(opts.Path)
	case BackendSQLite:
		path := opts.Path
		if filepath.Ext(path) == "" {
			path = filepath.Join(path, "resume.db")
		}
		kv, err = NewSQLiteKV(path)
	case BackendRedis:
		kv, err = NewRedisKV(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
	case BackendPostgres:
		var pg *db.DB
		pg, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, backendErr(BackendPostgres, "connect", "", err)
		}
		kv = pg
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
	if err != nil {
		return nil, err
	}

	prefix := ""
	if opts.Namespace != "" {
		prefix = opts.Namespace + ":"
	}
	return WithPrefix(kv, prefix), nil
}

var _ KV = (*db.DB)(nil)
