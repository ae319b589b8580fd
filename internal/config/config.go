// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. RESUME_STORAGE_BACKEND.
const EnvPrefix = "RESUME"

// Config is the runtime configuration. Values come from, in increasing
// precedence: defaults, the optional config file, RESUME_* environment
// variables, then CLI flags merged by the caller.
type Config struct {
	Port        int           `mapstructure:"port"`
	LogLevel    string        `mapstructure:"log_level"`
	TemplateDir string        `mapstructure:"template_dir"` // Overrides the built-in HTML templates
	Storage     StorageConfig `mapstructure:"storage"`
	Export      ExportConfig  `mapstructure:"export"`
}

// StorageConfig selects and configures the key-value backend.
type StorageConfig struct {
	Backend       string `mapstructure:"backend"` // memory, file, sqlite, redis, postgres
	Path          string `mapstructure:"path"`    // Directory (file) or database file (sqlite)
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	DatabaseURL   string `mapstructure:"database_url"`
	Namespace     string `mapstructure:"namespace"` // Key prefix, lets several resumes share a backend
}

// ExportConfig configures PDF and DOCX export.
type ExportConfig struct {
	ChromePath string        `mapstructure:"chrome_path"`
	Timeout    time.Duration `mapstructure:"timeout"`
	OutputDir  string        `mapstructure:"output_dir"`
}

var backends = map[string]bool{
	"memory":   true,
	"file":     true,
	"sqlite":   true,
	"redis":    true,
	"postgres": true,
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Port:     8080,
		LogLevel: "info",
		Storage: StorageConfig{
			Backend: "file",
			Path:    ".resume-builder",
		},
		Export: ExportConfig{
			Timeout:   60 * time.Second,
			OutputDir: ".",
		},
	}
}

// LoadConfig reads configuration from path (json, yaml or toml, by
// extension) layered over defaults and environment variables. An empty
// path skips the file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Defaults())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("storage.database_url", EnvPrefix+"_STORAGE_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}
	if err := v.BindEnv("export.chrome_path", EnvPrefix+"_EXPORT_CHROME_PATH", "CHROME_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}

	if path != "" {
		// Resolve path relative to current directory if not absolute
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("port", d.Port)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("template_dir", d.TemplateDir)
	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("storage.redis_addr", d.Storage.RedisAddr)
	v.SetDefault("storage.redis_password", d.Storage.RedisPassword)
	v.SetDefault("storage.redis_db", d.Storage.RedisDB)
	v.SetDefault("storage.database_url", d.Storage.DatabaseURL)
	v.SetDefault("storage.namespace", d.Storage.Namespace)
	v.SetDefault("export.chrome_path", d.Export.ChromePath)
	v.SetDefault("export.timeout", d.Export.Timeout)
	v.SetDefault("export.output_dir", d.Export.OutputDir)
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535, got %d", c.Port)
	}
	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("config error: invalid 'log_level' %q", c.LogLevel)
		}
	}

	if c.TemplateDir != "" {
		if _, err := os.Stat(c.TemplateDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: template directory not found: %s", c.TemplateDir)
		}
	}

	s := c.Storage
	backend := s.Backend
	if backend == "" {
		backend = "memory"
	}
	if !backends[backend] {
		return fmt.Errorf("config error: unknown storage backend %q", s.Backend)
	}
	switch backend {
	case "file", "sqlite":
		if s.Path == "" {
			return fmt.Errorf("config error: 'storage.path' is required for the %s backend", backend)
		}
	case "redis":
		if s.RedisAddr == "" {
			return fmt.Errorf("config error: 'storage.redis_addr' is required for the redis backend")
		}
		if s.RedisDB < 0 {
			return fmt.Errorf("config error: 'storage.redis_db' must be non-negative")
		}
	case "postgres":
		if s.DatabaseURL == "" {
			return fmt.Errorf("config error: 'storage.database_url' is required for the postgres backend")
		}
	}

	if c.Export.Timeout < 0 {
		return fmt.Errorf("config error: 'export.timeout' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.TemplateDir == "" {
		result.TemplateDir = defaults.TemplateDir
	}

	s, d := &result.Storage, defaults.Storage
	if s.Backend == "" {
		s.Backend = d.Backend
	}
	if s.Path == "" {
		s.Path = d.Path
	}
	if s.RedisAddr == "" {
		s.RedisAddr = d.RedisAddr
	}
	if s.RedisPassword == "" {
		s.RedisPassword = d.RedisPassword
	}
	if s.RedisDB == 0 {
		s.RedisDB = d.RedisDB
	}
	if s.DatabaseURL == "" {
		s.DatabaseURL = d.DatabaseURL
	}
	if s.Namespace == "" {
		s.Namespace = d.Namespace
	}

	e, de := &result.Export, defaults.Export
	if e.ChromePath == "" {
		e.ChromePath = de.ChromePath
	}
	if e.Timeout == 0 {
		e.Timeout = de.Timeout
	}
	if e.OutputDir == "" {
		e.OutputDir = de.OutputDir
	}

	return result
}
