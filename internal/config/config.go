package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	ferrors "github.com/vyckey/notesite/internal/foundation/errors"
	"github.com/vyckey/notesite/internal/logfields"
	"github.com/vyckey/notesite/internal/site"
)

// CurrentVersion is the only configuration file version understood by Load.
const CurrentVersion = "1.0"

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "notesite.yaml"

// Config represents a notesite.yaml file: the site declaration plus the
// settings of the generator itself.
type Config struct {
	Version string           `yaml:"version"`
	Site    site.Declaration `yaml:"site"`
	Output  OutputConfig     `yaml:"output"`
	Logging LoggingConfig    `yaml:"logging"`
	Metrics MetricsConfig    `yaml:"metrics,omitempty"`
}

// OutputConfig selects where and for which frameworks configuration is emitted.
type OutputConfig struct {
	Directory string   `yaml:"directory"`
	Targets   []Target `yaml:"targets"`
	Clean     bool     `yaml:"clean"` // remove previously emitted files before writing
	// Overrides are deep-merged into the emitted document of the named target.
	Overrides map[Target]map[string]any `yaml:"overrides,omitempty"`
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig represents metrics export configuration.
type MetricsConfig struct {
	// Textfile is a node-exporter textfile collector path. Empty disables export.
	Textfile string `yaml:"textfile,omitempty"`
}

// Load reads, normalizes and completes the configuration file at configPath.
// Variables from .env and .env.local next to the file are read on every call
// and layered under the process environment, then ${VAR} references in the
// file are expanded. The process environment itself is not modified.
func Load(configPath string) (*Config, error) {
	fileVars, err := readEnvFiles(filepath.Dir(configPath))
	if err != nil {
		slog.Warn("Failed to load env file", logfields.Path(filepath.Dir(configPath)), logfields.Error(err))
	}
	environ := mergeEnviron(fileVars, os.Environ())

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "configuration file not found").
				Fatal().WithContext("path", configPath).Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read configuration file").
			Fatal().WithContext("path", configPath).Build()
	}

	cfg, err := parse(data, environ)
	if err != nil {
		return nil, err
	}
	if err := applyEnvOverrides(cfg, environ); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "invalid environment override").Fatal().Build()
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes a configuration document, expanding ${VAR} references from
// the process environment, then normalizes it and applies defaults.
// Environment overrides are not applied.
func Parse(data []byte) (*Config, error) {
	return parse(data, env.ToMap(os.Environ()))
}

func parse(data []byte, environ map[string]string) (*Config, error) {
	expanded := expandVars(string(data), environ)

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to parse configuration").Fatal().Build()
	}
	if cfg.Version != CurrentVersion {
		return nil, ferrors.ConfigError(fmt.Sprintf("unsupported configuration version %q (expected %s)", cfg.Version, CurrentVersion)).
			WithContext("version", cfg.Version).Build()
	}

	res, err := NormalizeConfig(&cfg)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	for _, w := range res.Warnings {
		slog.Warn("Config normalization", slog.String("detail", w))
	}

	if err := applyDefaults(&cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "failed to apply defaults").Fatal().Build()
	}
	return &cfg, nil
}

// Init writes a configuration file declaring decl with default generator settings.
func Init(configPath string, force bool, decl site.Declaration) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).Build()
	}

	cfg := Config{Version: CurrentVersion, Site: decl}
	if err := applyDefaults(&cfg); err != nil {
		return fmt.Errorf("apply defaults: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create config directory").
				WithContext("path", dir).Build()
		}
	}
	// #nosec G306 -- configuration file is meant to be readable
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).Build()
	}
	return nil
}

// BuildSite validates the site declaration, returning the immutable site model.
func (c *Config) BuildSite() (*site.Config, error) {
	return site.Build(c.Site)
}
