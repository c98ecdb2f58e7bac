package config

import (
	"fmt"

	"dario.cat/mergo"
)

// Default generator settings.
const (
	DefaultOutputDirectory = "site"
	DefaultLogLevel        = LogLevelInfo
	DefaultLogFormat       = LogFormatText
)

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// OutputDefaultApplier handles Output configuration defaults.
type OutputDefaultApplier struct{}

func (o *OutputDefaultApplier) Domain() string { return "output" }

func (o *OutputDefaultApplier) ApplyDefaults(cfg *Config) error {
	return mergo.Merge(&cfg.Output, OutputConfig{
		Directory: DefaultOutputDirectory,
		Targets:   []Target{TargetDocusaurus},
	})
}

// LoggingDefaultApplier handles Logging configuration defaults.
type LoggingDefaultApplier struct{}

func (l *LoggingDefaultApplier) Domain() string { return "logging" }

func (l *LoggingDefaultApplier) ApplyDefaults(cfg *Config) error {
	return mergo.Merge(&cfg.Logging, LoggingConfig{Level: DefaultLogLevel, Format: DefaultLogFormat})
}

// CompositeDefaultApplier applies defaults across all configuration domains.
// Site declaration defaults are owned by site.Build and are not applied here.
type CompositeDefaultApplier struct {
	appliers []DefaultApplier
}

// NewDefaultApplier creates a composite default applier with all domain appliers.
func NewDefaultApplier() *CompositeDefaultApplier {
	return &CompositeDefaultApplier{
		appliers: []DefaultApplier{
			&OutputDefaultApplier{},
			&LoggingDefaultApplier{},
		},
	}
}

// ApplyDefaults applies defaults for all configuration domains.
func (c *CompositeDefaultApplier) ApplyDefaults(cfg *Config) error {
	for _, applier := range c.appliers {
		if err := applier.ApplyDefaults(cfg); err != nil {
			return fmt.Errorf("applying defaults for %s: %w", applier.Domain(), err)
		}
	}
	return nil
}

func applyDefaults(cfg *Config) error {
	return NewDefaultApplier().ApplyDefaults(cfg)
}
