package commands

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/vyckey/notesite/internal/config"
	"github.com/vyckey/notesite/internal/observability"
	"github.com/vyckey/notesite/internal/site"
)

// Global carries state shared by all subcommands.
type Global struct {
	Out io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"notesite.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Validate ValidateCmd `cmd:"" help:"Validate the site declaration"`
	Build    BuildCmd    `cmd:"" help:"Validate the site declaration and emit framework configuration"`
	Init     InitCmd     `cmd:"" help:"Write the canonical configuration file"`
	Watch    WatchCmd    `cmd:"" help:"Rebuild whenever the configuration file changes"`
}

// AfterApply runs after flag parsing and installs a provisional logger; it is
// replaced once the configuration file's logging section is known.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	configureLogging(config.LoggingConfig{Level: config.LogLevelInfo, Format: config.LogFormatText}, c.Verbose)
	return nil
}

func configureLogging(l config.LoggingConfig, verbose bool) {
	level := l.Level.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	observability.Setup(os.Stderr, l.Format == config.LogFormatJSON, level)
}

// loadConfig reads the configuration file and applies its logging settings.
func loadConfig(root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	configureLogging(cfg.Logging, root.Verbose)
	return cfg, nil
}

// violationKind returns the metrics label of a rejected declaration.
func violationKind(err error) string {
	var ve *site.ValidationError
	if errors.As(err, &ve) {
		return ve.Err.Error()
	}
	return "unknown"
}
