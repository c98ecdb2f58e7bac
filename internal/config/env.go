package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/vyckey/notesite/internal/logfields"
)

// EnvPrefix prefixes every environment override variable.
const EnvPrefix = "NOTESITE_"

// envFiles are read in order; later files take precedence.
var envFiles = []string{".env", ".env.local"}

// varRef matches ${NAME}. Bare $NAME is left alone so that text such as
// "$5" or TeX snippets survives expansion.
var varRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// readEnvFiles reads .env and .env.local from dir without touching the
// process environment, so edits are picked up by the next call.
func readEnvFiles(dir string) (map[string]string, error) {
	vars := map[string]string{}
	for _, name := range envFiles {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		values, err := godotenv.Read(p)
		if err != nil {
			return vars, fmt.Errorf("load %s: %w", p, err)
		}
		maps.Copy(vars, values)
		slog.Debug("Loaded environment variables", logfields.Path(p), logfields.Count(len(values)))
	}
	return vars, nil
}

// mergeEnviron layers the process environment (KEY=VALUE pairs) over file variables.
func mergeEnviron(fileVars map[string]string, process []string) map[string]string {
	merged := make(map[string]string, len(fileVars)+len(process))
	maps.Copy(merged, fileVars)
	maps.Copy(merged, env.ToMap(process))
	return merged
}

// expandVars replaces ${NAME} references with values from environ; unset
// names expand to the empty string.
func expandVars(s string, environ map[string]string) string {
	return varRef.ReplaceAllStringFunc(s, func(ref string) string {
		return environ[varRef.FindStringSubmatch(ref)[1]]
	})
}

// envOverrides are the settings that may be replaced from the environment,
// e.g. NOTESITE_OUTPUT_DIR=/tmp/out or NOTESITE_TARGETS=docusaurus,hugo.
type envOverrides struct {
	OutputDir       string   `env:"OUTPUT_DIR"`
	Targets         []string `env:"TARGETS" envSeparator:","`
	LogLevel        string   `env:"LOG_LEVEL"`
	LogFormat       string   `env:"LOG_FORMAT"`
	MetricsTextfile string   `env:"METRICS_TEXTFILE"`
	SiteURL         string   `env:"SITE_URL"`
	BaseURL         string   `env:"BASE_URL"`
}

// applyEnvOverrides replaces settings with NOTESITE_* variables from environ,
// or from the process environment when environ is nil.
func applyEnvOverrides(cfg *Config, environ map[string]string) error {
	var o envOverrides
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	res := &NormalizationResult{}
	if o.OutputDir != "" {
		cfg.Output.Directory = o.OutputDir
	}
	if len(o.Targets) > 0 {
		cfg.Output.Targets = make([]Target, len(o.Targets))
		for i, t := range o.Targets {
			cfg.Output.Targets[i] = Target(t)
		}
		normalizeOutput(&cfg.Output, res)
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = LogLevel(o.LogLevel)
	}
	if o.LogFormat != "" {
		cfg.Logging.Format = LogFormat(o.LogFormat)
	}
	normalizeLogging(&cfg.Logging, res)
	if o.MetricsTextfile != "" {
		cfg.Metrics.Textfile = o.MetricsTextfile
	}
	if o.SiteURL != "" {
		cfg.Site.Identity.URL = o.SiteURL
	}
	if o.BaseURL != "" {
		cfg.Site.Identity.BaseURL = o.BaseURL
	}
	for _, w := range res.Warnings {
		slog.Warn("Environment override normalization", slog.String("detail", w))
	}
	return nil
}
