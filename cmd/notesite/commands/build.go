package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/vyckey/notesite/internal/config"
	"github.com/vyckey/notesite/internal/emit"
	ferrors "github.com/vyckey/notesite/internal/foundation/errors"
	"github.com/vyckey/notesite/internal/logfields"
	"github.com/vyckey/notesite/internal/manifest"
	"github.com/vyckey/notesite/internal/metrics"
	"github.com/vyckey/notesite/internal/observability"
	"github.com/vyckey/notesite/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output  string   `short:"o" help:"Output directory (overrides output.directory)"`
	Targets []string `name:"target" short:"t" help:"Framework to emit configuration for (docusaurus|hugo); repeatable"`
	Clean   bool     `help:"Remove previously emitted files first"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if err := b.apply(cfg); err != nil {
		return err
	}

	var reg *prom.Registry
	var rec metrics.Recorder = metrics.NoopRecorder{}
	if cfg.Metrics.Textfile != "" {
		reg = prom.NewRegistry()
		rec = metrics.NewPrometheusRecorder(reg)
	}

	ctx := observability.WithConfigPath(observability.WithTrigger(context.Background(), observability.TriggerCLI), root.Config)
	m, buildErr := RunBuild(ctx, cfg, rec)
	if reg != nil {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile, reg); err != nil {
			slog.Warn("Failed to write metrics textfile", logfields.Path(cfg.Metrics.Textfile), logfields.Error(err))
		}
	}
	if buildErr != nil {
		return buildErr
	}

	out := g.out()
	for _, f := range m.Outputs.Files {
		_, _ = fmt.Fprintf(out, "wrote %s (%s, %d bytes)\n", f.Path, f.Target, f.Bytes)
	}
	_, _ = fmt.Fprintf(out, "build %s complete in %dms\n", m.ID, m.Duration)
	return nil
}

// apply overlays command-line flags on the loaded configuration.
func (b *BuildCmd) apply(cfg *config.Config) error {
	if b.Output != "" {
		cfg.Output.Directory = b.Output
	}
	if b.Clean {
		cfg.Output.Clean = true
	}
	if len(b.Targets) == 0 {
		return nil
	}
	targets := make([]config.Target, 0, len(b.Targets))
	for _, raw := range b.Targets {
		t := config.NormalizeTarget(raw)
		if t == "" {
			return ferrors.ConfigError("unsupported --target value").
				WithContext("value", raw).
				WithContext("valid", config.Targets()).
				Build()
		}
		targets = append(targets, t)
	}
	cfg.Output.Targets = nil
	for _, t := range targets {
		if !cfg.Output.HasTarget(t) {
			cfg.Output.Targets = append(cfg.Output.Targets, t)
		}
	}
	return nil
}

// RunBuild validates the site declaration of cfg and emits every configured
// target, reporting the outcome to rec.
func RunBuild(ctx context.Context, cfg *config.Config, rec metrics.Recorder) (*manifest.BuildManifest, error) {
	rec = metrics.OrNoop(rec)
	start := time.Now()
	defer func() { rec.ObserveBuildDuration(time.Since(start)) }()

	sc, err := cfg.BuildSite()
	if err != nil {
		rec.IncViolation(violationKind(err))
		rec.IncBuildOutcome(metrics.OutcomeInvalid)
		observability.WarnContext(ctx, "Site declaration rejected", logfields.Error(err))
		return nil, site.Classify(err)
	}

	opts := emit.OptionsFromConfig(cfg)
	opts.Recorder = rec
	m, err := emit.Write(sc, opts)
	if err != nil {
		category := ferrors.GetCategory(err)
		rec.IncFailure(string(category))
		rec.IncBuildOutcome(metrics.OutcomeFailed)
		observability.ErrorContext(ctx, "Emit failed", slog.String("category", string(category)), logfields.Error(err))
		return nil, err
	}
	rec.IncBuildOutcome(metrics.OutcomeSuccess)
	observability.InfoContext(ctx, "Build complete",
		logfields.BuildID(m.ID),
		logfields.Snapshot(opts.Snapshot),
		logfields.Count(len(m.Outputs.Files)),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))
	return m, nil
}
