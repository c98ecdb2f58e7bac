package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	ferrors "github.com/vyckey/notesite/internal/foundation/errors"
	"github.com/vyckey/notesite/internal/logfields"
	"github.com/vyckey/notesite/internal/metrics"
	"github.com/vyckey/notesite/internal/observability"
	"github.com/vyckey/notesite/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Debounce      time.Duration `help:"Quiet period before rebuilding" default:"500ms"`
	MetricsListen string        `name:"metrics-listen" help:"Serve Prometheus metrics on this address (e.g. :9464)"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return w.run(ctx, root)
}

func (w *WatchCmd) run(ctx context.Context, root *CLI) error {
	reg := prom.NewRegistry()
	rec := metrics.NewPrometheusRecorder(reg)

	rebuild := func(bctx context.Context) error {
		cfg, err := loadConfig(root)
		if err != nil {
			rec.IncFailure(string(ferrors.GetCategory(err)))
			return err
		}
		_, err = RunBuild(bctx, cfg, rec)
		if err == nil && cfg.Metrics.Textfile != "" {
			if werr := metrics.WriteTextfile(cfg.Metrics.Textfile, reg); werr != nil {
				slog.Warn("Failed to write metrics textfile", logfields.Path(cfg.Metrics.Textfile), logfields.Error(werr))
			}
		}
		return err
	}

	watcher, err := watch.New(root.Config, rebuild, w.Debounce)
	if err != nil {
		return err
	}

	if w.MetricsListen != "" {
		srv := &http.Server{
			Addr:              w.MetricsListen,
			Handler:           metricsMux(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			slog.Info("Serving metrics", slog.String("addr", w.MetricsListen))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Metrics server failed", logfields.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	startup := observability.WithConfigPath(observability.WithTrigger(ctx, observability.TriggerStartup), root.Config)
	if err := rebuild(startup); err != nil {
		observability.ErrorContext(startup, "Initial build failed", logfields.Error(err))
	}
	return watcher.Run(ctx)
}

func metricsMux(reg *prom.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(reg))
	return mux
}
