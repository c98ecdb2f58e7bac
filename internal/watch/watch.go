// Package watch rebuilds the site whenever its configuration file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	ferrors "github.com/vyckey/notesite/internal/foundation/errors"
	"github.com/vyckey/notesite/internal/logfields"
	"github.com/vyckey/notesite/internal/observability"
)

// DefaultDebounce collapses bursts of editor writes into one rebuild.
const DefaultDebounce = 500 * time.Millisecond

// RebuildFunc is called after the watched files settle.
type RebuildFunc func(ctx context.Context) error

// Watcher monitors a configuration file and the .env files next to it.
type Watcher struct {
	configPath string
	names      map[string]bool
	rebuild    RebuildFunc
	debounce   time.Duration
	watcher    *fsnotify.Watcher
}

// New starts watching the directory containing configPath. Events are
// delivered once Run is called.
func New(configPath string, rebuild RebuildFunc, debounce time.Duration) (*Watcher, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRuntime, "failed to create file watcher").Build()
	}
	// Watch the directory containing the config file (more reliable than watching
	// the file directly: editors replace files by rename).
	dir := filepath.Dir(absPath)
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, ferrors.WrapError(err, ferrors.CategoryRuntime, "failed to watch config directory").
			WithContext("path", dir).Build()
	}

	return &Watcher{
		configPath: absPath,
		names: map[string]bool{
			filepath.Base(absPath): true,
			".env":                 true,
			".env.local":           true,
		},
		rebuild:  rebuild,
		debounce: debounce,
		watcher:  fw,
	}, nil
}

// Run processes file events until ctx is done, then closes the watcher.
// Rebuild errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()
	slog.Info("Watching configuration", logfields.Config(w.configPath), logfields.DurationMS(float64(w.debounce.Milliseconds())))

	var timer *time.Timer
	var fire <-chan time.Time
	seq := 0
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("Config change detected", logfields.File(event.Name), logfields.Event(event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			seq++
			bctx := observability.WithSequence(observability.WithTrigger(ctx, observability.TriggerChange), seq)
			bctx = observability.WithConfigPath(bctx, w.configPath)
			start := time.Now()
			if err := w.rebuild(bctx); err != nil {
				observability.ErrorContext(bctx, "Rebuild failed", logfields.Error(err))
				continue
			}
			observability.InfoContext(bctx, "Rebuild complete", logfields.DurationMS(float64(time.Since(start).Milliseconds())))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Config watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !w.names[filepath.Base(event.Name)] {
		return false
	}
	if event.Has(fsnotify.Remove) {
		slog.Warn("Config file removed", logfields.File(event.Name))
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
