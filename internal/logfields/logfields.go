package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyCollection = "collection"
	KeyTarget     = "target"
	KeyPath       = "path"
	KeyConfig     = "config"
	KeyFile       = "file"
	KeyDurationMS = "duration_ms"
	KeyBuildID    = "build_id"
	KeySnapshot   = "snapshot"
	KeyCount      = "count"
	KeyEvent      = "event"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Collection(id string) slog.Attr  { return slog.String(KeyCollection, id) }
func Target(t string) slog.Attr       { return slog.String(KeyTarget, t) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Config(p string) slog.Attr       { return slog.String(KeyConfig, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Snapshot(s string) slog.Attr     { return slog.String(KeySnapshot, s) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Event(op string) slog.Attr       { return slog.String(KeyEvent, op) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
