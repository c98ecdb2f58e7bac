package emit

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vyckey/notesite/internal/config"
	ferrors "github.com/vyckey/notesite/internal/foundation/errors"
	"github.com/vyckey/notesite/internal/logfields"
	"github.com/vyckey/notesite/internal/manifest"
	"github.com/vyckey/notesite/internal/metrics"
	"github.com/vyckey/notesite/internal/site"
	"github.com/vyckey/notesite/internal/version"
)

// Options controls where and what Write emits.
type Options struct {
	Directory string
	Targets   []config.Target
	Clean     bool
	Overrides map[config.Target]map[string]any
	// Snapshot is recorded in the manifest as the configuration hash.
	Snapshot string
	Recorder metrics.Recorder
	Now      func() time.Time
}

// OptionsFromConfig derives emit options from a loaded configuration file.
func OptionsFromConfig(c *config.Config) Options {
	return Options{
		Directory: c.Output.Directory,
		Targets:   c.Output.Targets,
		Clean:     c.Output.Clean,
		Overrides: c.Output.Overrides,
		Snapshot:  c.Snapshot(),
	}
}

type target struct {
	filename string
	build    func(cfg *site.Config, year int) (map[string]any, error)
	encode   func(root map[string]any) ([]byte, error)
}

var targets = map[config.Target]target{
	config.TargetDocusaurus: {filename: DocusaurusFilename, build: DocusaurusConfig, encode: encodeDocusaurusModule},
	config.TargetHugo:       {filename: HugoFilename, build: HugoConfig, encode: encodeYAML},
}

// Render produces the file content for a single target without touching disk.
func Render(cfg *site.Config, t config.Target, year int, overrides map[string]any) ([]byte, error) {
	tg, ok := targets[t]
	if !ok {
		return nil, ferrors.EmitError("unsupported output target").WithContext("target", string(t)).Build()
	}
	root, err := tg.build(cfg, year)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryEmit, "failed to build configuration document").
			WithContext("target", string(t)).Build()
	}
	mergeParams(root, overrides)
	data, err := tg.encode(root)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryEmit, "failed to encode configuration document").
			WithContext("target", string(t)).Build()
	}
	return data, nil
}

// Write emits every requested target into opts.Directory followed by the
// manifest. It stops at the first failing target.
func Write(cfg *site.Config, opts Options) (*manifest.BuildManifest, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	rec := metrics.OrNoop(opts.Recorder)
	start := now()

	if opts.Directory == "" {
		return nil, ferrors.EmitError("output directory is required").Build()
	}
	if err := os.MkdirAll(opts.Directory, 0o750); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create output directory").
			WithContext("path", opts.Directory).Build()
	}
	if opts.Clean {
		if err := cleanPrevious(opts.Directory); err != nil {
			return nil, err
		}
	}

	m := &manifest.BuildManifest{
		ID:        uuid.NewString(),
		Timestamp: start.UTC(),
		Generator: version.String(),
		Inputs: manifest.Inputs{
			ConfigHash: opts.Snapshot,
			Locales:    cfg.Identity().Locales,
		},
	}
	for _, c := range cfg.Collections() {
		m.Inputs.Collections = append(m.Inputs.Collections, c.ID)
	}

	for _, t := range opts.Targets {
		data, err := Render(cfg, t, start.Year(), opts.Overrides[t])
		if err != nil {
			rec.IncEmit(string(t), false)
			return nil, err
		}
		name := targets[t].filename
		path := filepath.Join(opts.Directory, name)
		if err := writeFileAtomic(path, data); err != nil {
			rec.IncEmit(string(t), false)
			return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write configuration file").
				WithContext("path", path).WithContext("target", string(t)).Build()
		}
		rec.IncEmit(string(t), true)

		sum := sha256.Sum256(data)
		m.Outputs.Files = append(m.Outputs.Files, manifest.File{
			Target: string(t),
			Path:   name,
			SHA256: hex.EncodeToString(sum[:]),
			Bytes:  len(data),
		})
		slog.Info("Emitted framework configuration", logfields.Target(string(t)), logfields.Path(path))
	}

	m.Status = "success"
	m.Duration = now().Sub(start).Milliseconds()
	data, err := m.ToJSON()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "failed to encode manifest").Build()
	}
	mpath := filepath.Join(opts.Directory, manifest.Filename)
	if err := writeFileAtomic(mpath, data); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write manifest").
			WithContext("path", mpath).Build()
	}
	slog.Debug("Wrote build manifest", logfields.BuildID(m.ID), logfields.Path(mpath), logfields.Count(len(m.Outputs.Files)))
	return m, nil
}

// cleanPrevious removes the files listed by an existing manifest and the
// manifest itself. Paths escaping dir are ignored.
func cleanPrevious(dir string) error {
	mpath := filepath.Join(dir, manifest.Filename)
	prev, err := manifest.ReadFile(mpath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		slog.Warn("Ignoring unreadable previous manifest", logfields.Path(mpath), logfields.Error(err))
		return nil
	}
	for _, p := range append(prev.Outputs.Paths(), manifest.Filename) {
		if !filepath.IsLocal(p) {
			slog.Warn("Skipping non-local path from previous manifest", logfields.Path(p))
			continue
		}
		if err := os.Remove(filepath.Join(dir, p)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to remove previous output").
				WithContext("path", p).Build()
		}
	}
	return nil
}

// writeFileAtomic writes data to a temporary file in the same directory and
// renames it over path.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	// #nosec G302 -- emitted configuration is meant to be readable by the framework
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func encodeYAML(root map[string]any) ([]byte, error) {
	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return data, nil
}
