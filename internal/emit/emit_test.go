package emit

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyckey/notesite/internal/config"
	ferrors "github.com/vyckey/notesite/internal/foundation/errors"
	"github.com/vyckey/notesite/internal/manifest"
	"github.com/vyckey/notesite/internal/metrics"
)

type countingRecorder struct {
	ok, failed map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{ok: map[string]int{}, failed: map[string]int{}}
}

func (c *countingRecorder) ObserveBuildDuration(time.Duration)   {}
func (c *countingRecorder) IncBuildOutcome(metrics.OutcomeLabel) {}
func (c *countingRecorder) IncViolation(string)                  {}
func (c *countingRecorder) IncFailure(string)                    {}
func (c *countingRecorder) IncEmit(target string, success bool) {
	if success {
		c.ok[target]++
	} else {
		c.failed[target]++
	}
}

func fixedNow() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }

func TestWrite_EmitsTargetsAndManifest(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	rec := newCountingRecorder()
	m, err := Write(canonicalSite(t), Options{
		Directory: dir,
		Targets:   []config.Target{config.TargetDocusaurus, config.TargetHugo},
		Snapshot:  "snap-1",
		Recorder:  rec,
		Now:       fixedNow,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "success", m.Status)
	assert.Equal(t, "snap-1", m.Inputs.ConfigHash)
	assert.Equal(t, []string{"ai", "java", "database", "middleware", "bigdata", "frontend"}, m.Inputs.Collections)
	require.Len(t, m.Outputs.Files, 2)
	assert.Equal(t, DocusaurusFilename, m.Outputs.Files[0].Path)
	assert.Equal(t, HugoFilename, m.Outputs.Files[1].Path)
	assert.Len(t, m.Outputs.Files[0].SHA256, 64)
	assert.Equal(t, 1, rec.ok["docusaurus"])
	assert.Equal(t, 1, rec.ok["hugo"])

	data, err := os.ReadFile(filepath.Join(dir, DocusaurusFilename))
	require.NoError(t, err)
	assert.Equal(t, m.Outputs.Files[0].Bytes, len(data))
	doc := moduleConfig(t, data)
	assert.Contains(t, doc["themeConfig"].(map[string]any)["footer"].(map[string]any)["copyright"], "2025")

	onDisk, err := manifest.ReadFile(filepath.Join(dir, manifest.Filename))
	require.NoError(t, err)
	assert.Equal(t, m.ID, onDisk.ID)
}

func TestWrite_IsDeterministicAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	opts := Options{Directory: dir, Targets: []config.Target{config.TargetDocusaurus, config.TargetHugo}, Now: fixedNow}

	m1, err := Write(canonicalSite(t), opts)
	require.NoError(t, err)
	m2, err := Write(canonicalSite(t), opts)
	require.NoError(t, err)

	assert.NotEqual(t, m1.ID, m2.ID)
	h1, _ := m1.Hash()
	h2, _ := m2.Hash()
	assert.Equal(t, h1, h2)
}

func TestWrite_CleanRemovesPreviousOutputs(t *testing.T) {
	dir := t.TempDir()
	_, err := Write(canonicalSite(t), Options{Directory: dir, Targets: []config.Target{config.TargetHugo}, Now: fixedNow})
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, HugoFilename))

	unrelated := filepath.Join(dir, "keep.txt")
	require.NoError(t, os.WriteFile(unrelated, []byte("x"), 0o600))

	_, err = Write(canonicalSite(t), Options{Directory: dir, Targets: []config.Target{config.TargetDocusaurus}, Clean: true, Now: fixedNow})
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dir, HugoFilename))
	assert.FileExists(t, filepath.Join(dir, DocusaurusFilename))
	assert.FileExists(t, unrelated)
}

func TestWrite_UnsupportedTarget(t *testing.T) {
	rec := newCountingRecorder()
	_, err := Write(canonicalSite(t), Options{Directory: t.TempDir(), Targets: []config.Target{"jekyll"}, Recorder: rec})
	require.Error(t, err)
	assert.Equal(t, ferrors.CategoryEmit, ferrors.GetCategory(err))
	assert.Equal(t, 1, rec.failed["jekyll"])
}

func TestWrite_RequiresDirectory(t *testing.T) {
	_, err := Write(canonicalSite(t), Options{Targets: []config.Target{config.TargetHugo}})
	require.Error(t, err)
}

func TestOptionsFromConfig(t *testing.T) {
	c := &config.Config{Output: config.OutputConfig{
		Directory: "dist",
		Targets:   []config.Target{config.TargetHugo},
		Clean:     true,
		Overrides: map[config.Target]map[string]any{config.TargetHugo: {"x": 1}},
	}}
	opts := OptionsFromConfig(c)
	assert.Equal(t, "dist", opts.Directory)
	assert.True(t, opts.Clean)
	assert.Equal(t, c.Snapshot(), opts.Snapshot)
	assert.Equal(t, 1, opts.Overrides[config.TargetHugo]["x"])
}

func TestWrite_AppliesOverridesKeyedWithTargetCaseVariant(t *testing.T) {
	cfg, err := config.Parse([]byte(`version: "1.0"
site:
  identity:
    title: Notes
    url: https://notes.example
  collections:
    - id: ai
output:
  directory: ` + filepath.Join(t.TempDir(), "out") + `
  targets: [hugo]
  overrides:
    Hugo:
      params:
        overrideMarker: true
`))
	require.NoError(t, err)
	sc, err := cfg.BuildSite()
	require.NoError(t, err)

	opts := OptionsFromConfig(cfg)
	opts.Now = fixedNow
	_, err = Write(sc, opts)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(cfg.Output.Directory, HugoFilename))
	require.NoError(t, err)
	assert.Contains(t, string(data), "overrideMarker: true")
}
