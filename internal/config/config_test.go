package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/vyckey/notesite/internal/foundation/errors"
	"github.com/vyckey/notesite/internal/site"
)

const minimalYAML = `version: "1.0"
site:
  identity:
    title: Notes
    url: https://notes.example
  collections:
    - id: ai
    - id: java
      route_base_path: /java/
  navbar:
    items:
      - label: AI
        to: /ai
      - label: GitHub
        href: https://github.com/vyckey
        position: Right
output:
  targets: [Hugo, docusaurus, hugo]
logging:
  level: DEBUG
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestParse_Minimal(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, []Target{TargetHugo, TargetDocusaurus}, cfg.Output.Targets)
	assert.Equal(t, DefaultOutputDirectory, cfg.Output.Directory)
	assert.Equal(t, LogLevelDebug, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
	assert.Equal(t, "/java", cfg.Site.Collections[1].RouteBasePath)
	assert.Equal(t, "right", cfg.Site.Navbar.Items[1].Position)

	sc, err := cfg.BuildSite()
	require.NoError(t, err)
	assert.Len(t, sc.Collections(), 2)
}

func TestParse_RejectsUnsupportedVersion(t *testing.T) {
	_, err := Parse([]byte("version: \"2.0\"\n"))
	require.Error(t, err)
	assert.Equal(t, ferrors.CategoryConfig, ferrors.GetCategory(err))
	assert.Contains(t, err.Error(), "unsupported configuration version")
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("version: [1.0\n"))
	require.Error(t, err)
	assert.Equal(t, ferrors.CategoryConfig, ferrors.GetCategory(err))
}

func TestParse_ExpandsEnvironment(t *testing.T) {
	t.Setenv("NOTES_TEST_SITE_URL", "https://expanded.example")
	doc := `version: "1.0"
site:
  identity:
    title: Notes
    url: ${NOTES_TEST_SITE_URL}
`
	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "https://expanded.example", cfg.Site.Identity.URL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	ce, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, ferrors.CategoryConfig, ce.Category())
	assert.Equal(t, "configuration file not found", ce.Message())
}

func TestLoad_ReadsDotEnvNextToConfig(t *testing.T) {
	const key = "NOTES_TEST_DOTENV_TITLE"
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	dir := t.TempDir()
	writeFile(t, dir, ".env", key+"=From Dotenv\n")
	p := writeFile(t, dir, "notesite.yaml", `version: "1.0"
site:
  identity:
    title: ${NOTES_TEST_DOTENV_TITLE}
    url: https://notes.example
`)

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "From Dotenv", cfg.Site.Identity.Title)
}

func TestLoad_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	t.Setenv("NOTES_TEST_KEEP_TITLE", "From Process")
	dir := t.TempDir()
	writeFile(t, dir, ".env", "NOTES_TEST_KEEP_TITLE=From Dotenv\n")
	p := writeFile(t, dir, "notesite.yaml", `version: "1.0"
site:
  identity:
    title: ${NOTES_TEST_KEEP_TITLE}
    url: https://notes.example
`)

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "From Process", cfg.Site.Identity.Title)
}

func TestLoad_AppliesEnvOverrides(t *testing.T) {
	t.Setenv("NOTESITE_OUTPUT_DIR", "/tmp/notesite-out")
	t.Setenv("NOTESITE_TARGETS", "hugo")
	p := writeFile(t, t.TempDir(), "notesite.yaml", minimalYAML)

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/notesite-out", cfg.Output.Directory)
	assert.Equal(t, []Target{TargetHugo}, cfg.Output.Targets)
}

func TestLoad_RejectsUnknownTarget(t *testing.T) {
	doc := `version: "1.0"
site:
  identity: {title: Notes, url: "https://notes.example"}
output:
  targets: [jekyll]
`
	p := writeFile(t, t.TempDir(), "notesite.yaml", doc)
	_, err := Load(p)
	require.Error(t, err)
	ce, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, "jekyll", ce.Context()["value"])
}

func TestInit_RoundTripsCanonicalSite(t *testing.T) {
	p := filepath.Join(t.TempDir(), "conf", "notesite.yaml")
	require.NoError(t, Init(p, false, site.Canonical()))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, site.Canonical(), cfg.Site)

	sc, err := cfg.BuildSite()
	require.NoError(t, err)
	assert.Len(t, sc.Collections(), len(site.NoteCollections))
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	p := writeFile(t, t.TempDir(), "notesite.yaml", "existing")

	err := Init(p, false, site.Canonical())
	require.Error(t, err)
	assert.Equal(t, ferrors.CategoryConfig, ferrors.GetCategory(err))

	data, _ := os.ReadFile(p)
	assert.Equal(t, "existing", string(data))

	require.NoError(t, Init(p, true, site.Canonical()))
	data, _ = os.ReadFile(p)
	assert.Contains(t, string(data), "Vyckey Notes")
}

func TestLoad_RereadsDotEnvOnEachLoad(t *testing.T) {
	const key = "NOTES_TEST_RELOAD_TITLE"
	require.NoError(t, os.Unsetenv(key))

	dir := t.TempDir()
	writeFile(t, dir, ".env", key+"=first\n")
	p := writeFile(t, dir, "notesite.yaml", `version: "1.0"
site:
  identity:
    title: ${NOTES_TEST_RELOAD_TITLE}
    url: https://notes.example
`)

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "first", cfg.Site.Identity.Title)
	_, set := os.LookupEnv(key)
	assert.False(t, set, "process environment must not be modified")

	writeFile(t, dir, ".env", key+"=second\n")
	cfg, err = Load(p)
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.Site.Identity.Title)
}

func TestLoad_DotEnvLocalTakesPrecedence(t *testing.T) {
	const key = "NOTES_TEST_LOCAL_TITLE"
	require.NoError(t, os.Unsetenv(key))

	dir := t.TempDir()
	writeFile(t, dir, ".env", key+"=shared\nNOTESITE_OUTPUT_DIR=/tmp/from-dotenv\n")
	writeFile(t, dir, ".env.local", key+"=local\n")
	p := writeFile(t, dir, "notesite.yaml", `version: "1.0"
site:
  identity:
    title: ${NOTES_TEST_LOCAL_TITLE}
    url: https://notes.example
`)

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Site.Identity.Title)
	assert.Equal(t, "/tmp/from-dotenv", cfg.Output.Directory)
}

func TestParse_LeavesBareDollarText(t *testing.T) {
	t.Setenv("NOTES_TEST_PRICE", "ignored")
	doc := `version: "1.0"
site:
  identity:
    title: Notes
    tagline: "costs $5, see $NOTES_TEST_PRICE and $$x$$"
    url: https://notes.example
`
	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "costs $5, see $NOTES_TEST_PRICE and $$x$$", cfg.Site.Identity.Tagline)
}
