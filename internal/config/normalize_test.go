package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyckey/notesite/internal/site"
)

func TestNormalizeConfig_Nil(t *testing.T) {
	_, err := NormalizeConfig(nil)
	require.Error(t, err)
}

func TestNormalizeLogging(t *testing.T) {
	cfg := &Config{Version: CurrentVersion, Logging: LoggingConfig{Level: "DeBuG", Format: "JsOn"}}
	res, err := NormalizeConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, LogLevelDebug, cfg.Logging.Level)
	assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
	assert.Len(t, res.Warnings, 2)
}

func TestNormalizeLoggingUnknowns(t *testing.T) {
	cfg := &Config{Version: CurrentVersion, Logging: LoggingConfig{Level: "verbose", Format: "pretty"}}
	res, err := NormalizeConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
	require.Len(t, res.Warnings, 2)
	assert.Contains(t, res.Warnings[0], "unknown logging.level 'verbose'")
}

func TestNormalizeOutputTargets(t *testing.T) {
	cfg := &Config{Output: OutputConfig{Directory: " out ", Targets: []Target{"HUGO", " ", "hugo", "Docusaurus", "jekyll"}}}
	res, err := NormalizeConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.Output.Directory)
	assert.Equal(t, []Target{TargetHugo, TargetDocusaurus, "jekyll"}, cfg.Output.Targets)
	assert.NotEmpty(t, res.Warnings)
}

func TestNormalizeOutputOverrides(t *testing.T) {
	cfg := &Config{Output: OutputConfig{Overrides: map[Target]map[string]any{
		"Hugo":       {"params": map[string]any{"marker": true}},
		"DOCUSAURUS": {"title": "upper"},
		"docusaurus": {"title": "exact"},
		"jekyll":     {"x": 1},
	}}}
	res, err := NormalizeConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, map[Target]map[string]any{
		TargetHugo:       {"params": map[string]any{"marker": true}},
		TargetDocusaurus: {"title": "exact"},
		"jekyll":         {"x": 1},
	}, cfg.Output.Overrides)
	assert.Contains(t, res.Warnings, "normalized output.overrides key from 'Hugo' to 'hugo'")
	assert.Contains(t, res.Warnings, "ignored output.overrides.DOCUSAURUS: overrides for docusaurus already declared")
}

func TestNormalizeSiteEnums(t *testing.T) {
	cfg := &Config{Site: site.Declaration{
		Identity: site.IdentityDecl{OnBrokenLinks: "WARN", Locales: []string{" en ", ""}},
		Collections: []site.CollectionDecl{
			{ID: "ai", RouteBasePath: "ai/", Extensions: []string{"KaTeX", "Mermaid", "graphviz"}},
		},
		Navbar: site.NavbarDecl{Items: []site.NavItemDecl{
			{Label: "More", Position: "RIGHT", Items: []site.NavItemDecl{{Label: "AI", To: "/ai", Position: "Left"}}},
		}},
		Footer:       site.FooterDecl{Style: "Light"},
		Presentation: site.PresentationDecl{CodeTheme: "nightowl", DarkCodeTheme: "solarized"},
	}}

	res, err := NormalizeConfig(cfg)
	require.NoError(t, err)

	d := cfg.Site
	assert.Equal(t, "warn", d.Identity.OnBrokenLinks)
	assert.Equal(t, []string{"en"}, d.Identity.Locales)
	assert.Equal(t, "/ai", d.Collections[0].RouteBasePath)
	assert.Equal(t, []string{"math", "mermaid", "graphviz"}, d.Collections[0].Extensions)
	assert.Equal(t, "right", d.Navbar.Items[0].Position)
	assert.Equal(t, "left", d.Navbar.Items[0].Items[0].Position)
	assert.Equal(t, "light", d.Footer.Style)
	assert.Equal(t, "nightOwl", d.Presentation.CodeTheme)
	// unknown values are left for site.Build to reject
	assert.Equal(t, "solarized", d.Presentation.DarkCodeTheme)

	assert.Contains(t, res.Warnings, "normalized site.collections[0].route_base_path from 'ai/' to '/ai'")
}

func TestNormalizeStringSlice(t *testing.T) {
	res := &NormalizationResult{}
	out := normalizeStringSlice("x", []string{"b", " a", "b", ""}, res)
	assert.Equal(t, []string{"b", "a"}, out)
	assert.Len(t, res.Warnings, 1)

	res = &NormalizationResult{}
	out = normalizeStringSlice("x", []string{"a", "b"}, res)
	assert.Equal(t, []string{"a", "b"}, out)
	assert.Empty(t, res.Warnings)
}
