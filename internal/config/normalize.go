package config

import (
	"fmt"
	"strings"

	"github.com/vyckey/notesite/internal/site"
)

// NormalizationResult captures adjustments & warnings from normalization pass.
type NormalizationResult struct{ Warnings []string }

// NormalizeConfig performs canonicalization on enumerated fields prior to default application.
// It mutates the provided config in-place and returns a result describing any coercions.
// Unknown site enum values are left untouched so that site.Build reports them.
func NormalizeConfig(c *Config) (*NormalizationResult, error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}
	res := &NormalizationResult{}
	normalizeLogging(&c.Logging, res)
	normalizeOutput(&c.Output, res)
	normalizeSite(&c.Site, res)
	return res, nil
}

func normalizeLogging(l *LoggingConfig, res *NormalizationResult) {
	if lvl := NormalizeLogLevel(string(l.Level)); lvl != "" {
		if l.Level != lvl {
			res.Warnings = append(res.Warnings, warnChanged("logging.level", l.Level, lvl))
			l.Level = lvl
		}
	} else if strings.TrimSpace(string(l.Level)) != "" {
		res.Warnings = append(res.Warnings, warnUnknown("logging.level", string(l.Level), string(LogLevelInfo)))
		l.Level = LogLevelInfo
	}
	if f := NormalizeLogFormat(string(l.Format)); f != "" {
		if l.Format != f {
			res.Warnings = append(res.Warnings, warnChanged("logging.format", l.Format, f))
			l.Format = f
		}
	} else if strings.TrimSpace(string(l.Format)) != "" {
		res.Warnings = append(res.Warnings, warnUnknown("logging.format", string(l.Format), string(LogFormatText)))
		l.Format = LogFormatText
	}
}

func normalizeOutput(o *OutputConfig, res *NormalizationResult) {
	o.Directory = strings.TrimSpace(o.Directory)
	normalizeOverrides(o, res)
	if len(o.Targets) == 0 {
		return
	}
	raw := make([]string, len(o.Targets))
	for i, t := range o.Targets {
		raw[i] = string(t)
		if canon := NormalizeTarget(string(t)); canon != "" {
			raw[i] = string(canon)
		}
	}
	cleaned := normalizeStringSlice("output.targets", raw, res)
	o.Targets = make([]Target, len(cleaned))
	for i, t := range cleaned {
		o.Targets[i] = Target(t)
	}
}

// normalizeOverrides rekeys output.overrides by canonical target. A block
// spelled exactly as the canonical target wins over case variants of it;
// unknown targets are kept for ValidateConfig to reject.
func normalizeOverrides(o *OutputConfig, res *NormalizationResult) {
	if len(o.Overrides) == 0 {
		return
	}
	keys := make([]string, 0, len(o.Overrides))
	for t := range o.Overrides {
		keys = append(keys, string(t))
	}
	keys = sortedCopy(keys)

	out := make(map[Target]map[string]any, len(o.Overrides))
	for _, k := range keys {
		if NormalizeTarget(k) == Target(k) {
			out[Target(k)] = o.Overrides[Target(k)]
		}
	}
	for _, k := range keys {
		c := NormalizeTarget(k)
		switch {
		case c == Target(k):
			continue
		case c == "":
			out[Target(k)] = o.Overrides[Target(k)]
		case out[c] != nil:
			res.Warnings = append(res.Warnings, fmt.Sprintf("ignored output.overrides.%s: overrides for %s already declared", k, c))
		default:
			res.Warnings = append(res.Warnings, warnChanged("output.overrides key", k, c))
			out[c] = o.Overrides[Target(k)]
		}
	}
	o.Overrides = out
}

func normalizeSite(d *site.Declaration, res *NormalizationResult) {
	canon(&d.Identity.OnBrokenLinks, "site.identity.on_broken_links", func(s string) string {
		return string(site.NormalizeBrokenLinkPolicy(s))
	}, res)
	canon(&d.Identity.OnBrokenMarkdownLinks, "site.identity.on_broken_markdown_links", func(s string) string {
		return string(site.NormalizeBrokenLinkPolicy(s))
	}, res)
	d.Identity.Locales = trimStringSlice(d.Identity.Locales)

	for i := range d.Collections {
		c := &d.Collections[i]
		at := fmt.Sprintf("site.collections[%d]", i)
		if c.RouteBasePath != "" {
			if r := site.CanonicalRoute(c.RouteBasePath); r != c.RouteBasePath {
				res.Warnings = append(res.Warnings, warnChanged(at+".route_base_path", c.RouteBasePath, r))
				c.RouteBasePath = r
			}
		}
		for j := range c.Extensions {
			canon(&c.Extensions[j], fmt.Sprintf("%s.extensions[%d]", at, j), func(s string) string {
				return string(site.NormalizeExtension(s))
			}, res)
		}
	}

	for i := range d.Navbar.Items {
		normalizeNavItem(&d.Navbar.Items[i], fmt.Sprintf("site.navbar.items[%d]", i), res)
	}

	canon(&d.Footer.Style, "site.footer.style", func(s string) string {
		return string(site.NormalizeFooterStyle(s))
	}, res)
	canon(&d.Presentation.CodeTheme, "site.presentation.code_theme", func(s string) string {
		return string(site.NormalizeCodeTheme(s))
	}, res)
	canon(&d.Presentation.DarkCodeTheme, "site.presentation.dark_code_theme", func(s string) string {
		return string(site.NormalizeCodeTheme(s))
	}, res)
}

func normalizeNavItem(item *site.NavItemDecl, at string, res *NormalizationResult) {
	canon(&item.Position, at+".position", func(s string) string {
		return string(site.NormalizePosition(s))
	}, res)
	for i := range item.Items {
		normalizeNavItem(&item.Items[i], fmt.Sprintf("%s.items[%d]", at, i), res)
	}
}

// canon replaces *field with its canonical form when known, recording a warning
// when the value changed. Empty and unknown values are kept as they are.
func canon(field *string, label string, normalize func(string) string, res *NormalizationResult) {
	if strings.TrimSpace(*field) == "" {
		return
	}
	if c := normalize(*field); c != "" && c != *field {
		res.Warnings = append(res.Warnings, warnChanged(label, *field, c))
		*field = c
	}
}

func warnChanged(field string, from, to any) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}

func warnUnknown(field, value, def string) string {
	return fmt.Sprintf("unknown %s '%s', defaulting to %s", field, value, def)
}
