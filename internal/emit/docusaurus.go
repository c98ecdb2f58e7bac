package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/vyckey/notesite/internal/site"
)

// DocusaurusFilename is the file written for the docusaurus target. It is an
// ES module so that Markdown plugins can be passed as imported functions.
const DocusaurusFilename = "docusaurus.config.mjs"

// Plugin and theme package names referenced by the emitted document.
const (
	docsPlugin     = "content-docs"
	classicPreset  = "classic"
	remarkMath     = "remark-math"
	rehypeKatex    = "rehype-katex"
	mermaidTheme   = "@docusaurus/theme-mermaid"
	katexStyleHref = "https://cdn.jsdelivr.net/npm/katex@0.13.24/dist/katex.min.css"
)

// DocusaurusConfig builds the Docusaurus configuration document for cfg.
// Every collection becomes a content-docs plugin instance; the classic preset
// carries the blog and the custom stylesheet.
func DocusaurusConfig(cfg *site.Config, year int) (map[string]any, error) {
	id := cfg.Identity()
	root := map[string]any{
		"title":                 id.Title,
		"url":                   id.URL,
		"baseUrl":               id.BaseURL,
		"onBrokenLinks":         string(id.OnBrokenLinks),
		"onBrokenMarkdownLinks": string(id.OnBrokenMarkdownLinks),
		"i18n": map[string]any{
			"defaultLocale": id.DefaultLocale,
			"locales":       id.Locales,
		},
	}
	setIf(root, "tagline", id.Tagline)
	setIf(root, "favicon", id.Favicon)
	setIf(root, "organizationName", id.OrganizationName)
	setIf(root, "projectName", id.ProjectName)

	plugins := make([]any, 0, len(cfg.Collections()))
	for _, c := range cfg.Collections() {
		plugins = append(plugins, []any{docsPlugin, docusaurusDocsOptions(c)})
	}
	root["plugins"] = plugins

	preset := map[string]any{"docs": false, "blog": false}
	if blog := cfg.Blog(); blog.Enabled {
		b := map[string]any{
			"routeBasePath":   routeBasePath(blog.RoutePrefix),
			"showReadingTime": blog.ShowReadingTime,
		}
		setIf(b, "editUrl", blog.EditURL)
		preset["blog"] = b
	}
	p := cfg.Presentation()
	if p.CustomCSS != "" {
		preset["theme"] = map[string]any{"customCss": p.CustomCSS}
	}
	root["presets"] = []any{[]any{classicPreset, preset}}

	if cfg.UsesExtension(site.ExtensionMath) {
		root["stylesheets"] = []any{map[string]any{
			"href":        katexStyleHref,
			"type":        "text/css",
			"crossorigin": "anonymous",
		}}
	}
	if cfg.UsesExtension(site.ExtensionMermaid) {
		root["markdown"] = map[string]any{"mermaid": true}
		root["themes"] = []string{mermaidTheme}
	}

	footer, err := docusaurusFooter(cfg.Footer(), year)
	if err != nil {
		return nil, err
	}
	prism := map[string]any{
		"theme":     string(p.CodeTheme),
		"darkTheme": string(p.DarkCodeTheme),
	}
	if len(p.AdditionalLanguages) > 0 {
		prism["additionalLanguages"] = p.AdditionalLanguages
	}
	themeConfig := map[string]any{
		"navbar": docusaurusNavbar(cfg.Navbar()),
		"footer": footer,
		"prism":  prism,
		"tableOfContents": map[string]any{
			"minHeadingLevel": p.TOC.MinHeadingLevel,
			"maxHeadingLevel": p.TOC.MaxHeadingLevel,
		},
		"docs": map[string]any{"sidebar": map[string]any{
			"hideable":               p.Sidebar.Hideable,
			"autoCollapseCategories": p.Sidebar.AutoCollapseCategories,
		}},
	}
	setIf(themeConfig, "image", id.SocialCard)
	root["themeConfig"] = themeConfig
	return root, nil
}

// markdownPluginImports maps the plugin package names used in the document to
// the identifiers they are imported as in the generated module.
var markdownPluginImports = map[string]string{
	remarkMath:  "remarkMath",
	rehypeKatex: "rehypeKatex",
}

// markdownPluginKeys are the option keys whose entries must be plugin functions.
var markdownPluginKeys = map[string]bool{"remarkPlugins": true, "rehypePlugins": true}

const resolveMarkdownPluginsJS = `
const resolveMarkdownPlugins = (node) => {
  if (Array.isArray(node)) {
    node.forEach(resolveMarkdownPlugins);
    return;
  }
  if (node === null || typeof node !== 'object') {
    return;
  }
  for (const [key, value] of Object.entries(node)) {
    if ((key === 'remarkPlugins' || key === 'rehypePlugins') && Array.isArray(value)) {
      node[key] = value.map((name) => markdownPlugins[name] ?? name);
    } else {
      resolveMarkdownPlugins(value);
    }
  }
};
resolveMarkdownPlugins(config);
`

// encodeDocusaurusModule writes root as the default export of an ES module.
// Markdown plugin names under remarkPlugins/rehypePlugins are imported and
// swapped for the imported functions when the module is evaluated.
func encodeDocusaurusModule(root map[string]any) ([]byte, error) {
	doc, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	used := usedMarkdownPlugins(root)

	var b bytes.Buffer
	b.WriteString("// Generated by notesite from notesite.yaml. Do not edit.\n")
	if len(used) > 0 {
		b.WriteString("\n")
		for _, name := range used {
			fmt.Fprintf(&b, "import %s from '%s';\n", markdownPluginImports[name], name)
		}
		b.WriteString("\nconst markdownPlugins = {\n")
		for _, name := range used {
			fmt.Fprintf(&b, "  '%s': %s,\n", name, markdownPluginImports[name])
		}
		b.WriteString("};\n")
	}
	b.WriteString("\nconst config = ")
	b.Write(doc)
	b.WriteString(";\n")
	if len(used) > 0 {
		b.WriteString(resolveMarkdownPluginsJS)
	}
	b.WriteString("\nexport default config;\n")
	return b.Bytes(), nil
}

// usedMarkdownPlugins returns the sorted known plugin names referenced anywhere
// under a remarkPlugins or rehypePlugins key.
func usedMarkdownPlugins(root map[string]any) []string {
	seen := map[string]bool{}
	var walk func(v any)
	walk = func(v any) {
		switch n := v.(type) {
		case map[string]any:
			for k, child := range n {
				if markdownPluginKeys[k] {
					for _, name := range stringItems(child) {
						if _, ok := markdownPluginImports[name]; ok {
							seen[name] = true
						}
					}
					continue
				}
				walk(child)
			}
		case []any:
			for _, child := range n {
				walk(child)
			}
		}
	}
	walk(root)

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func stringItems(v any) []string {
	switch items := v.(type) {
	case []string:
		return items
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func docusaurusDocsOptions(c site.Collection) map[string]any {
	opts := map[string]any{
		"id":                   c.ID,
		"path":                 c.Path,
		"routeBasePath":        routeBasePath(c.RoutePrefix),
		"editCurrentVersion":   c.EditCurrentVersion,
		"showLastUpdateAuthor": c.ShowLastUpdateAuthor,
		"showLastUpdateTime":   c.ShowLastUpdateTime,
	}
	setIf(opts, "sidebarPath", c.SidebarPath)
	setIf(opts, "editUrl", c.EditURL)
	if c.HasExtension(site.ExtensionMath) {
		opts["remarkPlugins"] = []string{remarkMath}
		opts["rehypePlugins"] = []string{rehypeKatex}
	}
	return opts
}

func docusaurusNavbar(nb site.Navbar) map[string]any {
	out := map[string]any{}
	setIf(out, "title", nb.Title)
	if nb.Logo != nil {
		logo := map[string]any{"src": nb.Logo.Src}
		setIf(logo, "alt", nb.Logo.Alt)
		out["logo"] = logo
	}
	items := make([]any, 0, len(nb.Items))
	for _, item := range nb.Items {
		items = append(items, docusaurusNavItem(item))
	}
	out["items"] = items
	return out
}

func docusaurusNavItem(item site.NavItem) map[string]any {
	switch it := item.(type) {
	case site.NavLink:
		return docusaurusLink(it.Label, it.To, it.Href, it.Position)
	case site.NavDropdown:
		out := map[string]any{
			"type":     "dropdown",
			"label":    it.Label,
			"position": string(it.Position),
		}
		setIf(out, "to", it.To)
		children := make([]any, 0, len(it.Items))
		for _, child := range it.Items {
			children = append(children, docusaurusLink(child.Label, child.To, child.Href, ""))
		}
		out["items"] = children
		return out
	case site.NavDocSidebar:
		out := map[string]any{
			"type":         "docSidebar",
			"sidebarId":    it.SidebarID,
			"docsPluginId": it.Collection,
			"position":     string(it.Position),
		}
		setIf(out, "label", it.Label)
		return out
	}
	return nil
}

func docusaurusLink(label, to, href string, pos site.Position) map[string]any {
	out := map[string]any{"label": label}
	setIf(out, "to", to)
	setIf(out, "href", href)
	setIf(out, "position", string(pos))
	return out
}

func docusaurusFooter(f site.Footer, year int) (map[string]any, error) {
	links := make([]any, 0, len(f.Sections))
	for _, s := range f.Sections {
		items := make([]any, 0, len(s.Links))
		for _, l := range s.Links {
			items = append(items, docusaurusLink(l.Label, l.To, l.Href, ""))
		}
		links = append(links, map[string]any{"title": s.Title, "items": items})
	}
	out := map[string]any{"style": string(f.Style), "links": links}
	copyright, err := RenderCopyright(f.Copyright, year)
	if err != nil {
		return nil, err
	}
	setIf(out, "copyright", copyright)
	return out, nil
}

// routeBasePath strips the leading slash Docusaurus does not expect.
func routeBasePath(prefix string) string {
	return strings.TrimPrefix(prefix, "/")
}

func setIf(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}
