package emit

import (
	"fmt"
	"strings"

	"github.com/vyckey/notesite/internal/site"
)

// HugoFilename is the file written for the hugo target.
const HugoFilename = "hugo.yaml"

// chromaStyles maps prism themes to the closest chroma highlight style.
var chromaStyles = map[site.CodeTheme]string{
	"github":               "github",
	"dracula":              "dracula",
	"okaidia":              "monokai",
	"oneDark":              "onedark",
	"vsDark":               "vim",
	"vsLight":              "vs",
	"nightOwl":             "nord",
	"gruvboxMaterialDark":  "gruvbox",
	"gruvboxMaterialLight": "gruvbox-light",
}

// HugoConfig builds the Hugo configuration document for cfg.
func HugoConfig(cfg *site.Config, year int) (map[string]any, error) {
	id := cfg.Identity()
	p := cfg.Presentation()

	params := map[string]any{}
	root := map[string]any{
		"title":                  id.Title,
		"baseURL":                id.URL + id.BaseURL,
		"languageCode":           id.DefaultLocale,
		"defaultContentLanguage": strings.ToLower(id.DefaultLocale),
		"enableGitInfo":          true,
		"markup": map[string]any{
			"goldmark": map[string]any{"renderer": map[string]any{"unsafe": true}},
			"highlight": map[string]any{
				"style":     chromaStyle(p.CodeTheme),
				"lineNos":   false,
				"tabWidth":  4,
				"noClasses": false,
			},
			"tableOfContents": map[string]any{
				"startLevel": p.TOC.MinHeadingLevel,
				"endLevel":   p.TOC.MaxHeadingLevel,
				"ordered":    false,
			},
		},
		"params": params,
	}
	if len(id.Locales) > 1 {
		languages := map[string]any{}
		for i, l := range id.Locales {
			languages[strings.ToLower(l)] = map[string]any{"languageCode": l, "weight": i + 1}
		}
		root["languages"] = languages
	}

	setIf(params, "description", id.Tagline)
	setIf(params, "favicon", id.Favicon)
	if id.SocialCard != "" {
		params["images"] = []string{id.SocialCard}
	}
	if p.CustomCSS != "" {
		params["customCSS"] = []string{p.CustomCSS}
	}
	params["darkCodeTheme"] = chromaStyle(p.DarkCodeTheme)
	params["sidebar"] = map[string]any{
		"hideable":               p.Sidebar.Hideable,
		"autoCollapseCategories": p.Sidebar.AutoCollapseCategories,
	}

	collections := make([]any, 0, len(cfg.Collections()))
	for _, c := range cfg.Collections() {
		exts := make([]string, len(c.Extensions))
		for i, e := range c.Extensions {
			exts[i] = string(e)
		}
		entry := map[string]any{
			"id":                   c.ID,
			"path":                 c.Path,
			"route":                c.RoutePrefix,
			"editCurrentVersion":   c.EditCurrentVersion,
			"showLastUpdateAuthor": c.ShowLastUpdateAuthor,
			"showLastUpdateTime":   c.ShowLastUpdateTime,
			"extensions":           exts,
		}
		setIf(entry, "sidebar", c.SidebarPath)
		setIf(entry, "editURL", c.EditURL)
		collections = append(collections, entry)
	}
	params["collections"] = collections

	if blog := cfg.Blog(); blog.Enabled {
		b := map[string]any{"route": blog.RoutePrefix, "showReadingTime": blog.ShowReadingTime}
		setIf(b, "editURL", blog.EditURL)
		params["blog"] = b
	}

	footer, err := hugoFooter(cfg.Footer(), year)
	if err != nil {
		return nil, err
	}
	params["footer"] = footer

	nb := cfg.Navbar()
	if nb.Logo != nil {
		params["logo"] = map[string]any{"src": nb.Logo.Src, "alt": nb.Logo.Alt}
	}
	root["menu"] = map[string]any{"main": hugoMenu(cfg, nb)}

	if cfg.UsesExtension(site.ExtensionMath) {
		params["math"] = true
		enableMathPassthrough(root)
	}
	if cfg.UsesExtension(site.ExtensionMermaid) {
		params["mermaid"] = map[string]any{}
	}
	return root, nil
}

func chromaStyle(t site.CodeTheme) string {
	if s, ok := chromaStyles[t]; ok {
		return s
	}
	return chromaStyles[site.DefaultCodeTheme]
}

// hugoMenu flattens the navbar into menu.main entries. Dropdown children
// reference their parent by identifier.
func hugoMenu(cfg *site.Config, nb site.Navbar) []any {
	var entries []any
	weight := 0
	next := func() int { weight += 10; return weight }

	for i, item := range nb.Items {
		switch it := item.(type) {
		case site.NavLink:
			entries = append(entries, hugoMenuEntry(it.Label, it.To, it.Href, it.Position, next()))
		case site.NavDropdown:
			ident := fmt.Sprintf("nav-%d", i)
			parent := hugoMenuEntry(it.Label, it.To, "", it.Position, next())
			parent["identifier"] = ident
			entries = append(entries, parent)
			for _, child := range it.Items {
				e := hugoMenuEntry(child.Label, child.To, child.Href, "", next())
				e["parent"] = ident
				entries = append(entries, e)
			}
		case site.NavDocSidebar:
			to := ""
			if c, ok := cfg.Collection(it.Collection); ok {
				to = c.RoutePrefix
			}
			label := it.Label
			if label == "" {
				label = it.Collection
			}
			entries = append(entries, hugoMenuEntry(label, to, "", it.Position, next()))
		}
	}
	return entries
}

func hugoMenuEntry(label, to, href string, pos site.Position, weight int) map[string]any {
	e := map[string]any{"name": label, "weight": weight}
	if href != "" {
		e["url"] = href
	} else if to != "" {
		e["url"] = to
	}
	if pos != "" {
		e["params"] = map[string]any{"position": string(pos)}
	}
	return e
}

func hugoFooter(f site.Footer, year int) (map[string]any, error) {
	sections := make([]any, 0, len(f.Sections))
	for _, s := range f.Sections {
		links := make([]any, 0, len(s.Links))
		for _, l := range s.Links {
			url := l.To
			if l.Href != "" {
				url = l.Href
			}
			links = append(links, map[string]any{"name": l.Label, "url": url})
		}
		sections = append(sections, map[string]any{"title": s.Title, "links": links})
	}
	out := map[string]any{"style": string(f.Style), "sections": sections}
	copyright, err := RenderCopyright(f.Copyright, year)
	if err != nil {
		return nil, err
	}
	setIf(out, "copyright", copyright)
	return out, nil
}

// enableMathPassthrough lets TeX delimiters reach the client-side renderer untouched.
func enableMathPassthrough(root map[string]any) {
	m, ok := root["markup"].(map[string]any)
	if !ok {
		return
	}
	gm, _ := m["goldmark"].(map[string]any)
	if gm == nil {
		gm = map[string]any{}
		m["goldmark"] = gm
	}
	ext, _ := gm["extensions"].(map[string]any)
	if ext == nil {
		ext = map[string]any{}
		gm["extensions"] = ext
	}
	ext["passthrough"] = map[string]any{
		"delimiters": map[string]any{
			"block":  [][]string{{"\\[", "\\]"}, {"$$", "$$"}},
			"inline": [][]string{{"\\(", "\\)"}},
		},
		"enable": true,
	}
}
