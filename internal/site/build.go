package site

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

// Build validates decl and assembles an immutable Config. It returns the first
// violation found as a *ValidationError, checking in declaration order:
// identity, blog, collections, navbar, footer, presentation.
func Build(decl Declaration) (*Config, error) {
	b := &builder{cfg: &Config{routes: newRouteTable()}}
	steps := []func(Declaration) error{
		b.identity,
		b.blog,
		b.collections,
		b.navbar,
		b.footer,
		b.presentation,
	}
	for _, step := range steps {
		if err := step(decl); err != nil {
			return nil, err
		}
	}
	return b.cfg, nil
}

type builder struct {
	cfg *Config
}

func (b *builder) identity(decl Declaration) error {
	d := decl.Identity
	if strings.TrimSpace(d.Title) == "" {
		return violation(ErrInvalidDeclaration, "identity.title", "", "site title is required")
	}
	if u, err := url.Parse(d.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return violation(ErrInvalidDeclaration, "identity.url", d.URL, "site url must be an absolute http(s) URL")
	}

	id := Identity{
		Title:            d.Title,
		Tagline:          d.Tagline,
		Favicon:          d.Favicon,
		URL:              strings.TrimRight(d.URL, "/"),
		BaseURL:          canonicalBaseURL(d.BaseURL),
		OrganizationName: d.OrganizationName,
		ProjectName:      d.ProjectName,
		SocialCard:       d.SocialCard,
	}

	var err error
	if id.OnBrokenLinks, err = brokenLinkPolicy("identity.on_broken_links", d.OnBrokenLinks, BrokenLinksThrow); err != nil {
		return err
	}
	if id.OnBrokenMarkdownLinks, err = brokenLinkPolicy("identity.on_broken_markdown_links", d.OnBrokenMarkdownLinks, BrokenLinksWarn); err != nil {
		return err
	}

	defaultLocale := d.DefaultLocale
	if strings.TrimSpace(defaultLocale) == "" {
		defaultLocale = "en"
	}
	def, perr := language.Parse(defaultLocale)
	if perr != nil {
		return violation(ErrInvalidLocale, "identity.default_locale", defaultLocale, "not a BCP 47 language tag")
	}
	id.DefaultLocale = def.String()

	rawLocales := d.Locales
	if len(rawLocales) == 0 {
		rawLocales = []string{defaultLocale}
	}
	seen := map[string]bool{}
	for i, raw := range rawLocales {
		tag, perr := language.Parse(raw)
		if perr != nil {
			return violation(ErrInvalidLocale, fmt.Sprintf("identity.locales[%d]", i), raw, "not a BCP 47 language tag")
		}
		if seen[tag.String()] {
			continue
		}
		seen[tag.String()] = true
		id.Locales = append(id.Locales, tag.String())
	}
	if !seen[id.DefaultLocale] {
		return violation(ErrInvalidLocale, "identity.default_locale", id.DefaultLocale,
			"default locale must be one of the supported locales %v", id.Locales)
	}

	b.cfg.identity = id
	b.cfg.routes.add(Resolution{Prefix: HomeRoute, Kind: RouteHome})
	return nil
}

func brokenLinkPolicy(path, raw string, def BrokenLinkPolicy) (BrokenLinkPolicy, error) {
	if strings.TrimSpace(raw) == "" {
		return def, nil
	}
	p := NormalizeBrokenLinkPolicy(raw)
	if p == "" {
		return "", violation(ErrInvalidDeclaration, path, raw, "expected one of %v", brokenLinkNormalizer.ValidKeys())
	}
	return p, nil
}

func (b *builder) blog(decl Declaration) error {
	d := decl.Blog
	blog := Blog{
		Enabled:         d.Enabled == nil || *d.Enabled,
		ShowReadingTime: d.ShowReadingTime,
		EditURL:         d.EditURL,
	}
	base := d.RouteBasePath
	if strings.TrimSpace(base) == "" {
		base = "blog"
	}
	blog.RoutePrefix = CanonicalRoute(base)
	if blog.Enabled {
		if owner, taken := b.cfg.routes.owner(blog.RoutePrefix); taken {
			return violation(ErrRouteCollision, "blog.route_base_path", blog.RoutePrefix,
				"blog route collides with the %s route", owner.Kind)
		}
		b.cfg.routes.add(Resolution{Prefix: blog.RoutePrefix, Kind: RouteBlog})
	}
	b.cfg.blog = blog
	return nil
}

func (b *builder) collections(decl Declaration) error {
	firstByID := map[string]int{}
	for i, d := range decl.Collections {
		at := fmt.Sprintf("collections[%d]", i)
		id := strings.TrimSpace(d.ID)
		if id == "" {
			return violation(ErrInvalidDeclaration, at+".id", "", "collection id is required")
		}
		if first, dup := firstByID[id]; dup {
			return violation(ErrDuplicateCollectionID, at+".id", id, "already declared at collections[%d]", first)
		}
		firstByID[id] = i

		col := Collection{
			ID:                   id,
			Path:                 strings.TrimSpace(d.Path),
			SidebarPath:          d.SidebarPath,
			EditURL:              d.EditURL,
			EditCurrentVersion:   d.EditCurrentVersion,
			ShowLastUpdateAuthor: d.ShowLastUpdateAuthor,
			ShowLastUpdateTime:   d.ShowLastUpdateTime,
		}
		if col.Path == "" {
			col.Path = id
		}
		base := d.RouteBasePath
		if strings.TrimSpace(base) == "" {
			base = id
		}
		col.RoutePrefix = CanonicalRoute(base)

		if owner, taken := b.cfg.routes.owner(col.RoutePrefix); taken {
			by := string(owner.Kind) + " route"
			if owner.Kind == RouteCollection {
				by = fmt.Sprintf("collection %q", owner.Collection)
			}
			return violation(ErrRouteCollision, at+".route_base_path", col.RoutePrefix,
				"collection %q uses a route already owned by %s", id, by)
		}

		for j, raw := range d.Extensions {
			ext, ok := extensionNormalizer.Lookup(raw)
			if !ok {
				return violation(ErrInvalidDeclaration, fmt.Sprintf("%s.extensions[%d]", at, j), raw,
					"expected one of %v", extensionNormalizer.ValidKeys())
			}
			if !col.HasExtension(ext) {
				col.Extensions = append(col.Extensions, ext)
			}
		}

		b.cfg.routes.add(Resolution{Prefix: col.RoutePrefix, Kind: RouteCollection, Collection: id})
		b.cfg.collections = append(b.cfg.collections, col)
	}
	return nil
}

func (b *builder) navbar(decl Declaration) error {
	d := decl.Navbar
	nb := Navbar{Title: d.Title}
	if d.Logo != nil {
		if strings.TrimSpace(d.Logo.Src) == "" {
			return violation(ErrInvalidDeclaration, "navbar.logo.src", "", "logo source is required")
		}
		nb.Logo = &Logo{Alt: d.Logo.Alt, Src: d.Logo.Src}
	}
	for i, item := range d.Items {
		built, err := b.navItem(fmt.Sprintf("navbar.items[%d]", i), item, true)
		if err != nil {
			return err
		}
		nb.Items = append(nb.Items, built)
	}
	b.cfg.navbar = nb
	return nil
}

func (b *builder) navItem(at string, d NavItemDecl, topLevel bool) (NavItem, error) {
	kind := strings.ToLower(strings.TrimSpace(d.Type))
	if kind == "" {
		kind = "link"
		if len(d.Items) > 0 {
			kind = "dropdown"
		}
	}

	position, ok := positionNormalizer.Lookup(d.Position)
	if strings.TrimSpace(d.Position) == "" {
		position, ok = PositionLeft, true
	}
	if !ok {
		return nil, violation(ErrInvalidDeclaration, at+".position", d.Position, "expected left or right")
	}

	switch kind {
	case "link", "default":
		if len(d.Items) > 0 {
			return nil, violation(ErrInvalidDeclaration, at+".items", "", "a link cannot have child items")
		}
		if strings.TrimSpace(d.Label) == "" {
			return nil, violation(ErrInvalidDeclaration, at+".label", "", "nav item label is required")
		}
		to, href, err := b.target(at, d.To, d.Href)
		if err != nil {
			return nil, err
		}
		return NavLink{Label: d.Label, To: to, Href: href, Position: position}, nil

	case "dropdown":
		if !topLevel {
			return nil, violation(ErrInvalidDeclaration, at+".type", d.Type, "dropdowns cannot be nested")
		}
		if strings.TrimSpace(d.Label) == "" {
			return nil, violation(ErrInvalidDeclaration, at+".label", "", "nav item label is required")
		}
		if d.Href != "" {
			return nil, violation(ErrInvalidDeclaration, at+".href", d.Href, "a dropdown links with to, not href")
		}
		dd := NavDropdown{Label: d.Label, Position: position}
		if d.To != "" {
			to, _, err := b.target(at, d.To, "")
			if err != nil {
				return nil, err
			}
			dd.To = to
		}
		for j, child := range d.Items {
			built, err := b.navItem(fmt.Sprintf("%s.items[%d]", at, j), child, false)
			if err != nil {
				return nil, err
			}
			link, ok := built.(NavLink)
			if !ok {
				return nil, violation(ErrInvalidDeclaration, fmt.Sprintf("%s.items[%d].type", at, j), child.Type,
					"dropdown children must be links")
			}
			dd.Items = append(dd.Items, link)
		}
		return dd, nil

	case "docsidebar", "doc_sidebar":
		if strings.TrimSpace(d.SidebarID) == "" {
			return nil, violation(ErrInvalidDeclaration, at+".sidebar_id", "", "doc sidebar items need a sidebar id")
		}
		if _, found := b.cfg.Collection(d.Collection); !found {
			return nil, violation(ErrDanglingNavReference, at+".collection", d.Collection,
				"no content collection with this id is declared")
		}
		return NavDocSidebar{Label: d.Label, SidebarID: d.SidebarID, Collection: d.Collection, Position: position}, nil
	}
	return nil, violation(ErrInvalidDeclaration, at+".type", d.Type, "expected link, dropdown or docSidebar")
}

// target checks a to/href pair: exactly one must be set, internal targets must
// resolve against the route table, href must be an absolute URL.
func (b *builder) target(at, to, href string) (string, string, error) {
	to, href = strings.TrimSpace(to), strings.TrimSpace(href)
	switch {
	case to == "" && href == "":
		return "", "", violation(ErrInvalidDeclaration, at, "", "one of to or href is required")
	case to != "" && href != "":
		return "", "", violation(ErrInvalidDeclaration, at, "", "to and href are mutually exclusive")
	case href != "":
		if !IsExternal(href) {
			return "", "", violation(ErrDanglingNavReference, at+".href", href, "href must be an absolute http, https or mailto URL")
		}
		return "", href, nil
	}
	if IsExternal(to) {
		return to, "", nil
	}
	if _, ok := internalPath(to); !ok {
		return "", "", violation(ErrDanglingNavReference, at+".to", to,
			"to must be a site path or an http, https or mailto URL")
	}
	if _, ok := b.cfg.routes.resolve(to); !ok {
		return "", "", violation(ErrDanglingNavReference, at+".to", to,
			"does not match any collection route or reserved route %v", b.cfg.routes.prefixes())
	}
	return to, "", nil
}

func (b *builder) footer(decl Declaration) error {
	d := decl.Footer
	f := Footer{Copyright: d.Copyright, Style: FooterDark}
	if strings.TrimSpace(d.Style) != "" {
		if f.Style = NormalizeFooterStyle(d.Style); f.Style == "" {
			return violation(ErrInvalidDeclaration, "footer.style", d.Style, "expected dark or light")
		}
	}
	for i, sd := range d.Sections {
		at := fmt.Sprintf("footer.sections[%d]", i)
		section := FooterSection{Title: sd.Title}
		for j, ld := range sd.Items {
			lat := fmt.Sprintf("%s.items[%d]", at, j)
			if strings.TrimSpace(ld.Label) == "" {
				return violation(ErrInvalidDeclaration, lat+".label", "", "footer link label is required")
			}
			to, href, err := b.target(lat, ld.To, ld.Href)
			if err != nil {
				return err
			}
			section.Links = append(section.Links, FooterLink{Label: ld.Label, To: to, Href: href})
		}
		f.Sections = append(f.Sections, section)
	}
	b.cfg.footer = f
	return nil
}

func (b *builder) presentation(decl Declaration) error {
	d := decl.Presentation
	p := Presentation{
		CodeTheme:     DefaultCodeTheme,
		DarkCodeTheme: DefaultDarkCodeTheme,
		Sidebar:       Sidebar(d.Sidebar),
		CustomCSS:     d.CustomCSS,
		TOC:           TOC{MinHeadingLevel: d.TOC.MinHeadingLevel, MaxHeadingLevel: d.TOC.MaxHeadingLevel},
	}
	if d.CodeTheme != "" {
		if p.CodeTheme = NormalizeCodeTheme(d.CodeTheme); p.CodeTheme == "" {
			return violation(ErrInvalidDeclaration, "presentation.code_theme", d.CodeTheme,
				"unknown code theme, expected one of %v", CodeThemes())
		}
	}
	if d.DarkCodeTheme != "" {
		if p.DarkCodeTheme = NormalizeCodeTheme(d.DarkCodeTheme); p.DarkCodeTheme == "" {
			return violation(ErrInvalidDeclaration, "presentation.dark_code_theme", d.DarkCodeTheme,
				"unknown code theme, expected one of %v", CodeThemes())
		}
	}
	seen := map[string]bool{}
	for _, lang := range d.AdditionalLanguages {
		l := strings.ToLower(strings.TrimSpace(lang))
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		p.AdditionalLanguages = append(p.AdditionalLanguages, l)
	}

	if p.TOC.MinHeadingLevel == 0 {
		p.TOC.MinHeadingLevel = DefaultTOCMinLevel
	}
	if p.TOC.MaxHeadingLevel == 0 {
		p.TOC.MaxHeadingLevel = max(DefaultTOCMaxLevel, p.TOC.MinHeadingLevel)
	}
	rng := fmt.Sprintf("%d..%d", p.TOC.MinHeadingLevel, p.TOC.MaxHeadingLevel)
	if p.TOC.MinHeadingLevel < MinTOCLevel || p.TOC.MaxHeadingLevel > MaxTOCLevel {
		return violation(ErrInvalidHeadingRange, "presentation.toc", rng,
			"heading levels must lie within %d..%d", MinTOCLevel, MaxTOCLevel)
	}
	if p.TOC.MinHeadingLevel > p.TOC.MaxHeadingLevel {
		return violation(ErrInvalidHeadingRange, "presentation.toc", rng,
			"min_heading_level must not exceed max_heading_level")
	}
	b.cfg.presentation = p
	return nil
}
