package site

import "slices"

// Identity is the global identity of the site.
type Identity struct {
	Title                 string
	Tagline               string
	Favicon               string
	URL                   string
	BaseURL               string
	OrganizationName      string
	ProjectName           string
	DefaultLocale         string
	Locales               []string
	OnBrokenLinks         BrokenLinkPolicy
	OnBrokenMarkdownLinks BrokenLinkPolicy
	SocialCard            string
}

// Collection is an independently routed set of documentation pages.
type Collection struct {
	ID                   string
	Path                 string
	RoutePrefix          string // canonical: leading slash, no trailing slash
	SidebarPath          string
	EditURL              string
	EditCurrentVersion   bool
	ShowLastUpdateAuthor bool
	ShowLastUpdateTime   bool
	Extensions           []Extension
}

// HasExtension reports whether ext is enabled for the collection.
func (c Collection) HasExtension(ext Extension) bool {
	return slices.Contains(c.Extensions, ext)
}

// Blog is the blog section. RoutePrefix is reserved while Enabled.
type Blog struct {
	Enabled         bool
	RoutePrefix     string
	ShowReadingTime bool
	EditURL         string
}

// Navbar is the top navigation bar.
type Navbar struct {
	Title string
	Logo  *Logo
	Items []NavItem
}

// Logo is the navbar logo.
type Logo struct {
	Alt string
	Src string
}

// Footer is the site footer.
type Footer struct {
	Style     FooterStyle
	Sections  []FooterSection
	Copyright string
}

// FooterSection is a titled group of footer links.
type FooterSection struct {
	Title string
	Links []FooterLink
}

// FooterLink points either to an internal route (To) or an external URL (Href).
type FooterLink struct {
	Label string
	To    string
	Href  string
}

// Presentation holds presentational options consumed by the theme.
type Presentation struct {
	CodeTheme           CodeTheme
	DarkCodeTheme       CodeTheme
	AdditionalLanguages []string
	TOC                 TOC
	Sidebar             Sidebar
	CustomCSS           string
}

// TOC is the table-of-contents heading range; MinHeadingLevel <= MaxHeadingLevel.
type TOC struct {
	MinHeadingLevel int
	MaxHeadingLevel int
}

// Sidebar controls docs sidebar behavior.
type Sidebar struct {
	Hideable               bool
	AutoCollapseCategories bool
}

// Config is a validated site configuration. It is never mutated after Build.
type Config struct {
	identity     Identity
	blog         Blog
	collections  []Collection
	navbar       Navbar
	footer       Footer
	presentation Presentation
	routes       *routeTable
}

// Identity returns the site identity.
func (c *Config) Identity() Identity {
	id := c.identity
	id.Locales = slices.Clone(c.identity.Locales)
	return id
}

// Blog returns the blog settings.
func (c *Config) Blog() Blog { return c.blog }

// Collections returns the content collections in declaration order.
func (c *Config) Collections() []Collection {
	out := make([]Collection, len(c.collections))
	for i, col := range c.collections {
		col.Extensions = slices.Clone(col.Extensions)
		out[i] = col
	}
	return out
}

// Collection looks up a collection by id.
func (c *Config) Collection(id string) (Collection, bool) {
	for _, col := range c.collections {
		if col.ID == id {
			col.Extensions = slices.Clone(col.Extensions)
			return col, true
		}
	}
	return Collection{}, false
}

// UsesExtension reports whether any collection enables ext.
func (c *Config) UsesExtension(ext Extension) bool {
	for _, col := range c.collections {
		if col.HasExtension(ext) {
			return true
		}
	}
	return false
}

// Navbar returns a deep copy of the navigation bar.
func (c *Config) Navbar() Navbar {
	nb := Navbar{Title: c.navbar.Title}
	if c.navbar.Logo != nil {
		logo := *c.navbar.Logo
		nb.Logo = &logo
	}
	nb.Items = make([]NavItem, len(c.navbar.Items))
	for i, item := range c.navbar.Items {
		nb.Items[i] = cloneNavItem(item)
	}
	return nb
}

// Footer returns a deep copy of the footer.
func (c *Config) Footer() Footer {
	f := Footer{Style: c.footer.Style, Copyright: c.footer.Copyright}
	f.Sections = make([]FooterSection, len(c.footer.Sections))
	for i, s := range c.footer.Sections {
		f.Sections[i] = FooterSection{Title: s.Title, Links: slices.Clone(s.Links)}
	}
	return f
}

// Presentation returns the presentational options.
func (c *Config) Presentation() Presentation {
	p := c.presentation
	p.AdditionalLanguages = slices.Clone(c.presentation.AdditionalLanguages)
	return p
}
