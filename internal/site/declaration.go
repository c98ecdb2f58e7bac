package site

// Declaration is the statically declared site configuration as read from YAML.
// Zero values select defaults (see Build).
type Declaration struct {
	Identity     IdentityDecl     `yaml:"identity"`
	Blog         BlogDecl         `yaml:"blog,omitempty"`
	Collections  []CollectionDecl `yaml:"collections"`
	Navbar       NavbarDecl       `yaml:"navbar"`
	Footer       FooterDecl       `yaml:"footer"`
	Presentation PresentationDecl `yaml:"presentation,omitempty"`
}

// IdentityDecl declares global site identity.
type IdentityDecl struct {
	Title                 string   `yaml:"title"`
	Tagline               string   `yaml:"tagline,omitempty"`
	Favicon               string   `yaml:"favicon,omitempty"`
	URL                   string   `yaml:"url"`
	BaseURL               string   `yaml:"base_url,omitempty"` // defaults to "/"
	OrganizationName      string   `yaml:"organization_name,omitempty"`
	ProjectName           string   `yaml:"project_name,omitempty"`
	DefaultLocale         string   `yaml:"default_locale,omitempty"` // defaults to "en"
	Locales               []string `yaml:"locales,omitempty"`        // defaults to [default_locale]
	OnBrokenLinks         string   `yaml:"on_broken_links,omitempty"`
	OnBrokenMarkdownLinks string   `yaml:"on_broken_markdown_links,omitempty"`
	SocialCard            string   `yaml:"social_card,omitempty"`
}

// BlogDecl declares the blog. The blog is enabled unless Enabled is explicitly false.
type BlogDecl struct {
	Enabled         *bool  `yaml:"enabled,omitempty"`
	RouteBasePath   string `yaml:"route_base_path,omitempty"` // defaults to "blog"
	ShowReadingTime bool   `yaml:"show_reading_time,omitempty"`
	EditURL         string `yaml:"edit_url,omitempty"`
}

// CollectionDecl declares one content collection (a docs plugin instance).
type CollectionDecl struct {
	ID                   string   `yaml:"id"`
	Path                 string   `yaml:"path,omitempty"`            // defaults to ID
	RouteBasePath        string   `yaml:"route_base_path,omitempty"` // defaults to ID
	SidebarPath          string   `yaml:"sidebar_path,omitempty"`
	EditURL              string   `yaml:"edit_url,omitempty"`
	EditCurrentVersion   bool     `yaml:"edit_current_version,omitempty"`
	ShowLastUpdateAuthor bool     `yaml:"show_last_update_author,omitempty"`
	ShowLastUpdateTime   bool     `yaml:"show_last_update_time,omitempty"`
	Extensions           []string `yaml:"extensions,omitempty"` // math, mermaid
}

// NavbarDecl declares the top navigation bar.
type NavbarDecl struct {
	Title string        `yaml:"title,omitempty"`
	Logo  *LogoDecl     `yaml:"logo,omitempty"`
	Items []NavItemDecl `yaml:"items"`
}

// LogoDecl declares the navbar logo.
type LogoDecl struct {
	Alt string `yaml:"alt,omitempty"`
	Src string `yaml:"src"`
}

// NavItemDecl declares a navbar entry. Type selects the variant: "link"
// (default), "dropdown" (default when Items is non-empty) or "docSidebar".
type NavItemDecl struct {
	Type       string        `yaml:"type,omitempty"`
	Label      string        `yaml:"label,omitempty"`
	To         string        `yaml:"to,omitempty"`
	Href       string        `yaml:"href,omitempty"`
	Position   string        `yaml:"position,omitempty"`
	SidebarID  string        `yaml:"sidebar_id,omitempty"`
	Collection string        `yaml:"collection,omitempty"`
	Items      []NavItemDecl `yaml:"items,omitempty"`
}

// FooterDecl declares the footer.
type FooterDecl struct {
	Style     string              `yaml:"style,omitempty"`
	Sections  []FooterSectionDecl `yaml:"sections"`
	Copyright string              `yaml:"copyright,omitempty"`
}

// FooterSectionDecl declares a titled group of footer links.
type FooterSectionDecl struct {
	Title string           `yaml:"title"`
	Items []FooterLinkDecl `yaml:"items"`
}

// FooterLinkDecl declares a footer link; exactly one of To and Href is set.
type FooterLinkDecl struct {
	Label string `yaml:"label"`
	To    string `yaml:"to,omitempty"`
	Href  string `yaml:"href,omitempty"`
}

// PresentationDecl declares presentational options.
type PresentationDecl struct {
	CodeTheme           string      `yaml:"code_theme,omitempty"`
	DarkCodeTheme       string      `yaml:"dark_code_theme,omitempty"`
	AdditionalLanguages []string    `yaml:"additional_languages,omitempty"`
	TOC                 TOCDecl     `yaml:"toc,omitempty"`
	Sidebar             SidebarDecl `yaml:"sidebar,omitempty"`
	CustomCSS           string      `yaml:"custom_css,omitempty"`
}

// TOCDecl declares the table-of-contents heading range. Zero selects the default.
type TOCDecl struct {
	MinHeadingLevel int `yaml:"min_heading_level,omitempty"`
	MaxHeadingLevel int `yaml:"max_heading_level,omitempty"`
}

// SidebarDecl declares docs sidebar behavior.
type SidebarDecl struct {
	Hideable               bool `yaml:"hideable,omitempty"`
	AutoCollapseCategories bool `yaml:"auto_collapse_categories,omitempty"`
}
