package site

// NoteCollections lists the collection ids of the notes site in navbar order.
var NoteCollections = []string{"ai", "java", "database", "middleware", "bigdata", "frontend"}

// Canonical returns the declaration of the computer-notes site: one math-enabled
// collection per topic, a blog, and navbar and footer trees over them.
func Canonical() Declaration {
	labels := map[string]string{
		"ai":         "AI",
		"java":       "Java",
		"database":   "Database",
		"middleware": "Middleware",
		"bigdata":    "Big Data",
		"frontend":   "Frontend",
	}

	collections := make([]CollectionDecl, 0, len(NoteCollections))
	for _, id := range NoteCollections {
		collections = append(collections, CollectionDecl{
			ID:                   id,
			Path:                 id,
			RouteBasePath:        "/" + id,
			SidebarPath:          "./sidebars.js",
			EditCurrentVersion:   true,
			ShowLastUpdateAuthor: true,
			ShowLastUpdateTime:   true,
			Extensions:           []string{string(ExtensionMath)},
		})
	}

	return Declaration{
		Identity: IdentityDecl{
			Title:                 "Vyckey Notes",
			Tagline:               "Programmer are cool ~",
			Favicon:               "img/favicon.ico",
			URL:                   "http://hoily.site",
			BaseURL:               "/",
			OrganizationName:      "vyckey",
			ProjectName:           "vyckey-computer-notes",
			DefaultLocale:         "en",
			Locales:               []string{"en"},
			OnBrokenLinks:         string(BrokenLinksThrow),
			OnBrokenMarkdownLinks: string(BrokenLinksWarn),
			SocialCard:            "img/docusaurus-social-card.jpg",
		},
		Blog:        BlogDecl{ShowReadingTime: true},
		Collections: collections,
		Navbar: NavbarDecl{
			Title: "Vyckey Notes",
			Logo:  &LogoDecl{Alt: "Vyckey Notes Logo", Src: "img/logo.jpeg"},
			Items: []NavItemDecl{
				{To: "/ai", Label: "AI Notes"},
				{To: "/java", Label: "Java Notes"},
				{
					Type:  "dropdown",
					Label: "Backend",
					To:    "/database",
					Items: []NavItemDecl{
						{To: "/database", Label: labels["database"]},
						{To: "/middleware", Label: labels["middleware"]},
						{To: "/bigdata", Label: labels["bigdata"]},
					},
				},
				{To: "/frontend", Label: "Frontend Notes"},
				{To: "/blog", Label: "Blog"},
				{Href: "https://github.com/vyckey/vyckey-computer-notes", Label: "GitHub", Position: string(PositionRight)},
			},
		},
		Footer: FooterDecl{
			Style: string(FooterDark),
			Sections: []FooterSectionDecl{
				{
					Title: "Docs",
					Items: func() []FooterLinkDecl {
						out := make([]FooterLinkDecl, 0, len(NoteCollections))
						for _, id := range NoteCollections {
							out = append(out, FooterLinkDecl{Label: labels[id], To: "/" + id})
						}
						return out
					}(),
				},
				{
					Title: "Community",
					Items: []FooterLinkDecl{{Label: "Wechat", Href: "https://wechat.com/vyckey"}},
				},
				{
					Title: "More",
					Items: []FooterLinkDecl{
						{Label: "Blog", To: "/blog"},
						{Label: "GitHub", Href: "https://github.com/vyckey/vyckey-computer-notes"},
					},
				},
			},
			Copyright: "Copyright © {year} Vyckey's Project, Inc. Built with Docusaurus.",
		},
		Presentation: PresentationDecl{
			CodeTheme:     string(DefaultCodeTheme),
			DarkCodeTheme: string(DefaultDarkCodeTheme),
			TOC:           TOCDecl{MinHeadingLevel: DefaultTOCMinLevel, MaxHeadingLevel: DefaultTOCMaxLevel},
			CustomCSS:     "./src/css/custom.css",
		},
	}
}
