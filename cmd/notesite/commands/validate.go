package commands

import (
	"fmt"
	"strings"

	"github.com/vyckey/notesite/internal/site"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	sc, err := cfg.BuildSite()
	if err != nil {
		return site.Classify(err)
	}
	printSummary(g, sc)
	return nil
}

func printSummary(g *Global, sc *site.Config) {
	out := g.out()
	id := sc.Identity()
	ids := make([]string, 0, len(sc.Collections()))
	for _, c := range sc.Collections() {
		ids = append(ids, c.ID)
	}
	_, _ = fmt.Fprintf(out, "Site %q is valid\n", id.Title)
	_, _ = fmt.Fprintf(out, "  url: %s%s\n", id.URL, id.BaseURL)
	_, _ = fmt.Fprintf(out, "  locales: %s (default %s)\n", strings.Join(id.Locales, ", "), id.DefaultLocale)
	_, _ = fmt.Fprintf(out, "  collections: %d (%s)\n", len(ids), strings.Join(ids, ", "))
	_, _ = fmt.Fprintf(out, "  routes: %s\n", strings.Join(sc.Routes(), " "))
	labels := make([]string, 0, len(sc.Navbar().Items))
	for _, item := range sc.Navbar().Items {
		if l := site.NavLabel(item); l != "" {
			labels = append(labels, l)
		}
	}
	_, _ = fmt.Fprintf(out, "  navbar: %s\n", strings.Join(labels, " | "))
	_, _ = fmt.Fprintf(out, "  footer sections: %d\n", len(sc.Footer().Sections))
}
