package site

import (
	"net/url"
	"path"
	"sort"
	"strings"
)

// HomeRoute is the site root; it is always reserved.
const HomeRoute = "/"

// RouteKind classifies what owns a route prefix.
type RouteKind string

const (
	RouteHome       RouteKind = "home"
	RouteBlog       RouteKind = "blog"
	RouteCollection RouteKind = "collection"
)

// Resolution describes the owner of an internal target.
type Resolution struct {
	Prefix     string    // owning route prefix
	Kind       RouteKind // home, blog or collection
	Collection string    // collection id when Kind is RouteCollection
}

type routeTable struct {
	owners map[string]Resolution
}

func newRouteTable() *routeTable {
	return &routeTable{owners: map[string]Resolution{}}
}

func (rt *routeTable) add(r Resolution) { rt.owners[r.Prefix] = r }

func (rt *routeTable) owner(prefix string) (Resolution, bool) {
	r, ok := rt.owners[prefix]
	return r, ok
}

// resolve walks from the full path up its parents, so the longest declared
// prefix wins. The home route only matches exactly.
func (rt *routeTable) resolve(target string) (Resolution, bool) {
	p, ok := internalPath(target)
	if !ok {
		return Resolution{}, false
	}
	if p == HomeRoute {
		r, found := rt.owners[HomeRoute]
		return r, found
	}
	for cur := p; cur != HomeRoute; cur = path.Dir(cur) {
		if r, found := rt.owners[cur]; found && r.Kind != RouteHome {
			return r, true
		}
	}
	return Resolution{}, false
}

func (rt *routeTable) prefixes() []string {
	out := make([]string, 0, len(rt.owners))
	for p := range rt.owners {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Resolve reports which route prefix an internal target falls under. External
// URLs and unknown paths report false.
func (c *Config) Resolve(target string) (Resolution, bool) {
	return c.routes.resolve(target)
}

// Routes returns every reserved or collection route prefix, sorted.
func (c *Config) Routes() []string {
	return c.routes.prefixes()
}

// CanonicalRoute turns a route base path into its canonical form:
// "ai", "/ai" and "/ai/" all become "/ai"; "" and "/" become "/".
func CanonicalRoute(raw string) string {
	trimmed := strings.Trim(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return HomeRoute
	}
	return path.Clean("/" + trimmed)
}

// canonicalBaseURL returns raw with exactly one leading and trailing slash.
func canonicalBaseURL(raw string) string {
	r := CanonicalRoute(raw)
	if r == HomeRoute {
		return r
	}
	return r + "/"
}

// externalSchemes lists the URL schemes a link may leave the site with.
var externalSchemes = map[string]bool{"http": true, "https": true, "mailto": true}

// IsExternal reports whether target is an absolute http, https or mailto URL.
func IsExternal(target string) bool {
	u, err := url.Parse(strings.TrimSpace(target))
	if err != nil || !externalSchemes[strings.ToLower(u.Scheme)] {
		return false
	}
	if strings.EqualFold(u.Scheme, "mailto") {
		return u.Opaque != ""
	}
	return u.Host != ""
}

// internalPath extracts the canonical path of an internal target, dropping
// query and fragment. Relative paths are treated as rooted; anything with a
// scheme or host ("javascript:x", "//host/x") is not internal.
func internalPath(target string) (string, bool) {
	t := strings.TrimSpace(target)
	if t == "" || IsExternal(t) {
		return "", false
	}
	u, err := url.Parse(t)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}
	return CanonicalRoute(u.Path), true
}
