package site

import "slices"

// NavItem is a navbar entry: one of NavLink, NavDropdown or NavDocSidebar.
type NavItem interface {
	navItem()
}

// NavLink is a direct link. Exactly one of To (internal route) and Href
// (external URL) is set.
type NavLink struct {
	Label    string
	To       string
	Href     string
	Position Position
}

// NavDropdown groups child links under a label. To is optional.
type NavDropdown struct {
	Label    string
	To       string
	Position Position
	Items    []NavLink
}

// NavDocSidebar links to the first page of a collection's sidebar.
type NavDocSidebar struct {
	Label      string
	SidebarID  string
	Collection string
	Position   Position
}

func (NavLink) navItem()       {}
func (NavDropdown) navItem()   {}
func (NavDocSidebar) navItem() {}

// NavLabel returns the label of any nav item variant.
func NavLabel(item NavItem) string {
	switch it := item.(type) {
	case NavLink:
		return it.Label
	case NavDropdown:
		return it.Label
	case NavDocSidebar:
		return it.Label
	}
	return ""
}

func cloneNavItem(item NavItem) NavItem {
	if dd, ok := item.(NavDropdown); ok {
		dd.Items = slices.Clone(dd.Items)
		return dd
	}
	return item
}
