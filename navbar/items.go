package navbar

import (
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/forgeui/icons"
)

// ItemKind says how a menu item is activated.
type ItemKind int

const (
	// ItemLink navigates to Href.
	ItemLink ItemKind = iota
	// ItemAction posts to Href.
	ItemAction
)

// MenuItem is one entry of the account menu.
type MenuItem struct {
	Label string
	Href  string
	Icon  string
	Kind  ItemKind
}

// Paths holds the locations the navigation bar links and posts to.
type Paths struct {
	Home     string
	Projects string
	Settings string
	Login    string
	Logout   string

	// Account is the prefix of the per-menu endpoints.
	Account string
}

// DefaultPaths returns the root-mounted paths.
func DefaultPaths() Paths {
	return Paths{
		Home:     "/",
		Projects: "/",
		Settings: "/settings",
		Login:    "/auth/login",
		Logout:   "/auth/logout",
		Account:  "/account",
	}
}

// WithBase prefixes every path with base. Home and Projects keep a trailing
// slash so they still resolve to the dashboard root.
func (p Paths) WithBase(base string) Paths {
	base = strings.TrimRight(base, "/")
	if base == "" {
		return p
	}

	return Paths{
		Home:     base + p.Home,
		Projects: base + p.Projects,
		Settings: base + p.Settings,
		Login:    base + p.Login,
		Logout:   base + p.Logout,
		Account:  base + p.Account,
	}
}

// Toggle returns the toggle endpoint of one menu.
func (p Paths) Toggle(id string) string {
	return p.AccountPath(id) + "/toggle"
}

// Close returns the endpoint that closes a menu.
func (p Paths) Close(id string) string {
	return p.AccountPath(id) + "/close"
}

// AccountPath returns the endpoint of one menu.
func (p Paths) AccountPath(id string) string {
	return strings.TrimRight(p.Account, "/") + "/" + id
}

// AccountItems returns the account menu entries in display order:
// Projects, Settings, Log out.
func AccountItems(p Paths) []MenuItem {
	return []MenuItem{
		{Label: "Projects", Href: p.Projects, Icon: "file", Kind: ItemLink},
		{Label: "Settings", Href: p.Settings, Icon: "user", Kind: ItemLink},
		{Label: "Log out", Href: p.Logout, Icon: "log-out", Kind: ItemAction},
	}
}

// itemIcon maps an icon name to its gomponents icon node.
func itemIcon(name string) g.Node {
	size := icons.WithSize(16)
	class := icons.WithClass("mr-2")

	switch name {
	case "file":
		return icons.FileText(size, class)
	case "user":
		return icons.User(size, class)
	case "log-out":
		return icons.LogOut(size, class)
	case "settings":
		return icons.Settings(size, class)
	default:
		return html.Span(html.Class("mr-2 inline-flex h-4 w-4 items-center justify-center text-xs"), g.Text("•"))
	}
}
