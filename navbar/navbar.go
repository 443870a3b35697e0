// Package navbar renders the dashboard top bar: the home-linked logo, an
// optional breadcrumb slot, and the account menu.
package navbar

import (
	"context"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/forgeui/icons"

	"github.com/unweave/dashboard/auth"
	"github.com/unweave/dashboard/disclosure"
	"github.com/unweave/dashboard/errors"
	"github.com/unweave/dashboard/internal/logger"
)

const rootClass = "z-100 fixed top-0 left-0 right-0 flex h-16 w-full items-center justify-between border-b border-system-grey6 bg-primary-black px-3 text-primary-white"

// Size is a styling hook exposed to callers. It does not change the layout.
type Size string

const (
	SizeRegular Size = "regular"
	SizeSmall   Size = "small"
)

// Props are the per-render options of the navigation bar.
type Props struct {
	// Color is reserved and currently has no effect.
	Color string
	// Size is rendered as data-size for callers to style against.
	Size Size
	// Class is merged into the root element's classes.
	Class string
	// Breadcrumbs is shown next to the logo. Nil renders nothing.
	Breadcrumbs g.Node
}

// Brand configures the logo.
type Brand struct {
	LogoSrc string
	LogoAlt string
}

// DefaultBrand returns the Unweave logo.
func DefaultBrand() Brand {
	return Brand{
		LogoSrc: "/logo.svg",
		LogoAlt: "Unweave Logo",
	}
}

// Bar renders navigation bars. Every Render mounts a new account menu.
type Bar struct {
	users  auth.UserAccessor
	menus  *disclosure.Store
	paths  Paths
	brand  Brand
	logger logger.Logger
}

// BarOption configures a Bar.
type BarOption func(*Bar)

// WithPaths sets the link and endpoint locations.
func WithPaths(p Paths) BarOption {
	return func(b *Bar) { b.paths = p }
}

// WithBrand sets the logo.
func WithBrand(brand Brand) BarOption {
	return func(b *Bar) { b.brand = brand }
}

// WithLogger sets the bar logger.
func WithLogger(l logger.Logger) BarOption {
	return func(b *Bar) { b.logger = logger.OrNoop(l) }
}

// NewBar creates a Bar reading the current user from users and mounting
// account menus in menus.
func NewBar(users auth.UserAccessor, menus *disclosure.Store, opts ...BarOption) *Bar {
	if users == nil {
		users = auth.ContextAccessor{}
	}

	b := &Bar{
		users:  users,
		menus:  menus,
		paths:  DefaultPaths(),
		brand:  DefaultBrand(),
		logger: logger.NewNoopLogger(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Paths returns the configured paths.
func (b *Bar) Paths() Paths { return b.paths }

// Render renders the navigation bar for the request in ctx. The user is
// looked up on every call. Without a user a sign-in link takes the place of
// the account menu and nothing is mounted.
func (b *Bar) Render(ctx context.Context, props Props) g.Node {
	user := b.users.CurrentUser(ctx)

	var account g.Node
	if user != nil {
		menu := b.menus.Mount()
		account = Account(user, menu, b.paths)

		b.logger.Debug("account menu mounted",
			logger.String("menu_id", menu.ID()),
			logger.Int("mounted", b.menus.Len()),
		)
	} else {
		account = b.signIn()
	}

	size := props.Size
	if size == "" {
		size = SizeRegular
	}

	return html.Header(
		html.Class(mergeClasses(rootClass, props.Class)),
		g.Attr("data-size", string(size)),

		html.Div(
			html.Class("flex items-center space-x-6"),
			html.A(
				html.Href(b.paths.Home),
				html.Img(
					html.Class("h-10"),
					html.Src(b.brand.LogoSrc),
					html.Width("40"),
					html.Height("40"),
					html.Alt(b.brand.LogoAlt),
				),
			),
			g.If(props.Breadcrumbs != nil, props.Breadcrumbs),
		),

		html.Div(
			html.Class("flex items-center space-x-8"),
			account,
		),
	)
}

// RenderAccount re-renders the Account of an already mounted menu.
func (b *Bar) RenderAccount(ctx context.Context, menu *disclosure.Menu) (g.Node, error) {
	user := b.users.CurrentUser(ctx)
	if user == nil {
		return nil, errors.ErrUnauthenticated("account menu")
	}

	return Account(user, menu, b.paths), nil
}

func (b *Bar) signIn() g.Node {
	return html.A(
		html.Href(b.paths.Login),
		html.Class("inline-flex items-center gap-1.5 rounded-md px-3 py-1.5 text-sm font-medium "+linkClass),
		icons.User(icons.WithSize(16)),
		html.Span(g.Text("Sign in")),
	)
}

// Breadcrumb is one step of a breadcrumb trail.
type Breadcrumb struct {
	Label string
	Path  string // empty = current page (no link)
}

// Breadcrumbs renders a trail suitable for Props.Breadcrumbs.
func Breadcrumbs(crumbs []Breadcrumb) g.Node {
	if len(crumbs) == 0 {
		return nil
	}

	nodes := make([]g.Node, 0, len(crumbs)*2)

	for i, c := range crumbs {
		if i > 0 {
			nodes = append(nodes, html.Span(html.Class("text-system-grey4"), g.Text("/")))
		}

		if c.Path == "" {
			nodes = append(nodes, html.Span(
				g.Attr("aria-current", "page"),
				html.Class("text-primary-white"),
				g.Text(c.Label),
			))

			continue
		}

		nodes = append(nodes, html.A(
			html.Href(c.Path),
			html.Class(linkClass),
			g.Text(c.Label),
		))
	}

	return html.Nav(
		g.Attr("aria-label", "Breadcrumb"),
		html.Class("flex items-center space-x-2 text-sm"),
		g.Group(nodes),
	)
}

func mergeClasses(base, extra string) string {
	extra = strings.TrimSpace(extra)
	if extra == "" {
		return base
	}

	return base + " " + extra
}
