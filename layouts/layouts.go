// Package layouts wraps page content and the navigation bar into a full
// HTML document.
package layouts

import (
	"net/http"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/forgeui/layout"

	"github.com/unweave/dashboard/theme"
)

// HTMXSource is the HTMX build loaded by every page.
const HTMXSource = "https://unpkg.com/htmx.org@2.0.4"

// Config holds document-level settings.
type Config struct {
	Title string
	Theme *theme.Manager
}

// IsPartial reports whether r is an HTMX navigation that only wants the
// content fragment. Boosted requests still get the full document.
func IsPartial(r *http.Request) bool {
	return r.Header.Get("Hx-Request") != "" && r.Header.Get("Hx-Boosted") == ""
}

// Page renders the document: the fixed navigation bar on top and content
// below it. For partial HTMX requests only content is returned.
func Page(r *http.Request, cfg Config, nav g.Node, content g.Node) g.Node {
	if IsPartial(r) {
		return content
	}

	mgr := cfg.Theme
	if mgr == nil {
		mgr = theme.NewManager(theme.DefaultConfig(), nil)
	}

	return layout.Build(
		layout.Head(
			g.Group(mgr.HeadNodes()),
			layout.Title(cfg.Title),
			layout.Viewport("width=device-width, initial-scale=1"),
			layout.Script("https://cdn.tailwindcss.com"),
			html.Script(
				g.Attr("src", HTMXSource),
				g.Attr("crossorigin", "anonymous"),
			),
		),

		layout.Body(
			html.Class("min-h-screen bg-primary-black text-primary-white antialiased "+mgr.BodyClass()),
			nav,
			html.Main(
				html.ID("content"),
				html.Class("px-3 pt-20"),
				content,
			),
		),
	)
}
