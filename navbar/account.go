package navbar

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/unweave/dashboard/auth"
	"github.com/unweave/dashboard/disclosure"
)

const (
	triggerClass = "bg-primary-blue flex h-10 w-10 items-center justify-center overflow-hidden rounded-full"
	panelClass   = "absolute right-0 mt-3 flex flex-col space-y-5 rounded-lg bg-system-grey6 p-4"
	linkClass    = "text-primary-white transition-colors hover:text-system-grey4"
	avatarSize   = "40"
)

// AccountRootID is the DOM id of an Account, used as the HTMX swap target.
func AccountRootID(menuID string) string { return "account-" + menuID }

// Account renders the avatar trigger and the account menu for one mounted
// menu instance. The panel is in the markup in both states. A closed panel
// stays in the page, inert, until its leave animation ends and is hidden
// after that. An open panel closes on a click outside the Account or on
// Escape.
func Account(user *auth.UserInfo, menu *disclosure.Menu, paths Paths) g.Node {
	snap := menu.Snapshot()

	rootID := AccountRootID(snap.ID)
	triggerID := "account-trigger-" + snap.ID
	panelID := "account-menu-" + snap.ID

	items := AccountItems(paths)
	nodes := make([]g.Node, 0, len(items))

	for _, item := range items {
		nodes = append(nodes, menuItem(item))
	}

	return html.Div(
		html.ID(rootID),
		html.Class("relative"),
		g.Attr("data-menu-id", snap.ID),
		g.Attr("data-state", snap.State),

		html.Button(
			html.ID(triggerID),
			html.Type("button"),
			html.Class(triggerClass),
			g.Attr("aria-haspopup", "menu"),
			g.Attr("aria-expanded", strconv.FormatBool(snap.Open)),
			g.Attr("aria-controls", panelID),
			g.Attr("hx-post", paths.Toggle(snap.ID)),
			g.Attr("hx-target", "#"+rootID),
			g.Attr("hx-swap", "outerHTML"),
			avatar(user),
		),

		html.Div(
			html.ID(panelID),
			g.Attr("role", "menu"),
			g.Attr("aria-labelledby", triggerID),
			g.Attr("data-phase", snap.Phase),
			html.Class(panelClass+" "+snap.Classes),
			g.If(snap.Open, dismiss(rootID, paths.Close(snap.ID))),
			g.If(!snap.Open && snap.Phase == disclosure.PhaseLeaving.String(), g.Group([]g.Node{
				g.Attr("inert"),
				g.Attr("aria-hidden", "true"),
			})),
			g.If(!snap.Open && snap.Phase != disclosure.PhaseLeaving.String(), g.Attr("hidden")),
			g.Group(nodes),
		),
	)
}

// dismiss posts to closePath when the page is clicked outside the Account
// or Escape is released.
func dismiss(rootID, closePath string) g.Node {
	return g.Group([]g.Node{
		g.Attr("hx-post", closePath),
		g.Attr("hx-trigger", "click[!target.closest('#"+rootID+"')] from:body, keyup[key=='Escape'] from:body"),
		g.Attr("hx-target", "#"+rootID),
		g.Attr("hx-swap", "outerHTML"),
	})
}

func avatar(user *auth.UserInfo) g.Node {
	if user == nil || strings.TrimSpace(user.AvatarURL) == "" {
		return html.Span(
			html.Class("text-xs font-semibold text-primary-white"),
			g.Text(user.Initials()),
		)
	}

	return html.Img(
		html.Src(user.AvatarURL),
		html.Width(avatarSize),
		html.Height(avatarSize),
		html.Alt("avatar"),
	)
}

func menuItem(item MenuItem) g.Node {
	label := html.Span(
		html.Class("flex items-center text-base"),
		itemIcon(item.Icon),
		g.Text(item.Label),
	)

	if item.Kind == ItemAction {
		return html.Form(
			html.Method("post"),
			html.Action(item.Href),
			html.Button(
				html.Type("submit"),
				g.Attr("role", "menuitem"),
				html.Class(linkClass),
				label,
			),
		)
	}

	return html.A(
		html.Href(item.Href),
		g.Attr("role", "menuitem"),
		html.Class(linkClass),
		label,
	)
}
