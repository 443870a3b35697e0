package dashboard

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/unweave/dashboard/auth"
	"github.com/unweave/dashboard/navbar"
)

const cardClass = "rounded-lg border border-system-grey6 p-6"

func pageHeading(title, subtitle string) g.Node {
	return html.Div(
		html.Class("mb-6"),
		html.H1(html.Class("text-2xl font-semibold"), g.Text(title)),
		g.If(subtitle != "", html.P(html.Class("mt-1 text-sm text-system-grey4"), g.Text(subtitle))),
	)
}

func projectsContent(paths navbar.Paths) g.Node {
	return html.Section(
		html.ID("projects"),
		pageHeading("Projects", "Your Unweave projects."),
		html.Div(
			html.Class(cardClass),
			html.P(html.Class("text-sm text-system-grey4"), g.Text("No projects yet.")),
			html.A(
				html.Href(paths.Settings),
				html.Class("mt-4 inline-block text-sm text-primary-blue"),
				g.Text("Manage account settings"),
			),
		),
	)
}

// settingsContent shows the signed-in account. Without a user it asks the
// visitor to sign in.
func settingsContent(user *auth.UserInfo) g.Node {
	if user == nil {
		return html.Section(
			html.ID("settings"),
			pageHeading("Settings", "Sign in to manage your account."),
		)
	}

	row := func(label, value string) g.Node {
		if value == "" {
			value = "Not set"
		}

		return html.Div(
			html.Class("flex justify-between py-2"),
			html.Dt(html.Class("text-system-grey4"), g.Text(label)),
			html.Dd(g.Text(value)),
		)
	}

	return html.Section(
		html.ID("settings"),
		pageHeading("Settings", "Account details."),
		html.Dl(
			html.Class(cardClass+" text-sm"),
			row("Name", user.DisplayName),
			row("Email", user.Email),
			row("User ID", user.Subject),
		),
	)
}

func loginContent(paths navbar.Paths) g.Node {
	return html.Section(
		html.ID("login"),
		pageHeading("Signed out", "Authentication is handled by your identity provider."),
		html.A(
			html.Href(paths.Home),
			html.Class("text-sm text-primary-blue"),
			g.Text("Back to the dashboard"),
		),
	)
}
