package dashboard

import (
	"context"
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	g "maragu.dev/gomponents"

	"github.com/unweave/dashboard/auth"
	"github.com/unweave/dashboard/disclosure"
	"github.com/unweave/dashboard/errors"
	"github.com/unweave/dashboard/internal/logger"
	"github.com/unweave/dashboard/layouts"
	"github.com/unweave/dashboard/navbar"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed assets/logo.svg
var logoSVG []byte

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "projects", navbar.Props{}, projectsContent(s.paths))
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	props := navbar.Props{
		Breadcrumbs: navbar.Breadcrumbs([]navbar.Breadcrumb{
			{Label: "Projects", Path: s.paths.Projects},
			{Label: "Settings"},
		}),
	}

	s.renderPage(w, r, "settings", props, settingsContent(s.users.CurrentUser(r.Context())))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, "login", navbar.Props{}, loginContent(s.paths))
}

// renderPage frames content with the navigation bar. Partial HTMX requests
// skip the bar so no menu is mounted for them.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, page string, props navbar.Props, content g.Node) {
	ctx, span := s.tracer.Start(r.Context(), "dashboard.page",
		trace.WithAttributes(attribute.String("dashboard.page", page)),
	)
	defer span.End()

	var nav g.Node
	if !layouts.IsPartial(r) {
		nav = s.bar.Render(ctx, props)
	}

	s.metrics.PageRendered(page)
	s.writeHTML(w, span, page, layouts.Page(r, s.layout(), nav, content))
}

// handleToggle flips one account menu and returns its re-rendered Account.
func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, span := s.tracer.Start(r.Context(), "dashboard.account_menu.toggle",
		trace.WithAttributes(attribute.String("dashboard.menu_id", id)),
	)
	defer span.End()

	if s.users.CurrentUser(ctx) == nil {
		s.writeError(w, span, errors.ErrUnauthenticated("toggle account menu"))
		return
	}

	menu := s.resolveMenu(span, id)

	state := menu.Toggle()
	span.SetAttributes(attribute.String("dashboard.menu_state", state.String()))
	s.metrics.MenuToggled(state.String())

	s.writeAccount(ctx, w, span, menu)
}

// handleClose closes one account menu. The open panel posts here when the
// page is clicked outside the Account or Escape is pressed.
func (s *Server) handleClose(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, span := s.tracer.Start(r.Context(), "dashboard.account_menu.close",
		trace.WithAttributes(attribute.String("dashboard.menu_id", id)),
	)
	defer span.End()

	if s.users.CurrentUser(ctx) == nil {
		s.writeError(w, span, errors.ErrUnauthenticated("close account menu"))
		return
	}

	menu := s.resolveMenu(span, id)

	if menu.Close() {
		s.metrics.MenuToggled(disclosure.Closed.String())
	}

	s.writeAccount(ctx, w, span, menu)
}

// resolveMenu returns the menu mounted under id. An id that was swept or
// evicted while its page stayed open gets a fresh closed menu; the Account
// rendered from it carries the new id back to the browser.
func (s *Server) resolveMenu(span trace.Span, id string) *disclosure.Menu {
	menu, err := s.menus.Get(id)
	if err == nil {
		return menu
	}

	menu = s.menus.Mount()

	span.SetAttributes(attribute.String("dashboard.remounted_menu_id", menu.ID()))
	s.metrics.MenuRemounted()
	s.logger.Debug("remounted account menu",
		logger.String("stale_id", id),
		logger.String("menu_id", menu.ID()),
	)

	return menu
}

func (s *Server) writeAccount(ctx context.Context, w http.ResponseWriter, span trace.Span, menu *disclosure.Menu) {
	node, err := s.bar.RenderAccount(ctx, menu)
	if err != nil {
		s.writeError(w, span, err)
		return
	}

	s.writeHTML(w, span, "account", node)
}

func (s *Server) handleMenuState(w http.ResponseWriter, r *http.Request) {
	if s.users.CurrentUser(r.Context()) == nil {
		s.writeError(w, nil, errors.ErrUnauthenticated("read account menu"))
		return
	}

	menu, err := s.menus.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, nil, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	if err := json.NewEncoder(w).Encode(menu.Snapshot()); err != nil {
		s.logger.Error("failed to encode menu state", logger.Error(err))
	}
}

func (s *Server) handleUnmount(w http.ResponseWriter, r *http.Request) {
	if s.users.CurrentUser(r.Context()) == nil {
		s.writeError(w, nil, errors.ErrUnauthenticated("unmount account menu"))
		return
	}

	id := chi.URLParam(r, "id")

	if !s.menus.Unmount(id) {
		s.writeError(w, nil, errors.ErrMenuNotFound(id))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleLogout runs the logout action once, drops the session cookie and
// sends the browser to the login page. A failed logout still redirects.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "dashboard.logout")
	defer span.End()

	outcome := "ok"
	if err := s.logouter.Logout(ctx); err != nil {
		outcome = "error"

		span.RecordError(err)
		span.SetStatus(codes.Error, "logout failed")
		s.logger.Error("logout failed", logger.Error(err))
	}

	s.metrics.LoggedOut(outcome)

	if s.config.SessionCookie != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     s.config.SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	auth.Redirect(w, r, s.paths.Login)
}

func (s *Server) handleLogo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(logoSVG)
}

func (s *Server) writeHTML(w http.ResponseWriter, span trace.Span, component string, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if err := node.Render(w); err != nil {
		err = errors.ErrRenderFailed(component, err)

		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		s.logger.Error("render failed", logger.String("component", component), logger.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, span trace.Span, err error) {
	status := errors.HTTPStatus(err)

	if span != nil {
		span.RecordError(err)
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", logger.Error(err))
	} else {
		s.logger.Debug("request rejected", logger.Int("status", status), logger.Error(err))
	}

	http.Error(w, http.StatusText(status), status)
}
