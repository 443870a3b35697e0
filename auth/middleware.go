package auth

import (
	"net/http"

	"github.com/unweave/dashboard/internal/logger"
)

// Middleware runs the AuthChecker and stores the resulting UserInfo in the
// request context. It never blocks a request; checker failures are logged
// and the request continues anonymously.
func Middleware(checker AuthChecker, log logger.Logger) func(http.Handler) http.Handler {
	log = logger.OrNoop(log)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if checker == nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := checker.CheckAuth(r.Context(), r)
			if err != nil {
				log.Warn("auth check failed", logger.String("path", r.URL.Path), logger.Error(err))
			}

			if user != nil {
				r = r.WithContext(WithUser(r.Context(), user))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Redirect sends an HTMX-aware redirect. HTMX partial requests get an
// HX-Redirect header so the browser performs a full-page navigation.
func Redirect(w http.ResponseWriter, r *http.Request, target string) {
	if r.Header.Get("Hx-Request") != "" {
		w.Header().Set("Hx-Redirect", target)
		w.WriteHeader(http.StatusOK)

		return
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

