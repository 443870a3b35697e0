// Package auth provides the authentication collaborators the navigation bar
// consumes: the signed-in user record, a per-request accessor for it, and the
// logout action. It does not authenticate anyone itself; adapters convert
// provider-specific sessions into UserInfo.
package auth

import (
	"context"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"
)

// UserInfo is the signed-in user as seen by the dashboard chrome. The
// navigation bar only reads AvatarURL (and the name fields for fallbacks)
// and never mutates it.
type UserInfo struct {
	// Subject is the unique user identifier.
	Subject string `json:"subject" yaml:"subject"`

	// DisplayName is the user's display name.
	DisplayName string `json:"display_name" yaml:"display_name"`

	// Email is the user's email address.
	Email string `json:"email" yaml:"email"`

	// AvatarURL is the URL of the user's avatar image.
	AvatarURL string `json:"avatar_url" yaml:"avatar_url"`

	// Metadata holds provider-specific metadata.
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Authenticated returns true if the user has a non-empty Subject.
func (u *UserInfo) Authenticated() bool {
	return u != nil && u.Subject != ""
}

// Initials returns the user's initials (up to 2 characters) for avatar fallback.
func (u *UserInfo) Initials() string {
	if u == nil || strings.TrimSpace(u.DisplayName) == "" {
		if u != nil && u.Email != "" {
			return firstLetter(u.Email)
		}

		return "?"
	}

	parts := strings.Fields(u.DisplayName)
	if len(parts) == 1 {
		return firstLetter(parts[0])
	}

	return firstLetter(parts[0]) + firstLetter(parts[len(parts)-1])
}

func firstLetter(s string) string {
	r, _ := utf8.DecodeRuneInString(s)

	return string(unicode.ToUpper(r))
}

// AuthChecker resolves the user behind an HTTP request.
type AuthChecker interface {
	// CheckAuth returns nil (not an error) when the request is
	// unauthenticated. Errors are reserved for infrastructure failures.
	CheckAuth(ctx context.Context, r *http.Request) (*UserInfo, error)
}

// AuthCheckerFunc is a function adapter for AuthChecker.
type AuthCheckerFunc func(ctx context.Context, r *http.Request) (*UserInfo, error)

// CheckAuth implements AuthChecker.
func (f AuthCheckerFunc) CheckAuth(ctx context.Context, r *http.Request) (*UserInfo, error) {
	return f(ctx, r)
}

// StaticChecker authenticates every request as the same user. A nil user
// makes every request anonymous.
func StaticChecker(user *UserInfo) AuthChecker {
	return AuthCheckerFunc(func(context.Context, *http.Request) (*UserInfo, error) {
		if user == nil {
			return nil, nil
		}

		cp := *user

		return &cp, nil
	})
}

// UserAccessor returns the current user for the request being rendered.
// It is injected into components instead of being read from a global.
type UserAccessor interface {
	CurrentUser(ctx context.Context) *UserInfo
}

// AccessorFunc is a function adapter for UserAccessor.
type AccessorFunc func(ctx context.Context) *UserInfo

// CurrentUser implements UserAccessor.
func (f AccessorFunc) CurrentUser(ctx context.Context) *UserInfo {
	return f(ctx)
}

// ContextAccessor reads the user placed in the context by Middleware.
type ContextAccessor struct{}

// CurrentUser implements UserAccessor.
func (ContextAccessor) CurrentUser(ctx context.Context) *UserInfo {
	return UserFromContext(ctx)
}
