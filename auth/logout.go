package auth

import "context"

// Logouter ends the current user's session. Callers do not inspect the
// outcome; error handling belongs to the implementation.
type Logouter interface {
	Logout(ctx context.Context) error
}

// LogoutFunc is a function adapter for Logouter.
type LogoutFunc func(ctx context.Context) error

// Logout implements Logouter.
func (f LogoutFunc) Logout(ctx context.Context) error {
	return f(ctx)
}

// NopLogouter does nothing. Useful when the session lives entirely in a
// cookie that the HTTP layer clears.
type NopLogouter struct{}

// Logout implements Logouter.
func (NopLogouter) Logout(context.Context) error { return nil }
