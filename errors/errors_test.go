package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestDashboardErrorIs(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{
			name:   "same error code matches",
			err:    ErrMenuNotFound("abc"),
			target: ErrMenuNotFoundSentinel,
			want:   true,
		},
		{
			name:   "different error code does not match",
			err:    ErrMenuNotFound("abc"),
			target: ErrUnauthenticatedSentinel,
			want:   false,
		},
		{
			name:   "wrapped error matches",
			err:    fmt.Errorf("toggle: %w", ErrMenuNotFound("abc")),
			target: ErrMenuNotFoundSentinel,
			want:   true,
		},
		{
			name:   "nil target does not match",
			err:    ErrMenuNotFound("abc"),
			target: nil,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.target); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"menu not found", ErrMenuNotFound("x"), http.StatusNotFound},
		{"unauthenticated", ErrUnauthenticated("toggle"), http.StatusUnauthorized},
		{"render failed", ErrRenderFailed("account", New("boom")), http.StatusInternalServerError},
		{"plain", New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsInvalidConfig(t *testing.T) {
	if !IsInvalidConfig(ErrInvalidConfig("base_path", New("empty"))) {
		t.Error("expected invalid config error to match")
	}

	if IsInvalidConfig(ErrMenuNotFound("x")) {
		t.Error("menu not found should not match invalid config")
	}
}
