package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSizer int

func (s fixedSizer) Len() int { return int(s) }

func TestMetrics_Counters(t *testing.T) {
	m := New(Config{}, fixedSizer(3))

	m.PageRendered("projects")
	m.PageRendered("projects")
	m.MenuToggled("open")
	m.MenuRemounted()
	m.LoggedOut("ok")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Remounts))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.PageRenders.WithLabelValues("projects")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MenuToggles.WithLabelValues("open")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.MenuToggles.WithLabelValues("closed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Logouts.WithLabelValues("ok")))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.PageRendered("projects")
		m.MenuToggled("open")
		m.MenuRemounted()
		m.LoggedOut("ok")
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New(Config{}, fixedSizer(3))
	m.MenuToggled("open")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dashboard_account_menu_mounted 3")
	assert.Contains(t, rec.Body.String(), `dashboard_account_menu_toggles_total{state="open"} 1`)
}
