// Package metrics exposes Prometheus counters for the dashboard chrome.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dashboard"

// Sizer reports a current count, e.g. the number of mounted menus.
type Sizer interface {
	Len() int
}

// Metrics holds the collectors registered for one server.
type Metrics struct {
	registry *prometheus.Registry

	PageRenders *prometheus.CounterVec
	MenuToggles *prometheus.CounterVec
	Remounts    prometheus.Counter
	Logouts     *prometheus.CounterVec
}

// Config controls which collectors are registered.
type Config struct {
	EnableGoMetrics bool `yaml:"enable_go_metrics" json:"enable_go_metrics"`
}

// New creates a registry with the dashboard collectors. mounted may be nil.
func New(cfg Config, mounted Sizer) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Pages rendered with the navigation bar.",
		}, []string{"page"}),
		MenuToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "account_menu",
			Name:      "toggles_total",
			Help:      "Account menu toggles by resulting state.",
		}, []string{"state"}),
		Remounts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "account_menu",
			Name:      "remounts_total",
			Help:      "Menus mounted again after their id was swept or evicted.",
		}),
		Logouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logouts_total",
			Help:      "Logout actions by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.PageRenders, m.MenuToggles, m.Remounts, m.Logouts)

	if mounted != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "account_menu",
			Name:      "mounted",
			Help:      "Account menus currently mounted.",
		}, func() float64 { return float64(mounted.Len()) }))
	}

	if cfg.EnableGoMetrics {
		reg.MustRegister(prometheus.NewGoCollector())
		reg.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	}

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// PageRendered counts one page render.
func (m *Metrics) PageRendered(page string) {
	if m == nil {
		return
	}

	m.PageRenders.WithLabelValues(page).Inc()
}

// MenuToggled counts one toggle ending in state.
func (m *Metrics) MenuToggled(state string) {
	if m == nil {
		return
	}

	m.MenuToggles.WithLabelValues(state).Inc()
}

// MenuRemounted counts one stale menu id replaced by a fresh menu.
func (m *Metrics) MenuRemounted() {
	if m == nil {
		return
	}

	m.Remounts.Inc()
}

// LoggedOut counts one logout with its outcome ("ok" or "error").
func (m *Metrics) LoggedOut(outcome string) {
	if m == nil {
		return
	}

	m.Logouts.WithLabelValues(outcome).Inc()
}
