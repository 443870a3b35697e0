// Package dashboard serves the Unweave dashboard shell: pages framed by the
// navigation bar, and the endpoints its account menu talks to.
package dashboard

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/unweave/dashboard/auth"
	"github.com/unweave/dashboard/disclosure"
	"github.com/unweave/dashboard/errors"
	"github.com/unweave/dashboard/internal/logger"
	"github.com/unweave/dashboard/layouts"
	"github.com/unweave/dashboard/metrics"
	"github.com/unweave/dashboard/navbar"
	"github.com/unweave/dashboard/telemetry"
	"github.com/unweave/dashboard/theme"
)

// Server is the dashboard HTTP server.
type Server struct {
	config   Config
	logger   logger.Logger
	checker  auth.AuthChecker
	users    auth.UserAccessor
	logouter auth.Logouter
	tracer   trace.Tracer
	clock    func() time.Time

	menus   *disclosure.Store
	bar     *navbar.Bar
	paths   navbar.Paths
	theme   *theme.Manager
	metrics *metrics.Metrics
	router  chi.Router

	mu        sync.RWMutex
	server    *http.Server
	listener  net.Listener
	running   bool
	stopSweep context.CancelFunc
	served    chan struct{}
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) { s.logger = logger.OrNoop(l) }
}

// WithAuthChecker sets how requests are authenticated. By default the
// configured demo user (if any) is signed in on every request.
func WithAuthChecker(c auth.AuthChecker) Option {
	return func(s *Server) { s.checker = c }
}

// WithUserAccessor sets where the navigation bar reads the current user.
func WithUserAccessor(a auth.UserAccessor) Option {
	return func(s *Server) { s.users = a }
}

// WithLogouter sets the action run by the Log out menu item.
func WithLogouter(l auth.Logouter) Option {
	return func(s *Server) { s.logouter = l }
}

// WithTracer sets the tracer used for handler spans.
func WithTracer(t trace.Tracer) Option {
	return func(s *Server) { s.tracer = t }
}

// WithClock sets the time source for menu transitions and idle sweeping.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.clock = now }
}

// NewServer builds a server from a validated config.
func NewServer(cfg Config, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Server{
		config:   cfg,
		logger:   logger.NewNoopLogger(),
		checker:  auth.StaticChecker(cfg.DemoUser),
		users:    auth.ContextAccessor{},
		logouter: auth.NopLogouter{},
		tracer:   otel.Tracer(telemetry.InstrumentationName),
		clock:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	anim := disclosure.DefaultTransition()
	anim.EnterDuration = cfg.MenuEnterDuration
	anim.LeaveDuration = cfg.MenuLeaveDuration

	s.menus = disclosure.NewStore(
		disclosure.WithIdleTTL(cfg.MenuIdleTTL),
		disclosure.WithMaxMenus(cfg.MaxMenus),
		disclosure.WithStoreClock(s.clock),
		disclosure.WithLogger(s.logger),
		disclosure.WithMenuOptions(disclosure.WithTransition(anim)),
	)

	s.paths = navbar.Paths{
		Home:     "/",
		Projects: "/",
		Settings: "/settings",
		Login:    cfg.LoginPath,
		Logout:   cfg.LogoutPath,
		Account:  "/account",
	}.WithBase(cfg.BasePath)

	s.bar = navbar.NewBar(s.users, s.menus,
		navbar.WithPaths(s.paths),
		navbar.WithBrand(navbar.Brand{
			LogoSrc: cfg.BasePath + "/logo.svg",
			LogoAlt: cfg.LogoAlt,
		}),
		navbar.WithLogger(s.logger),
	)

	s.theme = theme.NewManager(theme.Config{Mode: cfg.Theme, CustomCSS: cfg.CustomCSS}, nil)

	if cfg.EnableMetrics {
		s.metrics = metrics.New(metrics.Config{EnableGoMetrics: true}, s.menus)
	}

	s.setupRoutes()

	return s, nil
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(auth.Middleware(s.checker, s.logger))

	routes := func(r chi.Router) {
		r.Get("/", s.handleProjects)
		r.Get("/settings", s.handleSettings)
		r.Get(s.config.LoginPath, s.handleLogin)
		r.Post(s.config.LogoutPath, s.handleLogout)
		r.Get("/logo.svg", s.handleLogo)

		r.Route("/account/{id}", func(r chi.Router) {
			r.Get("/", s.handleMenuState)
			r.Delete("/", s.handleUnmount)
			r.Post("/toggle", s.handleToggle)
			r.Post("/close", s.handleClose)
		})

		if s.metrics != nil {
			r.Handle(s.config.MetricsPath, s.metrics.Handler())
		}
	}

	if s.config.BasePath == "" {
		routes(r)
	} else {
		r.Route(s.config.BasePath, routes)
	}

	s.router = r
}

// requestLogger logs every request at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Debug("request",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Int("status", ww.Status()),
			logger.Duration("duration", time.Since(start)),
			logger.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// Handler returns the HTTP handler serving every dashboard route.
func (s *Server) Handler() http.Handler { return s.router }

// Menus returns the store holding mounted account menus.
func (s *Server) Menus() *disclosure.Store { return s.menus }

// Metrics returns the server metrics, or nil when disabled.
func (s *Server) Metrics() *metrics.Metrics { return s.metrics }

// Paths returns the base-prefixed navigation paths.
func (s *Server) Paths() navbar.Paths { return s.paths }

// Start listens on the configured address and serves in the background.
// It also starts the idle menu sweeper.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return errors.ErrLifecycleError("start", errors.New("dashboard server already running"))
	}

	ln, err := (&net.ListenConfig{}).Listen(ctx, "tcp", s.config.Addr)
	if err != nil {
		return errors.ErrLifecycleError("start", err)
	}

	s.server = &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	s.listener = ln

	sweepCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.stopSweep = cancel

	go s.menus.Run(sweepCtx, s.config.SweepInterval)

	served := make(chan struct{})
	s.served = served

	go func() {
		defer close(served)

		s.logger.Info("dashboard server listening",
			logger.String("addr", ln.Addr().String()),
			logger.String("base_path", s.config.BasePath),
		)

		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("dashboard server error", logger.Error(err))
		}
	}()

	s.running = true

	return nil
}

// Stop shuts the server down gracefully and stops the sweeper.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	s.stopSweep()

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return errors.ErrLifecycleError("stop", fmt.Errorf("failed to shutdown dashboard server: %w", err))
	}

	<-s.served

	s.running = false
	s.logger.Info("dashboard server stopped")

	return nil
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.running
}

// Addr returns the address the server listens on, or "" when stopped.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.running {
		return ""
	}

	return s.listener.Addr().String()
}

func (s *Server) layout() layouts.Config {
	return layouts.Config{Title: s.config.Title, Theme: s.theme}
}
