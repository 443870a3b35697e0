package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/xraph/confy"
	"github.com/xraph/confy/sources"

	"github.com/unweave/dashboard/auth"
	"github.com/unweave/dashboard/errors"
	"github.com/unweave/dashboard/telemetry"
)

// Config contains dashboard server configuration.
type Config struct {
	Environment string `json:"environment" yaml:"environment"`

	// Server settings
	Addr            string        `json:"addr"             yaml:"addr"`
	BasePath        string        `json:"base_path"        yaml:"base_path"`
	Title           string        `json:"title"            yaml:"title"`
	ReadTimeout     time.Duration `json:"read_timeout"     yaml:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"    yaml:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`

	// Authentication collaborators
	LoginPath     string `json:"login_path"     yaml:"login_path"`     // relative to base_path
	LogoutPath    string `json:"logout_path"    yaml:"logout_path"`    // relative to base_path
	SessionCookie string `json:"session_cookie" yaml:"session_cookie"` // cleared on logout; empty = none

	// Account menus
	MenuIdleTTL       time.Duration `json:"menu_idle_ttl"       yaml:"menu_idle_ttl"`
	SweepInterval     time.Duration `json:"sweep_interval"      yaml:"sweep_interval"`
	MaxMenus          int           `json:"max_menus"           yaml:"max_menus"` // oldest idle menu is evicted past this
	MenuEnterDuration time.Duration `json:"menu_enter_duration" yaml:"menu_enter_duration"`
	MenuLeaveDuration time.Duration `json:"menu_leave_duration" yaml:"menu_leave_duration"`

	// Theming
	Theme     string `json:"theme"      yaml:"theme"` // light, dark, auto
	CustomCSS string `json:"custom_css" yaml:"custom_css"`
	LogoAlt   string `json:"logo_alt"   yaml:"logo_alt"`

	// Observability
	EnableMetrics bool             `json:"enable_metrics" yaml:"enable_metrics"`
	MetricsPath   string           `json:"metrics_path"   yaml:"metrics_path"`
	Telemetry     telemetry.Config `json:"telemetry"      yaml:"telemetry"`

	// DemoUser, when set, is treated as signed in on every request.
	DemoUser *auth.UserInfo `json:"demo_user,omitempty" yaml:"demo_user,omitempty"`
}

// DefaultConfig returns the default dashboard configuration.
func DefaultConfig() Config {
	return Config{
		Environment: "production",

		Addr:            ":8080",
		BasePath:        "",
		Title:           "Unweave",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		ShutdownTimeout: 10 * time.Second,

		LoginPath:     "/auth/login",
		LogoutPath:    "/auth/logout",
		SessionCookie: "unweave_session",

		MenuIdleTTL:       30 * time.Minute,
		SweepInterval:     time.Minute,
		MaxMenus:          10000,
		MenuEnterDuration: 100 * time.Millisecond,
		MenuLeaveDuration: 75 * time.Millisecond,

		Theme:   "auto",
		LogoAlt: "Unweave Logo",

		EnableMetrics: true,
		MetricsPath:   "/metrics",
		Telemetry: telemetry.Config{
			ServiceName: "unweave-dashboard",
			Insecure:    true,
		},
	}
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.ErrInvalidConfig("addr", errors.New("cannot be empty"))
	}

	if c.BasePath != "" && (!strings.HasPrefix(c.BasePath, "/") || strings.HasSuffix(c.BasePath, "/")) {
		return errors.ErrInvalidConfig("base_path", fmt.Errorf("%q must start with / and not end with /", c.BasePath))
	}

	for key, p := range map[string]string{"login_path": c.LoginPath, "logout_path": c.LogoutPath} {
		if !strings.HasPrefix(p, "/") {
			return errors.ErrInvalidConfig(key, fmt.Errorf("%q must start with /", p))
		}
	}

	if c.MenuIdleTTL < time.Second {
		return errors.ErrInvalidConfig("menu_idle_ttl", fmt.Errorf("too short: %v (minimum 1s)", c.MenuIdleTTL))
	}

	if c.SweepInterval <= 0 {
		return errors.ErrInvalidConfig("sweep_interval", fmt.Errorf("must be positive: %v", c.SweepInterval))
	}

	if c.MaxMenus < 1 {
		return errors.ErrInvalidConfig("max_menus", fmt.Errorf("must be at least 1: %d", c.MaxMenus))
	}

	if c.MenuEnterDuration < 0 || c.MenuLeaveDuration < 0 {
		return errors.ErrInvalidConfig("menu_transition", errors.New("durations cannot be negative"))
	}

	validThemes := map[string]bool{"light": true, "dark": true, "auto": true}
	if !validThemes[c.Theme] {
		return errors.ErrInvalidConfig("theme", fmt.Errorf("invalid theme: %s (must be light, dark, or auto)", c.Theme))
	}

	if c.EnableMetrics && !strings.HasPrefix(c.MetricsPath, "/") {
		return errors.ErrInvalidConfig("metrics_path", fmt.Errorf("%q must start with /", c.MetricsPath))
	}

	return nil
}

// ConfigOption is a functional option for Config.
type ConfigOption func(*Config)

// WithAddr sets the listen address.
func WithAddr(addr string) ConfigOption {
	return func(c *Config) { c.Addr = addr }
}

// WithBasePath sets the URL prefix every route is mounted under.
func WithBasePath(path string) ConfigOption {
	return func(c *Config) { c.BasePath = path }
}

// WithEnvironment sets the environment name.
func WithEnvironment(env string) ConfigOption {
	return func(c *Config) { c.Environment = env }
}

// WithMenuIdleTTL sets how long an untouched account menu stays mounted.
func WithMenuIdleTTL(ttl time.Duration) ConfigOption {
	return func(c *Config) { c.MenuIdleTTL = ttl }
}

// WithDemoUser signs every request in as user.
func WithDemoUser(user *auth.UserInfo) ConfigOption {
	return func(c *Config) { c.DemoUser = user }
}

// WithMetrics enables or disables the metrics endpoint.
func WithMetrics(enabled bool) ConfigOption {
	return func(c *Config) { c.EnableMetrics = enabled }
}

// WithTheme sets the UI theme (light, dark, auto).
func WithTheme(theme string) ConfigOption {
	return func(c *Config) { c.Theme = theme }
}

// NewConfig builds a config from the defaults and opts.
func NewConfig(opts ...ConfigOption) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// envPrefix scopes the environment variables read by LoadConfig. Nested
// keys use a double underscore: DASHBOARD_TELEMETRY__ENDPOINT.
const envPrefix = "DASHBOARD_"

// durationKeys mirrors the duration fields as strings so values such as
// "5m" survive binding and are parsed with time.ParseDuration.
type durationKeys struct {
	ReadTimeout     string `yaml:"read_timeout"`
	WriteTimeout    string `yaml:"write_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
	MenuIdleTTL     string `yaml:"menu_idle_ttl"`
	SweepInterval   string `yaml:"sweep_interval"`
	MenuEnter       string `yaml:"menu_enter_duration"`
	MenuLeave       string `yaml:"menu_leave_duration"`
}

// LoadConfig layers defaults, the YAML file at path (if any), a .env file
// and DASHBOARD_* environment variables, and validates the result.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	mgr := confy.NewFromConfig(confy.Config{})

	if path != "" {
		file, err := sources.NewFileSource(path, sources.FileSourceOptions{
			Name:          "dashboard.file",
			Priority:      100,
			ExpandEnvVars: true,
			RequireFile:   true,
		})
		if err != nil {
			return Config{}, errors.ErrInvalidConfig("config_file", err)
		}

		if err := mgr.LoadFrom(file); err != nil {
			return Config{}, errors.ErrInvalidConfig("config_file", err)
		}
	}

	env, err := sources.NewEnvSource(envPrefix, sources.EnvSourceOptions{
		Name:      "dashboard.env",
		Prefix:    envPrefix,
		Separator: "__",
		Priority:  200,
	})
	if err != nil {
		return Config{}, errors.ErrInvalidConfig("env", err)
	}

	if err := mgr.LoadFrom(env); err != nil {
		return Config{}, errors.ErrInvalidConfig("env", err)
	}

	cfg := DefaultConfig()
	if err := mgr.Bind("", &cfg); err != nil {
		return Config{}, errors.ErrInvalidConfig("config", err)
	}

	var raw durationKeys
	if err := mgr.Bind("", &raw); err != nil {
		return Config{}, errors.ErrInvalidConfig("config", err)
	}

	for key, d := range map[string]struct {
		raw    string
		target *time.Duration
	}{
		"read_timeout":        {raw.ReadTimeout, &cfg.ReadTimeout},
		"write_timeout":       {raw.WriteTimeout, &cfg.WriteTimeout},
		"shutdown_timeout":    {raw.ShutdownTimeout, &cfg.ShutdownTimeout},
		"menu_idle_ttl":       {raw.MenuIdleTTL, &cfg.MenuIdleTTL},
		"sweep_interval":      {raw.SweepInterval, &cfg.SweepInterval},
		"menu_enter_duration": {raw.MenuEnter, &cfg.MenuEnterDuration},
		"menu_leave_duration": {raw.MenuLeave, &cfg.MenuLeaveDuration},
	} {
		if d.raw == "" {
			continue
		}

		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			return Config{}, errors.ErrInvalidConfig(key, err)
		}

		*d.target = parsed
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
