package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/unweave/dashboard"
	"github.com/unweave/dashboard/auth"
	"github.com/unweave/dashboard/internal/logger"
	"github.com/unweave/dashboard/telemetry"
)

var (
	cyan    = color.New(color.FgCyan).SprintFunc()
	gray    = color.New(color.FgHiBlack).SprintFunc()
	bold    = color.New(color.Bold).SprintFunc()
	boldRed = color.New(color.FgRed, color.Bold).SprintFunc()
)

type serveFlags struct {
	config   string
	addr     string
	basePath string
	env      string
	demoUser string
}

func (f *serveFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVar(&f.addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&f.basePath, "base-path", "", "URL prefix for every route")
	cmd.Flags().StringVar(&f.env, "env", "", "environment: development or production")
	cmd.Flags().StringVar(&f.demoUser, "demo-user", "", "display name of a user signed in on every request")
}

// load reads the config file and environment, then applies the flags the
// user set explicitly.
func (f *serveFlags) load(cmd *cobra.Command) (dashboard.Config, error) {
	cfg, err := dashboard.LoadConfig(f.config)
	if err != nil {
		return dashboard.Config{}, err
	}

	if cmd.Flags().Changed("addr") {
		cfg.Addr = f.addr
	}

	if cmd.Flags().Changed("base-path") {
		cfg.BasePath = f.basePath
	}

	if cmd.Flags().Changed("env") {
		cfg.Environment = f.env
	}

	if cmd.Flags().Changed("demo-user") && f.demoUser != "" {
		cfg.DemoUser = &auth.UserInfo{Subject: "demo", DisplayName: f.demoUser}
	}

	if err := cfg.Validate(); err != nil {
		return dashboard.Config{}, err
	}

	return cfg, nil
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "dashboard",
		Short: "Unweave dashboard server",
		Long: `Serves the Unweave dashboard shell: the navigation bar with its
account menu, the projects and settings pages, and metrics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCommand())
	root.AddCommand(newConfigCommand())

	return root
}

func newServeCommand() *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cmd.OutOrStdout(), cfg)
		},
	}

	flags.register(cmd)

	return cmd
}

func newConfigCommand() *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)

			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}

			return enc.Close()
		},
	}

	flags.register(cmd)

	return cmd
}

func serve(ctx context.Context, out io.Writer, cfg dashboard.Config) error {
	log := logger.ForEnvironment(cfg.Environment)

	tp, err := telemetry.New(ctx, cfg.Telemetry, log)
	if err != nil {
		return err
	}

	logouter := auth.LogoutFunc(func(ctx context.Context) error {
		log.Info("user logged out")
		return nil
	})

	srv, err := dashboard.NewServer(cfg,
		dashboard.WithLogger(log),
		dashboard.WithLogouter(logouter),
		dashboard.WithTracer(tp.Tracer()),
	)
	if err != nil {
		return err
	}

	if err := srv.Start(ctx); err != nil {
		return err
	}

	printBanner(out, cfg, srv.Addr())

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		return err
	}

	return tp.Shutdown(shutdownCtx)
}

func printBanner(out io.Writer, cfg dashboard.Config, addr string) {
	fmt.Fprintf(out, "\n  %s %s\n\n", bold("Unweave dashboard"), gray("("+cfg.Environment+")"))
	fmt.Fprintf(out, "  %s  http://%s%s/\n", gray("listening"), cyan(addr), cfg.BasePath)

	if cfg.EnableMetrics {
		fmt.Fprintf(out, "  %s    %s%s\n", gray("metrics"), cfg.BasePath, cfg.MetricsPath)
	}

	if cfg.DemoUser != nil {
		fmt.Fprintf(out, "  %s  %s\n", gray("demo user"), cfg.DemoUser.DisplayName)
	}

	fmt.Fprintln(out)
}
