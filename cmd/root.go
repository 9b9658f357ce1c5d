package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ftahirops/gridmix/collector"
	"github.com/ftahirops/gridmix/config"
	"github.com/ftahirops/gridmix/logger"
	"github.com/ftahirops/gridmix/ui"
)

// Version is set at build time via ldflags.
var Version = "0.1.0"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath  string
	apiURL      string
	logLevel    string
	metricsAddr string
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "gridmix",
		Short:         "Energy mix dashboard and EV charging window finder",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboard(cmd, g)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&g.configPath, "config", "c", config.Path(), "configuration file")
	pf.StringVar(&g.apiURL, "api-url", "", "analytics API base URL (overrides api.url)")
	pf.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.Flags().StringVar(&g.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	root.AddCommand(
		newMixCmd(g),
		newWindowCmd(g),
		newChartCmd(g),
		newMockAPICmd(g),
	)
	return root
}

// loadConfig layers the config file, environment and the flags the user set.
func loadConfig(cmd *cobra.Command, g *globalFlags) (*config.Config, error) {
	overrides := map[string]any{}
	if cmd.Flags().Changed("api-url") {
		overrides["api.url"] = g.apiURL
	}
	if cmd.Flags().Changed("log-level") {
		overrides["log.level"] = g.logLevel
	}
	if f := cmd.Flags().Lookup("metrics-addr"); f != nil && f.Changed {
		overrides["metrics.addr"] = g.metricsAddr
	}
	cfg, err := config.Load(g.configPath, cmd.Flags().Changed("config"), overrides)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// cliEnv is what a one-shot command needs: config, a stderr logger and a client.
type cliEnv struct {
	cfg    *config.Config
	log    zerolog.Logger
	client *collector.Client
}

func setupCLI(cmd *cobra.Command, g *globalFlags) (*cliEnv, error) {
	cfg, err := loadConfig(cmd, g)
	if err != nil {
		return nil, err
	}
	root, _, err := logger.Setup(logger.Options{
		Level:   cfg.Log.Level,
		Console: true,
		Out:     cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	client := collector.NewClient(cfg.BaseURL(),
		collector.WithLogger(logger.New(root, "api")),
		collector.WithLocation(loc),
		collector.WithTimeout(cfg.API.Timeout))
	return &cliEnv{cfg: cfg, log: root, client: client}, nil
}

func runDashboard(cmd *cobra.Command, g *globalFlags) error {
	cfg, err := loadConfig(cmd, g)
	if err != nil {
		return err
	}

	// The dashboard owns the terminal, so logs always go to a file.
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = logger.DefaultFile()
	}
	root, closer, err := logger.Setup(logger.Options{Level: cfg.Log.Level, File: logFile})
	if err != nil {
		return err
	}
	defer closer.Close()
	log := logger.New(root, "main")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	metrics, err := collector.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	if addr := cfg.Metrics.Addr; addr != "" {
		go func() {
			if err := collector.ServeMetrics(ctx, addr, reg); err != nil {
				log.Error().Err(err).Str("addr", addr).Msg("metrics server stopped")
			}
		}()
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	client := collector.NewClient(cfg.BaseURL(),
		collector.WithLogger(logger.New(root, "api")),
		collector.WithMetrics(metrics),
		collector.WithLocation(loc),
		collector.WithTimeout(cfg.API.Timeout))
	log.Info().Str("api", client.BaseURL()).Str("version", Version).Msg("dashboard starting")

	model := ui.NewModel(ctx, client, ui.Options{
		Hours:    cfg.UI.DefaultDuration,
		Location: loc,
		Logger:   logger.New(root, "ui"),
	})
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && errors.Is(ctx.Err(), context.Canceled) {
			return nil
		}
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
