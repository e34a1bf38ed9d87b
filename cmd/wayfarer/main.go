package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/wayfarer/core/config"
	"github.com/dmitrymomot/wayfarer/core/logger"
	"github.com/dmitrymomot/wayfarer/core/router"
	"github.com/dmitrymomot/wayfarer/core/routetable"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cliConfig is read from the environment; flags override it.
type cliConfig struct {
	Table          string `env:"WAYFARER_TABLE" envDefault:"routes.yaml"`
	MetricsPath    string `env:"METRICS_PATH" envDefault:"/metrics"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON        bool   `env:"LOG_JSON" envDefault:"false"`
	TrustRequestID bool   `env:"TRUST_REQUEST_ID" envDefault:"false"`
	LivenessPath   string `env:"HEALTH_LIVE_PATH" envDefault:"/health/live"`
	ReadinessPath  string `env:"HEALTH_READY_PATH" envDefault:"/health/ready"`
}

// app carries state shared by subcommands.
type app struct {
	cfg    cliConfig
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logger.Nop()}

	var (
		table    string
		logLevel string
		logJSON  bool
	)

	rootCmd := &cobra.Command{
		Use:   "wayfarer",
		Short: "Trie-based path router",
		Long: `Wayfarer compiles YAML route tables into a segment trie router.

Use it to list the routes of a table, to check which route a path
resolves to, or to serve a table over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Load(&a.cfg); err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("file") {
				a.cfg.Table = table
			}
			if flags.Changed("log-level") {
				a.cfg.LogLevel = logLevel
			}
			if flags.Changed("log-json") {
				a.cfg.LogJSON = logJSON
			}

			l, err := newLogger(a.cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.logger = l
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&table, "file", "f", "", "Route table file (default $WAYFARER_TABLE or routes.yaml)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default $LOG_LEVEL or info)")
	flags.BoolVar(&logJSON, "log-json", false, "Log in JSON format")

	rootCmd.AddCommand(
		routesCmd(a),
		matchCmd(a),
		serveCmd(a),
		versionCmd(),
	)

	return rootCmd
}

func newLogger(cfg cliConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}

	opts := []logger.Option{
		logger.WithLevel(level),
		logger.WithOutput(w),
		logger.WithAttr(logger.Version(version)),
	}
	if cfg.LogJSON {
		opts = append(opts, logger.WithJSONFormatter())
	}
	return logger.New(opts...), nil
}

// loadRouter reads the configured table and compiles it.
func (a *app) loadRouter() (*router.Router[routetable.Response], error) {
	tbl, err := routetable.Load(a.cfg.Table)
	if err != nil {
		return nil, err
	}

	r, err := tbl.Build(router.WithLogger[routetable.Response](a.logger))
	if err != nil {
		return nil, err
	}

	a.logger.Debug("route table loaded",
		logger.Component("cli"),
		slog.String("table", a.cfg.Table),
		logger.Count("routes", len(r.Routes())),
	)
	return r, nil
}
