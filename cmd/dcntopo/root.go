package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dcntopo/config"
	"github.com/katalvlaran/dcntopo/logging"
	"github.com/katalvlaran/dcntopo/metrics"
)

var version = "0.1.0"

// app carries the state resolved by the root command for its subcommands.
type app struct {
	cfgPath     string
	logLevel    string
	logFormat   string
	metricsAddr string

	cfg *config.Config
	log zerolog.Logger
	reg *metrics.Registry
	srv *http.Server
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "dcntopo",
		Short: "Data-center topology synthesis and path-diversity analysis",
		Long: `dcntopo builds randomized (Jellyfish) and layered (fat-tree) data-center
topologies and measures them:
  - shortest and k-shortest paths between servers
  - server-pair path length distributions over many samples
  - how evenly k-shortest and ECMP routing load the links`,
		Version:            version,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.shutdown,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "experiment config file (.yaml, .toml or .json)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, disabled")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: console or json")
	pf.StringVar(&a.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on host:port")

	root.AddCommand(
		newGenerateCmd(a),
		newPathsCmd(a),
		newLengthsCmd(a),
		newLinksCmd(a),
	)

	return root
}

// setup loads the configuration, applies the global flag overrides and
// installs the logger and metrics registry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.cfgPath != "" {
		var err error
		if cfg, err = config.Load(a.cfgPath); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if a.metricsAddr != "" {
		cfg.Metrics.Addr = a.metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log.With().Str("cmd", cmd.Name()).Logger()
	a.reg = metrics.NewRegistry()

	if cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", a.reg.Handler())
		a.srv = &http.Server{Addr: cfg.Metrics.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.log.Error().Err(err).Str("addr", cfg.Metrics.Addr).Msg("metrics server failed")
			}
		}()
		a.log.Info().Str("addr", cfg.Metrics.Addr).Msg("serving metrics")
	}

	return nil
}

func (a *app) shutdown(*cobra.Command, []string) error {
	if a.srv == nil {
		return nil
	}

	return a.srv.Close()
}
