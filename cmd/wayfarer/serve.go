package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/wayfarer/core/config"
	"github.com/dmitrymomot/wayfarer/core/health"
	"github.com/dmitrymomot/wayfarer/core/logger"
	"github.com/dmitrymomot/wayfarer/core/router"
	"github.com/dmitrymomot/wayfarer/core/routetable"
	"github.com/dmitrymomot/wayfarer/core/server"
)

func serveCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a table over HTTP",
		Long: `Serve a route table over HTTP until SIGINT or SIGTERM.

Server settings come from the environment (SERVER_ADDR, SERVER_*_TIMEOUT,
SERVER_TLS_CERT_FILE, SERVER_TLS_KEY_FILE). Prometheus metrics are exposed
on METRICS_PATH, "/metrics" by default. Health probes answer on
HEALTH_LIVE_PATH and HEALTH_READY_PATH.

Examples:
  wayfarer serve -f routes.yaml
  SERVER_ADDR=:9000 wayfarer serve --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var srvCfg server.Config
			if err := config.Load(&srvCfg); err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				srvCfg.Addr = addr
			}

			r, err := a.loadRouter()
			if err != nil {
				return err
			}
			a.registerProbes(r)

			srv, err := server.NewFromConfig(srvCfg, server.WithLogger(a.logger))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.serve(ctx, srv, a.handler(r, prometheus.NewRegistry()))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default $SERVER_ADDR or :8080)")

	return cmd
}

// handler routes the metrics path to the registry and everything else to
// the route table. http.ServeMux is avoided since it cleans paths.
func (a *app) handler(r *router.Router[routetable.Response], reg *prometheus.Registry) http.Handler {
	opts := []server.HandlerOption{server.WithHandlerLogger(a.logger)}
	if a.cfg.TrustRequestID {
		opts = append(opts, server.WithTrustedRequestID())
	}

	if a.cfg.MetricsPath == "" {
		return server.NewHandler(r, opts...)
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	opts = append(opts, server.WithMetrics(server.NewMetrics(server.WithRegistry(reg))))

	dispatch := server.NewHandler(r, opts...)
	metrics := promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path == a.cfg.MetricsPath {
			metrics.ServeHTTP(w, req)
			return
		}
		dispatch.ServeHTTP(w, req)
	})
}

// registerProbes adds liveness and readiness routes. Readiness fails once
// the table file is no longer readable.
func (a *app) registerProbes(r *router.Router[routetable.Response]) {
	if a.cfg.LivenessPath != "" {
		r.Handle(a.cfg.LivenessPath, health.Liveness())
	}
	if a.cfg.ReadinessPath != "" {
		table := a.cfg.Table
		r.Handle(a.cfg.ReadinessPath, health.Readiness(a.logger, func(context.Context) error {
			_, err := os.Stat(table)
			return err
		}))
	}
}

func (a *app) serve(ctx context.Context, srv *server.Server, h http.Handler) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(srv.Run(ctx, h))
	g.Go(func() error {
		<-ctx.Done()
		a.logger.Info("shutdown requested", logger.Component("cli"))
		return nil
	})

	return g.Wait()
}
