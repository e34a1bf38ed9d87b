// Package server exposes a route table router over HTTP and runs it behind a
// graceful http.Server.
//
// # Dispatching Requests
//
// Handler adapts a *router.Router[routetable.Response] to http.Handler. The
// escaped request path is dispatched as is, so percent-encoded segments are
// decoded by the router and a %2F stays inside its segment:
//
//	tbl, _ := routetable.Load("routes.yaml")
//	r, _ := tbl.Build()
//
//	h := server.NewHandler(r,
//		server.WithHandlerLogger(log),
//		server.WithMetrics(server.NewMetrics()),
//		server.WithTrustedRequestID(),
//	)
//
// Every response carries an X-Request-ID header. A matched route writes its
// status, headers and rendered body. A path no route resolves answers 404.
//
// Each request runs inside an OpenTelemetry span named "wayfarer.dispatch"
// created from the global tracer provider unless WithTracer is given. Spans
// carry the method, escaped path, request id, matched route and status code.
//
// # Metrics
//
// NewMetrics registers three Prometheus collectors:
//
//   - wayfarer_dispatch_total: counter by route and status
//   - wayfarer_dispatch_duration_seconds: histogram by route
//   - wayfarer_route_not_found_total: counter of unmatched paths
//
// Unmatched requests use the route label "unmatched".
//
// # Running the Server
//
//	srv := server.New(":8080",
//		server.WithShutdownTimeout(10*time.Second),
//		server.WithLogger(log),
//	)
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, h))
//	if err := g.Wait(); err != nil {
//		return err
//	}
//
// Run returns nil when ctx is canceled and the server shut down cleanly.
// NewFromConfig builds a server from an env-tagged Config:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//
// TLS is enabled when both SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE are
// set, or with WithTLS.
//
// # Server Defaults
//
//   - ReadTimeout: 15 seconds
//   - WriteTimeout: 15 seconds
//   - IdleTimeout: 60 seconds
//   - MaxHeaderBytes: 1MB
//   - Graceful shutdown timeout: 30 seconds
//   - Logger: discards everything
//
// The Server type is safe for concurrent use.
package server
