package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrymomot/wayfarer/core/logger"
	"github.com/dmitrymomot/wayfarer/core/router"
	"github.com/dmitrymomot/wayfarer/core/routetable"
)

// Handler serves HTTP requests by dispatching the escaped request path
// through a route table router.
type Handler struct {
	router         *router.Router[routetable.Response]
	logger         *slog.Logger
	tracer         trace.Tracer
	metrics        *Metrics
	trustRequestID bool
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithHandlerLogger sets the request logger. Nil is ignored.
func WithHandlerLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithTracer sets the tracer used for dispatch spans. Defaults to the
// global tracer provider.
func WithTracer(t trace.Tracer) HandlerOption {
	return func(h *Handler) {
		if t != nil {
			h.tracer = t
		}
	}
}

// WithMetrics records dispatch metrics. Metrics are off by default.
func WithMetrics(m *Metrics) HandlerOption {
	return func(h *Handler) {
		h.metrics = m
	}
}

// WithTrustedRequestID reuses an incoming X-Request-ID header instead of
// generating a fresh id.
func WithTrustedRequestID() HandlerOption {
	return func(h *Handler) {
		h.trustRequestID = true
	}
}

// NewHandler adapts r to http.Handler. It panics if r is nil.
func NewHandler(r *router.Router[routetable.Response], opts ...HandlerOption) *Handler {
	if r == nil {
		panic(fmt.Errorf("%w: %w", router.ErrInvalidArgument, ErrNilRouter))
	}

	h := &Handler{
		router: r,
		logger: logger.Nop(),
		tracer: otel.Tracer(DefaultTracerName),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP dispatches the request path. Handlers receive the *http.Request
// as their first argument. A response without a Route is reported under the
// matched pattern.
func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	id := h.requestID(req)
	w.Header().Set(HeaderRequestID, id)

	// the escaped form keeps %2F inside a segment; the router decodes
	path := req.URL.EscapedPath()

	ctx, span := h.tracer.Start(req.Context(), "wayfarer.dispatch",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.path", path),
			attribute.String("wayfarer.request_id", id),
		),
	)
	defer span.End()

	m, err := h.router.Match(path)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, router.ErrRouteNotFound) {
			status = http.StatusNotFound
		}

		span.SetAttributes(attribute.Int("http.response.status_code", status))
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, http.StatusText(status), status)

		h.metrics.observe(unmatchedRoute, status, time.Since(start))
		h.logger.WarnContext(ctx, "dispatch failed",
			logger.Component("server"),
			logger.RequestID(id),
			logger.Method(req.Method),
			logger.Path(path),
			logger.StatusCode(status),
			logger.Error(err),
		)
		return
	}

	resp := m.Call(req.WithContext(ctx))
	if resp.Route == "" {
		resp.Route = m.Route
	}
	if resp.Params == nil {
		resp.Params = m.Params
	}

	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}

	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.WriteHeader(status)
	if _, err := w.Write([]byte(resp.Body)); err != nil {
		h.logger.DebugContext(ctx, "write response body",
			logger.Component("server"),
			logger.RequestID(id),
			logger.Error(err),
		)
	}

	span.SetAttributes(
		attribute.String("http.route", resp.Route),
		attribute.Int("http.response.status_code", status),
	)
	if status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(status))
	}

	h.metrics.observe(resp.Route, status, time.Since(start))
	h.logger.DebugContext(ctx, "request dispatched",
		logger.Component("server"),
		logger.RequestID(id),
		logger.Method(req.Method),
		logger.Path(path),
		logger.Pattern(resp.Route),
		logger.Params(resp.Params),
		logger.StatusCode(status),
		logger.Elapsed(start),
	)
}

func (h *Handler) requestID(req *http.Request) string {
	if h.trustRequestID {
		if id := req.Header.Get(HeaderRequestID); id != "" {
			return id
		}
	}
	return uuid.NewString()
}
