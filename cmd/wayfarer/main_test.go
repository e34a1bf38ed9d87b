package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wayfarer/core/config"
	"github.com/dmitrymomot/wayfarer/core/logger"
	"github.com/dmitrymomot/wayfarer/core/router"
	"github.com/dmitrymomot/wayfarer/core/routetable"
	"github.com/dmitrymomot/wayfarer/core/server"
)

// Tests here share the cached CLI config, so none run in parallel.

const tableYAML = `
default: /404
routes:
  - pattern: /users/:id
    body: "user {{id}}"
  - pattern: /404
    status: 404
    body: not found
mounts:
  - at: /api
    table:
      routes:
        - pattern: /
          body: api
        - pattern: /items/:item
          body: "item {{item}}"
`

func writeTable(t *testing.T, doc string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	config.Reset()
	t.Cleanup(config.Reset)

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRoutesCommand(t *testing.T) {
	path := writeTable(t, tableYAML)

	out, err := execute(t, "routes", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/404", "/api", "/api/items/:item", "/users/:id"},
		strings.Split(strings.TrimSpace(out), "\n"))
}

func TestRoutesCommandTableFromEnvironment(t *testing.T) {
	path := writeTable(t, "routes:\n  - pattern: /only\n")
	t.Setenv("WAYFARER_TABLE", path)

	out, err := execute(t, "routes")
	require.NoError(t, err)
	assert.Equal(t, "/only\n", out)
}

func TestRoutesCommandMissingTable(t *testing.T) {
	_, err := execute(t, "routes", "-f", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRoutesCommandInvalidTable(t *testing.T) {
	path := writeTable(t, "routes:\n  - status: 200\n")

	_, err := execute(t, "routes", "-f", path)
	assert.ErrorIs(t, err, routetable.ErrInvalidTable)
}

func TestMatchCommand(t *testing.T) {
	path := writeTable(t, tableYAML)

	tests := []struct {
		name   string
		path   string
		route  string
		status int
		body   string
		params router.Params
	}{
		{"param", "/users/ann%20lee", "/users/:id", 200, "user ann lee", router.Params{"id": "ann lee"}},
		{"mounted", "/api/items/7", "/api/items/:item", 200, "item 7", router.Params{"item": "7"}},
		{"mounted index", "/api", "/api", 200, "api", router.Params{}},
		{"default", "/nowhere", "/404", 404, "not found", router.Params{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "match", "-f", path, tt.path)
			require.NoError(t, err)

			var resp routetable.Response
			require.NoError(t, json.Unmarshal([]byte(out), &resp))
			assert.Equal(t, tt.route, resp.Route)
			assert.Equal(t, tt.status, resp.Status)
			assert.Equal(t, tt.body, resp.Body)
			assert.Equal(t, tt.params, resp.Params)
		})
	}
}

func TestMatchCommandMissingPath(t *testing.T) {
	path := writeTable(t, tableYAML)

	_, err := execute(t, "match", "-f", path)
	assert.ErrorIs(t, err, router.ErrMissingArgument)
}

func TestMatchCommandNotFound(t *testing.T) {
	path := writeTable(t, "routes:\n  - pattern: /a\n")

	_, err := execute(t, "match", "-f", path, "/b")
	require.ErrorIs(t, err, router.ErrRouteNotFound)

	var nf *router.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "/b", nf.Path)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)

	out, err = execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:    dev")
	assert.Contains(t, out, "Go version:")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "version", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `log level "loud"`)
}

func TestServeHandler(t *testing.T) {
	tbl, err := routetable.Parse([]byte(tableYAML))
	require.NoError(t, err)
	r, err := tbl.Build()
	require.NoError(t, err)

	a := &app{
		cfg:    cliConfig{MetricsPath: "/metrics"},
		logger: logger.Nop(),
	}
	h := a.handler(r, prometheus.NewRegistry())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/5", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user 5", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `wayfarer_dispatch_total{route="/users/:id",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestServeHandlerWithoutMetrics(t *testing.T) {
	tbl, err := routetable.Parse([]byte(tableYAML))
	require.NoError(t, err)
	r, err := tbl.Build()
	require.NoError(t, err)

	a := &app{cfg: cliConfig{}, logger: logger.Nop()}
	h := a.handler(r, prometheus.NewRegistry())

	// without a metrics endpoint the path falls through to the table default
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", rec.Body.String())
}

func TestServeProbes(t *testing.T) {
	path := writeTable(t, tableYAML)
	tbl, err := routetable.Load(path)
	require.NoError(t, err)
	r, err := tbl.Build()
	require.NoError(t, err)

	a := &app{
		cfg: cliConfig{
			Table:         path,
			MetricsPath:   "/metrics",
			LivenessPath:  "/health/live",
			ReadinessPath: "/health/ready",
		},
		logger: logger.Nop(),
	}
	a.registerProbes(r)
	h := a.handler(r, prometheus.NewRegistry())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "READY", rec.Body.String())

	require.NoError(t, os.Remove(path))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `wayfarer_dispatch_total{route="/health/live",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), `wayfarer_dispatch_total{route="/health/ready",status="503"} 1`)
}

func TestServeLifecycle(t *testing.T) {
	a := &app{cfg: cliConfig{MetricsPath: "/metrics"}, logger: logger.Nop()}

	tbl, err := routetable.Parse([]byte(tableYAML))
	require.NoError(t, err)
	r, err := tbl.Build()
	require.NoError(t, err)

	srv := server.New("127.0.0.1:0", server.WithShutdownTimeout(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- a.serve(ctx, srv, a.handler(r, prometheus.NewRegistry())) }()

	var addr string
	require.Eventually(t, func() bool {
		addr = srv.Addr()
		_, port, err := net.SplitHostPort(addr)
		return err == nil && port != "0"
	}, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + addr + "/api/items/3") //nolint:noctx
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "item 3", string(body))

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("serve did not return after cancellation")
	}
}
