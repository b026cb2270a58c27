package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-player-compare/internal/config"
	"github.com/preston-bernstein/nba-player-compare/internal/metrics"
	"github.com/preston-bernstein/nba-player-compare/internal/testutil"
)

type stubHTTPServer struct {
	addr          string
	handler       http.Handler
	listenCalls   int
	shutdownCalls int
	listenErr     error
	shutdownErr   error
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalls++
	return s.listenErr
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.shutdownCalls++
	return s.shutdownErr
}

func (s *stubHTTPServer) Addr() string          { return s.addr }
func (s *stubHTTPServer) Handler() http.Handler { return s.handler }

type blockingHTTPServer struct {
	shutdownCalls int
	unblock       chan struct{}
}

func (s *blockingHTTPServer) ListenAndServe() error { return nil }

func (s *blockingHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdownCalls++
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.unblock:
		return nil
	}
}

func (s *blockingHTTPServer) Addr() string          { return ":0" }
func (s *blockingHTTPServer) Handler() http.Handler { return http.NewServeMux() }

func fixtureConfig() config.Config {
	return config.Config{
		Port:     "0",
		Provider: "fixture",
		Metrics:  config.MetricsConfig{Enabled: false},
	}
}

func TestServerServesHealthAndCompare(t *testing.T) {
	rec := metrics.NewRecorder()
	srv := newServerWithProvider(fixtureConfig(), nil, testutil.SampleProvider(), rec)
	router := srv.Handler()

	rr := testutil.Serve(router, http.MethodGet, "/api/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.ServeJSON(router, http.MethodPost, "/api/compare",
		`{"player1":"LeBron James","player2":"Kevin Durant","season":2020}`)
	testutil.AssertStatus(t, rr, http.StatusOK)

	if got := rec.ProviderCalls("fixture"); got != 4 {
		t.Fatalf("expected two directory and two career calls, got %d", got)
	}
}

func TestServerLogsUnderlyingProvider(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	newServerWithProvider(fixtureConfig(), logger, testutil.SampleProvider(), metrics.NewRecorder())

	out := buf.String()
	if !strings.Contains(out, "stats provider ready") || !strings.Contains(out, "*teststubs.StubProvider") {
		t.Fatalf("expected underlying provider logged, got %s", out)
	}
}

func TestServerWithFixtureProviderReportsMissingSeason(t *testing.T) {
	srv := New(fixtureConfig(), nil)

	rr := testutil.ServeJSON(srv.Handler(), http.MethodPost, "/api/compare",
		`{"player1":"LeBron James","player2":"Kevin Durant","season":2020}`)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	if !strings.Contains(rr.Body.String(), "Kevin Durant") {
		t.Fatalf("expected Durant named in 404, got %s", rr.Body.String())
	}
}

func TestNewConstructsServer(t *testing.T) {
	srv := New(fixtureConfig(), nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
	if srv.metrics == nil {
		t.Fatalf("expected recorder even when metrics disabled")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server when disabled")
	}
}

func TestBuildMetricsSetupFailureFallsBack(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	rec, srv, stop := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true}}, nil, nil)
	if rec == nil || srv != nil || stop != nil {
		t.Fatalf("expected fallback recorder only, got %v %v", rec, srv)
	}
}

func TestBuildMetricsSuccessMountsHandler(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
		return metrics.NewRecorder(), h, func(context.Context) error { return nil }, nil
	}

	rec, srv, stop := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true, Port: "9999"}}, nil, nil)
	if rec == nil || srv == nil || stop == nil {
		t.Fatalf("expected recorder, server, and shutdown to be set on success")
	}
	if srv.Addr() != ":9999" {
		t.Fatalf("unexpected metrics addr %s", srv.Addr())
	}
	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/metrics", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestBuildMetricsUsesInjectedRecorder(t *testing.T) {
	rec, _ := testutil.NewRecorderWithShutdown()
	got, srv, stop := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true}}, nil, rec)
	if got != rec || srv != nil || stop != nil {
		t.Fatalf("expected injected recorder to short-circuit setup")
	}
}

func TestGracefulShutdownCallsShutdown(t *testing.T) {
	httpSrv := &stubHTTPServer{}
	metricsSrv := &stubHTTPServer{shutdownErr: errors.New("metrics busy")}
	stopCalls := 0

	srv := newServerWithDeps(config.Config{}, nil, httpSrv)
	srv.metricsServer = metricsSrv
	srv.metricsStop = func(context.Context) error {
		stopCalls++
		return nil
	}
	srv.gracefulShutdown()

	if httpSrv.shutdownCalls != 1 || metricsSrv.shutdownCalls != 1 || stopCalls != 1 {
		t.Fatalf("expected every component shut down once, got http=%d metrics=%d stop=%d",
			httpSrv.shutdownCalls, metricsSrv.shutdownCalls, stopCalls)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	blocking := &blockingHTTPServer{unblock: make(chan struct{})}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	logger, buf := testutil.NewBufferLogger()
	srv := newServerWithDeps(config.Config{}, logger, blocking)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.shutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.shutdownCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
	if !strings.Contains(buf.String(), "graceful shutdown failed") {
		t.Fatalf("expected shutdown failure logged, got %q", buf.String())
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	httpSrv := &stubHTTPServer{addr: ":0", listenErr: errors.New("listen failure")}
	srv := newServerWithDeps(config.Config{}, nil, httpSrv)

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}
	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpSrv := &stubHTTPServer{addr: ":0", listenErr: http.ErrServerClosed}
	srv := newServerWithDeps(config.Config{}, nil, httpSrv)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.shutdownCalls)
	}
}
