package adapter

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metrics for catalog access and bulk selection.
var (
	PageFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artworks_page_fetches_total",
		Help: "Total number of page fetches by result (ok, error)",
	}, []string{"result"})

	PageFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "artworks_page_fetch_duration_seconds",
		Help:    "Duration of page fetches including failures",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	})

	AccumulationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "artworks_accumulations_total",
		Help: "Total number of select-N runs by outcome (ok, insufficient, failed, cancelled)",
	}, []string{"outcome"})

	RecordsSelectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "artworks_records_selected_total",
		Help: "Total number of records added by select-N runs",
	})
)

// Fetch results
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Accumulation outcomes
const (
	OutcomeOK           = "ok"
	OutcomeInsufficient = "insufficient"
	OutcomeFailed       = "failed"
	OutcomeCancelled    = "cancelled"
)

// ObservePageFetch records one page fetch
func ObservePageFetch(start time.Time, err error) {
	PageFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		PageFetchesTotal.WithLabelValues(ResultError).Inc()
		return
	}
	PageFetchesTotal.WithLabelValues(ResultOK).Inc()
}

// MetricsServer exposes /metrics over HTTP
type MetricsServer struct {
	server *http.Server
	logger *slog.Logger
}

// StartMetricsServer listens on addr and serves the default Prometheus registry.
// Returns nil when addr is empty.
func StartMetricsServer(addr string, logger *slog.Logger) (*MetricsServer, error) {
	if addr == "" {
		return nil, nil
	}
	if logger == nil {
		logger = slog.Default()
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	ms := &MetricsServer{
		server: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}

	go func() {
		if err := ms.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "error", err)
		}
	}()

	logger.Info("metrics server listening", "addr", ln.Addr().String())
	return ms, nil
}

// Close shuts the server down
func (m *MetricsServer) Close() error {
	if m == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return m.server.Shutdown(ctx)
}
