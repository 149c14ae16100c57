package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	connectionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "wow_connections_total",
			Help: "Total number of accepted TCP connections",
		},
	)
	activeConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "wow_active_connections",
			Help: "Connections currently being handled",
		},
	)
	solutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wow_solutions_total",
			Help: "Submitted solutions by verdict",
		},
		[]string{"state"},
	)
	connectionErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wow_connection_errors_total",
			Help: "Connections aborted by I/O or decode failures, by protocol stage",
		},
		[]string{"stage"},
	)
	verifyDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wow_verify_duration_seconds",
			Help:    "Time spent validating a solution",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 8),
		},
	)
)

func init() {
	prometheus.MustRegister(connectionsTotal)
	prometheus.MustRegister(activeConnections)
	prometheus.MustRegister(solutionsTotal)
	prometheus.MustRegister(connectionErrors)
	prometheus.MustRegister(verifyDuration)
}

// ConnOpened returns a func to call when the connection is done.
func ConnOpened() func() {
	connectionsTotal.Inc()
	activeConnections.Inc()
	return activeConnections.Dec
}

func Solution(state string, took time.Duration) {
	solutionsTotal.WithLabelValues(state).Inc()
	verifyDuration.Observe(took.Seconds())
}

func ConnError(stage string) {
	connectionErrors.WithLabelValues(stage).Inc()
}

func Handler() http.Handler { return promhttp.Handler() }

// Serve exposes /metrics on addr until ctx is done.
func Serve(ctx context.Context, log *slog.Logger, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
	}()

	log.Info("metrics listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
