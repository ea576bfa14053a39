package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// MetricsServer serves the Prometheus endpoint on its own listener so
// scraping never competes with the API.
type MetricsServer struct {
	logger *zap.Logger
	server *http.Server
}

// NewMetricsServer creates the metrics server.
func NewMetricsServer(logger *zap.Logger) *MetricsServer {
	return &MetricsServer{logger: logger}
}

// Start starts the metrics server on the given address.
func (m *MetricsServer) Start(addr string) error {
	router := http.NewServeMux()
	router.Handle("/metrics", promhttp.Handler())

	m.server = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	m.logger.Info("Starting metrics server", zap.String("addr", addr))
	return m.server.ListenAndServe()
}

// Stop stops the metrics server.
func (m *MetricsServer) Stop(ctx context.Context) error {
	if m.server == nil {
		return nil
	}
	return m.server.Shutdown(ctx)
}
