// Package httpserver exposes the portfolio API: balance reads, explicit
// invalidation, the webhook notification endpoint and health.
package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"portfolio-cache/internal/apperr"
)

// Server is the portfolio HTTP server.
type Server struct {
	portfolio PortfolioAPI
	webhooks  WebhookAPI
	bus       Publisher
	logger    *zap.Logger
	server    *http.Server
}

// NewServer creates the portfolio HTTP server.
func NewServer(portfolio PortfolioAPI, webhooks WebhookAPI, bus Publisher, logger *zap.Logger) *Server {
	return &Server{
		portfolio: portfolio,
		webhooks:  webhooks,
		bus:       bus,
		logger:    logger,
	}
}

// Start starts the HTTP server on the given address.
func (s *Server) Start(addr string) error {
	router := s.createRouter()

	s.server = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting portfolio HTTP server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping portfolio HTTP server")
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// createRouter creates and configures the HTTP router.
func (s *Server) createRouter() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/portfolio/{chain}/{address}", s.handleGetPortfolio).Methods("GET")
	router.HandleFunc("/portfolio/{chain}/{address}", s.handleInvalidate).Methods("DELETE")

	router.HandleFunc("/webhooks/{chain}", s.handleWebhook).Methods("POST")

	router.HandleFunc("/health", s.handleHealth).Methods("GET")

	return router
}

// handleHealth handles health check requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, map[string]interface{}{
		"status": "healthy",
		"time":   time.Now().UTC(),
	})
}

// writeResponse writes a JSON response.
func (s *Server) writeResponse(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write response", zap.Error(err))
	}
}

// writeErrorResponse writes an error response with a stable code.
func (s *Server) writeErrorResponse(w http.ResponseWriter, code apperr.Code, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	response := ErrorResponse{
		Success: false,
		Code:    string(code),
		Error:   message,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.Error("Failed to write error response", zap.Error(err))
	}
}

// writeAppError maps a typed application error to an HTTP status.
func (s *Server) writeAppError(w http.ResponseWriter, err error) {
	code := apperr.CodeOf(err)
	status := http.StatusInternalServerError
	switch code {
	case apperr.CodeChainNotSupported, apperr.CodeNotFound:
		status = http.StatusNotFound
	case apperr.CodeProviderNotSupported, apperr.CodeInvalidAddress:
		status = http.StatusBadRequest
	case apperr.CodeBalanceFetchFailed:
		status = http.StatusBadGateway
	case apperr.CodeCacheWriteFailed:
		status = http.StatusInternalServerError
	}
	s.writeErrorResponse(w, code, err.Error(), status)
}
