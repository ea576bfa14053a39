package httpserver

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"portfolio-cache/internal/apperr"
	"portfolio-cache/internal/chains"
	"portfolio-cache/internal/models"
)

// Notification bodies are small; anything larger is rejected.
const maxWebhookBody = 1 << 20

const signatureHeader = "X-Signature"

var validate = validator.New()

// validAddress checks the address format. EVM chains get the strict
// hex-address check; other chains only require a non-empty value.
func validAddress(chain, address string) bool {
	if address == "" {
		return false
	}
	if chains.EVM(chain) {
		return validate.Var(address, "eth_addr") == nil
	}
	return true
}

// handleGetPortfolio handles balance reads.
func (s *Server) handleGetPortfolio(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chain := chains.Normalize(vars["chain"])
	address := vars["address"]
	provider := r.URL.Query().Get("provider")

	if !validAddress(chain, address) {
		s.writeErrorResponse(w, apperr.CodeInvalidAddress, "invalid address: "+address, http.StatusBadRequest)
		return
	}

	result, err := s.portfolio.GetPortfolio(r.Context(), chain, address, provider)
	if err != nil {
		s.logger.Warn("Portfolio read failed",
			zap.String("chain", chain),
			zap.String("address", address),
			zap.Error(err))
		s.writeAppError(w, err)
		return
	}

	s.writeResponse(w, result)
}

// handleInvalidate handles explicit cache invalidation for an address.
func (s *Server) handleInvalidate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chain := chains.Normalize(vars["chain"])
	address := vars["address"]

	if !validAddress(chain, address) {
		s.writeErrorResponse(w, apperr.CodeInvalidAddress, "invalid address: "+address, http.StatusBadRequest)
		return
	}

	removed, err := s.portfolio.InvalidateAddressCache(r.Context(), chain, address)
	if err != nil {
		s.writeAppError(w, err)
		return
	}

	s.writeResponse(w, &InvalidateResponse{Success: true, RemovedKeys: removed})
}

// handleWebhook handles inbound activity notifications. The raw body is read
// before parsing because the signature covers the exact bytes on the wire.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chain := chains.Normalize(vars["chain"])

	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		s.writeErrorResponse(w, "", "failed to read body", http.StatusBadRequest)
		return
	}
	defer func() { _ = r.Body.Close() }()

	if !s.webhooks.VerifySignature(r.Context(), chain, body, r.Header.Get(signatureHeader)) {
		s.logger.Warn("Rejected webhook notification", zap.String("chain", chain))
		s.writeErrorResponse(w, "", "invalid signature", http.StatusUnauthorized)
		return
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		s.writeErrorResponse(w, "", "invalid payload", http.StatusBadRequest)
		return
	}

	addresses := payload.addresses()
	if len(addresses) == 0 {
		s.writeErrorResponse(w, "", "no addresses in payload", http.StatusBadRequest)
		return
	}

	chainID, _ := chains.ID(chain)
	for _, address := range addresses {
		s.bus.Publish(r.Context(), models.TopicAddressActivity, &models.AddressActivityEvent{
			Chain:   chain,
			ChainID: chainID,
			Address: address,
		})
	}

	s.logger.Debug("Webhook notification accepted",
		zap.String("chain", chain),
		zap.Int("addresses", len(addresses)))
	s.writeResponse(w, &WebhookResponse{Success: true, Accepted: len(addresses)})
}
