package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio-cache/internal/apperr"
	"portfolio-cache/internal/models"
	"portfolio-cache/internal/portfolio"
)

const testAddress = "0x1234567890abcdef1234567890abcdef12345678"

type fakePortfolioAPI struct {
	result      *portfolio.Result
	err         error
	removed     int
	gotChain    string
	gotAddress  string
	gotProvider string
}

func (f *fakePortfolioAPI) GetPortfolio(ctx context.Context, chain, address, provider string) (*portfolio.Result, error) {
	f.gotChain, f.gotAddress, f.gotProvider = chain, address, provider
	return f.result, f.err
}

func (f *fakePortfolioAPI) InvalidateAddressCache(ctx context.Context, chain, address string) (int, error) {
	f.gotChain, f.gotAddress = chain, address
	return f.removed, f.err
}

type fakeWebhookAPI struct {
	valid bool
}

func (f *fakeWebhookAPI) VerifySignature(ctx context.Context, chain string, body []byte, header string) bool {
	return f.valid
}

type capturingPublisher struct {
	topics   []string
	payloads []any
}

func (c *capturingPublisher) Publish(ctx context.Context, topic string, payload any) {
	c.topics = append(c.topics, topic)
	c.payloads = append(c.payloads, payload)
}

func newTestServer(api *fakePortfolioAPI, hooks *fakeWebhookAPI, pub *capturingPublisher) *Server {
	if api == nil {
		api = &fakePortfolioAPI{}
	}
	if hooks == nil {
		hooks = &fakeWebhookAPI{valid: true}
	}
	if pub == nil {
		pub = &capturingPublisher{}
	}
	return NewServer(api, hooks, pub, zap.NewNop())
}

func TestHandleGetPortfolio(t *testing.T) {
	api := &fakePortfolioAPI{
		result: &portfolio.Result{
			Chain:    "ethereum",
			ChainID:  1,
			Address:  testAddress,
			Source:   portfolio.SourceFast,
			Balances: &models.Balances{Native: models.NativeBalance{Symbol: "ETH"}},
		},
	}
	server := newTestServer(api, nil, nil)

	req := httptest.NewRequest("GET", "/portfolio/eth/"+testAddress+"?provider=moralis", nil)
	w := httptest.NewRecorder()
	server.createRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ethereum", api.gotChain)
	assert.Equal(t, testAddress, api.gotAddress)
	assert.Equal(t, "moralis", api.gotProvider)

	var result portfolio.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, portfolio.SourceFast, result.Source)
	assert.Equal(t, "ETH", result.Balances.Native.Symbol)
}

func TestHandleGetPortfolioInvalidAddress(t *testing.T) {
	server := newTestServer(nil, nil, nil)

	req := httptest.NewRequest("GET", "/portfolio/ethereum/not-an-address", nil)
	w := httptest.NewRecorder()
	server.createRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(apperr.CodeInvalidAddress), resp.Code)
}

func TestHandleGetPortfolioNonEVMAddressAccepted(t *testing.T) {
	api := &fakePortfolioAPI{result: &portfolio.Result{Chain: "solana", Source: portfolio.SourceLive}}
	server := newTestServer(api, nil, nil)

	req := httptest.NewRequest("GET", "/portfolio/solana/So1anaAddr111111111111111111111111111111111", nil)
	w := httptest.NewRecorder()
	server.createRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleGetPortfolioErrorMapping(t *testing.T) {
	tests := []struct {
		code   apperr.Code
		status int
	}{
		{apperr.CodeChainNotSupported, http.StatusNotFound},
		{apperr.CodeProviderNotSupported, http.StatusBadRequest},
		{apperr.CodeBalanceFetchFailed, http.StatusBadGateway},
		{apperr.CodeCacheWriteFailed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			api := &fakePortfolioAPI{err: apperr.New(tt.code, "nope")}
			server := newTestServer(api, nil, nil)

			req := httptest.NewRequest("GET", "/portfolio/ethereum/"+testAddress, nil)
			w := httptest.NewRecorder()
			server.createRouter().ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, string(tt.code), resp.Code)
		})
	}
}

func TestHandleInvalidate(t *testing.T) {
	api := &fakePortfolioAPI{removed: 4}
	server := newTestServer(api, nil, nil)

	req := httptest.NewRequest("DELETE", "/portfolio/ethereum/"+testAddress, nil)
	w := httptest.NewRecorder()
	server.createRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp InvalidateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 4, resp.RemovedKeys)
}

func TestHandleWebhook(t *testing.T) {
	pub := &capturingPublisher{}
	server := newTestServer(nil, &fakeWebhookAPI{valid: true}, pub)

	body := []byte(`{"addresses":["0x1","0x2"]}`)
	req := httptest.NewRequest("POST", "/webhooks/ethereum", bytes.NewReader(body))
	req.Header.Set(signatureHeader, "sha256=abc")
	w := httptest.NewRecorder()
	server.createRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp WebhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Accepted)

	require.Len(t, pub.payloads, 2)
	assert.Equal(t, []string{models.TopicAddressActivity, models.TopicAddressActivity}, pub.topics)

	first, ok := pub.payloads[0].(*models.AddressActivityEvent)
	require.True(t, ok)
	assert.Equal(t, "ethereum", first.Chain)
	assert.Equal(t, int64(1), first.ChainID)
	assert.Equal(t, "0x1", first.Address)
	assert.False(t, first.FromInvalidation)
}

func TestHandleWebhookSingleAddressForm(t *testing.T) {
	pub := &capturingPublisher{}
	server := newTestServer(nil, &fakeWebhookAPI{valid: true}, pub)

	req := httptest.NewRequest("POST", "/webhooks/polygon", bytes.NewReader([]byte(`{"address":"0x9"}`)))
	w := httptest.NewRecorder()
	server.createRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, pub.payloads, 1)
	event := pub.payloads[0].(*models.AddressActivityEvent)
	assert.Equal(t, "polygon", event.Chain)
	assert.Equal(t, int64(137), event.ChainID)
}

func TestHandleWebhookBadSignature(t *testing.T) {
	pub := &capturingPublisher{}
	server := newTestServer(nil, &fakeWebhookAPI{valid: false}, pub)

	req := httptest.NewRequest("POST", "/webhooks/ethereum", bytes.NewReader([]byte(`{"addresses":["0x1"]}`)))
	w := httptest.NewRecorder()
	server.createRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, pub.payloads)
}

func TestHandleWebhookMalformedPayload(t *testing.T) {
	server := newTestServer(nil, &fakeWebhookAPI{valid: true}, nil)

	req := httptest.NewRequest("POST", "/webhooks/ethereum", bytes.NewReader([]byte("{broken")))
	w := httptest.NewRecorder()
	server.createRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleWebhookEmptyPayload(t *testing.T) {
	server := newTestServer(nil, &fakeWebhookAPI{valid: true}, nil)

	req := httptest.NewRequest("POST", "/webhooks/ethereum", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	server.createRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer(nil, nil, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	server.createRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
