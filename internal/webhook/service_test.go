package webhook

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"portfolio-cache/internal/config"
	"portfolio-cache/internal/interfaces/mock"
)

type webhookFixture struct {
	client  *mock.MockWebhookProviderClient
	fast    *mock.MockFastCache
	store   *mock.MockPortfolioStore
	service *Service
}

func newWebhookFixture(t *testing.T) *webhookFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := &config.Config{
		Cache: config.CacheConfig{
			Prefix:        "pf",
			LockTTL:       30 * time.Second,
			SigningKeyTTL: time.Hour,
		},
		Webhook: config.WebhookConfig{
			CallbackURL: "https://cb.example/hooks",
		},
	}

	f := &webhookFixture{
		client: mock.NewMockWebhookProviderClient(ctrl),
		fast:   mock.NewMockFastCache(ctrl),
		store:  mock.NewMockPortfolioStore(ctrl),
	}
	f.service = New(f.client, f.fast, f.store, cfg, zap.NewNop())
	return f
}

const ethCallback = "https://cb.example/hooks/ethereum"

func TestReconcileChain(t *testing.T) {
	f := newWebhookFixture(t)
	ctx := context.Background()

	f.store.EXPECT().ActiveUnmonitored(ctx, "ethereum").Return([]string{"0x1", "0x2"}, nil)
	f.store.EXPECT().ExpiredMonitored(ctx, "ethereum").Return([]string{"0x3"}, nil)

	f.client.EXPECT().FindSubscription(ctx, ethCallback).Return("sub-1", nil)
	f.client.EXPECT().UpdateSubscription(ctx, "sub-1", []string{"0x1", "0x2"}, []string{"0x3"}).Return(nil)

	f.store.EXPECT().SetMonitored(ctx, "ethereum", []string{"0x1", "0x2"}, true).Return(nil)
	f.store.EXPECT().SetMonitored(ctx, "ethereum", []string{"0x3"}, false).Return(nil)

	f.service.ReconcileChain(ctx, "ethereum")
}

func TestReconcileChainNothingToDo(t *testing.T) {
	f := newWebhookFixture(t)
	ctx := context.Background()

	f.store.EXPECT().ActiveUnmonitored(ctx, "ethereum").Return(nil, nil)
	f.store.EXPECT().ExpiredMonitored(ctx, "ethereum").Return(nil, nil)

	// No provider calls when both sets are empty.
	f.service.ReconcileChain(ctx, "ethereum")
}

func TestReconcileChainStoreFailure(t *testing.T) {
	f := newWebhookFixture(t)
	ctx := context.Background()

	f.store.EXPECT().ActiveUnmonitored(ctx, "ethereum").Return(nil, assert.AnError)

	f.service.ReconcileChain(ctx, "ethereum")
}

func TestReconcileChainUpdateFailureSkipsFlagging(t *testing.T) {
	f := newWebhookFixture(t)
	ctx := context.Background()

	f.store.EXPECT().ActiveUnmonitored(ctx, "ethereum").Return([]string{"0x1"}, nil)
	f.store.EXPECT().ExpiredMonitored(ctx, "ethereum").Return(nil, nil)

	f.client.EXPECT().FindSubscription(ctx, ethCallback).Return("sub-1", nil)
	f.client.EXPECT().UpdateSubscription(ctx, "sub-1", []string{"0x1"}, nil).Return(assert.AnError)

	// SetMonitored must not run: the next pass re-derives the same set.
	f.service.ReconcileChain(ctx, "ethereum")
}

func TestUpdateWebhookAddressesWithoutCallbackURL(t *testing.T) {
	f := newWebhookFixture(t)
	f.service.cfg.Webhook.CallbackURL = ""

	ok := f.service.UpdateWebhookAddresses(context.Background(), "ethereum", []string{"0x1"}, nil)
	assert.False(t, ok)
}

func TestSubscriptionCreatedUnderLock(t *testing.T) {
	f := newWebhookFixture(t)
	ctx := context.Background()

	f.client.EXPECT().FindSubscription(ctx, ethCallback).Return("", nil)
	f.fast.EXPECT().SetNX(ctx, "pf:lock:webhook:ethereum", []byte("1"), 30*time.Second).Return(true, nil)
	f.client.EXPECT().FindSubscription(ctx, ethCallback).Return("", nil)
	f.client.EXPECT().CreateSubscription(ctx, ethCallback, nil).Return("sub-new", nil)
	f.fast.EXPECT().Delete(ctx, "pf:lock:webhook:ethereum").Return(nil)

	f.client.EXPECT().UpdateSubscription(ctx, "sub-new", []string{"0x1"}, nil).Return(nil)
	ok := f.service.UpdateWebhookAddresses(ctx, "ethereum", []string{"0x1"}, nil)
	assert.True(t, ok)

	// The id is cached: the next update resolves no subscription lookups.
	f.client.EXPECT().UpdateSubscription(ctx, "sub-new", []string{"0x2"}, nil).Return(nil)
	ok = f.service.UpdateWebhookAddresses(ctx, "ethereum", []string{"0x2"}, nil)
	assert.True(t, ok)
}

func TestSubscriptionCreationLockHeldElsewhere(t *testing.T) {
	f := newWebhookFixture(t)
	ctx := context.Background()

	f.client.EXPECT().FindSubscription(ctx, ethCallback).Return("", nil)
	f.fast.EXPECT().SetNX(ctx, "pf:lock:webhook:ethereum", []byte("1"), 30*time.Second).Return(false, nil)

	// Another instance holds the creation lock; no create, update reports
	// failure and the next pass retries.
	ok := f.service.UpdateWebhookAddresses(ctx, "ethereum", []string{"0x1"}, nil)
	assert.False(t, ok)
}

func TestSubscriptionLockRecheckFindsExisting(t *testing.T) {
	f := newWebhookFixture(t)
	ctx := context.Background()

	f.client.EXPECT().FindSubscription(ctx, ethCallback).Return("", nil)
	f.fast.EXPECT().SetNX(ctx, "pf:lock:webhook:ethereum", []byte("1"), 30*time.Second).Return(true, nil)
	// A sibling created the subscription between the first check and the
	// lock acquisition.
	f.client.EXPECT().FindSubscription(ctx, ethCallback).Return("sub-raced", nil)
	f.fast.EXPECT().Delete(ctx, "pf:lock:webhook:ethereum").Return(nil)

	f.client.EXPECT().UpdateSubscription(ctx, "sub-raced", []string{"0x1"}, nil).Return(nil)
	ok := f.service.UpdateWebhookAddresses(ctx, "ethereum", []string{"0x1"}, nil)
	assert.True(t, ok)
}

func TestVerifySignatureCachesKey(t *testing.T) {
	f := newWebhookFixture(t)
	ctx := context.Background()
	body := []byte(`{"addresses":["0xabc"]}`)
	header := "sha256=" + hex.EncodeToString(ComputeSignature("the-key", body))

	f.client.EXPECT().FindSubscription(ctx, ethCallback).Return("sub-1", nil)
	f.client.EXPECT().GetSigningKey(ctx, "sub-1").Return("the-key", nil).Times(1)

	assert.True(t, f.service.VerifySignature(ctx, "ethereum", body, header))
	// Second verification hits the key cache.
	assert.True(t, f.service.VerifySignature(ctx, "ethereum", body, header))
}

func TestVerifySignatureFailurePurgesKeys(t *testing.T) {
	f := newWebhookFixture(t)
	ctx := context.Background()
	body := []byte(`{"addresses":["0xabc"]}`)
	goodHeader := hex.EncodeToString(ComputeSignature("the-key", body))
	badHeader := hex.EncodeToString(ComputeSignature("wrong-key", body))

	f.client.EXPECT().FindSubscription(ctx, ethCallback).Return("sub-1", nil)
	// The failed verification purges the key cache, forcing a re-fetch.
	f.client.EXPECT().GetSigningKey(ctx, "sub-1").Return("the-key", nil).Times(2)

	assert.False(t, f.service.VerifySignature(ctx, "ethereum", body, badHeader))
	assert.True(t, f.service.VerifySignature(ctx, "ethereum", body, goodHeader))
}

func TestVerifySignatureWithoutSubscription(t *testing.T) {
	f := newWebhookFixture(t)
	ctx := context.Background()

	f.client.EXPECT().FindSubscription(ctx, ethCallback).Return("", assert.AnError)

	assert.False(t, f.service.VerifySignature(ctx, "ethereum", []byte("{}"), "00"))
}
