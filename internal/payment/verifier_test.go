package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hospital-service/internal/config"
	"github.com/spec-kit/hospital-service/pkg/util"
)

type fakeGateway struct {
	calls int
	order *GatewayOrder
	err   error

	lastAmount   int64
	lastCurrency string
	lastReceipt  string
}

func (g *fakeGateway) CreateOrder(amountMinorUnits int64, currency, receipt string) (*GatewayOrder, error) {
	g.calls++
	g.lastAmount = amountMinorUnits
	g.lastCurrency = currency
	g.lastReceipt = receipt
	if g.err != nil {
		return nil, g.err
	}
	return g.order, nil
}

func newTestService(gateway OrderCreator) *Service {
	return NewService(gateway, config.RazorpayConfig{
		KeyID:    "rzp_test_key",
		Secret:   "test_secret",
		Currency: "INR",
	}, zap.NewNop())
}

func signFor(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	gateway := &fakeGateway{}
	svc := newTestService(gateway)

	for _, amount := range []int64{0, -1, -50000} {
		_, err := svc.CreateOrder(amount)
		require.Error(t, err, "amount %d", amount)

		var domainErr *util.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	}
	assert.Zero(t, gateway.calls, "gateway must not be called for invalid amounts")
}

func TestCreateOrderReturnsPublicKeyOnly(t *testing.T) {
	gateway := &fakeGateway{order: &GatewayOrder{ID: "order_abc", Amount: 50000, Currency: "INR"}}
	svc := newTestService(gateway)

	details, err := svc.CreateOrder(50000)
	require.NoError(t, err)

	assert.Equal(t, "order_abc", details.OrderID)
	assert.Equal(t, int64(50000), details.Amount)
	assert.Equal(t, "INR", details.Currency)
	assert.Equal(t, "rzp_test_key", details.Key)
	assert.NotContains(t, details.Key, "test_secret")

	assert.Equal(t, 1, gateway.calls)
	assert.Equal(t, int64(50000), gateway.lastAmount)
	assert.Equal(t, "INR", gateway.lastCurrency)
	assert.Contains(t, gateway.lastReceipt, "rcpt_")
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	gateway := &fakeGateway{err: errors.New("dial tcp: connection refused")}
	svc := newTestService(gateway)

	_, err := svc.CreateOrder(50000)
	require.Error(t, err)

	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "GATEWAY_UNAVAILABLE", domainErr.Code)
}

func TestVerifySignatureAcceptsMatchingProof(t *testing.T) {
	svc := newTestService(&fakeGateway{})

	sig := signFor("test_secret", "order_abc", "pay_xyz")
	assert.True(t, svc.VerifySignature("order_abc", "pay_xyz", sig))
}

func TestVerifySignatureIsDeterministic(t *testing.T) {
	svc := newTestService(&fakeGateway{})

	sig := signFor("test_secret", "order_abc", "pay_xyz")
	assert.True(t, svc.VerifySignature("order_abc", "pay_xyz", sig))
	assert.True(t, svc.VerifySignature("order_abc", "pay_xyz", sig))
}

func TestVerifySignatureRejectsTamperedProof(t *testing.T) {
	svc := newTestService(&fakeGateway{})

	sig := signFor("test_secret", "order_abc", "pay_xyz")

	assert.False(t, svc.VerifySignature("order_abc", "pay_xyz", sig+"x"))
	assert.False(t, svc.VerifySignature("order_abc", "pay_other", sig))
	assert.False(t, svc.VerifySignature("order_other", "pay_xyz", sig))
}

func TestVerifySignatureRejectsWrongSecret(t *testing.T) {
	svc := newTestService(&fakeGateway{})

	sig := signFor("other_secret", "order_abc", "pay_xyz")
	assert.False(t, svc.VerifySignature("order_abc", "pay_xyz", sig))
}

func TestVerifySignatureRejectsEmptyInput(t *testing.T) {
	svc := newTestService(&fakeGateway{})

	sig := signFor("test_secret", "order_abc", "pay_xyz")

	assert.False(t, svc.VerifySignature("", "pay_xyz", sig))
	assert.False(t, svc.VerifySignature("order_abc", "", sig))
	assert.False(t, svc.VerifySignature("order_abc", "pay_xyz", ""))
}
