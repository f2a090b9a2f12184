package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/hospital-service/internal/config"
	"github.com/spec-kit/hospital-service/pkg/util"
)

// OrderDetails is what the billing handler returns to the client. Key is the
// public key id only; the shared secret is never echoed.
type OrderDetails struct {
	OrderID  string
	Amount   int64
	Currency string
	Key      string
}

// Verifier creates payment orders and verifies gateway-issued payment
// proofs. Both operations share the gateway secret; verification is a pure
// computation with no stored state per attempt.
type Verifier interface {
	CreateOrder(amountMinorUnits int64) (*OrderDetails, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// Service is the Razorpay-keyed verifier.
type Service struct {
	gateway  OrderCreator
	secret   []byte
	keyID    string
	currency string
	logger   *zap.Logger
}

// NewService builds the verifier around an order creator.
func NewService(gateway OrderCreator, cfg config.RazorpayConfig, logger *zap.Logger) *Service {
	return &Service{
		gateway:  gateway,
		secret:   []byte(cfg.Secret),
		keyID:    cfg.KeyID,
		currency: cfg.Currency,
		logger:   logger,
	}
}

// CreateOrder delegates minting to the gateway. The amount must be a
// positive integer in minor currency units; anything else fails before any
// network call. No local record exists until the gateway call succeeds.
func (s *Service) CreateOrder(amountMinorUnits int64) (*OrderDetails, error) {
	if amountMinorUnits <= 0 {
		return nil, util.NewValidationError("amount must be a positive integer in minor currency units", nil)
	}

	receipt := "rcpt_" + uuid.NewString()
	order, err := s.gateway.CreateOrder(amountMinorUnits, s.currency, receipt)
	if err != nil {
		s.logger.Error("order creation failed", zap.Error(err))
		return nil, util.NewGatewayUnavailable(err)
	}

	return &OrderDetails{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Key:      s.keyID,
	}, nil
}

// VerifySignature recomputes the expected proof as
// base64(HMAC-SHA256(orderID + "|" + paymentID)) under the shared secret and
// compares in constant time. Malformed input or any computation problem is a
// verification failure, never an error; the cause is only logged.
func (s *Service) VerifySignature(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		s.logger.Debug("signature verification rejected empty input")
		return false
	}

	mac := hmac.New(sha256.New, s.secret)
	if _, err := mac.Write([]byte(orderID + "|" + paymentID)); err != nil {
		s.logger.Error("signature computation failed", zap.Error(err))
		return false
	}
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
