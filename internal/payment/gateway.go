package payment

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
)

// GatewayOrder is the order the gateway minted.
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
}

// OrderCreator mints payment orders with the external gateway. The gateway
// credentials used for this call never leave the implementation.
type OrderCreator interface {
	CreateOrder(amountMinorUnits int64, currency, receipt string) (*GatewayOrder, error)
}

type razorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpayGateway builds the Razorpay-backed order creator. The timeout
// bounds the outbound order-creation call; retries are left to callers.
func NewRazorpayGateway(keyID, secret string, timeout time.Duration) OrderCreator {
	client := razorpay.NewClient(keyID, secret)
	if secs := timeoutSeconds(timeout); secs > 0 {
		client.SetTimeout(secs)
	}
	return &razorpayGateway{client: client}
}

// timeoutSeconds converts a duration to the whole seconds the SDK client
// accepts, clamped to the int16 range it is declared with.
func timeoutSeconds(timeout time.Duration) int16 {
	secs := int64(timeout / time.Second)
	if secs <= 0 {
		return 0
	}
	if secs > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(secs)
}

func (g *razorpayGateway) CreateOrder(amountMinorUnits int64, currency, receipt string) (*GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":          amountMinorUnits,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("create razorpay order: %w", err)
	}

	id, _ := body["id"].(string)
	if id == "" {
		return nil, errors.New("razorpay order response missing id")
	}
	order := &GatewayOrder{ID: id, Amount: amountMinorUnits, Currency: currency}
	if amount, ok := numberToInt64(body["amount"]); ok {
		order.Amount = amount
	}
	if cur, ok := body["currency"].(string); ok && cur != "" {
		order.Currency = cur
	}
	return order, nil
}

func numberToInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		parsed, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}
