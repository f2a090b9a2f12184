package dto

import "github.com/spec-kit/hospital-service/internal/payment"

// PaymentRequest payload for POST /api/payments/create-order. Amount is in
// major currency units; the service converts to minor units.
type PaymentRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

// PrescriptionPayRequest payload for POST /api/prescriptions/pay.
type PrescriptionPayRequest struct {
	PrescriptionID int64 `json:"prescriptionId" validate:"required,gt=0"`
}

// RazorpayOrderResponse echoes the minted order plus the public key only.
type RazorpayOrderResponse struct {
	RazorpayOrderID string `json:"razorpayOrderId"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	Key             string `json:"key"`
}

// NewRazorpayOrderResponse maps the order details.
func NewRazorpayOrderResponse(details *payment.OrderDetails) RazorpayOrderResponse {
	return RazorpayOrderResponse{
		RazorpayOrderID: details.OrderID,
		Amount:          details.Amount,
		Currency:        details.Currency,
		Key:             details.Key,
	}
}

// PaymentVerifyRequest is the client-submitted payment proof.
type PaymentVerifyRequest struct {
	RazorpayOrderID   string `json:"razorpayOrderId" validate:"required"`
	RazorpayPaymentID string `json:"razorpayPaymentId" validate:"required"`
	RazorpaySignature string `json:"razorpaySignature" validate:"required"`
	PrescriptionID    int64  `json:"prescriptionId" validate:"required,gt=0"`
}

// PaymentVerifyResponse reports the verification outcome.
type PaymentVerifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
