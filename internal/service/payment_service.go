package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/hospital-service/internal/events"
	"github.com/spec-kit/hospital-service/internal/payment"
	"github.com/spec-kit/hospital-service/internal/repository"
	"github.com/spec-kit/hospital-service/pkg/util"
)

// verificationFailedMessage is the only message a failed verification ever
// returns; the actual cause stays in the logs.
const verificationFailedMessage = "Payment verification failed"

// VerificationResult is the outcome reported to the caller.
type VerificationResult struct {
	Success bool
	Message string
}

// PaymentService ties order creation and proof verification to the billable
// prescription records.
type PaymentService struct {
	verifier      payment.Verifier
	prescriptions repository.PrescriptionRepository
	dispatcher    events.Dispatcher
	logger        *zap.Logger
}

// NewPaymentService builds the service.
func NewPaymentService(verifier payment.Verifier, prescriptions repository.PrescriptionRepository, dispatcher events.Dispatcher, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		verifier:      verifier,
		prescriptions: prescriptions,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

// CreateOrder mints a gateway order for an arbitrary amount given in major
// currency units.
func (s *PaymentService) CreateOrder(ctx context.Context, amount int) (*payment.OrderDetails, error) {
	return s.verifier.CreateOrder(int64(amount) * 100)
}

// CreateOrderForPrescription mints an order covering a prescription's fees
// and records the order id on the prescription so a later proof can be
// correlated back to it.
func (s *PaymentService) CreateOrderForPrescription(ctx context.Context, prescriptionID int64) (*payment.OrderDetails, error) {
	prescription, err := s.prescriptions.GetByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription.Paid {
		return nil, util.NewConflict("prescription already paid", nil)
	}

	details, err := s.verifier.CreateOrder(int64(prescription.Fees) * 100)
	if err != nil {
		return nil, err
	}

	if err := s.prescriptions.SetOrderID(ctx, prescriptionID, details.OrderID); err != nil {
		return nil, err
	}
	return details, nil
}

// Verify checks a client-submitted payment proof and, when it matches the
// prescription's recorded order, marks the prescription paid. Every failure
// path reports the same generic message.
func (s *PaymentService) Verify(ctx context.Context, orderID, paymentID, signature string, prescriptionID int64) *VerificationResult {
	if !s.verifier.VerifySignature(orderID, paymentID, signature) {
		s.logger.Warn("payment signature rejected",
			zap.String("order_id", orderID),
			zap.Int64("prescription_id", prescriptionID))
		return &VerificationResult{Success: false, Message: verificationFailedMessage}
	}

	prescription, err := s.prescriptions.GetByID(ctx, prescriptionID)
	if err != nil {
		s.logger.Warn("verified payment references unknown prescription",
			zap.Int64("prescription_id", prescriptionID), zap.Error(err))
		return &VerificationResult{Success: false, Message: verificationFailedMessage}
	}
	if prescription.OrderID != orderID {
		s.logger.Warn("verified payment does not match prescription order",
			zap.Int64("prescription_id", prescriptionID),
			zap.String("order_id", orderID))
		return &VerificationResult{Success: false, Message: verificationFailedMessage}
	}

	if err := s.prescriptions.MarkPaid(ctx, prescriptionID, orderID); err != nil {
		s.logger.Error("failed to mark prescription paid",
			zap.Int64("prescription_id", prescriptionID), zap.Error(err))
		return &VerificationResult{Success: false, Message: verificationFailedMessage}
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventPaymentVerified,
			Subject:   prescription.PatientEmail,
			Timestamp: time.Now(),
			Payload: events.PaymentVerifiedPayload{
				PrescriptionID: prescriptionID,
				OrderID:        orderID,
			},
		})
	}
	return &VerificationResult{Success: true, Message: "Payment verified"}
}
