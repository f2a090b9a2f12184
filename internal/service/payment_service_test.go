package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hospital-service/internal/domain"
	"github.com/spec-kit/hospital-service/internal/events"
	"github.com/spec-kit/hospital-service/internal/payment"
	"github.com/spec-kit/hospital-service/pkg/util"
)

type fakeVerifier struct {
	orders      []*payment.OrderDetails
	createErr   error
	validProofs map[string]bool
}

func (v *fakeVerifier) CreateOrder(amountMinorUnits int64) (*payment.OrderDetails, error) {
	if amountMinorUnits <= 0 {
		return nil, util.NewValidationError("amount must be a positive integer in minor currency units", nil)
	}
	if v.createErr != nil {
		return nil, v.createErr
	}
	details := &payment.OrderDetails{
		OrderID:  "order_fake",
		Amount:   amountMinorUnits,
		Currency: "INR",
		Key:      "rzp_test_key",
	}
	v.orders = append(v.orders, details)
	return details, nil
}

func (v *fakeVerifier) VerifySignature(orderID, paymentID, signature string) bool {
	return v.validProofs[orderID+"|"+paymentID+"|"+signature]
}

type fakePrescriptionRepo struct {
	byID map[int64]*domain.Prescription
}

func newFakePrescriptionRepo(prescriptions ...*domain.Prescription) *fakePrescriptionRepo {
	repo := &fakePrescriptionRepo{byID: make(map[int64]*domain.Prescription)}
	for _, p := range prescriptions {
		repo.byID[p.ID] = p
	}
	return repo
}

func (r *fakePrescriptionRepo) Create(ctx context.Context, p *domain.Prescription) error {
	p.ID = int64(len(r.byID) + 1)
	r.byID[p.ID] = p
	return nil
}

func (r *fakePrescriptionRepo) GetByID(ctx context.Context, id int64) (*domain.Prescription, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *p
	return &copied, nil
}

func (r *fakePrescriptionRepo) ListByPatientEmail(ctx context.Context, email string) ([]domain.Prescription, error) {
	var out []domain.Prescription
	for _, p := range r.byID {
		if p.PatientEmail == email {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePrescriptionRepo) SetOrderID(ctx context.Context, id int64, orderID string) error {
	p, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	p.OrderID = orderID
	return nil
}

func (r *fakePrescriptionRepo) MarkPaid(ctx context.Context, id int64, orderID string) error {
	p, ok := r.byID[id]
	if !ok || p.OrderID != orderID {
		return pgx.ErrNoRows
	}
	p.Paid = true
	return nil
}

func unpaidPrescription(id int64, orderID string) *domain.Prescription {
	return &domain.Prescription{
		ID:           id,
		PatientName:  "John Doe",
		DoctorName:   "Dr. Jane Roe",
		PatientEmail: "john@h.com",
		Issued:       true,
		Fees:         500,
		OrderID:      orderID,
	}
}

func TestCreateOrderForPrescription(t *testing.T) {
	verifier := &fakeVerifier{}
	repo := newFakePrescriptionRepo(unpaidPrescription(1, ""))
	svc := NewPaymentService(verifier, repo, events.NewInMemoryDispatcher(), zap.NewNop())

	details, err := svc.CreateOrderForPrescription(context.Background(), 1)
	require.NoError(t, err)

	// Fees are stored in major units; the gateway is paid minor units.
	assert.Equal(t, int64(50000), details.Amount)
	assert.Equal(t, "order_fake", repo.byID[1].OrderID)
	assert.False(t, repo.byID[1].Paid)
}

func TestCreateOrderForPrescriptionAlreadyPaid(t *testing.T) {
	paid := unpaidPrescription(1, "order_done")
	paid.Paid = true
	verifier := &fakeVerifier{}
	svc := NewPaymentService(verifier, newFakePrescriptionRepo(paid), events.NewInMemoryDispatcher(), zap.NewNop())

	_, err := svc.CreateOrderForPrescription(context.Background(), 1)
	require.Error(t, err)

	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Empty(t, verifier.orders, "no gateway order for an already paid prescription")
}

func TestCreateOrderForPrescriptionUnknownID(t *testing.T) {
	svc := NewPaymentService(&fakeVerifier{}, newFakePrescriptionRepo(), events.NewInMemoryDispatcher(), zap.NewNop())

	_, err := svc.CreateOrderForPrescription(context.Background(), 42)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestVerifyMarksPrescriptionPaid(t *testing.T) {
	verifier := &fakeVerifier{validProofs: map[string]bool{"order_abc|pay_xyz|sig": true}}
	repo := newFakePrescriptionRepo(unpaidPrescription(1, "order_abc"))

	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	dispatcher.Subscribe(events.EventPaymentVerified, func(ctx context.Context, e events.Event) error {
		published = append(published, e)
		return nil
	})

	svc := NewPaymentService(verifier, repo, dispatcher, zap.NewNop())

	result := svc.Verify(context.Background(), "order_abc", "pay_xyz", "sig", 1)
	require.True(t, result.Success)
	assert.True(t, repo.byID[1].Paid)

	require.Len(t, published, 1)
	assert.Equal(t, "john@h.com", published[0].Subject)
}

func TestVerifyBadSignatureIsGenericFailure(t *testing.T) {
	verifier := &fakeVerifier{validProofs: map[string]bool{}}
	repo := newFakePrescriptionRepo(unpaidPrescription(1, "order_abc"))
	svc := NewPaymentService(verifier, repo, events.NewInMemoryDispatcher(), zap.NewNop())

	result := svc.Verify(context.Background(), "order_abc", "pay_xyz", "bad", 1)
	assert.False(t, result.Success)
	assert.Equal(t, "Payment verification failed", result.Message)
	assert.False(t, repo.byID[1].Paid)
}

func TestVerifyOrderMismatchIsGenericFailure(t *testing.T) {
	// The proof itself is genuine, but for a different order than the one
	// recorded on the prescription.
	verifier := &fakeVerifier{validProofs: map[string]bool{"order_other|pay_xyz|sig": true}}
	repo := newFakePrescriptionRepo(unpaidPrescription(1, "order_abc"))
	svc := NewPaymentService(verifier, repo, events.NewInMemoryDispatcher(), zap.NewNop())

	result := svc.Verify(context.Background(), "order_other", "pay_xyz", "sig", 1)
	assert.False(t, result.Success)
	assert.Equal(t, "Payment verification failed", result.Message)
	assert.False(t, repo.byID[1].Paid)
}

func TestVerifyUnknownPrescriptionIsGenericFailure(t *testing.T) {
	verifier := &fakeVerifier{validProofs: map[string]bool{"order_abc|pay_xyz|sig": true}}
	svc := NewPaymentService(verifier, newFakePrescriptionRepo(), events.NewInMemoryDispatcher(), zap.NewNop())

	result := svc.Verify(context.Background(), "order_abc", "pay_xyz", "sig", 99)
	assert.False(t, result.Success)
	assert.Equal(t, "Payment verification failed", result.Message)
}
