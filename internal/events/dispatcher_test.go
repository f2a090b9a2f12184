package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	d := NewInMemoryDispatcher()
	err := d.Publish(context.Background(), Event{Type: EventPaymentVerified})
	assert.NoError(t, err)
}

func TestPublishReachesAllSubscribersOfType(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []string
	d.Subscribe(EventAppointmentBooked, func(ctx context.Context, e Event) error {
		got = append(got, "first:"+e.Subject)
		return nil
	})
	d.Subscribe(EventAppointmentBooked, func(ctx context.Context, e Event) error {
		got = append(got, "second:"+e.Subject)
		return nil
	})
	d.Subscribe(EventPaymentVerified, func(ctx context.Context, e Event) error {
		got = append(got, "other-type")
		return nil
	})

	err := d.Publish(context.Background(), Event{
		ID:        "evt-1",
		Type:      EventAppointmentBooked,
		Subject:   "john@h.com",
		Timestamp: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"first:john@h.com", "second:john@h.com"}, got)
}

func TestPublishContinuesPastFailingHandler(t *testing.T) {
	d := NewInMemoryDispatcher()

	boom := errors.New("webhook down")
	var secondRan bool
	d.Subscribe(EventPaymentVerified, func(ctx context.Context, e Event) error {
		return boom
	})
	d.Subscribe(EventPaymentVerified, func(ctx context.Context, e Event) error {
		secondRan = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventPaymentVerified})
	assert.True(t, secondRan, "later handlers must still run")
	assert.ErrorIs(t, err, boom)
}
