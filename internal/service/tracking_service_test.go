package service

import (
	"context"
	"testing"

	"github.com/khancreations/shootsync/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracking_ToggleTask_LockedUntilShootDone(t *testing.T) {
	env := newTestEnv(t)
	b := env.createBooking(t, "Locked")

	_, err := env.tracking.ToggleTask(context.Background(), b.ID, "1")
	assert.ErrorIs(t, err, ErrChecklistLocked)

	fetched, err := env.booking.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fetched.CompletedTaskCount(), "rejected toggle must not persist")
}

func TestTracking_ToggleTask_AdvancesProgressAndStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBooking(t, "Editing")
	env.shootDone(t, b.ID)

	updated, err := env.tracking.ToggleTask(ctx, b.ID, "1")
	require.NoError(t, err)
	assert.Equal(t, 17, updated.EditingProgress)
	assert.Equal(t, domain.DeliveryInProgress, updated.DeliveryStatus)

	// Untoggling back to zero keeps InProgress: no regression to Pending.
	updated, err = env.tracking.ToggleTask(ctx, b.ID, "1")
	require.NoError(t, err)
	assert.Equal(t, 0, updated.EditingProgress)
	assert.Equal(t, domain.DeliveryInProgress, updated.DeliveryStatus)
}

func TestTracking_ToggleTask_UnknownTask(t *testing.T) {
	env := newTestEnv(t)
	b := env.createBooking(t, "Unknown Task")
	env.shootDone(t, b.ID)

	_, err := env.tracking.ToggleTask(context.Background(), b.ID, "99")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTracking_FullChecklistDoesNotAutoDeliver(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBooking(t, "Complete")
	env.shootDone(t, b.ID)

	var updated *domain.Booking
	var err error
	for _, taskID := range []string{"1", "2", "3", "4", "5", "6"} {
		updated, err = env.tracking.ToggleTask(ctx, b.ID, taskID)
		require.NoError(t, err)
	}
	assert.Equal(t, 100, updated.EditingProgress)
	assert.Equal(t, domain.DeliveryInProgress, updated.DeliveryStatus,
		"delivery is always an explicit action")
}

func TestTracking_ToggleShootDone_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBooking(t, "Shoot")

	updated, err := env.tracking.ToggleShootDone(ctx, b.ID)
	require.NoError(t, err)
	assert.NotNil(t, updated.ShootDoneDate)

	updated, err = env.tracking.ToggleShootDone(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, updated.ShootDoneDate)
}

func TestTracking_Deliver_CollectsBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	b, err := env.booking.Create(ctx, BookingDraft{
		ClientName:    "Payday",
		PackageAmount: 50000,
		AdvanceAmount: 20000,
	})
	require.NoError(t, err)

	updated, err := env.tracking.Deliver(ctx, b.ID, 30000, "https://drive.example/final")
	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryDelivered, updated.DeliveryStatus)
	assert.Equal(t, int64(50000), updated.AdvanceAmount)
	assert.Equal(t, int64(0), updated.Balance())
	assert.Equal(t, "https://drive.example/final", updated.DeliveryLink)
	assert.NotNil(t, updated.LastPaymentDate)
	require.Len(t, updated.DeliveredItems, 1)
}

func TestTracking_Deliver_ZeroCollectionKeepsPaymentDate(t *testing.T) {
	env := newTestEnv(t)
	b := env.createBooking(t, "No Payment")

	updated, err := env.tracking.Deliver(context.Background(), b.ID, 0, "")
	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryDelivered, updated.DeliveryStatus)
	assert.Nil(t, updated.LastPaymentDate)
}

func TestTracking_Deliver_Guards(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBooking(t, "Guarded")

	_, err := env.tracking.Deliver(ctx, b.ID, -1, "")
	assert.ErrorIs(t, err, ErrNegativeCollected)

	_, err = env.tracking.Deliver(ctx, b.ID, 0, "")
	require.NoError(t, err)

	_, err = env.tracking.Deliver(ctx, b.ID, 0, "")
	assert.ErrorIs(t, err, ErrAlreadyDelivered)
}

func TestTracking_ToggleTask_RejectedAfterDelivery(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	b := env.createBooking(t, "Terminal")
	env.shootDone(t, b.ID)

	_, err := env.tracking.Deliver(ctx, b.ID, 0, "")
	require.NoError(t, err)

	_, err = env.tracking.ToggleTask(ctx, b.ID, "1")
	assert.ErrorIs(t, err, ErrAlreadyDelivered)

	fetched, err := env.booking.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryDelivered, fetched.DeliveryStatus)
	assert.Equal(t, 0, fetched.CompletedTaskCount(), "checklist must stay frozen after delivery")
	assert.Equal(t, 0, fetched.EditingProgress)
}
