package priority

import (
	"testing"
	"time"

	"github.com/khancreations/shootsync/internal/domain"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func daysAgo(d int) *time.Time {
	t := now.AddDate(0, 0, -d)
	return &t
}

func TestScore_ReadyToDeliver(t *testing.T) {
	b := &domain.Booking{
		EditingProgress: 100,
		DeliveryStatus:  domain.DeliveryInProgress,
		StartDate:       now.AddDate(0, 0, -30),
	}
	assert.Equal(t, TierReadyToDeliver, Score(b, now))
}

func TestScore_EditingStalled(t *testing.T) {
	// Shoot three days ago, half the checklist done, not delivered.
	b := &domain.Booking{
		ShootDoneDate:   daysAgo(3),
		EditingProgress: 50,
		DeliveryStatus:  domain.DeliveryInProgress,
		StartDate:       now.AddDate(0, 0, -10),
	}
	assert.Equal(t, TierEditingStalled, Score(b, now))
}

func TestScore_ShootImminent(t *testing.T) {
	b := &domain.Booking{
		DeliveryStatus: domain.DeliveryPending,
		StartDate:      now.AddDate(0, 0, 1),
	}
	assert.Equal(t, TierShootImminent, Score(b, now))
}

func TestScore_ShootToday(t *testing.T) {
	b := &domain.Booking{
		DeliveryStatus: domain.DeliveryPending,
		StartDate:      now,
	}
	assert.Equal(t, TierShootImminent, Score(b, now))
}

func TestScore_PaymentOverdue(t *testing.T) {
	b := &domain.Booking{
		PackageAmount:   40000,
		AdvanceAmount:   30000,
		DeliveryStatus:  domain.DeliveryDelivered,
		LastPaymentDate: daysAgo(5),
		StartDate:       now.AddDate(0, 0, -20),
	}
	assert.Equal(t, TierPaymentOverdue, Score(b, now))
}

func TestScore_PaymentOverdue_FallsBackToCreatedAt(t *testing.T) {
	b := &domain.Booking{
		PackageAmount:  40000,
		AdvanceAmount:  10000,
		DeliveryStatus: domain.DeliveryDelivered,
		CreatedAt:      now.AddDate(0, 0, -7),
		StartDate:      now.AddDate(0, 0, -20),
	}
	assert.Equal(t, TierPaymentOverdue, Score(b, now))
}

func TestScore_SettledDeliveryIsDefault(t *testing.T) {
	b := &domain.Booking{
		PackageAmount:   40000,
		AdvanceAmount:   40000,
		DeliveryStatus:  domain.DeliveryDelivered,
		LastPaymentDate: daysAgo(10),
		StartDate:       now.AddDate(0, 0, -20),
	}
	assert.Equal(t, TierDefault, Score(b, now))
}

func TestScore_GeneralInProgress(t *testing.T) {
	// Shot yesterday: not yet stalled, but shoot done and editing incomplete.
	b := &domain.Booking{
		ShootDoneDate:   daysAgo(1),
		EditingProgress: 17,
		DeliveryStatus:  domain.DeliveryInProgress,
		StartDate:       now.AddDate(0, 0, -10),
	}
	assert.Equal(t, TierInProgress, Score(b, now))
}

func TestScore_Default(t *testing.T) {
	b := &domain.Booking{
		DeliveryStatus: domain.DeliveryPending,
		StartDate:      now.AddDate(0, 0, 30),
	}
	assert.Equal(t, TierDefault, Score(b, now))
}

func TestScore_Deterministic(t *testing.T) {
	b := &domain.Booking{
		ShootDoneDate:   daysAgo(4),
		EditingProgress: 67,
		DeliveryStatus:  domain.DeliveryInProgress,
		StartDate:       now.AddDate(0, 0, -5),
	}
	before := *b
	first := Score(b, now)
	second := Score(b, now)
	assert.Equal(t, first, second)
	assert.Equal(t, before, *b, "scoring must not mutate the booking")
}

func TestRank_OrdersByScoreThenStartDate(t *testing.T) {
	ready := &domain.Booking{
		ID:              "ready",
		EditingProgress: 100,
		DeliveryStatus:  domain.DeliveryInProgress,
		StartDate:       now.AddDate(0, 0, -15),
	}
	imminentLater := &domain.Booking{
		ID:             "imminent-later",
		DeliveryStatus: domain.DeliveryPending,
		StartDate:      now.AddDate(0, 0, 2),
	}
	imminentSooner := &domain.Booking{
		ID:             "imminent-sooner",
		DeliveryStatus: domain.DeliveryPending,
		StartDate:      now.AddDate(0, 0, 1),
	}
	idle := &domain.Booking{
		ID:             "idle",
		DeliveryStatus: domain.DeliveryPending,
		StartDate:      now.AddDate(0, 0, 60),
	}

	ranked := Rank([]*domain.Booking{idle, imminentLater, ready, imminentSooner}, now)

	ids := make([]string, len(ranked))
	for i, r := range ranked {
		ids[i] = r.Booking.ID
	}
	assert.Equal(t, []string{"ready", "imminent-sooner", "imminent-later", "idle"}, ids)
}
