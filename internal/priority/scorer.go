// Package priority ranks bookings for the attention dashboard. Scoring is a
// pure function of a booking and the current instant; nothing here mutates.
package priority

import (
	"math"
	"time"

	"github.com/khancreations/shootsync/internal/domain"
)

// Score tiers, highest urgency first. The first matching rule wins.
const (
	TierReadyToDeliver = 20
	TierEditingStalled = 15
	TierShootImminent  = 10
	TierPaymentOverdue = 8
	TierInProgress     = 5
	TierDefault        = 1
)

// Score evaluates the priority tier for a booking at the given instant.
func Score(b *domain.Booking, now time.Time) int {
	score, _ := scoreWithReason(b, now)
	return score
}

func scoreWithReason(b *domain.Booking, now time.Time) (int, string) {
	delivered := b.DeliveryStatus == domain.DeliveryDelivered

	if b.EditingProgress == 100 && !delivered {
		return TierReadyToDeliver, "Ready to deliver"
	}

	if b.ShootDoneDate != nil && daysSince(*b.ShootDoneDate, now) > 2 &&
		b.EditingProgress < 100 && !delivered {
		return TierEditingStalled, "Editing stalled"
	}

	if du := daysUntil(b.StartDate, now); du >= 0 && du <= 2 && !delivered {
		return TierShootImminent, "Shoot imminent"
	}

	if delivered && b.Balance() > 0 && daysSince(lastPaymentOrCreated(b), now) >= 3 {
		return TierPaymentOverdue, "Payment overdue"
	}

	if b.ShootDoneDate != nil && b.EditingProgress < 100 {
		return TierInProgress, "Editing in progress"
	}

	return TierDefault, ""
}

func lastPaymentOrCreated(b *domain.Booking) time.Time {
	if b.LastPaymentDate != nil {
		return *b.LastPaymentDate
	}
	return b.CreatedAt
}

// daysSince is the calendar-day floor of now minus t.
func daysSince(t, now time.Time) int {
	return int(math.Floor(now.Sub(t).Hours() / 24))
}

// daysUntil is the calendar-day ceil of t minus now.
func daysUntil(t, now time.Time) int {
	return int(math.Ceil(t.Sub(now).Hours() / 24))
}
