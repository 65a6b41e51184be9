// Package lifecycle holds the pure transition rules for a booking: checklist
// toggling, progress recomputation, shoot-date toggling, and delivery.
// Functions return updated copies and never touch storage. Preconditions
// (shoot done before toggling, not yet delivered before delivering) are the
// caller's responsibility; the service layer guards them.
package lifecycle

import (
	"fmt"
	"math"
	"time"

	"github.com/khancreations/shootsync/internal/domain"
)

// Progress returns the checklist completion percentage, rounded to the
// nearest integer. An empty checklist counts as 0.
func Progress(tasks []domain.EditingTask) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.IsCompleted {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(tasks))))
}

// ToggleTask flips the completion state of exactly one checklist item and
// recomputes progress and status on a copy of the booking.
//
// Status rules: progress strictly between 0 and 100 forces InProgress;
// reaching 100 keeps InProgress (delivery is always an explicit action);
// a recompute back to 0 leaves the status unchanged, so a booking already
// InProgress never regresses to Pending.
func ToggleTask(b *domain.Booking, taskID string) *domain.Booking {
	next := b.Clone()
	for i := range next.EditingTasks {
		if next.EditingTasks[i].ID == taskID {
			next.EditingTasks[i].IsCompleted = !next.EditingTasks[i].IsCompleted
			break
		}
	}

	progress := Progress(next.EditingTasks)
	next.EditingProgress = progress

	// Delivered is terminal: no recompute ever retracts it.
	if next.DeliveryStatus != domain.DeliveryDelivered && progress > 0 {
		next.DeliveryStatus = domain.DeliveryInProgress
	}
	return next
}

// ToggleShootDone marks the shoot as done at now, or clears the mark if it is
// already set. Delivery status and editing progress are unaffected.
func ToggleShootDone(b *domain.Booking, now time.Time) *domain.Booking {
	next := b.Clone()
	if next.ShootDoneDate != nil {
		next.ShootDoneDate = nil
		return next
	}
	t := now
	next.ShootDoneDate = &t
	return next
}

// Deliver finalizes the booking: status becomes Delivered, the collected
// payment is added to the advance, the delivery link is recorded when
// provided, and a timestamped record is appended. LastPaymentDate moves only
// for a non-zero collection.
func Deliver(b *domain.Booking, collected int64, link string, now time.Time) *domain.Booking {
	next := b.Clone()
	next.DeliveryStatus = domain.DeliveryDelivered
	next.AdvanceAmount += collected
	if link != "" {
		next.DeliveryLink = link
	}
	next.DeliveredItems = append(next.DeliveredItems, domain.DeliveryRecord{
		DeliveredAt: now,
		Note:        fmt.Sprintf("Delivered on %s", now.Format("02/01/2006")),
	})
	if collected > 0 {
		t := now
		next.LastPaymentDate = &t
	}
	return next
}

// NormalizeDates applies the silent save-time correction: an end date earlier
// than the start date is pulled up to the start date. No error is surfaced.
func NormalizeDates(b *domain.Booking) {
	if b.EndDate.Before(b.StartDate) {
		b.EndDate = b.StartDate
	}
}
