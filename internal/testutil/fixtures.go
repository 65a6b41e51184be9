package testutil

import (
	"time"

	"github.com/khancreations/shootsync/internal/domain"
	"github.com/google/uuid"
)

// BookingOption mutates a fixture booking.
type BookingOption func(*domain.Booking)

func WithStartDate(d time.Time) BookingOption {
	return func(b *domain.Booking) {
		b.StartDate = d
		b.EndDate = d
	}
}

func WithEndDate(d time.Time) BookingOption {
	return func(b *domain.Booking) {
		b.EndDate = d
	}
}

func WithAmounts(pkg, advance int64) BookingOption {
	return func(b *domain.Booking) {
		b.PackageAmount = pkg
		b.AdvanceAmount = advance
	}
}

func WithShootDone(d time.Time) BookingOption {
	return func(b *domain.Booking) {
		b.ShootDoneDate = &d
	}
}

func WithDeliveryStatus(s domain.DeliveryStatus) BookingOption {
	return func(b *domain.Booking) {
		b.DeliveryStatus = s
	}
}

func WithCompletedTasks(n int) BookingOption {
	return func(b *domain.Booking) {
		for i := 0; i < n && i < len(b.EditingTasks); i++ {
			b.EditingTasks[i].IsCompleted = true
		}
	}
}

func WithLastPaymentDate(d time.Time) BookingOption {
	return func(b *domain.Booking) {
		b.LastPaymentDate = &d
	}
}

// NewTestBooking builds a booking with sensible defaults for tests:
// a wedding two weeks out, the canonical checklist, pending delivery.
func NewTestBooking(clientName string, opts ...BookingOption) *domain.Booking {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, 14).Truncate(24 * time.Hour)
	b := &domain.Booking{
		ID:             uuid.New().String(),
		ClientName:     clientName,
		EventTitle:     "Wedding",
		Venue:          "Dhaka Banquet Hall",
		Notes:          "Photography & Cinematography",
		StartDate:      start,
		EndDate:        start,
		PackageAmount:  50000,
		CreatedAt:      now,
		EditingTasks:   domain.DefaultEditingTasks(),
		DeliveryStatus: domain.DeliveryPending,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}
