package service

import (
	"math/rand/v2"
	"time"

	"github.com/khancreations/shootsync/internal/domain"
	"github.com/google/uuid"
)

const defaultNotes = "Photography & Cinematography"

// NewBookingFromDraft materializes a booking from a partial draft. Every unset
// field gets its canonical default: the event starts today, ends the day it
// starts, carries a fresh copy of the editing checklist, and waits in Pending.
// Supplied draft fields always win over defaults.
func NewBookingFromDraft(draft BookingDraft, now time.Time) *domain.Booking {
	start := draft.StartDate
	if start.IsZero() {
		start = now.Truncate(24 * time.Hour)
	}
	end := draft.EndDate
	if end.IsZero() {
		end = start
	}
	notes := draft.Notes
	if notes == "" {
		notes = defaultNotes
	}

	return &domain.Booking{
		ID:             newBookingID(),
		ClientName:     draft.ClientName,
		ClientPhone:    draft.ClientPhone,
		GroomName:      draft.GroomName,
		BrideName:      draft.BrideName,
		EventTitle:     draft.EventTitle,
		Venue:          draft.Venue,
		Notes:          notes,
		StartDate:      start,
		EndDate:        end,
		PackageAmount:  draft.PackageAmount,
		AdvanceAmount:  draft.AdvanceAmount,
		CreatedAt:      now,
		EditingTasks:   domain.DefaultEditingTasks(),
		DeliveryStatus: domain.DeliveryPending,
	}
}

// newBookingID returns a v4 UUID string. If the OS entropy source fails, it
// falls back to a v4-shaped pseudo-random id so booking creation never fails
// on id generation alone.
func newBookingID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}
	const hexDigits = "0123456789abcdef"
	b := make([]byte, 36)
	for i := range b {
		switch i {
		case 8, 13, 18, 23:
			b[i] = '-'
		case 14:
			b[i] = '4'
		case 19:
			b[i] = "89ab"[rand.IntN(4)]
		default:
			b[i] = hexDigits[rand.IntN(16)]
		}
	}
	return string(b)
}
