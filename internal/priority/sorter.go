package priority

import (
	"sort"
	"time"

	"github.com/khancreations/shootsync/internal/domain"
)

// ScoredBooking pairs a booking with its evaluated tier and a short
// human-readable reason for the dashboard.
type ScoredBooking struct {
	Booking *domain.Booking
	Score   int
	Reason  string
}

// Rank scores every booking at now and sorts the result by the canonical
// rules: descending score, then ascending start date. The sort is stable so
// equal bookings keep insertion order.
func Rank(bookings []*domain.Booking, now time.Time) []ScoredBooking {
	ranked := make([]ScoredBooking, 0, len(bookings))
	for _, b := range bookings {
		score, reason := scoreWithReason(b, now)
		ranked = append(ranked, ScoredBooking{Booking: b, Score: score, Reason: reason})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Booking.StartDate.Before(b.Booking.StartDate)
	})
	return ranked
}
