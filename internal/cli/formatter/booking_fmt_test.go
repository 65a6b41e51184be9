package formatter

import (
	"testing"
	"time"

	"github.com/khancreations/shootsync/internal/domain"
	"github.com/khancreations/shootsync/internal/priority"
	"github.com/khancreations/shootsync/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatBookingList(t *testing.T) {
	bookings := []*domain.Booking{
		testutil.NewTestBooking("Ayesha Rahman", testutil.WithAmounts(50000, 20000)),
		testutil.NewTestBooking("Karim Chowdhury",
			testutil.WithDeliveryStatus(domain.DeliveryDelivered)),
	}

	out := FormatBookingList(bookings)
	assert.Contains(t, out, "Ayesha Rahman")
	assert.Contains(t, out, "Karim Chowdhury")
	assert.Contains(t, out, "৳30,000")
	assert.Contains(t, out, "DELIVERED")
}

func TestFormatBookingInspect(t *testing.T) {
	shot := time.Date(2026, 7, 12, 0, 0, 0, 0, time.UTC)
	b := testutil.NewTestBooking("Inspect Me",
		testutil.WithAmounts(85000, 85000),
		testutil.WithShootDone(shot),
		testutil.WithCompletedTasks(3),
	)
	b.EditingProgress = 50
	b.DeliveryLink = "https://drive.example/final"

	out := FormatBookingInspect(b)
	assert.Contains(t, out, "INSPECT ME")
	assert.Contains(t, out, "PAID")
	assert.Contains(t, out, "12/07/2026")
	assert.Contains(t, out, "Color Correction")
	assert.Contains(t, out, "https://drive.example/final")
	assert.Contains(t, out, " 50%")
}

func TestFormatDashboard(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	ready := testutil.NewTestBooking("Ready",
		testutil.WithShootDone(now.AddDate(0, 0, -5)),
		testutil.WithCompletedTasks(6),
	)
	ready.EditingProgress = 100

	out := FormatDashboard(priority.Rank([]*domain.Booking{ready}, now), now)
	assert.Contains(t, out, "DASHBOARD 31/08/2026")
	assert.Contains(t, out, "Ready to deliver")
	assert.Contains(t, out, "20")
}

func TestFormatDashboard_Empty(t *testing.T) {
	now := time.Now().UTC()
	out := FormatDashboard(nil, now)
	assert.Contains(t, out, "No bookings yet")
}
