package invoice

import (
	"bytes"
	"testing"
	"time"

	"github.com/khancreations/shootsync/internal/domain"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var renderedAt = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func testSettings(theme domain.InvoiceTheme) *domain.AppSettings {
	return &domain.AppSettings{
		Language:       domain.LangEnglish,
		InvoiceTheme:   theme,
		CompanyName:    "Khan's Creations",
		CompanyTagline: "Photography & Cinematography",
		CompanyContact: "hello@khanscreations.example | +880 1712 000000",
	}
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRender_ClassicUnpaid(t *testing.T) {
	b := &domain.Booking{
		ID:            "3f2a91d0-5d1c-4b8e-9f2a-000000000001",
		ClientName:    "Ayesha Rahman",
		ClientPhone:   "+8801712345678",
		EventTitle:    "Wedding Reception",
		Venue:         "Gulshan Club",
		Notes:         "Drone coverage included",
		StartDate:     time.Date(2026, 12, 18, 0, 0, 0, 0, time.UTC),
		PackageAmount: 85000,
		AdvanceAmount: 25000,
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, b, testSettings(domain.InvoiceClassic), renderedAt))
	newGoldie(t).Assert(t, "classic_unpaid", buf.Bytes())
}

func TestRender_ClassicPaid(t *testing.T) {
	b := &domain.Booking{
		ID:            "9b1de0aa-7c44-4f00-8e21-000000000002",
		ClientName:    "Karim Chowdhury",
		EventTitle:    "Holud",
		StartDate:     time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		PackageAmount: 50000,
		AdvanceAmount: 50000,
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, b, testSettings(domain.InvoiceClassic), renderedAt))
	newGoldie(t).Assert(t, "classic_paid", buf.Bytes())
}

func TestRender_Minimal(t *testing.T) {
	b := &domain.Booking{
		ID:            "3f2a91d0-5d1c-4b8e-9f2a-000000000001",
		ClientName:    "Ayesha Rahman",
		EventTitle:    "Wedding Reception",
		StartDate:     time.Date(2026, 12, 18, 0, 0, 0, 0, time.UTC),
		PackageAmount: 85000,
		AdvanceAmount: 25000,
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, b, testSettings(domain.InvoiceMinimal), renderedAt))
	newGoldie(t).Assert(t, "minimal", buf.Bytes())
}

func TestRender_OverpaidClampsBalance(t *testing.T) {
	b := &domain.Booking{
		ID:            "abc123",
		ClientName:    "Overpaid",
		EventTitle:    "Portrait Session",
		StartDate:     renderedAt,
		PackageAmount: 10000,
		AdvanceAmount: 15000,
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, b, testSettings(domain.InvoiceMinimal), renderedAt))
	out := buf.String()
	assert.Contains(t, out, "Balance   BDT 0")
	assert.Contains(t, out, "Status    PAID")
	assert.Contains(t, out, "Invoice #ABC123")
}

func TestRender_UnknownTheme(t *testing.T) {
	settings := testSettings("neon")
	var buf bytes.Buffer
	err := Render(&buf, &domain.Booking{ID: "x"}, settings, renderedAt)
	assert.Error(t, err)
}

func TestRender_DoesNotMutateBooking(t *testing.T) {
	b := &domain.Booking{
		ID:            "3f2a91d0",
		ClientName:    "Untouched",
		EventTitle:    "Wedding",
		StartDate:     renderedAt,
		PackageAmount: 50000,
		AdvanceAmount: 20000,
	}
	before := *b

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, b, testSettings(domain.InvoiceClassic), renderedAt))
	assert.Equal(t, before, *b)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{85000, "85,000"},
		{1250000, "1,250,000"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAmount(tt.in))
	}
}
