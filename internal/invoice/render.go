// Package invoice renders printable invoices for a booking. Rendering is
// read-only: the booking and settings are never mutated.
package invoice

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/khancreations/shootsync/internal/domain"
)

// view is the flattened data handed to the invoice templates.
type view struct {
	CompanyName    string
	CompanyTagline string
	CompanyContact string
	Number         string
	Date           string
	ClientName     string
	ClientPhone    string
	Venue          string
	EventTitle     string
	EventDate      string
	Description    string
	Package        string
	Advance        string
	Balance        string
	Paid           bool
}

var templates = template.Must(template.New("invoice").
	Funcs(template.FuncMap{"upper": strings.ToUpper}).
	Parse(classicTemplate))

func init() {
	template.Must(templates.New(string(domain.InvoiceMinimal)).Parse(minimalTemplate))
}

// Render writes the invoice for b to w using the theme from settings.
// The invoice number is the first six characters of the booking id.
func Render(w io.Writer, b *domain.Booking, settings *domain.AppSettings, now time.Time) error {
	theme := settings.InvoiceTheme
	switch theme {
	case domain.InvoiceClassic, domain.InvoiceMinimal:
	default:
		return fmt.Errorf("unknown invoice theme %q", theme)
	}

	description := b.Notes
	if description == "" {
		description = "Standard Package Coverage"
	}

	v := view{
		CompanyName:    settings.CompanyName,
		CompanyTagline: settings.CompanyTagline,
		CompanyContact: settings.CompanyContact,
		Number:         invoiceNumber(b.ID),
		Date:           now.Format("02/01/2006"),
		ClientName:     b.ClientName,
		ClientPhone:    b.ClientPhone,
		Venue:          b.Venue,
		EventTitle:     b.EventTitle,
		EventDate:      b.StartDate.Format("02/01/2006"),
		Description:    description,
		Package:        formatAmount(b.PackageAmount),
		Advance:        formatAmount(b.AdvanceAmount),
		Balance:        formatAmount(b.Balance()),
		Paid:           b.IsPaid(),
	}

	name := "invoice"
	if theme == domain.InvoiceMinimal {
		name = string(domain.InvoiceMinimal)
	}
	if err := templates.ExecuteTemplate(w, name, v); err != nil {
		return fmt.Errorf("rendering invoice: %w", err)
	}
	return nil
}

func invoiceNumber(id string) string {
	if len(id) > 6 {
		id = id[:6]
	}
	return strings.ToUpper(id)
}

// formatAmount groups digits by thousands: 85000 -> "85,000".
func formatAmount(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
