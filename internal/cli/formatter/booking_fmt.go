package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/khancreations/shootsync/internal/domain"
	"github.com/khancreations/shootsync/internal/priority"
)

// FormatBookingList renders the booking table for `booking list`.
func FormatBookingList(bookings []*domain.Booking) string {
	headers := []string{"ID", "CLIENT", "EVENT", "DATE", "STATUS", "BALANCE"}
	rows := make([][]string, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, []string{
			Dim(b.DisplayID()),
			b.ClientName,
			b.EventTitle,
			Date(b.StartDate),
			StatusIndicator(b.DeliveryStatus),
			Money(b.Balance()),
		})
	}
	return RenderTable(headers, rows)
}

// FormatBookingInspect renders the full detail view for one booking.
func FormatBookingInspect(b *domain.Booking) string {
	var s strings.Builder

	s.WriteString(Header(b.ClientName) + "\n")
	s.WriteString(fmt.Sprintf("%s  %s\n\n", Dim("ID"), b.DisplayID()))

	s.WriteString(fmt.Sprintf("%s   %s\n", Dim("Event"), b.EventTitle))
	if b.GroomName != "" || b.BrideName != "" {
		s.WriteString(fmt.Sprintf("%s  %s & %s\n", Dim("Couple"), b.GroomName, b.BrideName))
	}
	if b.Venue != "" {
		s.WriteString(fmt.Sprintf("%s   %s\n", Dim("Venue"), b.Venue))
	}
	if b.ClientPhone != "" {
		s.WriteString(fmt.Sprintf("%s   %s\n", Dim("Phone"), b.ClientPhone))
	}
	dates := Date(b.StartDate)
	if !b.EndDate.Equal(b.StartDate) {
		dates += " to " + Date(b.EndDate)
	}
	s.WriteString(fmt.Sprintf("%s   %s\n", Dim("Dates"), dates))
	if b.Notes != "" {
		s.WriteString(fmt.Sprintf("%s   %s\n", Dim("Notes"), b.Notes))
	}

	s.WriteString("\n" + Header("Payment") + "\n")
	s.WriteString(fmt.Sprintf("%s  %s\n", Dim("Package"), Money(b.PackageAmount)))
	s.WriteString(fmt.Sprintf("%s  %s\n", Dim("Advance"), Money(b.AdvanceAmount)))
	balance := Money(b.Balance())
	if b.IsPaid() {
		balance = StyleGreen.Render(balance + "  PAID")
	} else {
		balance = StyleYellow.Render(balance)
	}
	s.WriteString(fmt.Sprintf("%s  %s\n", Dim("Balance"), balance))
	s.WriteString(fmt.Sprintf("%s  %s\n", Dim("Last payment"), DateOrDash(b.LastPaymentDate)))

	s.WriteString("\n" + Header("Production") + "\n")
	s.WriteString(fmt.Sprintf("%s  %s\n", Dim("Status"), StatusIndicator(b.DeliveryStatus)))
	s.WriteString(fmt.Sprintf("%s  %s\n", Dim("Shoot done"), DateOrDash(b.ShootDoneDate)))
	s.WriteString(fmt.Sprintf("%s  %s\n", Dim("Editing"), RenderProgress(b.EditingProgress, 20)))
	for _, task := range b.EditingTasks {
		mark := StyleDim.Render("[ ]")
		label := task.Label
		if task.IsCompleted {
			mark = StyleGreen.Render("[x]")
		}
		s.WriteString(fmt.Sprintf("  %s %s %s\n", mark, Dim(task.ID), label))
	}
	if b.DeliveryLink != "" {
		s.WriteString(fmt.Sprintf("%s  %s\n", Dim("Delivery"), b.DeliveryLink))
	}
	if len(b.DeliveredItems) > 0 {
		s.WriteString("\n" + Header("Deliveries") + "\n")
		for _, rec := range b.DeliveredItems {
			s.WriteString(fmt.Sprintf("  %s  %s\n", Dim(Date(rec.DeliveredAt)), rec.Note))
		}
	}
	return s.String()
}

// FormatDashboard renders the priority-ranked action list.
func FormatDashboard(ranked []priority.ScoredBooking, now time.Time) string {
	var s strings.Builder
	s.WriteString(Header(fmt.Sprintf("Dashboard %s", Date(now))) + "\n")

	if len(ranked) == 0 {
		s.WriteString(Dim("No bookings yet. Add one with `shootsync booking add`.") + "\n")
		return s.String()
	}

	headers := []string{"", "CLIENT", "EVENT", "DATE", "EDITING", "REASON"}
	rows := make([][]string, 0, len(ranked))
	for _, r := range ranked {
		b := r.Booking
		style := PriorityStyle(r.Score)
		rows = append(rows, []string{
			style.Render(strconv.Itoa(r.Score)),
			b.ClientName,
			b.EventTitle,
			Date(b.StartDate),
			RenderProgress(b.EditingProgress, 10),
			style.Render(r.Reason),
		})
	}
	s.WriteString(RenderTable(headers, rows))
	return s.String()
}
