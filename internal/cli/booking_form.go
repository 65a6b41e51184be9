package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/khancreations/shootsync/internal/service"
)

// runBookingForm collects a booking draft interactively. Amounts and dates
// are edited as text and validated in place; parsed values land in the draft.
func runBookingForm(draft *service.BookingDraft, start, end *string) error {
	pkgStr := ""
	advStr := ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Client name").
				Value(&draft.ClientName).
				Validate(requiredField("client name")),
			huh.NewInput().
				Title("Client phone").
				Placeholder("+8801XXXXXXXXX").
				Value(&draft.ClientPhone),
			huh.NewInput().
				Title("Event title").
				Placeholder("Wedding Reception").
				Value(&draft.EventTitle),
			huh.NewInput().
				Title("Venue").
				Value(&draft.Venue),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Groom name").
				Value(&draft.GroomName),
			huh.NewInput().
				Title("Bride name").
				Value(&draft.BrideName),
			huh.NewInput().
				Title("Start date (YYYY-MM-DD, blank for today)").
				Placeholder("2026-12-18").
				Value(start).
				Validate(optionalDate),
			huh.NewInput().
				Title("End date (YYYY-MM-DD, blank for start date)").
				Value(end).
				Validate(optionalDate),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Package amount (BDT)").
				Placeholder("50000").
				Value(&pkgStr).
				Validate(optionalAmount),
			huh.NewInput().
				Title("Advance received (BDT)").
				Value(&advStr).
				Validate(optionalAmount),
			huh.NewText().
				Title("Notes").
				Placeholder("Photography & Cinematography").
				Value(&draft.Notes),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return fmt.Errorf("booking form: %w", err)
	}

	if pkgStr != "" {
		draft.PackageAmount, _ = strconv.ParseInt(pkgStr, 10, 64)
	}
	if advStr != "" {
		draft.AdvanceAmount, _ = strconv.ParseInt(advStr, 10, 64)
	}
	return nil
}

func requiredField(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func optionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func optionalAmount(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return fmt.Errorf("enter a non-negative whole number")
	}
	return nil
}
