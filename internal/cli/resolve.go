package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveBookingID turns user input into a full booking id. Exact match wins;
// otherwise a unique case-insensitive id prefix is accepted.
func resolveBookingID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("booking ID is required")
	}

	bookings, err := app.Bookings.List(ctx)
	if err != nil {
		return "", err
	}

	for _, b := range bookings {
		if b.ID == input {
			return b.ID, nil
		}
	}

	lower := strings.ToLower(input)
	var matches []string
	for _, b := range bookings {
		if strings.HasPrefix(strings.ToLower(b.ID), lower) {
			matches = append(matches, b.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("booking not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("booking ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
