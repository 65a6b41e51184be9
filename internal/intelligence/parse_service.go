// Package intelligence turns free-form booking descriptions into structured
// drafts using the local model. It never persists anything itself: a failed
// parse returns an error and the caller creates nothing.
package intelligence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/khancreations/shootsync/internal/llm"
	"github.com/khancreations/shootsync/internal/service"
)

// ErrParseUnavailable wraps model-side failures so callers can distinguish
// "the model is down" from "the text had no usable booking".
var ErrParseUnavailable = errors.New("booking parse unavailable")

// draftPayload is the JSON shape the model is asked to produce.
type draftPayload struct {
	ClientName    string `json:"clientName"`
	ClientPhone   string `json:"clientPhone"`
	GroomName     string `json:"groomName"`
	BrideName     string `json:"brideName"`
	EventTitle    string `json:"eventTitle"`
	Venue         string `json:"venue"`
	Notes         string `json:"notes"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	PackageAmount int64  `json:"packageAmount"`
	AdvanceAmount int64  `json:"advanceAmount"`
}

type ParseService struct {
	client llm.Client
}

func NewParseService(client llm.Client) *ParseService {
	return &ParseService{client: client}
}

// ParseBooking extracts a booking draft from natural-language text. The draft
// must carry a client name, event title, start date, and a positive package
// amount; anything less is rejected.
func (s *ParseService) ParseBooking(ctx context.Context, text string) (*service.BookingDraft, error) {
	now := time.Now().UTC()

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		SystemPrompt: parseSystemPrompt,
		UserPrompt:   buildParsePrompt(text, now),
		Temperature:  0.1,
		MaxTokens:    512,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseUnavailable, err)
	}

	payload, err := llm.ExtractJSON(resp.Text, validateDraft)
	if err != nil {
		return nil, err
	}

	start, err := time.Parse("2006-01-02", payload.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: bad startDate %q", llm.ErrInvalidOutput, payload.StartDate)
	}
	var end time.Time
	if payload.EndDate != "" {
		end, err = time.Parse("2006-01-02", payload.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: bad endDate %q", llm.ErrInvalidOutput, payload.EndDate)
		}
	}

	return &service.BookingDraft{
		ClientName:    payload.ClientName,
		ClientPhone:   payload.ClientPhone,
		GroomName:     payload.GroomName,
		BrideName:     payload.BrideName,
		EventTitle:    payload.EventTitle,
		Venue:         payload.Venue,
		Notes:         payload.Notes,
		StartDate:     start,
		EndDate:       end,
		PackageAmount: payload.PackageAmount,
		AdvanceAmount: payload.AdvanceAmount,
	}, nil
}

func validateDraft(p draftPayload) error {
	if p.ClientName == "" {
		return errors.New("clientName is required")
	}
	if p.EventTitle == "" {
		return errors.New("eventTitle is required")
	}
	if p.StartDate == "" {
		return errors.New("startDate is required")
	}
	if p.PackageAmount <= 0 {
		return errors.New("packageAmount must be positive")
	}
	if p.AdvanceAmount < 0 {
		return errors.New("advanceAmount cannot be negative")
	}
	return nil
}
