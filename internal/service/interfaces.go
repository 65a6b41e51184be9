package service

import (
	"context"
	"time"

	"github.com/khancreations/shootsync/internal/domain"
)

// BookingDraft carries the fields a caller wants to set on a new booking.
// Zero-valued fields are filled with canonical defaults by the factory.
type BookingDraft struct {
	ClientName    string
	ClientPhone   string
	GroomName     string
	BrideName     string
	EventTitle    string
	Venue         string
	Notes         string
	StartDate     time.Time
	EndDate       time.Time
	PackageAmount int64
	AdvanceAmount int64
}

type BookingService interface {
	Create(ctx context.Context, draft BookingDraft) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id string) error
}

// TrackingService drives a booking through its production lifecycle. All
// transition preconditions live here; the lifecycle package stays pure.
type TrackingService interface {
	ToggleTask(ctx context.Context, bookingID, taskID string) (*domain.Booking, error)
	ToggleShootDone(ctx context.Context, bookingID string) (*domain.Booking, error)
	Deliver(ctx context.Context, bookingID string, collected int64, link string) (*domain.Booking, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.AppSettings, error)
	Update(ctx context.Context, s *domain.AppSettings) error
}

// BackupTrigger is the post-write hook the services fire after every
// successful mutation. backup.Service satisfies it.
type BackupTrigger interface {
	SyncIfEnabled(ctx context.Context)
}
