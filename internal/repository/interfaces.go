package repository

import (
	"context"
	"time"

	"github.com/khancreations/shootsync/internal/domain"
)

// BookingRepo is the keyed store of booking records. Upsert inserts when the
// id is absent and replaces when present; List returns insertion order.
type BookingRepo interface {
	Upsert(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.AppSettings, error)
	Update(ctx context.Context, s *domain.AppSettings) error
}

// Snapshot is one full-collection copy held by the backup mirror.
type Snapshot struct {
	TakenAt  time.Time
	Bookings []*domain.Booking
}

// MirrorRepo is the secondary store the backup mirror writes to. It is
// overwrite-only: each Put replaces the previous snapshot entirely.
type MirrorRepo interface {
	Put(ctx context.Context, snap Snapshot) error
	Latest(ctx context.Context) (*Snapshot, error)
}
