package service

import (
	"context"
	"fmt"
	"time"

	"github.com/khancreations/shootsync/internal/db"
	"github.com/khancreations/shootsync/internal/domain"
	"github.com/khancreations/shootsync/internal/lifecycle"
	"github.com/khancreations/shootsync/internal/repository"
)

type bookingService struct {
	bookings repository.BookingRepo
	uow      db.UnitOfWork
	backup   BackupTrigger
}

func NewBookingService(bookings repository.BookingRepo, uow db.UnitOfWork, backup BackupTrigger) BookingService {
	return &bookingService{bookings: bookings, uow: uow, backup: backup}
}

func (s *bookingService) Create(ctx context.Context, draft BookingDraft) (*domain.Booking, error) {
	if draft.ClientName == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrValidation)
	}
	if draft.PackageAmount < 0 || draft.AdvanceAmount < 0 {
		return nil, fmt.Errorf("%w: amounts cannot be negative", ErrValidation)
	}

	b := NewBookingFromDraft(draft, time.Now().UTC())
	lifecycle.NormalizeDates(b)

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteBookingRepo(tx).Upsert(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	s.backup.SyncIfEnabled(ctx)
	return b, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *bookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *bookingService) Update(ctx context.Context, b *domain.Booking) error {
	if b.ClientName == "" {
		return fmt.Errorf("%w: client name is required", ErrValidation)
	}
	if b.PackageAmount < 0 || b.AdvanceAmount < 0 {
		return fmt.Errorf("%w: amounts cannot be negative", ErrValidation)
	}
	lifecycle.NormalizeDates(b)
	// Progress is derived from the checklist; whatever the caller set is ignored.
	b.EditingProgress = lifecycle.Progress(b.EditingTasks)

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBookings := repository.NewSQLiteBookingRepo(tx)
		// Existence check keeps Update from silently creating records.
		if _, err := txBookings.GetByID(ctx, b.ID); err != nil {
			return err
		}
		return txBookings.Upsert(ctx, b)
	})
	if err != nil {
		return err
	}
	s.backup.SyncIfEnabled(ctx)
	return nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	s.backup.SyncIfEnabled(ctx)
	return nil
}
