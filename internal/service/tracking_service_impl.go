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

type trackingService struct {
	bookings repository.BookingRepo
	uow      db.UnitOfWork
	backup   BackupTrigger
}

func NewTrackingService(bookings repository.BookingRepo, uow db.UnitOfWork, backup BackupTrigger) TrackingService {
	return &trackingService{bookings: bookings, uow: uow, backup: backup}
}

func (s *trackingService) ToggleTask(ctx context.Context, bookingID, taskID string) (*domain.Booking, error) {
	var updated *domain.Booking
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBookings := repository.NewSQLiteBookingRepo(tx)
		b, err := txBookings.GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if b.ShootDoneDate == nil {
			return ErrChecklistLocked
		}
		if b.DeliveryStatus == domain.DeliveryDelivered {
			return ErrAlreadyDelivered
		}
		if !hasTask(b, taskID) {
			return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
		}
		updated = lifecycle.ToggleTask(b, taskID)
		return txBookings.Upsert(ctx, updated)
	})
	if err != nil {
		return nil, err
	}
	s.backup.SyncIfEnabled(ctx)
	return updated, nil
}

func (s *trackingService) ToggleShootDone(ctx context.Context, bookingID string) (*domain.Booking, error) {
	var updated *domain.Booking
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBookings := repository.NewSQLiteBookingRepo(tx)
		b, err := txBookings.GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		updated = lifecycle.ToggleShootDone(b, time.Now().UTC())
		return txBookings.Upsert(ctx, updated)
	})
	if err != nil {
		return nil, err
	}
	s.backup.SyncIfEnabled(ctx)
	return updated, nil
}

func (s *trackingService) Deliver(ctx context.Context, bookingID string, collected int64, link string) (*domain.Booking, error) {
	if collected < 0 {
		return nil, ErrNegativeCollected
	}

	var updated *domain.Booking
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBookings := repository.NewSQLiteBookingRepo(tx)
		b, err := txBookings.GetByID(ctx, bookingID)
		if err != nil {
			return err
		}
		if b.DeliveryStatus == domain.DeliveryDelivered {
			return ErrAlreadyDelivered
		}
		updated = lifecycle.Deliver(b, collected, link, time.Now().UTC())
		return txBookings.Upsert(ctx, updated)
	})
	if err != nil {
		return nil, err
	}
	s.backup.SyncIfEnabled(ctx)
	return updated, nil
}

func hasTask(b *domain.Booking, taskID string) bool {
	for _, t := range b.EditingTasks {
		if t.ID == taskID {
			return true
		}
	}
	return false
}
