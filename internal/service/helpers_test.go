package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/khancreations/shootsync/internal/backup"
	"github.com/khancreations/shootsync/internal/domain"
	"github.com/khancreations/shootsync/internal/repository"
	"github.com/khancreations/shootsync/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	bookings repository.BookingRepo
	settings repository.SettingsRepo
	mirror   repository.MirrorRepo
	booking  BookingService
	tracking TrackingService
	appCfg   SettingsService
	backup   *backup.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	bookings := repository.NewSQLiteBookingRepo(database)
	settings := repository.NewSQLiteSettingsRepo(database)
	mirror := repository.NewSQLiteMirrorRepo(database)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	backupSvc := backup.NewService(bookings, settings, mirror, logger)

	return &testEnv{
		bookings: bookings,
		settings: settings,
		mirror:   mirror,
		booking:  NewBookingService(bookings, uow, backupSvc),
		tracking: NewTrackingService(bookings, uow, backupSvc),
		appCfg:   NewSettingsService(settings),
		backup:   backupSvc,
	}
}

// createBooking persists a minimal booking and returns it.
func (e *testEnv) createBooking(t *testing.T, clientName string) *domain.Booking {
	t.Helper()
	b, err := e.booking.Create(context.Background(), BookingDraft{ClientName: clientName})
	require.NoError(t, err)
	return b
}

// shootDone flips the shoot-done marker so the checklist unlocks.
func (e *testEnv) shootDone(t *testing.T, bookingID string) *domain.Booking {
	t.Helper()
	b, err := e.tracking.ToggleShootDone(context.Background(), bookingID)
	require.NoError(t, err)
	return b
}
