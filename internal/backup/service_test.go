package backup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/khancreations/shootsync/internal/domain"
	"github.com/khancreations/shootsync/internal/repository"
	"github.com/khancreations/shootsync/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T) (*Service, repository.BookingRepo, repository.SettingsRepo, repository.MirrorRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	bookings := repository.NewSQLiteBookingRepo(db)
	settings := repository.NewSQLiteSettingsRepo(db)
	mirror := repository.NewSQLiteMirrorRepo(db)
	svc := NewService(bookings, settings, mirror, discardLogger())
	return svc, bookings, settings, mirror
}

func TestSync_WritesSnapshotAndMarksTime(t *testing.T) {
	svc, bookings, settings, mirror := newTestService(t)
	ctx := context.Background()

	syncedAt := time.Date(2026, 8, 31, 21, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return syncedAt }

	require.NoError(t, bookings.Upsert(ctx, testutil.NewTestBooking("A")))
	require.NoError(t, bookings.Upsert(ctx, testutil.NewTestBooking("B")))

	require.NoError(t, svc.Sync(ctx))

	snap, err := mirror.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, syncedAt, snap.TakenAt.UTC())
	assert.Len(t, snap.Bookings, 2)

	s, err := settings.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, s.LastBackupDate)
	assert.Equal(t, syncedAt, s.LastBackupDate.UTC())
}

func TestSyncIfEnabled_SkipsWhenDisabled(t *testing.T) {
	svc, bookings, settings, mirror := newTestService(t)
	ctx := context.Background()

	require.NoError(t, bookings.Upsert(ctx, testutil.NewTestBooking("A")))
	svc.SyncIfEnabled(ctx)

	_, err := mirror.Latest(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	s, err := settings.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, s.LastBackupDate)
}

func TestSyncIfEnabled_RunsWhenEnabled(t *testing.T) {
	svc, bookings, settings, mirror := newTestService(t)
	ctx := context.Background()

	s, err := settings.Get(ctx)
	require.NoError(t, err)
	s.EnableCloudBackup = true
	require.NoError(t, settings.Update(ctx, s))

	require.NoError(t, bookings.Upsert(ctx, testutil.NewTestBooking("A")))
	svc.SyncIfEnabled(ctx)

	snap, err := mirror.Latest(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Bookings, 1)
}

type failingMirror struct{}

func (failingMirror) Put(context.Context, repository.Snapshot) error {
	return errors.New("remote unavailable")
}

func (failingMirror) Latest(context.Context) (*repository.Snapshot, error) {
	return nil, errors.New("remote unavailable")
}

func TestSyncIfEnabled_FailureLeavesMarkerStale(t *testing.T) {
	db := testutil.NewTestDB(t)
	bookings := repository.NewSQLiteBookingRepo(db)
	settings := repository.NewSQLiteSettingsRepo(db)
	svc := NewService(bookings, settings, failingMirror{}, discardLogger())
	ctx := context.Background()

	s, err := settings.Get(ctx)
	require.NoError(t, err)
	s.EnableCloudBackup = true
	require.NoError(t, settings.Update(ctx, s))

	require.NoError(t, bookings.Upsert(ctx, testutil.NewTestBooking("A")))

	// Must not panic or surface the mirror failure.
	svc.SyncIfEnabled(ctx)

	s, err = settings.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, s.LastBackupDate, "failed sync must not advance the backup marker")
}

func TestRestore_ReplacesCollection(t *testing.T) {
	svc, bookings, _, _ := newTestService(t)
	ctx := context.Background()

	keep := testutil.NewTestBooking("Keep", testutil.WithDeliveryStatus(domain.DeliveryInProgress))
	require.NoError(t, bookings.Upsert(ctx, keep))
	require.NoError(t, svc.Sync(ctx))

	// Diverge from the snapshot: mutate one booking, add a stray one.
	keep.ClientName = "Renamed Locally"
	require.NoError(t, bookings.Upsert(ctx, keep))
	stray := testutil.NewTestBooking("Stray")
	require.NoError(t, bookings.Upsert(ctx, stray))

	snap, err := svc.Restore(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Bookings, 1)

	list, err := bookings.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Keep", list[0].ClientName)
	assert.Equal(t, domain.DeliveryInProgress, list[0].DeliveryStatus)
}

func TestRestore_NoSnapshot(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Restore(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
