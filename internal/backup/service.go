package backup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/khancreations/shootsync/internal/repository"
)

// Service mirrors the full booking collection to a secondary store. Mirror
// writes are best-effort: a failed sync is logged and the last-backup marker
// stays stale, but the primary write that triggered it is never rolled back.
type Service struct {
	bookings repository.BookingRepo
	settings repository.SettingsRepo
	mirror   repository.MirrorRepo
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(
	bookings repository.BookingRepo,
	settings repository.SettingsRepo,
	mirror repository.MirrorRepo,
	logger *slog.Logger,
) *Service {
	return &Service{
		bookings: bookings,
		settings: settings,
		mirror:   mirror,
		logger:   logger,
		now:      time.Now,
	}
}

// SyncIfEnabled runs a sync when cloud backup is switched on in settings.
// It never returns an error: mirror trouble must not surface to the caller
// that just finished a successful primary write.
func (s *Service) SyncIfEnabled(ctx context.Context) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		s.logger.Warn("backup: could not read settings, skipping sync", "error", err)
		return
	}
	if !settings.EnableCloudBackup {
		return
	}
	if err := s.Sync(ctx); err != nil {
		s.logger.Warn("backup: sync failed, last backup is stale", "error", err)
	}
}

// Sync copies the full collection to the mirror and records the backup time.
func (s *Service) Sync(ctx context.Context) error {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return fmt.Errorf("listing bookings for backup: %w", err)
	}

	takenAt := s.now().UTC()
	if err := s.mirror.Put(ctx, repository.Snapshot{
		TakenAt:  takenAt,
		Bookings: bookings,
	}); err != nil {
		return fmt.Errorf("writing backup snapshot: %w", err)
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return fmt.Errorf("reading settings after backup: %w", err)
	}
	settings.LastBackupDate = &takenAt
	if err := s.settings.Update(ctx, settings); err != nil {
		return fmt.Errorf("recording backup time: %w", err)
	}

	s.logger.Info("backup: snapshot written", "bookings", len(bookings), "taken_at", takenAt)
	return nil
}

// Restore replaces the primary collection with the latest mirror snapshot.
// Bookings present locally but absent from the snapshot are removed.
func (s *Service) Restore(ctx context.Context) (*repository.Snapshot, error) {
	snap, err := s.mirror.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading backup snapshot: %w", err)
	}

	current, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing bookings before restore: %w", err)
	}

	restored := make(map[string]bool, len(snap.Bookings))
	for _, b := range snap.Bookings {
		if err := s.bookings.Upsert(ctx, b); err != nil {
			return nil, fmt.Errorf("restoring booking %s: %w", b.ID, err)
		}
		restored[b.ID] = true
	}
	for _, b := range current {
		if !restored[b.ID] {
			if err := s.bookings.Delete(ctx, b.ID); err != nil {
				return nil, fmt.Errorf("removing booking %s during restore: %w", b.ID, err)
			}
		}
	}

	s.logger.Info("backup: restored snapshot", "bookings", len(snap.Bookings), "taken_at", snap.TakenAt)
	return snap, nil
}
