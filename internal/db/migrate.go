package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration list re-runs on every start.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS bookings (
		id                TEXT PRIMARY KEY,
		client_name       TEXT NOT NULL,
		client_phone      TEXT NOT NULL DEFAULT '',
		groom_name        TEXT NOT NULL DEFAULT '',
		bride_name        TEXT NOT NULL DEFAULT '',
		event_title       TEXT NOT NULL,
		venue             TEXT NOT NULL DEFAULT '',
		notes             TEXT NOT NULL DEFAULT '',
		start_date        TEXT NOT NULL,
		end_date          TEXT NOT NULL,
		package_amount    INTEGER NOT NULL DEFAULT 0,
		advance_amount    INTEGER NOT NULL DEFAULT 0,
		shoot_done_date   TEXT,
		editing_progress  INTEGER NOT NULL DEFAULT 0,
		delivery_status   TEXT NOT NULL DEFAULT 'pending'
		                  CHECK(delivery_status IN ('pending','in_progress','delivered')),
		delivery_link     TEXT NOT NULL DEFAULT '',
		last_payment_date TEXT,
		created_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(delivery_status)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_start ON bookings(start_date)`,

	`CREATE TABLE IF NOT EXISTS editing_tasks (
		booking_id   TEXT NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
		task_id      TEXT NOT NULL,
		label        TEXT NOT NULL,
		is_completed INTEGER NOT NULL DEFAULT 0,
		position     INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (booking_id, task_id)
	)`,

	`CREATE TABLE IF NOT EXISTS delivery_records (
		booking_id   TEXT NOT NULL REFERENCES bookings(id) ON DELETE CASCADE,
		delivered_at TEXT NOT NULL,
		note         TEXT NOT NULL DEFAULT '',
		position     INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (booking_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS app_settings (
		id                  TEXT PRIMARY KEY DEFAULT 'default',
		language            TEXT NOT NULL DEFAULT 'en',
		invoice_theme       TEXT NOT NULL DEFAULT 'classic',
		company_name        TEXT NOT NULL DEFAULT '',
		company_tagline     TEXT NOT NULL DEFAULT '',
		company_contact     TEXT NOT NULL DEFAULT '',
		enable_cloud_backup INTEGER NOT NULL DEFAULT 0,
		last_backup_date    TEXT
	)`,

	// Seed default settings row
	`INSERT OR IGNORE INTO app_settings
		(id, language, invoice_theme, company_name, company_tagline, company_contact)
		VALUES ('default', 'en', 'classic', 'Khan''s Creations',
		        'Cinematography & Photography', 'Contact: +880 1700-000000')`,

	// The backup mirror is a single overwrite-only snapshot of the whole
	// collection, stored as one JSON payload alongside its timestamp.
	`CREATE TABLE IF NOT EXISTS backup_snapshots (
		id       TEXT PRIMARY KEY DEFAULT 'latest',
		taken_at TEXT NOT NULL,
		payload  TEXT NOT NULL
	)`,
}
