package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/khancreations/shootsync/internal/db"
	"github.com/khancreations/shootsync/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo over the single app_settings row.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.AppSettings, error) {
	query := `SELECT language, invoice_theme, company_name, company_tagline,
		company_contact, enable_cloud_backup, last_backup_date
		FROM app_settings WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var s domain.AppSettings
	var langStr, themeStr string
	var backupInt int
	var lastBackupStr sql.NullString

	err := row.Scan(
		&langStr,
		&themeStr,
		&s.CompanyName,
		&s.CompanyTagline,
		&s.CompanyContact,
		&backupInt,
		&lastBackupStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("app settings: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning app settings: %w", err)
	}

	s.Language = domain.Language(langStr)
	s.InvoiceTheme = domain.InvoiceTheme(themeStr)
	s.EnableCloudBackup = intToBool(backupInt)
	s.LastBackupDate = parseNullableTime(lastBackupStr, time.RFC3339)
	return &s, nil
}

func (r *SQLiteSettingsRepo) Update(ctx context.Context, s *domain.AppSettings) error {
	query := `INSERT OR REPLACE INTO app_settings (id, language, invoice_theme,
		company_name, company_tagline, company_contact, enable_cloud_backup, last_backup_date)
		VALUES ('default', ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		string(s.Language),
		string(s.InvoiceTheme),
		s.CompanyName,
		s.CompanyTagline,
		s.CompanyContact,
		boolToInt(s.EnableCloudBackup),
		nullableTimeToString(s.LastBackupDate, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("updating app settings: %w", err)
	}
	return nil
}
