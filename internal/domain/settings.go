package domain

import "time"

// AppSettings is the single application-wide settings row. Components receive
// a snapshot by value rather than reading shared mutable state.
type AppSettings struct {
	Language          Language
	InvoiceTheme      InvoiceTheme
	CompanyName       string
	CompanyTagline    string
	CompanyContact    string
	EnableCloudBackup bool
	LastBackupDate    *time.Time
}

// DefaultSettings returns the seeded settings for a fresh install.
// Cloud backup starts disabled.
func DefaultSettings() AppSettings {
	return AppSettings{
		Language:          LangEnglish,
		InvoiceTheme:      InvoiceClassic,
		CompanyName:       "Khan's Creations",
		CompanyTagline:    "Cinematography & Photography",
		CompanyContact:    "Contact: +880 1700-000000",
		EnableCloudBackup: false,
	}
}
