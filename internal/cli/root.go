package cli

import (
	"github.com/khancreations/shootsync/internal/backup"
	"github.com/khancreations/shootsync/internal/gallery"
	"github.com/khancreations/shootsync/internal/intelligence"
	"github.com/khancreations/shootsync/internal/service"
	"github.com/spf13/cobra"
)

// App holds the service references the CLI commands run against.
type App struct {
	Bookings service.BookingService
	Tracking service.TrackingService
	Settings service.SettingsService
	Backup   *backup.Service

	// Parse is nil when the model integration is disabled.
	Parse   *intelligence.ParseService
	Gallery gallery.Browser

	// IsInteractive reports whether stdin is attached to a terminal; the
	// booking form only opens when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "shootsync" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "shootsync",
		Short: "Booking tracker for a wedding photography studio",
	}

	root.AddCommand(
		newBookingCmd(app),
		newTrackCmd(app),
		newDashboardCmd(app),
		newAskCmd(app),
		newBackupCmd(app),
		newSettingsCmd(app),
		newInvoiceCmd(app),
		newGalleryCmd(app),
	)

	return root
}
