package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/khancreations/shootsync/internal/cli/formatter"
	"github.com/khancreations/shootsync/internal/priority"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show bookings ranked by what needs attention",
		RunE: func(cmd *cobra.Command, args []string) error {
			bookings, err := app.Bookings.List(context.Background())
			if err != nil {
				return err
			}
			now := time.Now().UTC()
			fmt.Printf("%s", formatter.FormatDashboard(priority.Rank(bookings, now), now))
			return nil
		},
	}
}
