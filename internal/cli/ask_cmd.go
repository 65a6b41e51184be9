package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/khancreations/shootsync/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "ask TEXT...",
		Short: "Create a booking from a natural-language description",
		Long: `Parses a free-form booking description with the local model and creates
the booking. Nothing is saved when the text cannot be parsed into a complete
draft. Requires SHOOTSYNC_LLM_ENABLED=1 and a running Ollama instance.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Parse == nil {
				return fmt.Errorf("model integration is disabled (set SHOOTSYNC_LLM_ENABLED=1)")
			}

			ctx := context.Background()
			text := strings.Join(args, " ")

			draft, err := app.Parse.ParseBooking(ctx, text)
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Printf("Parsed draft: %s / %s at %s, %s on %s\n",
					draft.ClientName, draft.EventTitle, draft.Venue,
					formatter.Money(draft.PackageAmount), formatter.Date(draft.StartDate))
				return nil
			}

			b, err := app.Bookings.Create(ctx, *draft)
			if err != nil {
				return err
			}
			fmt.Printf("Created booking %s for %s (%s on %s)\n",
				b.DisplayID(), b.ClientName, b.EventTitle, formatter.Date(b.StartDate))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the parsed draft without saving")

	return cmd
}
