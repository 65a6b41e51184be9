package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/khancreations/shootsync/internal/cli/formatter"
	"github.com/khancreations/shootsync/internal/service"
	"github.com/spf13/cobra"
)

func newBookingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booking",
		Short: "Manage bookings",
	}

	cmd.AddCommand(
		newBookingAddCmd(app),
		newBookingListCmd(app),
		newBookingInspectCmd(app),
		newBookingUpdateCmd(app),
		newBookingRemoveCmd(app),
	)

	return cmd
}

func newBookingAddCmd(app *App) *cobra.Command {
	var client, phone, groom, bride, event, venue, notes, start, end string
	var pkg, advance int64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new booking",
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := service.BookingDraft{
				ClientName:    client,
				ClientPhone:   phone,
				GroomName:     groom,
				BrideName:     bride,
				EventTitle:    event,
				Venue:         venue,
				Notes:         notes,
				PackageAmount: pkg,
				AdvanceAmount: advance,
			}

			// No --client on an attached terminal opens the form.
			if client == "" && app.IsInteractive != nil && app.IsInteractive() {
				if err := runBookingForm(&draft, &start, &end); err != nil {
					return err
				}
			}

			if start != "" {
				d, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				draft.StartDate = d
			}
			if end != "" {
				d, err := time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				draft.EndDate = d
			}

			b, err := app.Bookings.Create(context.Background(), draft)
			if err != nil {
				return err
			}

			fmt.Printf("Created booking %s for %s (%s)\n", b.DisplayID(), b.ClientName, b.EventTitle)
			return nil
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&phone, "phone", "", "Client phone")
	cmd.Flags().StringVar(&groom, "groom", "", "Groom name")
	cmd.Flags().StringVar(&bride, "bride", "", "Bride name")
	cmd.Flags().StringVar(&event, "event", "", "Event title")
	cmd.Flags().StringVar(&venue, "venue", "", "Venue")
	cmd.Flags().StringVar(&notes, "notes", "", "Package notes")
	cmd.Flags().StringVar(&start, "start", "", "Event start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Event end date (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&pkg, "package", 0, "Package amount (BDT)")
	cmd.Flags().Int64Var(&advance, "advance", 0, "Advance received (BDT)")

	return cmd
}

func newBookingListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			bookings, err := app.Bookings.List(context.Background())
			if err != nil {
				return err
			}
			if len(bookings) == 0 {
				fmt.Println("No bookings found.")
				return nil
			}
			fmt.Printf("%s", formatter.FormatBookingList(bookings))
			return nil
		},
	}
}

func newBookingInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show booking details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBookingID(ctx, app, args[0])
			if err != nil {
				return err
			}
			b, err := app.Bookings.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s", formatter.FormatBookingInspect(b))
			return nil
		},
	}
}

func newBookingUpdateCmd(app *App) *cobra.Command {
	var client, phone, groom, bride, event, venue, notes, start, end, link string
	var pkg, advance int64

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update booking fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBookingID(ctx, app, args[0])
			if err != nil {
				return err
			}
			b, err := app.Bookings.GetByID(ctx, id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("client") {
				b.ClientName = client
			}
			if flags.Changed("phone") {
				b.ClientPhone = phone
			}
			if flags.Changed("groom") {
				b.GroomName = groom
			}
			if flags.Changed("bride") {
				b.BrideName = bride
			}
			if flags.Changed("event") {
				b.EventTitle = event
			}
			if flags.Changed("venue") {
				b.Venue = venue
			}
			if flags.Changed("notes") {
				b.Notes = notes
			}
			if flags.Changed("link") {
				b.DeliveryLink = link
			}
			if flags.Changed("start") {
				d, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				b.StartDate = d
			}
			if flags.Changed("end") {
				d, err := time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				b.EndDate = d
			}
			if flags.Changed("package") {
				b.PackageAmount = pkg
			}
			if flags.Changed("advance") {
				b.AdvanceAmount = advance
			}

			if err := app.Bookings.Update(ctx, b); err != nil {
				return err
			}
			fmt.Printf("Updated booking %s\n", b.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().StringVar(&phone, "phone", "", "Client phone")
	cmd.Flags().StringVar(&groom, "groom", "", "Groom name")
	cmd.Flags().StringVar(&bride, "bride", "", "Bride name")
	cmd.Flags().StringVar(&event, "event", "", "Event title")
	cmd.Flags().StringVar(&venue, "venue", "", "Venue")
	cmd.Flags().StringVar(&notes, "notes", "", "Package notes")
	cmd.Flags().StringVar(&start, "start", "", "Event start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Event end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&link, "link", "", "Delivery link")
	cmd.Flags().Int64Var(&pkg, "package", 0, "Package amount (BDT)")
	cmd.Flags().Int64Var(&advance, "advance", 0, "Advance received (BDT)")

	return cmd
}

func newBookingRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBookingID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Bookings.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed booking %s\n", id)
			return nil
		},
	}
}
