package cli

import (
	"context"
	"fmt"

	"github.com/khancreations/shootsync/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTrackCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Track production progress",
	}

	cmd.AddCommand(
		newTrackShootCmd(app),
		newTrackTaskCmd(app),
		newTrackDeliverCmd(app),
	)

	return cmd
}

func newTrackShootCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shoot ID",
		Short: "Toggle the shoot-done marker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBookingID(ctx, app, args[0])
			if err != nil {
				return err
			}
			b, err := app.Tracking.ToggleShootDone(ctx, id)
			if err != nil {
				return err
			}
			if b.ShootDoneDate != nil {
				fmt.Printf("Shoot marked done for %s on %s\n",
					b.ClientName, formatter.Date(*b.ShootDoneDate))
			} else {
				fmt.Printf("Shoot-done marker cleared for %s\n", b.ClientName)
			}
			return nil
		},
	}
}

func newTrackTaskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "task ID TASK",
		Short: "Toggle one editing checklist item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBookingID(ctx, app, args[0])
			if err != nil {
				return err
			}
			b, err := app.Tracking.ToggleTask(ctx, id, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Editing %s %s\n", b.ClientName, formatter.RenderProgress(b.EditingProgress, 20))
			return nil
		},
	}
}

func newTrackDeliverCmd(app *App) *cobra.Command {
	var collected int64
	var link string

	cmd := &cobra.Command{
		Use:   "deliver ID",
		Short: "Deliver the booking and collect the final payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveBookingID(ctx, app, args[0])
			if err != nil {
				return err
			}
			b, err := app.Tracking.Deliver(ctx, id, collected, link)
			if err != nil {
				return err
			}
			fmt.Printf("Delivered %s. Collected %s, balance %s\n",
				b.ClientName, formatter.Money(collected), formatter.Money(b.Balance()))
			return nil
		},
	}

	cmd.Flags().Int64Var(&collected, "collected", 0, "Payment collected at delivery (BDT)")
	cmd.Flags().StringVar(&link, "link", "", "Delivery link (drive/gallery URL)")

	return cmd
}
