package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/khancreations/shootsync/internal/domain"
	"github.com/khancreations/shootsync/internal/invoice"
	"github.com/spf13/cobra"
)

func newInvoiceCmd(app *App) *cobra.Command {
	var theme, out string

	cmd := &cobra.Command{
		Use:   "invoice ID",
		Short: "Render the invoice for a booking",
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
			settings, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}
			if theme != "" {
				settings.InvoiceTheme = domain.InvoiceTheme(theme)
			}

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			if err := invoice.Render(w, b, settings, time.Now()); err != nil {
				return err
			}
			if out != "" {
				fmt.Printf("Invoice written to %s\n", out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "Override invoice theme (classic|minimal)")
	cmd.Flags().StringVar(&out, "out", "", "Write to a file instead of stdout")

	return cmd
}
