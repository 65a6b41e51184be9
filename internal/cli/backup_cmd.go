package cli

import (
	"context"
	"fmt"

	"github.com/khancreations/shootsync/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBackupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Mirror bookings to the backup store",
	}

	cmd.AddCommand(
		newBackupNowCmd(app),
		newBackupRestoreCmd(app),
	)

	return cmd
}

func newBackupNowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Write a backup snapshot immediately",
		Long:  "Runs a sync regardless of the enable_cloud_backup setting.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Backup.Sync(context.Background()); err != nil {
				return err
			}
			fmt.Println("Backup snapshot written.")
			return nil
		},
	}
}

func newBackupRestoreCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Replace all bookings with the latest backup snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("restore overwrites current bookings; rerun with --yes to confirm")
			}
			snap, err := app.Backup.Restore(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Restored %d bookings from snapshot taken %s\n",
				len(snap.Bookings), formatter.Date(snap.TakenAt))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the restore")

	return cmd
}
