package cli

import (
	"context"
	"fmt"

	"github.com/khancreations/shootsync/internal/cli/formatter"
	"github.com/khancreations/shootsync/internal/gallery"
	"github.com/spf13/cobra"
)

func newGalleryCmd(app *App) *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse the cloud media folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			browser := app.Gallery
			if demo || browser == nil {
				browser = gallery.NewDemoBrowser()
			}

			files, err := browser.ListFiles(context.Background())
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Println("No media files found.")
				return nil
			}

			rows := make([][]string, 0, len(files))
			for _, f := range files {
				rows = append(rows, []string{
					formatter.Dim(f.ID),
					f.Name,
					f.MimeType,
					f.ViewURL,
				})
			}
			fmt.Printf("%s", formatter.RenderTable([]string{"ID", "NAME", "TYPE", "LINK"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "Browse the built-in demo folder")

	return cmd
}
