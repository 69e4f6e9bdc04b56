package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full attendance ledger to an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := out
			if path == "" {
				name := fmt.Sprintf("attendance-%s.xlsx", time.Now().Format("2006-01-02"))
				path = filepath.Join(app.Config.ExportDir, name)
			}
			rows, err := app.Exporter.ExportWorkbook(cmd.Context(), path)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("%d row(s) written to %s", rows, path)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default: <export-dir>/attendance-<date>.xlsx)")
	return cmd
}
