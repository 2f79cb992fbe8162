package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/vessel-cli/internal/adapters/export"
)

var (
	exportTheme  string
	exportDark   bool
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a theme's scenes as a PDF contact sheet",
	Long: `Draw a theme at several fill levels, one row for focus and one for
break, on a single PDF page. Use --output - to write to stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := themeOrSaved(cmd, exportTheme)
		if err != nil {
			return err
		}

		path := exportOutput
		if path == "" {
			path = fmt.Sprintf("vessel-%s.pdf", id)
		}

		var w io.Writer = cmd.OutOrStdout()
		if path != "-" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			defer f.Close()
			w = f
		}

		if err := export.ContactSheet(w, id, exportDark); err != nil {
			return err
		}
		app.log.Info("contact sheet exported", "theme", id, "path", path)
		if path != "-" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportTheme, "theme", "t", "", "Theme to export (default: saved theme)")
	exportCmd.Flags().BoolVar(&exportDark, "dark", false, "Use the dark backgrounds")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: vessel-<theme>.pdf)")
	rootCmd.AddCommand(exportCmd)
}
