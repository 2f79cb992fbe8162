package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/xvierd/vessel-cli/internal/theme"
)

type themeJSON struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Accent string `json:"accent"`
	Active bool   `json:"active"`
}

var themesCmd = &cobra.Command{
	Use:   "themes [query]",
	Short: "List the visual themes",
	Long:  "List every theme, or the ones that fuzzy-match query. The saved theme is marked.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var query string
		if len(args) == 1 {
			query = args[0]
		}

		prefs, err := app.prefs.Load(cmd.Context())
		if err != nil {
			app.log.Warn("failed to load preferences", "error", err)
		}

		matches := theme.Search(query)
		if len(matches) == 0 {
			return fmt.Errorf("no theme matches %q", query)
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			list := make([]themeJSON, 0, len(matches))
			for _, t := range matches {
				list = append(list, themeJSON{
					ID:     string(t.ID),
					Name:   t.Name,
					Icon:   t.Icon,
					Accent: t.Palette.Accent,
					Active: string(t.ID) == prefs.Theme,
				})
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(list)
		}

		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
		for _, t := range matches {
			marker := " "
			if string(t.ID) == prefs.Theme {
				marker = "*"
			}
			idStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Palette.Accent))
			fmt.Fprintf(out, "%s %s %s %s\n", marker, t.Icon, idStyle.Render(fmt.Sprintf("%-8s", t.ID)), dimStyle.Render(t.Name))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
