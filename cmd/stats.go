package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/xvierd/vessel-cli/internal/domain"
	"github.com/xvierd/vessel-cli/internal/theme"
)

type statsJSON struct {
	CompletedFocusSessions int    `json:"completed_focus_sessions"`
	FocusMinutes           int    `json:"focus_minutes"`
	BreakMinutes           int    `json:"break_minutes"`
	Theme                  string `json:"theme"`
	Dark                   bool   `json:"dark"`
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completed focus sessions and current setup",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		prefs, err := app.prefs.Load(ctx)
		if err != nil {
			app.log.Warn("failed to load preferences", "error", err)
		}
		completed, err := app.prefs.CompletedFocusSessions(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(statsJSON{
				CompletedFocusSessions: completed,
				FocusMinutes:           prefs.Durations.FocusMinutes,
				BreakMinutes:           prefs.Durations.BreakMinutes,
				Theme:                  prefs.Theme,
				Dark:                   prefs.Dark,
			})
		}

		renderStats(out, prefs, completed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func renderStats(w io.Writer, prefs domain.Preferences, completed int) {
	t := theme.Lookup(theme.ID(prefs.Theme))
	accent := lipgloss.Color(t.Palette.Accent)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)

	// Header
	fmt.Fprintf(w, "  %s\n", titleStyle.Render(t.Title()))
	fmt.Fprintf(w, "  %s\n\n", dimStyle.Render(strings.Repeat("─", 40)))

	fmt.Fprintf(w, "  Completed focus sessions: %s\n", valueStyle.Render(fmt.Sprintf("%d", completed)))
	fmt.Fprintf(w, "  Focus: %s  Break: %s\n",
		valueStyle.Render(fmt.Sprintf("%dm", prefs.Durations.FocusMinutes)),
		valueStyle.Render(fmt.Sprintf("%dm", prefs.Durations.BreakMinutes)),
	)
	mode := "light"
	if prefs.Dark {
		mode = "dark"
	}
	fmt.Fprintf(w, "  %s\n\n", dimStyle.Render("Background: "+mode))

	if completed == 0 {
		fmt.Fprintf(w, "  %s\n\n", dimStyle.Render("No completed focus sessions yet."))
	}
}
