package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xvierd/vessel-cli/internal/adapters/export"
	"github.com/xvierd/vessel-cli/internal/adapters/tui"
	"github.com/xvierd/vessel-cli/internal/scheme"
	"github.com/xvierd/vessel-cli/internal/theme"
)

var (
	renderTheme  string
	renderFill   float64
	renderBreak  bool
	renderAt     time.Duration
	renderFormat string
	renderWidth  int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print one frame of a theme's scene",
	Long: `Render a single scene without starting the timer. ASCII output draws the
scene as terminal art; json and yaml print the shape list a renderer produced.`,
	Example: `  vessel render --theme sand --fill 0.3
  vessel render --theme rocket --break --fill 0.8 --at 1.5s
  vessel render --theme candle --format yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := themeOrSaved(cmd, renderTheme)
		if err != nil {
			return err
		}

		format, err := export.ParseFormat(renderFormat)
		if err != nil {
			return err
		}
		if renderFill < 0 || renderFill > 1 {
			return fmt.Errorf("fill must be between 0 and 1, got %v", renderFill)
		}

		width := renderWidth
		if width <= 0 {
			width = min(export.DefaultWidth, tui.TerminalWidth(export.DefaultWidth))
		}

		sc := scheme.Render(id, scheme.Frame{
			Fill:  renderFill,
			Break: renderBreak,
			Clock: renderAt,
		})
		return export.Encode(cmd.OutOrStdout(), sc, export.Options{
			Format: format,
			Width:  width,
			Clock:  renderAt,
		})
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderTheme, "theme", "t", "", "Theme to render (default: saved theme)")
	renderCmd.Flags().Float64Var(&renderFill, "fill", 1, "Fill level between 0 and 1")
	renderCmd.Flags().BoolVar(&renderBreak, "break", false, "Render the break phase")
	renderCmd.Flags().DurationVar(&renderAt, "at", 0, "Animation time to draw, e.g. 1.5s")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "ascii", "Output format: ascii, json or yaml")
	renderCmd.Flags().IntVarP(&renderWidth, "width", "w", 0, "Canvas width in cells (default: fit the terminal)")
	rootCmd.AddCommand(renderCmd)
}

// themeOrSaved resolves a --theme value, falling back to the saved theme
// when it is empty.
func themeOrSaved(cmd *cobra.Command, raw string) (theme.ID, error) {
	if raw != "" {
		t, ok := theme.Parse(raw)
		if !ok {
			return "", fmt.Errorf("unknown theme %q", raw)
		}
		return t.ID, nil
	}
	prefs, err := app.prefs.Load(cmd.Context())
	if err != nil {
		app.log.Warn("failed to load preferences", "error", err)
	}
	return theme.ID(prefs.Theme), nil
}
