// Package cmd provides the CLI commands for the Vessel application.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xvierd/vessel-cli/internal/adapters/tui"
	"github.com/xvierd/vessel-cli/internal/domain"
	"github.com/xvierd/vessel-cli/internal/ports"
	"github.com/xvierd/vessel-cli/internal/theme"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	dbPath     string
	configPath string
	jsonOutput bool

	// Timer flags
	timerTheme string
	timerFocus int
	timerBreak int
	timerDark  bool
	timerStart bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vessel",
	Short: "Vessel - a focus/break timer that drains a picture",
	Long: `Vessel is a terminal countdown timer that alternates focus and break
phases. Time left is shown as a draining or filling picture: a coffee mug,
a battery, a rocket, a candle, a plant, a glass of water or an hourglass.

Run "vessel" with no arguments to open the timer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return cleanupServices()
	},
	RunE: runTimer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the database file (default: ~/.vessel/vessel.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.vessel/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")

	addTimerFlags(rootCmd)

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("Vessel CLI\nVersion: {{.Version}}\nCommit: %s\nBuilt: %s\n", GitCommit, BuildDate))
}

func addTimerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&timerTheme, "theme", "t", "", "Theme for this run: "+strings.Join(themeIDs(), ", "))
	cmd.Flags().IntVar(&timerFocus, "focus", 0, "Focus length in minutes for this run")
	cmd.Flags().IntVar(&timerBreak, "break", 0, "Break length in minutes for this run")
	cmd.Flags().BoolVar(&timerDark, "dark", false, "Use the dark background for this run")
	cmd.Flags().BoolVarP(&timerStart, "start", "s", false, "Start counting down immediately")
}

// applyTimerFlags overlays the flags the user actually passed on prefs.
// Overrides are not persisted.
func applyTimerFlags(cmd *cobra.Command, prefs domain.Preferences) (domain.Preferences, error) {
	flags := cmd.Flags()
	if flags.Changed("theme") {
		t, ok := theme.Parse(timerTheme)
		if !ok {
			return prefs, fmt.Errorf("unknown theme %q (available: %s)", timerTheme, strings.Join(themeIDs(), ", "))
		}
		prefs.Theme = string(t.ID)
	}
	focus, brk := prefs.Durations.FocusMinutes, prefs.Durations.BreakMinutes
	if flags.Changed("focus") {
		focus = timerFocus
	}
	if flags.Changed("break") {
		brk = timerBreak
	}
	prefs.Durations = domain.NewDurations(focus, brk)
	if flags.Changed("dark") {
		prefs.Dark = timerDark
	}
	return prefs, nil
}

// runTimer opens the fullscreen timer.
func runTimer(cmd *cobra.Command, args []string) error {
	ctx := setupSignalHandler()

	prefs, err := app.prefs.Load(ctx)
	if err != nil {
		app.log.Warn("failed to load preferences, using defaults", "error", err)
	}
	prefs, err = applyTimerFlags(cmd, prefs)
	if err != nil {
		return err
	}

	completed, err := app.prefs.CompletedFocusSessions(ctx)
	if err != nil {
		app.log.Warn("failed to read completed sessions", "error", err)
	}

	svc := newTimerService(ctx, prefs.Durations)
	defer svc.Close()

	model := tui.NewModel(ctx, svc, app.prefs, tui.Options{
		Theme:     theme.ID(prefs.Theme),
		Dark:      prefs.Dark,
		FPS:       app.config.Appearance.FPS,
		Completed: completed,
	})
	var timer ports.Timer = tui.NewTimer(model)
	svc.AddObserver(timer)

	if timerStart {
		svc.Start()
	}
	app.log.Info("timer opened",
		"theme", prefs.Theme,
		"focus_minutes", prefs.Durations.FocusMinutes,
		"break_minutes", prefs.Durations.BreakMinutes,
	)

	if err := timer.Run(ctx); err != nil {
		return fmt.Errorf("timer error: %w", err)
	}
	return nil
}

func themeIDs() []string {
	ids := theme.IDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
