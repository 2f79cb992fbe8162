package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/vessel-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the configuration",
	Long: `Show every configuration key and its value.

The config file holds defaults. Durations, theme and dark mode chosen in the
timer are saved separately and win over it; "vessel config reset" drops them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if jsonOutput {
			values := make(map[string]string, len(config.Keys()))
			for _, key := range config.Keys() {
				value, _ := app.config.Get(key)
				values[key] = value
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(values)
		}
		for _, key := range config.Keys() {
			value, _ := app.config.Get(key)
			fmt.Fprintf(out, "%-28s %s\n", key, value)
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := app.config.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one configuration value",
	Example: `  vessel config set timer.focus_minutes 50
  vessel config set appearance.theme sand
  vessel config set notifications.sound false`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.config.Set(args[0], args[1]); err != nil {
			return err
		}
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if err := config.SaveTo(path, app.config); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		value, _ := app.config.Get(args[0])
		app.log.Info("config changed", "key", args[0], "value", value)
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], value)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget durations, theme and dark mode saved by the timer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.prefs.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved preferences cleared; config defaults apply.")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configResetCmd)
	rootCmd.AddCommand(configCmd)
}
