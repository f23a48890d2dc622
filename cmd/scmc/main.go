// SPDX-License-Identifier: Apache-2.0
package main

import (
	goerrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"scmc/internal/config"
)

// errReported marks failures whose diagnostics were already printed.
var errReported = goerrors.New("errors reported")

var rootCmd = &cobra.Command{
	Use:   "scmc",
	Short: "Inspect compiler IR trace dumps",
	Long: `scmc checks and normalizes the textual IR dumps written between compiler
passes, and previews how identifiers are mangled into assembly labels.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var cfg config.Config

func main() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(labelsCmd)
	rootCmd.AddCommand(replCmd)

	rootCmd.PersistentFlags().String("config", config.DefaultPath, "path to scmc.toml")
	rootCmd.PersistentFlags().String("color", config.ColorAuto, "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		if !goerrors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		}
		os.Exit(1)
	}
}

// setup loads the configuration and applies the color mode before any
// subcommand runs. Flags override the file.
func setup(cmd *cobra.Command, args []string) error {
	flags := cmd.Root().PersistentFlags()

	path, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err = config.Load(path, flags.Changed("config"))
	if err != nil {
		return err
	}

	if flags.Changed("color") {
		mode, err := flags.GetString("color")
		if err != nil {
			return fmt.Errorf("failed to get color flag: %w", err)
		}
		if err := config.ValidateColor(mode); err != nil {
			return fmt.Errorf("--color: %w", err)
		}
		cfg.Check.Color = mode
	}
	color.NoColor = !config.UseColor(cfg.Check.Color, os.Stdout)
	return nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
