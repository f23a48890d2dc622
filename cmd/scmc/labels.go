package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"scmc/internal/asm"
	"scmc/internal/errors"
)

var labelsCmd = &cobra.Command{
	Use:   "labels [flags] name...",
	Short: "Show the assembly label each identifier mangles to",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLabels,
}

func init() {
	labelsCmd.Flags().Bool("strict", false, "treat label collisions as errors (overrides [labels].strict)")
}

func runLabels(cmd *cobra.Command, args []string) error {
	strict := cfg.Labels.Strict
	if cmd.Flags().Changed("strict") {
		var err error
		if strict, err = cmd.Flags().GetBool("strict"); err != nil {
			return fmt.Errorf("failed to get strict flag: %w", err)
		}
	}

	if reportLabels(cmd.OutOrStdout(), args, strict) && strict {
		return errReported
	}
	return nil
}

// reportLabels prints the mangled form of every name followed by one
// diagnostic per collision, and reports whether any collision was found.
func reportLabels(w io.Writer, names []string, strict bool) bool {
	for _, name := range names {
		fmt.Fprintf(w, "%s -> %s\n", name, asm.Mangle(name))
	}

	collisions := asm.CheckNames(names)
	reporter := errors.NewErrorReporter("", "")
	for _, c := range collisions {
		fmt.Fprint(w, reporter.FormatError(errors.LabelCollision(c.Label, c.Names, strict)))
	}
	return len(collisions) > 0
}
