package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scmc/grammar"
	"scmc/internal/errors"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt file",
	Short: "Print each top-level IR form on one line",
	Long: `fmt reprints an IR trace file in canonical form: one top-level form per
line, single spaces between items, comments dropped. Two dumps that differ only
in layout format identically.`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func runFmt(cmd *cobra.Command, args []string) error {
	path := args[0]

	prog, source, err := grammar.ParseFile(path)
	if isReadError(err) {
		return err
	}
	if err != nil {
		reporter := errors.NewErrorReporter(path, source)
		fmt.Fprint(cmd.ErrOrStderr(), reporter.FormatError(grammar.Diagnose(err)))
		return errReported
	}

	fmt.Fprint(cmd.OutOrStdout(), prog.String())
	return nil
}
