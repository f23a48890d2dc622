package main

import (
	"github.com/spf13/cobra"

	"scmc/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read IR forms interactively and echo them in canonical form",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		repl.Start(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}
