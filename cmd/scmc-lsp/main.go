// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"scmc/internal/lsp"
)

const lsName = "scmc" // Name identifier for the language server

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:          "scmc-lsp",
	Short:        "Run the IR trace language server over stdio",
	Version:      version,
	SilenceUsage: true,
	RunE:         runServer,
}

func main() {
	rootCmd.Flags().IntP("verbose", "v", 1, "log verbosity (0 = errors only)")
	rootCmd.Flags().String("log", "", "log file (default stderr)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	verbosity, err := cmd.Flags().GetInt("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	logPath, err := cmd.Flags().GetString("log")
	if err != nil {
		return fmt.Errorf("failed to get log flag: %w", err)
	}

	// stdout carries the protocol, so logs go to stderr unless a file is named
	if logPath == "" {
		commonlog.Configure(verbosity, nil)
	} else {
		commonlog.Configure(verbosity, &logPath)
	}

	h := lsp.NewHandler()
	handler := protocol.Handler{
		Initialize:                     h.Initialize,
		Initialized:                    h.Initialized,
		Shutdown:                       h.Shutdown,
		SetTrace:                       h.SetTrace,
		TextDocumentDidOpen:            h.TextDocumentDidOpen,
		TextDocumentDidClose:           h.TextDocumentDidClose,
		TextDocumentDidChange:          h.TextDocumentDidChange,
		TextDocumentSemanticTokensFull: h.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	commonlog.GetLogger("scmc.lsp").Info("starting scmc LSP server")
	if err := s.RunStdio(); err != nil {
		return fmt.Errorf("error running LSP server: %w", err)
	}
	return nil
}
