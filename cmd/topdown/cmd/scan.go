// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     cmd
// Description: scan command printing the token stream
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/topdown/internal/scanner"
	"github.com/msto63/topdown/internal/token"
)

var scanComments bool

var scanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "Print the token stream of a source file",
	Long: `Scans a source file and prints one token per line as
"<lexeme> : <kind>", ending with the EOF token.

Examples:
  topdown scan examples/sum.td
  topdown scan --comments examples/commented.td`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().BoolVar(&scanComments, "comments", false, "skip // and /* */ comments")
}

func runScan(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("comments") {
		current.cfg.Scanner.Comments = scanComments
	}
	return scanFile(cmd.OutOrStdout(), current, args[0])
}

// scanFile streams the tokens of path to w
func scanFile(w io.Writer, s *session, path string) error {
	opts, err := scannerOptions(s.cfg, s.logger)
	if err != nil {
		return err
	}

	sc, err := scanner.Open(path, opts)
	if err != nil {
		return err
	}
	defer sc.Close()

	timer := s.logger.StartTimer("scan").WithField("path", path)
	count := 0
	for {
		tok, err := sc.Next()
		if err != nil {
			timer.StopWithError(err)
			return err
		}
		fmt.Fprintln(w, tok.String())
		count++

		if tok.Kind == token.EOF {
			timer.WithField("tokens", count).WithField("lines", sc.Line()).Stop()
			return nil
		}
	}
}
