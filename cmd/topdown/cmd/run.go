// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     cmd
// Description: run command following the configured scan-only switch
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Scan or scan and parse, as configured",
	Long: `Processes a source file according to the configuration: with
output.scan_only set the token stream is printed, otherwise the parse tree
in output.format.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if current.cfg.Output.ScanOnly {
		return scanFile(cmd.OutOrStdout(), current, args[0])
	}

	root, err := parseFile(current, args[0])
	if err != nil {
		return err
	}
	return writeTree(cmd.OutOrStdout(), root, current.cfg.Output.Format, current.cfg.Output.Indent)
}
