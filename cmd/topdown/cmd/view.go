// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     cmd
// Description: view command starting the terminal viewer
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/topdown/internal/parser"
	"github.com/msto63/topdown/internal/scanner"
	"github.com/msto63/topdown/internal/token"
	"github.com/msto63/topdown/internal/tui/treeview"
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Browse tokens and parse tree in the terminal",
	Long: `Starts the interactive viewer with a Tokens tab and a Tree tab.

Keys:
  tab         switch tab
  ↑/↓ PgUp/PgDn  scroll
  g / G       top / bottom
  q, Ctrl+C   quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadView(current, args[0])
	if err != nil {
		return err
	}
	return treeview.Run(cfg)
}

// loadView scans path once and parses the recorded tokens. Scan and parse
// failures end up in the viewer; only an unreadable file is returned.
func loadView(s *session, path string) (treeview.Config, error) {
	cfg := treeview.Config{Path: path, Indent: 2 * s.cfg.Output.Indent}

	opts, err := scannerOptions(s.cfg, s.logger)
	if err != nil {
		return cfg, err
	}
	sc, err := scanner.Open(path, opts)
	if err != nil {
		return cfg, err
	}
	defer sc.Close()

	cfg.Tokens, cfg.Err = sc.ScanAll()
	if cfg.Err != nil {
		return cfg, nil
	}

	cfg.Root, cfg.Err = parser.New(token.NewStream(cfg.Tokens), parserOptions(s.cfg, s.logger)).Parse()
	return cfg, nil
}
