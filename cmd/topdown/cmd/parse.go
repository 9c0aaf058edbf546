// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     cmd
// Description: parse command printing the parse tree
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/topdown/internal/parser"
	"github.com/msto63/topdown/internal/scanner"
	"github.com/msto63/topdown/internal/tree"
	tderror "github.com/msto63/topdown/pkg/core/error"
)

var (
	parseFormat       string
	parseIndent       int
	parseDeclarations bool
	parseComments     bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Print the parse tree of a source file",
	Long: `Parses a source file and prints its parse tree.

Formats:
  text  - one node per line, indented by depth
  json  - nested {kind, label, lexeme, children} objects
  yaml  - the same structure as YAML

Examples:
  topdown parse examples/sum.td
  topdown parse --format json --indent 2 examples/sum.td
  topdown parse --declarations examples/typed.td`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "text", "output format (text, json, yaml)")
	parseCmd.Flags().IntVar(&parseIndent, "indent", 1, "spaces per tree level")
	parseCmd.Flags().BoolVar(&parseDeclarations, "declarations", false, "accept int/bool declarations")
	parseCmd.Flags().BoolVar(&parseComments, "comments", false, "skip // and /* */ comments")
}

func runParse(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("format") {
		current.cfg.Output.Format = parseFormat
	}
	if flags.Changed("indent") {
		current.cfg.Output.Indent = parseIndent
	}
	if flags.Changed("declarations") {
		current.cfg.Parser.Declarations = parseDeclarations
	}
	if flags.Changed("comments") {
		current.cfg.Scanner.Comments = parseComments
	}

	root, err := parseFile(current, args[0])
	if err != nil {
		return err
	}
	return writeTree(cmd.OutOrStdout(), root, current.cfg.Output.Format, current.cfg.Output.Indent)
}

// parseFile scans and parses path
func parseFile(s *session, path string) (*tree.Node, error) {
	opts, err := scannerOptions(s.cfg, s.logger)
	if err != nil {
		return nil, err
	}

	sc, err := scanner.Open(path, opts)
	if err != nil {
		return nil, err
	}
	defer sc.Close()

	return parser.New(sc, parserOptions(s.cfg, s.logger.WithField("path", path))).Parse()
}

// writeTree renders root to w in the given format
func writeTree(w io.Writer, root *tree.Node, format string, indent int) error {
	switch format {
	case "", "text":
		return tree.Printer{Indent: indent}.Print(w, root)
	case "json":
		data, err := tree.ToJSON(root, indent)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case "yaml":
		data, err := tree.ToYAML(root)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return tderror.Newf("unknown output format %q", format).
			WithCode(tderror.CodeInvalidInput).
			WithOperation("cmd.writeTree")
	}
}
