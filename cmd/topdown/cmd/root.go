// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     cmd
// Description: Root command, global flags and error presentation
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/topdown/pkg/core/config"
	tderror "github.com/msto63/topdown/pkg/core/error"
	tdlog "github.com/msto63/topdown/pkg/core/log"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
	colorOut  bool
)

// session is the per-run state prepared before every command
type session struct {
	cfg    *config.Config
	logger *tdlog.Logger
	runID  string
	color  bool
}

var current *session

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#EF4444")).
	Bold(true)

var rootCmd = &cobra.Command{
	Use:   "topdown",
	Short: "topdown - LL(1) predictive parser",
	Long: `topdown scans and parses programs of a small imperative language
with a predictive recursive-descent parser and prints the parse tree.

Commands:
  scan     - print the token stream
  parse    - print the parse tree (text, json or yaml)
  run      - scan only or scan and parse, as configured
  view     - browse tokens and tree in the terminal
  version  - print build information`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepareSession,
}

// Execute runs the CLI and presents a failure as one line on stderr
func Execute() error {
	return execute(rootCmd)
}

func execute(root *cobra.Command) error {
	current = nil
	err := root.Execute()
	if err != nil {
		if current != nil {
			current.logger.LogError(err)
		}
		printError(root.ErrOrStderr(), err)
		return err
	}

	if current != nil {
		current.logger.Info("run completed")
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, TOML or YAML (default: $TOPDOWN_CONFIG or ./configs/topdown.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json")
	rootCmd.PersistentFlags().BoolVar(&colorOut, "color", false, "color the error line")
}

// prepareSession loads the configuration and builds the run logger
func prepareSession(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if verbose {
		cfg.General.LogLevel = "debug"
	}
	if cmd.Flags().Changed("log-format") {
		cfg.General.LogFormat = logFormat
	}
	if cmd.Flags().Changed("color") {
		cfg.Output.Color = colorOut
	}

	runID := uuid.NewString()
	logger, err := newLogger(cfg, cmd.ErrOrStderr(), runID)
	if err != nil {
		return err
	}
	tdlog.SetDefault(logger)

	current = &session{cfg: cfg, logger: logger, runID: runID, color: cfg.Output.Color}

	logger.Info("run started", tdlog.Fields{
		"command": cmd.Name(),
		"args":    args,
	})
	return nil
}

// formatError renders err as the single line shown to the user
func formatError(err error) string {
	if tderror.HasCode(err, tderror.CodeSyntax) {
		return "Parse error: " + err.Error()
	}
	return "Error: " + err.Error()
}

func printError(w io.Writer, err error) {
	line := formatError(err)
	if current != nil && current.color {
		line = errorStyle.Render(line)
	}
	fmt.Fprintln(w, line)
}
