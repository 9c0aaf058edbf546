// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     cmd
// Description: Translation of configuration into component options
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package cmd

import (
	"io"

	"github.com/msto63/topdown/internal/parser"
	"github.com/msto63/topdown/internal/scanner"
	"github.com/msto63/topdown/pkg/core/config"
	tderror "github.com/msto63/topdown/pkg/core/error"
	tdlog "github.com/msto63/topdown/pkg/core/log"
)

// newLogger builds the run logger from the general section
func newLogger(cfg *config.Config, w io.Writer, runID string) (*tdlog.Logger, error) {
	level, err := tdlog.ParseLevel(cfg.General.LogLevel)
	if err != nil {
		return nil, tderror.Wrap(err, "invalid log level").
			WithCode(tderror.CodeInvalidConfig).
			WithDetail("key", "general.log_level")
	}
	format, err := tdlog.ParseFormat(cfg.General.LogFormat)
	if err != nil {
		return nil, tderror.Wrap(err, "invalid log format").
			WithCode(tderror.CodeInvalidConfig).
			WithDetail("key", "general.log_format")
	}

	return tdlog.NewWithConfig(tdlog.Config{
		Level:  level,
		Format: format,
		Output: w,
		Name:   "topdown",
	}).WithCorrelationID(runID), nil
}

// scannerOptions maps the scanner section onto scanner.Options
func scannerOptions(cfg *config.Config, logger *tdlog.Logger) (scanner.Options, error) {
	ending, err := scanner.ParseLineEnding(cfg.Scanner.LineEnding)
	if err != nil {
		return scanner.Options{}, err
	}
	return scanner.Options{
		LineEnding: ending,
		MaxLexeme:  cfg.Scanner.MaxLexeme,
		Comments:   cfg.Scanner.Comments,
		Logger:     logger,
	}, nil
}

// parserOptions maps the parser section onto parser.Options
func parserOptions(cfg *config.Config, logger *tdlog.Logger) parser.Options {
	return parser.Options{
		AllowDeclarations: cfg.Parser.Declarations,
		Logger:            logger,
	}
}
