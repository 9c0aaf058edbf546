// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     error
// Description: Error codes and severities for scanner, parser and tooling
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Source handling
	CodeIOFailure      Code = "IO_FAILURE"
	CodeBufferOverflow Code = "BUFFER_OVERFLOW"

	// Analysis
	CodeSyntax Code = "SYNTAX_ERROR"

	// Configuration
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeIOFailure, CodeBufferOverflow,
		CodeSyntax,
		CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeIOFailure, CodeBufferOverflow:
		return "source"
	case CodeSyntax:
		return "analysis"
	case CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem in the user's input, e.g. a syntax error
	SeverityLow Severity = iota

	// SeverityMedium indicates an error with a workaround, e.g. a bad config value
	SeverityMedium

	// SeverityHigh indicates the run cannot continue, e.g. an unreadable source
	SeverityHigh

	// SeverityCritical indicates a defect in topdown itself
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeIOFailure, CodeBufferOverflow:
		return SeverityHigh
	case CodeSyntax, CodeInvalidInput:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
