// ============================================================================
// topdown - LL(1) Predictive Parser
// ============================================================================
//
// Package:     config
// Description: TOML/YAML configuration for scanner, parser and output
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tderror "github.com/msto63/topdown/pkg/core/error"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Scanner ScannerConfig `toml:"scanner" yaml:"scanner"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ScannerConfig holds lexical analysis settings
type ScannerConfig struct {
	LineEnding string `toml:"line_ending" yaml:"line_ending"` // "crlf" or "lf"
	MaxLexeme  int    `toml:"max_lexeme" yaml:"max_lexeme"`
	Comments   bool   `toml:"comments" yaml:"comments"`
}

// ParserConfig holds syntactic analysis settings
type ParserConfig struct {
	Declarations bool `toml:"declarations" yaml:"declarations"`
}

// OutputConfig holds presentation settings
type OutputConfig struct {
	Format   string `toml:"format" yaml:"format"` // "text", "json" or "yaml"
	Indent   int    `toml:"indent" yaml:"indent"`
	ScanOnly bool   `toml:"scan_only" yaml:"scan_only"`
	Color    bool   `toml:"color" yaml:"color"`
}

// Format identifies a configuration file syntax
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// EnvConfigPath names the environment variable consulted by LoadFromEnv
const EnvConfigPath = "TOPDOWN_CONFIG"

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file; the format follows
// the extension (.yaml/.yml is YAML, everything else TOML)
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		code := tderror.CodeIOFailure
		if os.IsNotExist(err) {
			code = tderror.CodeMissingConfig
		}
		return nil, tderror.Wrap(err, "failed to read config").
			WithCode(code).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := LoadFromBytes(content, detectFormat(path))
	if err != nil {
		return nil, tderror.Wrap(err, "failed to load config "+path)
	}
	return cfg, nil
}

// LoadFromBytes parses, defaults and validates configuration content
func LoadFromBytes(content []byte, format Format) (*Config, error) {
	var cfg Config

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, tderror.Wrap(err, "YAML parse error").
				WithCode(tderror.CodeInvalidConfig).
				WithOperation("config.LoadFromBytes")
		}
	default:
		md, err := toml.Decode(string(content), &cfg)
		if err != nil {
			return nil, tderror.Wrap(err, "TOML parse error").
				WithCode(tderror.CodeInvalidConfig).
				WithOperation("config.LoadFromBytes")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, tderror.New("unknown config key "+undecoded[0].String()).
				WithCode(tderror.CodeInvalidConfig).
				WithOperation("config.LoadFromBytes")
		}
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from TOPDOWN_CONFIG or a default location.
// Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	defaultPaths := []string{
		"./configs/topdown.toml",
		"./topdown.toml",
		"./topdown.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		defaultPaths = append(defaultPaths, filepath.Join(home, ".config", "topdown", "topdown.toml"))
	}

	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	cfg := Default()
	cfg.applyEnv()
	return cfg, nil
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	invalid := func(key string, value interface{}) error {
		return tderror.Newf("invalid value %v for %s", value, key).
			WithCode(tderror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("key", key)
	}

	switch c.General.LogLevel {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return invalid("general.log_level", c.General.LogLevel)
	}

	switch c.General.LogFormat {
	case "text", "json":
	default:
		return invalid("general.log_format", c.General.LogFormat)
	}

	switch c.Scanner.LineEnding {
	case "crlf", "lf":
	default:
		return invalid("scanner.line_ending", c.Scanner.LineEnding)
	}

	if c.Scanner.MaxLexeme < 1 {
		return invalid("scanner.max_lexeme", c.Scanner.MaxLexeme)
	}

	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return invalid("output.format", c.Output.Format)
	}

	if c.Output.Indent < 1 || c.Output.Indent > 16 {
		return invalid("output.indent", c.Output.Indent)
	}

	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "error"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	c.Scanner.LineEnding = strings.ToLower(c.Scanner.LineEnding)
	if c.Scanner.LineEnding == "" {
		c.Scanner.LineEnding = "crlf"
	}
	if c.Scanner.MaxLexeme == 0 {
		c.Scanner.MaxLexeme = 256
	}

	c.Output.Format = strings.ToLower(c.Output.Format)
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Output.Indent == 0 {
		c.Output.Indent = 1
	}
}

// applyEnv lets TOPDOWN_LOG_LEVEL and TOPDOWN_LOG_FORMAT override the file
func (c *Config) applyEnv() {
	if v := os.Getenv("TOPDOWN_LOG_LEVEL"); v != "" {
		c.General.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("TOPDOWN_LOG_FORMAT"); v != "" {
		c.General.LogFormat = strings.ToLower(v)
	}
}

// detectFormat determines the configuration format from file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
