package config

import (
	"os"
	"path/filepath"
	"testing"

	tderror "github.com/msto63/topdown/pkg/core/error"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "error" {
		t.Errorf("General.LogLevel = %v, want error", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text", cfg.General.LogFormat)
	}
	if cfg.Scanner.LineEnding != "crlf" {
		t.Errorf("Scanner.LineEnding = %v, want crlf", cfg.Scanner.LineEnding)
	}
	if cfg.Scanner.MaxLexeme != 256 {
		t.Errorf("Scanner.MaxLexeme = %v, want 256", cfg.Scanner.MaxLexeme)
	}
	if cfg.Scanner.Comments {
		t.Error("Scanner.Comments should default to false")
	}
	if cfg.Parser.Declarations {
		t.Error("Parser.Declarations should default to false")
	}
	if cfg.Output.Format != "text" || cfg.Output.Indent != 1 || cfg.Output.ScanOnly {
		t.Errorf("Output = %+v, want text/1/false", cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topdown.toml")
	content := `
[general]
log_level = "debug"

[scanner]
line_ending = "LF"
max_lexeme = 64
comments = true

[parser]
declarations = true

[output]
format = "yaml"
indent = 2
scan_only = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want default text", cfg.General.LogFormat)
	}
	if cfg.Scanner.LineEnding != "lf" {
		t.Errorf("Scanner.LineEnding = %v, want lf", cfg.Scanner.LineEnding)
	}
	if cfg.Scanner.MaxLexeme != 64 || !cfg.Scanner.Comments {
		t.Errorf("Scanner = %+v", cfg.Scanner)
	}
	if !cfg.Parser.Declarations {
		t.Error("Parser.Declarations = false, want true")
	}
	if cfg.Output.Format != "yaml" || cfg.Output.Indent != 2 || !cfg.Output.ScanOnly {
		t.Errorf("Output = %+v", cfg.Output)
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topdown.yaml")
	content := "parser:\n  declarations: true\noutput:\n  format: json\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Parser.Declarations {
		t.Error("Parser.Declarations = false, want true")
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %v, want json", cfg.Output.Format)
	}
	if cfg.Scanner.MaxLexeme != 256 {
		t.Errorf("Scanner.MaxLexeme = %v, want default 256", cfg.Scanner.MaxLexeme)
	}
}

func TestLoadFromBytes_Empty(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			cfg, err := LoadFromBytes(nil, format)
			if err != nil {
				t.Fatalf("LoadFromBytes() error = %v", err)
			}
			if cfg.Output.Indent != 1 {
				t.Errorf("Output.Indent = %v, want 1", cfg.Output.Indent)
			}
		})
	}
}

func TestLoadFromBytes_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
	}{
		{"bad toml", "[scanner\nmax_lexeme = 1", FormatTOML},
		{"unknown toml key", "[scanner]\nmax_lexem = 10\n", FormatTOML},
		{"unknown yaml key", "scanner:\n  max_lexem: 10\n", FormatYAML},
		{"bad line ending", "[scanner]\nline_ending = \"cr\"\n", FormatTOML},
		{"negative lexeme limit", "[scanner]\nmax_lexeme = -4\n", FormatTOML},
		{"bad output format", "[output]\nformat = \"xml\"\n", FormatTOML},
		{"indent too wide", "[output]\nindent = 40\n", FormatTOML},
		{"bad log level", "[general]\nlog_level = \"loud\"\n", FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tt.content), tt.format)
			if err == nil {
				t.Fatal("LoadFromBytes() error = nil, want error")
			}
			if !tderror.HasCode(err, tderror.CodeInvalidConfig) {
				t.Errorf("error code = %v, want %v", tderror.GetCode(err), tderror.CodeInvalidConfig)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !tderror.HasCode(err, tderror.CodeMissingConfig) {
		t.Errorf("error code = %v, want %v", tderror.GetCode(err), tderror.CodeMissingConfig)
	}
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("[output]\nindent = 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvConfigPath, path)
	t.Setenv("TOPDOWN_LOG_LEVEL", "DEBUG")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Output.Indent != 4 {
		t.Errorf("Output.Indent = %v, want 4", cfg.Output.Indent)
	}
	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"a.toml": FormatTOML,
		"a.yaml": FormatYAML,
		"a.YML":  FormatYAML,
		"a.conf": FormatTOML,
	}
	for path, want := range tests {
		if got := detectFormat(path); got != want {
			t.Errorf("detectFormat(%q) = %v, want %v", path, got, want)
		}
	}
}
