package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	tderror "github.com/msto63/topdown/pkg/core/error"
)

func newTestLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf}), &buf
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages:\n%s", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 2 lines, got:\n%s", out)
	}
}

func TestLogger_TextFormat(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug, FormatText)
	logger = logger.WithName("parser").WithCorrelationID("run-1")
	logger.Debug("rule selected", Fields{"rule": "expr", "lookahead": "ID"})

	got := buf.String()
	if i := strings.Index(got, "[DBG]"); i > 0 {
		got = got[i:]
	}
	want := "[DBG] {parser} (run=run-1) rule selected [lookahead=ID rule=expr]\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo, FormatJSON)
	logger.WithField("file", "prog.txt").Info("parse started")

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if data["message"] != "parse started" {
		t.Errorf("message = %v", data["message"])
	}
	if data["level"] != "info" {
		t.Errorf("level = %v", data["level"])
	}
	if data["file"] != "prog.txt" {
		t.Errorf("file = %v", data["file"])
	}
}

func TestLogger_WithFieldIsImmutable(t *testing.T) {
	base, buf := newTestLogger(LevelInfo, FormatText)
	_ = base.WithField("component", "scanner")

	base.Info("plain")
	if strings.Contains(buf.String(), "component") {
		t.Errorf("WithField leaked into parent logger: %s", buf.String())
	}
}

func TestLogger_LogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  string
	}{
		{
			name:      "low severity logs as warning",
			err:       tderror.New("bad input").WithCode(tderror.CodeSyntax),
			wantLevel: "warn",
			wantCode:  "SYNTAX_ERROR",
		},
		{
			name:      "high severity logs as warning",
			err:       tderror.New("cannot open").WithCode(tderror.CodeIOFailure).WithDetail("path", "x.txt"),
			wantLevel: "warn",
			wantCode:  "IO_FAILURE",
		},
		{
			name:      "critical severity logs as error",
			err:       tderror.New("parser already used").WithCode(tderror.CodeInternal),
			wantLevel: "error",
			wantCode:  "INTERNAL",
		},
		{
			name:      "plain error",
			err:       errors.New("boom"),
			wantLevel: "warn",
			wantCode:  "UNKNOWN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			var data map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
				t.Fatalf("invalid JSON %q: %v", buf.String(), err)
			}
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
			if data["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", data["error_code"], tt.wantCode)
			}
			if data["error_category"] != tderror.Code(tt.wantCode).Category() {
				t.Errorf("error_category = %v, want %v", data["error_category"], tderror.Code(tt.wantCode).Category())
			}
		})
	}

	logger, buf := newTestLogger(LevelTrace, FormatText)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelError) {
		t.Error("Discard logger should not enable any level")
	}
	logger.Error("dropped")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("JSON"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(JSON) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug, FormatText)

	timer := logger.StartTimer("scan")
	timer.WithField("tokens", 7).Stop()
	if timer.Stop() != 0 {
		t.Error("second Stop should return 0")
	}

	out := buf.String()
	if !strings.Contains(out, "scan completed") || !strings.Contains(out, "tokens=7") {
		t.Errorf("unexpected timer output: %s", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("timer logged more than once: %s", out)
	}

	buf.Reset()
	logger.StartTimer("parse").StopWithError(errors.New("syntax"))
	if !strings.Contains(buf.String(), "[WRN]") || !strings.Contains(buf.String(), "parse failed") {
		t.Errorf("unexpected failure output: %s", buf.String())
	}
}
