package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCreatesLogDirectory(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{ConfigDir: configDir}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	logDir := filepath.Join(configDir, "logs")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("log directory was not created: %s", logDir)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after Init")
	}
	if got := LogPath(configDir); filepath.Base(got) != "lockd.log" {
		t.Errorf("LogPath() = %q, want lockd.log file", got)
	}
}

func TestInitLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Config{Output: &buf}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	Debug("hidden debug line")
	Info("hidden info line")
	Warn("reminder delivery failed", "task", "abc")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected debug/info to be filtered at warn level, got %q", out)
	}
	if !strings.Contains(out, "reminder delivery failed") || !strings.Contains(out, "task=abc") {
		t.Errorf("expected warning with keyvals, got %q", out)
	}
	if !strings.Contains(out, "lockd") {
		t.Errorf("expected lockd prefix, got %q", out)
	}
}

func TestWith(t *testing.T) {
	Logger = nil
	if With("component", "planner") != nil {
		t.Error("With() before Init should return nil")
	}

	var buf bytes.Buffer
	if err := Init(Config{Output: &buf}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	With("component", "planner").Error("boom")
	if !strings.Contains(buf.String(), "component=planner") {
		t.Errorf("expected child keyvals in output, got %q", buf.String())
	}
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// None of these should panic.
	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
}
