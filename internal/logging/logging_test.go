package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestNewManager_Defaults(t *testing.T) {
	mgr, logger := NewManager(Config{Level: "info", Format: "json"})
	defer mgr.Close() //nolint:errcheck

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	if mgr.Config().Level != "info" {
		t.Errorf("level = %s, want info", mgr.Config().Level)
	}
}

func TestManager_LevelSwap(t *testing.T) {
	mgr, logger := NewManager(Config{Level: "info", Format: "json"})
	defer mgr.Close() //nolint:errcheck

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug to be disabled initially")
	}

	mgr.Reconfigure(Config{Level: "debug", Format: "json"})
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug to be enabled after reconfigure")
	}

	mgr.Reconfigure(Config{Level: "error", Format: "json"})
	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info to be disabled when level is error")
	}
}

func TestManager_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	mgr, logger := NewManager(Config{Level: "info", Format: "json", FilePath: path})
	defer mgr.Close() //nolint:errcheck

	logger.Info("hello")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected log output in file")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidators(t *testing.T) {
	if !ValidLevel("warn") || ValidLevel("trace") {
		t.Error("ValidLevel mismatch")
	}
	if !ValidFormat("text") || ValidFormat("xml") {
		t.Error("ValidFormat mismatch")
	}
}
