package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "studyloop.log")
	logger, closeFn, err := New(path, false)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	logger.Info("hello", zap.String("user_id", "u1"))
	closeFn()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := strings.TrimSpace(string(raw))
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line not JSON: %v (%q)", err, line)
	}
	if entry["msg"] != "hello" || entry["user_id"] != "u1" {
		t.Errorf("entry = %v", entry)
	}
}

func TestVerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studyloop.log")
	logger, closeFn, err := New(path, true)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Debug("details")
	closeFn()

	raw, _ := os.ReadFile(path)
	if !strings.Contains(string(raw), "details") {
		t.Error("debug line missing in verbose mode")
	}

	path2 := filepath.Join(t.TempDir(), "quiet.log")
	logger2, closeFn2, err := New(path2, false)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger2.Debug("hidden")
	closeFn2()

	raw2, _ := os.ReadFile(path2)
	if strings.Contains(string(raw2), "hidden") {
		t.Error("debug line written at info level")
	}
}

func TestDefaultLogPathEnvOverride(t *testing.T) {
	t.Setenv("STUDYLOOP_LOG", "/tmp/custom.log")
	if got := DefaultLogPath(); got != "/tmp/custom.log" {
		t.Errorf("path = %q", got)
	}

	t.Setenv("STUDYLOOP_LOG", "")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	want := filepath.Join("/tmp/state", "studyloop", "studyloop.log")
	if got := DefaultLogPath(); got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}
