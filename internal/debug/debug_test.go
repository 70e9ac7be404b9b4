package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog_WritesAfterInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Close()

	Log("switched to pane %d", 2)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "switched to pane 2") {
		t.Errorf("log contents = %q, want message", data)
	}
	if !Enabled() {
		t.Error("Enabled() = false after Init")
	}
}

func TestLog_NoopAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	Log("dropped")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(data) != 0 {
		t.Errorf("log contents = %q, want empty", data)
	}
}

func TestInit_EmptyPath(t *testing.T) {
	if err := Init(""); err == nil {
		t.Error("Init(\"\") error = nil, want error")
	}
}
