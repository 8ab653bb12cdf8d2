package glint

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glint.log")
	logger, err := NewLogger(path)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	logger.Log("starting up")
	logger.Logf("frame %d flushed", 7)
	logger.Error("teardown step failed", errors.New("boom"))
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(data)
	for _, want := range []string{"starting up", "frame 7 flushed", "teardown step failed", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogger_NilReceiverIsSafe(t *testing.T) {
	var logger *Logger
	logger.Log("ignored")
	logger.Logf("ignored %d", 1)
	logger.Error("ignored", errors.New("ignored"))
	if err := logger.Close(); err != nil {
		t.Errorf("Close on nil logger = %v, want nil", err)
	}
}

func TestLogger_CreateFailure(t *testing.T) {
	if _, err := NewLogger(filepath.Join(t.TempDir(), "missing", "glint.log")); err == nil {
		t.Fatal("expected an error creating a log file in a missing directory")
	}
}
