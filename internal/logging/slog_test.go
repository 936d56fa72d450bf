package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rosy.log")

	logger, closer, err := New(path)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("saved tasks", Operation("save"), Backend("sqlite"), Count(3))
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "saved tasks" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if entry[KeyBackend] != "sqlite" {
		t.Fatalf("unexpected backend: %v", entry[KeyBackend])
	}
	if entry[KeyCount] != float64(3) {
		t.Fatalf("unexpected count: %v", entry[KeyCount])
	}
}

func TestNewEmptyPathDiscards(t *testing.T) {
	logger, closer, err := New("")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("goes nowhere")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}

func TestErrNilOmitted(t *testing.T) {
	attr := Err(nil)
	if attr.Key != "" {
		t.Fatalf("expected empty key for nil error, got %q", attr.Key)
	}
	attr = Err(errors.New("boom"))
	if attr.Value.String() != "boom" {
		t.Fatalf("unexpected error value: %v", attr.Value)
	}
}
