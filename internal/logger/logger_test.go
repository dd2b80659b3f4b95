package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestProductionLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := Init(Config{Level: "debug", Environment: "production", Output: &buf})

	log.WithComponent("intake").Error("notification failed", errors.New("smtp down"), Kind("contact"), Uint("id", 7))

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected a JSON log line, got %q: %v", buf.String(), err)
	}
	if line["component"] != "intake" {
		t.Fatalf("expected component field, got %#v", line)
	}
	if line["error"] != "smtp down" {
		t.Fatalf("expected error field, got %#v", line)
	}
	if line["kind"] != "contact" {
		t.Fatalf("expected kind field, got %#v", line)
	}
	if line["service"] != "studentorg-api" {
		t.Fatalf("expected default service name, got %#v", line)
	}
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := Init(Config{Level: "warn", Environment: "production", Output: &buf})

	log.Debug("hidden")
	log.Info("hidden too")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	log.Warn("shown")
	if buf.Len() == 0 {
		t.Fatalf("expected warn output")
	}
}
