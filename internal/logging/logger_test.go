package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"argus/internal/services"
)

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger = NewComponentLogger(logger, "grouper")
	logger.Info("opened group", String("group_key", "group-001"), Int("members", 3))

	out := buf.String()
	if !strings.Contains(out, "INFO grouper: opened group") {
		t.Errorf("unexpected console line: %q", out)
	}
	if !strings.Contains(out, "group_key=group-001") || !strings.Contains(out, "members=3") {
		t.Errorf("missing attrs in line: %q", out)
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("classified", String("role", "coa"))

	out := buf.String()
	for _, want := range []string{`"level":"debug"`, `"msg":"classified"`, `"role":"coa"`} {
		if !strings.Contains(out, want) {
			t.Errorf("json line missing %s: %q", want, out)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("should be dropped")
	logger.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should be dropped") {
		t.Errorf("info line leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestWithContextAddsRunAndStage(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := services.WithStage(services.WithRunID(context.Background(), "run-9"), "consensus")
	WithContext(ctx, logger).Info("resolved")

	out := buf.String()
	if !strings.Contains(out, "run_id=run-9") || !strings.Contains(out, "stage=consensus") {
		t.Errorf("context fields missing: %q", out)
	}
}
