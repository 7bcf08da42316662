package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"argus/internal/pipeline"
	"argus/internal/services"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
output_dir = "` + filepath.Join(dir, "output") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"
store_path = "` + filepath.Join(dir, "argus.db") + `"

[keywords]
strong = [
    "CERTIFICATE OF AUTHENTICITY",
    "CERT OF AUTH",
]

[logging]
level = "error"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeTestRecords(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.jsonl")
	content := `{"image_id":"img1","raw_text":"CERT OF AUTH SKU ABC-100 RARE FIGURE"}
{"image_id":"img2","raw_text":"ABC-1OO RARE FIGVRE"}
{"image_id":"img3","raw_text":"ABC-100 RARE FIGURE"}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPlanCommandJSON(t *testing.T) {
	out, err := runCommand(t,
		"--config", writeTestConfig(t),
		"plan", "--records", writeTestRecords(t), "--json")
	if err != nil {
		t.Fatalf("plan: %v\n%s", err, out)
	}

	var result pipeline.Result
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(result.Groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(result.Groups))
	}
	if result.Groups[0].SKU != "ABC-100" {
		t.Errorf("SKU = %q, want %q", result.Groups[0].SKU, "ABC-100")
	}
	if result.Excluded != 1 {
		t.Errorf("Excluded = %d, want 1", result.Excluded)
	}
}

func TestPlanCommandSaveAndRunsList(t *testing.T) {
	cfg := writeTestConfig(t)
	out, err := runCommand(t, "--config", cfg,
		"plan", "--records", writeTestRecords(t), "--json", "--save")
	if err != nil {
		t.Fatalf("plan --save: %v\n%s", err, out)
	}

	out, err = runCommand(t, "--config", cfg, "runs", "list", "--json")
	if err != nil {
		t.Fatalf("runs list: %v\n%s", err, out)
	}
	if !strings.Contains(out, `"records": 3`) {
		t.Errorf("runs list should include the saved run, got:\n%s", out)
	}
}

func TestRunsShowMissingRun(t *testing.T) {
	_, err := runCommand(t, "--config", writeTestConfig(t), "runs", "show", "no-such-run")
	if err == nil {
		t.Fatal("runs show on an unknown id should fail")
	}
	if !errors.Is(err, services.ErrNotFound) {
		t.Errorf("error should carry the not-found marker, got %v", err)
	}
}

func TestPlanCommandRequiresInput(t *testing.T) {
	if _, err := runCommand(t, "--config", writeTestConfig(t), "plan"); err == nil {
		t.Fatal("plan without input should fail")
	}
}

func TestRenderTablePlainForBufferedOutput(t *testing.T) {
	var buf bytes.Buffer
	out := renderTable(&buf,
		[]string{"A", "B"},
		[][]string{{"x", "y"}},
		[]columnAlignment{alignLeft, alignRight})
	if strings.Contains(out, "╭") {
		t.Errorf("buffered output should use the plain style, got:\n%s", out)
	}
	if !strings.Contains(out, "x") {
		t.Errorf("table should contain row data, got:\n%s", out)
	}
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("second init without --overwrite should fail")
	}
}

func TestConfigValidateCommand(t *testing.T) {
	out, err := runCommand(t, "--config", writeTestConfig(t), "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Configuration valid") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
