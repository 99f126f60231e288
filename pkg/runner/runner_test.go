package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/mdblocklint/pkg/config"
	"github.com/yaklabco/mdblocklint/pkg/fsutil"
	"github.com/yaklabco/mdblocklint/pkg/lint"
	"github.com/yaklabco/mdblocklint/pkg/lint/rules"
	"github.com/yaklabco/mdblocklint/pkg/runner"
)

const misplaced = "# Intro\n\nInstall [mise] first.\n\n## Install\n\nRun it.\n\n[mise]: https://mise.jdx.dev\n"

const clean = "# Intro\n\nInstall [mise] first.\n\n[mise]: https://mise.jdx.dev\n"

func newRunner() *runner.Runner {
	registry := lint.NewRegistry()
	rules.RegisterAll(registry)
	return runner.New(lint.NewEngine(lint.NewSnapshotParser(), registry))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("setup mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup write: %v", err)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	engine := lint.NewEngine(lint.NewSnapshotParser(), lint.NewRegistry())
	if runner.New(engine).Engine != engine {
		t.Error("Engine not set correctly")
	}
}

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	result, err := newRunner().Run(context.Background(), runner.Options{
		WorkingDir: t.TempDir(),
		Config:     config.NewConfig(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Files) != 0 || result.Stats.FilesDiscovered != 0 {
		t.Errorf("expected empty result, got %+v", result.Stats)
	}
	if result.HasIssues() {
		t.Error("HasIssues() = true, want false")
	}
}

func TestRunner_Run_ReportsMisplacedDefinitions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.md"), misplaced)
	writeFile(t, filepath.Join(dir, "good.md"), clean)

	result, err := newRunner().Run(context.Background(), runner.Options{
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesProcessed != 2 {
		t.Errorf("FilesProcessed = %d, want 2", result.Stats.FilesProcessed)
	}
	if result.Stats.FilesWithIssues != 1 {
		t.Errorf("FilesWithIssues = %d, want 1", result.Stats.FilesWithIssues)
	}
	if result.Stats.DiagnosticsByRule[rules.PlacementRuleID] != 1 {
		t.Errorf("DiagnosticsByRule = %v", result.Stats.DiagnosticsByRule)
	}
	if result.Stats.DiagnosticsBySeverity[config.SeverityWarning] != 1 {
		t.Errorf("DiagnosticsBySeverity = %v", result.Stats.DiagnosticsBySeverity)
	}
	if result.HasFailures() {
		t.Error("HasFailures() = true for warning-only run")
	}

	bad := result.Files[0]
	if bad.Path != filepath.Join(dir, "bad.md") {
		t.Fatalf("Files[0].Path = %s", bad.Path)
	}
	diags := bad.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].StartLine != 9 {
		t.Errorf("StartLine = %d, want 9", diags[0].StartLine)
	}
	if diags[0].FilePath != bad.Path {
		t.Errorf("FilePath = %q, want %q", diags[0].FilePath, bad.Path)
	}
}

func TestRunner_Run_SeverityFromConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.md"), misplaced)

	cfg := config.NewConfig()
	cfg.SeverityDefault = string(config.SeverityError)

	result, err := newRunner().Run(context.Background(), runner.Options{WorkingDir: dir, Config: cfg})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !result.HasFailures() {
		t.Error("HasFailures() = false, want true")
	}
}

func TestRunner_Run_SerialVsParallelConsistency(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"a.md", "b.md", "c.md", "d.md", "e.md", "f.md"} {
		writeFile(t, filepath.Join(dir, name), misplaced)
	}

	run := func(jobs int) *runner.Result {
		result, err := newRunner().Run(context.Background(), runner.Options{
			WorkingDir: dir,
			Jobs:       jobs,
			Config:     config.NewConfig(),
		})
		if err != nil {
			t.Fatalf("Run(jobs=%d) error = %v", jobs, err)
		}
		return result
	}

	serial := run(1)
	parallel := run(4)

	if len(serial.Files) != len(parallel.Files) {
		t.Fatalf("file counts differ: %d vs %d", len(serial.Files), len(parallel.Files))
	}
	for i := range serial.Files {
		if serial.Files[i].Path != parallel.Files[i].Path {
			t.Errorf("file %d: %s vs %s", i, serial.Files[i].Path, parallel.Files[i].Path)
		}
		if len(serial.Files[i].Diagnostics()) != len(parallel.Files[i].Diagnostics()) {
			t.Errorf("file %d: diagnostic counts differ", i)
		}
	}
	if serial.Stats.DiagnosticsTotal != 6 || parallel.Stats.DiagnosticsTotal != 6 {
		t.Errorf("DiagnosticsTotal = %d / %d, want 6", serial.Stats.DiagnosticsTotal, parallel.Stats.DiagnosticsTotal)
	}
}

func TestRunner_Run_UnreadableFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "big.md")
	writeFile(t, path, "")
	if err := os.Truncate(path, fsutil.MaxFileSize+1); err != nil {
		t.Fatalf("setup truncate: %v", err)
	}

	result, err := newRunner().Run(context.Background(), runner.Options{WorkingDir: dir, Config: config.NewConfig()})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Stats.FilesErrored != 1 || !result.HasErrors() {
		t.Errorf("FilesErrored = %d, want 1", result.Stats.FilesErrored)
	}
	if !errors.Is(result.Files[0].Error, fsutil.ErrTooLarge) {
		t.Errorf("Error = %v, want ErrTooLarge", result.Files[0].Error)
	}
}

func TestRunner_Run_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), clean)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRunner().Run(ctx, runner.Options{WorkingDir: dir, Config: config.NewConfig()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestResult_NilSafe(t *testing.T) {
	t.Parallel()

	var result *runner.Result
	if result.HasFailures() || result.HasIssues() || result.HasErrors() {
		t.Error("nil Result should report nothing")
	}
}
