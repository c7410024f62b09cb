package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nibzard/tugas-go/internal/todo"
	"github.com/nibzard/tugas-go/internal/ui"
)

// setupEnv isolates HOME, the working directory and TUGAS_* variables,
// and points TUGAS_TODO at a fresh file. It returns that file's path.
func setupEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, key := range []string{
		"TUGAS_SCHEMA", "TUGAS_DEFAULT_CATEGORY", "TUGAS_CATEGORIES",
		"TUGAS_LOG_LEVEL", "TUGAS_LOG_FORMAT", "TUGAS_LOG_TIMESTAMPS", "TUGAS_LOG_CALLER",
	} {
		t.Setenv(key, "")
	}
	// Equivalent of t.Chdir (Go 1.24+) for older toolchains.
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })

	todoPath := filepath.Join(work, "data", "todos.json")
	t.Setenv("TUGAS_TODO", todoPath)
	return todoPath
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	stdout, stderr, err := run(t, args...)
	if err != nil {
		t.Fatalf("Run(%v) failed: %v\nstderr: %s", args, err, stderr)
	}
	return stdout
}

func loadTasks(t *testing.T, path string) []todo.Task {
	t.Helper()
	return todo.NewStore(path).Load()
}

func TestRunScenario(t *testing.T) {
	todoPath := setupEnv(t)

	out := mustRun(t, "--add", "Buy milk", "--date", "2024-01-01")
	if !strings.Contains(out, "Task added.") || !strings.Contains(out, " 1. Buy milk [Umum]") {
		t.Errorf("add output:\n%s", out)
	}

	data, err := os.ReadFile(todoPath)
	if err != nil {
		t.Fatalf("todo file not written: %v", err)
	}
	want := `[
  {
    "title": "Buy milk",
    "category": "Umum",
    "desc": null,
    "date": "2024-01-01",
    "done": false
  }
]
`
	if string(data) != want {
		t.Errorf("file contents:\n%s\nwant:\n%s", data, want)
	}

	out = mustRun(t, "--mark", "1")
	if !strings.Contains(out, "Status updated.") || !strings.Contains(out, "Status : Done") {
		t.Errorf("mark output:\n%s", out)
	}

	out = mustRun(t, "--unmark", "1")
	if !strings.Contains(out, "Status : Not done") {
		t.Errorf("unmark output:\n%s", out)
	}

	out = mustRun(t, "--delete", "1")
	if !strings.Contains(out, "Task deleted.") || !strings.Contains(out, "No tasks saved yet.") {
		t.Errorf("delete output:\n%s", out)
	}
	if tasks := loadTasks(t, todoPath); len(tasks) != 0 {
		t.Errorf("expected empty collection, got %+v", tasks)
	}
}

func TestRunAddOptions(t *testing.T) {
	todoPath := setupEnv(t)

	mustRun(t, "--add", "", "--category", "")
	mustRun(t, "-add", "Ulang tahun Nenek 🎂", "-category", "Acara Keluarga", "-desc", "bawa kue")

	tasks := loadTasks(t, todoPath)
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	if tasks[0].Title != "" || tasks[0].Category != todo.DefaultCategory {
		t.Errorf("empty add: %+v", tasks[0])
	}
	if tasks[1].Title != "Ulang tahun Nenek 🎂" || tasks[1].Category != "Acara Keluarga" || todo.Deref(tasks[1].Desc, "") != "bawa kue" {
		t.Errorf("second add: %+v", tasks[1])
	}

	data, _ := os.ReadFile(todoPath)
	if !strings.Contains(string(data), "🎂") {
		t.Errorf("non-ASCII should be stored literally:\n%s", data)
	}
}

func TestRunDefaultCategoryFromEnv(t *testing.T) {
	todoPath := setupEnv(t)
	t.Setenv("TUGAS_DEFAULT_CATEGORY", "Lainnya")

	mustRun(t, "--add", "x")

	if got := loadTasks(t, todoPath)[0].Category; got != "Lainnya" {
		t.Errorf("Category = %q, want Lainnya", got)
	}
}

func TestRunEdit(t *testing.T) {
	todoPath := setupEnv(t)
	mustRun(t, "--add", "Belajar", "--desc", "bab 1", "--date", "2024-01-01")

	out := mustRun(t, "--edit", "1", "--title", "Belajar IPA", "--desc", "")
	if !strings.Contains(out, "Task updated.") {
		t.Errorf("edit output:\n%s", out)
	}

	got := loadTasks(t, todoPath)[0]
	if got.Title != "Belajar IPA" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Desc == nil || *got.Desc != "" {
		t.Errorf("explicit empty desc should be stored as empty, got %v", got.Desc)
	}
	if todo.Deref(got.Date, "") != "2024-01-01" || got.Category != "Umum" {
		t.Errorf("unspecified fields changed: %+v", got)
	}
}

func TestRunInvalidIndex(t *testing.T) {
	todoPath := setupEnv(t)

	for _, args := range [][]string{
		{"--delete", "1"},
		{"--mark", "0"},
		{"--unmark", "-2"},
		{"--edit", "3", "--title", "x"},
	} {
		stdout, stderr, err := run(t, args...)
		if err != nil {
			t.Errorf("Run(%v) should not fail on an invalid index: %v", args, err)
		}
		if !strings.Contains(stderr, "Invalid index") {
			t.Errorf("Run(%v) stderr = %q", args, stderr)
		}
		if stdout != "" {
			t.Errorf("Run(%v) stdout = %q", args, stdout)
		}
	}

	if _, err := os.Stat(todoPath); !os.IsNotExist(err) {
		t.Error("invalid index must not create the todo file")
	}
}

func TestRunPrecedence(t *testing.T) {
	todoPath := setupEnv(t)

	out := mustRun(t, "--list", "--add", "x")
	if out != "No tasks saved yet.\n" {
		t.Errorf("--list should win, got %q", out)
	}
	if _, err := os.Stat(todoPath); !os.IsNotExist(err) {
		t.Error("--add must not run when --list is given")
	}

	mustRun(t, "--add", "a", "--edit", "1", "--delete", "1")
	if tasks := loadTasks(t, todoPath); len(tasks) != 1 || tasks[0].Title != "a" {
		t.Errorf("--add should win over --edit and --delete, got %+v", tasks)
	}

	mustRun(t, "--mark", "1", "--delete", "1")
	tasks := loadTasks(t, todoPath)
	if len(tasks) != 1 || !tasks[0].Done {
		t.Errorf("--mark should win over --delete, got %+v", tasks)
	}
}

func TestRunUsageErrors(t *testing.T) {
	setupEnv(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--category", "x"}, "--category requires --add or --edit"},
		{[]string{"--list", "--date", "2024-01-01"}, "--date requires --add or --edit"},
		{[]string{"--add", "x", "--title", "y"}, "--title requires --edit"},
		{[]string{"--delete", "abc"}, "invalid value"},
		{[]string{"--nope"}, "not defined"},
		{[]string{"stray"}, "unexpected arguments"},
	}

	for _, tt := range tests {
		_, _, err := run(t, tt.args...)
		if err == nil {
			t.Errorf("Run(%v) expected error", tt.args)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("Run(%v) error = %v, want %q", tt.args, err, tt.want)
		}
	}
}

func TestRunWriteFailure(t *testing.T) {
	setupEnv(t)
	dir := t.TempDir()
	t.Setenv("TUGAS_TODO", dir)

	_, _, err := run(t, "--add", "x")
	if err == nil || !strings.Contains(err.Error(), "write todo file") {
		t.Errorf("expected write failure, got %v", err)
	}
}

func TestRunCorruptFileReadsEmpty(t *testing.T) {
	todoPath := setupEnv(t)
	if err := os.MkdirAll(filepath.Dir(todoPath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(todoPath, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if out := mustRun(t, "--list"); out != "No tasks saved yet.\n" {
		t.Errorf("corrupt file should list as empty, got %q", out)
	}

	mustRun(t, "--add", "fresh")
	if tasks := loadTasks(t, todoPath); len(tasks) != 1 {
		t.Errorf("add over corrupt file: %+v", tasks)
	}
}

func TestRunInteractiveRequiresTTY(t *testing.T) {
	setupEnv(t)

	for _, args := range [][]string{nil, {"--interactive"}} {
		_, _, err := run(t, args...)
		if !errors.Is(err, ui.ErrNotTTY) {
			t.Errorf("Run(%v) error = %v, want ErrNotTTY", args, err)
		}
	}
}

func TestRunInfoFlags(t *testing.T) {
	setupEnv(t)

	if out := mustRun(t, "--version"); out != "tugas version dev\n" {
		t.Errorf("--version = %q", out)
	}

	out := mustRun(t, "--help")
	for _, want := range []string{"Usage:", "--add TITLE", "-todo"} {
		if !strings.Contains(out, want) {
			t.Errorf("--help missing %q", want)
		}
	}

	if out := mustRun(t, "--example-config"); !strings.Contains(out, `default_category = "Umum"`) {
		t.Errorf("--example-config:\n%s", out)
	}
}

func TestRunCategories(t *testing.T) {
	setupEnv(t)

	out := mustRun(t, "--categories")
	if !strings.Contains(out, " 1. Tugas Sekolah") || !strings.Contains(out, "10. Main Bola") {
		t.Errorf("--categories:\n%s", out)
	}

	t.Setenv("TUGAS_CATEGORIES", "Kerja,Rumah")
	if out := mustRun(t, "--categories"); out != " 1. Kerja\n 2. Rumah\n" {
		t.Errorf("--categories with env = %q", out)
	}
}

func TestRunDoctor(t *testing.T) {
	todoPath := setupEnv(t)

	out := mustRun(t, "--doctor")
	if !strings.Contains(out, "Not found") || !strings.Contains(out, "All checks passed") {
		t.Errorf("doctor on missing file:\n%s", out)
	}

	mustRun(t, "--add", "a")
	mustRun(t, "--mark", "1")
	out = mustRun(t, "--doctor", "-v")
	for _, want := range []string{"✅ Valid", "Tasks: 1 (1 done)", "todo_file:", "(environment)", "Schema: built-in"} {
		if !strings.Contains(out, want) {
			t.Errorf("doctor -v missing %q:\n%s", want, out)
		}
	}

	if err := os.WriteFile(todoPath, []byte(`[{"title": 1}]`), 0644); err != nil {
		t.Fatal(err)
	}
	out, _, err := run(t, "--doctor")
	if err == nil {
		t.Error("doctor should fail on an invalid file")
	}
	if !strings.Contains(out, "Validation failed") || !strings.Contains(out, "[0].title") {
		t.Errorf("doctor on invalid file:\n%s", out)
	}
}

func TestRunLogging(t *testing.T) {
	setupEnv(t)

	_, stderr, err := run(t, "--log-level", "debug", "--add", "x")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(stderr, "task added") {
		t.Errorf("debug log missing from stderr:\n%s", stderr)
	}

	_, stderr, _ = run(t, "--list")
	if stderr != "" {
		t.Errorf("default level should be quiet, got %q", stderr)
	}
}
