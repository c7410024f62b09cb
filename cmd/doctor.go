package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nibzard/tugas-go/internal/config"
	"github.com/nibzard/tugas-go/internal/todo"
)

// doctorCommand reports where the configuration came from and whether the
// task file is readable and matches the schema.
func doctorCommand(cws *config.ConfigWithSources, w io.Writer, verbose bool) error {
	cfg := cws.Config

	fmt.Fprintln(w, "tugas doctor")
	fmt.Fprintln(w, "============")
	fmt.Fprintln(w)

	allOK := true

	// Config
	if file := cws.GetConfigFile(); file != "" {
		fmt.Fprintf(w, "Config file: %s\n", file)
	} else {
		fmt.Fprintln(w, "Config file: (none, using defaults)")
	}
	if verbose {
		for _, entry := range configValues(cfg) {
			fmt.Fprintf(w, "  %-17s %s (%s)\n", entry.field+":", entry.value, cws.Sources[entry.field])
		}
	}
	fmt.Fprintln(w)

	// Schema
	if cfg.SchemaFile == "" {
		fmt.Fprintln(w, "Schema: built-in")
	} else {
		fmt.Fprintf(w, "Schema: %s\n", cfg.SchemaFile)
		if info, err := os.Stat(cfg.SchemaFile); err != nil {
			fmt.Fprintf(w, "  ⚠️  %v (falling back to built-in)\n", err)
		} else if info.IsDir() {
			fmt.Fprintln(w, "  ❌ Error: path is a directory")
			allOK = false
		} else {
			fmt.Fprintln(w, "  ✅ OK")
		}
	}
	fmt.Fprintln(w)

	// Task file
	fmt.Fprintf(w, "Todo file: %s\n", cfg.TodoFile)
	if !checkTodoFile(w, cfg, verbose) {
		allOK = false
	}
	fmt.Fprintln(w)

	if allOK {
		fmt.Fprintln(w, "✅ All checks passed!")
		return nil
	}
	fmt.Fprintln(w, "⚠️  Some checks failed. Unreadable task files are treated as empty.")
	return fmt.Errorf("doctor checks failed")
}

func checkTodoFile(w io.Writer, cfg *config.Config, verbose bool) bool {
	info, err := os.Stat(cfg.TodoFile)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(w, "  ⚠️  Not found (created on first save)")
			return true
		}
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		return false
	}
	if info.IsDir() {
		fmt.Fprintln(w, "  ❌ Error: path is a directory")
		return false
	}

	data, err := os.ReadFile(cfg.TodoFile)
	if err != nil {
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		return false
	}
	fmt.Fprintln(w, "  ✅ Readable")

	result := todo.Validate(data, todo.ValidationOptions{SchemaPath: cfg.SchemaFile})
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "  ⚠️  %s\n", warning)
	}
	if !result.Valid {
		fmt.Fprintln(w, "  ❌ Validation failed:")
		for _, e := range result.Errors {
			fmt.Fprintf(w, "     - %v\n", e)
		}
		return false
	}
	fmt.Fprintln(w, "  ✅ Valid")

	if verbose {
		tasks, err := todo.Decode(data, cfg.DefaultCategory)
		if err != nil {
			fmt.Fprintf(w, "  ❌ Decode error: %v\n", err)
			return false
		}
		done := 0
		for _, t := range tasks {
			if t.Done {
				done++
			}
		}
		fmt.Fprintf(w, "  Tasks: %d (%d done)\n", len(tasks), done)
	}
	return true
}

type configValue struct {
	field string
	value string
}

func configValues(cfg *config.Config) []configValue {
	schema := cfg.SchemaFile
	if schema == "" {
		schema = "(built-in)"
	}
	return []configValue{
		{"todo_file", cfg.TodoFile},
		{"schema_file", schema},
		{"default_category", cfg.DefaultCategory},
		{"categories", strings.Join(cfg.Categories, ", ")},
		{"log_level", cfg.LogLevel},
		{"log_format", cfg.LogFormat},
		{"log_timestamps", fmt.Sprint(cfg.LogTimestamps)},
		{"log_caller", fmt.Sprint(cfg.LogCaller)},
	}
}
