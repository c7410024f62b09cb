// Package cmd implements the command line for tugas.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tugas-go/internal/config"
	"github.com/nibzard/tugas-go/internal/logging"
	"github.com/nibzard/tugas-go/internal/todo"
	"github.com/nibzard/tugas-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// options holds the action and field flags. Index flags are only
// meaningful when set; set records which flags appeared on the command line.
type options struct {
	list        bool
	interactive bool
	add         string
	edit        int
	mark        int
	unmark      int
	del         int

	title    string
	category string
	desc     string
	date     string

	categories    bool
	doctor        bool
	verbose       bool
	exampleConfig bool
	help          bool
	version       bool

	set map[string]bool
}

func (o *options) register(fs *flag.FlagSet) {
	fs.BoolVar(&o.list, "list", false, "List all tasks")
	fs.StringVar(&o.add, "add", "", "Add a task with the given `title`")
	fs.IntVar(&o.edit, "edit", 0, "Edit the task at `index`")
	fs.IntVar(&o.mark, "mark", 0, "Mark the task at `index` as done")
	fs.IntVar(&o.unmark, "unmark", 0, "Mark the task at `index` as not done")
	fs.IntVar(&o.del, "delete", 0, "Delete the task at `index`")
	fs.BoolVar(&o.interactive, "interactive", false, "Start the interactive menu (default when no action is given)")

	fs.StringVar(&o.title, "title", "", "New title for --edit")
	fs.StringVar(&o.category, "category", "", "Category for --add or --edit")
	fs.StringVar(&o.desc, "desc", "", "Description for --add or --edit")
	fs.StringVar(&o.date, "date", "", "Date (YYYY-MM-DD) for --add or --edit")

	fs.BoolVar(&o.categories, "categories", false, "List the suggested categories")
	fs.BoolVar(&o.doctor, "doctor", false, "Check config and task file validity")
	fs.BoolVar(&o.verbose, "v", false, "Verbose output for --doctor")
	fs.BoolVar(&o.exampleConfig, "example-config", false, "Print an example config file")
	fs.BoolVar(&o.help, "help", false, "Show help")
	fs.BoolVar(&o.help, "h", false, "Show help")
	fs.BoolVar(&o.version, "version", false, "Show version")
}

// field returns the flag value when it was given, nil otherwise.
func (o *options) field(name, value string) *string {
	if !o.set[name] {
		return nil
	}
	return todo.String(value)
}

// Run executes the tugas CLI.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tugas", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}

	opts := &options{set: make(map[string]bool)}
	opts.register(fs)

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config
	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})

	if rest := fs.Args(); len(rest) > 0 {
		printUsage(fs, stderr)
		return fmt.Errorf("unexpected arguments: %v", rest)
	}

	switch {
	case opts.help:
		printUsage(fs, stdout)
		return nil
	case opts.version:
		fmt.Fprintf(stdout, "tugas version %s\n", Version)
		return nil
	case opts.exampleConfig:
		fmt.Fprint(stdout, config.ExampleConfig())
		return nil
	}

	if err := opts.checkFieldFlags(); err != nil {
		printUsage(fs, stderr)
		return err
	}

	logger := logging.NewFromConfig(stderr, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)
	store := todo.NewStore(cfg.TodoFile,
		todo.WithLogger(logger),
		todo.WithDefaultCategory(cfg.DefaultCategory),
	)
	repo := todo.NewRepository(store)
	logger.Debug("config loaded", "todo_file", cfg.TodoFile, "config_file", cws.GetConfigFile())

	switch {
	case opts.doctor:
		return doctorCommand(cws, stdout, opts.verbose)
	case opts.categories:
		ui.PrintCategories(stdout, cfg.Categories)
		return nil
	case opts.list:
		ui.PrintTasks(stdout, repo.List())
		return nil
	case opts.set["add"]:
		tasks, err := repo.Add(todo.NewTask{
			Title:    opts.add,
			Category: nonEmpty(opts.field("category", opts.category)),
			Desc:     opts.field("desc", opts.desc),
			Date:     opts.field("date", opts.date),
		})
		return report(stdout, stderr, logger, tasks, err, "Task added.")
	case opts.set["edit"]:
		tasks, err := repo.Edit(opts.edit, todo.Patch{
			Title:    opts.field("title", opts.title),
			Category: opts.field("category", opts.category),
			Desc:     opts.field("desc", opts.desc),
			Date:     opts.field("date", opts.date),
		})
		return report(stdout, stderr, logger, tasks, err, "Task updated.")
	case opts.set["mark"]:
		tasks, err := repo.SetDone(opts.mark, true)
		return report(stdout, stderr, logger, tasks, err, "Status updated.")
	case opts.set["unmark"]:
		tasks, err := repo.SetDone(opts.unmark, false)
		return report(stdout, stderr, logger, tasks, err, "Status updated.")
	case opts.set["delete"]:
		tasks, err := repo.Delete(opts.del)
		return report(stdout, stderr, logger, tasks, err, "Task deleted.")
	default:
		return ui.RunMenu(ctx, repo,
			ui.WithCategories(cfg.Categories),
			ui.WithIO(os.Stdin, stdout),
		)
	}
}

// checkFieldFlags rejects field flags that no action will consume.
func (o *options) checkFieldFlags() error {
	if o.set["title"] && !o.set["edit"] {
		return errors.New("--title requires --edit")
	}
	if o.set["add"] || o.set["edit"] {
		return nil
	}
	for _, name := range []string{"category", "desc", "date"} {
		if o.set[name] {
			return fmt.Errorf("--%s requires --add or --edit", name)
		}
	}
	return nil
}

// report prints the outcome of a mutation followed by the full list.
// An invalid index is reported on stderr and is not an error.
func report(stdout, stderr io.Writer, logger *log.Logger, tasks []todo.Task, err error, success string) error {
	if err != nil {
		var indexErr *todo.IndexError
		if errors.As(err, &indexErr) {
			fmt.Fprintf(stderr, "Invalid index: %d (have %d tasks)\n", indexErr.Index, indexErr.Len)
			return nil
		}
		logger.Error("save failed", "err", err)
		return err
	}
	fmt.Fprintln(stdout, success)
	ui.PrintTasks(stdout, tasks)
	return nil
}

// nonEmpty maps an empty string to nil so --category "" falls back to the default.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "tugas - a simple personal to-do list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tugas [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Actions (first match wins, in this order):")
	fmt.Fprintln(w, "  --list                       List all tasks")
	fmt.Fprintln(w, "  --add TITLE                  Add a task (with --category, --desc, --date)")
	fmt.Fprintln(w, "  --edit INDEX                 Edit a task (with --title, --category, --desc, --date)")
	fmt.Fprintln(w, "  --mark INDEX                 Mark a task as done")
	fmt.Fprintln(w, "  --unmark INDEX               Mark a task as not done")
	fmt.Fprintln(w, "  --delete INDEX               Delete a task")
	fmt.Fprintln(w, "  --interactive                Interactive menu (default)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Indexes are 1-based positions as shown by --list.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "All Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
