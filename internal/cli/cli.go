// Package cli implements the command structure for taskman.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/taskman-cli/taskman/internal/config"
	"github.com/taskman-cli/taskman/internal/logging"
	"github.com/taskman-cli/taskman/internal/task"
	"github.com/taskman-cli/taskman/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the taskman CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("taskman", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(os.Stdout)
	}

	// Determine the subcommand
	// If no args or first arg is a flag, run the interactive menu
	subcommand := "menu"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		if !strings.HasPrefix(remainingArgs[0], "-") {
			subcommand = remainingArgs[0]
			remainingArgs = remainingArgs[1:]
		}
	}

	opts := logging.DefaultOptions()
	opts.Level = logging.ParseLevel(cfg.LogLevel)
	logger := logging.New(os.Stderr, opts)

	store := task.NewFileStore(cfg.DataFile)

	// doctor inspects the raw file and must not trigger the manager's
	// reset-on-bad-state recovery
	if subcommand == "doctor" {
		return doctorCommand(store, os.Stdout)
	}

	mgr := task.NewManager(store, logger)

	switch subcommand {
	case "menu":
		return runMenu(ctx, mgr, cfg, os.Stdin, os.Stdout, listStyles(cfg))
	case "add":
		return addCommand(mgr, cfg, remainingArgs, os.Stdout)
	case "ls":
		return lsCommand(mgr, cfg, remainingArgs, os.Stdout)
	case "done":
		return doneCommand(mgr, remainingArgs, os.Stdout)
	case "rm":
		return rmCommand(mgr, remainingArgs, os.Stdout)
	case "clear":
		return clearCommand(mgr, cfg, remainingArgs, os.Stdin, os.Stdout)
	case "tui":
		return ui.RunBrowser(ctx, mgr, listStyles(cfg))
	case "version", "--version", "-v":
		return versionCommand(os.Stdout)
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		return fmt.Errorf("unknown command %q (run 'taskman help')", subcommand)
	}
}

// listStyles picks colored or plain rendering from config and TTY state.
func listStyles(cfg *config.Config) ui.Styles {
	if cfg.Color && ui.IsTTY(os.Stdout) {
		return ui.DefaultStyles()
	}
	return ui.PlainStyles()
}

func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "taskman %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `taskman - single-user task list manager

Usage:
  taskman [flags]              Run the interactive menu
  taskman [flags] <command>

Commands:
  add [-priority P] [-category C] <description...>
                               Add a task
  ls [-pending | -completed]   List tasks
  done [-id N | <description>] Mark a task completed
  rm <description...>          Remove a task
  clear [-yes]                 Remove all tasks and reset ids
  tui                          Browse tasks in the terminal UI
  doctor                       Check the task data file
  version                      Show version
  help                         Show this help

Flags:
`)
	fs.SetOutput(w)
	fs.PrintDefaults()
}
