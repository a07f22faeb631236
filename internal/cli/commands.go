package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/taskman-cli/taskman/internal/config"
	"github.com/taskman-cli/taskman/internal/task"
	"github.com/taskman-cli/taskman/internal/ui"
)

// addCommand adds a single task from the command line.
func addCommand(mgr *task.Manager, cfg *config.Config, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	priority := fs.String("priority", cfg.DefaultPriority, "Task priority (low, medium, high)")
	category := fs.String("category", cfg.DefaultCategory, "Task category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	description := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if description == "" {
		return errors.New("task description cannot be empty")
	}

	p := task.Priority(strings.ToLower(*priority))
	if !p.Valid() {
		return fmt.Errorf("invalid priority %q (want low, medium, or high)", *priority)
	}

	if !mgr.AddTask(description, p, *category) {
		return fmt.Errorf("failed to add task %q", description)
	}
	fmt.Fprintf(w, "Task '%s' added successfully!\n", description)
	return nil
}

// lsCommand lists tasks, optionally filtered by status.
func lsCommand(mgr *task.Manager, cfg *config.Config, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	pending := fs.Bool("pending", false, "Show only pending tasks")
	completed := fs.Bool("completed", false, "Show only completed tasks")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pending && *completed {
		return errors.New("-pending and -completed are mutually exclusive")
	}

	styles := listStyles(cfg)
	switch {
	case *pending:
		fmt.Fprint(w, ui.FormatTasks(mgr.ListPendingTasks(), "Pending Tasks", styles))
	case *completed:
		fmt.Fprint(w, ui.FormatTasks(mgr.ListCompletedTasks(), "Completed Tasks", styles))
	default:
		fmt.Fprint(w, ui.FormatTasks(mgr.ListTasks(), "All Tasks", styles))
	}
	return nil
}

// doneCommand completes a task by id or by description.
func doneCommand(mgr *task.Manager, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("done", flag.ContinueOnError)
	id := fs.Int("id", 0, "Task id to complete")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *id > 0 {
		if !mgr.MarkTaskCompletedByID(*id) {
			return fmt.Errorf("task with id %d not found or already completed", *id)
		}
		fmt.Fprintf(w, "Task with ID %d marked as completed!\n", *id)
		return nil
	}

	description := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if description == "" {
		return errors.New("need -id or a task description")
	}
	if !mgr.MarkTaskCompleted(description) {
		return fmt.Errorf("task %q not found or already completed", description)
	}
	fmt.Fprintf(w, "Task '%s' marked as completed!\n", description)
	return nil
}

// rmCommand removes a task by description.
func rmCommand(mgr *task.Manager, args []string, w io.Writer) error {
	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" {
		return errors.New("need a task description")
	}
	if !mgr.RemoveTask(description) {
		return fmt.Errorf("task %q not found", description)
	}
	fmt.Fprintf(w, "Task '%s' removed successfully!\n", description)
	return nil
}

// clearCommand removes all tasks, asking for confirmation unless -yes
// is given or confirmation is disabled in config.
func clearCommand(mgr *task.Manager, cfg *config.Config, args []string, in io.Reader, w io.Writer) error {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if mgr.IsEmpty() {
		fmt.Fprintln(w, "To-do list is already empty!")
		return nil
	}

	if !*yes && cfg.ConfirmClear {
		fmt.Fprint(w, "Are you sure you want to clear all tasks? (y/N): ")
		scanner := bufio.NewScanner(in)
		if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
			fmt.Fprintln(w, "Operation cancelled.")
			return nil
		}
	}

	mgr.ClearAllTasks()
	fmt.Fprintln(w, "All tasks cleared successfully!")
	return nil
}

// doctorCommand checks the data file without the manager's recovery
// path, so a corrupt file is reported instead of silently reset.
func doctorCommand(store *task.FileStore, w io.Writer) error {
	state, err := store.Load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(w, "No task file at %s yet; it will be created on first add.\n", store.Path())
			return nil
		}
		return fmt.Errorf("task file %s: %w", store.Path(), err)
	}

	pending, completed := 0, 0
	for _, t := range state.Tasks {
		if t.Status == task.StatusCompleted {
			completed++
		} else {
			pending++
		}
	}
	fmt.Fprintf(w, "Task file %s OK: %d tasks (%d pending, %d completed), next id %d.\n",
		store.Path(), len(state.Tasks), pending, completed, state.NextID)
	return nil
}
