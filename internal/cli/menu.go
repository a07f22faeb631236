package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/taskman-cli/taskman/internal/config"
	"github.com/taskman-cli/taskman/internal/task"
	"github.com/taskman-cli/taskman/internal/ui"
)

// menu drives the numbered interactive loop over line-based input.
type menu struct {
	mgr     *task.Manager
	cfg     *config.Config
	scanner *bufio.Scanner
	out     io.Writer
	styles  ui.Styles
}

// runMenu runs the interactive menu until the user exits or input ends.
func runMenu(ctx context.Context, mgr *task.Manager, cfg *config.Config, in io.Reader, out io.Writer, styles ui.Styles) error {
	m := &menu{
		mgr:     mgr,
		cfg:     cfg,
		scanner: bufio.NewScanner(in),
		out:     out,
		styles:  styles,
	}

	fmt.Fprintln(out, "Welcome to the To-Do List Manager!")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()
		choice, ok := m.prompt("Enter your choice (1-8): ")
		if !ok {
			// Input closed; treat like exit
			return nil
		}

		switch choice {
		case "1":
			m.addTask()
		case "2":
			m.show(m.mgr.ListTasks(), "All Tasks")
		case "3":
			m.show(m.mgr.ListPendingTasks(), "Pending Tasks")
		case "4":
			m.show(m.mgr.ListCompletedTasks(), "Completed Tasks")
		case "5":
			m.completeTask()
		case "6":
			m.removeTask()
		case "7":
			m.clearTasks()
		case "8":
			fmt.Fprintln(m.out, "Thank you for using To-Do List Manager!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice! Please enter a number between 1-8.")
		}
	}
}

func (m *menu) printMenu() {
	fmt.Fprintln(m.out, "\n=== To-Do List Manager ===")
	fmt.Fprintln(m.out, "1. Add task")
	fmt.Fprintln(m.out, "2. List all tasks")
	fmt.Fprintln(m.out, "3. List pending tasks")
	fmt.Fprintln(m.out, "4. List completed tasks")
	fmt.Fprintln(m.out, "5. Mark task as completed")
	fmt.Fprintln(m.out, "6. Remove task")
	fmt.Fprintln(m.out, "7. Clear all tasks")
	fmt.Fprintln(m.out, "8. Exit")
	fmt.Fprintln(m.out, strings.Repeat("=", 27))
}

// prompt prints the prompt and reads one trimmed line. The second
// result is false when input is exhausted.
func (m *menu) prompt(text string) (string, bool) {
	fmt.Fprint(m.out, text)
	if !m.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.scanner.Text()), true
}

func (m *menu) show(tasks []task.Task, title string) {
	fmt.Fprint(m.out, ui.FormatTasks(tasks, title, m.styles))
}

func (m *menu) addTask() {
	description, ok := m.prompt("Enter task description: ")
	if !ok || description == "" {
		fmt.Fprintln(m.out, "Task description cannot be empty!")
		return
	}

	priorityInput, _ := m.prompt(fmt.Sprintf("Enter priority (low/medium/high) [default: %s]: ", m.cfg.DefaultPriority))
	priority := task.Priority(strings.ToLower(priorityInput))
	if !priority.Valid() {
		priority = task.Priority(m.cfg.DefaultPriority)
	}

	category, _ := m.prompt(fmt.Sprintf("Enter category [default: %s]: ", m.cfg.DefaultCategory))
	if category == "" {
		category = m.cfg.DefaultCategory
	}

	if m.mgr.AddTask(description, priority, category) {
		fmt.Fprintf(m.out, "Task '%s' added successfully!\n", description)
	} else {
		fmt.Fprintln(m.out, "Failed to add task!")
	}
}

func (m *menu) completeTask() {
	if m.mgr.IsEmpty() {
		fmt.Fprintln(m.out, "No tasks available!")
		return
	}

	m.show(m.mgr.ListPendingTasks(), "Pending Tasks")

	choice, ok := m.prompt("Mark by (1) ID or (2) description? [1]: ")
	if !ok {
		return
	}

	if choice == "2" {
		description, ok := m.prompt("Enter task description to mark as completed: ")
		if !ok {
			return
		}
		if m.mgr.MarkTaskCompleted(description) {
			fmt.Fprintf(m.out, "Task '%s' marked as completed!\n", description)
		} else {
			fmt.Fprintln(m.out, "Task not found or already completed!")
		}
		return
	}

	input, ok := m.prompt("Enter task ID to mark as completed: ")
	if !ok {
		return
	}
	id, err := strconv.Atoi(input)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid task ID!")
		return
	}
	if m.mgr.MarkTaskCompletedByID(id) {
		fmt.Fprintf(m.out, "Task with ID %d marked as completed!\n", id)
	} else {
		fmt.Fprintln(m.out, "Task not found or already completed!")
	}
}

func (m *menu) removeTask() {
	if m.mgr.IsEmpty() {
		fmt.Fprintln(m.out, "No tasks available!")
		return
	}

	m.show(m.mgr.ListTasks(), "All Tasks")

	description, ok := m.prompt("Enter task description to remove: ")
	if !ok {
		return
	}
	if m.mgr.RemoveTask(description) {
		fmt.Fprintf(m.out, "Task '%s' removed successfully!\n", description)
	} else {
		fmt.Fprintln(m.out, "Task not found!")
	}
}

func (m *menu) clearTasks() {
	if m.mgr.IsEmpty() {
		fmt.Fprintln(m.out, "To-do list is already empty!")
		return
	}

	if m.cfg.ConfirmClear {
		confirm, ok := m.prompt("Are you sure you want to clear all tasks? (y/N): ")
		if !ok || strings.ToLower(confirm) != "y" {
			fmt.Fprintln(m.out, "Operation cancelled.")
			return
		}
	}

	m.mgr.ClearAllTasks()
	fmt.Fprintln(m.out, "All tasks cleared successfully!")
}
