package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskman-cli/taskman/internal/task"
)

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}

// RunBrowser starts the read-only task browser over the given manager.
func RunBrowser(ctx context.Context, mgr *task.Manager, styles Styles) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("task browser requires a TTY")
	}

	model := &browserModel{mgr: mgr, styles: styles}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// browserModel is the bubbletea model for the task browser. It reads
// from the manager and never mutates it.
type browserModel struct {
	mgr      *task.Manager
	styles   Styles
	filter   task.Status // empty means no filter
	showHelp bool
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "a", "0":
			m.filter = ""
			return m, nil
		case "p", "1":
			m.filter = task.StatusPending
			return m, nil
		case "c", "2":
			m.filter = task.StatusCompleted
			return m, nil
		case "h", "?":
			m.showHelp = !m.showHelp
			return m, nil
		}
	}
	return m, nil
}

func (m *browserModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("taskman") + "\n")

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b)
		return b.String()
	}

	var tasks []task.Task
	var title string
	switch m.filter {
	case task.StatusPending:
		tasks = m.mgr.ListPendingTasks()
		title = "Pending Tasks"
	case task.StatusCompleted:
		tasks = m.mgr.ListCompletedTasks()
		title = "Completed Tasks"
	default:
		tasks = m.mgr.ListTasks()
		title = "All Tasks"
	}

	b.WriteString(FormatTasks(tasks, title, m.styles))
	if m.filter != "" {
		fmt.Fprintf(&b, "Filter: %s (a to clear)\n", m.filter)
	}
	writeFooter(&b)
	return b.String()
}

func writeHelp(b *strings.Builder) {
	b.WriteString("\nKeys:\n")
	b.WriteString("  a/0  show all tasks\n")
	b.WriteString("  p/1  show pending tasks\n")
	b.WriteString("  c/2  show completed tasks\n")
	b.WriteString("  h/?  toggle this help\n")
	b.WriteString("  q    quit\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString("\na all · p pending · c completed · ? help · q quit\n")
}
