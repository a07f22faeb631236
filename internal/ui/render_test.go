package ui

import (
	"strings"
	"testing"

	"github.com/taskman-cli/taskman/internal/task"
)

func TestFormatTasksEmpty(t *testing.T) {
	got := FormatTasks(nil, "Pending Tasks", PlainStyles())
	if !strings.Contains(got, "No pending tasks found.") {
		t.Errorf("empty listing: got %q, want no-tasks message", got)
	}
}

func TestFormatTasks(t *testing.T) {
	tk := task.New("Buy milk", task.PriorityHigh, "errands")
	tk.ID = 1
	done := task.New("Buy eggs", task.PriorityLow, "errands")
	done.ID = 2
	done.Complete()

	got := FormatTasks([]task.Task{tk, done}, "All Tasks", PlainStyles())

	for _, want := range []string{
		"All Tasks:",
		"○ [1] Buy milk",
		"✓ [2] Buy eggs",
		"Priority: ● High | Category: errands",
		"Priority: ● Low | Category: errands",
		"Created: " + tk.CreatedDate.String(),
		"Completed: " + done.CompletedDate.String(),
	} {
		if !strings.Contains(got, want) {
			t.Errorf("listing missing %q, got:\n%s", want, got)
		}
	}
}

func TestFormatTasksUnknownPriority(t *testing.T) {
	tk := task.New("Buy milk", "urgent", "")
	tk.ID = 1

	got := FormatTasks([]task.Task{tk}, "All Tasks", PlainStyles())
	if !strings.Contains(got, "Urgent") {
		t.Errorf("unknown priority not shown, got:\n%s", got)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"medium", "Medium"},
		{"HIGH", "HIGH"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBrowserViewFiltering(t *testing.T) {
	mgr := newBrowserManager(t)
	model := &browserModel{mgr: mgr, styles: PlainStyles()}

	view := model.View()
	if !strings.Contains(view, "All Tasks") {
		t.Errorf("default view missing All Tasks header:\n%s", view)
	}
	if !strings.Contains(view, "Buy milk") || !strings.Contains(view, "Buy eggs") {
		t.Errorf("default view missing tasks:\n%s", view)
	}

	model.filter = task.StatusPending
	view = model.View()
	if !strings.Contains(view, "Pending Tasks") {
		t.Errorf("pending view missing header:\n%s", view)
	}
	if strings.Contains(view, "Buy eggs") {
		t.Errorf("pending view shows completed task:\n%s", view)
	}

	model.filter = task.StatusCompleted
	view = model.View()
	if strings.Contains(view, "Buy milk") {
		t.Errorf("completed view shows pending task:\n%s", view)
	}
}

func newBrowserManager(t *testing.T) *task.Manager {
	t.Helper()
	mgr := task.NewManager(task.NewFileStore(t.TempDir()+"/todo_data.json"), nil)
	mgr.AddTask("Buy milk", "", "")
	mgr.AddTask("Buy eggs", "", "")
	mgr.MarkTaskCompleted("Buy eggs")
	return mgr
}
