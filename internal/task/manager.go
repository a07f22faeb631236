package task

import (
	"errors"
	"io"
	"io/fs"
	"strings"

	"github.com/charmbracelet/log"
)

// Manager owns the ordered task collection and its id counter, and
// mirrors every mutation to the backing Store before returning. It is
// single-owner: exactly one Manager per backing file at a time, no
// locking.
type Manager struct {
	store  Store
	logger *log.Logger
	tasks  []Task
	nextID int
}

// NewManager creates a manager over store and loads existing state. A
// missing, unreadable, or invalid state file is not an error: the
// manager logs it and starts with an empty list and the counter at 1.
func NewManager(store Store, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Manager{
		store:  store,
		logger: logger,
		nextID: 1,
	}
	m.load()
	return m
}

func (m *Manager) load() {
	state, err := m.store.Load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.logger.Info("no existing state file, starting empty")
		} else {
			m.logger.Warn("state file unusable, starting empty", "err", err)
		}
		m.tasks = nil
		m.nextID = 1
		return
	}

	m.tasks = state.Tasks
	m.nextID = state.NextID
	if m.nextID < 1 {
		m.nextID = 1
	}
}

// persist rewrites the backing file from current in-memory state. A
// failed save is logged and swallowed; in-memory state keeps going and
// may diverge from disk until the next successful save.
func (m *Manager) persist() {
	tasks := m.tasks
	if tasks == nil {
		tasks = []Task{}
	}
	state := &State{NextID: m.nextID, Tasks: tasks}
	if err := m.store.Save(state); err != nil {
		m.logger.Error("save tasks", "err", err)
	}
}

// AddTask appends a new pending task and persists. The description is
// trimmed first; an empty result is rejected with no mutation and no
// write. Empty priority or category fall back to the defaults.
func (m *Manager) AddTask(description string, priority Priority, category string) bool {
	description = strings.TrimSpace(description)
	if description == "" {
		return false
	}

	t := New(description, priority, category)
	t.ID = m.nextID
	m.tasks = append(m.tasks, t)
	m.nextID++
	m.persist()
	return true
}

// ListTasks returns a snapshot copy of all tasks in insertion order.
func (m *Manager) ListTasks() []Task {
	out := make([]Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// ListPendingTasks returns pending tasks, insertion order preserved.
func (m *Manager) ListPendingTasks() []Task {
	return m.listByStatus(StatusPending)
}

// ListCompletedTasks returns completed tasks, insertion order preserved.
func (m *Manager) ListCompletedTasks() []Task {
	return m.listByStatus(StatusCompleted)
}

func (m *Manager) listByStatus(status Status) []Task {
	out := make([]Task, 0)
	for _, t := range m.tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// MarkTaskCompleted completes the first pending task whose description
// matches (case-insensitive) and persists. Returns false with no
// mutation when no pending task matches, including when the only
// matches are already completed.
func (m *Manager) MarkTaskCompleted(description string) bool {
	for i := range m.tasks {
		if m.tasks[i].Matches(description) && m.tasks[i].Status == StatusPending {
			m.tasks[i].Complete()
			m.persist()
			return true
		}
	}
	return false
}

// MarkTaskCompletedByID completes the pending task with the given id
// and persists. Same contract as MarkTaskCompleted, keyed by exact id.
func (m *Manager) MarkTaskCompletedByID(id int) bool {
	for i := range m.tasks {
		if m.tasks[i].ID == id && m.tasks[i].Status == StatusPending {
			m.tasks[i].Complete()
			m.persist()
			return true
		}
	}
	return false
}

// RemoveTask removes the first task whose description matches
// (case-insensitive), any status, and persists. The removed id is not
// reused; the counter keeps counting.
func (m *Manager) RemoveTask(description string) bool {
	for i := range m.tasks {
		if m.tasks[i].Matches(description) {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			m.persist()
			return true
		}
	}
	return false
}

// ClearAllTasks empties the list, resets the id counter to 1, and
// persists. Always succeeds.
func (m *Manager) ClearAllTasks() bool {
	m.tasks = nil
	m.nextID = 1
	m.persist()
	return true
}

// GetTaskByDescription returns the first task whose description matches
// (case-insensitive). Read-only; the second result is false when no
// task matches.
func (m *Manager) GetTaskByDescription(description string) (Task, bool) {
	for _, t := range m.tasks {
		if t.Matches(description) {
			return t, true
		}
	}
	return Task{}, false
}

// IsEmpty reports whether the list has no tasks.
func (m *Manager) IsEmpty() bool {
	return len(m.tasks) == 0
}

// ContainsTask reports whether any task matches the description,
// ignoring case.
func (m *Manager) ContainsTask(description string) bool {
	_, ok := m.GetTaskByDescription(description)
	return ok
}

// NextID returns the id the next added task will receive.
func (m *Manager) NextID() int {
	return m.nextID
}
