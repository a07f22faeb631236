package task

import (
	"encoding/json"
	"fmt"
	"os"
)

// State is the durable snapshot of a Manager: the id counter plus the
// ordered task list.
type State struct {
	NextID int    `json:"next_id"`
	Tasks  []Task `json:"tasks"`
}

// Store reads and writes a State snapshot. The Manager mutates in
// memory and hands the full snapshot to Save after every change; Load
// runs once at construction.
type Store interface {
	Load() (*State, error)
	Save(*State) error
}

// FileStore persists State as JSON in a single file, rewriting the
// whole file on every save.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path. The file is
// not touched until the first Load or Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and validates the state file. A missing file surfaces as
// an error wrapping fs.ErrNotExist so callers can tell it apart from a
// corrupt one.
func (s *FileStore) Load() (*State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	if err := validateState(data); err != nil {
		return nil, fmt.Errorf("validate state file: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse state file: %w", err)
	}

	return &state, nil
}

// Save writes the state file with 2-space indentation.
func (s *FileStore) Save(state *State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	// Add trailing newline
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}
