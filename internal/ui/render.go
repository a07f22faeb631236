// Package ui renders task listings and provides the terminal browser.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskman-cli/taskman/internal/task"
)

// Glyphs used in listings.
const (
	completedGlyph = "✓"
	pendingGlyph   = "○"
	priorityGlyph  = "●"
)

// Styles holds the lipgloss styles for task rendering.
type Styles struct {
	Title     lipgloss.Style
	Completed lipgloss.Style
	Pending   lipgloss.Style
	High      lipgloss.Style
	Medium    lipgloss.Style
	Low       lipgloss.Style
	Faint     lipgloss.Style
}

// DefaultStyles returns the colored style set.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true),
		Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		High:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Medium:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Low:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Faint:     lipgloss.NewStyle().Faint(true),
	}
}

// PlainStyles returns an uncolored style set for non-TTY output.
func PlainStyles() Styles {
	return Styles{}
}

// statusGlyph returns the status marker for a task.
func (s Styles) statusGlyph(t task.Task) string {
	if t.Status == task.StatusCompleted {
		return s.Completed.Render(completedGlyph)
	}
	return s.Pending.Render(pendingGlyph)
}

// priorityMarker returns the colored priority dot. Unknown priorities
// get an uncolored dot; the value itself is still shown.
func (s Styles) priorityMarker(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return s.High.Render(priorityGlyph)
	case task.PriorityMedium:
		return s.Medium.Render(priorityGlyph)
	case task.PriorityLow:
		return s.Low.Render(priorityGlyph)
	}
	return priorityGlyph
}

// FormatTasks renders a titled task listing. An empty list renders as
// "No <title> found." with the title lowercased.
func FormatTasks(tasks []task.Task, title string, s Styles) string {
	if len(tasks) == 0 {
		return fmt.Sprintf("\nNo %s found.\n", strings.ToLower(title))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s:\n", s.Title.Render(title))
	for _, t := range tasks {
		fmt.Fprintf(&b, "  %s [%d] %s\n", s.statusGlyph(t), t.ID, t.Description)
		fmt.Fprintf(&b, "    Priority: %s %s | Category: %s\n",
			s.priorityMarker(t.Priority), titleCase(string(t.Priority)), t.Category)
		fmt.Fprintf(&b, "    %s\n", s.Faint.Render("Created: "+t.CreatedDate.String()))
		if t.CompletedDate != nil {
			fmt.Fprintf(&b, "    %s\n", s.Faint.Render("Completed: "+t.CompletedDate.String()))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// titleCase uppercases the first letter of s.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
