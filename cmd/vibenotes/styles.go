package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vibecoding/vibenotes/internal/models"
)

// Theme is a color scheme for terminal output.
type Theme struct {
	Name string

	Title   lipgloss.Style
	Meta    lipgloss.Style
	Tag     lipgloss.Style
	Todo    lipgloss.Style
	Done    lipgloss.Style
	Warning lipgloss.Style
	Match   lipgloss.Style
}

// Light is the default theme.
var Light = Theme{
	Name: "light",

	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1d4ed8")),
	Meta:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
	Tag:     lipgloss.NewStyle().Foreground(lipgloss.Color("#0e7490")),
	Todo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#b45309")),
	Done:    lipgloss.NewStyle().Foreground(lipgloss.Color("#15803d")).Strikethrough(true),
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#b91c1c")),
	Match:   lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("#fde68a")),
}

// Dark mirrors Light with colors readable on dark terminals.
var Dark = Theme{
	Name: "dark",

	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60a5fa")),
	Meta:    lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af")),
	Tag:     lipgloss.NewStyle().Foreground(lipgloss.Color("#22d3ee")),
	Todo:    lipgloss.NewStyle().Foreground(lipgloss.Color("#fbbf24")),
	Done:    lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80")).Strikethrough(true),
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171")),
	Match:   lipgloss.NewStyle().Bold(true).Reverse(true),
}

// todoBadge renders the state marker shown before a note title.
func (t Theme) todoBadge(n models.Note) string {
	switch n.TodoState() {
	case models.StateActiveTodo:
		return t.Todo.Render("[ ]")
	case models.StateCompletedTodo:
		return t.Done.Render("[x]")
	}
	return "   "
}
