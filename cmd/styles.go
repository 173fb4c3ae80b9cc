package cmd

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for command output.
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Failure lipgloss.Style
	Hint    lipgloss.Style
	Command lipgloss.Style
	Label   lipgloss.Style
	Dim     lipgloss.Style
	Added   lipgloss.Style
	Removed lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true), // cyan
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),            // green
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),            // yellow
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),            // red
		Hint:    lipgloss.NewStyle().Faint(true),
		Command: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true), // blue
		Dim:     lipgloss.NewStyle().Faint(true),
		Added:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Removed: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}
