package ui

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for command output and the review TUI
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("159")).
			Background(lipgloss.Color("236")).
			Bold(true).
			Padding(0, 2).
			MarginBottom(1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75"))

	ProcessingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)
)
