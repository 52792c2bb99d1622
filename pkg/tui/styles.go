package tui

import "github.com/charmbracelet/lipgloss"

var (
	headingStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)

	chipStyle         = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	chipSelectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
	chipTodayStyle    = lipgloss.NewStyle().Underline(true).Padding(0, 1)

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dangerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	pillStyle  = lipgloss.NewStyle().Faint(true)
	labelStyle = lipgloss.NewStyle().Width(10)
)
