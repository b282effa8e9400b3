package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	filledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	outlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	cursorStyle  = lipgloss.NewStyle().Underline(true).Bold(true)
	plainStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle    = lipgloss.NewStyle().MarginTop(1)
)
