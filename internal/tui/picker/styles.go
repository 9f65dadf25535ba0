package picker

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#7C5CFF")
	muted  = lipgloss.Color("240")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFDF5")).Background(accent).Padding(0, 1)
	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 2).Width(16).Align(lipgloss.Center)
	cursorCard = cardStyle.BorderForeground(lipgloss.Color("250"))
	pickedCard = cardStyle.BorderForeground(accent).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(muted)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	// Toasts keep the dark theme of the web notices.
	toastStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFDF5")).Background(lipgloss.Color("#333333")).Padding(0, 1)
	errorToast = toastStyle.Foreground(lipgloss.Color("#FF6B6B"))
)
