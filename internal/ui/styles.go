package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle renders the wizard banner.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	// PromptStyle renders the active question label.
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	// AnsweredStyle renders questions that were already answered.
	AnsweredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	// AnswerStyle renders the chosen value of an answered question.
	AnswerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("36"))

	// CursorStyle highlights the selected option in a choice prompt.
	CursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	// ProgressStyle renders progress lines from the reporter.
	ProgressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("36"))

	// WarnStyle renders non-fatal warnings.
	WarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	// ErrorStyle renders fatal errors.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	// HintStyle renders key hints under the active prompt.
	HintStyle = lipgloss.NewStyle().
			Faint(true)
)
