// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#6C8EEF")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates warnings, including duplicate tickets.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates failed OCR reads.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)

	// StarStyle renders the confidence stars.
	StarStyle = lipgloss.NewStyle().
			Foreground(WarningColor)
)

// FormatTitle formats a section title.
func FormatTitle(text string) string {
	return TitleStyle.Render(text)
}

// FormatSuccess formats a success message.
func FormatSuccess(text string) string {
	return SuccessStyle.Render(text)
}

// FormatWarning formats a warning message.
func FormatWarning(text string) string {
	return WarningStyle.Render(text)
}

// FormatError formats an error message.
func FormatError(text string) string {
	return ErrorStyle.Render(text)
}

// RenderBox renders titled content inside a rounded border.
func RenderBox(title, content string) string {
	return BoxStyle.Render(FormatTitle(title) + "\n\n" + content)
}

// Stars renders a [1,5] confidence score as filled and empty stars.
func Stars(confidence int) string {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 5 {
		confidence = 5
	}
	return StarStyle.Render(strings.Repeat("★", confidence) + strings.Repeat("☆", 5-confidence))
}
