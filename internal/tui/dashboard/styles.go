// ============================================================================
// MCK Infra Lab - Grading Dashboard Terminal Client
// ============================================================================
//
// Package:     dashboard
// Description: Styles for the dashboard TUI
// Created:     2026-08-30
// License:     MIT
// ============================================================================

package dashboard

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
)

// Header styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	ConnOpenStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	ConnClosedStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	ConnConnectingStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	TimerStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	EntryTextStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// Status line styles
var (
	StatusOKStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError)
)

// Result styles
var (
	SummaryMatchStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	SummaryMismatchStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	CardTitleStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	CardMetaStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Sync indicator styles
var (
	SyncOnStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	SyncOffStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	SyncPendingStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)
)

// Log styles
var (
	LogPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted)

	LogCountStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Help bar styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// RenderKeyHint renders one key shortcut for the help bar.
func RenderKeyHint(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}
