// File: styles.go
// Title: Terminal Styles
// Description: Color palette and lipgloss styles shared by the playground
//              and the inspect table.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-03-02 v0.2.0: Result, codepoint and predicate styles for stringy

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	// Title styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// Box styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Result styles
	NameStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Width(16)

	OutputStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)

	// Predicate styles
	TrueStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	FalseStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Table styles
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// Status styles
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(colorFg).
			Padding(0, 1)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	// Input style
	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)

	// Tab styles
	TabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(colorMuted)

	ActiveTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(colorPrimary).
			Bold(true).
			Underline(true)
)

// RenderTitle renders a section title
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

// RenderError renders an error line
func RenderError(err string) string {
	return ErrorMessageStyle.Render("Error: " + err)
}

// RenderHelp renders a key help line
func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}

// RenderBool renders a predicate result
func RenderBool(b bool) string {
	if b {
		return TrueStyle.Render("yes")
	}
	return FalseStyle.Render("no")
}
