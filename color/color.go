// Package color holds the terminal colors used across the CLI.
package color

import "github.com/charmbracelet/lipgloss"

// New makes a lipgloss color from an ANSI index or hex value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")

	HiRed    = New("9")
	HiPurple = New("13")

	Gray = New("#808080")
)
