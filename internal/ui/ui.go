// Package ui holds the console styles shared by the wizard and the
// commands.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const (
	ColorBlue  = "12"
	ColorGray  = "8"
	ColorGreen = "10"
	ColorRed   = "9"
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorBlue))
	Prompt   = lipgloss.NewStyle().Bold(true)
	Dim      = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray))
	Success  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen))
	Selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorBlue))
	Warn     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed))
)

// Interactive reports whether stdout is a terminal. The template picker is
// only offered when it is.
func Interactive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
