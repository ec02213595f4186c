// Package style provides small lipgloss render helpers.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tunesearch-cli/tunesearch/color"
)

// New returns an empty lipgloss.Style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a render function applying the foreground color.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Heading renders a listing group name.
var Heading = func(s string) string {
	return New().Bold(true).Foreground(color.HiCyan).Render(s)
}
