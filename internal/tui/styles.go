package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/steamdirs/internal/config"
)

// Styles holds the lipgloss styles of the browser screen.
type Styles struct {
	Normal    lipgloss.Style
	Highlight lipgloss.Style
	Border    lipgloss.Style
	Title     lipgloss.Style
	Status    lipgloss.Style
	Hint      lipgloss.Style
}

// NewStyles builds styles from configured colors. Empty colors keep the
// terminal default.
func NewStyles(c config.Colors) Styles {
	border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	if c.Border.FG != "" {
		border = border.BorderForeground(lipgloss.Color(c.Border.FG))
	}

	return Styles{
		Normal:    pair(lipgloss.NewStyle(), c.Normal),
		Highlight: pair(lipgloss.NewStyle().Bold(true), c.Highlight),
		Border:    border,
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Status:    pair(lipgloss.NewStyle(), c.Status),
		Hint:      lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

// DefaultStyles returns the styles for the default colors.
func DefaultStyles() Styles {
	return NewStyles(config.Default().Colors)
}

func pair(s lipgloss.Style, p config.ColorPair) lipgloss.Style {
	if p.FG != "" {
		s = s.Foreground(lipgloss.Color(p.FG))
	}
	if p.BG != "" {
		s = s.Background(lipgloss.Color(p.BG))
	}
	return s
}
