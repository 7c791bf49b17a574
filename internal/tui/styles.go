package tui

import (
	"kospi-dashboard/internal/chart"
	"kospi-dashboard/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	colors    chart.Palette
	title     lipgloss.Style
	section   lipgloss.Style
	text      lipgloss.Style
	muted     lipgloss.Style
	accent    lipgloss.Style
	positive  lipgloss.Style
	negative  lipgloss.Style
	neutral   lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	card      lipgloss.Style
}

func newStyles(theme chart.Theme) styles {
	c := theme.Colors
	return styles{
		colors:    c,
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Cyan)),
		section:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Text)).MarginTop(1),
		text:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.Text)),
		muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.Muted)),
		accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Cyan)),
		positive:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Green)),
		negative:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Red)),
		neutral:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Amber)),
		tab:       lipgloss.NewStyle().Foreground(lipgloss.Color(c.Muted)),
		activeTab: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Background)).Background(lipgloss.Color(c.Cyan)),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Border)).
			Padding(0, 1),
	}
}

// color renders s in a hex color taken from the view model.
func color(hex, s string) string {
	if hex == "" {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(s)
}

func (st styles) tone(t domain.Tone) lipgloss.Style {
	switch t {
	case domain.TonePositive:
		return st.positive
	case domain.ToneNegative:
		return st.negative
	}
	return st.neutral
}
