package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Label    lipgloss.Style
	Card     lipgloss.Style
	Focused  lipgloss.Style
	Equals   lipgloss.Style
	Result   lipgloss.Style
	Invalid  lipgloss.Style
	Formula  lipgloss.Style
	Note     lipgloss.Style
	Toast    lipgloss.Style
}

func DefaultTheme() Theme {
	card := lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Label:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Card:     card,
		Focused:  card.BorderForeground(lipgloss.Color("63")),
		Equals:   lipgloss.NewStyle().Bold(true).Padding(2, 2),
		Result:   lipgloss.NewStyle().Bold(true),
		Invalid:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Formula: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).BorderTop(false).BorderRight(false).BorderBottom(false).
			BorderForeground(lipgloss.Color("63")),
		Note:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Toast: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
