package picker

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	cursor    lipgloss.Style
	item      lipgloss.Style
	checked   lipgloss.Style
	empty     lipgloss.Style
	help      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		activeTab: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Underline(true).Padding(0, 1),
		cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		item:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		checked:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		empty:     lipgloss.NewStyle().Faint(true),
		help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
	}
}
