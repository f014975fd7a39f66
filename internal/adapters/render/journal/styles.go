package journal

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/parentfeel/parentfeel-cli/internal/domain"
)

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	record     lipgloss.Style
	id         lipgloss.Style
	label      lipgloss.Style
	detail     lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	category   lipgloss.Style
	positive   lipgloss.Style
	negative   lipgloss.Style
	neutral    lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	count      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		record:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		id:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		category:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("180")),
		positive:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		negative:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		neutral:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		count:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

func (s styles) forActionCategory(category domain.ActionCategory) lipgloss.Style {
	switch category {
	case domain.ActionCategoryPositive:
		return s.positive
	case domain.ActionCategoryNegative:
		return s.negative
	default:
		return s.neutral
	}
}
