// Package picker is the interactive terminal action picker. It drives a
// selection.State from key presses.
package picker

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/parentfeel/parentfeel-cli/internal/domain"
	"github.com/parentfeel/parentfeel-cli/internal/selection"
)

const (
	searchCharLimit = 64
	searchWidth     = 32
	helpText        = "↑/↓ move · tab toggle · ←/→ category · enter done · esc cancel"
)

type Model[T domain.Action] struct {
	ctx        context.Context
	title      string
	state      *selection.State[T]
	search     textinput.Model
	categories []domain.ActionCategory
	tab        int
	cursor     int
	styles     styles
	done       bool
	cancelled  bool
}

func New[T domain.Action](ctx context.Context, title string, state *selection.State[T]) Model[T] {
	ti := textinput.New()
	ti.Prompt = "search: "
	ti.Placeholder = "type to filter"
	ti.CharLimit = searchCharLimit
	ti.Width = searchWidth
	ti.SetValue(state.SearchText())
	ti.Focus()

	categories := domain.ActionCategories()
	tab := 0
	for i, category := range categories {
		if category == state.Category() {
			tab = i
		}
	}

	return Model[T]{
		ctx:        ctx,
		title:      title,
		state:      state,
		search:     ti,
		categories: categories,
		tab:        tab,
		styles:     newStyles(),
	}
}

func (m Model[T]) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "ctrl+n":
		if m.cursor < len(m.state.FilteredActions())-1 {
			m.cursor++
		}
		return m, nil
	case "right":
		m.setTab((m.tab + 1) % len(m.categories))
		return m, nil
	case "left":
		m.setTab((m.tab + len(m.categories) - 1) % len(m.categories))
		return m, nil
	case "tab":
		if action, ok := m.Current(); ok {
			m.state.Toggle(m.ctx, action)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.state.SearchText() {
		m.state.SetSearchText(m.search.Value())
		m.clampCursor()
	}

	return m, cmd
}

func (m Model[T]) View() string {
	if m.done || m.cancelled {
		return ""
	}

	lines := []string{
		m.styles.title.Render(m.title),
		m.tabsView(),
		m.search.View(),
		"",
	}

	actions := m.state.FilteredActions()
	if len(actions) == 0 {
		lines = append(lines, m.styles.empty.Render("No matching actions."))
	}
	for i, action := range actions {
		lines = append(lines, m.itemView(action, i == m.cursor))
	}

	lines = append(lines, m.styles.help.Render(fmt.Sprintf("%d selected · %s", len(m.state.Selected()), helpText)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Current is the highlighted action, if the filtered list is not empty.
func (m Model[T]) Current() (T, bool) {
	actions := m.state.FilteredActions()
	if m.cursor < 0 || m.cursor >= len(actions) {
		var zero T
		return zero, false
	}

	return actions[m.cursor], true
}

func (m Model[T]) Done() bool {
	return m.done
}

func (m Model[T]) Cancelled() bool {
	return m.cancelled
}

func (m *Model[T]) setTab(tab int) {
	m.tab = tab
	m.state.SetCategory(m.categories[tab])
	m.cursor = 0
}

func (m *Model[T]) clampCursor() {
	count := len(m.state.FilteredActions())
	if m.cursor >= count {
		m.cursor = max(count-1, 0)
	}
}

func (m Model[T]) tabsView() string {
	tabs := make([]string, 0, len(m.categories))
	for i, category := range m.categories {
		style := m.styles.tab
		if i == m.tab {
			style = m.styles.activeTab
		}
		tabs = append(tabs, style.Render(category.Label()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model[T]) itemView(action T, highlighted bool) string {
	pointer := "  "
	if highlighted {
		pointer = m.styles.cursor.Render("> ")
	}

	box := "[ ]"
	label := m.styles.item.Render(action.Label())
	if m.state.Contains(action) {
		box = m.styles.checked.Render("[x]")
		label = m.styles.checked.Render(action.Label())
	}

	return strings.Join([]string{pointer, box, " ", label}, "")
}

// Run shows the picker until the user confirms or cancels. ok is false on
// cancel, in which case the caller should keep its previous selection.
func Run[T domain.Action](ctx context.Context, in io.Reader, out io.Writer, title string, state *selection.State[T]) (selected []T, ok bool, err error) {
	p := tea.NewProgram(
		New(ctx, title, state),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, fmt.Errorf("run %s picker: %w", state.Domain(), err)
	}

	result, isModel := finalModel.(Model[T])
	if !isModel {
		return nil, false, fmt.Errorf("unexpected final picker model type %T", finalModel)
	}
	if result.Cancelled() {
		return nil, false, nil
	}

	return state.Selected(), true, nil
}
