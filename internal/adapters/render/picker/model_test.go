package picker

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/parentfeel/parentfeel-cli/internal/domain"
	"github.com/parentfeel/parentfeel-cli/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChildModel(t *testing.T, selected ...domain.ChildAction) (Model[domain.ChildAction], *selection.State[domain.ChildAction]) {
	t.Helper()

	state := selection.NewState(context.Background(), domain.ChildCatalog(), nil, nil, selected...)
	return New(context.Background(), "Child actions", state), state
}

func send(t *testing.T, m Model[domain.ChildAction], msgs ...tea.Msg) (Model[domain.ChildAction], tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		updated, ok := next.(Model[domain.ChildAction])
		require.True(t, ok)
		m = updated
	}

	return m, cmd
}

func runes(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func TestModelTypingFiltersActions(t *testing.T) {
	t.Parallel()

	m, state := newChildModel(t)
	m, _ = send(t, m, runes("ING"))

	assert.Equal(t, "ING", state.SearchText())
	filtered := state.FilteredActions()
	assert.Len(t, filtered, len(domain.ChildCatalog().Actions()))

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, runes("kick"))
	filtered = state.FilteredActions()
	assert.Equal(t, []domain.ChildAction{domain.ChildHitting}, filtered)

	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, filtered[0], current)
}

func TestModelTabTogglesHighlightedAction(t *testing.T) {
	t.Parallel()

	m, state := newChildModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, []domain.ChildAction{domain.ChildScreaming}, state.Selected())
	assert.Equal(t, []domain.ChildAction{domain.ChildScreaming}, state.Recent())
	assert.Contains(t, m.View(), "[x] Screaming")
	assert.Contains(t, m.View(), "1 selected")

	_, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Empty(t, state.Selected())
	assert.Equal(t, []domain.ChildAction{domain.ChildScreaming}, state.Recent())
}

func TestModelArrowsSwitchCategory(t *testing.T) {
	t.Parallel()

	m, state := newChildModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, domain.ActionCategoryPositive, state.Category())

	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, domain.ChildLaughing, current)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, domain.ActionCategoryRecent, state.Category())

	_, ok = m.Current()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No matching actions.")
}

func TestModelCursorStaysInRange(t *testing.T) {
	t.Parallel()

	m, state := newChildModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, domain.ChildCrying, current)

	for range len(domain.ChildCatalog().Actions()) + 3 {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	current, ok = m.Current()
	require.True(t, ok)
	assert.Equal(t, domain.ChildComplimenting, current)

	m, _ = send(t, m, runes("cry"))
	assert.Equal(t, []domain.ChildAction{domain.ChildCrying}, state.FilteredActions())
	current, ok = m.Current()
	require.True(t, ok)
	assert.Equal(t, domain.ChildCrying, current)
}

func TestModelEnterFinishes(t *testing.T) {
	t.Parallel()

	m, _ := newChildModel(t, domain.ChildHelping)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Done())
	assert.False(t, m.Cancelled())
	assert.Empty(t, m.View())
}

func TestModelEscCancels(t *testing.T) {
	t.Parallel()

	m, _ := newChildModel(t)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Cancelled())
}

func TestModelViewShowsTabsAndSeededSelection(t *testing.T) {
	t.Parallel()

	m, _ := newChildModel(t, domain.ChildCrying)
	view := m.View()

	assert.Contains(t, view, "Child actions")
	for _, category := range domain.ActionCategories() {
		assert.Contains(t, view, category.Label())
	}
	assert.Contains(t, view, "> [x] Crying")
	assert.Contains(t, view, "[ ] Screaming")
	assert.Contains(t, view, "1 selected")
}
