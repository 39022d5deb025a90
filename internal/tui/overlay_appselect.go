package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"provisr/internal/step"
)

// appSelectState is the transient state of the app selection overlay: a
// cursor over the app list and one checkbox per app. A fresh state is
// created every time the overlay opens, so earlier selections never leak
// into a rerun.
type appSelectState struct {
	cursor   int
	selected []bool
}

func newAppSelectState(n int) appSelectState {
	return appSelectState{selected: make([]bool, n)}
}

// selectedIndices returns the checked positions in ascending order.
func (s appSelectState) selectedIndices() []int {
	var out []int
	for i, on := range s.selected {
		if on {
			out = append(out, i)
		}
	}
	return out
}

// updateAppSelect handles input while the app selection overlay is active.
func (m Model) updateAppSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rt := &m.runtimes[m.cursor]

	switch {
	case key.Matches(msg, m.selectKeys.Cancel):
		rt.Status = step.StatusPending
		rt.Append("App selection cancelled.\n")
		m.mode = ModeNone
		m.refreshLog()
		return m, nil

	case key.Matches(msg, m.selectKeys.Up):
		if m.appSelect.cursor > 0 {
			m.appSelect.cursor--
		}
		return m, nil

	case key.Matches(msg, m.selectKeys.Down):
		if m.appSelect.cursor+1 < len(m.appSelect.selected) {
			m.appSelect.cursor++
		}
		return m, nil

	case key.Matches(msg, m.selectKeys.Toggle):
		if len(m.appSelect.selected) > 0 {
			m.appSelect.selected[m.appSelect.cursor] = !m.appSelect.selected[m.appSelect.cursor]
		}
		return m, nil

	case key.Matches(msg, m.selectKeys.Confirm):
		st := &m.steps[m.cursor]
		selected := m.appSelect.selectedIndices()
		m.mode = ModeNone
		return m, runInstallCmd(m.exec, st.AppSelection, selected, rt, m.cursor)
	}

	return m, nil
}
