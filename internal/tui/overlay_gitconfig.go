package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"provisr/internal/step"
)

// gitField indexes the three inputs of the git config overlay.
type gitField int

const (
	fieldName gitField = iota
	fieldEmail
	fieldEditor
)

var gitFieldLabels = [3]string{"Name", "Email", "Editor"}

// gitConfigState is the transient state of the git config overlay: three
// text inputs and the focused field. The editor input is pre-seeded with
// the step's default editor; a fresh state is created every time the
// overlay opens.
type gitConfigState struct {
	focus  gitField
	inputs [3]textinput.Model
}

func newGitConfigState(defaultEditor string) (gitConfigState, tea.Cmd) {
	var s gitConfigState
	for i := range s.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 128
		in.Width = 40
		s.inputs[i] = in
	}
	s.inputs[fieldName].Placeholder = "Your Name"
	s.inputs[fieldEmail].Placeholder = "you@example.com"
	s.inputs[fieldEditor].SetValue(defaultEditor)
	return s, s.inputs[fieldName].Focus()
}

func (s *gitConfigState) focusNext() tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = (s.focus + 1) % 3
	return s.inputs[s.focus].Focus()
}

func (s *gitConfigState) focusPrev() tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = (s.focus + 2) % 3
	return s.inputs[s.focus].Focus()
}

// values returns the raw field contents; the handler does its own trimming.
func (s gitConfigState) values() (name, email, editor string) {
	return s.inputs[fieldName].Value(), s.inputs[fieldEmail].Value(), s.inputs[fieldEditor].Value()
}

// updateGitConfig handles input while the git config overlay is active.
// Confirm applies the configuration synchronously: the three git commands
// are non-interactive and fast, so no terminal handoff is needed.
func (m Model) updateGitConfig(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rt := &m.runtimes[m.cursor]

	switch {
	case key.Matches(msg, m.gitKeys.Cancel):
		rt.Status = step.StatusPending
		rt.Append("Git config cancelled.\n")
		m.mode = ModeNone
		m.refreshLog()
		return m, nil

	case key.Matches(msg, m.gitKeys.NextField):
		return m, m.gitConfig.focusNext()

	case key.Matches(msg, m.gitKeys.PrevField):
		return m, m.gitConfig.focusPrev()

	case key.Matches(msg, m.gitKeys.Confirm):
		st := &m.steps[m.cursor]
		name, email, editor := m.gitConfig.values()
		if err := m.exec.ApplyGitConfig(st.GitConfig, name, email, editor, rt); err != nil {
			rt.Status = step.StatusFailed
			rt.Appendf("\n[ERROR] %v\n", err)
		} else {
			rt.Status = step.StatusSuccess
		}
		m.mode = ModeNone
		m.refreshLog()
		m.logView.GotoTop()
		return m, nil

	default:
		var cmd tea.Cmd
		m.gitConfig.inputs[m.gitConfig.focus], cmd = m.gitConfig.inputs[m.gitConfig.focus].Update(msg)
		return m, cmd
	}
}
