package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"provisr/internal/executor"
	"provisr/internal/step"
)

// Mode identifies which interactive overlay, if any, currently owns input.
// At most one overlay exists at a time; while one is active, step navigation
// is suppressed and only the overlay's keys are handled.
type Mode int

const (
	ModeNone Mode = iota
	ModeAppSelect
	ModeGitConfig
)

// Model is the dashboard state: the immutable step list, one runtime per
// step, the cursor, and the current mode with its transient overlay state.
type Model struct {
	steps    []step.Step
	runtimes []step.Runtime
	cursor   int
	mode     Mode

	appSelect appSelectState
	gitConfig gitConfigState

	// sessionLog holds the sudo bootstrap transcript; toggled into the log
	// pane with the session-log key.
	sessionLog  string
	showSession bool

	logView viewport.Model
	width   int
	height  int

	help       help.Model
	keys       dashboardKeyMap
	selectKeys selectKeyMap
	gitKeys    gitKeyMap

	exec *executor.Executor
}

// New creates the dashboard model. The step list must already be validated;
// one pending runtime is allocated per step.
func New(steps []step.Step, sessionLog string, exec *executor.Executor) Model {
	width, height := GetTerminalSize()

	m := Model{
		steps:      steps,
		runtimes:   step.NewRuntimes(len(steps)),
		sessionLog: sessionLog,
		logView:    viewport.New(0, 0),
		width:      width,
		height:     height,
		help:       help.New(),
		keys:       newDashboardKeyMap(),
		selectKeys: newSelectKeyMap(),
		gitKeys:    newGitKeyMap(),
		exec:       exec,
	}
	m.resize()
	m.refreshLog()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update routes every message on the current mode.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case stepDoneMsg:
		return m.finishStep(msg), nil

	case installDoneMsg:
		return m.finishInstall(msg), nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case ModeAppSelect:
			return m.updateAppSelect(msg)
		case ModeGitConfig:
			return m.updateGitConfig(msg)
		default:
			return m.updateDashboard(msg)
		}
	}

	return m, nil
}

// updateDashboard handles input in normal navigation mode.
func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		if m.cursor+1 < len(m.steps) {
			m.cursor++
			m.showSession = false
			m.refreshLog()
			m.logView.GotoTop()
		}
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		if m.cursor > 0 {
			m.cursor--
			m.showSession = false
			m.refreshLog()
			m.logView.GotoTop()
		}
		return m, nil

	case key.Matches(msg, m.keys.Skip):
		// Manual override: forces Skipped regardless of the current status.
		rt := &m.runtimes[m.cursor]
		rt.Status = step.StatusSkipped
		rt.Append("Step manually skipped.\n")
		m.refreshLog()
		return m, nil

	case key.Matches(msg, m.keys.SessionLog):
		m.showSession = !m.showSession
		m.refreshLog()
		m.logView.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Run):
		return m.startStep()

	default:
		// Everything else, including up/down/pgup/pgdown, is transcript
		// scrolling; the viewport clamps the offset at both ends.
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd
	}
}

// startStep dispatches the confirm key on the step under the cursor: the
// interactive kinds open their overlay, everything else runs the pipeline
// with the terminal released.
func (m Model) startStep() (tea.Model, tea.Cmd) {
	st := &m.steps[m.cursor]
	rt := &m.runtimes[m.cursor]

	switch st.Kind {
	case step.KindAppSelection:
		rt.Status = step.StatusRunning
		rt.Appendf("== Running step: %s (app selection) ==\n", st.Name)
		m.appSelect = newAppSelectState(len(st.AppSelection.Apps))
		m.mode = ModeAppSelect
		m.showSession = false
		m.refreshLog()
		m.logView.GotoTop()
		return m, nil

	case step.KindGitConfig:
		rt.Status = step.StatusRunning
		rt.Appendf("== Running step: %s (git config) ==\n", st.Name)
		var cmd tea.Cmd
		m.gitConfig, cmd = newGitConfigState(st.GitConfig.DefaultEditor)
		m.mode = ModeGitConfig
		m.showSession = false
		m.refreshLog()
		m.logView.GotoTop()
		return m, cmd

	default:
		m.showSession = false
		return m, runStepCmd(m.exec, st, rt, m.cursor)
	}
}

// finishStep folds a pipeline result back into the step's runtime. The
// pipeline sets terminal statuses itself; only spawn- and write-level errors
// arrive here.
func (m Model) finishStep(msg stepDoneMsg) Model {
	if msg.err != nil {
		rt := &m.runtimes[msg.index]
		rt.Status = step.StatusFailed
		rt.Appendf("\n[ERROR] %v\n", msg.err)
	}
	m.refreshLog()
	m.logView.GotoTop()
	return m
}

// finishInstall folds an install batch result back into the step's runtime.
func (m Model) finishInstall(msg installDoneMsg) Model {
	rt := &m.runtimes[msg.index]
	if msg.err != nil {
		rt.Status = step.StatusFailed
		rt.Appendf("\n[ERROR] %v\n", msg.err)
	} else if rt.Status == step.StatusRunning {
		rt.Status = step.StatusSuccess
	}
	m.refreshLog()
	m.logView.GotoTop()
	return m
}

// refreshLog loads the log pane with the current step's transcript (or the
// session log when toggled).
func (m *Model) refreshLog() {
	if m.showSession {
		m.logView.SetContent(m.sessionLog)
		return
	}
	if len(m.runtimes) > 0 {
		m.logView.SetContent(m.runtimes[m.cursor].Log())
	}
}

// resize recomputes the log pane dimensions from the window size.
func (m *Model) resize() {
	logWidth, logHeight := m.logPaneSize()
	m.logView.Width = logWidth
	m.logView.Height = logHeight
	m.refreshLog()
}
