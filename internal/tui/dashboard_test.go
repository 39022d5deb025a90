package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"provisr/internal/executor"
	"provisr/internal/step"
)

// fakeRunner records commands instead of spawning a shell.
type fakeRunner struct {
	executed  []string
	streamed  []string
	exitCodes map[string]int
}

func (f *fakeRunner) Execute(command string) (*executor.Result, error) {
	f.executed = append(f.executed, command)
	return &executor.Result{ExitCode: f.exitCodes[command]}, nil
}

func (f *fakeRunner) ExecuteStreaming(command string) (int, error) {
	f.streamed = append(f.streamed, command)
	return f.exitCodes[command], nil
}

func testSteps() []step.Step {
	return []step.Step{
		{
			Name:   "update system",
			Kind:   step.KindScript,
			Script: "true",
		},
		{
			Name: "install apps",
			Kind: step.KindAppSelection,
			AppSelection: &step.AppSelectionParams{
				Apps: []step.AppDefinition{
					{Name: "curl", Version: "8", Install: "install-curl"},
					{Name: "git", Version: "2", Install: "install-git"},
					{Name: "vim", Version: "9", Install: "install-vim"},
				},
			},
		},
		{
			Name:      "git identity",
			Kind:      step.KindGitConfig,
			GitConfig: &step.GitConfigParams{DefaultEditor: "nano"},
		},
	}
}

func newTestModel(t *testing.T) (Model, *fakeRunner) {
	t.Helper()
	runner := &fakeRunner{exitCodes: map[string]int{}}
	exec := executor.New(runner, zap.NewNop())
	return New(testSteps(), "session transcript", exec), runner
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestNewStartsAllPending(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, ModeNone, m.mode)
	assert.Equal(t, 0, m.cursor)
	require.Len(t, m.runtimes, 3)
	for _, rt := range m.runtimes {
		assert.Equal(t, step.StatusPending, rt.Status)
	}
}

func TestCursorNavigationClamps(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runes("p"))
	assert.Equal(t, 0, m.cursor)

	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, runes("n"))
	assert.Equal(t, 2, m.cursor)

	m, _ = press(t, m, runes("p"))
	assert.Equal(t, 1, m.cursor)
}

func TestSkipMarksStep(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runes("s"))
	assert.Equal(t, step.StatusSkipped, m.runtimes[0].Status)
	assert.Contains(t, m.runtimes[0].Log(), "Step manually skipped.")
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestSessionLogToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runes("g"))
	assert.True(t, m.showSession)
	assert.Contains(t, m.logView.View(), "session transcript")

	m, _ = press(t, m, runes("g"))
	assert.False(t, m.showSession)
}

func TestEnterOpensAppSelectWithFreshSelection(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, runes("n"))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeAppSelect, m.mode)
	assert.Equal(t, step.StatusRunning, m.runtimes[1].Status)
	assert.Contains(t, m.runtimes[1].Log(), "== Running step: install apps (app selection) ==")

	require.Len(t, m.appSelect.selected, 3)
	for _, on := range m.appSelect.selected {
		assert.False(t, on)
	}
	assert.Equal(t, 0, m.appSelect.cursor)
}

func TestAppSelectCancelRestoresPending(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeNone, m.mode)
	assert.Equal(t, step.StatusPending, m.runtimes[1].Status)
	assert.Contains(t, m.runtimes[1].Log(), "App selection cancelled.")
}

func TestAppSelectSuppressesNavigation(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, runes("p"))
	assert.Equal(t, 1, m.cursor)
	assert.Equal(t, ModeAppSelect, m.mode)
}

func TestAppSelectCursorClampsAndToggles(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.appSelect.cursor)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.appSelect.cursor)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.appSelect.selected[2])
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, m.appSelect.selected[2])
}

func TestAppSelectConfirmOrdersSelection(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// check vim first, then curl; indices must come back ascending
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []int{0, 2}, m.appSelect.selectedIndices())

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeNone, m.mode)
	require.NotNil(t, cmd)
	assert.Equal(t, step.StatusRunning, m.runtimes[1].Status)
}

func TestInstallDoneTransitions(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = press(t, m, installDoneMsg{index: 1})
	assert.Equal(t, step.StatusSuccess, m.runtimes[1].Status)

	m.runtimes[1].Status = step.StatusRunning
	m, _ = press(t, m, installDoneMsg{index: 1, err: &executor.SpawnError{Command: "install-git"}})
	assert.Equal(t, step.StatusFailed, m.runtimes[1].Status)
	assert.Contains(t, m.runtimes[1].Log(), "[ERROR]")
}

func TestStepDoneErrorMarksFailed(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, stepDoneMsg{index: 0, err: &executor.SpawnError{Command: "true"}})
	assert.Equal(t, step.StatusFailed, m.runtimes[0].Status)
	assert.Contains(t, m.runtimes[0].Log(), "[ERROR]")
}

func TestEnterOpensGitConfigWithDefaultEditor(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, runes("n"))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeGitConfig, m.mode)
	assert.Equal(t, step.StatusRunning, m.runtimes[2].Status)
	assert.Contains(t, m.runtimes[2].Log(), "== Running step: git identity (git config) ==")

	_, _, editor := m.gitConfig.values()
	assert.Equal(t, "nano", editor)
	assert.Equal(t, fieldName, m.gitConfig.focus)
}

func TestGitConfigCancelRestoresPending(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeNone, m.mode)
	assert.Equal(t, step.StatusPending, m.runtimes[2].Status)
	assert.Contains(t, m.runtimes[2].Log(), "Git config cancelled.")
}

func TestGitConfigFieldCycling(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldEmail, m.gitConfig.focus)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldEditor, m.gitConfig.focus)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldName, m.gitConfig.focus)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldEditor, m.gitConfig.focus)
}

func TestGitConfigApply(t *testing.T) {
	m, runner := newTestModel(t)
	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = press(t, m, runes("Ada"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, runes("ada@example.com"))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeNone, m.mode)
	assert.Equal(t, step.StatusSuccess, m.runtimes[2].Status)
	require.Len(t, runner.executed, 3)
	assert.Equal(t, `git config --global user.name 'Ada'`, runner.executed[0])
	assert.Equal(t, `git config --global user.email 'ada@example.com'`, runner.executed[1])
	assert.Equal(t, `git config --global core.editor 'nano'`, runner.executed[2])
	assert.Contains(t, m.runtimes[2].Log(), "Git configuration updated.")
}

func TestGitConfigApplyValidationFailure(t *testing.T) {
	m, runner := newTestModel(t)
	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeNone, m.mode)
	assert.Equal(t, step.StatusFailed, m.runtimes[2].Status)
	assert.Contains(t, m.runtimes[2].Log(), "[ERROR]")
	assert.Empty(t, runner.executed)
}

func TestScrollStaysNonNegative(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.GreaterOrEqual(t, m.logView.YOffset, 0)
}
