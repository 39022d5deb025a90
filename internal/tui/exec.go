package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"provisr/internal/executor"
	"provisr/internal/step"
)

// stepDoneMsg reports completion of a non-interactive step pipeline.
type stepDoneMsg struct {
	index int
	err   error
}

// installDoneMsg reports completion of an app install batch.
type installDoneMsg struct {
	index int
	err   error
}

// stepExec runs a step pipeline as a tea.ExecCommand: bubbletea releases the
// terminal before Run and restores it afterward, so scripts may prompt or
// stream output natively. The runtime is only touched again once the done
// message arrives back in Update.
type stepExec struct {
	exec *executor.Executor
	st   *step.Step
	rt   *step.Runtime
}

func (c *stepExec) Run() error { return c.exec.Run(c.st, c.rt) }

// The executor inherits the process's stdio directly; the setters are
// required by the tea.ExecCommand interface but unused.
func (c *stepExec) SetStdin(io.Reader)  {}
func (c *stepExec) SetStdout(io.Writer) {}
func (c *stepExec) SetStderr(io.Writer) {}

// installExec runs the app-selection install batch under the same terminal
// handoff, since installers stream progress to the terminal.
type installExec struct {
	exec     *executor.Executor
	params   *step.AppSelectionParams
	selected []int
	rt       *step.Runtime
}

func (c *installExec) Run() error {
	return c.exec.ApplyAppSelection(c.params, c.selected, c.rt)
}

func (c *installExec) SetStdin(io.Reader)  {}
func (c *installExec) SetStdout(io.Writer) {}
func (c *installExec) SetStderr(io.Writer) {}

// runStepCmd returns the command that executes the step at index with the
// terminal released.
func runStepCmd(exec *executor.Executor, st *step.Step, rt *step.Runtime, index int) tea.Cmd {
	return tea.Exec(&stepExec{exec: exec, st: st, rt: rt}, func(err error) tea.Msg {
		return stepDoneMsg{index: index, err: err}
	})
}

// runInstallCmd returns the command that installs the selected apps of the
// step at index with the terminal released.
func runInstallCmd(exec *executor.Executor, params *step.AppSelectionParams, selected []int, rt *step.Runtime, index int) tea.Cmd {
	return tea.Exec(&installExec{exec: exec, params: params, selected: selected, rt: rt}, func(err error) tea.Msg {
		return installDoneMsg{index: index, err: err}
	})
}
