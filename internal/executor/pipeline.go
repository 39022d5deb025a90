package executor

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"provisr/internal/step"
)

// Executor implements step semantics on top of a CommandRunner.
type Executor struct {
	runner CommandRunner
	logger *zap.Logger
}

// New creates an Executor. The runner is the shell capability used for every
// command a step issues.
func New(runner CommandRunner, logger *zap.Logger) *Executor {
	return &Executor{
		runner: runner,
		logger: logger,
	}
}

// Run executes the pre/main/post pipeline for a non-interactive step and
// sets the terminal status on rt:
//
//   - a failed pre_script skips the step; the main task and post_script
//     never run
//   - a failed script fails the step; the post_script does not run
//   - a failed post_script fails the step
//   - otherwise the step succeeds
//
// Interactive kinds (git_config, app_selection) are not driven here; the
// dashboard collects input and calls ApplyGitConfig or ApplyAppSelection.
// A returned error is spawn- or write-level; the caller marks the step
// Failed and appends the error to the transcript.
func (e *Executor) Run(st *step.Step, rt *step.Runtime) error {
	rt.Status = step.StatusRunning
	rt.Appendf("== Running step: %s ==\n", st.Name)

	e.logger.Info("running step",
		zap.String("step", st.Name),
		zap.String("kind", st.Kind.String()),
	)

	if st.PreScript != "" {
		rt.Append("\n--- pre_script ---\n")
		res, err := e.runner.Execute(st.PreScript)
		if err != nil {
			return err
		}
		rt.Append(FormatResult(st.PreScript, res))
		if res.ExitCode != 0 {
			rt.Append("\npre_script failed; step will be skipped.\n")
			rt.Status = step.StatusSkipped
			return nil
		}
	}

	switch st.Kind {
	case step.KindScript:
		if st.Script != "" {
			rt.Append("\n--- script ---\n")
			res, err := e.runner.Execute(st.Script)
			if err != nil {
				return err
			}
			rt.Append(FormatResult(st.Script, res))
			if res.ExitCode != 0 {
				rt.Status = step.StatusFailed
				return nil
			}
		} else {
			rt.Append("\nNo script specified for script step.\n")
		}

	case step.KindAddText:
		rt.Appendf("\n--- add_text to %s ---\n", st.AddText.File)
		if err := e.appendText(st.AddText, rt); err != nil {
			return err
		}

	case step.KindGitConfig:
		rt.Append("\n--- git_config (handled interactively) ---\n")

	case step.KindAppSelection:
		rt.Append("\n--- app_selection (handled interactively) ---\n")
	}

	if st.PostScript != "" {
		rt.Append("\n--- post_script ---\n")
		res, err := e.runner.Execute(st.PostScript)
		if err != nil {
			return err
		}
		rt.Append(FormatResult(st.PostScript, res))
		if res.ExitCode != 0 {
			rt.Status = step.StatusFailed
			return nil
		}
	}

	if rt.Status == step.StatusRunning {
		rt.Status = step.StatusSuccess
	}
	return nil
}

// appendText opens the target file for create-or-append and writes the
// content followed by a newline.
func (e *Executor) appendText(params *step.AddTextParams, rt *step.Runtime) error {
	f, err := os.OpenFile(params.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return &WriteError{Path: params.File, Err: err}
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, params.Content); err != nil {
		return &WriteError{Path: params.File, Err: err}
	}

	rt.Appendf("Appended content to %s\n", params.File)
	return nil
}
