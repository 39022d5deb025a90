package executor

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"provisr/internal/step"
)

// ApplyGitConfig applies the collected git identity. All three inputs are
// trimmed; an empty editor falls back to the step's default_editor. Fails
// with a ValidationError before issuing any command if the trimmed name or
// email is empty. The three git commands run in order and stop at the first
// failure; prior commands are not rolled back.
func (e *Executor) ApplyGitConfig(params *step.GitConfigParams, name, email, editor string, rt *step.Runtime) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	editor = strings.TrimSpace(editor)
	if editor == "" {
		editor = params.DefaultEditor
	}

	if name == "" {
		return &ValidationError{Field: "user.name", Reason: "cannot be empty"}
	}
	if email == "" {
		return &ValidationError{Field: "user.email", Reason: "cannot be empty"}
	}

	commands := []string{
		"git config --global user.name " + singleQuote(name),
		"git config --global user.email " + singleQuote(email),
		"git config --global core.editor " + singleQuote(editor),
	}

	for _, cmd := range commands {
		res, err := e.runner.Execute(cmd)
		if err != nil {
			return err
		}
		rt.Append(FormatResult(cmd, res))
		if res.ExitCode != 0 {
			return &CommandError{Command: cmd, ExitCode: res.ExitCode}
		}
	}

	rt.Append("Git configuration updated.\n")
	e.logger.Info("git configuration applied",
		zap.String("user_name", name),
		zap.String("editor", editor),
	)
	return nil
}

// ApplyAppSelection installs the selected apps in the order given (the
// dashboard produces indices in ascending order). A failed install is logged
// and does not stop the batch; every selected app is attempted exactly once.
// Only a spawn-level error aborts the remaining installs.
func (e *Executor) ApplyAppSelection(params *step.AppSelectionParams, selected []int, rt *step.Runtime) error {
	if len(params.Apps) == 0 {
		rt.Append("No apps defined in this step.\n")
		return nil
	}
	if len(selected) == 0 {
		rt.Append("No apps selected.\n")
		return nil
	}

	for _, idx := range selected {
		if idx < 0 || idx >= len(params.Apps) {
			continue
		}
		app := params.Apps[idx]

		rt.Appendf("Installing %s (%s) using: %s\n", app.Name, app.Version, app.Install)
		exitCode, err := e.runner.ExecuteStreaming(app.Install)
		if err != nil {
			return err
		}
		if exitCode != 0 {
			rt.Appendf("Installation of %s failed (exit code %d).\n", app.Name, exitCode)
			e.logger.Warn("app install failed",
				zap.String("app", app.Name),
				zap.Int("exit_code", exitCode),
			)
		}
	}

	return nil
}

// singleQuote wraps a value in single quotes for the shell, escaping any
// embedded single quote as \'.
func singleQuote(v string) string {
	return "'" + strings.ReplaceAll(v, "'", `\'`) + "'"
}

// GitCommandPreview returns the git commands ApplyGitConfig would issue for
// the given raw field values, for display in the dashboard overlay.
func GitCommandPreview(name, email, editor string) []string {
	return []string{
		fmt.Sprintf("git config --global user.name %s", singleQuote(name)),
		fmt.Sprintf("git config --global user.email %s", singleQuote(email)),
		fmt.Sprintf("git config --global core.editor %s", singleQuote(editor)),
	}
}
