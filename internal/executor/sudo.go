package executor

import (
	"strings"

	"go.uber.org/zap"
)

// PrimeSudo warms the sudo credential cache with `sudo -v` so privileged
// step commands can run later without prompting mid-pipeline. It must be
// called while the terminal is still in cooked mode, because sudo prompts
// for the password on the controlling terminal.
//
// The returned transcript is shown in the dashboard's session log. A
// SpawnError or a nonzero exit is fatal to startup: a runner that cannot
// elevate would fail most useful steps anyway.
func (e *Executor) PrimeSudo() (string, error) {
	const command = "sudo -v"

	var b strings.Builder
	b.WriteString("Priming sudo session with `sudo -v`...\n")

	res, err := e.runner.Execute(command)
	if err != nil {
		return b.String(), err
	}
	b.WriteString(FormatResult(command, res))

	if res.ExitCode != 0 {
		e.logger.Error("sudo bootstrap failed", zap.Int("exit_code", res.ExitCode))
		return b.String(), &CommandError{Command: command, ExitCode: res.ExitCode}
	}

	e.logger.Info("sudo session primed")
	return b.String(), nil
}
