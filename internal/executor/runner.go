package executor

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Result is the captured outcome of a successfully spawned command. A
// nonzero exit code is normal data here, not an error.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner is the shell-execution capability the executor is built on.
type CommandRunner interface {
	// Execute runs a command line through the shell and captures both
	// output streams fully. It returns a SpawnError only when the process
	// could not be started.
	Execute(command string) (*Result, error)

	// ExecuteStreaming runs a command line with stdin/stdout/stderr
	// attached to the controlling terminal and returns the exit code.
	// Output is not captured.
	ExecuteStreaming(command string) (int, error)
}

// Runner executes command lines through a shell.
type Runner struct {
	shell  string
	logger *zap.Logger
}

// NewRunner creates a Runner that executes commands via `bash -c`.
func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{
		shell:  "bash",
		logger: logger,
	}
}

// Execute implements CommandRunner.
func (r *Runner) Execute(command string) (*Result, error) {
	start := time.Now()

	cmd := exec.Command(r.shell, "-c", command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode, err := runAndExitCode(cmd)
	if err != nil {
		return nil, &SpawnError{Command: command, Err: err}
	}

	r.logger.Debug("command executed",
		zap.String("command", command),
		zap.Int("exit_code", exitCode),
		zap.Int("stdout_size", stdout.Len()),
		zap.Int("stderr_size", stderr.Len()),
		zap.Duration("duration", time.Since(start)),
	)

	return &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}, nil
}

// ExecuteStreaming implements CommandRunner.
func (r *Runner) ExecuteStreaming(command string) (int, error) {
	start := time.Now()

	cmd := exec.Command(r.shell, "-c", command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	exitCode, err := runAndExitCode(cmd)
	if err != nil {
		return -1, &SpawnError{Command: command, Err: err}
	}

	r.logger.Debug("streaming command executed",
		zap.String("command", command),
		zap.Int("exit_code", exitCode),
		zap.Duration("duration", time.Since(start)),
	)

	return exitCode, nil
}

// runAndExitCode runs the command and folds a nonzero exit into the return
// code. Any other error means the process never started.
func runAndExitCode(cmd *exec.Cmd) (int, error) {
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}

// FormatResult renders a captured command result as a transcript fragment:
//
//	$ <label>
//	<stdout>
//	[stderr]
//	<stderr>
//	[exit code: <n>]
//
// The stdout and stderr blocks are omitted when empty. Invalid byte
// sequences are replaced rather than propagated into the transcript.
func FormatResult(label string, res *Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n$ %s\n", label)
	if res.Stdout != "" {
		b.WriteString(strings.ToValidUTF8(res.Stdout, "�"))
	}
	if res.Stderr != "" {
		b.WriteString("\n[stderr]\n")
		b.WriteString(strings.ToValidUTF8(res.Stderr, "�"))
	}
	fmt.Fprintf(&b, "\n[exit code: %d]\n", res.ExitCode)

	return b.String()
}
