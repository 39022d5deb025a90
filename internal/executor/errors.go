package executor

import "fmt"

// SpawnError represents a failure to start the shell or the process itself
// (missing interpreter, permission denied). This is distinct from a command
// that runs and exits nonzero, which is reported as a Result.
type SpawnError struct {
	// Command is the command line that could not be started
	Command string
	// Underlying error from os/exec
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to execute command %q: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// CommandError represents a command that spawned successfully but exited
// nonzero, in a context where that is fatal (sequential git configuration,
// the sudo bootstrap). It records which command failed.
type CommandError struct {
	// Command is the command line that failed
	Command string
	// ExitCode is the nonzero exit code
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command failed (exit code %d): %s", e.ExitCode, e.Command)
}

// ValidationError represents malformed interactive input, rejected before
// any command is issued.
type ValidationError struct {
	// Field names the offending input, e.g. "user.name"
	Field string
	// Reason describes why it was rejected
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// WriteError represents a filesystem append failure.
type WriteError struct {
	// Path is the file that could not be written
	Path string
	// Underlying error
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
