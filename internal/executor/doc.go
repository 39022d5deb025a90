// Package executor runs provisioning steps through a shell and tracks the
// outcome in each step's runtime.
//
// The package separates two layers:
//   - Runner is the shell-execution capability: run a command line and either
//     capture its output (Execute) or attach it to the controlling terminal
//     (ExecuteStreaming, for long chatty operations like package installs).
//   - Executor implements step semantics on top of a CommandRunner: the
//     pre/main/post pipeline for non-interactive steps, and the handlers the
//     dashboard invokes once interactive input has been collected
//     (ApplyGitConfig, ApplyAppSelection).
//
// # Failure policy
//
// A command that spawns but exits nonzero is not an error; it is a Result
// carrying the exit code, and each caller applies its own policy: the
// pipeline skips on a failed pre_script and fails on a failed script or
// post_script, git configuration stops at the first failed command, and app
// installation continues through the batch so every selected app is attempted
// exactly once. Only a SpawnError (the shell itself could not be started)
// aborts unconditionally, since it signals a systemic problem.
//
// Errors returned by Executor methods are caught at the step boundary by the
// dashboard and converted into a Failed status plus a log entry; they never
// terminate the program.
package executor
