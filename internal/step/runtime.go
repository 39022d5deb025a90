package step

import (
	"fmt"
	"strings"
)

// Status is the run state of a step. Pending and Running are transient;
// Skipped, Success, and Failed are terminal until the step is re-run.
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusSkipped
	StatusSuccess
	StatusFailed
)

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusRunning:
		return "Running"
	case StatusSkipped:
		return "Skipped"
	case StatusSuccess:
		return "Success"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Runtime is the mutable state tracked per step during a run: its status and
// an append-only transcript. Re-running a step appends to the existing
// transcript; each run writes its own header line, so the log doubles as an
// audit trail.
type Runtime struct {
	Status Status

	log strings.Builder
}

// Append adds text to the transcript.
func (r *Runtime) Append(text string) {
	r.log.WriteString(text)
}

// Appendf adds formatted text to the transcript.
func (r *Runtime) Appendf(format string, args ...any) {
	fmt.Fprintf(&r.log, format, args...)
}

// Log returns the full transcript accumulated so far.
func (r *Runtime) Log() string {
	return r.log.String()
}

// NewRuntimes allocates one Runtime per step, all Pending with empty logs.
// Index i of the result corresponds to step i.
func NewRuntimes(n int) []Runtime {
	return make([]Runtime, n)
}
