// Package tui implements the provisr dashboard.
//
// The dashboard is a full-screen Bubble Tea program showing the step list
// with per-step status on the left and the current step's transcript on the
// right. It follows the Elm architecture: one Model owns the step runtimes,
// the cursor, and the interactive mode; Update dispatches every input event
// on that mode.
//
// # Modes
//
// Mode is a closed set:
//   - ModeNone: normal navigation; enter runs the step under the cursor
//   - ModeAppSelect: the multi-select app installer overlay
//   - ModeGitConfig: the three-field git identity editor overlay
//
// An overlay's transient state is created when the overlay opens and
// destroyed on confirm or cancel; step navigation is unavailable while an
// overlay is active, so the state can never outlive the step it was created
// for.
//
// # Terminal handoff
//
// Blocking shell work (step pipelines, streamed app installs) runs through
// tea.Exec, which releases the terminal - raw mode and the alternate screen -
// before the work starts and restores it on every exit path. Scripts can
// therefore prompt for input or stream package-manager output natively
// without leaving the terminal in a broken state.
//
// # Framework Components
//
//   - bubbles/key + bubbles/help: per-mode key bindings and the help footer
//   - bubbles/textinput: git config field buffers
//   - bubbles/viewport: transcript scrolling
//   - lipgloss: styling and layout
package tui
