package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"provisr/internal/executor"
)

const stepsPaneRatio = 0.35

// logPaneSize computes the inner dimensions of the transcript viewport from
// the current window size, leaving room for the panel border, the status bar
// and the help footer.
func (m Model) logPaneSize() (int, int) {
	width := m.width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	height := m.height
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	logWidth := width - int(float64(width)*stepsPaneRatio) - 4
	logHeight := height - 7
	if logWidth < 10 {
		logWidth = 10
	}
	if logHeight < 3 {
		logHeight = 3
	}
	return logWidth, logHeight
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.mode {
	case ModeAppSelect:
		return m.viewAppSelect()
	case ModeGitConfig:
		return m.viewGitConfig()
	default:
		return m.viewDashboard()
	}
}

// viewDashboard renders the two-pane layout: the step list on the left, the
// transcript on the right, the status bar and help footer at the bottom.
func (m Model) viewDashboard() string {
	stepsWidth := int(float64(m.width) * stepsPaneRatio)
	logWidth, logHeight := m.logPaneSize()

	var list strings.Builder
	list.WriteString(PanelTitleStyle.Render("Steps"))
	list.WriteString("\n\n")
	for i, st := range m.steps {
		marker := "  "
		if i == m.cursor {
			marker = CursorStyle.Render("> ")
		}
		glyph := statusStyle(m.runtimes[i].Status).Render(statusGlyph(m.runtimes[i].Status))
		line := fmt.Sprintf("%s%s %s", marker, glyph, st.Name)
		if i == m.cursor {
			line = SelectedItemStyle.Render(line)
		}
		list.WriteString(line)
		list.WriteString("\n")
	}

	stepsPane := PanelStyle.
		Width(stepsWidth).
		Height(logHeight + 2).
		Render(list.String())

	logTitle := fmt.Sprintf("Step log: %s", m.steps[m.cursor].Name)
	if m.showSession {
		logTitle = "Session log"
	}
	logPane := PanelStyle.
		Width(logWidth).
		Height(logHeight + 2).
		Render(PanelTitleStyle.Render(logTitle) + "\n\n" + m.logView.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, stepsPane, logPane)

	status := m.runtimes[m.cursor].Status
	statusBar := StatusBarStyle.Render(fmt.Sprintf(
		"Step %d/%d | Status: %s | q quit",
		m.cursor+1, len(m.steps), statusStyle(status).Render(status.String()),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		statusBar,
		m.help.View(m.keys),
	)
}

// viewAppSelect renders the app checklist overlay above the step transcript.
func (m Model) viewAppSelect() string {
	st := m.steps[m.cursor]

	var list strings.Builder
	list.WriteString(PanelTitleStyle.Render(fmt.Sprintf("Select apps: %s", st.Name)))
	list.WriteString("\n\n")
	for i, app := range st.AppSelection.Apps {
		marker := "  "
		if i == m.appSelect.cursor {
			marker = CursorStyle.Render("> ")
		}
		box := "[ ]"
		if m.appSelect.selected[i] {
			box = "[x]"
		}
		line := fmt.Sprintf("%s%s %s (%s) - %s", marker, box, app.Name, app.Version, app.Install)
		if i == m.appSelect.cursor {
			line = SelectedItemStyle.Render(line)
		}
		list.WriteString(line)
		list.WriteString("\n")
	}

	width := m.width - 4
	if width < MinTerminalWidth-4 {
		width = MinTerminalWidth - 4
	}
	selectPane := PanelStyle.Width(width).Render(list.String())
	logPane := PanelStyle.Width(width).Render(m.logView.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		selectPane,
		logPane,
		m.help.View(m.selectKeys),
	)
}

// viewGitConfig renders the three-field identity editor with a preview of
// the git commands the current values would produce.
func (m Model) viewGitConfig() string {
	st := m.steps[m.cursor]

	var form strings.Builder
	form.WriteString(PanelTitleStyle.Render(fmt.Sprintf("Git config: %s", st.Name)))
	form.WriteString("\n\n")
	for i := range m.gitConfig.inputs {
		marker := "  "
		if gitField(i) == m.gitConfig.focus {
			marker = CursorStyle.Render("> ")
		}
		form.WriteString(fmt.Sprintf("%s%-7s %s\n", marker, gitFieldLabels[i]+":", m.gitConfig.inputs[i].View()))
	}

	name, email, editor := m.gitConfig.values()
	form.WriteString("\n")
	form.WriteString(MutedStyle.Render("Commands to run:"))
	form.WriteString("\n")
	for _, cmd := range executor.GitCommandPreview(name, email, editor) {
		form.WriteString(MutedStyle.Render("  " + cmd))
		form.WriteString("\n")
	}

	width := m.width - 4
	if width < MinTerminalWidth-4 {
		width = MinTerminalWidth - 4
	}
	formPane := PanelStyle.Width(width).Render(form.String())
	logPane := PanelStyle.Width(width).Render(m.logView.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		formPane,
		logPane,
		m.help.View(m.gitKeys),
	)
}
