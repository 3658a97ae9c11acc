package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderView renders the complete TUI view
func (m Model) renderView() string {
	if m.Width == 0 || m.Height == 0 {
		return "Loading..."
	}

	if m.Width < MinWidth || m.Height < MinHeight {
		return m.renderCompact()
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	availableHeight := m.Height - 2 // Leave room for footer
	panelHeight := availableHeight / 3

	gatePanel := m.renderGatePanel(panelHeight)
	repoPanel := m.renderRepoPanel(panelHeight)
	historyPanel := m.renderHistoryPanel(panelHeight)

	panels := lipgloss.JoinVertical(lipgloss.Left,
		gatePanel,
		repoPanel,
		historyPanel,
	)

	return lipgloss.JoinVertical(lipgloss.Left, panels, m.renderFooter())
}

// renderCompact renders a minimal view for small terminals
func (m Model) renderCompact() string {
	var s strings.Builder

	s.WriteString("commitgate monitor (resize for full view)\n\n")
	s.WriteString(fmt.Sprintf("Gate: %s  writes: %d\n", formatLockBadge(m.Snap.Gate.Locked), m.Snap.Gate.Writes))
	s.WriteString(fmt.Sprintf("Tree: %s  pending: %d\n", m.formatTreeState(), m.Snap.Pending))
	s.WriteString("\nq:quit r:refresh ?:help")

	return s.String()
}

// renderGatePanel renders the gate state panel (Panel 1)
func (m Model) renderGatePanel(height int) string {
	var content strings.Builder

	if !m.hasSnap {
		content.WriteString(subtleStyle.Render("Waiting for first refresh..."))
		return m.wrapPanel("GATE", content.String(), height, PanelGate)
	}

	content.WriteString(formatLockBadge(m.Snap.Gate.Locked))
	content.WriteString("\n\n")
	budget := m.Gate.Config().WritesNumber
	writesLine := fmt.Sprintf("Writes since last commit: %d / %d", m.Snap.Gate.Writes, budget)
	if m.Snap.Gate.Writes > budget {
		writesLine = dirtyStyle.Render(writesLine)
	}
	content.WriteString(writesLine)
	content.WriteString("\n")
	if m.Snap.Gate.Locked {
		content.WriteString(subtleStyle.Render("Reason: ") + m.Snap.Gate.Reason)
		content.WriteString("\n")
	}
	if m.Gate.Config().PreventWrite {
		content.WriteString(subtleStyle.Render("Hardcore mode: writes blocked while locked"))
		content.WriteString("\n")
	}

	return m.wrapPanel("GATE", content.String(), height, PanelGate)
}

// renderRepoPanel renders the repository state panel (Panel 2)
func (m Model) renderRepoPanel(height int) string {
	var content strings.Builder

	if !m.hasSnap {
		content.WriteString(subtleStyle.Render("Waiting for first refresh..."))
		return m.wrapPanel("REPOSITORY", content.String(), height, PanelRepo)
	}

	if m.Snap.Branch != "" {
		content.WriteString(subtleStyle.Render("Branch: ") + titleStyle.Render(m.Snap.Branch))
		content.WriteString("\n")
	}
	content.WriteString(subtleStyle.Render("Tree:   ") + m.formatTreeState())
	if !m.Snap.Clean {
		content.WriteString(fmt.Sprintf("  (%d pending)", m.Snap.Pending))
	}
	content.WriteString("\n")

	subject := m.Snap.Subject
	if subject == "" {
		subject = subtleStyle.Render("(no commits yet)")
	}
	content.WriteString(subtleStyle.Render("HEAD:   ") + subject)
	if m.Snap.Useless {
		content.WriteString(" " + dirtyStyle.Render("[meaningless]"))
	}
	content.WriteString("\n")

	return m.wrapPanel("REPOSITORY", content.String(), height, PanelRepo)
}

// renderHistoryPanel renders the notification history panel (Panel 3)
func (m Model) renderHistoryPanel(height int) string {
	if len(m.Snap.History) == 0 {
		return m.wrapPanel("NOTIFICATIONS", subtleStyle.Render("No notifications yet"), height, PanelHistory)
	}
	return m.wrapPanel("NOTIFICATIONS", m.History.View(), height, PanelHistory)
}

// historyContent builds the viewport content from recorded notifications.
func (m Model) historyContent() string {
	width := m.Width - 4
	var lines []string
	for _, e := range m.Snap.History {
		line := formatSeverityBadge(e.Level) + " " + e.Message
		lines = append(lines, ansi.Truncate(line, width, "…"))
	}
	return strings.Join(lines, "\n")
}

func (m Model) formatTreeState() string {
	if m.Snap.Clean {
		return cleanStyle.Render("clean")
	}
	return dirtyStyle.Render("dirty")
}

// renderFooter renders the footer with key bindings and refresh time
func (m Model) renderFooter() string {
	keys := helpStyle.Render("q:quit  tab:switch  j/k:scroll  r:refresh  ?:help")

	refresh := ""
	if m.hasSnap {
		refresh = timestampStyle.Render(fmt.Sprintf("Last: %s", m.Snap.Taken.Format("15:04:05")))
	}

	padding := m.Width - lipgloss.Width(keys) - lipgloss.Width(refresh) - 2
	if padding < 0 {
		padding = 0
	}

	return fmt.Sprintf(" %s%s%s", keys, strings.Repeat(" ", padding), refresh)
}

// renderHelp renders the help overlay
func (m Model) renderHelp() string {
	help := `
COMMITGATE MONITOR - Key Bindings

NAVIGATION:
  Tab / Shift+Tab   Switch between panels
  1 / 2 / 3         Jump to panel
  j / k             Scroll notification history

ACTIONS:
  r                 Force refresh (runs one gate evaluation)
  q / Ctrl+C        Quit

Press ? to close help
`
	return helpStyle.Render(help)
}

// wrapPanel wraps content in a panel with title and border
func (m Model) wrapPanel(title, content string, height int, panel Panel) string {
	style := panelStyle
	if m.ActivePanel == panel {
		style = activePanelStyle
	}

	titleStr := panelTitleStyle.Render(title)
	contentWidth := m.Width - 4

	lines := strings.Split(content, "\n")
	contentHeight := height - 3 // Title + border
	for len(lines) < contentHeight {
		lines = append(lines, "")
	}
	if len(lines) > contentHeight {
		lines = lines[:contentHeight]
	}
	for i, line := range lines {
		if lipgloss.Width(line) > contentWidth {
			lines[i] = ansi.Truncate(line, contentWidth, "…")
		}
	}

	inner := lipgloss.JoinVertical(lipgloss.Left, titleStr, strings.Join(lines, "\n"))
	return style.Width(m.Width - 2).Render(inner)
}
