package monitor

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/commitgate/internal/notify"
)

var (
	// Base colors
	primaryColor = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("241")
	successColor = lipgloss.Color("42")
	warningColor = lipgloss.Color("214")
	errorColor   = lipgloss.Color("196")

	// Panel styles
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(primaryColor).
				Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	// Text styles
	titleStyle     = lipgloss.NewStyle().Bold(true)
	subtleStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	helpStyle      = lipgloss.NewStyle().Foreground(mutedColor)
	timestampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	cleanStyle  = lipgloss.NewStyle().Foreground(successColor)
	dirtyStyle  = lipgloss.NewStyle().Foreground(warningColor)
	lockedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(errorColor)
	unlockedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(successColor)

	// Severity badges for the history panel
	infoBadge  = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	warnBadge  = lipgloss.NewStyle().Foreground(warningColor)
	errorBadge = lipgloss.NewStyle().Foreground(errorColor)
)

// formatLockBadge renders the gate state as a colored badge
func formatLockBadge(locked bool) string {
	if locked {
		return lockedStyle.Render(" LOCKED ")
	}
	return unlockedStyle.Render(" UNLOCKED ")
}

// formatSeverityBadge renders a severity badge for the history panel
func formatSeverityBadge(level notify.Severity) string {
	switch level {
	case notify.Error:
		return errorBadge.Render("[ERR]")
	case notify.Warn:
		return warnBadge.Render("[WRN]")
	default:
		return infoBadge.Render("[INF]")
	}
}
