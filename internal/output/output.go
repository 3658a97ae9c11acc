// Package output provides styled terminal output helpers (success, error,
// warning) using lipgloss, plus JSON output for robot consumers.
package output

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Styles
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	lockedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("ERROR: " + fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// Subtle prints a de-emphasized message
func Subtle(format string, args ...interface{}) {
	fmt.Println(subtleStyle.Render(fmt.Sprintf(format, args...)))
}

// Title renders a bold heading string
func Title(s string) string {
	return titleStyle.Render(s)
}

// WarningText renders text in the warning color without printing it
func WarningText(s string) string {
	return warningStyle.Render(s)
}

// JSON outputs data as JSON
func JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// Error codes for structured JSON output
const (
	ErrCodeNotARepo     = "not_a_repository"
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeWriteFailed  = "write_failed"
	ErrCodeConfigError  = "config_error"
)

// JSONError outputs an error as JSON
func JSONError(code, message string) {
	errObj := map[string]interface{}{
		"code":    code,
		"message": message,
	}
	data, _ := json.MarshalIndent(map[string]interface{}{"error": errObj}, "", "  ")
	fmt.Println(string(data))
}

// FormatGateState formats the lock state for display
func FormatGateState(locked bool) string {
	if locked {
		return lockedStyle.Render("[locked]")
	}
	return successStyle.Render("[unlocked]")
}

// FormatRepoState formats tree cleanliness for display
func FormatRepoState(clean bool, pending int) string {
	if clean {
		return successStyle.Render("clean")
	}
	return warningStyle.Render(fmt.Sprintf("%d dirty", pending))
}
