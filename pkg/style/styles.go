// Package style holds the lipgloss styles used for terminal output.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)
)

// Diff styles
var (
	DiffAddStyle    = lipgloss.NewStyle().Foreground(SuccessColor)
	DiffRemoveStyle = lipgloss.NewStyle().Foreground(ErrorColor)
	DiffHunkStyle   = lipgloss.NewStyle().Foreground(InfoColor)
	DiffHeaderStyle = lipgloss.NewStyle().Bold(true)
)

// Operation indicators, rendered on use so DisableColor applies to them.
func WriteIndicator() string  { return SuccessStyle.Render("✓") }
func DeleteIndicator() string { return ErrorStyle.Render("✗") }
func SkipIndicator() string   { return MutedStyle.Render("○") }
func PlanIndicator() string   { return WarningStyle.Render("~") }

// Diff colors each line of a unified diff.
func Diff(diff string) string {
	lines := strings.SplitAfter(diff, "\n")
	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			b.WriteString(DiffHeaderStyle.Render(body))
		case strings.HasPrefix(body, "@@"):
			b.WriteString(DiffHunkStyle.Render(body))
		case strings.HasPrefix(body, "+"):
			b.WriteString(DiffAddStyle.Render(body))
		case strings.HasPrefix(body, "-"):
			b.WriteString(DiffRemoveStyle.Render(body))
		default:
			b.WriteString(body)
		}
		if strings.HasSuffix(line, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
