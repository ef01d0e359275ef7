// Package ui renders nudge's terminal output and prompts.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ZeroDread/nudge/internal/config"
)

var (
	accent = lipgloss.Color("#0ea5a4")
	muted  = lipgloss.Color("#94a3b8")

	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 4).
			Align(lipgloss.Center)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	subtleStyle  = lipgloss.NewStyle().Foreground(muted)
	stepStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	infoStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	doneStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Header prints the application banner.
func Header(w io.Writer, cfg config.AppConfig) {
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(fmt.Sprintf("Nudge - %s", cfg.AppName)),
		subtleStyle.Render(fmt.Sprintf("v%s by %s", cfg.Version, cfg.Author)),
	)
	_, _ = fmt.Fprintln(w, headerStyle.Render(body))
	_, _ = fmt.Fprintln(w)
}

// Separator prints a horizontal rule.
func Separator(w io.Writer) {
	_, _ = fmt.Fprintln(w, subtleStyle.Render(strings.Repeat("─", 60)))
}

// Success prints a green success line.
func Success(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, successStyle.Render("✅ "+msg))
}

// Error prints a red failure line.
func Error(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, errorStyle.Render("❌ "+msg))
}

// Info prints a bold blue line.
func Info(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, infoStyle.Render(msg))
}

// Warning prints a yellow line.
func Warning(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, warnStyle.Render(msg))
}
