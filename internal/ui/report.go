// Package ui renders the interactive extras built on top of the console
// layer: the styled capability report and the action-scoped probe spinner.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Report describes what the doctor command learned about the terminal.
type Report struct {
	TermType      string
	SupportsColor bool
	Interactive   bool
	Width         int
	Height        int
	Checks        []Check
}

// Check is one deep-probe result.
type Check struct {
	Name   string
	OK     bool
	Detail string
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle = lipgloss.NewStyle().Width(16).Faint(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// RenderReport returns the formatted capability report.
func RenderReport(r *Report) string {
	if r == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Terminal Report"))
	b.WriteString("\n\n")

	termType := r.TermType
	if termType == "" {
		termType = "(unset)"
	}
	writeRow(&b, "TERM", termType)
	writeRow(&b, "ANSI color", yesNo(r.SupportsColor))
	writeRow(&b, "Interactive", yesNo(r.Interactive))
	if r.Width > 0 {
		writeRow(&b, "Size", fmt.Sprintf("%dx%d", r.Width, r.Height))
	}

	if len(r.Checks) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Probes"))
		b.WriteString("\n\n")
		for _, c := range r.Checks {
			mark := okStyle.Render("ok")
			if !c.OK {
				mark = failStyle.Render("FAIL")
			}
			b.WriteString(labelStyle.Render(c.Name))
			b.WriteString(mark)
			if c.Detail != "" {
				b.WriteString("  " + c.Detail)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(value)
	b.WriteString("\n")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
