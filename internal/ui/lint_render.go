package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/list"
)

// LintEntry is one entity's findings in a lint report.
type LintEntry struct {
	Ref        string
	SourceFile string
	Problems   []string
}

// LintReport aggregates findings across the catalog.
type LintReport struct {
	Entities int
	Files    int
	Entries  []LintEntry
}

// Clean reports whether lint found nothing to complain about.
func (r LintReport) Clean() bool {
	return len(r.Entries) == 0
}

// RenderLintReport renders the lint findings for terminal output.
func RenderLintReport(r LintReport, width int) string {
	var sections []string

	if r.Clean() {
		header := lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPass).
			Render(fmt.Sprintf("OK - %d entities across %d files, no problems", r.Entities, r.Files))
		return header + "\n"
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorWarn).
		Render(fmt.Sprintf("%d of %d entities have problems", len(r.Entries), r.Entities))
	sections = append(sections, header)

	for _, entry := range r.Entries {
		title := AccentStyle.Bold(true).Render(entry.Ref) +
			MutedStyle.Render("  ("+entry.SourceFile+")")

		items := list.New().
			Enumerator(list.Dash).
			EnumeratorStyle(lipgloss.NewStyle().Foreground(ColorMuted))
		for _, p := range entry.Problems {
			items.Item(p)
		}

		block := lipgloss.JoinVertical(lipgloss.Left, title, items.String())
		sections = append(sections, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1).
			Width(width-2).
			Render(block))
	}

	return strings.Join(sections, "\n") + "\n"
}
