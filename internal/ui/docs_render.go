package ui

import (
	"fmt"
	"strings"

	"github.com/catwalk-tui/catwalk/internal/docs"
)

// DocsList renders the documentation file list with the cursor row
// highlighted.
func DocsList(b *docs.Browser) string {
	header := CategoryStyle.Render(fmt.Sprintf(" %s  %s", b.Ref.Type.Label(), b.Ref.Path))
	if len(b.Files) == 0 {
		return header + "\n\n" + MutedStyle.Render("No markdown files found")
	}

	lines := []string{header, ""}
	for i, f := range b.Files {
		row := "  " + f.RelativePath
		if i == b.Selected {
			row = SelectedStyle.Render("> " + f.RelativePath)
		}
		lines = append(lines, row)
	}
	lines = append(lines, "", MutedStyle.Render("Enter open · Esc close · j/k move"))
	return strings.Join(lines, "\n")
}

// DocsContent renders the opened document through the markdown
// renderer, windowed by the browser's scroll offset.
func DocsContent(b *docs.Browser, width, height int, theme string) string {
	if !b.Viewing() {
		return ""
	}
	rendered := RenderMarkdown(strings.Join(b.Content.Lines, "\n"), width, theme)
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")

	start := b.ScrollOffset
	if start > len(lines) {
		start = len(lines)
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}
	title := AccentStyle.Bold(true).Render(" " + b.Content.File.RelativePath + " ")
	return title + "\n" + strings.Join(lines[start:end], "\n")
}
