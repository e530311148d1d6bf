package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/catwalk-tui/catwalk/internal/catalog"
)

// Table Styles
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				Align(lipgloss.Center)

	TableBorderStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)
)

// EntityTable renders entities as a bordered table for the list
// command.
func EntityTable(entities []catalog.Sourced, width int) string {
	if len(entities) == 0 {
		return MutedStyle.Render("No entities found.")
	}

	rows := make([][]string, 0, len(entities))
	for i := range entities {
		e := &entities[i].Entity
		owner, _ := e.Owner()
		status := ""
		if n := len(entities[i].Problems); n > 0 {
			status = fmt.Sprintf("%d problems", n)
		}
		rows = append(rows, []string{
			e.Kind.String(),
			e.RefKey(),
			e.DisplayName(),
			owner,
			status,
		})
	}

	return table.New().
		Headers("Kind", "Ref", "Name", "Owner", "Status").
		Rows(rows...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(TableBorderStyle).
		Width(width).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			style := lipgloss.NewStyle().Padding(0, 1)
			if col == 4 && rows[row][col] != "" {
				style = style.Foreground(ColorErr)
			}
			return style
		}).
		String()
}
