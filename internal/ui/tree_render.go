package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/catwalk-tui/catwalk/internal/tree"
)

// Tree symbols
const (
	expandedSymbol  = "[-] "
	collapsedSymbol = "[+] "
	leafIndent      = "    "
	treeIndent      = "  "
	errorIndicator  = " ! "
)

// TreeView renders the visible tree rows with the cursor highlighted.
// Rows with validation problems carry a count marker.
func TreeView(nodes []*tree.Node, state *tree.State) string {
	var b strings.Builder
	for i, node := range nodes {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(renderTreeRow(node, state))
	}
	return b.String()
}

func renderTreeRow(node *tree.Node, state *tree.State) string {
	prefix := leafIndent
	if len(node.Children) > 0 {
		if state.IsExpanded(node.ID) {
			prefix = expandedSymbol
		} else {
			prefix = collapsedSymbol
		}
	}

	problems := 0
	if node.Entity != nil {
		problems = len(node.Entity.Problems)
	}

	label := strings.Repeat(treeIndent, node.Depth) + prefix + node.Label
	if problems > 0 {
		label += fmt.Sprintf("%s%d", errorIndicator, problems)
	}

	switch {
	case node.ID == state.Selected:
		return SelectedStyle.Render(label)
	case problems > 0:
		return ErrorStyle.Render(label)
	case node.IsCategory:
		return CategoryStyle.Render(label)
	case node.Entity != nil:
		return lipgloss.NewStyle().Foreground(KindColor(node.Entity.Entity.Kind)).Render(label)
	}
	return label
}

// TreeTitle is the tree pane title: total count, or filtered/total
// while a search narrows the view.
func TreeTitle(visible, total int, filtered bool) string {
	if filtered {
		return fmt.Sprintf(" Entities (%d/%d) ", visible, total)
	}
	return fmt.Sprintf(" Entities (%d) ", total)
}

// SearchBar renders the query line above the tree. An idle empty bar
// shows the hint instead.
func SearchBar(query string, active bool) string {
	if query == "" && !active {
		return MutedStyle.Render("Press / to search...")
	}
	if active {
		return query + "_"
	}
	return query
}
