package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/catwalk-tui/catwalk/internal/graph"
)

var (
	graphOutHeaderStyle = lipgloss.NewStyle().Foreground(ColorPass)
	graphInHeaderStyle  = lipgloss.NewStyle().Foreground(ColorAccent)
)

// GraphPanel renders a relationship graph as the TUI side panel.
func GraphPanel(g *graph.Graph) string {
	if g == nil {
		return MutedStyle.Render("Select an entity to view relationships")
	}

	var lines []string

	center := fmt.Sprintf("%s %s%s",
		AccentStyle.Render("*"),
		MutedStyle.Render(fmt.Sprintf("[%s] ", g.Center.Kind)),
		AccentStyle.Bold(true).Render(g.Center.DisplayName))
	lines = append(lines, center, "")

	if len(g.Outgoing) > 0 {
		lines = append(lines, graphOutHeaderStyle.Render("--- Outgoing -------------------"))
		for _, e := range g.Outgoing {
			lines = append(lines, renderEdge(e, "->"))
		}
	}

	if len(g.Incoming) > 0 {
		if len(g.Outgoing) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, graphInHeaderStyle.Render("--- Incoming -------------------"))
		for _, e := range g.Incoming {
			lines = append(lines, renderEdge(e, "<-"))
		}
	}

	lines = append(lines, "",
		MutedStyle.Render(fmt.Sprintf("Total: %d outgoing, %d incoming", len(g.Outgoing), len(g.Incoming))))

	return strings.Join(lines, "\n")
}

func renderEdge(e graph.Edge, arrow string) string {
	nodeStyle := graphOutHeaderStyle
	if arrow == "<-" {
		nodeStyle = graphInHeaderStyle
	}
	marker := arrow
	suffix := ""
	if !e.Node.Exists {
		nodeStyle = lipgloss.NewStyle().Foreground(ColorWarn)
		marker = "!"
		suffix = ErrorStyle.Render(" (not found)")
	}
	return fmt.Sprintf("  %s %s%s%s%s",
		nodeStyle.Render(marker),
		MutedStyle.Render(e.Kind.Label()+": "),
		MutedStyle.Render(fmt.Sprintf("[%s] ", e.Node.Kind)),
		nodeStyle.Render(e.Node.DisplayName),
		suffix)
}

// GraphTree renders a relationship graph as a lipgloss tree for the
// graph command's plain output.
func GraphTree(g *graph.Graph) string {
	root := fmt.Sprintf("[%s] %s", g.Center.Kind, g.Center.DisplayName)
	t := tree.New().Root(root)
	t.RootStyle(lipgloss.NewStyle().Bold(true).Foreground(ColorAccent))
	t.EnumeratorStyle(lipgloss.NewStyle().Foreground(ColorMuted))

	if len(g.Outgoing) > 0 {
		out := tree.New().Root(graphOutHeaderStyle.Render("outgoing"))
		for _, e := range g.Outgoing {
			out.Child(edgeLine(e))
		}
		t.Child(out)
	}
	if len(g.Incoming) > 0 {
		in := tree.New().Root(graphInHeaderStyle.Render("incoming"))
		for _, e := range g.Incoming {
			in.Child(edgeLine(e))
		}
		t.Child(in)
	}
	if len(g.Outgoing) == 0 && len(g.Incoming) == 0 {
		t.Child(MutedStyle.Render("no relationships"))
	}

	return t.String()
}

func edgeLine(e graph.Edge) string {
	line := fmt.Sprintf("%s: [%s] %s", e.Kind.Label(), e.Node.Kind, e.Node.DisplayName)
	if !e.Node.Exists {
		return line + ErrorStyle.Render(" (not found)")
	}
	return line
}
