package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/catwalk-tui/catwalk/internal/catalog"
	"github.com/catwalk-tui/catwalk/internal/docs"
)

var (
	labelStyle   = lipgloss.NewStyle().Foreground(ColorCategory)
	refOkStyle   = lipgloss.NewStyle().Foreground(ColorPass)
	refWarnStyle = lipgloss.NewStyle().Foreground(ColorWarn)
)

// DetailsPanel renders the selected entity's metadata, spec references
// and validation problems. A nil entity renders a hint instead.
func DetailsPanel(s *catalog.Sourced, index *catalog.Index) string {
	if s == nil {
		return MutedStyle.Render("Select an entity to view details")
	}
	e := &s.Entity

	var lines []string
	field := func(label, value string) {
		lines = append(lines, labelStyle.Render(label+": ")+value)
	}

	field("Kind", lipgloss.NewStyle().Foreground(KindColor(e.Kind)).Bold(true).Render(e.Kind.String()))
	field("Name", e.Metadata.Name)
	if e.Metadata.Title != "" {
		field("Title", e.Metadata.Title)
	}
	if e.Metadata.Namespace != "" {
		field("Namespace", e.Metadata.Namespace)
	}
	if e.Metadata.Description != "" {
		lines = append(lines, labelStyle.Render("Description:"), "  "+e.Metadata.Description)
	}

	lines = append(lines, "")
	if owner, ok := e.Owner(); ok {
		field("Owner", RefLine(owner, "group", index))
	}
	if system, ok := e.System(); ok {
		field("System", RefLine(system, "system", index))
	}
	if domain, ok := e.Domain(); ok {
		field("Domain", RefLine(domain, "domain", index))
	}
	if lifecycle, ok := e.Lifecycle(); ok {
		field("Lifecycle", lifecycle)
	}
	if typ, ok := e.Type(); ok {
		field("Type", typ)
	}

	if len(e.Metadata.Tags) > 0 {
		lines = append(lines, "", labelStyle.Render("Tags:"), "  "+strings.Join(e.Metadata.Tags, ", "))
	}

	if len(e.Metadata.Labels) > 0 {
		lines = append(lines, "", labelStyle.Render("Labels:"))
		for _, key := range sortedKeys(e.Metadata.Labels) {
			lines = append(lines, "  "+MutedStyle.Render(key+": ")+e.Metadata.Labels[key])
		}
	}

	if len(e.Metadata.Links) > 0 {
		lines = append(lines, "", labelStyle.Render("Links:"))
		for _, link := range e.Metadata.Links {
			title := link.Title
			if title == "" {
				title = link.URL
			}
			lines = append(lines, "  "+title+" "+MutedStyle.Render(link.URL))
		}
	}

	if len(e.Metadata.Annotations) > 0 {
		lines = append(lines, "", labelStyle.Render("Annotations:"))
		for _, key := range sortedKeys(e.Metadata.Annotations) {
			row := "  " + MutedStyle.Render(key+": ") + e.Metadata.Annotations[key]
			if key == docs.AnnotationTechDocs || strings.Contains(key, "adr") {
				row += refOkStyle.Render(" [d to view]")
			}
			lines = append(lines, row)
		}
	}

	if len(s.Problems) > 0 {
		lines = append(lines, "", ErrorStyle.Render(fmt.Sprintf("Validation problems (%d):", len(s.Problems))))
		for _, p := range s.Problems {
			lines = append(lines, "  "+refWarnStyle.Render(p.Path)+" "+p.Message)
		}
	}

	lines = append(lines, "", MutedStyle.Render("Source: "+s.SourceFile))

	return strings.Join(lines, "\n")
}

// RefLine renders an entity reference with inferred parts bracketed
// and dimmed, colored by whether the target resolves.
func RefLine(reference, defaultKind string, index *catalog.Index) string {
	ref := catalog.ParseRef(reference, defaultKind)

	style := refOkStyle
	suffix := ""
	switch {
	case !ref.IsKnownKind():
		style = ErrorStyle
		suffix = ErrorStyle.Render(" [unknown kind]")
	case !index.Contains(ref):
		style = refWarnStyle
		suffix = ErrorStyle.Render(" [not found]")
	}

	part := func(value string, inferred bool) string {
		if inferred {
			return MutedStyle.Render("[" + value + "]")
		}
		return style.Render(value)
	}

	return part(ref.Kind, ref.KindInferred) +
		MutedStyle.Render(":") +
		part(ref.Namespace, ref.NamespaceInferred) +
		MutedStyle.Render("/") +
		style.Bold(true).Render(ref.Name) +
		suffix
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
