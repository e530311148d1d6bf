package ui

import (
	"strings"
	"testing"

	"github.com/catwalk-tui/catwalk/internal/catalog"
	"github.com/catwalk-tui/catwalk/internal/graph"
	"github.com/catwalk-tui/catwalk/internal/tree"
)

func mkEntity(kind catalog.Kind, name string, spec map[string]any) catalog.Sourced {
	var raw any
	if spec != nil {
		raw = spec
	}
	return catalog.NewSourced(catalog.Entity{
		APIVersion: "backstage.io/v1alpha1",
		Kind:       kind,
		Metadata:   catalog.Metadata{Name: name, Namespace: "default"},
		Spec:       catalog.NewValue(raw),
	}, "catalog-info.yaml")
}

func TestTreeTitle(t *testing.T) {
	if got := TreeTitle(3, 10, false); got != " Entities (10) " {
		t.Errorf("unfiltered title = %q", got)
	}
	if got := TreeTitle(3, 10, true); got != " Entities (3/10) " {
		t.Errorf("filtered title = %q", got)
	}
}

func TestSearchBar(t *testing.T) {
	if got := SearchBar("", false); !strings.Contains(got, "Press / to search") {
		t.Errorf("idle bar = %q", got)
	}
	if got := SearchBar("auth", true); !strings.HasPrefix(got, "auth") || !strings.HasSuffix(got, "_") {
		t.Errorf("active bar = %q", got)
	}
	if got := SearchBar("auth", false); got != "auth" {
		t.Errorf("confirmed bar = %q", got)
	}
}

func TestTreeViewMarkers(t *testing.T) {
	entities := []catalog.Sourced{
		mkEntity(catalog.KindSystem, "auth", nil),
		mkEntity(catalog.KindComponent, "svc", map[string]any{"system": "auth"}),
	}
	tr := tree.Build(entities)
	state := tree.NewState()
	for _, id := range tr.RootChildren {
		state.Expand(id)
	}

	out := TreeView(tr.VisibleNodes(state), state)
	if !strings.Contains(out, "[-] Systems") {
		t.Errorf("expanded category marker missing:\n%s", out)
	}
	if !strings.Contains(out, "[+] System: auth") {
		t.Errorf("collapsed system marker missing:\n%s", out)
	}
}

func TestTreeViewProblemCount(t *testing.T) {
	e := mkEntity(catalog.KindComponent, "bad", nil)
	e.Problems = []catalog.ValidationError{
		{Path: "/spec/owner", Message: "missing"},
		{Path: "/spec/type", Message: "missing"},
	}
	tr := tree.Build([]catalog.Sourced{e})
	state := tree.NewState()
	state.ExpandAll(tr)

	out := TreeView(tr.VisibleNodes(state), state)
	if !strings.Contains(out, "! 2") {
		t.Errorf("problem count missing:\n%s", out)
	}
}

func TestGraphPanel(t *testing.T) {
	focal := mkEntity(catalog.KindComponent, "svc", map[string]any{
		"owner":     "team-a",
		"dependsOn": []any{"ghost-svc"},
	})
	all := []catalog.Sourced{focal, mkEntity(catalog.KindGroup, "team-a", nil)}
	g := graph.Build(&focal, all)

	out := GraphPanel(g)
	for _, want := range []string{"svc", "Outgoing", "owned by", "team-a", "ghost-svc", "(not found)", "Total: 2 outgoing, 0 incoming"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel missing %q:\n%s", want, out)
		}
	}

	if out := GraphPanel(nil); !strings.Contains(out, "Select an entity") {
		t.Errorf("nil graph panel = %q", out)
	}
}

func TestGraphTree(t *testing.T) {
	focal := mkEntity(catalog.KindComponent, "standalone", nil)
	g := graph.Build(&focal, []catalog.Sourced{focal})

	out := GraphTree(g)
	if !strings.Contains(out, "[Component] standalone") || !strings.Contains(out, "no relationships") {
		t.Errorf("graph tree = %q", out)
	}
}

func TestRefLine(t *testing.T) {
	index := catalog.BuildIndex([]catalog.Sourced{mkEntity(catalog.KindGroup, "team-a", nil)})

	if out := RefLine("team-a", "group", index); !strings.Contains(out, "team-a") || strings.Contains(out, "not found") {
		t.Errorf("resolved ref = %q", out)
	}
	if out := RefLine("nobody", "group", index); !strings.Contains(out, "[not found]") {
		t.Errorf("dangling ref = %q", out)
	}
	if out := RefLine("widget:default/thing", "group", index); !strings.Contains(out, "[unknown kind]") {
		t.Errorf("unknown kind ref = %q", out)
	}
}

func TestDetailsPanel(t *testing.T) {
	e := mkEntity(catalog.KindComponent, "svc", map[string]any{
		"owner":     "team-a",
		"lifecycle": "production",
		"type":      "service",
	})
	e.Entity.Metadata.Description = "does things"
	e.Entity.Metadata.Tags = []string{"go", "http"}
	index := catalog.BuildIndex([]catalog.Sourced{e, mkEntity(catalog.KindGroup, "team-a", nil)})

	out := DetailsPanel(&e, index)
	for _, want := range []string{"Kind:", "Component", "svc", "does things", "team-a", "production", "go, http", "Source: catalog-info.yaml"} {
		if !strings.Contains(out, want) {
			t.Errorf("details missing %q:\n%s", want, out)
		}
	}

	if out := DetailsPanel(nil, index); !strings.Contains(out, "Select an entity") {
		t.Errorf("nil details = %q", out)
	}
}

func TestEntityTable(t *testing.T) {
	entities := []catalog.Sourced{
		mkEntity(catalog.KindComponent, "svc", map[string]any{"owner": "team-a"}),
	}
	out := EntityTable(entities, 100)
	for _, want := range []string{"Kind", "component:default/svc", "team-a"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}

	if out := EntityTable(nil, 100); !strings.Contains(out, "No entities") {
		t.Errorf("empty table = %q", out)
	}
}

func TestRenderLintReport(t *testing.T) {
	clean := LintReport{Entities: 5, Files: 2}
	if out := RenderLintReport(clean, 80); !strings.Contains(out, "no problems") {
		t.Errorf("clean report = %q", out)
	}

	dirty := LintReport{
		Entities: 5,
		Files:    2,
		Entries: []LintEntry{{
			Ref:        "component:default/bad",
			SourceFile: "a/catalog-info.yaml",
			Problems:   []string{`/spec/owner "owner" is required for kind Component`},
		}},
	}
	out := RenderLintReport(dirty, 80)
	for _, want := range []string{"1 of 5", "component:default/bad", "owner"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
