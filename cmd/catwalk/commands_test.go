package main

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/catwalk-tui/catwalk/internal/catalog"
)

func mkSourced(kind catalog.Kind, name string, spec map[string]any) catalog.Sourced {
	return catalog.NewSourced(catalog.Entity{
		APIVersion: "backstage.io/v1alpha1",
		Kind:       kind,
		Metadata:   catalog.Metadata{Name: name},
		Spec:       catalog.NewValue(spec),
	}, name+".yaml")
}

func TestCatalogRoot(t *testing.T) {
	if got := catalogRoot(nil); got != "." {
		t.Errorf("catalogRoot(nil) = %q, want .", got)
	}
	if got := catalogRoot([]string{"./services"}); got != "./services" {
		t.Errorf("catalogRoot = %q, want ./services", got)
	}
}

func TestFindEntity(t *testing.T) {
	entities := []catalog.Sourced{
		mkSourced(catalog.KindComponent, "auth-service", nil),
		mkSourced(catalog.KindAPI, "auth-api", nil),
	}

	s, _ := findEntity("auth-service", "component", entities)
	if s == nil || s.Entity.Metadata.Name != "auth-service" {
		t.Fatal("bare name did not resolve with the default kind")
	}

	s, _ = findEntity("api:auth-api", "component", entities)
	if s == nil || s.Entity.Kind != catalog.KindAPI {
		t.Fatal("explicit kind did not resolve")
	}

	s, ref := findEntity("auth-api", "component", entities)
	if s != nil {
		t.Error("wrong default kind should not resolve")
	}
	if ref.Canonical() != "component:default/auth-api" {
		t.Errorf("ref = %q", ref.Canonical())
	}
}

func TestRefNotFoundSuggestion(t *testing.T) {
	entities := []catalog.Sourced{
		mkSourced(catalog.KindComponent, "auth-service", nil),
	}
	ref := catalog.ParseRef("auth-servce", "component")
	err := refNotFoundError(ref, entities)
	if !strings.Contains(err.Error(), `did you mean "auth-service"`) {
		t.Errorf("error = %v, want a suggestion", err)
	}

	ref = catalog.ParseRef("zzzzz", "component")
	err = refNotFoundError(ref, entities)
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %v, want no suggestion for a distant name", err)
	}
}

func TestFilterEntities(t *testing.T) {
	entities := []catalog.Sourced{
		mkSourced(catalog.KindComponent, "svc-a", map[string]any{"owner": "team-a"}),
		mkSourced(catalog.KindComponent, "svc-b", map[string]any{"owner": "group:team-b"}),
		mkSourced(catalog.KindAPI, "api-a", map[string]any{"owner": "team-a"}),
	}

	if got := filterEntities(entities, "", ""); len(got) != 3 {
		t.Errorf("no filter: %d entities, want 3", len(got))
	}
	if got := filterEntities(entities, "component", ""); len(got) != 2 {
		t.Errorf("kind filter: %d entities, want 2", len(got))
	}
	if got := filterEntities(entities, "", "team-a"); len(got) != 2 {
		t.Errorf("owner filter: %d entities, want 2", len(got))
	}
	// full-ref owner matches the bare form and vice versa
	if got := filterEntities(entities, "", "group:team-b"); len(got) != 1 {
		t.Errorf("ref owner filter: %d entities, want 1", len(got))
	}
	if got := filterEntities(entities, "component", "team-a"); len(got) != 1 {
		t.Errorf("combined filter: %d entities, want 1", len(got))
	}
}

func TestToListResult(t *testing.T) {
	s := mkSourced(catalog.KindComponent, "svc", map[string]any{
		"owner":     "team-a",
		"system":    "auth",
		"lifecycle": "production",
	})
	s = s.WithProblems([]catalog.ValidationError{{Path: "/spec/type", Message: "missing"}})

	r := toListResult(&s)
	if r.Ref != "component:default/svc" {
		t.Errorf("ref = %q", r.Ref)
	}
	if r.Owner != "team-a" || r.System != "auth" || r.Lifecycle != "production" {
		t.Errorf("spec fields not carried: %+v", r)
	}
	if r.Problems != 1 {
		t.Errorf("problems = %d, want 1", r.Problems)
	}
}

func TestBuildLintReportClean(t *testing.T) {
	entities := []catalog.Sourced{
		mkSourced(catalog.KindGroup, "team-a", map[string]any{"type": "team"}),
		mkSourced(catalog.KindComponent, "svc", map[string]any{
			"type": "service", "lifecycle": "production", "owner": "team-a",
		}),
	}

	report := buildLintReport(entities)
	if !report.Clean() {
		t.Fatalf("expected a clean report, got %+v", report.Entries)
	}
	if report.Entities != 2 || report.Files != 2 {
		t.Errorf("counts = %d entities, %d files", report.Entities, report.Files)
	}
}

func TestBuildLintReportDanglingRef(t *testing.T) {
	entities := []catalog.Sourced{
		mkSourced(catalog.KindGroup, "team-a", map[string]any{"type": "team"}),
		mkSourced(catalog.KindComponent, "svc", map[string]any{
			"type": "service", "lifecycle": "production", "owner": "team-b",
		}),
	}

	report := buildLintReport(entities)
	if report.Clean() {
		t.Fatal("expected a dangling owner finding")
	}
	if len(report.Entries) != 1 || report.Entries[0].Ref != "component:default/svc" {
		t.Fatalf("entries = %+v", report.Entries)
	}
	finding := report.Entries[0].Problems[0]
	if !strings.Contains(finding, `"team-b" not found`) {
		t.Errorf("finding = %q", finding)
	}
	if !strings.Contains(finding, `did you mean "team-a"`) {
		t.Errorf("finding = %q, want a suggestion", finding)
	}
}

func TestBuildLintReportCarriesLoadProblems(t *testing.T) {
	s := mkSourced(catalog.KindComponent, "svc", map[string]any{
		"type": "service", "lifecycle": "production",
	})
	s = s.WithProblems([]catalog.ValidationError{{Path: "/spec/owner", Message: "required field is missing"}})

	report := buildLintReport([]catalog.Sourced{s})
	if report.Clean() {
		t.Fatal("expected the load-time problem to surface")
	}
	if got := report.Entries[0].Problems[0]; !strings.Contains(got, "/spec/owner") {
		t.Errorf("finding = %q", got)
	}
}

func TestBuildScaffoldComponent(t *testing.T) {
	entity, problems := buildScaffold(scaffoldInput{
		Name:  "payments",
		Kind:  "component",
		Owner: "team-a",
	})
	if len(problems) > 0 {
		t.Fatalf("unexpected problems: %+v", problems)
	}
	if entity.RefKey() != "component:default/payments" {
		t.Errorf("ref = %q", entity.RefKey())
	}
	if typ, _ := entity.Type(); typ != "service" {
		t.Errorf("type = %q, want the service default", typ)
	}
	if lc, _ := entity.Lifecycle(); lc != "production" {
		t.Errorf("lifecycle = %q, want the production default", lc)
	}
}

func TestBuildScaffoldInvalidName(t *testing.T) {
	_, problems := buildScaffold(scaffoldInput{Name: "bad name", Kind: "component", Owner: "team-a"})
	if len(problems) == 0 {
		t.Fatal("expected a name problem for the embedded space")
	}
}

func TestBuildScaffoldRoundTrips(t *testing.T) {
	entity, problems := buildScaffold(scaffoldInput{
		Name: "auth", Kind: "system", Owner: "team-a", Description: "Auth domain services",
	})
	if len(problems) > 0 {
		t.Fatalf("unexpected problems: %+v", problems)
	}

	data, err := yaml.Marshal(entity)
	if err != nil {
		t.Fatal(err)
	}
	var back catalog.Entity
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Kind != catalog.KindSystem {
		t.Errorf("kind = %v", back.Kind)
	}
	if owner, ok := back.Owner(); !ok || owner != "team-a" {
		t.Errorf("owner = %q, ok=%v", owner, ok)
	}
	if back.Metadata.Description != "Auth domain services" {
		t.Errorf("description = %q", back.Metadata.Description)
	}
}
