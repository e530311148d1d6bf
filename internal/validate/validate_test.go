package validate

import (
	"testing"

	"github.com/catwalk-tui/catwalk/internal/catalog"
)

func mkEntity(kind catalog.Kind, name string, spec map[string]any) catalog.Entity {
	var raw any
	if spec != nil {
		raw = spec
	}
	return catalog.Entity{
		APIVersion: "backstage.io/v1alpha1",
		Kind:       kind,
		Metadata:   catalog.Metadata{Name: name},
		Spec:       catalog.NewValue(raw),
	}
}

func hasProblem(problems []catalog.ValidationError, path string) bool {
	for _, p := range problems {
		if p.Path == path {
			return true
		}
	}
	return false
}

func TestValidComponent(t *testing.T) {
	e := mkEntity(catalog.KindComponent, "payment-service", map[string]any{
		"type":      "service",
		"lifecycle": "production",
		"owner":     "team-a",
	})
	if problems := Entity(&e); len(problems) != 0 {
		t.Errorf("valid component reported problems: %v", problems)
	}
}

func TestComponentMissingSpecFields(t *testing.T) {
	e := mkEntity(catalog.KindComponent, "bare", nil)
	problems := Entity(&e)
	for _, path := range []string{"/spec/type", "/spec/lifecycle", "/spec/owner"} {
		if !hasProblem(problems, path) {
			t.Errorf("missing problem for %s in %v", path, problems)
		}
	}
}

func TestPerKindRequirements(t *testing.T) {
	tests := []struct {
		kind     catalog.Kind
		spec     map[string]any
		wantPath string
	}{
		{catalog.KindAPI, map[string]any{"type": "openapi", "lifecycle": "production", "owner": "team-a"}, "/spec/definition"},
		{catalog.KindResource, map[string]any{"type": "database"}, "/spec/owner"},
		{catalog.KindSystem, nil, "/spec/owner"},
		{catalog.KindDomain, nil, "/spec/owner"},
		{catalog.KindGroup, nil, "/spec/type"},
	}
	for _, tt := range tests {
		e := mkEntity(tt.kind, "thing", tt.spec)
		problems := Entity(&e)
		if !hasProblem(problems, tt.wantPath) {
			t.Errorf("%s: missing problem for %s in %v", tt.kind, tt.wantPath, problems)
		}
	}
}

func TestKindsWithoutSpecRequirements(t *testing.T) {
	for _, kind := range []catalog.Kind{catalog.KindUser, catalog.KindLocation} {
		e := mkEntity(kind, "anything", nil)
		if problems := Entity(&e); len(problems) != 0 {
			t.Errorf("%s with empty spec reported problems: %v", kind, problems)
		}
	}
}

func TestAPIDefinitionAnyShape(t *testing.T) {
	// A definition may be a nested mapping, not just a string.
	e := mkEntity(catalog.KindAPI, "user-api", map[string]any{
		"type":       "openapi",
		"lifecycle":  "production",
		"owner":      "team-a",
		"definition": map[string]any{"$text": "./openapi.yaml"},
	})
	if problems := Entity(&e); len(problems) != 0 {
		t.Errorf("mapping definition reported problems: %v", problems)
	}
}

func TestMetadataName(t *testing.T) {
	empty := mkEntity(catalog.KindUser, "", nil)
	if problems := Entity(&empty); !hasProblem(problems, "/metadata/name") {
		t.Errorf("empty name not reported: %v", problems)
	}

	spaced := mkEntity(catalog.KindUser, "has space", nil)
	if problems := Entity(&spaced); !hasProblem(problems, "/metadata/name") {
		t.Errorf("name with whitespace not reported: %v", problems)
	}

	dotted := mkEntity(catalog.KindUser, "web.site-v2_beta", nil)
	if problems := Entity(&dotted); len(problems) != 0 {
		t.Errorf("dots, dashes and underscores are allowed: %v", problems)
	}
}

func TestAPIVersion(t *testing.T) {
	e := mkEntity(catalog.KindUser, "alice", nil)
	e.APIVersion = "example.com/v1"
	if problems := Entity(&e); !hasProblem(problems, "/apiVersion") {
		t.Errorf("foreign apiVersion not reported: %v", problems)
	}
}

func TestUnknownKind(t *testing.T) {
	e := mkEntity(catalog.KindUnknown, "mystery", map[string]any{"owner": "someone"})
	problems := Entity(&e)
	if !hasProblem(problems, "/kind") {
		t.Errorf("unknown kind not reported: %v", problems)
	}
	// Unknown kinds are not held to any kind's spec rules.
	for _, p := range problems {
		if p.Path != "/kind" {
			t.Errorf("unexpected extra problem %v", p)
		}
	}
}
