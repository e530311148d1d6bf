package catwalk

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAndGraph(t *testing.T) {
	dir := t.TempDir()
	manifest := `apiVersion: backstage.io/v1alpha1
kind: Component
metadata:
  name: billing
spec:
  type: service
  lifecycle: production
  owner: payments-team
`
	if err := os.WriteFile(filepath.Join(dir, "catalog-info.yaml"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	entities, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entities) != 1 {
		t.Fatalf("loaded %d entities, want 1", len(entities))
	}

	g := BuildGraph(&entities[0], entities)
	if len(g.Outgoing) != 1 {
		t.Fatalf("outgoing = %d, want the owner edge", len(g.Outgoing))
	}
	if g.Outgoing[0].Node.Exists {
		t.Error("owner edge should be dangling in a one-entity catalog")
	}
}

func TestParseRef(t *testing.T) {
	ref := ParseRef("api:internal/auth", "component")
	if ref.Kind != "api" || ref.Namespace != "internal" || ref.Name != "auth" {
		t.Errorf("ref = %+v", ref)
	}
	if ref.Canonical() != "api:internal/auth" {
		t.Errorf("canonical = %q", ref.Canonical())
	}
}
