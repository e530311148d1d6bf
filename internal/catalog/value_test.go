package catalog

import (
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestValueMappingLookup(t *testing.T) {
	v := NewValue(map[string]any{
		"owner": "team-a",
		"count": 3,
		"nested": map[string]any{
			"inner": "deep",
		},
	})

	if s, ok := v.Str("owner"); !ok || s != "team-a" {
		t.Errorf("Str(owner) = %q, %v", s, ok)
	}
	if _, ok := v.Str("count"); ok {
		t.Error("Str over a number should report absence")
	}
	if _, ok := v.Str("missing"); ok {
		t.Error("missing key should report absence")
	}
	if s, ok := v.Get("nested").Str("inner"); !ok || s != "deep" {
		t.Errorf("nested lookup = %q, %v", s, ok)
	}
}

func TestValueShapeMismatch(t *testing.T) {
	// Lookups against scalars, sequences, and nil all degrade to absence.
	for _, raw := range []any{nil, "scalar", 42, []any{"a"}} {
		v := NewValue(raw)
		if !v.Get("anything").IsNil() {
			t.Errorf("Get on %T should yield nil value", raw)
		}
		if _, ok := v.Str("anything"); ok {
			t.Errorf("Str on %T should report absence", raw)
		}
	}

	if NewValue("scalar").Seq() != nil {
		t.Error("Seq on a scalar should be nil")
	}
	if NewValue(map[string]any{}).Seq() != nil {
		t.Error("Seq on a mapping should be nil")
	}
}

func TestValueSeq(t *testing.T) {
	v := NewValue([]any{"a", 1, "b", nil, "c"})

	if got := len(v.Seq()); got != 5 {
		t.Fatalf("Seq() length = %d, want 5", got)
	}
	// Non-string elements are skipped, not errored.
	if got := v.StrSeq(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("StrSeq() = %v", got)
	}
}

func TestValueYAMLRoundTrip(t *testing.T) {
	doc := `
dependsOn:
  - component:default/auth
  - db
providesApis: [payment-api]
owner: team-a
`
	var v Value
	if err := yaml.Unmarshal([]byte(doc), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got := v.Get("dependsOn").StrSeq(); !reflect.DeepEqual(got, []string{"component:default/auth", "db"}) {
		t.Errorf("dependsOn = %v", got)
	}
	if got := v.Get("providesApis").StrSeq(); !reflect.DeepEqual(got, []string{"payment-api"}) {
		t.Errorf("providesApis = %v", got)
	}
	if s, ok := v.Str("owner"); !ok || s != "team-a" {
		t.Errorf("owner = %q, %v", s, ok)
	}
}

func TestValueKeys(t *testing.T) {
	v := NewValue(map[string]any{"b": 1, "a": 2, "c": 3})
	if got := v.Keys(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Keys() = %v", got)
	}
	if NewValue("scalar").Keys() != nil {
		t.Error("Keys on a scalar should be nil")
	}
}
