package catalog

import (
	"fmt"
	"strings"
)

// Ref is a parsed entity reference with its kind and namespace resolved.
//
// The inferred flags record whether the kind/namespace were written out in
// the source string or filled from defaults. Two refs with the same resolved
// parts but different inferred flags are not equal as struct values, while
// their canonical strings are; callers rely on both comparisons (struct
// equality for precise checks, Canonical for index lookups).
type Ref struct {
	Kind      string
	Namespace string
	Name      string

	KindInferred      bool
	NamespaceInferred bool
}

// ParseRef parses a reference of the form `[kind:][namespace/]name` with a
// default kind for the calling context. Parsing never fails: an empty input
// yields the default kind, the "default" namespace, and an empty name.
func ParseRef(reference, defaultKind string) Ref {
	r := Ref{
		Kind:              strings.ToLower(defaultKind),
		Namespace:         "default",
		KindInferred:      true,
		NamespaceInferred: true,
	}

	rest := reference
	if idx := strings.Index(reference, ":"); idx >= 0 {
		r.Kind = strings.ToLower(reference[:idx])
		r.KindInferred = false
		rest = reference[idx+1:]
	}

	r.Name = rest
	if idx := strings.Index(rest, "/"); idx >= 0 {
		r.Namespace = rest[:idx]
		r.NamespaceInferred = false
		r.Name = rest[idx+1:]
	}

	return r
}

// Canonical returns the fully-resolved "kind:namespace/name" identity string.
// The kind is always lowercase; namespace and name keep their source casing.
func (r Ref) Canonical() string {
	return fmt.Sprintf("%s:%s/%s", r.Kind, r.Namespace, r.Name)
}

func (r Ref) String() string {
	return r.Canonical()
}

// IsKnownKind reports whether the resolved kind is one of the eight catalog
// kinds.
func (r Ref) IsKnownKind() bool {
	switch r.Kind {
	case "component", "api", "resource", "system", "domain", "group", "user", "location":
		return true
	default:
		return false
	}
}

// Index is an immutable set of canonical entity keys built from one catalog
// snapshot. Duplicate keys collapse silently (last write wins). A reload
// discards and rebuilds the whole index; there is no incremental mutation.
type Index struct {
	keys map[string]struct{}
}

// BuildIndex computes the canonical key of every entity in the snapshot.
func BuildIndex(entities []Sourced) *Index {
	keys := make(map[string]struct{}, len(entities))
	for i := range entities {
		keys[entities[i].Entity.RefKey()] = struct{}{}
	}
	return &Index{keys: keys}
}

// Contains reports whether the reference resolves to a known entity.
func (ix *Index) Contains(r Ref) bool {
	return ix.ContainsKey(r.Canonical())
}

// ContainsKey tests a canonical key directly.
func (ix *Index) ContainsKey(key string) bool {
	if ix == nil {
		return false
	}
	_, ok := ix.keys[key]
	return ok
}

// Len returns the number of distinct keys in the index.
func (ix *Index) Len() int {
	return len(ix.keys)
}
