// Package catwalk provides a minimal public API for embedding the catalog
// loader in other tools.
//
// Most consumers should use the catwalk binary. This package exports only
// the types and functions needed to load and inspect a catalog
// programmatically: entity loading, reference parsing, and relationship
// graphs.
package catwalk

import (
	"github.com/catwalk-tui/catwalk/internal/catalog"
	"github.com/catwalk-tui/catwalk/internal/graph"
	"github.com/catwalk-tui/catwalk/internal/loader"
)

// Entity is a single parsed catalog entity.
type Entity = catalog.Entity

// Sourced pairs an entity with its source file and validation problems.
type Sourced = catalog.Sourced

// Ref is a parsed entity reference.
type Ref = catalog.Ref

// ValidationError describes one structural problem found in an entity.
type ValidationError = catalog.ValidationError

// Graph is the relationship picture for one focal entity.
type Graph = graph.Graph

// Loader discovers and parses catalog files.
type Loader = loader.Loader

// NewLoader returns a loader with the default file pattern.
func NewLoader() *Loader {
	return loader.New()
}

// Load discovers and parses every catalog entity under root with the
// default file pattern. Entities with problems still load; the problems
// travel with them.
func Load(root string) ([]Sourced, error) {
	return loader.New().Load(root)
}

// ParseRef parses a `[kind:][namespace/]name` reference. Parsing never
// fails; missing parts fill from defaultKind and the "default" namespace.
func ParseRef(reference, defaultKind string) Ref {
	return catalog.ParseRef(reference, defaultKind)
}

// BuildGraph computes the relationships of one entity against a snapshot.
func BuildGraph(focal *Sourced, all []Sourced) *Graph {
	return graph.Build(focal, all)
}
