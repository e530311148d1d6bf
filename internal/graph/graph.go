// Package graph derives per-entity relationship graphs from a catalog
// snapshot. A graph has a center entity, the typed references it makes
// (outgoing), and the typed references other entities make to it (incoming).
//
// Incoming edges are never materialized ahead of time: they are recomputed by
// a full scan of the snapshot on each build, which is fine for catalogs of up
// to a few thousand entities browsed interactively.
package graph

import (
	"github.com/catwalk-tui/catwalk/internal/catalog"
)

// RelationKind is the type of a single relationship edge.
type RelationKind int

const (
	Owner RelationKind = iota
	System
	Domain
	Parent
	Child
	DependsOn
	DependencyOf
	ProvidesAPI
	ConsumesAPI
	ProvidedBy
	ConsumedBy
	MemberOf
	HasMember
)

// Label returns the human-readable edge label used by the renderers.
func (k RelationKind) Label() string {
	switch k {
	case Owner:
		return "owned by"
	case System:
		return "part of"
	case Domain:
		return "in domain"
	case Parent:
		return "parent"
	case Child:
		return "child"
	case DependsOn:
		return "depends on"
	case DependencyOf:
		return "dependency of"
	case ProvidesAPI:
		return "provides"
	case ConsumesAPI:
		return "consumes"
	case ProvidedBy:
		return "provided by"
	case ConsumedBy:
		return "consumed by"
	case MemberOf:
		return "member of"
	case HasMember:
		return "has member"
	default:
		return "related to"
	}
}

// Node is one endpoint of a relationship edge. Exists is false when the
// reference does not resolve to any entity in the snapshot.
type Node struct {
	DisplayName string `json:"displayName"`
	Kind        string `json:"kind"`
	Exists      bool   `json:"exists"`
}

// Edge pairs a relation kind with its target node. Edge order is the
// extraction order and is deterministic for a given snapshot order.
type Edge struct {
	Kind RelationKind `json:"kind"`
	Node Node         `json:"node"`
}

// Graph is the complete relationship picture for one focal entity.
type Graph struct {
	Center   Node   `json:"center"`
	Outgoing []Edge `json:"outgoing"`
	Incoming []Edge `json:"incoming"`
}

// fieldSpec binds a spec field to its outgoing and incoming relation kinds
// and the default kind used to resolve its values.
type fieldSpec struct {
	key         string
	defaultKind string
	outgoing    RelationKind
	incoming    RelationKind
}

// Field order is part of the contract: outgoing edges appear in exactly this
// order, single-valued fields first.
var (
	singleFields = []fieldSpec{
		{"owner", "group", Owner, Owner},
		{"system", "system", System, System},
		{"domain", "domain", Domain, Domain},
		{"parent", "group", Parent, Child},
	}
	arrayFields = []fieldSpec{
		{"children", "group", Child, Child},
		{"dependsOn", "component", DependsOn, DependencyOf},
		{"providesApis", "api", ProvidesAPI, ProvidedBy},
		{"consumesApis", "api", ConsumesAPI, ConsumedBy},
		{"memberOf", "group", MemberOf, HasMember},
	}
)

// incomingArrayFields is the subset of array fields scanned for incoming
// edges; "children" is covered by the parent/child single-field pair.
var incomingArrayFields = []fieldSpec{
	{"dependsOn", "component", DependsOn, DependencyOf},
	{"consumesApis", "api", ConsumesAPI, ConsumedBy},
	{"providesApis", "api", ProvidesAPI, ProvidedBy},
	{"memberOf", "group", MemberOf, HasMember},
}

// Build computes the relationship graph for one focal entity against the
// whole snapshot. It is total: dangling references become exists=false
// nodes, and malformed spec shapes extract nothing.
func Build(focal *catalog.Sourced, all []catalog.Sourced) *Graph {
	index := catalog.BuildIndex(all)
	centerKey := focal.Entity.RefKey()

	g := &Graph{
		Center: Node{
			DisplayName: focal.Entity.DisplayName(),
			Kind:        focal.Entity.Kind.String(),
			Exists:      true,
		},
	}

	g.Outgoing = extractOutgoing(&focal.Entity, index)
	g.Incoming = extractIncoming(centerKey, all)

	return g
}

func extractOutgoing(e *catalog.Entity, index *catalog.Index) []Edge {
	var out []Edge

	for _, f := range singleFields {
		if raw, ok := e.SpecStr(f.key); ok {
			out = append(out, refEdge(raw, f.defaultKind, f.outgoing, index))
		}
	}
	for _, f := range arrayFields {
		for _, raw := range e.Spec.Get(f.key).StrSeq() {
			out = append(out, refEdge(raw, f.defaultKind, f.outgoing, index))
		}
	}

	return out
}

func refEdge(raw, defaultKind string, kind RelationKind, index *catalog.Index) Edge {
	ref := catalog.ParseRef(raw, defaultKind)
	return Edge{
		Kind: kind,
		Node: Node{
			DisplayName: ref.Name,
			Kind:        ref.Kind,
			Exists:      index.ContainsKey(ref.Canonical()),
		},
	}
}

func extractIncoming(centerKey string, all []catalog.Sourced) []Edge {
	var in []Edge

	for i := range all {
		other := &all[i]
		if other.Entity.RefKey() == centerKey {
			continue
		}

		for _, f := range singleFields {
			if raw, ok := other.Entity.SpecStr(f.key); ok {
				if catalog.ParseRef(raw, f.defaultKind).Canonical() == centerKey {
					in = append(in, entityEdge(f.incoming, other))
				}
			}
		}

		// At most one edge per array field per entity, even when the center
		// appears several times in the same list.
		for _, f := range incomingArrayFields {
			for _, raw := range other.Entity.Spec.Get(f.key).StrSeq() {
				if catalog.ParseRef(raw, f.defaultKind).Canonical() == centerKey {
					in = append(in, entityEdge(f.incoming, other))
					break
				}
			}
		}
	}

	return in
}

// entityEdge builds an incoming edge from a known entity; the source is in
// the snapshot by construction, so Exists is always true.
func entityEdge(kind RelationKind, src *catalog.Sourced) Edge {
	return Edge{
		Kind: kind,
		Node: Node{
			DisplayName: src.Entity.DisplayName(),
			Kind:        src.Entity.Kind.String(),
			Exists:      true,
		},
	}
}
