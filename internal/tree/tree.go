// Package tree builds the hierarchical view of a catalog snapshot:
// Domain → System → Component/API/Resource, with orphan buckets for systems
// without a resolvable domain and for everything else.
//
// The tree is a flat arena of nodes linked by integer ids, so cross-links
// never form pointer cycles. Each entity node owns its own copy of the
// source entity; the tree can outlive the snapshot it was built from.
package tree

import (
	"fmt"
	"strings"

	"github.com/catwalk-tui/catwalk/internal/catalog"
)

// Category labels are fixed literals; category nodes carry no entity.
const (
	CategoryDomains = "Domains"
	CategorySystems = "Systems"
	CategoryOther   = "Other Entities"
)

// Node is a single tree node: either a synthetic category or an entity.
type Node struct {
	ID         int
	Label      string
	Depth      int
	Entity     *catalog.Sourced
	Children   []int
	IsCategory bool
}

// Tree is the arena of nodes plus the ids of the root categories.
type Tree struct {
	Nodes        []Node
	RootChildren []int
}

// State tracks the caller's navigation: the selected node id and the set of
// expanded node ids. It is passed explicitly into every query; the tree
// itself is immutable after Build.
type State struct {
	Selected int
	Expanded map[int]struct{}
}

// NewState returns a state with nothing expanded and node 0 selected.
func NewState() *State {
	return &State{Expanded: make(map[int]struct{})}
}

// ToggleExpanded flips the expansion of a node id.
func (s *State) ToggleExpanded(id int) {
	if _, ok := s.Expanded[id]; ok {
		delete(s.Expanded, id)
	} else {
		s.Expanded[id] = struct{}{}
	}
}

// IsExpanded reports whether a node id is expanded.
func (s *State) IsExpanded(id int) bool {
	_, ok := s.Expanded[id]
	return ok
}

// Expand marks a node id expanded.
func (s *State) Expand(id int) {
	s.Expanded[id] = struct{}{}
}

// Collapse removes a node id from the expanded set unconditionally.
func (s *State) Collapse(id int) {
	delete(s.Expanded, id)
}

// ExpandAll expands every node that has at least one child.
func (s *State) ExpandAll(t *Tree) {
	for i := range t.Nodes {
		if len(t.Nodes[i].Children) > 0 {
			s.Expanded[t.Nodes[i].ID] = struct{}{}
		}
	}
}

// builder accumulates nodes during Build. Node ids are assigned by a
// monotonic counter at creation time and double as arena indices.
type builder struct {
	nodes        []Node
	rootChildren []int
}

func (b *builder) add(n Node) int {
	n.ID = len(b.nodes)
	b.nodes = append(b.nodes, n)
	return n.ID
}

func (b *builder) link(parent, child int) {
	b.nodes[parent].Children = append(b.nodes[parent].Children, child)
}

func entityLabel(e *catalog.Entity) string {
	return fmt.Sprintf("%s: %s", e.Kind, e.DisplayName())
}

// Build groups a snapshot into the category tree. Grouping is by declared
// names: domains and systems are collected by metadata name, and
// components/APIs/resources bucket under their declared system field.
// Iteration order is first-seen input order throughout, so identical input
// produces an identical tree, ids included.
func Build(entities []catalog.Sourced) *Tree {
	var domainNames, systemNames []string
	var ungrouped []*catalog.Sourced
	domains := map[string][]*catalog.Sourced{}
	systems := map[string][]*catalog.Sourced{}
	systemToDomain := map[string]string{}
	entitiesBySystem := map[string][]*catalog.Sourced{}

	// Pass 1: classify. Domains and systems by name; systems additionally
	// record their declared domain.
	for i := range entities {
		s := &entities[i]
		switch s.Entity.Kind {
		case catalog.KindDomain:
			name := s.Entity.Metadata.Name
			if _, seen := domains[name]; !seen {
				domainNames = append(domainNames, name)
			}
			domains[name] = append(domains[name], s)
		case catalog.KindSystem:
			name := s.Entity.Metadata.Name
			if _, seen := systems[name]; !seen {
				systemNames = append(systemNames, name)
			}
			systems[name] = append(systems[name], s)
			if domain, ok := s.Entity.Domain(); ok {
				systemToDomain[name] = domain
			}
		}
	}

	for i := range entities {
		s := &entities[i]
		switch s.Entity.Kind {
		case catalog.KindDomain, catalog.KindSystem:
		case catalog.KindComponent, catalog.KindAPI, catalog.KindResource:
			if system, ok := s.Entity.System(); ok {
				entitiesBySystem[system] = append(entitiesBySystem[system], s)
			} else {
				ungrouped = append(ungrouped, s)
			}
		default:
			ungrouped = append(ungrouped, s)
		}
	}

	// Pass 2: assemble. Category buckets are created only when non-empty,
	// always in Domains / Systems / Other order.
	b := &builder{}

	if len(domainNames) > 0 {
		catID := b.add(Node{Label: CategoryDomains, Depth: 0, IsCategory: true})
		b.rootChildren = append(b.rootChildren, catID)

		for _, domainName := range domainNames {
			for _, dom := range domains[domainName] {
				domID := b.add(Node{Label: entityLabel(&dom.Entity), Depth: 1, Entity: clone(dom)})
				b.link(catID, domID)

				for _, sysName := range systemNames {
					if systemToDomain[sysName] != domainName {
						continue
					}
					for _, sys := range systems[sysName] {
						sysID := b.add(Node{Label: entityLabel(&sys.Entity), Depth: 2, Entity: clone(sys)})
						b.link(domID, sysID)
						b.addSystemEntities(sysID, 3, entitiesBySystem[sysName])
					}
				}
			}
		}
	}

	// A system is orphaned when it declares no domain or the declared domain
	// is not in the snapshot. It appears under Systems, never under both.
	var orphanNames []string
	for _, name := range systemNames {
		domain, ok := systemToDomain[name]
		if !ok {
			orphanNames = append(orphanNames, name)
			continue
		}
		if _, exists := domains[domain]; !exists {
			orphanNames = append(orphanNames, name)
		}
	}

	if len(orphanNames) > 0 {
		catID := b.add(Node{Label: CategorySystems, Depth: 0, IsCategory: true})
		b.rootChildren = append(b.rootChildren, catID)

		for _, sysName := range orphanNames {
			for _, sys := range systems[sysName] {
				sysID := b.add(Node{Label: entityLabel(&sys.Entity), Depth: 1, Entity: clone(sys)})
				b.link(catID, sysID)
				b.addSystemEntities(sysID, 2, entitiesBySystem[sysName])
			}
		}
	}

	if len(ungrouped) > 0 {
		catID := b.add(Node{Label: CategoryOther, Depth: 0, IsCategory: true})
		b.rootChildren = append(b.rootChildren, catID)

		for _, s := range ungrouped {
			entID := b.add(Node{Label: entityLabel(&s.Entity), Depth: 1, Entity: clone(s)})
			b.link(catID, entID)
		}
	}

	return &Tree{Nodes: b.nodes, RootChildren: b.rootChildren}
}

func (b *builder) addSystemEntities(sysID, depth int, members []*catalog.Sourced) {
	for _, m := range members {
		id := b.add(Node{Label: entityLabel(&m.Entity), Depth: depth, Entity: clone(m)})
		b.link(sysID, id)
	}
}

// clone takes an owned copy so tree nodes never alias the source slice.
func clone(s *catalog.Sourced) *catalog.Sourced {
	c := *s
	if s.Problems != nil {
		c.Problems = append([]catalog.ValidationError(nil), s.Problems...)
	}
	return &c
}

// Get returns the node with the given id, or nil when out of range.
func (t *Tree) Get(id int) *Node {
	if id < 0 || id >= len(t.Nodes) {
		return nil
	}
	return &t.Nodes[id]
}

// VisibleNodes returns the depth-first pre-order flattening of the tree,
// descending into a node's children only when its id is in the expanded set.
func (t *Tree) VisibleNodes(state *State) []*Node {
	var visible []*Node
	for _, rootID := range t.RootChildren {
		t.collectVisible(rootID, state, &visible)
	}
	return visible
}

func (t *Tree) collectVisible(id int, state *State, visible *[]*Node) {
	node := &t.Nodes[id]
	*visible = append(*visible, node)
	if state.IsExpanded(id) {
		for _, childID := range node.Children {
			t.collectVisible(childID, state, visible)
		}
	}
}

// FilterBySearch keeps the nodes whose label contains the query,
// case-insensitively, preserving order.
func FilterBySearch(nodes []*Node, query string) []*Node {
	q := strings.ToLower(query)
	var out []*Node
	for _, n := range nodes {
		if strings.Contains(strings.ToLower(n.Label), q) {
			out = append(out, n)
		}
	}
	return out
}
