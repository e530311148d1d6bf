// Package app holds the browser state machine: the loaded snapshot,
// the tree cursor, search, and the graph and docs views layered on
// top. It is pure state so the terminal layer stays a thin shell.
package app

import (
	"github.com/catwalk-tui/catwalk/internal/catalog"
	"github.com/catwalk-tui/catwalk/internal/docs"
	"github.com/catwalk-tui/catwalk/internal/graph"
	"github.com/catwalk-tui/catwalk/internal/loader"
	"github.com/catwalk-tui/catwalk/internal/tree"
)

// InputMode tells the terminal layer which key table applies.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeSearch
	ModeDocs
)

// App is the full browser state for one catalog root.
type App struct {
	Entities    []catalog.Sourced
	Index       *catalog.Index
	Tree        *tree.Tree
	TreeState   *tree.State
	SearchQuery string
	SearchOpen  bool
	ShowGraph   bool
	Docs        *docs.Browser

	root   string
	loader *loader.Loader
}

// New loads the catalog under root and opens the browser with the
// top-level categories expanded.
func New(root string, l *loader.Loader) (*App, error) {
	if l == nil {
		l = loader.New()
	}
	a := &App{root: root, loader: l}
	if err := a.load(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) load() error {
	entities, err := a.loader.Load(a.root)
	if err != nil {
		return err
	}
	a.Entities = entities
	a.Index = catalog.BuildIndex(entities)
	a.Tree = tree.Build(entities)
	a.TreeState = tree.NewState()
	for _, id := range a.Tree.RootChildren {
		a.TreeState.Expand(id)
	}
	return nil
}

// Reload re-reads the catalog and resets every view. A failed reload
// keeps the previous snapshot on screen.
func (a *App) Reload() {
	if err := a.load(); err != nil {
		return
	}
	a.SearchQuery = ""
	a.SearchOpen = false
	a.ShowGraph = false
	a.Docs = nil
}

// EntityCount is the number of loaded entities, shown in the footer.
func (a *App) EntityCount() int {
	return len(a.Entities)
}

// VisibleNodes returns the expanded tree rows, filtered by the search
// query when one is set.
func (a *App) VisibleNodes() []*tree.Node {
	nodes := a.Tree.VisibleNodes(a.TreeState)
	if a.SearchQuery == "" {
		return nodes
	}
	return tree.FilterBySearch(nodes, a.SearchQuery)
}

// SelectedEntity is the entity under the cursor, nil on category rows.
func (a *App) SelectedEntity() *catalog.Sourced {
	node := a.Tree.Get(a.TreeState.Selected)
	if node == nil {
		return nil
	}
	return node.Entity
}

func (a *App) selectedVisibleIndex(visible []*tree.Node) int {
	for i, n := range visible {
		if n.ID == a.TreeState.Selected {
			return i
		}
	}
	return 0
}

// MoveUp moves the cursor to the previous visible row.
func (a *App) MoveUp() {
	visible := a.VisibleNodes()
	if len(visible) == 0 {
		return
	}
	if i := a.selectedVisibleIndex(visible); i > 0 {
		a.TreeState.Selected = visible[i-1].ID
	}
}

// MoveDown moves the cursor to the next visible row.
func (a *App) MoveDown() {
	visible := a.VisibleNodes()
	if len(visible) == 0 {
		return
	}
	if i := a.selectedVisibleIndex(visible); i < len(visible)-1 {
		a.TreeState.Selected = visible[i+1].ID
	}
}

// ToggleExpand flips expansion on the selected row. Leaves are left
// alone so toggling cannot strand hidden state.
func (a *App) ToggleExpand() {
	node := a.Tree.Get(a.TreeState.Selected)
	if node == nil || len(node.Children) == 0 {
		return
	}
	a.TreeState.ToggleExpanded(node.ID)
}

// Collapse collapses the selected row.
func (a *App) Collapse() {
	a.TreeState.Collapse(a.TreeState.Selected)
}

// ExpandAll expands every row with children.
func (a *App) ExpandAll() {
	a.TreeState.ExpandAll(a.Tree)
}

// ToggleGraph flips the relationship panel.
func (a *App) ToggleGraph() {
	a.ShowGraph = !a.ShowGraph
}

// Graph builds the relationship graph for the selected entity, nil on
// category rows.
func (a *App) Graph() *graph.Graph {
	e := a.SelectedEntity()
	if e == nil {
		return nil
	}
	return graph.Build(e, a.Entities)
}

// DocsRefs resolves the documentation references of the selected
// entity.
func (a *App) DocsRefs() []docs.Ref {
	e := a.SelectedEntity()
	if e == nil {
		return nil
	}
	return docs.ParseRefs(e.Entity.Metadata.Annotations, e.SourceFile)
}

// OpenDocs opens the browser on the selected entity's first
// documentation reference, if any.
func (a *App) OpenDocs() {
	refs := a.DocsRefs()
	if len(refs) == 0 {
		return
	}
	a.Docs = docs.NewBrowser(refs[0])
}

// CloseDocs steps back one level: an open document closes first, then
// the browser itself.
func (a *App) CloseDocs() {
	if a.Docs == nil {
		return
	}
	if a.Docs.Viewing() {
		a.Docs.CloseContent()
		return
	}
	a.Docs = nil
}

// StartSearch enters search input mode without clearing the query.
func (a *App) StartSearch() {
	a.SearchOpen = true
}

// SearchInput appends to the query and keeps the cursor on a visible
// row.
func (a *App) SearchInput(r rune) {
	a.SearchQuery += string(r)
	a.snapSelection()
}

// SearchBackspace removes the last rune from the query.
func (a *App) SearchBackspace() {
	if a.SearchQuery == "" {
		return
	}
	runes := []rune(a.SearchQuery)
	a.SearchQuery = string(runes[:len(runes)-1])
}

// ConfirmSearch leaves input mode, keeping the filter applied.
func (a *App) ConfirmSearch() {
	a.SearchOpen = false
	a.snapSelection()
}

// CancelSearch leaves input mode and drops the filter.
func (a *App) CancelSearch() {
	a.SearchOpen = false
	a.SearchQuery = ""
}

// ClearSearch drops the filter without changing input mode.
func (a *App) ClearSearch() {
	a.SearchQuery = ""
}

// snapSelection moves the cursor onto the first visible row when the
// filter pushed it out of view.
func (a *App) snapSelection() {
	visible := a.VisibleNodes()
	for _, n := range visible {
		if n.ID == a.TreeState.Selected {
			return
		}
	}
	if len(visible) > 0 {
		a.TreeState.Selected = visible[0].ID
	}
}

// Mode reports which key table the terminal layer should use.
func (a *App) Mode() InputMode {
	switch {
	case a.SearchOpen:
		return ModeSearch
	case a.Docs != nil:
		return ModeDocs
	}
	return ModeNormal
}
