// Package tui runs the interactive catalog browser on bubbletea.
//
// The model is a thin shell over app.App: every key maps to one state
// transition, and View re-renders from state. TUI state is
// single-threaded inside the bubbletea event loop; watcher reloads
// arrive as messages, never as direct mutation.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/catwalk-tui/catwalk/internal/app"
	"github.com/catwalk-tui/catwalk/internal/ui"
)

// reloadMsg arrives when the watcher saw the catalog change.
type reloadMsg struct{}

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorAccent).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)
)

// Model is the bubbletea model for the catalog browser.
type Model struct {
	app     *app.App
	theme   string
	reloads <-chan struct{}

	viewport viewport.Model
	width    int
	height   int
	ready    bool
	showHelp bool
	quitting bool
}

// New builds the model. reloads may be nil when watching is disabled.
func New(a *app.App, theme string, reloads <-chan struct{}) Model {
	return Model{app: a, theme: theme, reloads: reloads}
}

// Run starts the program in the alternate screen and blocks until the
// user quits.
func Run(a *app.App, theme string, reloads <-chan struct{}) error {
	p := tea.NewProgram(New(a, theme, reloads), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func waitForReload(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return reloadMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return waitForReload(m.reloads)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		panelWidth := m.width - m.treeWidth() - 6
		panelHeight := m.contentHeight()
		if !m.ready {
			m.viewport = viewport.New(panelWidth, panelHeight)
			m.ready = true
		} else {
			m.viewport.Width = panelWidth
			m.viewport.Height = panelHeight
		}
		m.refreshPanel()
		return m, nil

	case reloadMsg:
		m.app.Reload()
		m.refreshPanel()
		return m, waitForReload(m.reloads)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showHelp {
		switch msg.String() {
		case "q", "?", "esc":
			m.showHelp = false
		}
		return m, nil
	}

	switch m.app.Mode() {
	case app.ModeSearch:
		return m.handleSearchKey(msg)
	case app.ModeDocs:
		return m.handleDocsKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "/":
		m.app.StartSearch()
	case "esc":
		m.app.ClearSearch()
	case "up", "k":
		m.app.MoveUp()
		m.refreshPanel()
	case "down", "j":
		m.app.MoveDown()
		m.refreshPanel()
	case "left", "h":
		m.app.Collapse()
	case "right", "l", "enter":
		m.app.ToggleExpand()
	case "e":
		m.app.ExpandAll()
	case "r":
		m.app.Reload()
		m.refreshPanel()
	case "g":
		m.app.ToggleGraph()
		m.refreshPanel()
	case "d":
		m.app.OpenDocs()
	case "?":
		m.showHelp = true
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.app.CancelSearch()
	case tea.KeyEnter:
		m.app.ConfirmSearch()
		m.refreshPanel()
	case tea.KeyBackspace:
		m.app.SearchBackspace()
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.app.SearchInput(r)
		}
	}
	return m, nil
}

func (m Model) handleDocsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := m.app.Docs
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.app.CloseDocs()
	case "up", "k":
		b.MoveUp()
	case "down", "j":
		b.MoveDown(m.contentHeight())
	case "pgup":
		b.PageUp(m.contentHeight() / 2)
	case "pgdown":
		b.PageDown(m.contentHeight(), m.contentHeight()/2)
	case "enter":
		b.OpenSelected()
	}
	return m, nil
}

func (m *Model) treeWidth() int {
	w := m.width / 2
	if w < 30 {
		w = 30
	}
	return w
}

func (m *Model) contentHeight() int {
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	return h
}

// refreshPanel re-renders the right panel into the viewport.
func (m *Model) refreshPanel() {
	if !m.ready {
		return
	}
	if m.app.ShowGraph {
		m.viewport.SetContent(ui.GraphPanel(m.app.Graph()))
		return
	}
	m.viewport.SetContent(ui.DetailsPanel(m.app.SelectedEntity(), m.app.Index))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading...\n"
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.app.Mode() == app.ModeDocs {
		return m.renderDocs()
	}

	searchBar := paneStyle.Width(m.treeWidth()).Render(ui.SearchBar(m.app.SearchQuery, false))
	if m.app.Mode() == app.ModeSearch {
		searchBar = paneStyle.Width(m.treeWidth()).
			BorderForeground(ui.ColorWarn).
			Render(ui.SearchBar(m.app.SearchQuery, true))
	}

	visible := m.app.VisibleNodes()
	title := ui.TreeTitle(len(visible), m.app.EntityCount(), m.app.SearchQuery != "")
	treePane := paneStyle.Width(m.treeWidth()).Height(m.contentHeight()).
		Render(ui.CategoryStyle.Render(title) + "\n" + ui.TreeView(visible, m.app.TreeState))

	panelTitle := " Details "
	if m.app.ShowGraph {
		panelTitle = " Relationships (g to toggle) "
	}
	panel := paneStyle.Height(m.contentHeight()).
		Render(ui.AccentStyle.Render(panelTitle) + "\n" + m.viewport.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, treePane, panel)
	return strings.Join([]string{searchBar, body, m.footer()}, "\n")
}

func (m Model) renderDocs() string {
	b := m.app.Docs
	var body string
	if b.Viewing() {
		body = ui.DocsContent(b, m.width-4, m.contentHeight(), m.theme)
	} else {
		body = ui.DocsList(b)
	}
	pane := paneStyle.Width(m.width - 2).Height(m.contentHeight() + 2).Render(body)
	return pane + "\n" + m.footer()
}

func (m Model) renderHelp() string {
	rows := []string{
		"Navigation",
		"  up/k down/j   move",
		"  right/l/enter expand or collapse",
		"  left/h        collapse",
		"  e             expand all",
		"",
		"Views",
		"  g             relationship graph",
		"  d             documentation",
		"  /             search",
		"  esc           clear search / close view",
		"",
		"Other",
		"  r             reload catalog",
		"  q             quit",
		"",
		"Press ? or esc to close help",
	}
	return paneStyle.Width(m.width - 2).Render(strings.Join(rows, "\n"))
}

func (m Model) footer() string {
	switch m.app.Mode() {
	case app.ModeSearch:
		return footerStyle.Render("enter confirm · esc cancel")
	case app.ModeDocs:
		return footerStyle.Render("enter open · esc back · j/k scroll · q quit")
	}
	return footerStyle.Render("j/k move · enter expand · / search · g graph · d docs · r reload · ? help · q quit")
}
