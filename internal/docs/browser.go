package docs

import (
	"os"
	"strings"
)

// Content is an opened document split into lines for scrolling.
type Content struct {
	File  File
	Lines []string
}

// Browser is the documentation view state: a file list with a cursor,
// and optionally an opened document with a scroll offset.
type Browser struct {
	Ref          Ref
	Files        []File
	Selected     int
	Content      *Content
	ScrollOffset int
}

// NewBrowser discovers the files under ref and starts at the top of
// the list.
func NewBrowser(ref Ref) *Browser {
	return &Browser{Ref: ref, Files: Discover(ref.Path)}
}

// Viewing reports whether a document is open.
func (b *Browser) Viewing() bool {
	return b.Content != nil
}

// MoveUp scrolls the open document, or moves the list cursor.
func (b *Browser) MoveUp() {
	if b.Viewing() {
		if b.ScrollOffset > 0 {
			b.ScrollOffset--
		}
		return
	}
	if b.Selected > 0 {
		b.Selected--
	}
}

// MoveDown scrolls the open document within its height, or moves the
// list cursor.
func (b *Browser) MoveDown(visibleHeight int) {
	if b.Viewing() {
		if b.ScrollOffset < b.maxScroll(visibleHeight) {
			b.ScrollOffset++
		}
		return
	}
	if b.Selected < len(b.Files)-1 {
		b.Selected++
	}
}

func (b *Browser) PageUp(pageSize int) {
	if !b.Viewing() {
		return
	}
	b.ScrollOffset -= pageSize
	if b.ScrollOffset < 0 {
		b.ScrollOffset = 0
	}
}

func (b *Browser) PageDown(visibleHeight, pageSize int) {
	if !b.Viewing() {
		return
	}
	b.ScrollOffset += pageSize
	if max := b.maxScroll(visibleHeight); b.ScrollOffset > max {
		b.ScrollOffset = max
	}
}

func (b *Browser) maxScroll(visibleHeight int) int {
	if b.Content == nil {
		return 0
	}
	max := len(b.Content.Lines) - visibleHeight
	if max < 0 {
		return 0
	}
	return max
}

// OpenSelected reads the file under the cursor. Unreadable files leave
// the browser in the list view.
func (b *Browser) OpenSelected() {
	if b.Viewing() || b.Selected >= len(b.Files) {
		return
	}
	file := b.Files[b.Selected]
	data, err := os.ReadFile(file.Path)
	if err != nil {
		return
	}
	b.Content = &Content{
		File:  file,
		Lines: strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"),
	}
	b.ScrollOffset = 0
}

// CloseContent returns to the file list.
func (b *Browser) CloseContent() {
	b.Content = nil
	b.ScrollOffset = 0
}
