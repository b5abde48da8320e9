// Package document provides the scrollable page that overlays render on top
// of. It is the terminal counterpart of a browser document body.
package document

import (
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Document is a scrollable page whose scrolling can be suspended.
type Document struct {
	mu       sync.Mutex
	viewport viewport.Model
	locked   bool
}

// New creates a document of the given size.
func New(width, height int) *Document {
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = true
	return &Document{viewport: vp}
}

// SetContent replaces the page body.
func (d *Document) SetContent(content string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.viewport.SetContent(content)
}

// SetSize resizes the visible area.
func (d *Document) SetSize(width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.viewport.Width = width
	d.viewport.Height = height
}

// SetScrollLocked implements scrolllock.Target.
func (d *Document) SetScrollLocked(locked bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.locked = locked
}

// ScrollLocked reports whether scrolling is suspended.
func (d *Document) ScrollLocked() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.locked
}

// Offset returns the index of the first visible line.
func (d *Document) Offset() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.viewport.YOffset
}

// Update forwards scroll input to the viewport unless the page is locked.
func (d *Document) Update(msg tea.Msg) tea.Cmd {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.locked && isScrollInput(msg) {
		return nil
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return cmd
}

// View renders the visible part of the page.
func (d *Document) View() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.viewport.View()
}

func isScrollInput(msg tea.Msg) bool {
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		return true
	default:
		return false
	}
}
