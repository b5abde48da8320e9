package document

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glint/internal/scrolllock"
)

func longContent(lines int) string {
	out := make([]string, lines)
	for i := range out {
		out[i] = fmt.Sprintf("line %02d", i)
	}
	return strings.Join(out, "\n")
}

func newTestDocument() *Document {
	doc := New(20, 5)
	doc.SetContent(longContent(40))
	return doc
}

func TestDocumentScrollsWhenUnlocked(t *testing.T) {
	t.Parallel()

	doc := newTestDocument()
	doc.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, 1, doc.Offset())
	assert.Contains(t, doc.View(), "line 01")
}

func TestDocumentIgnoresScrollWhileLocked(t *testing.T) {
	t.Parallel()

	doc := newTestDocument()
	doc.SetScrollLocked(true)
	require.True(t, doc.ScrollLocked())

	doc.Update(tea.KeyMsg{Type: tea.KeyDown})
	doc.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, 0, doc.Offset())

	doc.SetScrollLocked(false)
	doc.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, doc.Offset())
}

func TestDocumentAsLockTarget(t *testing.T) {
	t.Parallel()

	doc := newTestDocument()
	locks := scrolllock.NewManager(doc, nil)

	handle := locks.Acquire("modal")
	assert.True(t, doc.ScrollLocked())

	handle.Release()
	assert.False(t, doc.ScrollLocked())
}

func TestDocumentResize(t *testing.T) {
	t.Parallel()

	doc := newTestDocument()
	doc.SetSize(20, 2)
	assert.Len(t, strings.Split(doc.View(), "\n"), 2)
}
