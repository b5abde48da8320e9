package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/glint/internal/scrolllock"
)

type lockTarget struct {
	calls []bool
}

func (l *lockTarget) SetScrollLocked(locked bool) {
	l.calls = append(l.calls, locked)
}

func newLocks() (*scrolllock.Manager, *lockTarget) {
	target := &lockTarget{}
	return scrolllock.NewManager(target, nil), target
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestModalClosedRendersNothing(t *testing.T) {
	locks, target := newLocks()
	modal := NewModal(locks, func() {})

	node, err := modal.Render(DefaultContext(), ModalProps{Title: "Hidden"})
	require.NoError(t, err)
	assert.Nil(t, node)
	assert.False(t, modal.Visible())
	assert.False(t, locks.Locked())
	assert.Empty(t, target.calls)
}

func TestModalLockLifecycle(t *testing.T) {
	locks, target := newLocks()
	modal := NewModal(locks, func() {})
	ctx := DefaultContext()
	props := ModalProps{IsOpen: true, Title: "Confirm", Body: "Sure?"}

	_, err := modal.Render(ctx, props)
	require.NoError(t, err)
	_, err = modal.Render(ctx, props)
	require.NoError(t, err)

	assert.True(t, locks.Locked())
	assert.Equal(t, 1, locks.Holders(), "re-rendering an open modal must not acquire again")

	props.IsOpen = false
	node, err := modal.Render(ctx, props)
	require.NoError(t, err)
	assert.Nil(t, node)
	assert.False(t, locks.Locked())
	assert.Equal(t, []bool{true, false}, target.calls)
}

func TestModalUnmountReleases(t *testing.T) {
	locks, _ := newLocks()
	modal := NewModal(locks, func() {})

	_, err := modal.Render(DefaultContext(), ModalProps{IsOpen: true})
	require.NoError(t, err)
	require.True(t, locks.Locked())

	modal.Unmount()
	assert.False(t, locks.Locked())
	assert.Nil(t, modal.Node())

	modal.Unmount()
	assert.Equal(t, 0, locks.Holders())
}

func TestStackedModalsShareLock(t *testing.T) {
	locks, target := newLocks()
	ctx := DefaultContext()
	first := NewModal(locks, func() {}).WithName("first")
	second := NewModal(locks, func() {}).WithName("second")

	_, err := first.Render(ctx, ModalProps{IsOpen: true})
	require.NoError(t, err)
	_, err = second.Render(ctx, ModalProps{IsOpen: true})
	require.NoError(t, err)
	assert.Equal(t, 2, locks.Holders())

	_, err = first.Render(ctx, ModalProps{IsOpen: false})
	require.NoError(t, err)
	assert.True(t, locks.Locked(), "the second modal still holds the lock")

	_, err = second.Render(ctx, ModalProps{IsOpen: false})
	require.NoError(t, err)
	assert.False(t, locks.Locked())
	assert.Equal(t, []bool{true, false}, target.calls)
}

func TestModalClickTargets(t *testing.T) {
	locks, _ := newLocks()
	closes := 0
	modal := NewModal(locks, func() { closes++ })

	node, err := modal.Render(DefaultContext(), ModalProps{IsOpen: true, Title: "Settings", Body: "Body"})
	require.NoError(t, err)

	content := node.Find("modal.content")
	require.NotNil(t, content)
	centreX := content.Bounds.X + content.Bounds.W/2
	centreY := content.Bounds.Y + content.Bounds.H/2

	assert.True(t, modal.HandleMouse(click(centreX, centreY)))
	assert.Equal(t, 0, closes, "clicks inside the dialog do not close it")

	assert.True(t, modal.HandleMouse(click(0, 0)))
	assert.Equal(t, 1, closes, "backdrop click closes")

	closeNode := node.Find("modal.close")
	require.NotNil(t, closeNode)
	assert.True(t, modal.HandleMouse(click(closeNode.Bounds.X, closeNode.Bounds.Y)))
	assert.Equal(t, 2, closes, "close control closes")
}

func TestModalCloseBoundsCoverGlyph(t *testing.T) {
	locks, _ := newLocks()
	modal := NewModal(locks, func() {})

	node, err := modal.Render(DefaultContext().WithSize(100, 30), ModalProps{IsOpen: true, Title: "Title", Size: SizeSmall})
	require.NoError(t, err)

	b := node.Find("modal.close").Bounds
	lines := strings.Split(node.Content, "\n")
	require.Less(t, b.Y, len(lines))
	assert.Equal(t, CloseGlyph, ansi.Strip(ansi.Cut(lines[b.Y], b.X, b.X+b.W)))
}

func TestModalCentred(t *testing.T) {
	locks, _ := newLocks()
	modal := NewModal(locks, func() {})

	node, err := modal.Render(DefaultContext().WithSize(100, 30), ModalProps{IsOpen: true, Body: "x", Size: SizeSmall})
	require.NoError(t, err)

	content := node.Find("modal.content")
	assert.Equal(t, Rect{W: 100, H: 30}, node.Bounds)
	assert.Equal(t, (100-content.Bounds.W)/2, content.Bounds.X)
	assert.Equal(t, (30-content.Bounds.H)/2, content.Bounds.Y)
}

func TestModalHeaderOnlyWithTitle(t *testing.T) {
	locks, _ := newLocks()
	modal := NewModal(locks, func() {})

	node, err := modal.Render(DefaultContext(), ModalProps{IsOpen: true, Body: "No title"})
	require.NoError(t, err)
	assert.Nil(t, node.Find("modal.header"))
	assert.Nil(t, node.Find("modal.close"))
	assert.NotContains(t, node.Text(), CloseGlyph)
}

func TestModalFooter(t *testing.T) {
	tests := []struct {
		name  string
		props ModalProps
		want  bool
	}{
		{name: "flag and content", props: ModalProps{ShowFooter: true, Footer: "OK"}, want: true},
		{name: "flag without content", props: ModalProps{ShowFooter: true}},
		{name: "content without flag", props: ModalProps{Footer: "OK"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locks, _ := newLocks()
			modal := NewModal(locks, func() {})
			tt.props.IsOpen = true
			tt.props.Body = "body"

			node, err := modal.Render(DefaultContext(), tt.props)
			require.NoError(t, err)
			footer := node.Find("modal.footer")
			if tt.want {
				require.NotNil(t, footer)
				assert.Contains(t, footer.Text(), "OK")
			} else {
				assert.Nil(t, footer)
			}
		})
	}
}

func TestModalEscapeCloses(t *testing.T) {
	locks, _ := newLocks()
	closes := 0
	modal := NewModal(locks, func() { closes++ })

	assert.False(t, modal.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}), "a hidden modal ignores keys")

	_, err := modal.Render(DefaultContext(), ModalProps{IsOpen: true})
	require.NoError(t, err)

	assert.False(t, modal.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}))
	assert.True(t, modal.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, 1, closes)
}

func TestModalSwallowsWheelOverOverlay(t *testing.T) {
	locks, _ := newLocks()
	modal := NewModal(locks, func() {})
	_, err := modal.Render(DefaultContext(), ModalProps{IsOpen: true})
	require.NoError(t, err)

	wheel := tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
	assert.True(t, modal.HandleMouse(wheel))
}

func TestModalRequiresOnClose(t *testing.T) {
	assert.Panics(t, func() { NewModal(nil, nil) })
}

func TestModalInvalidVariantDoesNotLock(t *testing.T) {
	locks, _ := newLocks()
	modal := NewModal(locks, func() {})

	node, err := modal.Render(DefaultContext(), ModalProps{IsOpen: true, Variant: ModalVariant(8)})
	assert.ErrorIs(t, err, ErrInvalidStyleAxis)
	assert.Nil(t, node)
	assert.False(t, locks.Locked())
}

func TestModalSizes(t *testing.T) {
	locks, _ := newLocks()
	ctx := DefaultContext().WithSize(120, 40)
	width := func(size Size) int {
		modal := NewModal(locks, func() {})
		defer modal.Unmount()
		node, err := modal.Render(ctx, ModalProps{IsOpen: true, Size: size})
		require.NoError(t, err)
		return node.Find("modal.content").Bounds.W
	}

	assert.Equal(t, 42, width(SizeSmall))
	assert.Equal(t, 62, width(SizeMedium))
	assert.Equal(t, 82, width(SizeLarge))
	assert.Equal(t, 116, width(SizeFull))
}

func TestModalFullSizeUsesFallbackCanvas(t *testing.T) {
	locks, _ := newLocks()
	modal := NewModal(locks, func() {})
	defer modal.Unmount()

	node, err := modal.Render(DefaultContext(), ModalProps{
		IsOpen:     true,
		Title:      "Delete project",
		Size:       SizeFull,
		ShowFooter: true,
		Footer:     "Cancel  OK",
	})
	require.NoError(t, err)

	assert.Equal(t, defaultCanvasWidth-4, node.Find("modal.content").Bounds.W)
	assert.Contains(t, node.Find("modal.title").Text(), "Delete project")

	footer := node.Find("modal.footer").Text()
	assert.NotContains(t, footer, "\n")
	assert.Contains(t, footer, "Cancel  OK")
}

func TestModalFailedRenderDropsPreviousFrame(t *testing.T) {
	locks, _ := newLocks()
	closed := 0
	modal := NewModal(locks, func() { closed++ })
	ctx := DefaultContext()

	_, err := modal.Render(ctx, ModalProps{IsOpen: true, Title: "Confirm"})
	require.NoError(t, err)
	require.True(t, locks.Locked())

	node, err := modal.Render(ctx, ModalProps{IsOpen: true, Title: "Confirm", Size: Size(9)})
	require.ErrorIs(t, err, ErrInvalidStyleAxis)
	assert.Nil(t, node)
	assert.Nil(t, modal.Node())
	assert.False(t, modal.Visible())
	assert.False(t, locks.Locked())

	assert.False(t, modal.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, modal.HandleMouse(click(0, 0)))
	assert.Zero(t, closed)
}

func TestModalWithoutManagerUsesDefault(t *testing.T) {
	before := scrolllock.Default().Holders()
	modal := NewModal(nil, func() {})

	_, err := modal.Render(DefaultContext(), ModalProps{IsOpen: true})
	require.NoError(t, err)
	assert.Equal(t, before+1, scrolllock.Default().Holders())

	modal.Unmount()
	assert.Equal(t, before, scrolllock.Default().Holders())
}
