package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/glint/internal/scrolllock"
)

var modalRecipe = Recipe[ModalVariant]{
	Component: "modal",
	Base: NewFragment("modal.base",
		Radius(RadiusMD),
		Background(PaletteSurface),
		PaddingX(SpacingLG),
	),
	Variants: NewAxis("modal", "variant", map[ModalVariant][]StyleFunc{
		ModalVariantDefault: {BorderColour(PaletteOverlay)},
		ModalVariantDanger:  {BorderColour(PaletteDanger)},
		ModalVariantWarning: {BorderColour(PaletteWarning)},
		ModalVariantInfo:    {BorderColour(PaletteInfo)},
	}),
	Sizes: NewAxis("modal", "size", map[Size][]StyleFunc{
		SizeSmall:  {Width(40)},
		SizeMedium: {Width(60)},
		SizeLarge:  {Width(80)},
		SizeFull:   {FullWidth(4)},
	}),
}

// ModalRecipe returns the style recipe of the modal frame.
func ModalRecipe() Recipe[ModalVariant] {
	return modalRecipe
}

// ScrollLocker hands out scroll lock holds. *scrolllock.Manager satisfies it.
type ScrollLocker interface {
	Acquire(owner string) *scrolllock.Handle
}

// ModalProps is everything the owner controls about a modal.
type ModalProps struct {
	IsOpen     bool
	Title      string
	Body       string
	Size       Size
	Variant    ModalVariant
	ShowFooter bool
	Footer     string
	Override   []StyleFunc
}

// Modal is an overlay dialog. Whether it is shown is decided by the owner
// through ModalProps.IsOpen on every render; the modal only tracks the
// scroll lock it holds while shown.
type Modal struct {
	name    string
	locks   ScrollLocker
	onClose func()
	handle  *scrolllock.Handle
	node    *Node
}

// NewModal creates a modal that reports close requests to onClose. A nil
// locks uses scrolllock.Default(), which only counts holders until a target
// is attached with SetTarget. onClose is required.
func NewModal(locks ScrollLocker, onClose func()) *Modal {
	if onClose == nil {
		panic("components: NewModal requires an onClose callback")
	}
	if locks == nil {
		locks = scrolllock.Default()
	}
	return &Modal{name: "modal", locks: locks, onClose: onClose}
}

// WithName labels the modal's scroll lock holds.
func (m *Modal) WithName(name string) *Modal {
	m.name = name
	return m
}

// Visible reports whether the last render showed the modal.
func (m *Modal) Visible() bool {
	return m.handle != nil
}

// Node returns the last rendered tree, or nil while hidden.
func (m *Modal) Node() *Node {
	return m.node
}

// Render applies the visibility transition and draws the modal over the
// whole canvas. A closed modal renders nothing and returns a nil node. A
// failed render hides the modal and releases its scroll lock.
func (m *Modal) Render(ctx RenderContext, props ModalProps) (*Node, error) {
	if !props.IsOpen {
		m.Unmount()
		return nil, nil
	}

	spec, err := modalRecipe.Resolve(Props[ModalVariant]{
		Variant:  props.Variant,
		Size:     props.Size,
		Override: props.Override,
	})
	if err != nil {
		m.Unmount()
		return nil, err
	}

	// Sizes and layout must agree on the canvas, including the fallback.
	ctx = ctx.WithSize(ctx.canvas())
	node, err := m.layout(ctx, spec.Style(ctx), props)
	if err != nil {
		m.Unmount()
		return nil, err
	}

	m.setVisible(true)
	m.node = node
	return node, nil
}

// Unmount releases the scroll lock if the modal is still shown.
func (m *Modal) Unmount() {
	m.setVisible(false)
	m.node = nil
}

// HandleMouse routes a mouse event through the rendered tree. A left click
// on the backdrop or the close control requests closing; a click inside the
// dialog stops there. It reports whether the modal consumed the event.
func (m *Modal) HandleMouse(msg tea.MouseMsg) bool {
	if m.node == nil {
		return false
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m.node.Bounds.Contains(msg.X, msg.Y)
	}
	hit := m.node.HitTest(msg.X, msg.Y)
	if hit == nil {
		return false
	}
	hit.Activate()
	return true
}

// HandleKey requests closing on Escape.
func (m *Modal) HandleKey(msg tea.KeyMsg) bool {
	if m.node == nil || msg.Type != tea.KeyEsc {
		return false
	}
	m.onClose()
	return true
}

func (m *Modal) setVisible(open bool) {
	switch {
	case open && m.handle == nil:
		m.handle = m.locks.Acquire(m.name)
	case !open && m.handle != nil:
		m.handle.Release()
		m.handle = nil
	}
}

func (m *Modal) layout(ctx RenderContext, box lipgloss.Style, props ModalProps) (*Node, error) {
	width, height := ctx.canvas()

	innerW := box.GetWidth() - box.GetHorizontalPadding()
	if innerW < 1 {
		innerW = 1
	}
	text := inline(box)

	content := &Node{Kind: "modal.content"}
	var sections []string

	var closeNode *Node
	if props.Title != "" {
		closeBtn, err := closeButton(m.onClose).Render(ctx)
		if err != nil {
			return nil, err
		}
		closeNode = closeBtn
		closeNode.Kind = "modal.close"

		maxTitle := innerW - lipgloss.Width(closeNode.Content) - 1
		if maxTitle < 1 {
			maxTitle = 1
		}
		title := text.Bold(true).Render(ansi.Truncate(props.Title, maxTitle, "…"))
		gapW := innerW - lipgloss.Width(title) - lipgloss.Width(closeNode.Content)
		if gapW < 1 {
			gapW = 1
		}
		header := lipgloss.JoinHorizontal(lipgloss.Top, title, text.Render(strings.Repeat(" ", gapW)), closeNode.Content)

		content.Children = append(content.Children, &Node{
			Kind:     "modal.header",
			Content:  header,
			Children: []*Node{{Kind: "modal.title", Content: title}, closeNode},
		})
		sections = append(sections, header, "")
	}

	sections = append(sections, props.Body)
	content.Children = append(content.Children, &Node{Kind: "modal.body", Content: props.Body})

	if props.ShowFooter && strings.TrimSpace(props.Footer) != "" {
		rule := text.Foreground(ctx.Theme.Palette.Overlay.Muted).Render(strings.Repeat("─", innerW))
		footer := text.Width(innerW).Align(lipgloss.Right).Render(props.Footer)
		sections = append(sections, "", rule, footer)
		content.Children = append(content.Children, &Node{Kind: "modal.footer", Content: footer})
	}

	content.Content = box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))

	lines := strings.Split(content.Content, "\n")
	boxW := lipgloss.Width(content.Content)
	boxH := len(lines)
	x := max((width-boxW)/2, 0)
	y := max((height-boxH)/2, 0)
	content.Bounds = Rect{X: x, Y: y, W: boxW, H: boxH}

	if closeNode != nil {
		headerRow := box.GetBorderTopSize() + box.GetPaddingTop()
		if headerRow < len(lines) {
			plain := ansi.Strip(lines[headerRow])
			if idx := strings.LastIndex(plain, CloseGlyph); idx >= 0 {
				col := ansi.StringWidth(plain[:idx])
				closeNode.Bounds = Rect{X: x + col, Y: y + headerRow, W: lipgloss.Width(CloseGlyph), H: 1}
			}
		}
	}

	shade := lipgloss.NewStyle().Background(ctx.Theme.Palette.Overlay.Base)
	fill := func(n int) string {
		if n <= 0 {
			return ""
		}
		return shade.Render(strings.Repeat(" ", n))
	}

	rows := max(height, y+boxH)
	out := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		if row >= y && row < y+boxH {
			line := lines[row-y]
			out = append(out, fill(x)+line+fill(width-x-lipgloss.Width(line)))
			continue
		}
		out = append(out, fill(width))
	}

	return &Node{
		Kind:       "modal.overlay",
		Content:    strings.Join(out, "\n"),
		Bounds:     Rect{W: max(width, boxW), H: rows},
		Children:   []*Node{content},
		onActivate: m.onClose,
	}, nil
}
