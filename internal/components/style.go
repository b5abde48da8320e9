package components

import (
	"github.com/charmbracelet/lipgloss"
)

// StyleFunc applies one styling rule to a lipgloss.Style using data from the
// render context. Style functions are the unit every fragment is built from.
type StyleFunc func(lipgloss.Style, RenderContext) lipgloss.Style

// Fragment is a named bundle of style rules for one axis value.
type Fragment struct {
	Name  string
	Funcs []StyleFunc
}

// NewFragment creates a fragment from style functions.
func NewFragment(name string, funcs ...StyleFunc) Fragment {
	return Fragment{Name: name, Funcs: funcs}
}

// Apply folds the fragment's rules over base in order.
func (f Fragment) Apply(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
	for _, fn := range f.Funcs {
		if fn == nil {
			continue
		}
		base = fn(base, ctx)
	}
	return base
}

// StyleSpec is an ordered list of fragments. Later fragments override
// earlier ones on any property both of them set.
type StyleSpec struct {
	layers []Fragment
}

// Layers returns a copy of the fragments in application order.
func (s StyleSpec) Layers() []Fragment {
	out := make([]Fragment, len(s.layers))
	copy(out, s.layers)
	return out
}

// Names returns the fragment names in application order.
func (s StyleSpec) Names() []string {
	names := make([]string, len(s.layers))
	for i, layer := range s.layers {
		names[i] = layer.Name
	}
	return names
}

// Style merges every fragment left to right into a single style.
func (s StyleSpec) Style(ctx RenderContext) lipgloss.Style {
	style := lipgloss.NewStyle()
	for _, layer := range s.layers {
		style = layer.Apply(style, ctx)
	}
	return style
}

// Render styles content with the merged style.
func (s StyleSpec) Render(ctx RenderContext, content string) string {
	return s.Style(ctx).Render(content)
}

// Fluent modifier functions

// Background applies a semantic background colour and the matching
// foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		cs := slot(ctx.Theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return base.Foreground(slot(ctx.Theme.Palette).Base)
	}
}

// BorderColour tints the border with a slot's muted colour.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return base.BorderForeground(slot(ctx.Theme.Palette).Muted)
	}
}

// Tone applies a message tone: background, text and border colour.
func Tone(pick func(ToneSet) ColourSet) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		cs := pick(ctx.Theme.Tones)
		return base.Background(cs.Base).Foreground(cs.OnBase).BorderForeground(cs.Muted)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return base.Border(BorderForVariant(ctx.Theme, variant))
	}
}

// Radius applies the border shape for a radius token.
func Radius(radius RadiusSize) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return base.Border(BorderForRadius(ctx.Theme, radius))
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return base.Padding(PaddingValue(ctx.Theme, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		value := PaddingValue(ctx.Theme, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// PaddingY uses half the horizontal scale since a cell is about twice as
// tall as it is wide.
func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		value := PaddingValue(ctx.Theme, size) / 2
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return base.Margin(MarginValue(ctx.Theme, size))
	}
}

func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		value := MarginValue(ctx.Theme, size)
		return base.MarginLeft(value).MarginRight(value)
	}
}

func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		value := MarginValue(ctx.Theme, size) / 2
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography layers a typography preset under the current style.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return base.Inherit(TypographyStyle(ctx.Theme, variant))
	}
}

// Bold toggles bold text.
func Bold(on bool) StyleFunc {
	return func(base lipgloss.Style, _ RenderContext) lipgloss.Style {
		return base.Bold(on)
	}
}

// Align sets horizontal alignment.
func Align(pos lipgloss.Position) StyleFunc {
	return func(base lipgloss.Style, _ RenderContext) lipgloss.Style {
		return base.AlignHorizontal(pos)
	}
}

// Width fixes the block width, capped to the parent width when known.
func Width(cells int) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		w := cells
		if ctx.ParentWidth > 0 {
			if limit := ctx.ParentWidth - base.GetHorizontalBorderSize() - base.GetHorizontalMargins(); w > limit {
				w = limit
			}
		}
		return base.Width(w)
	}
}

// FullWidth stretches the block across the parent width. Without a known
// parent width it leaves the style unchanged.
func FullWidth(inset int) StyleFunc {
	return func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		if ctx.ParentWidth <= 0 {
			return base
		}
		w := ctx.ParentWidth - inset - base.GetHorizontalBorderSize() - base.GetHorizontalMargins()
		if w < 1 {
			w = 1
		}
		return base.Width(w)
	}
}

// Raw adapts a plain style transformation that ignores the context.
func Raw(fn func(lipgloss.Style) lipgloss.Style) StyleFunc {
	return func(base lipgloss.Style, _ RenderContext) lipgloss.Style {
		return fn(base)
	}
}
