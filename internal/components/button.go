package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var buttonRecipe = Recipe[ButtonVariant]{
	Component: "button",
	Base: NewFragment("button.base",
		Typography(TypographyEmphasis),
		Align(lipgloss.Center),
	),
	Variants: NewAxis("button", "variant", map[ButtonVariant][]StyleFunc{
		ButtonVariantPrimary:   {Background(PalettePrimary)},
		ButtonVariantSecondary: {Background(PaletteSecondary)},
		ButtonVariantDanger:    {Background(PaletteDanger)},
		ButtonVariantSuccess:   {Background(PaletteSuccess)},
		ButtonVariantOutline: {
			Radius(RadiusMD),
			BorderColour(PaletteNeutral),
			Foreground(PaletteNeutral),
		},
		ButtonVariantGhost: {Foreground(PaletteNeutral)},
		ButtonVariantTab: {
			Radius(RadiusBase),
			BorderColour(PaletteNeutral),
			Foreground(PaletteNeutral),
			Bold(false),
		},
		ButtonVariantTabActive: {
			Radius(RadiusBase),
			BorderColour(PaletteNeutral),
			Background(PalettePrimary),
			Bold(true),
		},
	}),
	Sizes: NewAxis("button", "size", map[Size][]StyleFunc{
		SizeSmall:  {PaddingX(SpacingSM)},
		SizeMedium: {PaddingX(SpacingMD)},
		SizeLarge:  {PaddingX(Spacing2XL)},
	}),
	Widths: NewAxis("button", "width", map[WidthMode][]StyleFunc{
		WidthAuto: nil,
		WidthFull: {FullWidth(0)},
	}),
}

// ButtonRecipe returns the style recipe shared by all buttons.
func ButtonRecipe() Recipe[ButtonVariant] {
	return buttonRecipe
}

// ButtonOptions defines the configuration options for a button.
type ButtonOptions struct {
	Variant  ButtonVariant
	Size     Size
	Width    WidthMode
	Disabled bool
	OnClick  func()
}

// Button is a labelled, optionally clickable control.
type Button struct {
	label    string
	options  ButtonOptions
	override []StyleFunc
}

// NewButton creates a new button with the given label and options.
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{label: label, options: opts}
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.options.Variant = variant
	return b
}

// WithSize sets the button size.
func (b *Button) WithSize(size Size) *Button {
	b.options.Size = size
	return b
}

// WithFullWidth stretches the button across its parent.
func (b *Button) WithFullWidth(full bool) *Button {
	if full {
		b.options.Width = WidthFull
	} else {
		b.options.Width = WidthAuto
	}
	return b
}

// WithDisabled sets the button disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithOnClick sets the activation callback.
func (b *Button) WithOnClick(fn func()) *Button {
	b.options.OnClick = fn
	return b
}

// WithAppliers appends caller style overrides. They are applied last.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.override = append(b.override, appliers...)
	return b
}

// Label returns the button text.
func (b *Button) Label() string {
	return b.label
}

// Spec resolves the button's style layers.
func (b *Button) Spec() (StyleSpec, error) {
	return buttonRecipe.Resolve(Props[ButtonVariant]{
		Variant:  b.options.Variant,
		Size:     b.options.Size,
		Width:    b.options.Width,
		Override: b.override,
	})
}

// Render draws the button. A disabled button is dimmed and ignores
// activation.
func (b *Button) Render(ctx RenderContext) (*Node, error) {
	spec, err := b.Spec()
	if err != nil {
		return nil, err
	}

	style := spec.Style(ctx)
	if b.options.Disabled {
		style = style.Faint(true)
	}
	content := style.Render(b.label)

	node := &Node{
		Kind:    "button",
		Content: content,
		Bounds:  Rect{W: lipgloss.Width(content), H: lipgloss.Height(content)},
	}
	if !b.options.Disabled && b.options.OnClick != nil {
		node.onActivate = b.options.OnClick
	}
	return node, nil
}

// closeButton is the ghost "×" control used by dismissible components.
func closeButton(onClick func()) *Button {
	return NewButton(CloseGlyph, ButtonOptions{
		Variant: ButtonVariantGhost,
		Size:    SizeSmall,
		OnClick: onClick,
	}).WithAppliers(PaddingX(SpacingNone), Bold(false))
}

// CloseGlyph is the multiplication sign used by close controls.
const CloseGlyph = "×"

// ButtonGroup lays out buttons on one row.
type ButtonGroup struct {
	buttons []*Button
	spacing SpacingSize
}

// NewButtonGroup creates a new button group.
func NewButtonGroup(buttons ...*Button) *ButtonGroup {
	return &ButtonGroup{buttons: buttons, spacing: SpacingSM}
}

// WithSpacing sets the gap between buttons.
func (bg *ButtonGroup) WithSpacing(spacing SpacingSize) *ButtonGroup {
	bg.spacing = spacing
	return bg
}

// AddButton adds a button to the group.
func (bg *ButtonGroup) AddButton(button *Button) *ButtonGroup {
	bg.buttons = append(bg.buttons, button)
	return bg
}

// Render draws every button left to right. Child bounds are relative to
// the group.
func (bg *ButtonGroup) Render(ctx RenderContext) (*Node, error) {
	group := &Node{Kind: "button-group"}
	if len(bg.buttons) == 0 {
		return group, nil
	}

	gap := strings.Repeat(" ", MarginValue(ctx.Theme, bg.spacing))
	parts := make([]string, 0, len(bg.buttons)*2)
	x := 0
	for i, button := range bg.buttons {
		node, err := button.Render(ctx)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			parts = append(parts, gap)
			x += lipgloss.Width(gap)
		}
		node.Bounds.X = x
		x += node.Bounds.W
		parts = append(parts, node.Content)
		group.Children = append(group.Children, node)
	}

	group.Content = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	group.Bounds = Rect{W: lipgloss.Width(group.Content), H: lipgloss.Height(group.Content)}
	return group, nil
}
