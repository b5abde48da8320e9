package components

import (
	"github.com/charmbracelet/lipgloss"
)

var alertRecipe = Recipe[AlertVariant]{
	Component: "alert",
	Base: NewFragment("alert.base",
		Border(BorderVariantNormal),
		PaddingX(SpacingSM),
		MarginY(SpacingLG),
	),
	Variants: NewAxis("alert", "variant", map[AlertVariant][]StyleFunc{
		AlertVariantDefault: {Tone(func(t ToneSet) ColourSet { return t.Default })},
		AlertVariantInfo:    {Tone(func(t ToneSet) ColourSet { return t.Info })},
		AlertVariantSuccess: {Tone(func(t ToneSet) ColourSet { return t.Success })},
		AlertVariantWarning: {Tone(func(t ToneSet) ColourSet { return t.Warning })},
		AlertVariantError:   {Tone(func(t ToneSet) ColourSet { return t.Error })},
	}),
	Widths: NewAxis("alert", "width", map[WidthMode][]StyleFunc{
		WidthAuto: nil,
		WidthFull: {FullWidth(0)},
	}),
}

// AlertRecipe returns the style recipe shared by all alerts.
func AlertRecipe() Recipe[AlertVariant] {
	return alertRecipe
}

// AlertGlyph returns the icon for a variant. Unknown variants get the
// default bullet.
func AlertGlyph(variant AlertVariant) string {
	switch variant {
	case AlertVariantInfo:
		return "ℹ"
	case AlertVariantSuccess:
		return "✓"
	case AlertVariantWarning:
		return "⚠"
	case AlertVariantError:
		return "✕"
	default:
		return "•"
	}
}

// Alert is a message block. It holds configuration only; dismissal is
// reported to the close callback and handled by the owner.
type Alert struct {
	message  string
	variant  AlertVariant
	title    string
	onClose  func()
	showIcon bool
	width    WidthMode
	override []StyleFunc
}

// NewAlert creates a default-variant alert that shows its icon.
func NewAlert(message string) *Alert {
	return &Alert{message: message, showIcon: true}
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

// WithTitle adds a title line above the message.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithOnClose makes the alert dismissible. A nil callback removes the close
// control.
func (a *Alert) WithOnClose(fn func()) *Alert {
	a.onClose = fn
	return a
}

// WithShowIcon toggles the variant icon.
func (a *Alert) WithShowIcon(show bool) *Alert {
	a.showIcon = show
	return a
}

// WithFullWidth stretches the alert across its parent.
func (a *Alert) WithFullWidth(full bool) *Alert {
	if full {
		a.width = WidthFull
	} else {
		a.width = WidthAuto
	}
	return a
}

// WithAppliers appends caller style overrides. They are applied last.
func (a *Alert) WithAppliers(appliers ...StyleFunc) *Alert {
	a.override = append(a.override, appliers...)
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// Variant returns the alert variant.
func (a *Alert) Variant() AlertVariant {
	return a.variant
}

// Spec resolves the alert's style layers.
func (a *Alert) Spec() (StyleSpec, error) {
	return alertRecipe.Resolve(Props[AlertVariant]{
		Variant:  a.variant,
		Width:    a.width,
		Override: a.override,
	})
}

// Render draws the alert:
//
//	┌────────────────────────┐
//	│ ⚠ Title              × │
//	│   message              │
//	└────────────────────────┘
func (a *Alert) Render(ctx RenderContext) (*Node, error) {
	spec, err := a.Spec()
	if err != nil {
		return nil, err
	}
	style := spec.Style(ctx)

	root := &Node{Kind: "alert"}
	var columns []string

	if a.showIcon {
		icon := inline(style).PaddingRight(1).Render(AlertGlyph(a.variant))
		columns = append(columns, icon)
		root.Children = append(root.Children, &Node{Kind: "alert.icon", Content: icon})
	}

	content := &Node{Kind: "alert.content"}
	var lines []string
	if a.title != "" {
		title := inline(style).Bold(true).Render(a.title)
		lines = append(lines, title)
		content.Children = append(content.Children, &Node{Kind: "alert.title", Content: title})
	}
	body := a.message
	lines = append(lines, body)
	content.Children = append(content.Children, &Node{Kind: "alert.body", Content: body})
	content.Content = lipgloss.JoinVertical(lipgloss.Left, lines...)
	columns = append(columns, content.Content)
	root.Children = append(root.Children, content)

	if a.onClose != nil {
		closeNode, err := closeButton(a.onClose).WithAppliers(MarginX(SpacingXS)).Render(ctx)
		if err != nil {
			return nil, err
		}
		closeNode.Kind = "alert.close"
		closeNode.Bounds.X = style.GetMarginLeft() + style.GetBorderLeftSize() + style.GetPaddingLeft() +
			lipgloss.Width(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
		closeNode.Bounds.Y = style.GetMarginTop() + style.GetBorderTopSize() + style.GetPaddingTop()
		columns = append(columns, closeNode.Content)
		root.Children = append(root.Children, closeNode)
	}

	root.Content = style.Render(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	root.Bounds = Rect{W: lipgloss.Width(root.Content), H: lipgloss.Height(root.Content)}
	return root, nil
}

// inline carries a block's colours onto text rendered inside it so nested
// resets do not punch holes in the background.
func inline(block lipgloss.Style) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(block.GetForeground()).
		Background(block.GetBackground())
}

// Convenience constructors for the common variants.

// InfoAlert creates an info alert.
func InfoAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantInfo)
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantSuccess)
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantWarning)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}
