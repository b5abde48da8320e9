// Package components provides theme-aware terminal components built on lipgloss.
//
// # Architecture
//
// Rendering is split into three layers:
//
//  1. Theme Layer - Immutable projections of the design tokens (colours, spacing, radii, typography)
//  2. Recipe Layer - Named fragments per variant, size and width that resolve into a StyleSpec
//  3. Component Layer - Button, Alert and Modal, which render into a Node tree
//
// # Style Resolution
//
// Every component kind owns a Recipe. Resolving props layers fragments in a
// fixed order, later layers winning on conflicting properties:
//
//	base → variant → size → width → override
//
//	spec, err := ButtonRecipe().Resolve(Props[ButtonVariant]{
//		Variant: ButtonVariantDanger,
//		Size:    SizeLarge,
//	})
//	style := spec.Style(ctx)
//
// A value the recipe does not define fails with an *InvalidStyleAxisError
// matching ErrInvalidStyleAxis. Zero values select the defaults (primary,
// medium, auto width).
//
// # Themes
//
// Themes travel through RenderContext; there is no global theme:
//
//	ctx := DefaultContext().WithTheme(DarkTheme()).WithSize(120, 40)
//	node, err := NewButton("Save", ButtonOptions{}).Render(ctx)
//
// # Nodes
//
// Components render to *Node values. Content holds the styled text, Bounds
// the cells it covers, and interactive nodes run their callback on
// Activate. HitTest maps a mouse position to the topmost node under it.
//
// # Modals
//
// A Modal holds a scroll lock from the ScrollLocker while it is open and
// releases it when it closes or unmounts. The owner decides visibility by
// passing ModalProps.IsOpen on every render.
package components
