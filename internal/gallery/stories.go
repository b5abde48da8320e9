package gallery

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/glint/internal/components"
	"github.com/alexisbeaulieu97/glint/internal/scrolllock"
)

const buttonDocs = `# Button

Buttons trigger an action. Style comes from the button recipe, layered as
base, variant, size, width and finally caller overrides.

| Prop | Values | Default |
|------|--------|---------|
| variant | primary, secondary, danger, success, outline, ghost, tab, tab-active | primary |
| size | small, medium, large | medium |
| width | auto, full | auto |
| disabled | true, false | false |
`

const alertDocs = `# Alert

Alerts show a short message in one of five tones. The variant picks the
glyph and colours:

| Variant | Glyph |
|---------|-------|
| default | • |
| info | ℹ |
| success | ✓ |
| warning | ⚠ |
| error | ✕ |

A close control (×) appears only when a close callback is supplied. The
alert keeps no state; the owner removes it.
`

const modalDocs = `# Modal

Modals sit over a dimmed backdrop. Visibility belongs to the owner, who
passes ` + "`IsOpen`" + ` on every render. While open the modal holds a scroll
lock so the page underneath stays put; the lock is released when the modal
closes or unmounts.

Clicking the backdrop, the × in the header or pressing Escape asks the owner
to close it. Clicks inside the dialog do not.
`

const tokenDocs = `# Design tokens

Static design values shared by every component. Spacing lengths carry both
the CSS length and the terminal cell count used for rendering.
`

func story(group, id, title, docs, summary string, render RenderFunc) Story {
	return Story{
		ID:     id,
		Group:  group,
		Title:  title,
		Docs:   fmt.Sprintf("%s\n## %s\n\n%s\n", docs, title, summary),
		Render: render,
	}
}

func nodeStory(build func(ctx components.RenderContext) (*components.Node, error)) RenderFunc {
	return func(ctx components.RenderContext) (string, error) {
		node, err := build(ctx)
		if err != nil {
			return "", err
		}
		return node.View(), nil
	}
}

func buttonStory(label string, opts components.ButtonOptions) RenderFunc {
	return nodeStory(func(ctx components.RenderContext) (*components.Node, error) {
		return components.NewButton(label, opts).Render(ctx)
	})
}

func buttonRow(buttons ...*components.Button) RenderFunc {
	return nodeStory(func(ctx components.RenderContext) (*components.Node, error) {
		return components.NewButtonGroup(buttons...).Render(ctx)
	})
}

func stack(renders ...RenderFunc) RenderFunc {
	return func(ctx components.RenderContext) (string, error) {
		parts := make([]string, 0, len(renders))
		for _, render := range renders {
			out, err := render(ctx)
			if err != nil {
				return "", err
			}
			parts = append(parts, out)
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...), nil
	}
}

func alertStory(build func() *components.Alert) RenderFunc {
	return nodeStory(func(ctx components.RenderContext) (*components.Node, error) {
		return build().Render(ctx)
	})
}

// modalStory renders an open modal on a private lock manager and unmounts
// it straight away so no lock outlives the render.
func modalStory(props components.ModalProps) RenderFunc {
	return func(ctx components.RenderContext) (string, error) {
		if ctx.ParentHeight <= 0 {
			ctx.ParentHeight = 16
		}
		modal := components.NewModal(scrolllock.NewManager(nil, nil), func() {})
		defer modal.Unmount()

		props.IsOpen = true
		node, err := modal.Render(ctx, props)
		if err != nil {
			return "", err
		}
		return node.View(), nil
	}
}

func tableStory(render func(components.RenderContext) string) RenderFunc {
	return func(ctx components.RenderContext) (string, error) {
		return render(ctx), nil
	}
}

func confirmFooter(ctx components.RenderContext) string {
	node, err := components.NewButtonGroup(
		components.NewButton("Cancel", components.ButtonOptions{Variant: components.ButtonVariantSecondary, Size: components.SizeSmall}),
		components.NewButton("Confirm", components.ButtonOptions{Size: components.SizeSmall}),
	).Render(ctx)
	if err != nil {
		return ""
	}
	return node.View()
}

// Builtin returns a registry holding every built-in story.
func Builtin() *Registry {
	r := NewRegistry()
	if err := r.Register(builtinStories()...); err != nil {
		panic(fmt.Sprintf("gallery: built-in stories: %v", err))
	}
	return r
}

func builtinStories() []Story {
	btn := func(label string, variant components.ButtonVariant) *components.Button {
		return components.NewButton(label, components.ButtonOptions{Variant: variant})
	}
	sized := func(label string, size components.Size) *components.Button {
		return components.NewButton(label, components.ButtonOptions{Size: size})
	}

	var stories []Story

	for _, v := range components.ButtonVariants() {
		title := fmt.Sprintf("%s button", v)
		stories = append(stories, story("Button", "button/"+v.String(), title, buttonDocs,
			fmt.Sprintf("The `%s` variant.", v),
			buttonStory(title, components.ButtonOptions{Variant: v})))
	}

	stories = append(stories,
		story("Button", "button/small", "Small button", buttonDocs, "The `small` size.",
			buttonStory("Small Button", components.ButtonOptions{Size: components.SizeSmall})),
		story("Button", "button/medium", "Medium button", buttonDocs, "The default size.",
			buttonStory("Medium Button", components.ButtonOptions{Size: components.SizeMedium})),
		story("Button", "button/large", "Large button", buttonDocs, "The `large` size.",
			buttonStory("Large Button", components.ButtonOptions{Size: components.SizeLarge})),
		story("Button", "button/disabled", "Disabled button", buttonDocs, "Disabled buttons are dimmed and ignore activation.",
			buttonStory("Disabled Button", components.ButtonOptions{Disabled: true})),
		story("Button", "button/full-width", "Full width button", buttonDocs, "Stretches across the available width.",
			buttonStory("Full Width Button", components.ButtonOptions{Width: components.WidthFull})),
		story("Button", "button/all-variants", "All variants", buttonDocs, "Every variant side by side.",
			stack(
				buttonRow(
					btn("Primary", components.ButtonVariantPrimary),
					btn("Secondary", components.ButtonVariantSecondary),
					btn("Danger", components.ButtonVariantDanger),
					btn("Success", components.ButtonVariantSuccess),
					btn("Outline", components.ButtonVariantOutline),
					btn("Ghost", components.ButtonVariantGhost),
				),
				buttonRow(
					btn("Tab", components.ButtonVariantTab),
					btn("Active Tab", components.ButtonVariantTabActive),
				),
			)),
		story("Button", "button/all-sizes", "All sizes", buttonDocs, "Small, medium and large side by side.",
			buttonRow(
				sized("Small", components.SizeSmall),
				sized("Medium", components.SizeMedium),
				sized("Large", components.SizeLarge),
			)),
	)

	var alerts []RenderFunc
	for _, v := range components.AlertVariants() {
		v := v
		alerts = append(alerts, alertStory(func() *components.Alert {
			return components.NewAlert(fmt.Sprintf("This is a %s alert.", v)).WithVariant(v)
		}))
	}

	stories = append(stories,
		story("Alert", "alert/variants", "Alert variants", alertDocs, "One alert per variant.", stack(alerts...)),
		story("Alert", "alert/with-title", "Alert with title", alertDocs, "A title line above the message.",
			alertStory(func() *components.Alert {
				return components.WarningAlert("Your session expires in five minutes.").WithTitle("Heads up")
			})),
		story("Alert", "alert/without-icon", "Alert without icon", alertDocs, "The icon is suppressed regardless of variant.",
			alertStory(func() *components.Alert {
				return components.InfoAlert("No glyph here.").WithShowIcon(false)
			})),
		story("Alert", "alert/dismissible", "Dismissible alert", alertDocs, "Supplying a close callback adds the × control.",
			alertStory(func() *components.Alert {
				return components.SuccessAlert("Changes saved.").WithOnClose(func() {})
			})),
		story("Alert", "alert/full-width", "Full width alert", alertDocs, "Stretches across the available width.",
			alertStory(func() *components.Alert {
				return components.ErrorAlert("Upload failed.").WithFullWidth(true)
			})),
	)

	stories = append(stories,
		story("Modal", "modal/default", "Default modal", modalDocs, "A titled modal with a body.",
			modalStory(components.ModalProps{Title: "Modal Title", Body: "Modal content goes here."})),
		story("Modal", "modal/without-title", "Modal without title", modalDocs, "Without a title there is no header and no × control.",
			modalStory(components.ModalProps{Body: "Press Escape or click outside to close."})),
		story("Modal", "modal/danger", "Danger modal", modalDocs, "The danger variant tints the frame.",
			modalStory(components.ModalProps{Title: "Delete project", Body: "This cannot be undone.", Variant: components.ModalVariantDanger})),
		story("Modal", "modal/small", "Small modal", modalDocs, "The small size.",
			modalStory(components.ModalProps{Title: "Small", Body: "Compact dialog.", Size: components.SizeSmall})),
		story("Modal", "modal/large", "Large modal", modalDocs, "The large size.",
			modalStory(components.ModalProps{Title: "Large", Body: "Roomy dialog.", Size: components.SizeLarge})),
		Story{
			ID:    "modal/with-footer",
			Group: "Modal",
			Title: "Modal with footer",
			Docs:  fmt.Sprintf("%s\n## Modal with footer\n\nThe footer shows only when enabled and non-empty.\n", modalDocs),
			Render: func(ctx components.RenderContext) (string, error) {
				return modalStory(components.ModalProps{
					Title:      "Confirm",
					Body:       "Apply these changes?",
					ShowFooter: true,
					Footer:     confirmFooter(ctx),
				})(ctx)
			},
		},
	)

	stories = append(stories,
		story("Tokens", "tokens/colors", "Colours", tokenDocs, "Every colour family and shade.", tableStory(ColourTable)),
		story("Tokens", "tokens/tones", "Alert tones", tokenDocs, "Background, border and text per alert tone.", tableStory(ToneTable)),
		story("Tokens", "tokens/spacing", "Spacing", tokenDocs, "The spacing scale.", tableStory(SpacingTable)),
		story("Tokens", "tokens/typography", "Typography", tokenDocs, "Font sizes and weights.", tableStory(TypographyTable)),
		story("Tokens", "tokens/radius", "Radius", tokenDocs, "Radius tokens and the corner drawn for each.", tableStory(RadiusTable)),
		story("Tokens", "tokens/vars", "Design variables", tokenDocs, "The exported variable set.", tableStory(VarsTable)),
	)

	return stories
}
