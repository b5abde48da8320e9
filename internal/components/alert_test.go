package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertErrorVariant(t *testing.T) {
	alert := NewAlert("Disk full").WithVariant(AlertVariantError)

	spec, err := alert.Spec()
	require.NoError(t, err)
	assert.Contains(t, spec.Names(), "alert.variant.error")

	style := spec.Style(DefaultContext())
	assert.Equal(t, DefaultTheme().Tones.Error.Base, style.GetBackground())

	node, err := alert.Render(DefaultContext())
	require.NoError(t, err)
	icon := node.Find("alert.icon")
	require.NotNil(t, icon)
	assert.Contains(t, icon.Text(), "✕")
	assert.Contains(t, node.Text(), "Disk full")
}

func TestAlertGlyphs(t *testing.T) {
	assert.Equal(t, "ℹ", AlertGlyph(AlertVariantInfo))
	assert.Equal(t, "✓", AlertGlyph(AlertVariantSuccess))
	assert.Equal(t, "⚠", AlertGlyph(AlertVariantWarning))
	assert.Equal(t, "✕", AlertGlyph(AlertVariantError))
	assert.Equal(t, "•", AlertGlyph(AlertVariantDefault))
	assert.Equal(t, "•", AlertGlyph(AlertVariant(12)))
}

func TestAlertWithoutIcon(t *testing.T) {
	node, err := WarningAlert("Careful").WithShowIcon(false).Render(DefaultContext())
	require.NoError(t, err)

	assert.Nil(t, node.Find("alert.icon"))
	assert.NotContains(t, node.Text(), "⚠")
	assert.Contains(t, node.Text(), "Careful")
}

func TestAlertCloseInvokesCallbackOnce(t *testing.T) {
	calls := 0
	node, err := InfoAlert("Saved").WithOnClose(func() { calls++ }).Render(DefaultContext())
	require.NoError(t, err)

	closeNode := node.Find("alert.close")
	require.NotNil(t, closeNode)
	assert.Contains(t, closeNode.Text(), CloseGlyph)

	hit := node.HitTest(closeNode.Bounds.X, closeNode.Bounds.Y)
	require.Same(t, closeNode, hit)
	assert.True(t, hit.Activate())
	assert.Equal(t, 1, calls)
}

func TestAlertWithoutCallbackHasNoClose(t *testing.T) {
	node, err := SuccessAlert("Done").Render(DefaultContext())
	require.NoError(t, err)

	assert.Nil(t, node.Find("alert.close"))
	assert.NotContains(t, node.Text(), CloseGlyph)
}

func TestAlertTitle(t *testing.T) {
	node, err := NewAlert("Body text").WithTitle("Heads up").Render(DefaultContext())
	require.NoError(t, err)

	title := node.Find("alert.title")
	require.NotNil(t, title)
	assert.Equal(t, "Heads up", title.Text())
	assert.NotNil(t, node.Find("alert.body"))
}

func TestAlertFullWidth(t *testing.T) {
	ctx := DefaultContext().WithSize(60, 0)

	node, err := NewAlert("Stretch").WithFullWidth(true).Render(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60, lipgloss.Width(node.Content))

	node, err = NewAlert("Stretch").Render(ctx)
	require.NoError(t, err)
	assert.Less(t, lipgloss.Width(node.Content), 60)
}

func TestAlertUnknownVariant(t *testing.T) {
	node, err := NewAlert("x").WithVariant(AlertVariant(42)).Render(DefaultContext())
	assert.ErrorIs(t, err, ErrInvalidStyleAxis)
	assert.Nil(t, node)
}

func TestAlertOverrideAppliedLast(t *testing.T) {
	alert := ErrorAlert("x").WithAppliers(Background(PalettePrimary))

	spec, err := alert.Spec()
	require.NoError(t, err)
	assert.Equal(t, "alert.override", spec.Names()[len(spec.Names())-1])
	assert.Equal(t, DefaultTheme().Palette.Primary.Base, spec.Style(DefaultContext()).GetBackground())
}
