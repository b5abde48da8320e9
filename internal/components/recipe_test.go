package components

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paint(hex string) []StyleFunc {
	return []StyleFunc{Raw(func(s lipgloss.Style) lipgloss.Style {
		return s.Background(lipgloss.Color(hex))
	})}
}

// probeRecipe paints the background in the first n layers only. Every layer
// is still present so the later unpainted ones must not erase the colour.
func probeRecipe(n int) Recipe[ButtonVariant] {
	layer := func(i int, hex string) []StyleFunc {
		if i < n {
			return paint(hex)
		}
		return nil
	}
	base := append([]StyleFunc{Bold(true)}, layer(0, "#000001")...)
	return Recipe[ButtonVariant]{
		Component: "probe",
		Base:      NewFragment("probe.base", base...),
		Variants:  NewAxis("probe", "variant", map[ButtonVariant][]StyleFunc{ButtonVariantPrimary: layer(1, "#000002")}),
		Sizes:     NewAxis("probe", "size", map[Size][]StyleFunc{SizeMedium: layer(2, "#000003")}),
		Widths:    NewAxis("probe", "width", map[WidthMode][]StyleFunc{WidthAuto: layer(3, "#000004")}),
	}
}

func TestResolveLayerOrder(t *testing.T) {
	spec, err := ButtonRecipe().Resolve(Props[ButtonVariant]{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"button.base",
		"button.variant.primary",
		"button.size.medium",
		"button.width.auto",
	}, spec.Names())

	spec, err = ButtonRecipe().Resolve(Props[ButtonVariant]{
		Variant:  ButtonVariantGhost,
		Size:     SizeLarge,
		Width:    WidthFull,
		Override: []StyleFunc{Bold(false)},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"button.base",
		"button.variant.ghost",
		"button.size.large",
		"button.width.full",
		"button.override",
	}, spec.Names())
}

func TestResolveLaterLayersWin(t *testing.T) {
	ctx := DefaultContext()
	tests := []struct {
		name     string
		painted  int
		override bool
		want     string
	}{
		{name: "base only", painted: 1, want: "#000001"},
		{name: "variant over base", painted: 2, want: "#000002"},
		{name: "size over variant", painted: 3, want: "#000003"},
		{name: "width over size", painted: 4, want: "#000004"},
		{name: "override over everything", painted: 4, override: true, want: "#000005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := Props[ButtonVariant]{}
			if tt.override {
				props.Override = paint("#000005")
			}
			spec, err := probeRecipe(tt.painted).Resolve(props)
			require.NoError(t, err)

			style := spec.Style(ctx)
			assert.Equal(t, lipgloss.Color(tt.want), style.GetBackground())
			assert.True(t, style.GetBold(), "properties set only by earlier layers survive")
		})
	}
}

func TestResolveIsPure(t *testing.T) {
	ctx := DefaultContext().WithSize(60, 20)
	props := Props[ButtonVariant]{Variant: ButtonVariantOutline, Size: SizeSmall, Width: WidthFull}

	first, err := ButtonRecipe().Resolve(props)
	require.NoError(t, err)
	second, err := ButtonRecipe().Resolve(props)
	require.NoError(t, err)

	assert.Equal(t, first.Names(), second.Names())
	assert.Equal(t, first.Render(ctx, "Go"), second.Render(ctx, "Go"))
}

func TestResolveRejectsUnknownAxisValues(t *testing.T) {
	tests := []struct {
		name      string
		resolve   func() error
		component string
		axis      string
		value     string
	}{
		{
			name: "button variant",
			resolve: func() error {
				_, err := ButtonRecipe().Resolve(Props[ButtonVariant]{Variant: ButtonVariant(99)})
				return err
			},
			component: "button", axis: "variant", value: "ButtonVariant(99)",
		},
		{
			name: "button size",
			resolve: func() error {
				_, err := ButtonRecipe().Resolve(Props[ButtonVariant]{Size: SizeFull})
				return err
			},
			component: "button", axis: "size", value: "full",
		},
		{
			name: "alert has no sizes",
			resolve: func() error {
				_, err := AlertRecipe().Resolve(Props[AlertVariant]{Size: SizeLarge})
				return err
			},
			component: "alert", axis: "size", value: "large",
		},
		{
			name: "modal width",
			resolve: func() error {
				_, err := ModalRecipe().Resolve(Props[ModalVariant]{Width: WidthMode(7)})
				return err
			},
			component: "modal", axis: "width", value: "WidthMode(7)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.resolve()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidStyleAxis))

			var axisErr *InvalidStyleAxisError
			require.True(t, errors.As(err, &axisErr))
			assert.Equal(t, tt.component, axisErr.Component)
			assert.Equal(t, tt.axis, axisErr.Axis)
			assert.Equal(t, tt.value, axisErr.Value)
		})
	}
}

func TestEveryDeclaredValueResolves(t *testing.T) {
	for _, v := range ButtonVariants() {
		for _, size := range []Size{SizeSmall, SizeMedium, SizeLarge} {
			_, err := ButtonRecipe().Resolve(Props[ButtonVariant]{Variant: v, Size: size})
			assert.NoError(t, err, "button %s/%s", v, size)
		}
	}
	for _, v := range AlertVariants() {
		_, err := AlertRecipe().Resolve(Props[AlertVariant]{Variant: v, Width: WidthFull})
		assert.NoError(t, err, "alert %s", v)
	}
	for _, v := range ModalVariants() {
		for _, size := range []Size{SizeSmall, SizeMedium, SizeLarge, SizeFull} {
			_, err := ModalRecipe().Resolve(Props[ModalVariant]{Variant: v, Size: size})
			assert.NoError(t, err, "modal %s/%s", v, size)
		}
	}
}

func TestLayersReturnsCopy(t *testing.T) {
	spec, err := AlertRecipe().Resolve(Props[AlertVariant]{})
	require.NoError(t, err)

	layers := spec.Layers()
	layers[0].Name = "mutated"
	assert.Equal(t, "alert.base", spec.Names()[0])
}

func TestParseVariants(t *testing.T) {
	v, err := ParseButtonVariant("tabActive")
	require.NoError(t, err)
	assert.Equal(t, ButtonVariantTabActive, v)

	v, err = ParseButtonVariant("")
	require.NoError(t, err)
	assert.Equal(t, ButtonVariantPrimary, v)

	_, err = ParseButtonVariant("neon")
	assert.ErrorIs(t, err, ErrInvalidStyleAxis)

	a, err := ParseAlertVariant("danger")
	require.NoError(t, err)
	assert.Equal(t, AlertVariantError, a)

	s, err := ParseSize("lg")
	require.NoError(t, err)
	assert.Equal(t, SizeLarge, s)

	w, err := ParseWidthMode("true")
	require.NoError(t, err)
	assert.Equal(t, WidthFull, w)

	m, err := ParseModalVariant("Warning")
	require.NoError(t, err)
	assert.Equal(t, ModalVariantWarning, m)

	assert.Equal(t, "ModalVariant(9)", ModalVariant(9).String())
}
