package components

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/glint/internal/tokens"
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingNone SpacingSize = iota
	SpacingXS
	SpacingSM
	SpacingMD
	SpacingLG
	SpacingXL
	Spacing2XL
	Spacing3XL
	Spacing4XL
	Spacing5XL
)

// SpacingSizeCount is the number of entries in a spacing table.
const SpacingSizeCount = int(Spacing5XL) + 1

var spacingTokenNames = [SpacingSizeCount]string{"", "xs", "sm", "md", "lg", "xl", "2xl", "3xl", "4xl", "5xl"}

// SpacingTable maps each spacing size to a cell count.
type SpacingTable [SpacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  SpacingTable
	Padding SpacingTable
}

// RadiusSize enumerates the border radius tokens.
type RadiusSize int

const (
	RadiusNone RadiusSize = iota
	RadiusSM
	RadiusBase
	RadiusMD
	RadiusLG
	RadiusXL
	RadiusFull
)

const radiusSizeCount = int(RadiusFull) + 1

// RadiusTable maps each radius token to the border shape that best
// approximates it on a character grid.
type RadiusTable [radiusSizeCount]lipgloss.Border

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyBase TypographyVariant = iota
	TypographyTitle
	TypographySubtitle
	TypographyBody
	TypographyCode
	TypographyEmphasis
	TypographyMuted
)

// BorderVariant selects a border line style.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// ColourSet represents a semantic color set:
//
//   - Base: the background or brand color
//   - OnBase: text color that contrasts with Base
//   - Muted: a subdued variant used for borders and accents
//   - Contrast: an accent that stands out against Base
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
	Overlay   ColourSet
}

// ToneSet holds the message tones used by alerts. Base is the background,
// OnBase the text and Muted the border.
type ToneSet struct {
	Default ColourSet
	Info    ColourSet
	Success ColourSet
	Warning ColourSet
	Error   ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// Theme is an immutable projection of the design tokens onto terminal
// styles. Modifying a copy never affects other holders.
type Theme struct {
	Name       string
	Palette    Palette
	Tones      ToneSet
	Borders    BorderSet
	Radii      RadiusTable
	Spacing    SpacingConfig
	Typography TypographyScale
}

// Normalize returns a new theme with zero-valued tables filled in.
func (t Theme) Normalize() Theme {
	if spacingTableIsZero(t.Spacing.Padding) {
		t.Spacing.Padding = DefaultSpacingTable()
	}
	if spacingTableIsZero(t.Spacing.Margin) {
		t.Spacing.Margin = DefaultSpacingTable()
	}
	if radiusTableIsZero(t.Radii) {
		t.Radii = defaultRadiusTable()
	}
	return t
}

func spacingTableIsZero(table SpacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func radiusTableIsZero(table RadiusTable) bool {
	for _, border := range table {
		if border != (lipgloss.Border{}) {
			return false
		}
	}
	return true
}

// DefaultSpacingTable derives the cell spacing table from the spacing tokens.
func DefaultSpacingTable() SpacingTable {
	var table SpacingTable
	for i, name := range spacingTokenNames {
		if name == "" {
			continue
		}
		cells, _ := tokens.SpacingCells(name)
		table[i] = cells
	}
	return table
}

// Square corners for "none", rounded corners for every other radius.
func defaultRadiusTable() RadiusTable {
	var table RadiusTable
	table[RadiusNone] = lipgloss.NormalBorder()
	for i := int(RadiusSM); i < radiusSizeCount; i++ {
		table[i] = lipgloss.RoundedBorder()
	}
	return table
}

func hex(family tokens.Family, shade tokens.Shade) string {
	value, _ := tokens.Color(family, shade)
	return value
}

func toneColours(name tokens.ToneName) ColourSet {
	tone, _ := tokens.AlertTone(name)
	return ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: tone.Background, Dark: tone.Text},
		OnBase:   lipgloss.AdaptiveColor{Light: tone.Text, Dark: tone.Background},
		Muted:    lipgloss.AdaptiveColor{Light: tone.Border, Dark: tone.Border},
		Contrast: lipgloss.AdaptiveColor{Light: tone.Border, Dark: tone.Border},
	}
}

// DefaultTheme returns the theme built from the design tokens.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac(hex(tokens.FamilyPrimary, tokens.Shade500), hex(tokens.FamilyPrimary, tokens.Shade500)),
			OnBase:   ac(tokens.White, tokens.White),
			Muted:    ac(hex(tokens.FamilyPrimary, tokens.Shade600), hex(tokens.FamilyPrimary, tokens.Shade900)),
			Contrast: ac(hex(tokens.FamilyPrimary, tokens.Shade50), hex(tokens.FamilyPrimary, tokens.Shade100)),
		},
		Secondary: ColourSet{
			Base:     ac(hex(tokens.FamilySecondary, tokens.Shade100), hex(tokens.FamilySecondary, tokens.Shade700)),
			OnBase:   ac(hex(tokens.FamilySecondary, tokens.Shade600), hex(tokens.FamilySecondary, tokens.Shade100)),
			Muted:    ac(hex(tokens.FamilySecondary, tokens.Shade200), hex(tokens.FamilySecondary, tokens.Shade800)),
			Contrast: ac(hex(tokens.FamilySecondary, tokens.Shade900), hex(tokens.FamilySecondary, tokens.Shade50)),
		},
		Surface: ColourSet{
			Base:     ac(tokens.White, hex(tokens.FamilySecondary, tokens.Shade900)),
			OnBase:   ac(tokens.ModalText, hex(tokens.FamilySecondary, tokens.Shade100)),
			Muted:    ac(hex(tokens.FamilySecondary, tokens.Shade50), hex(tokens.FamilySecondary, tokens.Shade800)),
			Contrast: ac(hex(tokens.FamilyPrimary, tokens.Shade500), hex(tokens.FamilyPrimary, tokens.Shade100)),
		},
		Success: ColourSet{
			Base:     ac(hex(tokens.FamilySuccess, tokens.Shade600), hex(tokens.FamilySuccess, tokens.Shade500)),
			OnBase:   ac(tokens.White, tokens.White),
			Muted:    ac(hex(tokens.FamilySuccess, tokens.Shade700), hex(tokens.FamilySuccess, tokens.Shade700)),
			Contrast: ac(hex(tokens.FamilySuccess, tokens.Shade50), hex(tokens.FamilySuccess, tokens.Shade100)),
		},
		Warning: ColourSet{
			Base:     ac(hex(tokens.FamilyWarning, tokens.Shade500), hex(tokens.FamilyWarning, tokens.Shade500)),
			OnBase:   ac(tokens.Black, tokens.Black),
			Muted:    ac(hex(tokens.FamilyWarning, tokens.Shade600), hex(tokens.FamilyWarning, tokens.Shade600)),
			Contrast: ac(hex(tokens.FamilyWarning, tokens.Shade50), hex(tokens.FamilyWarning, tokens.Shade100)),
		},
		Danger: ColourSet{
			Base:     ac(hex(tokens.FamilyDanger, tokens.Shade500), hex(tokens.FamilyDanger, tokens.Shade500)),
			OnBase:   ac(tokens.White, tokens.White),
			Muted:    ac(hex(tokens.FamilyDanger, tokens.Shade700), hex(tokens.FamilyDanger, tokens.Shade700)),
			Contrast: ac(hex(tokens.FamilyDanger, tokens.Shade50), hex(tokens.FamilyDanger, tokens.Shade100)),
		},
		Info: ColourSet{
			Base:     ac(hex(tokens.FamilyInfo, tokens.Shade500), hex(tokens.FamilyInfo, tokens.Shade500)),
			OnBase:   ac(tokens.White, tokens.White),
			Muted:    ac(hex(tokens.FamilyInfo, tokens.Shade600), hex(tokens.FamilyInfo, tokens.Shade600)),
			Contrast: ac(hex(tokens.FamilyInfo, tokens.Shade50), hex(tokens.FamilyInfo, tokens.Shade100)),
		},
		Neutral: ColourSet{
			Base:     ac(hex(tokens.FamilySecondary, tokens.Shade700), hex(tokens.FamilySecondary, tokens.Shade300)),
			OnBase:   ac(tokens.White, tokens.Black),
			Muted:    ac(hex(tokens.FamilySecondary, tokens.Shade300), hex(tokens.FamilySecondary, tokens.Shade600)),
			Contrast: ac(hex(tokens.FamilySecondary, tokens.Shade900), hex(tokens.FamilySecondary, tokens.Shade50)),
		},
		Overlay: ColourSet{
			Base:     ac(tokens.ModalOverlay, tokens.ModalOverlay),
			OnBase:   ac(tokens.ModalTextMuted, tokens.ModalTextMuted),
			Muted:    ac(tokens.ModalBorder, hex(tokens.FamilySecondary, tokens.Shade700)),
			Contrast: ac(tokens.ModalBackground, hex(tokens.FamilySecondary, tokens.Shade900)),
		},
	}

	tones := ToneSet{
		Default: toneColours(tokens.ToneDefault),
		Info:    toneColours(tokens.ToneInfo),
		Success: toneColours(tokens.ToneSuccess),
		Warning: toneColours(tokens.ToneWarning),
		Error:   toneColours(tokens.ToneError),
	}

	theme := Theme{
		Name:    "default",
		Palette: palette,
		Tones:   tones,
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
		},
		Radii: defaultRadiusTable(),
		Spacing: SpacingConfig{
			Padding: DefaultSpacingTable(),
			Margin:  DefaultSpacingTable(),
		},
		Typography: defaultTypography(palette),
	}

	return theme.Normalize()
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Neutral.Base).Faint(true),
		Body:     base,
		Code: base.
			Foreground(p.Secondary.Contrast).
			Background(p.Surface.Muted).
			Padding(0, 1),
		Emphasis: base.Bold(true),
		Muted:    base.Foreground(p.Neutral.Base),
	}
}

// DarkTheme returns the default theme with dark surfaces in both modes.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "dark"

	dark := func(set ColourSet) ColourSet {
		set.Base.Light = set.Base.Dark
		set.OnBase.Light = set.OnBase.Dark
		set.Muted.Light = set.Muted.Dark
		set.Contrast.Light = set.Contrast.Dark
		return set
	}
	theme.Palette.Surface = dark(theme.Palette.Surface)
	theme.Palette.Secondary = dark(theme.Palette.Secondary)
	theme.Palette.Neutral = dark(theme.Palette.Neutral)
	theme.Palette.Overlay = dark(theme.Palette.Overlay)
	theme.Typography = defaultTypography(theme.Palette)

	return theme.Normalize()
}

// LightTheme returns the default theme with light surfaces in both modes.
func LightTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "light"

	light := func(set ColourSet) ColourSet {
		set.Base.Dark = set.Base.Light
		set.OnBase.Dark = set.OnBase.Light
		set.Muted.Dark = set.Muted.Light
		set.Contrast.Dark = set.Contrast.Light
		return set
	}
	theme.Palette.Surface = light(theme.Palette.Surface)
	theme.Palette.Secondary = light(theme.Palette.Secondary)
	theme.Palette.Neutral = light(theme.Palette.Neutral)
	theme.Palette.Overlay = light(theme.Palette.Overlay)
	theme.Typography = defaultTypography(theme.Palette)

	return theme.Normalize()
}

// ThemeByName returns one of the built-in themes.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "dark":
		return DarkTheme(), true
	case "light":
		return LightTheme(), true
	default:
		return Theme{}, false
	}
}

// ThemeNames lists the built-in theme names.
func ThemeNames() []string {
	return []string{"default", "dark", "light"}
}

// ThemeManager coordinates access to the active Theme.
type ThemeManager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewThemeManager allocates a ThemeManager with the provided theme.
func NewThemeManager(theme Theme) *ThemeManager {
	return &ThemeManager{theme: theme.Normalize()}
}

// SetTheme replaces the managed theme.
func (m *ThemeManager) SetTheme(theme Theme) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme = theme.Normalize()
}

// Theme returns a copy of the managed theme.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return theme.Borders.None
	}
}

// BorderForRadius returns the border shape for a radius token.
func BorderForRadius(theme Theme, radius RadiusSize) lipgloss.Border {
	index := int(radius)
	if index < 0 || index >= radiusSizeCount {
		index = int(RadiusMD)
	}
	return theme.Radii[index]
}

// PaddingValue returns the padding value for the given size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin value for the given size.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table SpacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingMD)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyTitle:
		return typo.Title
	case TypographySubtitle:
		return typo.Subtitle
	case TypographyBody:
		return typo.Body
	case TypographyCode:
		return typo.Code
	case TypographyEmphasis:
		return typo.Emphasis
	case TypographyMuted:
		return typo.Muted
	default:
		return typo.Base
	}
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots.
var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteOverlay   PaletteSlot = func(p Palette) ColourSet { return p.Overlay }
)
