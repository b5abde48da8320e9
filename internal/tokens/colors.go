package tokens

// Family names a colour family in the design system.
type Family string

const (
	FamilyPrimary   Family = "primary"
	FamilySecondary Family = "secondary"
	FamilyDanger    Family = "danger"
	FamilySuccess   Family = "success"
	FamilyWarning   Family = "warning"
	FamilyInfo      Family = "info"
)

// Shade is a Tailwind-style shade step, 50 being the lightest.
type Shade int

const (
	Shade50  Shade = 50
	Shade100 Shade = 100
	Shade200 Shade = 200
	Shade300 Shade = 300
	Shade400 Shade = 400
	Shade500 Shade = 500
	Shade600 Shade = 600
	Shade700 Shade = 700
	Shade800 Shade = 800
	Shade900 Shade = 900
)

var familyOrder = []Family{
	FamilyPrimary,
	FamilySecondary,
	FamilyDanger,
	FamilySuccess,
	FamilyWarning,
	FamilyInfo,
}

var shadeOrder = []Shade{
	Shade50, Shade100, Shade200, Shade300, Shade400,
	Shade500, Shade600, Shade700, Shade800, Shade900,
}

// Not every family defines every shade.
var colorTable = map[Family]map[Shade]string{
	FamilyPrimary: {
		Shade50:  "#e3f2fd",
		Shade100: "#bbdefb",
		Shade500: "#1976d2",
		Shade600: "#1565c0",
		Shade900: "#0d47a1",
	},
	FamilySecondary: {
		Shade50:  "#fafafa",
		Shade100: "#f5f5f5",
		Shade200: "#e0e0e0",
		Shade300: "#dddddd",
		Shade400: "#bdbdbd",
		Shade500: "#757575",
		Shade600: "#666666",
		Shade700: "#424242",
		Shade800: "#333333",
		Shade900: "#000000",
	},
	FamilyDanger: {
		Shade50:  "#ffebee",
		Shade100: "#ffcdd2",
		Shade500: "#d32f2f",
		Shade600: "#c62828",
		Shade700: "#b71c1c",
	},
	FamilySuccess: {
		Shade50:  "#e8f5e9",
		Shade100: "#c8e6c9",
		Shade500: "#388e3c",
		Shade600: "#2e7d32",
		Shade700: "#1b5e20",
	},
	FamilyWarning: {
		Shade50:  "#fff3e0",
		Shade100: "#ffe0b2",
		Shade500: "#f57c00",
		Shade600: "#e65100",
	},
	FamilyInfo: {
		Shade50:  "#e3f2fd",
		Shade100: "#bbdefb",
		Shade500: "#0288d1",
		Shade600: "#0d47a1",
	},
}

// Base colours outside any family.
const (
	White = "#ffffff"
	Black = "#000000"
)

// Families returns every colour family in display order.
func Families() []Family {
	out := make([]Family, len(familyOrder))
	copy(out, familyOrder)
	return out
}

// Shades returns the shades defined for family, lightest first.
func Shades(family Family) []Shade {
	table := colorTable[family]
	out := make([]Shade, 0, len(table))
	for _, shade := range shadeOrder {
		if _, ok := table[shade]; ok {
			out = append(out, shade)
		}
	}
	return out
}

// Color returns the hex value of a family shade.
func Color(family Family, shade Shade) (string, bool) {
	value, ok := colorTable[family][shade]
	return value, ok
}

// Tone is the background/border/text triple used by message components.
type Tone struct {
	Background string
	Border     string
	Text       string
}

// ToneName identifies an alert tone.
type ToneName string

const (
	ToneDefault ToneName = "default"
	ToneInfo    ToneName = "info"
	ToneSuccess ToneName = "success"
	ToneWarning ToneName = "warning"
	ToneError   ToneName = "error"
)

var toneTable = map[ToneName]Tone{
	ToneInfo:    {Background: "#e3f2fd", Border: "#90caf9", Text: "#0d47a1"},
	ToneSuccess: {Background: "#e8f5e9", Border: "#81c784", Text: "#1b5e20"},
	ToneWarning: {Background: "#fff3e0", Border: "#ffb74d", Text: "#e65100"},
	ToneError:   {Background: "#ffebee", Border: "#e57373", Text: "#b71c1c"},
	ToneDefault: {Background: "#f5f5f5", Border: "#bdbdbd", Text: "#424242"},
}

// ToneNames lists the alert tones, default first.
func ToneNames() []ToneName {
	return []ToneName{ToneDefault, ToneInfo, ToneSuccess, ToneWarning, ToneError}
}

// AlertTone returns the colour triple for the named tone. Unknown names
// report false.
func AlertTone(name ToneName) (Tone, bool) {
	tone, ok := toneTable[name]
	return tone, ok
}

// Modal colours. The overlay is an opaque stand-in for the translucent
// web overlay since terminals have no alpha channel.
const (
	ModalOverlay    = "#3a3a3a"
	ModalBackground = White
	ModalBorder     = "#e0e0e0"
	ModalText       = "#212121"
	ModalTextMuted  = "#757575"
)
