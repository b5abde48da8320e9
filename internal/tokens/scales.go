package tokens

// Length is a CSS length paired with its terminal cell equivalent.
type Length struct {
	CSS   string
	Cells int
}

// Step is one named entry of an ordered scale.
type Step struct {
	Name  string
	Value Length
}

// Spacing is the base spacing scale. One terminal cell stands in for
// roughly four CSS pixels.
var spacingScale = []Step{
	{Name: "xs", Value: Length{CSS: "4px", Cells: 1}},
	{Name: "sm", Value: Length{CSS: "6px", Cells: 1}},
	{Name: "md", Value: Length{CSS: "8px", Cells: 2}},
	{Name: "lg", Value: Length{CSS: "10px", Cells: 2}},
	{Name: "xl", Value: Length{CSS: "12px", Cells: 3}},
	{Name: "2xl", Value: Length{CSS: "16px", Cells: 4}},
	{Name: "3xl", Value: Length{CSS: "20px", Cells: 5}},
	{Name: "4xl", Value: Length{CSS: "24px", Cells: 6}},
	{Name: "5xl", Value: Length{CSS: "32px", Cells: 8}},
}

var fontSizeScale = []Step{
	{Name: "xs", Value: Length{CSS: "12px"}},
	{Name: "sm", Value: Length{CSS: "13px"}},
	{Name: "base", Value: Length{CSS: "14px"}},
	{Name: "md", Value: Length{CSS: "15px"}},
	{Name: "lg", Value: Length{CSS: "16px"}},
	{Name: "xl", Value: Length{CSS: "18px"}},
	{Name: "2xl", Value: Length{CSS: "20px"}},
	{Name: "3xl", Value: Length{CSS: "24px"}},
	{Name: "4xl", Value: Length{CSS: "28px"}},
}

var radiusScale = []Step{
	{Name: "none", Value: Length{CSS: "0"}},
	{Name: "sm", Value: Length{CSS: "2px"}},
	{Name: "base", Value: Length{CSS: "3px"}},
	{Name: "md", Value: Length{CSS: "4px"}},
	{Name: "lg", Value: Length{CSS: "10px"}},
	{Name: "xl", Value: Length{CSS: "50%"}},
	{Name: "full", Value: Length{CSS: "9999px"}},
}

// FontWeight names a font weight token.
type FontWeight string

const (
	FontWeightNormal FontWeight = "normal"
	FontWeightMedium FontWeight = "500"
	FontWeightBold   FontWeight = "bold"
)

// Opacity tokens.
const (
	OpacityDisabled = "0.5"
	OpacityOverlay  = "0.5"
)

// Spacing returns the spacing scale, smallest first.
func Spacing() []Step { return cloneSteps(spacingScale) }

// FontSizes returns the font size scale, smallest first.
func FontSizes() []Step { return cloneSteps(fontSizeScale) }

// Radii returns the border radius scale, smallest first.
func Radii() []Step { return cloneSteps(radiusScale) }

// SpacingCells returns the terminal cell count for a spacing step name.
func SpacingCells(name string) (int, bool) {
	return lookupCells(spacingScale, name)
}

// Lookup returns the named step of a scale.
func Lookup(scale []Step, name string) (Length, bool) {
	for _, step := range scale {
		if step.Name == name {
			return step.Value, true
		}
	}
	return Length{}, false
}

func lookupCells(scale []Step, name string) (int, bool) {
	length, ok := Lookup(scale, name)
	return length.Cells, ok
}

func cloneSteps(steps []Step) []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}
