package tokens

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Var is a single exported design variable.
type Var struct {
	Name  string
	Value string
}

// Vars returns the design variables exposed to stylesheet consumers, in a
// stable order.
func Vars() []Var {
	c := func(f Family, s Shade) string {
		v, _ := Color(f, s)
		return v
	}
	sp := func(name string) string {
		v, _ := Lookup(spacingScale, name)
		return v.CSS
	}
	fs := func(name string) string {
		v, _ := Lookup(fontSizeScale, name)
		return v.CSS
	}
	radius, _ := Lookup(radiusScale, "base")

	return []Var{
		{Name: "--color-primary", Value: c(FamilyPrimary, Shade500)},
		{Name: "--color-primary-hover", Value: c(FamilyPrimary, Shade600)},
		{Name: "--color-secondary", Value: c(FamilySecondary, Shade100)},
		{Name: "--color-secondary-hover", Value: c(FamilySecondary, Shade200)},
		{Name: "--color-danger", Value: c(FamilyDanger, Shade500)},
		{Name: "--color-danger-hover", Value: c(FamilyDanger, Shade600)},
		{Name: "--color-success", Value: c(FamilySuccess, Shade500)},
		{Name: "--color-success-hover", Value: c(FamilySuccess, Shade600)},
		{Name: "--spacing-xs", Value: sp("xs")},
		{Name: "--spacing-sm", Value: sp("sm")},
		{Name: "--spacing-md", Value: sp("md")},
		{Name: "--spacing-lg", Value: sp("lg")},
		{Name: "--spacing-xl", Value: sp("xl")},
		{Name: "--spacing-2xl", Value: sp("2xl")},
		{Name: "--font-size-sm", Value: fs("sm")},
		{Name: "--font-size-base", Value: fs("base")},
		{Name: "--font-size-md", Value: fs("md")},
		{Name: "--border-radius-base", Value: radius.CSS},
		{Name: "--opacity-disabled", Value: OpacityDisabled},
	}
}

type document struct {
	Colors     map[string]map[string]string `yaml:"colors"`
	Alert      map[string]toneDocument      `yaml:"alert"`
	Spacing    yaml.Node                    `yaml:"spacing"`
	FontSizes  yaml.Node                    `yaml:"font_sizes"`
	Radius     yaml.Node                    `yaml:"radius"`
	FontWeight map[string]string            `yaml:"font_weight"`
	Opacity    map[string]string            `yaml:"opacity"`
}

type toneDocument struct {
	Background string `yaml:"bg"`
	Border     string `yaml:"border"`
	Text       string `yaml:"text"`
}

// MarshalYAML renders the complete token table as a YAML document. Scales
// keep their declaration order.
func MarshalYAML() ([]byte, error) {
	doc := document{
		Colors: make(map[string]map[string]string, len(colorTable)),
		Alert:  make(map[string]toneDocument, len(toneTable)),
		FontWeight: map[string]string{
			"normal": string(FontWeightNormal),
			"medium": string(FontWeightMedium),
			"bold":   string(FontWeightBold),
		},
		Opacity: map[string]string{
			"disabled": OpacityDisabled,
			"overlay":  OpacityOverlay,
		},
	}

	for family, shades := range colorTable {
		entry := make(map[string]string, len(shades))
		for shade, value := range shades {
			entry[strconv.Itoa(int(shade))] = value
		}
		doc.Colors[string(family)] = entry
	}
	for name, tone := range toneTable {
		doc.Alert[string(name)] = toneDocument{Background: tone.Background, Border: tone.Border, Text: tone.Text}
	}

	doc.Spacing = orderedScale(spacingScale)
	doc.FontSizes = orderedScale(fontSizeScale)
	doc.Radius = orderedScale(radiusScale)

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal tokens: %w", err)
	}
	return out, nil
}

func orderedScale(steps []Step) yaml.Node {
	node := yaml.Node{Kind: yaml.MappingNode}
	for _, step := range steps {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: step.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: step.Value.CSS, Style: yaml.DoubleQuotedStyle},
		)
	}
	return node
}
