package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/glint/internal/components"
	glinterrors "github.com/alexisbeaulieu97/glint/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

var paletteSlots = map[string]func(*components.Palette) *components.ColourSet{
	"primary":   func(p *components.Palette) *components.ColourSet { return &p.Primary },
	"secondary": func(p *components.Palette) *components.ColourSet { return &p.Secondary },
	"surface":   func(p *components.Palette) *components.ColourSet { return &p.Surface },
	"success":   func(p *components.Palette) *components.ColourSet { return &p.Success },
	"warning":   func(p *components.Palette) *components.ColourSet { return &p.Warning },
	"danger":    func(p *components.Palette) *components.ColourSet { return &p.Danger },
	"info":      func(p *components.Palette) *components.ColourSet { return &p.Info },
	"neutral":   func(p *components.Palette) *components.ColourSet { return &p.Neutral },
	"overlay":   func(p *components.Palette) *components.ColourSet { return &p.Overlay },
}

// Load reads a theme file from disk, validates it, and returns the resulting model.
// Unknown keys are rejected. An empty file is a valid, empty override.
func Load(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme file: %w", err)
	}

	var file ThemeFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, glinterrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

// Validate checks a theme file without touching the filesystem.
func Validate(file *ThemeFile) error {
	if file == nil {
		return glinterrors.NewValidationError("theme", "theme file is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(file))
}

// Theme builds the theme the file describes: its base theme with the
// palette and spacing overrides applied.
func (f *ThemeFile) Theme() (components.Theme, error) {
	if err := Validate(f); err != nil {
		return components.Theme{}, err
	}

	theme, _ := components.ThemeByName(f.Base)
	if f.Name != "" {
		theme.Name = f.Name
	}

	for slot, colour := range f.Palette {
		set := paletteSlots[slot](&theme.Palette)
		override(&set.Base, colour.Base)
		override(&set.OnBase, colour.OnBase)
		override(&set.Muted, colour.Muted)
		override(&set.Contrast, colour.Contrast)
	}

	if len(f.Spacing.Padding) > 0 {
		copy(theme.Spacing.Padding[:], f.Spacing.Padding)
	}
	if len(f.Spacing.Margin) > 0 {
		copy(theme.Spacing.Margin[:], f.Spacing.Margin)
	}

	return theme.Normalize(), nil
}

func override(dst *lipgloss.AdaptiveColor, hex string) {
	if hex == "" {
		return
	}
	*dst = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
}

// Resolve picks the active theme from the CLI inputs. A theme file wins;
// its base defaults to name when the file does not set one.
func Resolve(name, path string) (components.Theme, error) {
	if path == "" {
		theme, ok := components.ThemeByName(name)
		if !ok {
			return components.Theme{}, glinterrors.NewValidationError("theme",
				fmt.Sprintf("unknown theme %q", name), nil)
		}
		return theme, nil
	}

	file, err := Load(path)
	if err != nil {
		return components.Theme{}, fmt.Errorf("load theme file: %w", err)
	}
	if file.Base == "" {
		file.Base = name
	}
	return file.Theme()
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
