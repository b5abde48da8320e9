package config

import (
	"gopkg.in/yaml.v3"
)

// ThemeFile is the on-disk theme override document.
//
//	base: dark
//	palette:
//	  primary: "#7c3aed"
//	  danger:
//	    base: "#b91c1c"
//	    on_base: "#ffffff"
//	spacing:
//	  padding: [0, 1, 1, 2, 2, 3, 4, 5, 6, 8]
type ThemeFile struct {
	Name    string            `yaml:"name,omitempty" validate:"omitempty,max=64"`
	Base    string            `yaml:"base,omitempty" validate:"omitempty,theme_name"`
	Palette map[string]Colour `yaml:"palette,omitempty" validate:"omitempty,dive,keys,palette_slot,endkeys"`
	Spacing Spacing           `yaml:"spacing,omitempty"`
}

// Colour overrides one palette slot. Empty fields keep the base theme's
// value.
type Colour struct {
	Base     string `yaml:"base,omitempty" validate:"omitempty,hexcolor"`
	OnBase   string `yaml:"on_base,omitempty" validate:"omitempty,hexcolor"`
	Muted    string `yaml:"muted,omitempty" validate:"omitempty,hexcolor"`
	Contrast string `yaml:"contrast,omitempty" validate:"omitempty,hexcolor"`
}

// UnmarshalYAML accepts a bare hex string as shorthand for the base colour.
func (c *Colour) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		c.Base = value.Value
		return nil
	}

	type plain Colour
	var decoded plain
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	*c = Colour(decoded)
	return nil
}

// Spacing replaces whole spacing tables, indexed from "none" to "5xl".
type Spacing struct {
	Padding []int `yaml:"padding,omitempty" validate:"omitempty,len=10,dive,min=0,max=16"`
	Margin  []int `yaml:"margin,omitempty" validate:"omitempty,len=10,dive,min=0,max=16"`
}
