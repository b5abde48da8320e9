package components

import (
	"fmt"
	"strings"
)

// Size is the shared size scale. The zero value is the default size.
type Size int

const (
	SizeMedium Size = iota
	SizeSmall
	SizeLarge
	SizeFull
)

var sizeNames = []string{"medium", "small", "large", "full"}

func (s Size) String() string { return enumName("Size", int(s), sizeNames) }

// ParseSize converts a size name ("sm", "small", ...) to a Size. The empty
// string selects the default.
func ParseSize(value string) (Size, error) {
	return parseEnum("", "size", value, sizeNames, map[string]Size{
		"md": SizeMedium,
		"sm": SizeSmall,
		"lg": SizeLarge,
	})
}

// WidthMode selects intrinsic or stretched width. The zero value is WidthAuto.
type WidthMode int

const (
	WidthAuto WidthMode = iota
	WidthFull
)

var widthNames = []string{"auto", "full"}

func (w WidthMode) String() string { return enumName("WidthMode", int(w), widthNames) }

// ParseWidthMode converts "auto"/"full" (or "true"/"false") to a WidthMode.
func ParseWidthMode(value string) (WidthMode, error) {
	return parseEnum("", "width", value, widthNames, map[string]WidthMode{
		"false": WidthAuto,
		"true":  WidthFull,
	})
}

// ButtonVariant selects the button colour scheme. The zero value is
// ButtonVariantPrimary.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantDanger
	ButtonVariantSuccess
	ButtonVariantOutline
	ButtonVariantGhost
	ButtonVariantTab
	ButtonVariantTabActive
)

var buttonVariantNames = []string{"primary", "secondary", "danger", "success", "outline", "ghost", "tab", "tab-active"}

func (v ButtonVariant) String() string {
	return enumName("ButtonVariant", int(v), buttonVariantNames)
}

// ButtonVariants lists every button variant.
func ButtonVariants() []ButtonVariant {
	return enumValues[ButtonVariant](len(buttonVariantNames))
}

// ParseButtonVariant converts a variant name to a ButtonVariant.
func ParseButtonVariant(value string) (ButtonVariant, error) {
	return parseEnum("button", "variant", value, buttonVariantNames, map[string]ButtonVariant{
		"tabactive": ButtonVariantTabActive,
	})
}

// AlertVariant selects the alert tone and glyph. The zero value is
// AlertVariantDefault.
type AlertVariant int

const (
	AlertVariantDefault AlertVariant = iota
	AlertVariantInfo
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

var alertVariantNames = []string{"default", "info", "success", "warning", "error"}

func (v AlertVariant) String() string {
	return enumName("AlertVariant", int(v), alertVariantNames)
}

// AlertVariants lists every alert variant.
func AlertVariants() []AlertVariant {
	return enumValues[AlertVariant](len(alertVariantNames))
}

// ParseAlertVariant converts a variant name to an AlertVariant.
func ParseAlertVariant(value string) (AlertVariant, error) {
	return parseEnum("alert", "variant", value, alertVariantNames, map[string]AlertVariant{
		"danger": AlertVariantError,
	})
}

// ModalVariant tints the modal frame. The zero value is ModalVariantDefault.
type ModalVariant int

const (
	ModalVariantDefault ModalVariant = iota
	ModalVariantDanger
	ModalVariantWarning
	ModalVariantInfo
)

var modalVariantNames = []string{"default", "danger", "warning", "info"}

func (v ModalVariant) String() string {
	return enumName("ModalVariant", int(v), modalVariantNames)
}

// ModalVariants lists every modal variant.
func ModalVariants() []ModalVariant {
	return enumValues[ModalVariant](len(modalVariantNames))
}

// ParseModalVariant converts a variant name to a ModalVariant.
func ParseModalVariant(value string) (ModalVariant, error) {
	return parseEnum[ModalVariant]("modal", "variant", value, modalVariantNames, nil)
}

func enumName(typeName string, index int, names []string) string {
	if index < 0 || index >= len(names) {
		return fmt.Sprintf("%s(%d)", typeName, index)
	}
	return names[index]
}

func enumValues[K ~int](count int) []K {
	out := make([]K, count)
	for i := range out {
		out[i] = K(i)
	}
	return out
}

func parseEnum[K ~int](component, axis, value string, names []string, aliases map[string]K) (K, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	if key == "" {
		return 0, nil
	}
	for i, name := range names {
		if name == key {
			return K(i), nil
		}
	}
	if v, ok := aliases[key]; ok {
		return v, nil
	}
	return 0, &InvalidStyleAxisError{Component: component, Axis: axis, Value: value}
}
