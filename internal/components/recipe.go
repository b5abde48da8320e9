package components

import (
	"errors"
	"fmt"
)

// ErrInvalidStyleAxis is matched by every InvalidStyleAxisError.
var ErrInvalidStyleAxis = errors.New("invalid style axis value")

// InvalidStyleAxisError reports a variant, size or width value that a
// component does not define.
type InvalidStyleAxisError struct {
	Component string
	Axis      string
	Value     string
}

func (e *InvalidStyleAxisError) Error() string {
	if e.Component == "" {
		return fmt.Sprintf("invalid %s %q", e.Axis, e.Value)
	}
	return fmt.Sprintf("%s: invalid %s %q", e.Component, e.Axis, e.Value)
}

// Is makes errors.Is(err, ErrInvalidStyleAxis) succeed.
func (e *InvalidStyleAxisError) Is(target error) bool {
	return target == ErrInvalidStyleAxis
}

// AxisValue is an enumerated style axis value.
type AxisValue interface {
	comparable
	String() string
}

// Axis maps each supported value of one style dimension to its fragment.
// An axis with no fragments does not take part in resolution and only
// accepts its zero value.
type Axis[K AxisValue] struct {
	Name      string
	Fragments map[K]Fragment
}

// NewAxis builds an axis whose fragments are named "<component>.<axis>.<value>".
func NewAxis[K AxisValue](component, name string, entries map[K][]StyleFunc) Axis[K] {
	fragments := make(map[K]Fragment, len(entries))
	for value, funcs := range entries {
		fragments[value] = NewFragment(fmt.Sprintf("%s.%s.%s", component, name, value), funcs...)
	}
	return Axis[K]{Name: name, Fragments: fragments}
}

func (a Axis[K]) lookup(component, fallbackName string, value K) (Fragment, bool, error) {
	name := a.Name
	if name == "" {
		name = fallbackName
	}
	if len(a.Fragments) == 0 {
		var zero K
		if value == zero {
			return Fragment{}, false, nil
		}
		return Fragment{}, false, &InvalidStyleAxisError{Component: component, Axis: name, Value: value.String()}
	}
	fragment, ok := a.Fragments[value]
	if !ok {
		return Fragment{}, false, &InvalidStyleAxisError{Component: component, Axis: name, Value: value.String()}
	}
	return fragment, true, nil
}

// Props are the semantic style inputs of a component. Zero values select
// the defaults.
type Props[V AxisValue] struct {
	Variant  V
	Size     Size
	Width    WidthMode
	Override []StyleFunc
}

// Recipe describes how a component kind turns Props into a StyleSpec.
type Recipe[V AxisValue] struct {
	Component string
	Base      Fragment
	Variants  Axis[V]
	Sizes     Axis[Size]
	Widths    Axis[WidthMode]
}

// Resolve layers base, variant, size, width and caller override fragments,
// in that order. An unsupported axis value fails with an
// *InvalidStyleAxisError; it is never replaced by a default.
func (r Recipe[V]) Resolve(p Props[V]) (StyleSpec, error) {
	layers := make([]Fragment, 0, 5)

	base := r.Base
	if base.Name == "" {
		base.Name = r.Component + ".base"
	}
	layers = append(layers, base)

	variant, ok, err := r.Variants.lookup(r.Component, "variant", p.Variant)
	if err != nil {
		return StyleSpec{}, err
	}
	if ok {
		layers = append(layers, variant)
	}

	size, ok, err := r.Sizes.lookup(r.Component, "size", p.Size)
	if err != nil {
		return StyleSpec{}, err
	}
	if ok {
		layers = append(layers, size)
	}

	width, ok, err := r.Widths.lookup(r.Component, "width", p.Width)
	if err != nil {
		return StyleSpec{}, err
	}
	if ok {
		layers = append(layers, width)
	}

	if len(p.Override) > 0 {
		layers = append(layers, NewFragment(r.Component+".override", p.Override...))
	}

	return StyleSpec{layers: layers}, nil
}
