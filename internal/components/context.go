package components

// Fallback canvas used when the caller has not measured the terminal.
const (
	defaultCanvasWidth  = 80
	defaultCanvasHeight = 24
)

// RenderContext provides the theme and the available canvas to components
// during rendering. Themes travel explicitly; there is no global theme.
type RenderContext struct {
	Theme        Theme
	ParentWidth  int
	ParentHeight int
}

// DefaultContext returns a render context with the default theme and no
// measured canvas.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithSize returns a new context describing a canvas of the given size.
func (r RenderContext) WithSize(width, height int) RenderContext {
	r.ParentWidth = width
	r.ParentHeight = height
	return r
}

// canvas returns the canvas size, substituting the fallback for unset axes.
func (r RenderContext) canvas() (int, int) {
	w, h := r.ParentWidth, r.ParentHeight
	if w <= 0 {
		w = defaultCanvasWidth
	}
	if h <= 0 {
		h = defaultCanvasHeight
	}
	return w, h
}
