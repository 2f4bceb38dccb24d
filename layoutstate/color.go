package layoutstate

// Color is the layout state's own plain color representation: four
// components in linear-alpha space, range [0,1]. It is intentionally
// decoupled from the renderer's internal RGBA type — this package has no
// dependency on the renderer, only the renderer depends on it.
type Color struct {
	R, G, B, A float64
}

// Gradient is the layout state's input representation for a fill source:
// Transparent, a flat color, or a two-stop linear gradient along one axis.
// Transparent means "skip the draw call" rather than "draw nothing
// visible" — callers must check Kind before assuming a draw happens.
type Gradient struct {
	Kind  GradientKind
	Color Color // used by Plain
	First Color // used by Vertical (top) / Horizontal (left)
	Last  Color // used by Vertical (bottom) / Horizontal (right)
}

// GradientKind discriminates Gradient's variant.
type GradientKind int

const (
	GradientTransparent GradientKind = iota
	GradientPlain
	GradientVertical
	GradientHorizontal
)

// Transparent is the zero-value Gradient.
var Transparent = Gradient{Kind: GradientTransparent}

// Plain builds a flat-color gradient.
func Plain(c Color) Gradient { return Gradient{Kind: GradientPlain, Color: c} }

// VerticalGradient builds a top-to-bottom gradient.
func VerticalGradient(top, bottom Color) Gradient {
	return Gradient{Kind: GradientVertical, First: top, Last: bottom}
}

// HorizontalGradient builds a left-to-right gradient.
func HorizontalGradient(left, right Color) Gradient {
	return Gradient{Kind: GradientHorizontal, First: left, Last: right}
}
