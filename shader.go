package splitrender

import "github.com/gogpu/splitrender/layoutstate"

// Shader is the renderer-internal tagged union of fill sources a backend
// must support. Gradients are expressed as the two colors at the path's own
// axis-aligned bounding box edges, in path-local coordinates — not in
// device space and not relative to the transform applied at draw time. A
// backend evaluates the gradient by computing that local bounding box
// itself (see softbackend for the reference approach: transform only the
// two bounding-box-derived gradient anchors through the same transform
// used for the geometry, then interpolate in device space).
type Shader struct {
	kind      shaderKind
	solid     RGBA
	top, bot  RGBA // VerticalGradient: top-to-bottom
	lft, rght RGBA // HorizontalGradient: left-to-right
}

type shaderKind uint8

const (
	shaderSolid shaderKind = iota
	shaderVertical
	shaderHorizontal
)

// SolidColor builds a Shader that fills uniformly with c.
func SolidColor(c RGBA) Shader { return Shader{kind: shaderSolid, solid: c} }

// VerticalGradient builds a Shader that interpolates from top to bottom
// across the path's local bounding box.
func VerticalGradient(top, bottom RGBA) Shader {
	return Shader{kind: shaderVertical, top: top, bot: bottom}
}

// HorizontalGradient builds a Shader that interpolates from left to right
// across the path's local bounding box.
func HorizontalGradient(left, right RGBA) Shader {
	return Shader{kind: shaderHorizontal, lft: left, rght: right}
}

// IsSolid reports whether the shader is a flat color, along with that
// color. Backends that only special-case solid fills can use this to skip
// bounding-box computation entirely.
func (s Shader) IsSolid() (RGBA, bool) {
	if s.kind == shaderSolid {
		return s.solid, true
	}
	return RGBA{}, false
}

// Endpoints returns the two colors and their axis for a gradient shader.
// vertical reports true when the gradient runs top-to-bottom; false for
// left-to-right. Calling this on a solid shader returns the solid color
// twice with vertical=true, which is harmless since the two colors being
// equal makes any interpolation along either axis a no-op.
func (s Shader) Endpoints() (a, b RGBA, vertical bool) {
	switch s.kind {
	case shaderVertical:
		return s.top, s.bot, true
	case shaderHorizontal:
		return s.lft, s.rght, false
	default:
		return s.solid, s.solid, true
	}
}

// rgbaFromState converts the layout state's plain Color into the
// renderer's internal RGBA.
func rgbaFromState(c layoutstate.Color) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// DecodeShader converts a layout-state Gradient into a Shader, reporting ok
// = false for Transparent (the caller must skip the draw call entirely, per
// spec's "no draw call when gradient is Transparent").
func DecodeShader(g layoutstate.Gradient) (Shader, bool) {
	switch g.Kind {
	case layoutstate.GradientPlain:
		return SolidColor(rgbaFromState(g.Color)), true
	case layoutstate.GradientVertical:
		return VerticalGradient(rgbaFromState(g.First), rgbaFromState(g.Last)), true
	case layoutstate.GradientHorizontal:
		return HorizontalGradient(rgbaFromState(g.First), rgbaFromState(g.Last)), true
	default:
		return Shader{}, false
	}
}
