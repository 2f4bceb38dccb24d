package splitrender

// PathBuilder accumulates move/line/quad/cubic/close commands into a
// backend-owned path of type P. A builder is obtained from a Backend's
// FillBuilder or StrokeBuilder and consumed exactly once by Finish.
type PathBuilder[P any] interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CurveTo(c1x, c1y, c2x, c2y, x, y float64)
	Close()
	// Finish produces the immutable backend path. The builder must not be
	// used again afterward.
	Finish() P
}

// CachedSize is the layout extent the renderer remembered from the
// previous frame, used to detect a layout-shape change (vertical vs
// horizontal, or a changed extent) and request a backend resize.
type CachedSize struct {
	vertical bool
	value    float64
}

// VerticalSize reports a remembered vertical layout of the given height.
func VerticalSize(height float64) CachedSize { return CachedSize{vertical: true, value: height} }

// HorizontalSize reports a remembered horizontal layout of the given width.
func HorizontalSize(width float64) CachedSize { return CachedSize{vertical: false, value: width} }

// IsVertical reports whether the cached size is a vertical-layout height
// (as opposed to a horizontal-layout width), along with the stored value.
func (c CachedSize) IsVertical() (float64, bool) { return c.value, c.vertical }

// Backend is the capability set a renderer targets: build paths, fill or
// stroke them under a Shader, draw images, and manage image/resize
// lifecycle. P and I are the backend's own opaque path and image handle
// types — immutable after creation, freed explicitly via FreePath/FreeImage.
//
// The contract is side-effect only: no method returns a rendering result
// synchronously, and nothing here is safe for concurrent use without
// external serialization (see the package doc's concurrency note).
type Backend[P any, I any] interface {
	// FillBuilder starts a path intended for a filled draw call.
	FillBuilder() PathBuilder[P]
	// StrokeBuilder starts a path intended for a stroked draw call of the
	// given width, in path-local units.
	StrokeBuilder(width float64) PathBuilder[P]

	// RenderFillPath rasterizes the interior of path under shader with
	// transform applied before rasterization. Winding fill rule,
	// source-over blending, anti-aliased, no depth or backface culling.
	RenderFillPath(path P, shader Shader, transform Matrix)
	// RenderStrokePath strokes path's outline at strokeWidth (path-local
	// units) with a solid color.
	RenderStrokePath(path P, strokeWidth float64, color RGBA, transform Matrix)
	// RenderImage fills rectanglePath with image as a texture. The
	// rectangle is normally the renderer's cached unit square; transform
	// encodes placement and size.
	RenderImage(image I, rectanglePath P, transform Matrix)

	// CreateImage uploads an 8-bit-per-channel RGBA texture of the given
	// dimensions. rgba8 has length width*height*4.
	CreateImage(width, height int, rgba8 []byte) I
	// FreePath releases a path created by FillBuilder/StrokeBuilder/Finish.
	FreePath(path P)
	// FreeImage releases an image created by CreateImage.
	FreeImage(image I)

	// Resize requests the host surface grow or shrink to the given pixel
	// dimensions. Called only when the layout's preferred size changes
	// relative to the previously cached size.
	Resize(widthPx, heightPx int)
}

// BuildCircle emits four cubic Béziers approximating a circle of radius r
// centered at (cx, cy), using Spencer Mortensen's control-point constant.
// This constant is required exactly for visual parity across
// implementations; do not round it further.
const circleControlConstant = 0.551915024494

// BuildCircle is the Backend-level convenience the path builder contract
// describes: build a filled circle path via backend's own FillBuilder.
func BuildCircle[P any, I any](backend Backend[P, I], cx, cy, r float64) P {
	b := backend.FillBuilder()
	c := circleControlConstant * r

	b.MoveTo(cx, cy-r)
	b.CurveTo(cx+c, cy-r, cx+r, cy-c, cx+r, cy)
	b.CurveTo(cx+r, cy+c, cx+c, cy+r, cx, cy+r)
	b.CurveTo(cx-c, cy+r, cx-r, cy+c, cx-r, cy)
	b.CurveTo(cx-r, cy-c, cx-c, cy-r, cx, cy-r)
	b.Close()
	return b.Finish()
}

// BuildUnitRectangle emits the canonical unit square (0,0)-(1,0)-(1,1)-(0,1),
// closed, used as the geometry for every RenderContext.RenderRectangle and
// RenderImage call (only the transform changes per call).
func BuildUnitRectangle[P any, I any](backend Backend[P, I]) P {
	b := backend.FillBuilder()
	b.MoveTo(0, 0)
	b.LineTo(1, 0)
	b.LineTo(1, 1)
	b.LineTo(0, 1)
	b.Close()
	return b.Finish()
}
