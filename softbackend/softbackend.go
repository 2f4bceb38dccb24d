// Package softbackend is the CPU reference implementation of the renderer's
// backend contract. It rasterizes fill and stroke paths with anti-aliased
// scanline coverage, realizes gradient shaders by sampling a two-stop
// linear gradient across the path's own bounding box, and samples images
// bilinearly with pad-extend addressing. It is slower than a GPU backend
// but sufficient for screenshots and for the visual regression tests.
package softbackend

import (
	splitrender "github.com/gogpu/splitrender"
	intimage "github.com/gogpu/splitrender/internal/image"
)

// Path is the backend's path handle: the accumulated geometry plus the
// stroke width it was built for (zero for fill paths).
type Path struct {
	path        *splitrender.Path
	strokeWidth float64
	freed       bool
}

// Image is the backend's texture handle: a straight-alpha RGBA8 buffer.
type Image struct {
	buf   *intimage.ImageBuf
	freed bool
}

// Backend renders into an owned Pixmap. It implements
// splitrender.Backend[*Path, *Image].
type Backend struct {
	pixmap   *splitrender.Pixmap
	renderer *splitrender.SoftwareRenderer

	pathsAlive  int
	imagesAlive int

	resizeRequests []ResizeRequest
}

// ResizeRequest records one Resize call, for hosts (and tests) that want
// to observe the renderer's preferred-size changes.
type ResizeRequest struct {
	Width, Height int
}

// New creates a software backend with a width x height pixel surface,
// cleared to transparent.
func New(width, height int) *Backend {
	return &Backend{
		pixmap:   splitrender.NewPixmap(width, height),
		renderer: splitrender.NewSoftwareRenderer(width, height),
	}
}

// Pixmap exposes the backing surface.
func (b *Backend) Pixmap() *splitrender.Pixmap { return b.pixmap }

// Clear resets the surface to the given color, typically fully
// transparent between frames.
func (b *Backend) Clear(c splitrender.RGBA) { b.pixmap.Clear(c) }

// PathsAlive reports how many paths have been created and not yet freed.
func (b *Backend) PathsAlive() int { return b.pathsAlive }

// ImagesAlive reports how many images have been created and not yet freed.
func (b *Backend) ImagesAlive() int { return b.imagesAlive }

// ResizeRequests returns every Resize call observed so far.
func (b *Backend) ResizeRequests() []ResizeRequest { return b.resizeRequests }

// Builder accumulates path commands for this backend.
type Builder struct {
	backend     *Backend
	path        *splitrender.Path
	strokeWidth float64
}

// FillBuilder starts a path intended for a filled draw call.
func (b *Backend) FillBuilder() splitrender.PathBuilder[*Path] {
	return &Builder{backend: b, path: splitrender.NewPath()}
}

// StrokeBuilder starts a path intended for a stroked draw call of the
// given width in path-local units.
func (b *Backend) StrokeBuilder(width float64) splitrender.PathBuilder[*Path] {
	return &Builder{backend: b, path: splitrender.NewPath(), strokeWidth: width}
}

func (pb *Builder) MoveTo(x, y float64) { pb.path.MoveTo(x, y) }
func (pb *Builder) LineTo(x, y float64) { pb.path.LineTo(x, y) }
func (pb *Builder) QuadTo(cx, cy, x, y float64) {
	pb.path.QuadraticTo(cx, cy, x, y)
}
func (pb *Builder) CurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	pb.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
}
func (pb *Builder) Close() { pb.path.Close() }

// Finish produces the immutable backend path. The builder must not be
// used again afterward.
func (pb *Builder) Finish() *Path {
	pb.backend.pathsAlive++
	p := &Path{path: pb.path, strokeWidth: pb.strokeWidth}
	pb.path = nil
	return p
}

// deviceMatrix converts a renderer transform (whose output is the backend
// unit square) into pixel space.
func (b *Backend) deviceMatrix(transform splitrender.Matrix) splitrender.Matrix {
	w := float64(b.pixmap.Width())
	h := float64(b.pixmap.Height())
	return splitrender.Scale(w, h).Multiply(transform)
}

// RenderFillPath rasterizes the interior of path under shader with
// transform applied first. Winding fill rule, source-over blending,
// anti-aliased.
func (b *Backend) RenderFillPath(path *Path, shader splitrender.Shader, transform splitrender.Matrix) {
	device := b.deviceMatrix(transform)
	transformed := path.path.Transform(device)

	if c, ok := shader.IsSolid(); ok {
		b.fillSolid(transformed, c)
		return
	}

	// Gradients interpolate across the path's own axis-aligned bounding
	// box in path-local coordinates. Only the two anchor points travel
	// through the transform; the interpolation itself runs in device
	// space along the transformed axis.
	brush := gradientBrush(path.path, shader, device)
	b.renderer.FillPainted(b.pixmap, transformed, splitrender.FillRuleNonZero, func(x, y int) splitrender.RGBA {
		return brush.ColorAt(float64(x)+0.5, float64(y)+0.5)
	})
}

func (b *Backend) fillSolid(p *splitrender.Path, c splitrender.RGBA) {
	paint := splitrender.NewPaint()
	paint.Pattern = splitrender.NewSolidPattern(c)
	_ = b.renderer.Fill(b.pixmap, p, paint)
}

// gradientBrush builds the device-space linear gradient realizing shader
// over the local bounding box of p.
func gradientBrush(p *splitrender.Path, shader splitrender.Shader, device splitrender.Matrix) *splitrender.LinearGradientBrush {
	first, last, vertical := shader.Endpoints()
	bbox := p.BoundingBox()

	var p0, p1 splitrender.Point
	if vertical {
		midX := (bbox.Min.X + bbox.Max.X) / 2
		p0 = splitrender.Point{X: midX, Y: bbox.Min.Y}
		p1 = splitrender.Point{X: midX, Y: bbox.Max.Y}
	} else {
		midY := (bbox.Min.Y + bbox.Max.Y) / 2
		p0 = splitrender.Point{X: bbox.Min.X, Y: midY}
		p1 = splitrender.Point{X: bbox.Max.X, Y: midY}
	}
	p0 = device.TransformPoint(p0)
	p1 = device.TransformPoint(p1)

	return splitrender.NewLinearGradientBrush(p0.X, p0.Y, p1.X, p1.Y).
		AddColorStop(0, first).
		AddColorStop(1, last).
		SetExtend(splitrender.ExtendPad)
}

// RenderStrokePath strokes path's outline at strokeWidth in path-local
// units with a solid color. The stroke is expanded to a fill in local
// space (so the width scales with the transform, like every backend that
// tessellates at creation time), then rasterized like any other fill.
func (b *Backend) RenderStrokePath(path *Path, strokeWidth float64, color splitrender.RGBA, transform splitrender.Matrix) {
	outline := splitrender.ExpandStroke(path.path, strokeWidth, splitrender.LineCapRound, splitrender.LineJoinRound, 4)
	b.fillSolid(outline.Transform(b.deviceMatrix(transform)), color)
}

// RenderImage fills rectanglePath with image as a texture. The rectangle
// is the renderer's canonical unit square, so the inverse transform maps
// device pixels straight to texture coordinates. Sampling is bilinear
// with pad-extend addressing.
func (b *Backend) RenderImage(image *Image, rectanglePath *Path, transform splitrender.Matrix) {
	device := b.deviceMatrix(transform)
	inverse := device.Invert()
	transformed := rectanglePath.path.Transform(device)

	b.renderer.FillPainted(b.pixmap, transformed, splitrender.FillRuleNonZero, func(x, y int) splitrender.RGBA {
		local := inverse.TransformPoint(splitrender.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
		r, g, bl, a := intimage.SampleBilinear(image.buf, local.X, local.Y)
		return splitrender.RGBA{
			R: float64(r) / 255,
			G: float64(g) / 255,
			B: float64(bl) / 255,
			A: float64(a) / 255,
		}
	})
}

// CreateImage uploads a straight-alpha RGBA8 texture.
func (b *Backend) CreateImage(width, height int, rgba8 []byte) *Image {
	buf, err := intimage.FromRaw(rgba8, width, height, intimage.FormatRGBA8, width*4)
	if err != nil {
		// A malformed upload still has to produce a handle the renderer
		// can draw and free; an empty 1x1 transparent texture serves.
		buf, _ = intimage.NewImageBuf(1, 1, intimage.FormatRGBA8)
	}
	b.imagesAlive++
	return &Image{buf: buf}
}

// FreePath releases a path. Freeing twice is a no-op, matching the
// contract that the renderer owns each handle exactly once.
func (b *Backend) FreePath(path *Path) {
	if path == nil || path.freed {
		return
	}
	path.freed = true
	path.path = nil
	b.pathsAlive--
}

// FreeImage releases an image.
func (b *Backend) FreeImage(image *Image) {
	if image == nil || image.freed {
		return
	}
	image.freed = true
	image.buf = nil
	b.imagesAlive--
}

// Resize reallocates the surface at the requested pixel size and records
// the request. The renderer only calls this when the layout's preferred
// size changed relative to its cached size.
func (b *Backend) Resize(widthPx, heightPx int) {
	if widthPx < 1 {
		widthPx = 1
	}
	if heightPx < 1 {
		heightPx = 1
	}
	b.resizeRequests = append(b.resizeRequests, ResizeRequest{Width: widthPx, Height: heightPx})
	b.pixmap = splitrender.NewPixmap(widthPx, heightPx)
	b.renderer = splitrender.NewSoftwareRenderer(widthPx, heightPx)
}
