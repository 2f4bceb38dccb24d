package splitrender

import (
	"github.com/gogpu/splitrender/internal/path"
	"github.com/gogpu/splitrender/internal/raster"
	"github.com/gogpu/splitrender/internal/stroke"
)

// SoftwareRenderer is a CPU scanline rasterizer over a Pixmap. It is the
// engine behind the softbackend package: fills are anti-aliased with 4x
// supersampling, subpath boundaries are respected (no phantom edges
// between contours), and color can come from a fixed paint or a per-pixel
// function for gradient and texture fills.
type SoftwareRenderer struct {
	rasterizer *raster.Rasterizer
}

// NewSoftwareRenderer creates a software renderer for a width x height
// target.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	return &SoftwareRenderer{
		rasterizer: raster.NewRasterizer(width, height),
	}
}

// pixmapAdapter adapts Pixmap to the rasterizer's blending target.
type pixmapAdapter struct {
	pixmap *Pixmap
}

func (p *pixmapAdapter) Width() int {
	return p.pixmap.Width()
}

func (p *pixmapAdapter) Height() int {
	return p.pixmap.Height()
}

func (p *pixmapAdapter) SetPixel(x, y int, c raster.RGBA) {
	p.pixmap.SetPixel(x, y, RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// FillSpan implements the rasterizer's span-filler fast path, routing
// interior scanline runs through Pixmap's batched span fill instead of
// per-pixel stores.
func (p *pixmapAdapter) FillSpan(x1, x2, y int, c raster.RGBA) {
	p.pixmap.FillSpan(x1, x2, y, RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// BlendPixelAlpha blends a color with the existing pixel using the given
// coverage alpha, source-over in linear space.
func (p *pixmapAdapter) BlendPixelAlpha(x, y int, c raster.RGBA, alpha uint8) {
	if alpha == 0 {
		return
	}

	if x < 0 || x >= p.pixmap.Width() || y < 0 || y >= p.pixmap.Height() {
		return
	}

	srcAlpha := c.A * float64(alpha) / 255.0
	if srcAlpha >= 1 {
		p.pixmap.SetPixel(x, y, RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		return
	}

	existing := p.pixmap.GetPixel(x, y)
	invSrcAlpha := 1.0 - srcAlpha

	outA := srcAlpha + existing.A*invSrcAlpha
	if outA > 0 {
		outR := (c.R*srcAlpha + existing.R*existing.A*invSrcAlpha) / outA
		outG := (c.G*srcAlpha + existing.G*existing.A*invSrcAlpha) / outA
		outB := (c.B*srcAlpha + existing.B*existing.A*invSrcAlpha) / outA
		p.pixmap.SetPixel(x, y, RGBA{R: outR, G: outG, B: outB, A: outA})
	}
}

// convertPath converts Path elements to path.PathElement for flattening.
func convertPath(p *Path) []path.PathElement {
	var elements []path.PathElement
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			elements = append(elements, path.MoveTo{Point: path.Point{X: e.Point.X, Y: e.Point.Y}})
		case LineTo:
			elements = append(elements, path.LineTo{Point: path.Point{X: e.Point.X, Y: e.Point.Y}})
		case QuadTo:
			elements = append(elements, path.QuadTo{
				Control: path.Point{X: e.Control.X, Y: e.Control.Y},
				Point:   path.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case CubicTo:
			elements = append(elements, path.CubicTo{
				Control1: path.Point{X: e.Control1.X, Y: e.Control1.Y},
				Control2: path.Point{X: e.Control2.X, Y: e.Control2.Y},
				Point:    path.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case Close:
			elements = append(elements, path.Close{})
		}
	}
	return elements
}

// pathEdges flattens p into subpath-aware edges. Going through
// path.EdgeIter rather than a flat point list keeps separate contours
// separate, which matters for glyphs with holes.
func pathEdges(p *Path) []raster.PathEdge {
	iter := path.NewEdgeIter(convertPath(p))
	var edges []raster.PathEdge
	for {
		e := iter.Next()
		if e == nil {
			break
		}
		edges = append(edges, raster.PathEdge{
			P0: raster.Point{X: e.P0.X, Y: e.P0.Y},
			P1: raster.Point{X: e.P1.X, Y: e.P1.Y},
		})
	}
	return edges
}

// convertFillRule converts the paint-level fill rule.
func convertFillRule(rule FillRule) raster.FillRule {
	if rule == FillRuleEvenOdd {
		return raster.FillRuleEvenOdd
	}
	return raster.FillRuleNonZero
}

// Fill fills a path with the given paint, anti-aliased.
func (r *SoftwareRenderer) Fill(pixmap *Pixmap, p *Path, paint *Paint) error {
	color := r.getColorFromPaint(paint)

	adapter := &pixmapAdapter{pixmap: pixmap}
	r.rasterizer.FillAAFromEdges(adapter, pathEdges(p), convertFillRule(paint.FillRule), raster.RGBA{
		R: color.R,
		G: color.G,
		B: color.B,
		A: color.A,
	})

	return nil
}

// FillPainted fills a path sampling the color per covered pixel from
// paintFn. Used for gradient and texture fills, where the coverage
// machinery is shared with Fill but the color varies across the span.
func (r *SoftwareRenderer) FillPainted(pixmap *Pixmap, p *Path, fillRule FillRule, paintFn func(x, y int) RGBA) {
	adapter := &pixmapAdapter{pixmap: pixmap}
	r.rasterizer.FillAAPaintedFromEdges(adapter, pathEdges(p), convertFillRule(fillRule), func(x, y int) raster.RGBA {
		c := paintFn(x, y)
		return raster.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	})
}

// FillNoAA fills without anti-aliasing (faster but aliased).
func (r *SoftwareRenderer) FillNoAA(pixmap *Pixmap, p *Path, paint *Paint) error {
	solidPattern, ok := paint.Pattern.(*SolidPattern)
	if !ok {
		return nil
	}
	color := solidPattern.Color

	elements := convertPath(p)
	flattenedPath := path.Flatten(elements)
	rasterPoints := make([]raster.Point, len(flattenedPath))
	for i, pt := range flattenedPath {
		rasterPoints[i] = raster.Point{X: pt.X, Y: pt.Y}
	}

	adapter := &pixmapAdapter{pixmap: pixmap}
	r.rasterizer.Fill(adapter, rasterPoints, convertFillRule(paint.FillRule), raster.RGBA{
		R: color.R,
		G: color.G,
		B: color.B,
		A: color.A,
	})

	return nil
}

// getColorFromPaint extracts the solid color from the paint.
// Returns Black if no solid pattern is found.
func (r *SoftwareRenderer) getColorFromPaint(paint *Paint) RGBA {
	solidPattern, ok := paint.Pattern.(*SolidPattern)
	if !ok {
		return Black
	}
	return solidPattern.Color
}

// Stroke strokes a path with the given paint. The stroke is expanded to a
// fill path first, then rendered with Fill to get smooth anti-aliased
// edges.
func (r *SoftwareRenderer) Stroke(pixmap *Pixmap, p *Path, paint *Paint) error {
	strokePath := ExpandStroke(p, paint.LineWidth, paint.LineCap, paint.LineJoin, paint.MiterLimit)
	return r.Fill(pixmap, strokePath, paint)
}

// ExpandStroke expands a stroked outline into a fill path in the path's
// own coordinate space. Backends that transform geometry after building
// expand first so the stroke width scales with the transform.
func ExpandStroke(p *Path, width float64, cap LineCap, join LineJoin, miterLimit float64) *Path {
	strokeStyle := stroke.Stroke{
		Width:      width,
		Cap:        convertLineCap(cap),
		Join:       convertLineJoin(join),
		MiterLimit: miterLimit,
	}
	if strokeStyle.MiterLimit <= 0 {
		strokeStyle.MiterLimit = 4.0
	}

	expander := stroke.NewStrokeExpander(strokeStyle)
	expander.SetTolerance(0.005)

	expanded := expander.Expand(convertPathToStrokeElements(p))
	return convertStrokeElementsToPath(expanded)
}

// convertPathToStrokeElements converts Path elements to stroke.PathElement.
func convertPathToStrokeElements(p *Path) []stroke.PathElement {
	var elements []stroke.PathElement
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			elements = append(elements, stroke.MoveTo{Point: stroke.Point{X: e.Point.X, Y: e.Point.Y}})
		case LineTo:
			elements = append(elements, stroke.LineTo{Point: stroke.Point{X: e.Point.X, Y: e.Point.Y}})
		case QuadTo:
			elements = append(elements, stroke.QuadTo{
				Control: stroke.Point{X: e.Control.X, Y: e.Control.Y},
				Point:   stroke.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case CubicTo:
			elements = append(elements, stroke.CubicTo{
				Control1: stroke.Point{X: e.Control1.X, Y: e.Control1.Y},
				Control2: stroke.Point{X: e.Control2.X, Y: e.Control2.Y},
				Point:    stroke.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case Close:
			elements = append(elements, stroke.Close{})
		}
	}
	return elements
}

// convertStrokeElementsToPath converts stroke.PathElement back to Path.
func convertStrokeElementsToPath(elements []stroke.PathElement) *Path {
	p := NewPath()
	for _, elem := range elements {
		switch e := elem.(type) {
		case stroke.MoveTo:
			p.MoveTo(e.Point.X, e.Point.Y)
		case stroke.LineTo:
			p.LineTo(e.Point.X, e.Point.Y)
		case stroke.QuadTo:
			p.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case stroke.CubicTo:
			p.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case stroke.Close:
			p.Close()
		}
	}
	return p
}

// convertLineCap converts LineCap to stroke.LineCap.
func convertLineCap(cap LineCap) stroke.LineCap {
	switch cap {
	case LineCapButt:
		return stroke.LineCapButt
	case LineCapRound:
		return stroke.LineCapRound
	case LineCapSquare:
		return stroke.LineCapSquare
	default:
		return stroke.LineCapButt
	}
}

// convertLineJoin converts LineJoin to stroke.LineJoin.
func convertLineJoin(join LineJoin) stroke.LineJoin {
	switch join {
	case LineJoinMiter:
		return stroke.LineJoinMiter
	case LineJoinRound:
		return stroke.LineJoinRound
	case LineJoinBevel:
		return stroke.LineJoinBevel
	default:
		return stroke.LineJoinMiter
	}
}
