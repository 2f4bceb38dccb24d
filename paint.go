package splitrender

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Pattern is the sampling interface the rasterizer-facing code speaks: a
// color per point. Brushes convert to Patterns via PatternFromBrush.
type Pattern interface {
	// ColorAt returns the color at the given point.
	ColorAt(x, y float64) RGBA
}

// SolidPattern represents a solid color pattern.
type SolidPattern struct {
	Color RGBA
}

// NewSolidPattern creates a solid color pattern.
func NewSolidPattern(color RGBA) *SolidPattern {
	return &SolidPattern{Color: color}
}

// ColorAt implements Pattern.
func (p *SolidPattern) ColorAt(x, y float64) RGBA {
	return p.Color
}

// Paint represents the styling information for drawing.
type Paint struct {
	// Brush is the fill or stroke source. It takes precedence over
	// Pattern when both are set.
	Brush Brush

	// Pattern is the legacy fill or stroke pattern, kept in sync by
	// SetBrush for code paths that still speak Pattern.
	Pattern Pattern

	// LineWidth is the width of strokes
	LineWidth float64

	// LineCap is the shape of line endpoints
	LineCap LineCap

	// LineJoin is the shape of line joins
	LineJoin LineJoin

	// MiterLimit is the miter limit for sharp joins
	MiterLimit float64

	// FillRule is the fill rule for paths
	FillRule FillRule

	// Antialias enables anti-aliasing
	Antialias bool
}

// NewPaint creates a new Paint with default values.
func NewPaint() *Paint {
	return &Paint{
		Brush:      Solid(Black),
		Pattern:    NewSolidPattern(Black),
		LineWidth:  1.0,
		LineCap:    LineCapButt,
		LineJoin:   LineJoinMiter,
		MiterLimit: 10.0,
		FillRule:   FillRuleNonZero,
		Antialias:  true,
	}
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	return &Paint{
		Brush:      p.Brush,
		Pattern:    p.Pattern,
		LineWidth:  p.LineWidth,
		LineCap:    p.LineCap,
		LineJoin:   p.LineJoin,
		MiterLimit: p.MiterLimit,
		FillRule:   p.FillRule,
		Antialias:  p.Antialias,
	}
}

// SetBrush sets the paint's brush and keeps the legacy Pattern field in
// sync so rasterizer code that still reads Pattern sees the same source.
func (p *Paint) SetBrush(b Brush) {
	p.Brush = b
	p.Pattern = PatternFromBrush(b)
}

// GetBrush returns the effective brush: Brush if set, otherwise a brush
// view of Pattern, otherwise solid black.
func (p *Paint) GetBrush() Brush {
	if p.Brush != nil {
		return p.Brush
	}
	switch pt := p.Pattern.(type) {
	case *SolidPattern:
		return Solid(pt.Color)
	case Brush:
		return pt
	case nil:
		return Solid(Black)
	default:
		return patternBrush{pattern: pt}
	}
}

// ColorAt samples the effective brush at (x, y).
func (p *Paint) ColorAt(x, y float64) RGBA {
	return p.GetBrush().ColorAt(x, y)
}

// patternBrush adapts an arbitrary Pattern to the Brush interface.
type patternBrush struct {
	pattern Pattern
}

func (patternBrush) brushMarker() {}

func (b patternBrush) ColorAt(x, y float64) RGBA {
	return b.pattern.ColorAt(x, y)
}
