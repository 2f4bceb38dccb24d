package splitrender

import (
	"strings"

	"github.com/gogpu/splitrender/layoutstate"
	"github.com/gogpu/splitrender/timerfont"
)

// cachedPath is a lazily created backend path that outlives a single
// frame. The renderer owns one for the canonical unit rectangle.
type cachedPath[P any] struct {
	path P
	ok   bool
}

func (c *cachedPath[P]) free(backend interface{ FreePath(P) }) {
	if c.ok {
		backend.FreePath(c.path)
		c.ok = false
	}
}

// RenderContext is the renderer's per-frame drawing surface: the current
// transform plus the backend, fonts and glyph caches every component
// renderer draws through. One RenderContext is threaded through a full
// Render call; component renderers save the transform before a nested
// draw and restore it afterward.
type RenderContext[P any, I any] struct {
	Backend   Backend[P, I]
	Transform Matrix

	TimerFont *timerfont.Font
	TimesFont *timerfont.Font
	TextFont  *timerfont.Font

	TimerGlyphs *GlyphCache[P]
	TimesGlyphs *GlyphCache[P]
	TextGlyphs  *GlyphCache[P]

	rectangle *cachedPath[P]
}

// unitRectangle returns the canonical unit square used as geometry for
// every rectangle fill and image draw, creating it on first use. The path
// is owned by the renderer and lives until the renderer is closed; only
// its transform changes between draws.
func (rc *RenderContext[P, I]) unitRectangle() P {
	if !rc.rectangle.ok {
		rc.rectangle.path = BuildUnitRectangle[P, I](rc.Backend)
		rc.rectangle.ok = true
	}
	return rc.rectangle.path
}

// Save returns the current transform for a caller to Restore after a
// nested component draw.
func (rc *RenderContext[P, I]) Save() Matrix { return rc.Transform }

// Restore resets the transform to a value previously returned by Save.
func (rc *RenderContext[P, I]) Restore(m Matrix) { rc.Transform = m }

// Scale pre-composes a uniform scale onto the current transform.
func (rc *RenderContext[P, I]) Scale(f float64) { rc.Transform = rc.Transform.PreScale(f) }

// ScaleNonUniformX pre-composes an x-only scale, used for aspect-ratio
// correction without affecting the y axis.
func (rc *RenderContext[P, I]) ScaleNonUniformX(f float64) {
	rc.Transform = rc.Transform.PreScaleNonUniformX(f)
}

// Translate pre-composes a translation onto the current transform.
func (rc *RenderContext[P, I]) Translate(x, y float64) {
	rc.Transform = rc.Transform.PreTranslate(x, y)
}

// RenderRectangle fills the box from topLeft to bottomRight with gradient.
// No draw call is issued when gradient is Transparent.
func (rc *RenderContext[P, I]) RenderRectangle(topLeft, bottomRight Point, gradient layoutstate.Gradient) {
	shader, ok := DecodeShader(gradient)
	if !ok {
		return
	}
	rc.fillRectShader(topLeft, bottomRight, shader)
}

// fillRectShader is RenderRectangle's Shader-direct counterpart, used by
// component renderers that already hold a resolved Shader (a row
// highlight, a separator line, a graph grid line) rather than a
// layoutstate.Gradient.
func (rc *RenderContext[P, I]) fillRectShader(topLeft, bottomRight Point, shader Shader) {
	w := bottomRight.X - topLeft.X
	h := bottomRight.Y - topLeft.Y
	m := rc.Transform.PreTranslate(topLeft.X, topLeft.Y).PreScaleXY(w, h)
	rc.Backend.RenderFillPath(rc.unitRectangle(), shader, m)
}

// fillPath fills a component-built path with a solid color under the
// current transform.
func (rc *RenderContext[P, I]) fillPath(path P, color layoutstate.Color) {
	rc.Backend.RenderFillPath(path, SolidColor(rgbaFromState(color)), rc.Transform)
}

// strokePath strokes a component-built path at the given width (in
// path-local units) with a solid color under the current transform.
func (rc *RenderContext[P, I]) strokePath(path P, color layoutstate.Color, strokeWidth float64) {
	rc.Backend.RenderStrokePath(path, strokeWidth, rgbaFromState(color), rc.Transform)
}

// fillCircle draws a filled circle of radius r centered at (cx, cy), used
// by the Graph component's per-point markers. The path is built and freed
// per call since, unlike the cached unit rectangle, a circle's radius
// varies by caller.
func (rc *RenderContext[P, I]) fillCircle(cx, cy, r float64, color layoutstate.Color) {
	path := BuildCircle[P, I](rc.Backend, cx, cy, r)
	rc.fillPath(path, color)
	rc.Backend.FreePath(path)
}

// RenderIcon centers icon inside the box [pos, pos+size], letterboxing
// along whichever axis is longer so the icon's own aspect ratio is
// preserved, then draws it as a textured unit rectangle.
func (rc *RenderContext[P, I]) RenderIcon(pos, size Point, icon Icon[I]) {
	aspect := icon.AspectRatio
	if aspect <= 0 {
		aspect = 1
	}

	x, y := pos.X, pos.Y
	w, h := size.X, size.Y

	boxAspect := 1.0
	if h != 0 {
		boxAspect = w / h
	}
	aspectDiff := boxAspect / aspect

	if aspectDiff > 1 {
		newW := w / aspectDiff
		x += 0.5 * (w - newW)
		w = newW
	} else if aspectDiff < 1 {
		newH := h * aspectDiff
		y += 0.5 * (h - newH)
		h = newH
	}

	m := rc.Transform.PreTranslate(x, y).PreScaleXY(w, h)
	rc.Backend.RenderImage(icon.Image, rc.unitRectangle(), m)
}

// scaledFont returns font scaled to size, along with ok=false when font
// is nil. A nil font can only happen when a font failed to parse at load
// time; callers treat that the same as any other font-load failure:
// degrade to no-op rather than panic.
func scaledFont(font *timerfont.Font, size float64) (timerfont.ScaledFont, bool) {
	if font == nil {
		return timerfont.ScaledFont{}, false
	}
	return font.Scale(size), true
}

// drawGlyphRun draws every glyph placed by an alignment pass. Cached
// glyph paths are in raw font units, so each draw scales by the font's
// per-unit factor at this text size and translates to the glyph's shaped
// pen position. A layer with a baked-in palette color (a COLR tint)
// overrides shader for that layer only; an untinted layer inherits the
// caller's shader.
func (rc *RenderContext[P, I]) drawGlyphRun(cache *GlyphCache[P], sf timerfont.ScaledFont, glyphs []timerfont.PositionedGlyph, shader Shader) {
	unitScale := sf.ScaleFactor()
	for _, g := range glyphs {
		entry := LookupOrInsert(cache, rc.Backend, sf.Font(), g.GID)
		base := rc.Transform.PreTranslate(g.X, g.Y).PreScale(unitScale)
		for _, layer := range entry.Layers {
			s := shader
			if layer.Color != nil {
				s = SolidColor(*layer.Color)
			}
			rc.Backend.RenderFillPath(layer.Path, s, base)
		}
	}
}

// RenderTextEllipsis draws str left-aligned starting at pos with shader,
// ellipsizing if the shaped width would cross maxX. Returns the cursor x
// position after the last glyph drawn.
func (rc *RenderContext[P, I]) RenderTextEllipsis(str string, pos Point, scale float64, shader Shader, maxX float64) float64 {
	sf, ok := scaledFont(rc.TextFont, scale)
	if !ok {
		return pos.X
	}
	glyphs := timerfont.ShapeGlyphs(sf, strings.TrimSpace(str))
	cursor := timerfont.Cursor{X: pos.X, Y: pos.Y}
	placed := glyphs.LeftAligned(&cursor, maxX)
	rc.drawGlyphRun(rc.TextGlyphs, sf, placed, shader)
	return cursor.X
}

// RenderTextRightAlign draws str so its right edge lands at pos.X,
// walking glyphs in reverse order. Returns the cursor x position (the
// left edge of the drawn run). Right-aligned text never ellipsizes; it is
// allowed to overflow to the left.
func (rc *RenderContext[P, I]) RenderTextRightAlign(str string, pos Point, scale float64, shader Shader) float64 {
	sf, ok := scaledFont(rc.TextFont, scale)
	if !ok {
		return pos.X
	}
	glyphs := timerfont.ShapeGlyphs(sf, strings.TrimSpace(str))
	cursor := timerfont.Cursor{X: pos.X, Y: pos.Y}
	placed := glyphs.RightAligned(&cursor)
	rc.drawGlyphRun(rc.TextGlyphs, sf, placed, shader)
	return cursor.X
}

// RenderTextCentered centers str's horizontal midpoint at pos.X, clamped
// into [minX, maxX-ε], falling back to the left-aligned ellipsis behavior
// if the run still doesn't fit after clamping.
func (rc *RenderContext[P, I]) RenderTextCentered(str string, minX, maxX float64, pos Point, scale float64, shader Shader) {
	sf, ok := scaledFont(rc.TextFont, scale)
	if !ok {
		return
	}
	glyphs := timerfont.ShapeGlyphs(sf, strings.TrimSpace(str))
	cursor := timerfont.Cursor{X: pos.X, Y: pos.Y}
	placed := glyphs.Centered(&cursor, minX, maxX)
	rc.drawGlyphRun(rc.TextGlyphs, sf, placed, shader)
}

// RenderTextAlign dispatches to RenderTextCentered or RenderTextEllipsis
// depending on centered.
func (rc *RenderContext[P, I]) RenderTextAlign(str string, minX, maxX float64, pos Point, scale float64, centered bool, shader Shader) {
	if centered {
		rc.RenderTextCentered(str, minX, maxX, pos, scale, shader)
		return
	}
	rc.RenderTextEllipsis(str, pos, scale, shader, maxX)
}

// RenderNumbers draws str right-aligned with tabular-number shaping using
// the times font. Returns the cursor x position after drawing (the left
// edge of the run).
func (rc *RenderContext[P, I]) RenderNumbers(str string, pos Point, scale float64, shader Shader) float64 {
	sf, ok := scaledFont(rc.TimesFont, scale)
	if !ok {
		return pos.X
	}
	glyphs := timerfont.ShapeTabularGlyphs(sf, strings.TrimSpace(str))
	cursor := timerfont.Cursor{X: pos.X, Y: pos.Y}
	placed := glyphs.TabularNumbers(&cursor)
	rc.drawGlyphRun(rc.TimesGlyphs, sf, placed, shader)
	return cursor.X
}

// RenderTimer is RenderNumbers' counterpart for the primary clock
// display: same tabular-number alignment, but drawn with the timer font.
func (rc *RenderContext[P, I]) RenderTimer(str string, pos Point, scale float64, shader Shader) float64 {
	sf, ok := scaledFont(rc.TimerFont, scale)
	if !ok {
		return pos.X
	}
	glyphs := timerfont.ShapeTabularGlyphs(sf, strings.TrimSpace(str))
	cursor := timerfont.Cursor{X: pos.X, Y: pos.Y}
	placed := glyphs.TabularNumbers(&cursor)
	rc.drawGlyphRun(rc.TimerGlyphs, sf, placed, shader)
	return cursor.X
}

// MeasureText returns str's shaped advance at scale using the text font,
// without drawing anything.
func (rc *RenderContext[P, I]) MeasureText(str string, scale float64) float64 {
	sf, ok := scaledFont(rc.TextFont, scale)
	if !ok {
		return 0
	}
	return timerfont.ShapeGlyphs(sf, strings.TrimSpace(str)).Width()
}

// MeasureNumbers returns str's width under the tabular alignment pass
// using the times font, without drawing anything. This runs the same
// digit-widening pass as RenderNumbers rather than summing the shaped
// advances, so the measurement matches what would actually be drawn.
func (rc *RenderContext[P, I]) MeasureNumbers(str string, scale float64) float64 {
	sf, ok := scaledFont(rc.TimesFont, scale)
	if !ok {
		return 0
	}
	glyphs := timerfont.ShapeTabularGlyphs(sf, strings.TrimSpace(str))
	cursor := timerfont.Cursor{}
	glyphs.TabularNumbers(&cursor)
	return -cursor.X
}

// ChooseAbbreviation returns the widest of candidates whose measured
// width fits within maxWidth. If none fits, the overall widest candidate
// is returned so the caller can ellipsize it. Ties are broken by
// iteration order (the earlier candidate wins).
func (rc *RenderContext[P, I]) ChooseAbbreviation(candidates []string, scale float64, maxWidth float64) string {
	if len(candidates) == 0 {
		return ""
	}

	first := candidates[0]
	firstWidth := rc.MeasureText(first, scale)

	totalLongest, totalLongestWidth := first, firstWidth
	withinLongest, withinLongestWidth := "", 0.0
	haveWithin := false
	if firstWidth <= maxWidth {
		withinLongest, withinLongestWidth = first, firstWidth
		haveWithin = true
	}

	for _, c := range candidates[1:] {
		width := rc.MeasureText(c, scale)
		if width <= maxWidth && (!haveWithin || width > withinLongestWidth) {
			withinLongest, withinLongestWidth = c, width
			haveWithin = true
		}
		if width > totalLongestWidth {
			totalLongest, totalLongestWidth = c, width
		}
	}

	if !haveWithin {
		return totalLongest
	}
	return withinLongest
}

// RenderKeyValueComponent draws value right-aligned at width-Padding with
// tabular numbers, then picks the widest of key and its abbreviations
// that fits the remaining horizontal budget and draws it left-aligned at
// the top. In two-row mode the key gets the full width; in single-row
// mode it stops where the value begins.
func (rc *RenderContext[P, I]) RenderKeyValueComponent(key string, abbreviations []string, value string, width, height float64, keyColor, valueColor layoutstate.Color, displayTwoRows bool) {
	leftOfValueX := rc.RenderNumbers(
		value,
		Point{X: width - Padding, Y: height + TextAlignBottom},
		DefaultTextSize,
		SolidColor(rgbaFromState(valueColor)),
	)

	endX := leftOfValueX
	if displayTwoRows {
		endX = width
	}

	candidates := make([]string, 0, 1+len(abbreviations))
	candidates = append(candidates, key)
	candidates = append(candidates, abbreviations...)
	chosen := rc.ChooseAbbreviation(candidates, DefaultTextSize, endX-2*Padding)

	rc.RenderTextEllipsis(
		chosen,
		Point{X: Padding, Y: TextAlignTop},
		DefaultTextSize,
		SolidColor(rgbaFromState(keyColor)),
		endX-Padding,
	)
}
