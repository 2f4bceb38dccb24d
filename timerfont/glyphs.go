package timerfont

import (
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/splitrender/text"
)

// PositionedGlyph is a single glyph placed at an absolute pen position by
// one of Glyphs' alignment strategies. Positions are in component units.
type PositionedGlyph struct {
	GID  text.GlyphID
	X, Y float64
}

// Glyphs is the result of shaping a run of text at a particular
// ScaledFont. It offers the alignment strategies the renderer's drawing
// primitives are built from: left-aligned with ellipsis, right-aligned,
// centered with clamping, and tabular numbers.
//
// The shaped glyph data is in raw font units; every alignment pass
// multiplies through the font's scale as it places glyphs.
type Glyphs struct {
	font   ScaledFont
	glyphs []shaping.Glyph
}

// ShapeGlyphs shapes str with default shaping (ligatures and kerning on).
func ShapeGlyphs(font ScaledFont, str string) Glyphs {
	return Glyphs{font: font, glyphs: font.Shape(str)}
}

// ShapeTabularGlyphs shapes str enabling the tnum OpenType feature.
func ShapeTabularGlyphs(font ScaledFont, str string) Glyphs {
	return Glyphs{font: font, glyphs: font.ShapeTabularNumbers(str)}
}

// sc converts a shaper fixed-point value (raw font units) to component
// units at this run's scale.
func (g Glyphs) sc(v fixed.Int26_6) float64 {
	return float64(v) / 64 * g.font.scale
}

// Width is the total horizontal advance of the shaped run, in component
// units.
func (g Glyphs) Width() float64 {
	var w fixed.Int26_6
	for _, gl := range g.glyphs {
		w += gl.XAdvance
	}
	return g.sc(w)
}

// LeftAligned lays glyphs out left to right starting at cursor, advancing
// cursor.X by the consumed width. If the run's width would carry the
// cursor past maxX, trailing glyphs are trimmed and an ellipsis glyph is
// appended so the result never draws past maxX.
func (g Glyphs) LeftAligned(cursor *Cursor, maxX float64) []PositionedGlyph {
	total := g.Width()
	endsAtX := cursor.X + total

	if endsAtX <= maxX || len(g.glyphs) == 0 {
		out := make([]PositionedGlyph, len(g.glyphs))
		x := cursor.X
		for i, gl := range g.glyphs {
			out[i] = PositionedGlyph{
				GID: text.GlyphID(gl.GlyphID),
				X:   x + g.sc(gl.XOffset),
				Y:   cursor.Y + g.sc(gl.YOffset),
			}
			x += g.sc(gl.XAdvance)
		}
		cursor.X = x
		return out
	}

	ellipsis := ShapeGlyphs(g.font, "…")
	ellipsisAdvance := ellipsis.Width()

	widthToCut := endsAtX - maxX + ellipsisAdvance

	cutCount := 0
	actuallyCutOff := 0.0
	for i := len(g.glyphs) - 1; i >= 0 && actuallyCutOff < widthToCut; i-- {
		actuallyCutOff += g.sc(g.glyphs[i].XAdvance)
		cutCount++
	}

	kept := g.glyphs[:len(g.glyphs)-cutCount]
	out := make([]PositionedGlyph, 0, len(kept)+len(ellipsis.glyphs))
	x := cursor.X
	for _, gl := range kept {
		out = append(out, PositionedGlyph{
			GID: text.GlyphID(gl.GlyphID),
			X:   x + g.sc(gl.XOffset),
			Y:   cursor.Y + g.sc(gl.YOffset),
		})
		x += g.sc(gl.XAdvance)
	}

	ellipsisX := endsAtX - actuallyCutOff
	for _, gl := range ellipsis.glyphs {
		out = append(out, PositionedGlyph{
			GID: text.GlyphID(gl.GlyphID),
			X:   ellipsisX + g.sc(gl.XOffset),
			Y:   cursor.Y + g.sc(gl.YOffset),
		})
		ellipsisX += g.sc(gl.XAdvance)
	}
	// The cursor stops after the last kept glyph; the appended ellipsis
	// does not advance it. Callers that chain further content off the
	// returned position line up with where the trimmed text ended.
	cursor.X = x
	return out
}

// RightAligned walks glyphs in reverse, decrementing cursor.X by each
// glyph's advance before placing it. Text that overflows to the left of
// the caller's intended bound is allowed to overflow — right-aligned
// numeric displays never ellipsize.
func (g Glyphs) RightAligned(cursor *Cursor) []PositionedGlyph {
	out := make([]PositionedGlyph, len(g.glyphs))
	x, y := cursor.X, cursor.Y
	for i := len(g.glyphs) - 1; i >= 0; i-- {
		gl := g.glyphs[i]
		x -= g.sc(gl.XAdvance)
		y -= g.sc(gl.YAdvance)
		out[i] = PositionedGlyph{
			GID: text.GlyphID(gl.GlyphID),
			X:   x + g.sc(gl.XOffset),
			Y:   y + g.sc(gl.YOffset),
		}
	}
	cursor.X = x
	cursor.Y = y
	return out
}

// floatEpsilon5 is 5 * float64 machine epsilon. Load-bearing: tighter
// margins produce spurious ellipsis at specific resolutions because of
// rounding in the aspect-ratio scaling step.
const floatEpsilon5 = 5 * 2.220446049250313e-16

// Centered places the run's horizontal center at cursor.X, then clamps
// the result into [minX, maxX - width - ε] before delegating to
// LeftAligned (whose own maxX check becomes the ellipsis fallback for
// runs too wide to fit even after clamping).
func (g Glyphs) Centered(cursor *Cursor, minX, maxX float64) []PositionedGlyph {
	width := g.Width()
	target := cursor.X - width/2

	if target+width >= maxX {
		target -= target + width - maxX + floatEpsilon5
	}
	if target < minX {
		target = minX
	}

	cursor.X = target
	return g.LeftAligned(cursor, maxX)
}

// digitGlyph is a cached mapping from glyph id to "is this glyph a
// decimal digit" plus the widest of the ten digits' advances at this
// scale.
type digitGlyph struct {
	isDigit    map[text.GlyphID]bool
	maxAdvance float64
}

func (s ScaledFont) digitMetrics() digitGlyph {
	dg := digitGlyph{isDigit: make(map[text.GlyphID]bool, 10)}
	for d := '0'; d <= '9'; d++ {
		gid := s.GlyphIndex(d)
		if gid == 0 {
			continue
		}
		dg.isDigit[gid] = true
		if adv := s.GlyphXAdvance(gid); adv > dg.maxAdvance {
			dg.maxAdvance = adv
		}
	}
	return dg
}

// TabularNumbers lays glyphs out right to left like RightAligned, but
// every digit glyph receives the same horizontal advance —
// max(advance(0..9)) — centered within that slot, regardless of what
// tnum shaping actually produced. tnum cannot be trusted on every face,
// so this pass is the authoritative source of digit alignment.
func (g Glyphs) TabularNumbers(cursor *Cursor) []PositionedGlyph {
	dg := g.font.digitMetrics()
	out := make([]PositionedGlyph, len(g.glyphs))
	x, y := cursor.X, cursor.Y

	for i := len(g.glyphs) - 1; i >= 0; i-- {
		gl := g.glyphs[i]
		gid := text.GlyphID(gl.GlyphID)
		adv := g.sc(gl.XAdvance)

		var gx float64
		if dg.isDigit[gid] && dg.maxAdvance > 0 {
			widerBy := dg.maxAdvance - adv
			x -= dg.maxAdvance
			gx = x + widerBy/2 + g.sc(gl.XOffset)
		} else {
			x -= adv
			gx = x + g.sc(gl.XOffset)
		}

		y -= g.sc(gl.YAdvance)
		out[i] = PositionedGlyph{
			GID: gid,
			X:   gx,
			Y:   y + g.sc(gl.YOffset),
		}
	}

	cursor.X = x
	cursor.Y = y
	return out
}
