// Package timerfont implements the font wrapper and alignment strategies
// the renderer draws text with: loading a face, applying variable axes,
// shaping runs (including tabular-number alignment), and extracting glyph
// outlines for the renderer's glyph caches. It sits on top of package text
// (parsing, outline extraction, color-font detection) and
// go-text/typesetting (shaping).
package timerfont

import (
	"bytes"
	"math"

	gotextfont "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/splitrender/text"
)

// Style selects an upright or italic face, mirroring layoutstate.FontStyle
// without this package depending on layoutstate.
type Style int

const (
	StyleNormal Style = iota
	StyleItalic
)

// Font owns a parsed face and the three variable-axis values requested by
// the caller. It holds its own copy of the font bytes when loaded from
// memory, so callers may discard their buffer after NewFontFromBytes
// returns.
type Font struct {
	source *text.FontSource // for outline extraction, metrics, color-table queries
	shape  *gotextfont.Face // for shaping with variable axes applied

	extractor *text.OutlineExtractor

	// The design scale factor is 1 / face height. A text size of 1.0 maps
	// one full font height (ascender minus descender) onto one component
	// unit, which is what makes the renderer's 0.8 text size fill 80% of
	// a default component row.
	scaleFactor float64
	upem        float64
	heightUnits float64

	ital, wght, wdth float32
}

// NewFontFromBytes loads a single-face font file from data, applying the
// three variable-axis overrides. faceIndex is accepted but not used; font
// collections are not handled. If the face carries no such axis, the value is recorded but
// has no effect — downstream code never needs to know which axes a face
// actually supports.
func NewFontFromBytes(data []byte, faceIndex int, style Style, weight int, stretch int) (*Font, error) {
	source, err := text.NewFontSource(data)
	if err != nil {
		return nil, err
	}

	shapeFace, err := gotextfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	_ = faceIndex // font collections are not exercised by the embedded defaults

	ital := float32(0)
	if style == StyleItalic {
		ital = 1
	}
	wght := float32(weight)
	wdth := float32(stretch)

	shapeFace.SetVariations([]gotextfont.Variation{
		{Tag: ot.MustNewTag("ital"), Value: ital},
		{Tag: ot.MustNewTag("wght"), Value: wght},
		{Tag: ot.MustNewTag("wdth"), Value: wdth},
	})

	parsed := source.Parsed()
	upem := float64(parsed.UnitsPerEm())
	if upem <= 0 {
		upem = 1000
	}

	// Metrics queried at ppem == upem come back in raw font units. The
	// descent's sign convention varies by parser backend, so fold it in
	// by magnitude.
	m := parsed.Metrics(upem)
	height := m.Ascent + math.Abs(m.Descent)
	if height <= 0 {
		height = upem
	}

	return &Font{
		source:      source,
		shape:       shapeFace,
		extractor:   text.NewOutlineExtractor(),
		scaleFactor: 1 / height,
		upem:        upem,
		heightUnits: height,
		ital:        ital, wght: wght, wdth: wdth,
	}, nil
}

// ScaleFactor is 1 / face height in font units, the font's intrinsic
// design scale.
func (f *Font) ScaleFactor() float64 { return f.scaleFactor }

// Parsed exposes the underlying text.ParsedFont for metrics queries.
func (f *Font) Parsed() text.ParsedFont { return f.source.Parsed() }

// Outline extracts gid's outline in raw font units, y-down. The sfnt
// loader hands back screen-oriented coordinates already, so callers never
// see font-space y-up geometry.
func (f *Font) Outline(gid text.GlyphID) (*text.GlyphOutline, error) {
	return f.extractor.ExtractOutline(f.source.Parsed(), gid, f.upem)
}

// ColorFont returns the font's color-table walker, or nil, false if the
// face has no color tables (the common case).
func (f *Font) ColorFont() (text.ColorFont, bool) {
	cf, ok := f.source.Parsed().(text.ColorFont)
	if !ok || !cf.HasColorTables() {
		return nil, false
	}
	return cf, true
}

// ScaledFont is a Font view at a particular text size. A text size of 1.0
// corresponds to one font height in component units.
//
// Shaping always runs in raw font units (the shaper is handed a size equal
// to the face's units per em) so its fixed-point output stays exact; the scale is
// applied as a float multiply when glyphs are positioned. Shaping at the
// component-space size directly would quantize advances to 1/64 of a
// component unit, which is visible at the sizes this renderer draws at.
type ScaledFont struct {
	font *Font
	// scale converts raw font units to component units: size * scaleFactor.
	scale float64
	size  float64
}

// Scale produces a ScaledFont for the given text size.
func (f *Font) Scale(size float64) ScaledFont {
	return ScaledFont{
		font:  f,
		scale: size * f.scaleFactor,
		size:  size,
	}
}

// Font returns the underlying Font.
func (s ScaledFont) Font() *Font { return s.font }

// ScaleFactor is the factor converting raw font units to component units
// at this text size. Glyph outlines are cached in raw font units, so this
// is also the uniform scale a draw transform applies per glyph.
func (s ScaledFont) ScaleFactor() float64 { return s.scale }

// GlyphXAdvance returns the horizontal advance, in component units, of a
// single glyph at this scale. Querying at ppem == upem yields the advance
// in raw font units, which the scale then converts.
func (s ScaledFont) GlyphXAdvance(gid text.GlyphID) float64 {
	return s.font.source.Parsed().GlyphAdvance(uint16(gid), s.font.upem) * s.scale
}

// GlyphIndex returns the glyph id for r, or 0 if the face has no glyph
// for it.
func (s ScaledFont) GlyphIndex(r rune) text.GlyphID {
	return text.GlyphID(s.font.source.Parsed().GlyphIndex(r))
}

// detectScript inspects the runes and returns the script of the first
// non-whitespace one, defaulting to Latin for empty or all-space runs.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// shapeInput builds the go-text shaping.Input shared by Shape and
// ShapeTabularNumbers.
func (s ScaledFont) shapeInput(runes []rune, features []shaping.FontFeature) shaping.Input {
	return shaping.Input{
		Text:         runes,
		RunStart:     0,
		RunEnd:       len(runes),
		Direction:    0, // LTR; timer layouts are not bidi-aware
		Face:         s.font.shape,
		Size:         floatToFixed(s.font.upem),
		Script:       detectScript(runes),
		Language:     language.NewLanguage("en"),
		FontFeatures: features,
	}
}

// Shape runs default shaping: ligatures and kerning enabled, no feature
// overrides.
func (s ScaledFont) Shape(str string) []shaping.Glyph {
	runes := []rune(str)
	shaper := shaping.HarfbuzzShaper{}
	return shaper.Shape(s.shapeInput(runes, nil)).Glyphs
}

// tnumTag is the OpenType tabular-figures feature tag.
var tnumTag = ot.MustNewTag("tnum")

// ShapeTabularNumbers enables the tnum OpenType feature if the face
// supports it. tnum can neither be queried nor fully trusted, so the
// tabular alignment pass in Glyphs.TabularNumbers enforces equal digit
// advances regardless. Kerning is left enabled; whether disabling it
// alongside tnum improves output is unresolved upstream.
func (s ScaledFont) ShapeTabularNumbers(str string) []shaping.Glyph {
	runes := []rune(str)
	shaper := shaping.HarfbuzzShaper{}
	features := []shaping.FontFeature{{Tag: tnumTag, Value: 1}}
	return shaper.Shape(s.shapeInput(runes, features)).Glyphs
}

func floatToFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(v * 64) }
