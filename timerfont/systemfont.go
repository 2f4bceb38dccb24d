package timerfont

import (
	"errors"
	"os"

	gotextfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
)

// errSystemFontNotFound is returned when no installed font matches the
// requested family. Callers fall back to the embedded default.
var errSystemFontNotFound = errors.New("timerfont: no system font matched the requested family")

// SystemFontsAvailable reports whether LoadSystemFont can be used in this
// process. Go has no Cargo-style conditional compilation feature, so this
// is a plain flag rather than a build tag: callers that want to skip the
// (comparatively expensive) system font scan entirely can check it first,
// but calling LoadSystemFont directly is always safe — on any failure it
// returns an error for the caller to fall back to the embedded default.
const SystemFontsAvailable = true

// LoadSystemFont looks up an installed font by family/style/weight/stretch
// and loads it the same way NewFontFromBytes would.
func LoadSystemFont(family string, style Style, weight int, stretch int) (*Font, error) {
	fm := fontscan.NewFontMap(nil)
	if err := fm.UseSystemFonts(systemFontCacheDir()); err != nil {
		return nil, err
	}

	aspect := gotextfont.Aspect{
		Weight:  gotextfont.Weight(weight),
		Stretch: gotextfont.Stretch(float32(stretch) / 100),
	}
	if style == StyleItalic {
		aspect.Style = gotextfont.StyleItalic
	}

	fm.SetQuery(fontscan.Query{Families: []string{family}, Aspect: aspect})

	face := fm.ResolveFace('A')
	if face == nil {
		return nil, errSystemFontNotFound
	}

	loc := fm.FontLocation(face.Font)
	data, err := os.ReadFile(loc.File)
	if err != nil {
		return nil, err
	}

	return NewFontFromBytes(data, 0, style, weight, stretch)
}

// systemFontCacheDir returns the directory fontscan should cache its
// system font index in. An empty string tells UseSystemFonts to pick the
// OS cache directory itself.
func systemFontCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return dir
}
