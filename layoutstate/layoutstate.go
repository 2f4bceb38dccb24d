// Package layoutstate defines the input tree the renderer consumes: a
// declarative description of a timer's visual layout, produced externally
// (the timer's own state machine, split parsers and so on all live outside
// this module's scope — see the package doc comment on splitrender).
//
// Every type here is plain data: no method does I/O, no method can fail.
// The renderer treats a LayoutState as immutable for the duration of a
// single Render call.
package layoutstate

// Direction selects whether components stack top-to-bottom or
// left-to-right.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

// FontStyle selects an upright or italic face.
type FontStyle int

const (
	StyleNormal FontStyle = iota
	StyleItalic
)

// FontSettings names a face and the variable-axis values to apply to it.
// Weight follows the CSS 100-900 scale; Stretch is a percentage (100 =
// normal width). A zero-value FontSettings (empty Family) means "use the
// embedded default for this slot".
type FontSettings struct {
	Family  string
	Style   FontStyle
	Weight  int
	Stretch int
}

// IsEmpty reports whether no explicit font was requested, in which case
// the renderer uses its embedded default for the slot.
func (f FontSettings) IsEmpty() bool { return f.Family == "" }

// Equal reports whether two font settings describe the same face request.
// Used by the renderer's font-change detection.
func (f FontSettings) Equal(o FontSettings) bool {
	return f.Family == o.Family && f.Style == o.Style && f.Weight == o.Weight && f.Stretch == o.Stretch
}

// LayoutState is the root of the input tree.
type LayoutState struct {
	Direction  Direction
	Background Gradient

	// Shared colors every component may fall back to: the default text
	// color, and the colors of the separators drawn between and within
	// components.
	TextColor            Color
	SeparatorsColor      Color
	ThinSeparatorsColor  Color

	// TimerFont, TimesFont and TextFont are the requested font settings for
	// the three font slots the renderer owns. A zero value requests the
	// embedded default.
	TimerFont FontSettings
	TimesFont FontSettings
	TextFont  FontSettings

	Components []ComponentState
}
