package splitrender

// Component-space constants shared by every component renderer. These are
// load-bearing: visual regression tests compare rendered output byte for
// byte, so the values here must match the reference implementation exactly,
// not merely "close enough".
const (
	// Padding is the standard inset from a component's edge to its content.
	Padding = 0.35

	// DefaultComponentHeight is the height of a single-row component.
	DefaultComponentHeight = 1.0

	// DefaultTextSize is the em size used for a component's primary text.
	DefaultTextSize = 0.8

	// DefaultTextAscent is the ascent reserved above the baseline for
	// DefaultTextSize text.
	DefaultTextAscent = 0.6

	// BothVerticalPaddings is the vertical space left over in a single-row
	// component once DefaultTextSize has been accounted for.
	BothVerticalPaddings = DefaultComponentHeight - DefaultTextSize

	// VerticalPadding is half of BothVerticalPaddings: the gap above and
	// below a row's text within its row.
	VerticalPadding = BothVerticalPaddings / 2

	// TwoRowHeight is the height of a component rendering two stacked rows
	// (a label and a value, or two split rows).
	TwoRowHeight = 2*DefaultTextSize + 2*VerticalPadding

	// SeparatorThickness is the height (vertical layout) or width
	// (horizontal layout) of a Separator component.
	SeparatorThickness = 0.1

	// ThinSeparatorThickness is used between rows within a single component,
	// as opposed to between components.
	ThinSeparatorThickness = 0.05

	// PseudoPixels converts a user-authored pixel size (as found in layout
	// files) into component-space units.
	PseudoPixels = 1.0 / 24.0

	// DefaultVerticalWidth is the assumed aspect-appropriate width used when
	// converting a horizontal layout's extent into a vertical one (or vice
	// versa) across a direction change.
	DefaultVerticalWidth = 11.5

	// columnWidth is the per-column width contribution used by the Splits
	// component's (approximate) width formula. See ComponentWidth.
	columnWidth = 3.0
)

// Baseline y-offsets, in component-space units measured from a row's top.
const (
	// TextAlignTop is the baseline for top-aligned text within a row.
	TextAlignTop = VerticalPadding + DefaultTextAscent

	// TextAlignBottom is the baseline for bottom-aligned text within a row,
	// expressed as a negative offset from the row's bottom edge.
	TextAlignBottom = -(VerticalPadding + BothVerticalPaddings)

	// TextAlignCenter is the baseline for vertically centered text within a
	// row, expressed as an offset from the row's vertical center.
	TextAlignCenter = DefaultTextAscent - DefaultTextSize/2
)

