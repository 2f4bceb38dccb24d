package splitrender

import "github.com/gogpu/splitrender/layoutstate"

// ComponentWidth returns a component's width in component-space units, as
// used by a horizontal-layout pass. It is a pure function of the component
// state (see spec's testable property "component_height and component_width
// are pure functions of their component state").
func ComponentWidth(c layoutstate.ComponentState) float64 {
	switch s := c.(type) {
	case layoutstate.BlankSpaceState:
		return s.Size * PseudoPixels
	case layoutstate.DetailedTimerState:
		return 7.0
	case layoutstate.GraphState:
		return 7.0
	case layoutstate.KeyValueState:
		return 6.0
	case layoutstate.SeparatorState:
		return SeparatorThickness
	case layoutstate.SplitsState:
		// The column count used here is hard-coded to 2 regardless of how
		// many columns the state actually carries; the splits state may
		// report more. This mirrors a known approximation in the
		// reference implementation rather than a bug in this port.
		const columnCount = 2.0
		splitWidth := 2.0 + columnCount*columnWidth
		return float64(len(s.Rows)) * splitWidth
	case layoutstate.TextState:
		return 6.0
	case layoutstate.TimerState:
		return 8.25
	case layoutstate.TitleState:
		return 8.0
	default:
		return 0
	}
}

// ComponentHeight returns a component's height in component-space units, as
// used by a vertical-layout pass.
func ComponentHeight(c layoutstate.ComponentState) float64 {
	switch s := c.(type) {
	case layoutstate.BlankSpaceState:
		return s.Size * PseudoPixels
	case layoutstate.DetailedTimerState:
		return 2.5
	case layoutstate.GraphState:
		return s.Height * PseudoPixels
	case layoutstate.KeyValueState:
		return rowHeight(s.DisplayTwoRows)
	case layoutstate.SeparatorState:
		return SeparatorThickness
	case layoutstate.SplitsState:
		total := float64(len(s.Rows)) * rowHeight(s.DisplayTwoRows)
		if s.ColumnLabels != nil {
			total += DefaultComponentHeight
		}
		return total
	case layoutstate.TextState:
		return rowHeight(s.DisplayTwoRows)
	case layoutstate.TimerState:
		return s.Height * PseudoPixels
	case layoutstate.TitleState:
		return TwoRowHeight
	default:
		return 0
	}
}

// rowHeight is the single- or two-row height used by several components.
func rowHeight(twoRows bool) float64 {
	if twoRows {
		return TwoRowHeight
	}
	return DefaultComponentHeight
}
