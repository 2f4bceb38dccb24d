package layoutstate

// ComponentState is the tagged-union interface every component variant
// implements. The renderer's component dispatch switches on the concrete
// type via a type switch, matching the data-oriented nature of the
// original tagged enum.
type ComponentState interface {
	isComponentState()
}

// BlankSpaceState reserves size pseudo-pixels of empty space.
type BlankSpaceState struct {
	Background Gradient
	Size       float64
}

func (BlankSpaceState) isComponentState() {}

// TimerInner is the shared shape of a timer readout: the whole-unit part,
// the fractional part rendered at a reduced size, and the semantic color
// the timer currently has (ahead, behind, personal best and so on, already
// resolved to a concrete color by the state producer).
type TimerInner struct {
	Time     string
	Fraction string
	Color    Color
}

// DetailedTimerComparison is one of the up-to-two comparison rows shown
// next to the main time of a DetailedTimer.
type DetailedTimerComparison struct {
	Name string
	Time string
}

// DetailedTimerState shows a primary timer, a segment timer, and optional
// comparison rows, segment name and segment icon.
type DetailedTimerState struct {
	Background   Gradient
	Timer        TimerInner
	SegmentTimer TimerInner
	Comparison1  *DetailedTimerComparison
	Comparison2  *DetailedTimerComparison
	SegmentName  string
	Icon         []byte // encoded raster image, nil if none

	ComparisonNamesColor Color
	ComparisonTimesColor Color
	SegmentNameColor     Color
}

func (DetailedTimerState) isComponentState() {}

// GraphPoint is one sample of the delta graph.
type GraphPoint struct {
	X, Y          float64
	IsBestSegment bool
}

// GraphState draws a history graph of split deltas. Point coordinates are
// normalized: x in [0,1] across the unscaled width, y in [0,1] top to
// bottom, with Middle being the y of the zero-delta line.
type GraphState struct {
	Points            []GraphPoint
	Middle            float64
	IsLiveDeltaActive bool
	Height            float64 // pseudo-pixel height for vertical layouts

	HorizontalGridLines []float64
	VerticalGridLines   []float64

	TopBackgroundColor    Color
	BottomBackgroundColor Color
	GridLinesColor        Color
	PartialFillColor      Color
	CompleteFillColor     Color
	GraphLinesColor       Color
	BestSegmentColor      Color
}

func (GraphState) isComponentState() {}

// KeyValueState renders a label on the left and a value on the right, e.g.
// "Best Possible Time: 1:23:45".
type KeyValueState struct {
	Background     Gradient
	Key            string
	Abbreviations  []string // shorter fallback candidates for Key
	Value          string
	KeyColor       Color
	ValueColor     Color
	DisplayTwoRows bool
}

func (KeyValueState) isComponentState() {}

// SeparatorState draws a dividing line between components.
type SeparatorState struct{}

func (SeparatorState) isComponentState() {}

// SplitColumn is one value cell of a split row, with its resolved semantic
// color (ahead/behind gaining/losing, best segment, and so on).
type SplitColumn struct {
	Value string
	Color Color
}

// SplitRow is one row of a Splits component. Columns are ordered
// right-to-left visually: Columns[0] is the rightmost column.
type SplitRow struct {
	Name           string
	Columns        []SplitColumn
	Icon           []byte
	IsCurrentSplit bool
}

// SplitsState lists the run's segments.
type SplitsState struct {
	Background           Gradient
	Rows                 []SplitRow
	ColumnLabels         []string // nil if column headers are hidden
	IconsVisible         bool
	ShowThinSeparators   bool
	SeparatorLastSplit   bool
	DisplayTwoRows       bool
	CurrentSplitGradient Gradient
}

func (SplitsState) isComponentState() {}

// TextState renders either one centered text or a left/right pair,
// optionally stacked as two rows.
type TextState struct {
	Background     Gradient
	Left           string // the centered text when IsSplit is false
	Right          string // unused when IsSplit is false
	IsSplit        bool
	DisplayTwoRows bool

	// LeftCenterColor and RightColor are the resolved per-side text
	// colors. The state producer folds "no override configured" into the
	// layout's shared text color, so the renderer only ever sees concrete
	// colors here.
	LeftCenterColor Color
	RightColor      Color
}

func (TextState) isComponentState() {}

// TimerState is the large primary clock display.
type TimerState struct {
	Background Gradient
	Time       string
	Fraction   string
	Color      Color
	// Height is the component's configured row height in pseudo-pixels,
	// used by vertical layouts.
	Height float64
}

func (TimerState) isComponentState() {}

// TitleState shows game/category metadata, attempt counts and an icon.
type TitleState struct {
	Background   Gradient
	Line1        string
	Line2        string // empty when the title is a single line
	AttemptCount int
	FinishedRuns int
	Icon         []byte
	TextColor    Color
	IsCentered   bool

	ShowFinishedRunsCount bool
	ShowAttemptCount      bool
}

func (TitleState) isComponentState() {}
