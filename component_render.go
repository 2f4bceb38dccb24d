package splitrender

import (
	"strconv"

	"github.com/gogpu/splitrender/layoutstate"
)

// verticalPadding is the vertical inset used inside a row of the given
// height: 10% of the height, capped at the horizontal padding so very
// tall rows don't push their content into the middle.
func verticalPadding(height float64) float64 {
	p := VerticalPadding * height
	if p > Padding {
		return Padding
	}
	return p
}

func solid(c layoutstate.Color) Shader {
	return SolidColor(rgbaFromState(c))
}

// renderComponent dispatches one component state to its renderer. dim is
// the component's [width, height] in component space; the context's
// transform is already at the component's origin.
func renderComponent[P any, I any](rc *RenderContext[P, I], dim Point, c layoutstate.ComponentState, state *layoutstate.LayoutState, icons *IconCache[P, I]) {
	switch s := c.(type) {
	case layoutstate.BlankSpaceState:
		renderBlankSpace(rc, dim, s)
	case layoutstate.DetailedTimerState:
		renderDetailedTimer(rc, dim, s, icons)
	case layoutstate.GraphState:
		renderGraph(rc, dim, s)
	case layoutstate.KeyValueState:
		renderKeyValue(rc, dim, s)
	case layoutstate.SeparatorState:
		renderSeparator(rc, dim, state)
	case layoutstate.SplitsState:
		renderSplits(rc, dim, s, state, icons)
	case layoutstate.TextState:
		renderText(rc, dim, s)
	case layoutstate.TimerState:
		renderTimer(rc, dim, s)
	case layoutstate.TitleState:
		renderTitle(rc, dim, s, icons)
	}
}

func renderBlankSpace[P any, I any](rc *RenderContext[P, I], dim Point, s layoutstate.BlankSpaceState) {
	rc.RenderRectangle(Point{}, dim, s.Background)
}

func renderSeparator[P any, I any](rc *RenderContext[P, I], dim Point, state *layoutstate.LayoutState) {
	rc.fillRectShader(Point{}, dim, solid(state.SeparatorsColor))
}

func renderKeyValue[P any, I any](rc *RenderContext[P, I], dim Point, s layoutstate.KeyValueState) {
	rc.RenderRectangle(Point{}, dim, s.Background)
	rc.RenderKeyValueComponent(s.Key, s.Abbreviations, s.Value, dim.X, dim.Y, s.KeyColor, s.ValueColor, s.DisplayTwoRows)
}

func renderText[P any, I any](rc *RenderContext[P, I], dim Point, s layoutstate.TextState) {
	rc.RenderRectangle(Point{}, dim, s.Background)

	if !s.IsSplit {
		rc.RenderTextCentered(
			s.Left,
			Padding, dim.X-Padding,
			Point{X: 0.5 * dim.X, Y: 0.5*dim.Y + TextAlignCenter},
			DefaultTextSize,
			solid(s.LeftCenterColor),
		)
		return
	}

	leftOfRightX := rc.RenderTextRightAlign(
		s.Right,
		Point{X: dim.X - Padding, Y: dim.Y + TextAlignBottom},
		DefaultTextSize,
		solid(s.RightColor),
	)

	endX := leftOfRightX
	if s.DisplayTwoRows {
		endX = dim.X
	}
	rc.RenderTextEllipsis(
		s.Left,
		Point{X: Padding, Y: TextAlignTop},
		DefaultTextSize,
		solid(s.LeftCenterColor),
		endX-Padding,
	)
}

// timerShader derives the vertical brightness gradient the clock text is
// drawn with from the timer's resolved semantic color: slightly brighter
// at the top, slightly darker at the bottom.
func timerShader(c layoutstate.Color) Shader {
	scaled := func(f float64) RGBA {
		clamp := func(v float64) float64 {
			if v > 1 {
				return 1
			}
			return v
		}
		return RGBA{R: clamp(c.R * f), G: clamp(c.G * f), B: clamp(c.B * f), A: c.A}
	}
	return VerticalGradient(scaled(1.13), scaled(0.87))
}

// renderTimerText draws a time plus its fractional part right-aligned
// against rightX, the fraction at 80% of the whole-unit size, and returns
// the x position left of the whole-unit part.
func renderTimerText[P any, I any](rc *RenderContext[P, I], t layoutstate.TimerInner, rightX, baseline, size float64) float64 {
	shader := timerShader(t.Color)
	x := rc.RenderTimer(t.Fraction, Point{X: rightX, Y: baseline}, 0.8*size, shader)
	return rc.RenderTimer(t.Time, Point{X: x, Y: baseline}, size, shader)
}

func renderTimer[P any, I any](rc *RenderContext[P, I], dim Point, s layoutstate.TimerState) {
	rc.RenderRectangle(Point{}, dim, s.Background)

	vp := verticalPadding(dim.Y)
	size := dim.Y - 2*vp
	baseline := vp + DefaultTextAscent/DefaultTextSize*size

	renderTimerText(rc, layoutstate.TimerInner{Time: s.Time, Fraction: s.Fraction, Color: s.Color}, dim.X-Padding, baseline, size)
}

func renderTitle[P any, I any](rc *RenderContext[P, I], dim Point, s layoutstate.TitleState, icons *IconCache[P, I]) {
	rc.RenderRectangle(Point{}, dim, s.Background)

	textColor := solid(s.TextColor)
	leftBound := Padding

	if icon, ok := icons.GameIcon(rc.Backend, s.Icon); ok {
		vp := verticalPadding(dim.Y)
		iconSize := dim.Y - 2*vp
		rc.RenderIcon(Point{X: Padding, Y: vp}, Point{X: iconSize, Y: iconSize}, icon)
		leftBound = Padding + iconSize + Padding
	}

	// The attempt counter sits in the bottom right corner; the second
	// title line (or the single centered line) must not run into it.
	attemptsX := dim.X - Padding
	if counter, ok := titleCounter(s); ok {
		attemptsX = rc.RenderNumbers(counter, Point{X: dim.X - Padding, Y: dim.Y + TextAlignBottom}, DefaultTextSize, textColor)
	}

	if s.Line2 == "" {
		rc.RenderTextAlign(
			s.Line1,
			leftBound, attemptsX-Padding,
			Point{X: 0.5 * dim.X, Y: 0.5*dim.Y + TextAlignCenter},
			DefaultTextSize,
			s.IsCentered,
			textColor,
		)
		return
	}

	rc.RenderTextAlign(
		s.Line1,
		leftBound, dim.X-Padding,
		Point{X: 0.5 * dim.X, Y: TextAlignTop},
		DefaultTextSize,
		s.IsCentered,
		textColor,
	)
	rc.RenderTextAlign(
		s.Line2,
		leftBound, attemptsX-Padding,
		Point{X: 0.5 * dim.X, Y: dim.Y + TextAlignBottom},
		DefaultTextSize,
		s.IsCentered,
		textColor,
	)
}

// titleCounter formats the attempt counter shown in the title's corner:
// "finished/attempts" when both are visible, a single number when only
// one is.
func titleCounter(s layoutstate.TitleState) (string, bool) {
	switch {
	case s.ShowFinishedRunsCount && s.ShowAttemptCount:
		return strconv.Itoa(s.FinishedRuns) + "/" + strconv.Itoa(s.AttemptCount), true
	case s.ShowFinishedRunsCount:
		return strconv.Itoa(s.FinishedRuns), true
	case s.ShowAttemptCount:
		return strconv.Itoa(s.AttemptCount), true
	default:
		return "", false
	}
}

func renderDetailedTimer[P any, I any](rc *RenderContext[P, I], dim Point, s layoutstate.DetailedTimerState, icons *IconCache[P, I]) {
	rc.RenderRectangle(Point{}, dim, s.Background)

	vp := verticalPadding(dim.Y)
	leftBound := Padding

	if icon, ok := icons.DetailedTimerIcon(rc.Backend, s.Icon); ok {
		iconSize := dim.Y - 2*vp
		rc.RenderIcon(Point{X: Padding, Y: vp}, Point{X: iconSize, Y: iconSize}, icon)
		leftBound = Padding + iconSize + Padding
	}

	// The right side stacks the main timer over the segment timer; the
	// main timer takes the upper 60% of the height.
	mainBottom := 0.6 * dim.Y
	mainSize := mainBottom - 2*vp
	segSize := dim.Y - mainBottom - vp

	mainBaseline := vp + DefaultTextAscent/DefaultTextSize*mainSize
	segBaseline := mainBottom + DefaultTextAscent/DefaultTextSize*segSize

	timerLeft := renderTimerText(rc, s.Timer, dim.X-Padding, mainBaseline, mainSize)
	segLeft := renderTimerText(rc, s.SegmentTimer, dim.X-Padding, segBaseline, segSize)
	rightBound := timerLeft
	if segLeft < rightBound {
		rightBound = segLeft
	}

	// The left side stacks the segment name over up to two comparisons.
	y := TextAlignTop
	if s.SegmentName != "" {
		rc.RenderTextEllipsis(s.SegmentName, Point{X: leftBound, Y: y}, DefaultTextSize, solid(s.SegmentNameColor), rightBound-Padding)
		y += DefaultComponentHeight
	}
	for _, comp := range []*layoutstate.DetailedTimerComparison{s.Comparison1, s.Comparison2} {
		if comp == nil {
			continue
		}
		nameEnd := rc.RenderTextEllipsis(comp.Name, Point{X: leftBound, Y: y}, DefaultTextSize, solid(s.ComparisonNamesColor), rightBound-Padding)
		timeX := nameEnd + Padding + rc.MeasureNumbers(comp.Time, DefaultTextSize)
		if limit := rightBound - Padding; timeX > limit {
			timeX = limit
		}
		rc.RenderNumbers(comp.Time, Point{X: timeX, Y: y}, DefaultTextSize, solid(s.ComparisonTimesColor))
		y += DefaultComponentHeight
	}
}

func renderGraph[P any, I any](rc *RenderContext[P, I], dim Point, s layoutstate.GraphState) {
	const (
		gridLineWidth = 0.015
		lineWidth     = 0.025
		circleRadius  = 0.035
	)

	saved := rc.Save()
	defer rc.Restore(saved)

	// The graph is drawn in a square-ish space of height 1; scaling by
	// the component height and dividing the width back out keeps line
	// widths and circle radii proportional regardless of the component's
	// configured height.
	rc.Scale(dim.Y)
	width := dim.X / dim.Y

	rc.fillRectShader(Point{}, Point{X: width, Y: s.Middle}, solid(s.TopBackgroundColor))
	rc.fillRectShader(Point{Y: s.Middle}, Point{X: width, Y: 1}, solid(s.BottomBackgroundColor))

	for _, y := range s.HorizontalGridLines {
		rc.fillRectShader(Point{Y: y - gridLineWidth}, Point{X: width, Y: y + gridLineWidth}, solid(s.GridLinesColor))
	}
	for _, x := range s.VerticalGridLines {
		rc.fillRectShader(Point{X: width*x - gridLineWidth}, Point{X: width*x + gridLineWidth, Y: 1}, solid(s.GridLinesColor))
	}

	if len(s.Points) == 0 {
		return
	}

	// With a live delta the last point is still in flight: its segment is
	// filled with the partial color and excluded from the complete fill.
	fillLen := len(s.Points)
	if s.IsLiveDeltaActive && len(s.Points) >= 2 {
		p1 := s.Points[len(s.Points)-2]
		p2 := s.Points[len(s.Points)-1]

		b := rc.Backend.FillBuilder()
		b.MoveTo(width*p1.X, s.Middle)
		b.LineTo(width*p1.X, p1.Y)
		b.LineTo(width*p2.X, p2.Y)
		b.LineTo(width*p2.X, s.Middle)
		b.Close()
		partial := b.Finish()
		rc.fillPath(partial, s.PartialFillColor)
		rc.Backend.FreePath(partial)

		fillLen--
	}

	b := rc.Backend.FillBuilder()
	b.MoveTo(0, s.Middle)
	for _, p := range s.Points[:fillLen] {
		b.LineTo(width*p.X, p.Y)
	}
	b.LineTo(width*s.Points[fillLen-1].X, s.Middle)
	b.Close()
	fill := b.Finish()
	rc.fillPath(fill, s.CompleteFillColor)
	rc.Backend.FreePath(fill)

	for i := 1; i < len(s.Points); i++ {
		p0, p1 := s.Points[i-1], s.Points[i]

		color := s.GraphLinesColor
		if p1.IsBestSegment {
			color = s.BestSegmentColor
		}

		sb := rc.Backend.StrokeBuilder(lineWidth)
		sb.MoveTo(width*p0.X, p0.Y)
		sb.LineTo(width*p1.X, p1.Y)
		line := sb.Finish()
		rc.strokePath(line, color, lineWidth)
		rc.Backend.FreePath(line)
	}

	for i, p := range s.Points {
		if i == 0 {
			continue
		}
		if i == len(s.Points)-1 && s.IsLiveDeltaActive {
			continue
		}
		color := s.GraphLinesColor
		if p.IsBestSegment {
			color = s.BestSegmentColor
		}
		rc.fillCircle(width*p.X, p.Y, circleRadius, color)
	}
}

func renderSplits[P any, I any](rc *RenderContext[P, I], dim Point, s layoutstate.SplitsState, state *layoutstate.LayoutState, icons *IconCache[P, I]) {
	rc.RenderRectangle(Point{}, dim, s.Background)

	icons.TruncateSplits(rc.Backend, len(s.Rows))

	if len(s.Rows) == 0 {
		return
	}

	horizontal := state.Direction == layoutstate.Horizontal

	rowWidth := dim.X
	rowH := rowHeightFor(s)
	if horizontal {
		rowWidth = dim.X / float64(len(s.Rows))
		rowH = dim.Y
	}

	// Column headers only make sense stacked above rows, so they are a
	// vertical-layout feature.
	if s.ColumnLabels != nil && !horizontal {
		x := dim.X - Padding
		for _, label := range s.ColumnLabels {
			rc.RenderTextRightAlign(
				label,
				Point{X: x, Y: TextAlignTop},
				DefaultTextSize,
				solid(state.TextColor),
			)
			x -= columnWidth
		}
		rc.Translate(0, DefaultComponentHeight)
	}

	for i, row := range s.Rows {
		saved := rc.Save()
		renderSplitRow(rc, Point{X: rowWidth, Y: rowH}, i, row, s, state, icons)
		rc.Restore(saved)

		last := i == len(s.Rows)-1
		switch {
		case horizontal:
			rc.Translate(rowWidth, 0)
		case s.ShowThinSeparators && !last:
			rc.Translate(0, rowH)
			rc.fillRectShader(
				Point{Y: -ThinSeparatorThickness / 2},
				Point{X: rowWidth, Y: ThinSeparatorThickness / 2},
				solid(state.ThinSeparatorsColor),
			)
		default:
			rc.Translate(0, rowH)
		}

		// An emphasized separator is drawn above the final split when the
		// rows in between are hidden, so the last split reads as detached
		// from its predecessors.
		if !horizontal && s.SeparatorLastSplit && i == len(s.Rows)-2 {
			rc.fillRectShader(
				Point{Y: -SeparatorThickness / 2},
				Point{X: rowWidth, Y: SeparatorThickness / 2},
				solid(state.SeparatorsColor),
			)
		}
	}
}

func rowHeightFor(s layoutstate.SplitsState) float64 {
	if s.DisplayTwoRows {
		return TwoRowHeight
	}
	return DefaultComponentHeight
}

func renderSplitRow[P any, I any](rc *RenderContext[P, I], dim Point, index int, row layoutstate.SplitRow, s layoutstate.SplitsState, state *layoutstate.LayoutState, icons *IconCache[P, I]) {
	if row.IsCurrentSplit {
		rc.RenderRectangle(Point{}, dim, s.CurrentSplitGradient)
	}

	leftBound := Padding
	if s.IconsVisible {
		if icon, ok := icons.SplitIcon(rc.Backend, index, row.Icon); ok {
			vp := verticalPadding(dim.Y)
			iconSize := dim.Y - 2*vp
			rc.RenderIcon(Point{X: Padding, Y: vp}, Point{X: iconSize, Y: iconSize}, icon)
			leftBound = Padding + iconSize + Padding
		}
	}

	// A row taller than the default height renders as two stacked lines:
	// name on top, columns below. This covers both the explicit two-row
	// setting (vertical) and horizontal layouts, where every row is
	// TwoRowHeight tall.
	twoRow := dim.Y > DefaultComponentHeight+1e-9

	columnsY := dim.Y + TextAlignBottom
	nameY := 0.5*dim.Y + TextAlignCenter
	nameEnd := dim.X - Padding
	if twoRow {
		nameY = TextAlignTop
	}

	x := dim.X - Padding
	minColumnX := x
	for _, col := range row.Columns {
		if col.Value != "" {
			end := rc.RenderNumbers(col.Value, Point{X: x, Y: columnsY}, DefaultTextSize, solid(col.Color))
			if end < minColumnX {
				minColumnX = end
			}
		}
		x -= columnWidth
	}
	if !twoRow && len(row.Columns) > 0 {
		nameEnd = minColumnX
	}

	rc.RenderTextEllipsis(
		row.Name,
		Point{X: leftBound, Y: nameY},
		DefaultTextSize,
		solid(state.TextColor),
		nameEnd-Padding,
	)
}
