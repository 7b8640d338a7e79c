// Package outline builds the closed, even-odd filled outline of a laid-out
// block and records the anchor of every connector as it is drawn.
//
// The boundary is walked clockwise (for a left-to-right layout): top edge
// with the previous notch, far edge descending past each input's notch or
// statement mouth, bottom edge with the next tab, near edge ascending past
// the output tab. Inline value inputs then add one hole subpath each.
// All horizontal deltas are scaled by the direction sign, so a right-to-left
// build produces the exact mirror image.
package outline

import (
	"github.com/matzehuels/blockview/pkg/geom"
	"github.com/matzehuels/blockview/pkg/model"
	"github.com/matzehuels/blockview/pkg/render/block/connector"
	"github.com/matzehuels/blockview/pkg/render/block/layout"
	"github.com/matzehuels/blockview/pkg/render/block/path"
)

// Slot is the subset of input state the outline needs.
type Slot interface {
	Kind() model.InputKind
	FieldLayoutWidth() int
	MeasuredHeight() int
	TotalChildHeight() int
	CutoutSize() geom.Size
}

// Anchors are connector offsets in block view coordinates.
type Anchors struct {
	Previous geom.Point
	Next     geom.Point
	Output   geom.Point
	// Inputs holds one anchor per input; dummy inputs keep the zero point.
	Inputs []geom.Point
}

func (a *Anchors) reset(n int) {
	a.Previous, a.Next, a.Output = geom.Point{}, geom.Point{}, geom.Point{}
	if cap(a.Inputs) < n {
		a.Inputs = make([]geom.Point, n)
	}
	a.Inputs = a.Inputs[:n]
	clear(a.Inputs)
}

// Mirrored returns the anchors reflected about x = width/2.
func (a *Anchors) Mirrored(width int) Anchors {
	flip := func(p geom.Point) geom.Point { return geom.Pt(width-p.X, p.Y) }
	out := Anchors{
		Previous: flip(a.Previous),
		Next:     flip(a.Next),
		Output:   flip(a.Output),
		Inputs:   make([]geom.Point, len(a.Inputs)),
	}
	for i, p := range a.Inputs {
		out.Inputs[i] = flip(p)
	}
	return out
}

// Builder draws block outlines.
type Builder struct {
	Metrics connector.Metrics
}

// Build writes the outline of b into dst and the connector anchors into
// anchors. Both are reset first; their storage is reused.
func (bd Builder) Build(dst *path.Path, anchors *Anchors, b *model.Block, st *layout.State, slots []Slot, sign int) {
	m := bd.Metrics
	dst.Reset()
	dst.FillRule = path.EvenOdd
	anchors.reset(len(slots))

	rtl := sign < 0
	xFrom := st.MarginLeft
	xTo := st.MarginLeft
	row := 0
	if st.Inline {
		xTo += st.RowWidths[row]
	} else {
		xTo += st.BlockWidth
	}
	if rtl {
		xFrom = st.Size.W - xFrom
		xTo = st.Size.W - xTo
	}

	yTop := 0
	yBottom := st.NextBlockVerticalOffset

	dst.MoveTo(xFrom, yTop)
	if b.PreviousConnection() != nil {
		m.AddPrevious(dst, xFrom, yTop, sign)
		anchors.Previous = geom.Pt(xFrom, yTop)
	}
	dst.LineTo(xTo, yTop)

	for i, s := range slots {
		o := st.Origins[i]
		switch s.Kind() {
		case model.InputValue:
			if !st.Inline {
				m.AddValueInput(dst, xTo, o.Y, sign)
				anchors.Inputs[i] = geom.Pt(xTo, o.Y)
			}
		case model.InputStatement:
			xOffset := xFrom + sign*s.FieldLayoutWidth()
			mouth := max(s.TotalChildHeight(), s.MeasuredHeight())
			xToBottom := xTo
			if st.Inline {
				row++
				xToBottom = xFrom + sign*st.RowWidths[row]
			}
			m.AddStatementInput(dst, xTo, xToBottom, o.Y, xOffset, mouth, sign)
			anchors.Inputs[i] = geom.Pt(xOffset, o.Y)
			xTo = xToBottom
		}
	}
	dst.LineTo(xTo, yBottom)

	if b.NextConnection() != nil {
		m.AddNext(dst, xFrom, yBottom, sign)
		anchors.Next = geom.Pt(xFrom, yBottom)
	}
	dst.LineTo(xFrom, yBottom)

	if b.OutputConnection() != nil {
		m.AddOutput(dst, xFrom, yTop, sign)
		anchors.Output = geom.Pt(xFrom, yTop)
	}
	dst.LineTo(xFrom, yTop)
	// Retrace the first corner segment so the stroke joins cleanly.
	dst.LineTo(xFrom+sign*m.OffsetFromCorner, yTop)
	dst.Close()

	if st.Inline {
		for i, s := range slots {
			if s.Kind() != model.InputValue {
				continue
			}
			o := st.Origins[i]
			anchors.Inputs[i] = bd.addCutout(dst, xFrom+sign*o.X, o.Y, s, sign)
		}
	}
}

// addCutout carves the hole for an inline value input whose near edge is at
// x. It returns the value connector anchor.
func (bd Builder) addCutout(dst *path.Path, x, y int, s Slot, sign int) geom.Point {
	m := bd.Metrics
	size := s.CutoutSize()
	xc := x + sign*(s.FieldLayoutWidth()+m.SizePerpendicular)
	yc := y + m.FieldPadding
	xFar := xc + sign*size.W

	dst.MoveTo(xc, yc)
	dst.LineTo(xFar, yc)
	dst.LineTo(xFar, yc+size.H)
	dst.LineTo(xc, yc+size.H)
	m.AddOutput(dst, xc, yc, sign)
	dst.LineTo(xc, yc)
	dst.Close()
	return geom.Pt(xc, yc)
}
