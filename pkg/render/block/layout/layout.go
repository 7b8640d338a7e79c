// Package layout measures a block and positions its inputs.
//
// Two mutually exclusive algorithms are selected by the block's
// InputsInline flag:
//
//   - External inputs: every input is its own row. Field widths are unified
//     into one column for value/dummy inputs and one for statement inputs.
//   - Inline inputs: value and dummy inputs flow left-to-right within a row;
//     each statement input closes the current row and starts a new one after
//     itself.
//
// All results land in a [State] owned by the caller and reset at the start of
// every pass, so no value leaks from one pass into the next.
package layout

import (
	"github.com/matzehuels/blockview/pkg/geom"
	"github.com/matzehuels/blockview/pkg/model"
	"github.com/matzehuels/blockview/pkg/render/block/connector"
)

// Slot is the per-input measurement collaborator.
type Slot interface {
	Kind() model.InputKind

	// MeasureFieldsAndInputs measures fields and the attached child subtree.
	// It resets the field layout width to the natural field width.
	MeasureFieldsAndInputs(c geom.Constraints)
	// Measure computes the slot's own size using the current field layout width.
	Measure(c geom.Constraints)
	MeasuredWidth() int
	MeasuredHeight() int

	TotalFieldWidth() int
	TotalChildWidth() int
	TotalChildHeight() int

	FieldLayoutWidth() int
	SetFieldLayoutWidth(w int)
	RowHeight() int
	SetRowHeight(h int)

	// Layout places the slot at bounds, given in block view coordinates.
	Layout(bounds geom.Rect)
}

// State holds the results of one measurement pass.
type State struct {
	Inline bool

	// Origins is the layout origin of each input relative to the block body.
	// For external inputs only Y is used.
	Origins []geom.Point
	// RowWidths lists the body width of each inline row, one more entry
	// than there are statement inputs.
	RowWidths []int

	MaxInputFieldsWidth     int
	MaxStatementFieldsWidth int

	// BlockWidth is the width of the block body without the output margin.
	BlockWidth int
	// NextBlockVerticalOffset is where the next block in a stack starts.
	NextBlockVerticalOffset int
	// MarginLeft is the space reserved for the output tab, mirrored to the
	// right under RTL.
	MarginLeft int
	// Size is the full measured view size.
	Size geom.Size
}

func (s *State) reset(n int, inline bool) {
	if cap(s.Origins) < n {
		s.Origins = make([]geom.Point, n)
	}
	s.Origins = s.Origins[:n]
	clear(s.Origins)
	s.RowWidths = s.RowWidths[:0]
	s.Inline = inline
	s.MaxInputFieldsWidth = 0
	s.MaxStatementFieldsWidth = 0
	s.BlockWidth = 0
	s.NextBlockVerticalOffset = 0
	s.MarginLeft = 0
	s.Size = geom.Size{}
}

// XFrom returns the x coordinate of the block body's near edge.
func (s *State) XFrom(rtl bool) int {
	if rtl {
		return s.Size.W - s.MarginLeft
	}
	return s.MarginLeft
}

// Rows groups the non-statement inputs of an inline layout into rows, split
// at every statement input. The result has len(RowWidths) entries; a row
// between two adjacent statements is empty.
func (s *State) Rows(slots []Slot) [][]int {
	rows := [][]int{{}}
	for i, sl := range slots {
		if sl.Kind() == model.InputStatement {
			rows = append(rows, []int{})
			continue
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], i)
	}
	return rows
}

// Engine runs the measurement and placement passes.
type Engine struct {
	Metrics connector.Metrics
}

// Measure measures every slot and writes the block size and input origins
// into st. The returned size equals st.Size.
func (e Engine) Measure(st *State, b *model.Block, slots []Slot, c geom.Constraints) geom.Size {
	st.reset(len(slots), b.InputsInline)
	if b.InputsInline {
		e.measureInline(st, slots, c)
	} else {
		e.measureExternal(st, slots, c)
	}

	st.NextBlockVerticalOffset = st.Size.H
	if b.NextConnection() != nil {
		st.Size.H += e.Metrics.SizePerpendicular
	}
	if b.OutputConnection() != nil {
		st.MarginLeft = e.Metrics.SizePerpendicular
		st.Size.W += st.MarginLeft
	}
	return st.Size
}

// Place lays out every slot at its origin, mirroring horizontally under RTL.
func (e Engine) Place(st *State, slots []Slot, rtl bool) {
	sign := 1
	if rtl {
		sign = -1
	}
	xFrom := st.XFrom(rtl)
	for i, s := range slots {
		o := st.Origins[i]
		w, h := s.MeasuredWidth(), s.MeasuredHeight()
		rowFrom := xFrom + sign*o.X
		if rtl {
			rowFrom -= w
		}
		s.Layout(geom.Rect{Left: rowFrom, Top: o.Y, Right: rowFrom + w, Bottom: o.Y + h})
	}
}

func (e Engine) measureExternal(st *State, slots []Slot, c geom.Constraints) {
	m := e.Metrics
	st.MaxInputFieldsWidth = m.MinWidth

	var maxInputChildWidth, maxStatementChildWidth int
	var hasValue, hasStatement bool
	for _, s := range slots {
		s.MeasureFieldsAndInputs(c)
		switch s.Kind() {
		case model.InputStatement:
			hasStatement = true
			st.MaxStatementFieldsWidth = max(st.MaxStatementFieldsWidth, s.TotalFieldWidth())
			maxStatementChildWidth = max(maxStatementChildWidth, s.TotalChildWidth())
		case model.InputValue:
			hasValue = true
			maxInputChildWidth = max(maxInputChildWidth, s.TotalChildWidth())
			st.MaxInputFieldsWidth = max(st.MaxInputFieldsWidth, s.TotalFieldWidth())
		default:
			st.MaxInputFieldsWidth = max(st.MaxInputFieldsWidth, s.TotalFieldWidth())
		}
	}

	if hasStatement {
		st.MaxStatementFieldsWidth = max(st.MaxStatementFieldsWidth, m.MinWidth)
		st.MaxInputFieldsWidth = max(st.MaxInputFieldsWidth, st.MaxStatementFieldsWidth+m.StatementIndent)
	}

	rowTop := 0
	for i, s := range slots {
		stmt := s.Kind() == model.InputStatement
		if stmt {
			if i == 0 {
				rowTop += m.StatementBottomHeight
			}
			s.SetFieldLayoutWidth(st.MaxStatementFieldsWidth)
		} else {
			s.SetFieldLayoutWidth(st.MaxInputFieldsWidth)
		}
		s.Measure(c)
		st.Origins[i] = geom.Pt(0, rowTop)

		rowTop += s.MeasuredHeight()
		s.SetRowHeight(s.MeasuredHeight())
		if stmt {
			rowTop += m.StatementBottomHeight
			s.SetRowHeight(s.MeasuredHeight() + m.StatementBottomHeight)
		}
	}

	st.BlockWidth = max(st.MaxInputFieldsWidth, st.MaxStatementFieldsWidth)
	if hasValue {
		st.BlockWidth += m.SizePerpendicular
	}
	st.Size.W = max(st.BlockWidth,
		st.MaxInputFieldsWidth+maxInputChildWidth,
		st.MaxStatementFieldsWidth+maxStatementChildWidth)
	st.Size.H = max(m.MinHeight, rowTop)
}

func (e Engine) measureInline(st *State, slots []Slot, c geom.Constraints) {
	m := e.Metrics

	hasStatement := false
	for _, s := range slots {
		s.MeasureFieldsAndInputs(c)
		if s.Kind() == model.InputStatement {
			hasStatement = true
			st.MaxStatementFieldsWidth = max(st.MaxStatementFieldsWidth, s.TotalFieldWidth())
		}
	}

	// Narrowest a row may be: wide enough for an empty statement mouth when
	// the block has one, and never below the minimum block width.
	rowFloor := m.MinWidth
	if hasStatement {
		rowFloor = max(rowFloor, st.MaxStatementFieldsWidth+m.StatementIndent)
	}

	rowLeft, rowTop, rowHeight, maxRowWidth := 0, 0, 0, 0
	for i, s := range slots {
		stmt := s.Kind() == model.InputStatement
		if stmt {
			if i == 0 {
				rowTop += m.StatementBottomHeight
			}
			s.SetFieldLayoutWidth(st.MaxStatementFieldsWidth)

			// Close the row above the statement.
			st.RowWidths = append(st.RowWidths, max(rowLeft, rowFloor))
			rowTop += rowHeight
			rowHeight = 0
			rowLeft = 0
		}

		st.Origins[i] = geom.Pt(rowLeft, rowTop)
		s.Measure(c)
		rowHeight = max(rowHeight, s.MeasuredHeight())
		// Running maximum; the backward pass below fixes earlier inputs.
		s.SetRowHeight(rowHeight)

		if stmt {
			maxRowWidth = max(maxRowWidth, s.MeasuredWidth())
			s.SetRowHeight(rowHeight + m.StatementBottomHeight)
			rowTop += rowHeight + m.StatementBottomHeight
			rowLeft = 0
			rowHeight = 0
		} else {
			rowLeft += s.MeasuredWidth()
			maxRowWidth = max(maxRowWidth, rowLeft)
		}
	}
	rowTop += rowHeight

	maxRowHeight := 0
	for i := len(slots) - 1; i >= 0; i-- {
		s := slots[i]
		if s.Kind() == model.InputStatement {
			maxRowHeight = 0
			continue
		}
		maxRowHeight = max(maxRowHeight, s.RowHeight())
		s.SetRowHeight(maxRowHeight)
	}

	st.RowWidths = append(st.RowWidths, max(rowLeft, rowFloor))
	st.BlockWidth = max(rowFloor, maxRowWidth)
	st.Size.W = st.BlockWidth
	st.Size.H = max(m.MinHeight, rowTop)
}
