package connector

import (
	"github.com/matzehuels/blockview/pkg/render/block/path"
)

// AddPrevious appends the previous-connector notch to a top edge drawn in
// the direction of sign, starting at anchor (x, y).
func (m Metrics) AddPrevious(p *path.Path, x, y, sign int) {
	a, q, d := m.OffsetFromCorner, m.SizeParallel, m.SizePerpendicular
	p.LineTo(x+sign*a, y)
	p.LineTo(x+sign*(a+d), y+d)
	p.LineTo(x+sign*(a+d+q), y+d)
	p.LineTo(x+sign*(a+2*d+q), y)
}

// AddNext appends the next-connector tab to a bottom edge drawn back
// towards the anchor (x, y). The tab protrudes below y.
func (m Metrics) AddNext(p *path.Path, x, y, sign int) {
	a, q, d := m.OffsetFromCorner, m.SizeParallel, m.SizePerpendicular
	p.LineTo(x+sign*(a+2*d+q), y)
	p.LineTo(x+sign*(a+d+q), y+d)
	p.LineTo(x+sign*(a+d), y+d)
	p.LineTo(x+sign*a, y)
}

// AddOutput appends the output tab to a near edge drawn upwards towards the
// anchor (x, y). The tab protrudes outwards, away from the block body.
func (m Metrics) AddOutput(p *path.Path, x, y, sign int) {
	a, q, d := m.OffsetFromCorner, m.SizeParallel, m.SizePerpendicular
	p.LineTo(x, y+a+2*d+q)
	p.LineTo(x-sign*d, y+a+d+q)
	p.LineTo(x-sign*d, y+a+d)
	p.LineTo(x, y+a)
}

// AddValueInput appends the value-input notch to a far edge drawn downwards
// from the anchor (x, y). The notch is carved into the block body.
func (m Metrics) AddValueInput(p *path.Path, x, y, sign int) {
	a, q, d := m.OffsetFromCorner, m.SizeParallel, m.SizePerpendicular
	p.LineTo(x, y+a)
	p.LineTo(x-sign*d, y+a+d)
	p.LineTo(x-sign*d, y+a+d+q)
	p.LineTo(x, y+a+2*d+q)
}

// AddStatementInput appends the C-shaped mouth of a statement input. The
// upper arm runs from xTo back to xOffset carrying a next tab for the
// nested stack, the mouth descends connectorHeight, and the lower arm
// returns to xToBottom.
func (m Metrics) AddStatementInput(p *path.Path, xTo, xToBottom, y, xOffset, connectorHeight, sign int) {
	p.LineTo(xTo, y)
	m.AddNext(p, xOffset, y, sign)
	p.LineTo(xOffset, y)
	p.LineTo(xOffset, y+connectorHeight)
	p.LineTo(xToBottom, y+connectorHeight)
}

// Shape identifies a canonical connector outline used for highlighting.
type Shape int

const (
	ShapePrevious Shape = iota
	ShapeNext
	ShapeOutput
	ShapeValueInput
)

// Path returns the open connector outline anchored at the origin. Offset it
// by a recorded anchor to highlight a connector in place.
func (m Metrics) Path(s Shape, sign int) *path.Path {
	p := &path.Path{}
	switch s {
	case ShapePrevious:
		p.MoveTo(0, 0)
		m.AddPrevious(p, 0, 0, sign)
		p.LineTo(sign*m.Span(), 0)
	case ShapeNext:
		p.MoveTo(sign*m.Span(), 0)
		m.AddNext(p, 0, 0, sign)
		p.LineTo(0, 0)
	case ShapeOutput:
		p.MoveTo(0, m.Span())
		m.AddOutput(p, 0, 0, sign)
		p.LineTo(0, 0)
	case ShapeValueInput:
		p.MoveTo(0, 0)
		m.AddValueInput(p, 0, 0, sign)
		p.LineTo(0, m.Span())
	}
	return p
}
