// Package input implements the per-input measurement slot used by the block
// layout engine.
//
// A View lays out one input row: its fields on the near side, followed by
// the attached child subtree, if any. Fields are opaque boxes; their size is
// taken from the model.
package input

import (
	"github.com/matzehuels/blockview/pkg/geom"
	"github.com/matzehuels/blockview/pkg/model"
	"github.com/matzehuels/blockview/pkg/render/block/connector"
)

// Subtree is the child stack attached to a value or statement input.
type Subtree interface {
	Measure(c geom.Constraints) geom.Size
	Layout(bounds geom.Rect)
}

// View is the view-side layout state of one input.
type View struct {
	input   *model.Input
	metrics connector.Metrics
	child   Subtree

	inline bool
	rtl    bool

	fieldsWidth      int
	fieldsHeight     int
	childSize        geom.Size
	cutout           geom.Size
	fieldLayoutWidth int
	measured         geom.Size
	rowHeight        int

	bounds      geom.Rect
	childBounds geom.Rect
}

// New returns the view for in.
func New(in *model.Input, m connector.Metrics) *View {
	return &View{input: in, metrics: m}
}

// Input returns the model input.
func (v *View) Input() *model.Input { return v.input }

// Kind returns the input kind.
func (v *View) Kind() model.InputKind { return v.input.Kind }

// SetChild attaches the child subtree. Pass nil to detach.
func (v *View) SetChild(s Subtree) { v.child = s }

// Child returns the attached subtree, or nil.
func (v *View) Child() Subtree { return v.child }

// SetMode tells the slot how its block lays out inputs and in which
// direction. The block calls it at the start of every measurement pass.
func (v *View) SetMode(inline, rtl bool) {
	v.inline = inline
	v.rtl = rtl
}

// MeasureFieldsAndInputs measures the fields and the child subtree and
// resets the field layout width to the natural width of the fields.
func (v *View) MeasureFieldsAndInputs(c geom.Constraints) {
	pad := v.metrics.FieldPadding
	v.fieldsWidth, v.fieldsHeight = 0, 0
	if n := len(v.input.Fields); n > 0 {
		v.fieldsWidth = pad * (n + 1)
		for _, f := range v.input.Fields {
			v.fieldsWidth += f.Width
			v.fieldsHeight = max(v.fieldsHeight, f.Height)
		}
		v.fieldsHeight += 2 * pad
	}

	v.childSize = geom.Size{}
	if v.child != nil {
		v.childSize = v.child.Measure(c)
	}
	v.fieldLayoutWidth = v.fieldsWidth
}

// Measure computes the slot size from the current field layout width.
func (v *View) Measure(geom.Constraints) {
	m := v.metrics
	switch {
	case v.input.Kind == model.InputDummy:
		v.measured = geom.Size{W: v.fieldLayoutWidth, H: v.fieldsHeight}
	case v.input.Kind == model.InputValue && v.inline:
		v.cutout = geom.Size{
			W: max(v.childSize.W-m.SizePerpendicular, m.MinCutoutWidth),
			H: max(v.childSize.H, m.Span()),
		}
		v.measured = geom.Size{
			W: v.fieldLayoutWidth + m.SizePerpendicular + v.cutout.W + m.FieldPadding,
			H: max(v.fieldsHeight, v.cutout.H+2*m.FieldPadding),
		}
	default:
		v.measured = geom.Size{
			W: v.fieldLayoutWidth + v.childSize.W,
			H: max(v.fieldsHeight, v.childSize.H),
		}
		if v.input.Kind == model.InputStatement {
			v.measured.H = max(v.measured.H, m.MinStatementHeight())
		}
	}
	v.rowHeight = v.measured.H
}

func (v *View) MeasuredWidth() int    { return v.measured.W }
func (v *View) MeasuredHeight() int   { return v.measured.H }
func (v *View) TotalFieldWidth() int  { return v.fieldsWidth }
func (v *View) TotalChildWidth() int  { return v.childSize.W }
func (v *View) TotalChildHeight() int { return v.childSize.H }

func (v *View) FieldLayoutWidth() int     { return v.fieldLayoutWidth }
func (v *View) SetFieldLayoutWidth(w int) { v.fieldLayoutWidth = w }
func (v *View) RowHeight() int            { return v.rowHeight }
func (v *View) SetRowHeight(h int)        { v.rowHeight = h }

// CutoutSize returns the hole carved for an inline value input.
func (v *View) CutoutSize() geom.Size { return v.cutout }

// Layout stores the slot bounds and lays out the child subtree next to the
// fields, on the far side under RTL.
func (v *View) Layout(bounds geom.Rect) {
	v.bounds = bounds
	v.childBounds = geom.Rect{}
	if v.child == nil {
		return
	}
	x := v.fieldLayoutWidth
	if v.rtl {
		x = bounds.Width() - v.fieldLayoutWidth - v.childSize.W
	}
	y := 0
	if v.inline && v.input.Kind == model.InputValue {
		y = v.metrics.FieldPadding
	}
	v.childBounds = geom.RectFromSize(geom.Pt(x, y), v.childSize)
	v.child.Layout(v.childBounds)
}

// Bounds returns the slot rectangle in block view coordinates.
func (v *View) Bounds() geom.Rect { return v.bounds }

// ChildBounds returns the child subtree rectangle relative to the slot.
func (v *View) ChildBounds() geom.Rect { return v.childBounds }

// IsOnFields reports whether the slot-local point (x, y) lies on the field
// area. The area includes its top and left edges and excludes its bottom
// and right edges.
func (v *View) IsOnFields(x, y int) bool {
	return x >= 0 && x < v.fieldLayoutWidth && y >= 0 && y < v.rowHeight
}
