// Package hittest decides whether a block-local point lands on the opaque
// part of a block.
package hittest

import (
	"github.com/matzehuels/blockview/pkg/geom"
	"github.com/matzehuels/blockview/pkg/render/block/layout"
)

// Slot is the subset of input state hit testing needs.
type Slot interface {
	Bounds() geom.Rect
	FieldLayoutWidth() int
	IsOnFields(x, y int) bool
}

// Hit reports whether p, in block view coordinates, is on the field area of
// any input.
//
// Points outside the block body's horizontal extent are rejected first; the
// extent excludes the output margin and, for external inputs, attached
// children. Slot bounds include attached children, so under RTL the field
// area starts at the slot's right edge minus its field layout width.
func Hit(p geom.Point, st *layout.State, slots []Slot, rtl bool) bool {
	begin, end := st.MarginLeft, st.MarginLeft+st.BlockWidth
	if rtl {
		end = st.Size.W - st.MarginLeft
		begin = end - st.BlockWidth
	}
	if p.X < begin || p.X > end {
		return false
	}

	for _, s := range slots {
		b := s.Bounds()
		left := b.Left
		if rtl {
			left = b.Right - s.FieldLayoutWidth()
		}
		if s.IsOnFields(p.X-left, p.Y-b.Top) {
			return true
		}
	}
	return false
}
