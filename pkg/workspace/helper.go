// Package workspace converts between view space (pixels of the laid-out
// block tree) and workspace space (the model's coordinate system used by
// connection tracking).
package workspace

import (
	"math"

	"github.com/matzehuels/blockview/pkg/geom"
)

// Helper carries the workspace-wide layout direction and zoom scale.
type Helper struct {
	rtl   bool
	scale float64
}

// NewHelper returns a helper. A non-positive scale is treated as 1.
func NewHelper(rtl bool, scale float64) *Helper {
	if scale <= 0 {
		scale = 1
	}
	return &Helper{rtl: rtl, scale: scale}
}

// RTL reports whether blocks are laid out right-to-left.
func (h *Helper) RTL() bool { return h.rtl }

// Sign returns +1 for left-to-right and -1 for right-to-left layouts.
func (h *Helper) Sign() int {
	if h.rtl {
		return -1
	}
	return 1
}

// Scale returns the view pixels per workspace unit.
func (h *Helper) Scale() float64 { return h.scale }

// ViewToWorkspaceDelta converts a view-space offset to workspace units.
func (h *Helper) ViewToWorkspaceDelta(p geom.Point) geom.Point {
	return geom.Point{
		X: int(math.Round(float64(p.X) / h.scale)),
		Y: int(math.Round(float64(p.Y) / h.scale)),
	}
}

// WorkspaceToViewDelta converts a workspace offset to view pixels.
func (h *Helper) WorkspaceToViewDelta(p geom.Point) geom.Point {
	return geom.Point{
		X: int(math.Round(float64(p.X) * h.scale)),
		Y: int(math.Round(float64(p.Y) * h.scale)),
	}
}
