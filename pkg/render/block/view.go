package block

import (
	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/geom"
	"github.com/matzehuels/blockview/pkg/model"
	"github.com/matzehuels/blockview/pkg/render/block/highlight"
	"github.com/matzehuels/blockview/pkg/render/block/hittest"
	"github.com/matzehuels/blockview/pkg/render/block/input"
	"github.com/matzehuels/blockview/pkg/render/block/layout"
	"github.com/matzehuels/blockview/pkg/render/block/outline"
	"github.com/matzehuels/blockview/pkg/render/block/path"
	"github.com/matzehuels/blockview/pkg/workspace"
)

// View lays out, outlines, hit-tests and draws a single block.
type View struct {
	block  *model.Block
	helper *workspace.Helper
	cfg    *config
	group  *Group

	engine  layout.Engine
	builder outline.Builder

	inputs       []*input.View
	children     []*Group
	layoutSlots  []layout.Slot
	outlineSlots []outline.Slot
	hitSlots     []hittest.Slot

	state    layout.State
	anchors  outline.Anchors
	outline  path.Path
	emphasis path.Path
	selector highlight.Selector
	bounds   geom.Rect
	measured bool
	laidOut  bool
}

func newView(b *model.Block, g *Group, h *workspace.Helper, cfg *config) *View {
	v := &View{
		block:   b,
		helper:  h,
		cfg:     cfg,
		group:   g,
		engine:  layout.Engine{Metrics: cfg.metrics},
		builder: outline.Builder{Metrics: cfg.metrics},
	}
	for _, in := range b.Inputs() {
		iv := input.New(in, cfg.metrics)
		var child *Group
		if in.Kind != model.InputDummy && in.TargetBlock() != nil {
			child = newGroup(in.TargetBlock(), iv, v, h, cfg)
			iv.SetChild(child)
		}
		v.inputs = append(v.inputs, iv)
		v.children = append(v.children, child)
		v.layoutSlots = append(v.layoutSlots, iv)
		v.outlineSlots = append(v.outlineSlots, iv)
		v.hitSlots = append(v.hitSlots, iv)
	}
	return v
}

// Block returns the model block.
func (v *View) Block() *model.Block { return v.block }

// Group returns the stack the view lives in.
func (v *View) Group() *Group { return v.group }

// Measure runs the layout engine and returns the view size.
func (v *View) Measure(c geom.Constraints) geom.Size {
	for _, iv := range v.inputs {
		iv.SetMode(v.block.InputsInline, v.helper.RTL())
	}
	size := v.engine.Measure(&v.state, v.block, v.layoutSlots, c)
	v.measured = true
	v.cfg.logger.Debug("measured block",
		"type", v.block.Type,
		"inline", v.block.InputsInline,
		"inputs", len(v.inputs),
		"size", size)
	return size
}

// Layout positions the inputs inside bounds, rebuilds the outline and
// publishes connector anchors. Bounds are relative to the owning group.
func (v *View) Layout(bounds geom.Rect) {
	if !v.measured {
		v.Measure(geom.Unbounded)
	}
	v.bounds = bounds
	rtl := v.helper.RTL()
	v.engine.Place(&v.state, v.layoutSlots, rtl)
	v.builder.Build(&v.outline, &v.anchors, v.block, &v.state, v.outlineSlots, v.helper.Sign())
	v.laidOut = true
	v.UpdateConnectorLocations()
}

// HitTest reports whether p, in view-local coordinates, is on an opaque part
// of the block.
func (v *View) HitTest(p geom.Point) (bool, error) {
	if !v.laidOut {
		return false, errors.New(errors.ErrCodeNotLaidOut, "hit test on block %q before layout", v.block.Type)
	}
	return hittest.Hit(p, &v.state, v.hitSlots, v.helper.RTL()), nil
}

// SetHighlightBlock highlights the whole outline.
func (v *View) SetHighlightBlock() { v.selector.SetBlock() }

// SetHighlightConnection highlights one connector of this block.
func (v *View) SetHighlightConnection(c *model.Connection) error {
	if !v.block.Owns(c) {
		return errors.New(errors.ErrCodeUnknownConnector, "connection is not owned by block %q", v.block.Type)
	}
	v.selector.SetConnection(c)
	return nil
}

// ClearHighlight removes any highlight.
func (v *View) ClearHighlight() { v.selector.Clear() }

// Highlight returns the current highlight mode.
func (v *View) Highlight() highlight.Mode { return v.selector.Mode() }

// HighlightPath resolves the current highlight to a path in view-local
// coordinates; nil means nothing is highlighted.
func (v *View) HighlightPath() (*path.Path, error) {
	if !v.laidOut {
		return nil, errors.New(errors.ErrCodeNotLaidOut, "highlight on block %q before layout", v.block.Type)
	}
	return v.selector.Resolve(&v.emphasis, &v.outline, v.block, &v.anchors, v.cfg.metrics, v.helper.Sign())
}

// Draw paints fill, border, highlight and, if enabled, the connector-centre
// overlay at the view's position in the tree.
func (v *View) Draw(s Surface) error {
	if !v.laidOut {
		return errors.New(errors.ErrCodeNotLaidOut, "draw block %q before layout", v.block.Type)
	}
	style := v.cfg.style
	off := v.ViewOrigin()

	s.Fill(&v.outline, off, v.block.Color())
	s.Stroke(&v.outline, off, style.Outline, style.OutlineWidth)

	hl, err := v.HighlightPath()
	if err != nil {
		return err
	}
	if hl != nil {
		s.Stroke(hl, off, style.Highlight, style.HighlightWidth)
	}

	if style.RenderCenters && v.cfg.tracker != nil {
		for _, c := range v.block.AllConnections() {
			s.Dot(off.Add(v.FromWorkspace(c.Position())), style.CenterRadius, style.CenterColor(c.IsConnected()))
		}
	}
	return nil
}

// Size returns the measured view size.
func (v *View) Size() geom.Size { return v.state.Size }

// Bounds returns the view rectangle relative to its group.
func (v *View) Bounds() geom.Rect { return v.bounds }

// BlockWidth returns the width of the block body.
func (v *View) BlockWidth() int { return v.state.BlockWidth }

// NextBlockVerticalOffset returns where the next block of the stack starts,
// relative to the top of this view.
func (v *View) NextBlockVerticalOffset() int { return v.state.NextBlockVerticalOffset }

// LayoutMarginLeft returns the space reserved for the output tab.
func (v *View) LayoutMarginLeft() int { return v.state.MarginLeft }

// State returns the results of the last measurement pass.
func (v *View) State() *layout.State { return &v.state }

// InputCount returns the number of input views.
func (v *View) InputCount() int { return len(v.inputs) }

// Input returns the input view at index i.
func (v *View) Input(i int) *input.View { return v.inputs[i] }

// Child returns the group attached to input i, or nil.
func (v *View) Child(i int) *Group { return v.children[i] }

// Outline returns the outline built by the last layout pass.
func (v *View) Outline() *path.Path { return &v.outline }

// Anchors returns a copy of the connector anchors of the last layout pass.
func (v *View) Anchors() outline.Anchors {
	a := v.anchors
	a.Inputs = append([]geom.Point(nil), v.anchors.Inputs...)
	return a
}

// AnchorOf returns the view-local anchor of a connection owned by the block.
func (v *View) AnchorOf(c *model.Connection) (geom.Point, error) {
	if !v.laidOut {
		return geom.Point{}, errors.New(errors.ErrCodeNotLaidOut, "anchor lookup on block %q before layout", v.block.Type)
	}
	if !v.block.Owns(c) {
		return geom.Point{}, errors.New(errors.ErrCodeUnknownConnector, "connection is not owned by block %q", v.block.Type)
	}
	switch c {
	case v.block.PreviousConnection():
		return v.anchors.Previous, nil
	case v.block.NextConnection():
		return v.anchors.Next, nil
	case v.block.OutputConnection():
		return v.anchors.Output, nil
	}
	for i, iv := range v.inputs {
		if iv.Input() == c.Input() {
			return v.anchors.Inputs[i], nil
		}
	}
	return geom.Point{}, errors.New(errors.ErrCodeUnknownConnector, "connection input not found on block %q", v.block.Type)
}

// ViewOrigin returns the top-left of the view in root group coordinates.
func (v *View) ViewOrigin() geom.Point {
	p := v.bounds.Origin()
	g := v.group
	for {
		p = p.Add(g.bounds.Origin())
		if g.parent == nil {
			return p
		}
		p = p.Add(g.parent.Bounds().Origin())
		p = p.Add(g.owner.bounds.Origin())
		g = g.owner.group
	}
}

// WorkspacePosition converts the view's position to workspace coordinates,
// relative to the root block's model position.
func (v *View) WorkspacePosition() geom.Point { return v.ToWorkspace(geom.Point{}) }

// ToWorkspace converts a view-local point to workspace coordinates. The
// whole offset from the root block is scaled in one step, so points shared
// by two views map to the same workspace point at any scale.
func (v *View) ToWorkspace(local geom.Point) geom.Point {
	root := v.group.Root().views[0]
	delta := local.Add(v.ViewOrigin()).Sub(root.ViewOrigin())
	return root.block.Position().Add(v.helper.ViewToWorkspaceDelta(delta))
}

// FromWorkspace converts a workspace point back to view-local coordinates.
func (v *View) FromWorkspace(p geom.Point) geom.Point {
	root := v.group.Root().views[0]
	d := v.helper.WorkspaceToViewDelta(p.Sub(root.block.Position()))
	return d.Add(root.ViewOrigin()).Sub(v.ViewOrigin())
}
