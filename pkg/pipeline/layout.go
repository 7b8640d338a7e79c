package pipeline

import (
	"github.com/matzehuels/blockview/pkg/geom"
	"github.com/matzehuels/blockview/pkg/model"
	"github.com/matzehuels/blockview/pkg/render/block"
	"github.com/matzehuels/blockview/pkg/render/block/sample"
	"github.com/matzehuels/blockview/pkg/workspace"
)

// =============================================================================
// Tree Build and Layout
// =============================================================================

// BuildTree builds a fresh model tree for opts.Sample, shifted by (DX, DY).
// Options must already be validated.
func BuildTree(opts Options) (*model.Block, error) {
	root, err := sample.Build(opts.Sample)
	if err != nil {
		return nil, err
	}
	root.SetPosition(root.Position().Add(geom.Pt(opts.DX, opts.DY)))
	return root, nil
}

// LayoutTree creates the view tree for root, applies the mode override,
// runs a full measure and layout pass and sets the requested highlight on
// the root view. Connector anchors are published to the returned index.
func LayoutTree(root *model.Block, opts Options) (*block.Group, *block.Index, error) {
	h, err := ParseHighlight(opts.Highlight)
	if err != nil {
		return nil, nil, err
	}
	st, err := opts.Config.BlockStyle()
	if err != nil {
		return nil, nil, err
	}
	st.RenderCenters = opts.Centers

	idx := block.NewIndex()
	g := block.NewTree(root, workspace.NewHelper(opts.EffectiveRTL(), opts.EffectiveScale()),
		block.WithMetrics(opts.Config.Metrics),
		block.WithTracker(idx),
		block.WithStyle(st),
		block.WithLogger(opts.Logger),
	)
	applyMode(g, opts.Mode)

	Relayout(g)
	if err := h.Apply(g.First()); err != nil {
		return nil, nil, err
	}
	return g, idx, nil
}

// Relayout runs a full measure and layout pass over the tree.
func Relayout(g *block.Group) {
	g.Measure(geom.Unbounded)
	g.Layout(geom.RectFromSize(geom.Point{}, g.Size()))
}

// applyMode overrides the inline flag of every block in the tree.
func applyMode(g *block.Group, mode string) {
	if mode == ModeAuto || mode == "" {
		return
	}
	inline := mode == ModeInline
	_ = g.Walk(func(v *block.View) error {
		v.Block().InputsInline = inline
		return nil
	})
}

// CountConnectors returns the number of connectors on every block of the tree.
func CountConnectors(g *block.Group) int {
	n := 0
	_ = g.Walk(func(v *block.View) error {
		n += len(v.Block().AllConnections())
		return nil
	})
	return n
}

// countBlocks counts the blocks reachable from root through inputs and next
// connections.
func countBlocks(root *model.Block) int {
	n := 0
	stack := []*model.Block{root}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++
		for _, in := range b.Inputs() {
			if child := in.TargetBlock(); child != nil {
				stack = append(stack, child)
			}
		}
		if next := b.NextBlock(); next != nil {
			stack = append(stack, next)
		}
	}
	return n
}
