package block

import (
	"github.com/matzehuels/blockview/pkg/geom"
	"github.com/matzehuels/blockview/pkg/model"
	"github.com/matzehuels/blockview/pkg/render/block/input"
	"github.com/matzehuels/blockview/pkg/workspace"
)

// Group is a vertical stack of views: a block followed by the blocks
// attached to its next connection. Under RTL the stack is right-aligned.
type Group struct {
	views  []*View
	helper *workspace.Helper

	// parent and owner are nil for the root group.
	parent *input.View
	owner  *View

	size   geom.Size
	bounds geom.Rect
}

// NewTree builds the view tree for the stack starting at root.
func NewTree(root *model.Block, h *workspace.Helper, opts ...Option) *Group {
	return newGroup(root, nil, nil, h, newConfig(opts...))
}

func newGroup(first *model.Block, parent *input.View, owner *View, h *workspace.Helper, cfg *config) *Group {
	g := &Group{helper: h, parent: parent, owner: owner}
	for b := first; b != nil; b = b.NextBlock() {
		g.views = append(g.views, newView(b, g, h, cfg))
	}
	return g
}

// Views returns the views of the stack, top to bottom.
func (g *Group) Views() []*View { return g.views }

// First returns the top view of the stack.
func (g *Group) First() *View { return g.views[0] }

// Root returns the outermost group of the tree.
func (g *Group) Root() *Group {
	for g.owner != nil {
		g = g.owner.group
	}
	return g
}

// Helper returns the workspace helper shared by the tree.
func (g *Group) Helper() *workspace.Helper { return g.helper }

// Size returns the measured size.
func (g *Group) Size() geom.Size { return g.size }

// Bounds returns the group rectangle relative to its parent input, or to the
// canvas for the root group.
func (g *Group) Bounds() geom.Rect { return g.bounds }

// Measure measures every view. The stack is as wide as its widest view and
// each block starts at the previous block's next offset.
func (g *Group) Measure(c geom.Constraints) geom.Size {
	g.size = geom.Size{}
	for i, v := range g.views {
		s := v.Measure(c)
		g.size.W = max(g.size.W, s.W)
		if i < len(g.views)-1 {
			g.size.H += v.NextBlockVerticalOffset()
		} else {
			g.size.H += s.H
		}
	}
	return g.size
}

// Layout places the stack at bounds and lays out every view.
func (g *Group) Layout(bounds geom.Rect) {
	g.bounds = bounds
	y := 0
	for _, v := range g.views {
		s := v.Size()
		x := 0
		if g.helper.RTL() {
			x = g.size.W - s.W
		}
		v.Layout(geom.RectFromSize(geom.Pt(x, y), s))
		y += v.NextBlockVerticalOffset()
	}
}

// HitTest returns the topmost view whose opaque area contains p, given in
// root group coordinates.
func (g *Group) HitTest(p geom.Point) (*View, error) {
	var hit *View
	err := g.Walk(func(v *View) error {
		ok, err := v.HitTest(p.Sub(v.ViewOrigin()))
		if err != nil {
			return err
		}
		if ok {
			hit = v
		}
		return nil
	})
	return hit, err
}

// Draw draws every view of the tree, parents before their children.
func (g *Group) Draw(s Surface) error {
	return g.Walk(func(v *View) error { return v.Draw(s) })
}

// Walk visits every view of the tree in drawing order: each view, then the
// stacks attached to its inputs, then the next view of the stack.
func (g *Group) Walk(fn func(*View) error) error {
	stack := make([]*View, 0, len(g.views))
	for i := len(g.views) - 1; i >= 0; i-- {
		stack = append(stack, g.views[i])
	}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := fn(v); err != nil {
			return err
		}
		for i := len(v.children) - 1; i >= 0; i-- {
			child := v.children[i]
			if child == nil {
				continue
			}
			for j := len(child.views) - 1; j >= 0; j-- {
				stack = append(stack, child.views[j])
			}
		}
	}
	return nil
}

// Find returns the view of block b within the tree.
func (g *Group) Find(b *model.Block) (*View, bool) {
	var found *View
	_ = g.Walk(func(v *View) error {
		if v.block == b && found == nil {
			found = v
		}
		return nil
	})
	return found, found != nil
}

// UpdateAllConnectorLocations republishes the connectors of every view in
// the stack and of everything attached to them.
func (g *Group) UpdateAllConnectorLocations() {
	for _, v := range g.views {
		v.UpdateConnectorLocations()
	}
}
