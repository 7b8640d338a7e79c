package sink

import (
	"testing"

	"github.com/matzehuels/blockview/pkg/geom"
	"github.com/matzehuels/blockview/pkg/render/block"
	"github.com/matzehuels/blockview/pkg/render/block/sample"
	"github.com/matzehuels/blockview/pkg/workspace"
)

func newTree(t *testing.T, name string, opts ...block.Option) *block.Group {
	t.Helper()
	root, err := sample.Build(name)
	if err != nil {
		t.Fatalf("sample.Build(%q) error: %v", name, err)
	}
	return block.NewTree(root, workspace.NewHelper(false, 1), opts...)
}

func laidOutTree(t *testing.T, name string, opts ...block.Option) *block.Group {
	t.Helper()
	g := newTree(t, name, opts...)
	g.Measure(geom.Unbounded)
	g.Layout(geom.RectFromSize(geom.Point{}, g.Size()))
	return g
}

func countViews(g *block.Group) int {
	n := 0
	_ = g.Walk(func(*block.View) error {
		n++
		return nil
	})
	return n
}
