package block_test

import (
	"fmt"

	"github.com/matzehuels/blockview/pkg/geom"
	"github.com/matzehuels/blockview/pkg/render/block"
	"github.com/matzehuels/blockview/pkg/render/block/sample"
	"github.com/matzehuels/blockview/pkg/workspace"
)

func ExampleNewTree() {
	root, _ := sample.Build("empty")

	// Track published connector positions
	idx := block.NewIndex()
	g := block.NewTree(root, workspace.NewHelper(false, 1), block.WithTracker(idx))
	g.Measure(geom.Unbounded)
	g.Layout(geom.RectFromSize(geom.Point{}, g.Size()))

	fmt.Println("size:", g.Size())
	fmt.Println("previous:", root.PreviousConnection().Position())
	fmt.Println("next:", root.NextConnection().Position())
	// Output:
	// size: 60x70
	// previous: (40,40)
	// next: (40,100)
}

func ExampleView_HitTest() {
	root, _ := sample.Build("text_print")
	g := block.NewTree(root, workspace.NewHelper(false, 1))
	g.Measure(geom.Unbounded)
	g.Layout(geom.RectFromSize(geom.Point{}, g.Size()))

	v := g.First()
	onLabel, _ := v.HitTest(geom.Pt(5, 5))
	overChild, _ := v.HitTest(geom.Pt(100, 5))
	fmt.Println("on label:", onLabel)
	fmt.Println("over child:", overChild)
	// Output:
	// on label: true
	// over child: false
}
