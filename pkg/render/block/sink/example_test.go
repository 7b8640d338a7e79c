package sink_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/blockview/pkg/geom"
	"github.com/matzehuels/blockview/pkg/render/block"
	"github.com/matzehuels/blockview/pkg/render/block/sample"
	"github.com/matzehuels/blockview/pkg/render/block/sink"
	"github.com/matzehuels/blockview/pkg/workspace"
)

func ExampleRenderSVG() {
	root, _ := sample.Build("controls_if")
	g := block.NewTree(root, workspace.NewHelper(false, 1))
	g.Measure(geom.Unbounded)
	g.Layout(geom.RectFromSize(geom.Point{}, g.Size()))

	svg, _ := sink.RenderSVG(g)
	fmt.Println("SVG starts with:", string(svg[:4]))
	fmt.Println("Even-odd fill:", strings.Contains(string(svg), `fill-rule="evenodd"`))
	// Output:
	// SVG starts with: <svg
	// Even-odd fill: true
}
