// Package pkg provides the core libraries for blockview, a geometry engine
// for puzzle-piece programming blocks.
//
// # Overview
//
// A block is a rounded rectangle with tab and notch connectors along its
// edges. Statement blocks chain vertically through previous and next
// connectors; value blocks plug into the inputs of their parent through an
// output tab. blockview measures a tree of blocks, lays it out row by row,
// builds the outline path, publishes the workspace position of every
// connector and answers hit tests, in left-to-right and right-to-left
// workspaces alike.
//
// # Architecture
//
// The typical data flow:
//
//	[model] block tree (or a [render/block/sample] fixture)
//	         ↓
//	[render/block] measure → layout → publish connector anchors
//	         ↓
//	[render/block/sink] SVG/PNG/PDF/JSON output
//
// # Quick Start
//
//	root, _ := sample.Build("controls_if")
//	g := block.NewTree(root, workspace.NewHelper(false, 1),
//	    block.WithTracker(block.NewIndex()))
//	g.Measure(geom.Unbounded)
//	g.Layout(geom.RectFromSize(geom.Point{}, g.Size()))
//	svg, _ := sink.RenderSVG(g)
//
// # Main Packages
//
// [geom] - Integer points, sizes and rectangles shared by every stage.
//
// [model] - Blocks, inputs and connections. Connections link a parent's
// next or input connector to a child's previous or output connector.
//
// [workspace] - Direction and scale of the hosting workspace, and the
// conversion of block-local points into workspace coordinates.
//
// [render/block] - Views, groups and the connector position index. The
// subpackages hold the geometry:
//
//   - [render/block/connector]: metrics and tab/notch shapes
//   - [render/block/input]: per-input measurement records
//   - [render/block/layout]: row breaking, widths and child placement
//   - [render/block/path]: outline path construction
//   - [render/block/outline]: connector anchors along the outline
//   - [render/block/hittest]: opaque field areas
//   - [render/block/highlight]: block and connection highlights
//   - [render/block/styles]: colours and strokes
//   - [render/block/sink]: SVG, PNG, PDF and JSON output
//   - [render/block/sample]: the built-in gallery
//
// [render/nodelink] - Connection-tree diagrams using Graphviz.
//
// [render] - Format conversion (SVG to PDF).
//
// ## Infrastructure
//
// [pipeline] - Build → layout → render used by every CLI command and the
// preview server.
//
// [config] - TOML configuration for metrics, style and workspace defaults.
//
// [cache] - Rendered artifact cache for the preview server.
//
// [observability] - Pipeline and HTTP hooks.
//
// [errors] - Coded errors with user messages and HTTP status mapping.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/render/block/...       # Block geometry only
//	go test -run Example                 # Examples only
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/geom
// [model]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/model
// [workspace]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/workspace
// [render]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/render
// [render/block]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/render/block
// [render/block/connector]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/render/block/connector
// [render/block/input]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/render/block/input
// [render/block/layout]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/render/block/layout
// [render/block/path]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/render/block/path
// [render/block/outline]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/render/block/outline
// [render/block/hittest]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/render/block/hittest
// [render/block/highlight]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/render/block/highlight
// [render/block/styles]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/render/block/styles
// [render/block/sink]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/render/block/sink
// [render/block/sample]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/render/block/sample
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/blockview/pkg/errors
package pkg
