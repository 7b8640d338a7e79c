// Package block is the host-facing block geometry engine.
//
// A tree of blocks is turned into a tree of views with [NewTree]. The root
// [Group] holds the top-level stack; every connected value or statement input
// owns a nested Group for the stack attached to it.
//
// # Passes
//
// The host drives three strictly ordered steps:
//
//	g := block.NewTree(root, workspace.NewHelper(rtl, 1), block.WithTracker(idx))
//	g.Measure(geom.Unbounded)
//	g.Layout(geom.RectFromSize(geom.Point{}, g.Size()))
//	err := g.Draw(surface)
//
// Measure runs the [layout] engine for every view. Layout places inputs,
// builds each outline with the [outline] builder and publishes every
// connector's workspace anchor to the [Tracker]. Draw paints fill, border,
// highlight and the optional connector-centre overlay onto a [Surface].
//
// # Publication
//
// Connector anchors are converted from view space to workspace space
// relative to the root block's model position. Moving a block without a
// shape change only needs [View.UpdateConnectorLocations], which walks the
// attached subtrees with an explicit work stack.
//
// # Errors
//
// Hit testing, drawing and anchor lookups before the first layout pass
// return errors.ErrCodeNotLaidOut. Highlighting or looking up a connection
// the block does not own returns errors.ErrCodeUnknownConnector.
//
// [layout]: github.com/matzehuels/blockview/pkg/render/block/layout
// [outline]: github.com/matzehuels/blockview/pkg/render/block/outline
package block
