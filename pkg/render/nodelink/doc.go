// Package nodelink renders block trees as node-link diagrams.
//
// # Overview
//
// Where the block sink draws the blocks themselves, this package draws
// how they are wired: one box per block and one arrow per connection, using
// Graphviz. It is handy for checking which stack a block ended up in.
//
// # Usage
//
// Convert a tree to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(root, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Edges
//
// Value inputs are drawn as plain arrows, statement inputs as bold arrows
// and next connections as dotted arrows. Every edge carries the input name
// or "next" as its label.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF conversion requires librsvg (rsvg-convert).
package nodelink
