// Package render provides rendering for block trees.
//
// # Overview
//
// This package contains the output side of blockview:
//
//   - Generic format conversion (SVG to PDF)
//   - Block geometry and drawing (in [block] subpackage)
//   - Connection-tree diagrams (in [nodelink] subpackage)
//
// # Format Conversion
//
// [ToPDF] converts any SVG to PDF using the external rsvg-convert tool
// (from librsvg). PNG output is rasterised in-process by the block sink.
//
//	svg, err := sink.RenderSVG(group)
//	pdf, err := render.ToPDF(svg)
//
// # Block Rendering
//
// The [block] subpackage measures, lays out, outlines, hit-tests and draws
// blocks. Key subpackages:
//   - [block/layout]: inline and external input measurement
//   - [block/outline]: closed outline paths and connector anchors
//   - [block/sink]: output formats (SVG, PNG, PDF, JSON)
//
// [block]: github.com/matzehuels/blockview/pkg/render/block
// [block/layout]: github.com/matzehuels/blockview/pkg/render/block/layout
// [block/outline]: github.com/matzehuels/blockview/pkg/render/block/outline
// [block/sink]: github.com/matzehuels/blockview/pkg/render/block/sink
// [nodelink]: github.com/matzehuels/blockview/pkg/render/nodelink
package render
