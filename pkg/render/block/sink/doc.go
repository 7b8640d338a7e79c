// Package sink writes laid-out block trees to output formats.
//
// [RenderSVG] writes an SVG document directly. [RenderPNG] rasterises the
// same drawing calls in-process with fogleman/gg. [RenderPDF] converts the
// SVG with rsvg-convert. [RenderJSON] exports the geometry: outlines,
// input rectangles and connector anchors in both view and workspace space.
//
// Every renderer requires the tree to be measured and laid out; drawing an
// unlaid tree returns errors.ErrCodeNotLaidOut.
package sink
