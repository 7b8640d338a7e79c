package pipeline

import (
	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/render/block"
	"github.com/matzehuels/blockview/pkg/render/block/sink"
)

// =============================================================================
// Rendering
// =============================================================================

// Render generates every requested format for a laid-out tree.
func Render(g *block.Group, idx *block.Index, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := RenderFormat(g, idx, format, opts)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// RenderFormat generates a single format.
func RenderFormat(g *block.Group, idx *block.Index, format string, opts Options) ([]byte, error) {
	svgOpts := []sink.SVGOption{sink.WithPadding(opts.Padding)}
	switch format {
	case FormatSVG:
		return sink.RenderSVG(g, svgOpts...)
	case FormatPNG:
		return sink.RenderPNG(g, sink.WithScale(opts.RasterScale), sink.WithPNGPadding(opts.Padding))
	case FormatPDF:
		return sink.RenderPDF(g, sink.WithPDFSVGOptions(svgOpts...))
	case FormatJSON:
		return sink.RenderJSON(g, sink.WithJSONTracker(idx), sink.WithJSONSample(opts.Sample))
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
}
