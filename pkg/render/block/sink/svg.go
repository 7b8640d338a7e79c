package sink

import (
	"bytes"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/blockview/pkg/geom"
	"github.com/matzehuels/blockview/pkg/render/block"
	"github.com/matzehuels/blockview/pkg/render/block/path"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	padding    int
	background *colorful.Color
}

// WithPadding sets the blank margin around the tree (default 8).
func WithPadding(p int) SVGOption { return func(r *svgRenderer) { r.padding = p } }

// WithBackground fills the canvas before drawing.
func WithBackground(c colorful.Color) SVGOption {
	return func(r *svgRenderer) { r.background = &c }
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{padding: 8}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG draws the tree as an SVG document.
func RenderSVG(g *block.Group, opts ...SVGOption) ([]byte, error) {
	r := newSVGRenderer(opts...)
	size := g.Size()
	pad := r.padding
	w, h := size.W+2*pad, size.H+2*pad

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%d %d %d %d" width="%d" height="%d">`+"\n",
		-pad, -pad, w, h, w, h)
	if r.background != nil {
		fmt.Fprintf(&buf, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
			-pad, -pad, w, h, r.background.Hex())
	}

	if err := g.Draw(&svgSurface{buf: &buf}); err != nil {
		return nil, err
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

type svgSurface struct {
	buf *bytes.Buffer
}

func (s *svgSurface) Fill(p *path.Path, off geom.Point, c colorful.Color) {
	fmt.Fprintf(s.buf, `  <path class="block" d="%s" fill="%s" fill-rule="%s" stroke="none"/>`+"\n",
		p.SVGData(off), c.Hex(), p.FillRule)
}

func (s *svgSurface) Stroke(p *path.Path, off geom.Point, c colorful.Color, width float64) {
	fmt.Fprintf(s.buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="%.1f" stroke-linejoin="round"/>`+"\n",
		p.SVGData(off), c.Hex(), width)
}

func (s *svgSurface) Dot(center geom.Point, radius float64, c colorful.Color) {
	fmt.Fprintf(s.buf, `  <circle class="connector" cx="%d" cy="%d" r="%.1f" fill="%s"/>`+"\n",
		center.X, center.Y, radius, c.Hex())
}
