package sink

import (
	"bytes"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/geom"
	"github.com/matzehuels/blockview/pkg/render/block"
	"github.com/matzehuels/blockview/pkg/render/block/path"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	padding    int
	background *colorful.Color
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGPadding sets the blank margin around the tree in view units.
func WithPNGPadding(p int) PNGOption {
	return func(r *pngRenderer) { r.padding = p }
}

// WithPNGBackground fills the image before drawing. The default is transparent.
func WithPNGBackground(c colorful.Color) PNGOption {
	return func(r *pngRenderer) { r.background = &c }
}

// RenderPNG rasterises the tree with even-odd filled outlines.
func RenderPNG(g *block.Group, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0, padding: 8}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale must be positive, got %v", r.scale)
	}

	size := g.Size()
	w := int(float64(size.W+2*r.padding) * r.scale)
	h := int(float64(size.H+2*r.padding) * r.scale)
	dc := gg.NewContext(max(w, 1), max(h, 1))
	if r.background != nil {
		dc.SetColor(*r.background)
		dc.Clear()
	}
	dc.Scale(r.scale, r.scale)
	dc.Translate(float64(r.padding), float64(r.padding))

	if err := g.Draw(&rasterSurface{dc: dc}); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

type rasterSurface struct {
	dc *gg.Context
}

func (s *rasterSurface) trace(p *path.Path, off geom.Point) {
	s.dc.NewSubPath()
	for _, c := range p.Cmds {
		switch c.Op {
		case path.MoveTo:
			s.dc.MoveTo(float64(c.Pt.X+off.X), float64(c.Pt.Y+off.Y))
		case path.LineTo:
			s.dc.LineTo(float64(c.Pt.X+off.X), float64(c.Pt.Y+off.Y))
		case path.Close:
			s.dc.ClosePath()
		}
	}
}

func (s *rasterSurface) Fill(p *path.Path, off geom.Point, c colorful.Color) {
	if p.FillRule == path.EvenOdd {
		s.dc.SetFillRuleEvenOdd()
	} else {
		s.dc.SetFillRuleWinding()
	}
	s.trace(p, off)
	s.dc.SetColor(c)
	s.dc.Fill()
}

func (s *rasterSurface) Stroke(p *path.Path, off geom.Point, c colorful.Color, width float64) {
	s.trace(p, off)
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.SetLineJoinRound()
	s.dc.Stroke()
}

func (s *rasterSurface) Dot(center geom.Point, radius float64, c colorful.Color) {
	s.dc.DrawCircle(float64(center.X), float64(center.Y), radius)
	s.dc.SetColor(c)
	s.dc.Fill()
}
