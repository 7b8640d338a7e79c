package block

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/blockview/pkg/geom"
	"github.com/matzehuels/blockview/pkg/render/block/path"
)

// Surface is a drawing target. Paths are given in view coordinates relative
// to offset; implementations honour the path's fill rule.
type Surface interface {
	Fill(p *path.Path, offset geom.Point, c colorful.Color)
	Stroke(p *path.Path, offset geom.Point, c colorful.Color, width float64)
	Dot(center geom.Point, radius float64, c colorful.Color)
}
