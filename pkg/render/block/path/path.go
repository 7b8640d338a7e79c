// Package path provides the integer polyline path used for block outlines,
// connector highlight shapes and inline cutouts.
//
// A Path is a sequence of MoveTo/LineTo/Close commands. Each MoveTo starts a
// new subpath, so an outline and its cutout holes live in one Path and are
// filled with the even-odd rule.
package path

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/blockview/pkg/geom"
)

// Op is a path command.
type Op uint8

const (
	MoveTo Op = iota
	LineTo
	Close
)

// Cmd is a single path command. Pt is unused for Close.
type Cmd struct {
	Op Op
	Pt geom.Point
}

// FillRule selects how overlapping subpaths are filled.
type FillRule uint8

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// Path is a drawable sequence of commands.
type Path struct {
	Cmds     []Cmd
	FillRule FillRule
}

// Reset clears the commands but keeps the backing storage.
func (p *Path) Reset() { p.Cmds = p.Cmds[:0] }

func (p *Path) MoveTo(x, y int) { p.Cmds = append(p.Cmds, Cmd{Op: MoveTo, Pt: geom.Pt(x, y)}) }
func (p *Path) LineTo(x, y int) { p.Cmds = append(p.Cmds, Cmd{Op: LineTo, Pt: geom.Pt(x, y)}) }
func (p *Path) Close()          { p.Cmds = append(p.Cmds, Cmd{Op: Close}) }

// Empty reports whether the path has no commands.
func (p *Path) Empty() bool { return len(p.Cmds) == 0 }

// Subpaths returns the number of subpaths (MoveTo commands).
func (p *Path) Subpaths() int {
	n := 0
	for _, c := range p.Cmds {
		if c.Op == MoveTo {
			n++
		}
	}
	return n
}

// Closed reports whether every subpath ends with Close.
func (p *Path) Closed() bool {
	if p.Empty() {
		return false
	}
	open := false
	for _, c := range p.Cmds {
		switch c.Op {
		case MoveTo:
			if open {
				return false
			}
			open = true
		case Close:
			open = false
		}
	}
	return !open
}

// Offset writes p translated by d into dst, replacing its commands.
// dst may be p.
func (p *Path) Offset(d geom.Point, dst *Path) {
	if dst != p {
		dst.Cmds = append(dst.Cmds[:0], p.Cmds...)
		dst.FillRule = p.FillRule
	}
	for i := range dst.Cmds {
		if dst.Cmds[i].Op != Close {
			dst.Cmds[i].Pt = dst.Cmds[i].Pt.Add(d)
		}
	}
}

// Mirrored returns a copy reflected about the vertical line x = width/2.
func (p *Path) Mirrored(width int) *Path {
	out := &Path{Cmds: slices.Clone(p.Cmds), FillRule: p.FillRule}
	for i := range out.Cmds {
		if out.Cmds[i].Op != Close {
			out.Cmds[i].Pt.X = width - out.Cmds[i].Pt.X
		}
	}
	return out
}

// Equal reports whether both paths hold identical commands and fill rule.
func (p *Path) Equal(q *Path) bool {
	return p.FillRule == q.FillRule && slices.Equal(p.Cmds, q.Cmds)
}

// Bounds returns the bounding box of all points. Right and Bottom hold the
// largest coordinates seen.
func (p *Path) Bounds() geom.Rect {
	first := true
	var r geom.Rect
	for _, c := range p.Cmds {
		if c.Op == Close {
			continue
		}
		if first {
			r = geom.Rect{Left: c.Pt.X, Top: c.Pt.Y, Right: c.Pt.X, Bottom: c.Pt.Y}
			first = false
			continue
		}
		r.Left = min(r.Left, c.Pt.X)
		r.Top = min(r.Top, c.Pt.Y)
		r.Right = max(r.Right, c.Pt.X)
		r.Bottom = max(r.Bottom, c.Pt.Y)
	}
	return r
}

// SVGData returns the path as an SVG "d" attribute value, translated by d.
func (p *Path) SVGData(d geom.Point) string {
	var b strings.Builder
	for i, c := range p.Cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Op {
		case MoveTo:
			fmt.Fprintf(&b, "M%d %d", c.Pt.X+d.X, c.Pt.Y+d.Y)
		case LineTo:
			fmt.Fprintf(&b, "L%d %d", c.Pt.X+d.X, c.Pt.Y+d.Y)
		case Close:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

// String implements fmt.Stringer.
func (p *Path) String() string { return p.SVGData(geom.Point{}) }
