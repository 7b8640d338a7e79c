// Package geom provides the integer point, size and rectangle types shared by
// the block layout, outline and hit-testing packages.
//
// All coordinates are integer view or workspace units with the origin at the
// top-left and y growing downward.
package geom

import "fmt"

// Point is a 2D coordinate or offset.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// String implements fmt.Stringer.
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Size is a width/height pair.
type Size struct {
	W, H int
}

// String implements fmt.Stringer.
func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// Rect is an axis-aligned rectangle. Left/Top are inclusive and Right/Bottom
// exclusive, so a Rect of zero width contains no points.
type Rect struct {
	Left, Top     int
	Right, Bottom int
}

// RectFromSize returns the rectangle of size s with its top-left at origin.
func RectFromSize(origin Point, s Size) Rect {
	return Rect{Left: origin.X, Top: origin.Y, Right: origin.X + s.W, Bottom: origin.Y + s.H}
}

// Width returns the horizontal span of the rectangle.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the vertical span of the rectangle.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{r.Left, r.Top} }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{r.Width(), r.Height()} }

// Contains reports whether p lies in r, including the top and left edges and
// excluding the bottom and right edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{r.Left + d.X, r.Top + d.Y, r.Right + d.X, r.Bottom + d.Y}
}

// Constraints bounds a measurement pass. A zero MaxWidth means unbounded.
type Constraints struct {
	MaxWidth int
}

// Unbounded is the constraint used for free-floating top-level stacks.
var Unbounded = Constraints{}
