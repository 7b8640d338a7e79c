// Package connector produces the notch and tab shapes drawn where blocks
// connect: previous, next, output, value input and statement input.
//
// Every builder takes a direction sign (+1 left-to-right, -1 right-to-left)
// that scales all horizontal deltas, so one sequence of operations yields
// both the normal and the mirrored shape.
//
// A connector spans OffsetFromCorner + 2*SizePerpendicular + SizeParallel
// along the edge it sits on, starting at the anchor point.
package connector

import (
	"github.com/matzehuels/blockview/pkg/errors"
)

// Metrics holds the view-space dimensions shared by connectors and block
// layout.
type Metrics struct {
	OffsetFromCorner      int `toml:"offset_from_corner" json:"offset_from_corner"`
	SizeParallel          int `toml:"size_parallel" json:"size_parallel"`
	SizePerpendicular     int `toml:"size_perpendicular" json:"size_perpendicular"`
	StatementIndent       int `toml:"statement_indent" json:"statement_indent"`
	StatementBottomHeight int `toml:"statement_bottom_height" json:"statement_bottom_height"`
	MinWidth              int `toml:"min_width" json:"min_width"`
	MinHeight             int `toml:"min_height" json:"min_height"`
	FieldPadding          int `toml:"field_padding" json:"field_padding"`
	MinCutoutWidth        int `toml:"min_cutout_width" json:"min_cutout_width"`
}

// DefaultMetrics returns the stock block dimensions.
func DefaultMetrics() Metrics {
	return Metrics{
		OffsetFromCorner:      10,
		SizeParallel:          20,
		SizePerpendicular:     10,
		StatementIndent:       60,
		StatementBottomHeight: 20,
		MinWidth:              60,
		MinHeight:             60,
		FieldPadding:          8,
		MinCutoutWidth:        30,
	}
}

// Validate rejects negative dimensions.
func (m Metrics) Validate() error {
	checks := []struct {
		name string
		v    int
	}{
		{"offset_from_corner", m.OffsetFromCorner},
		{"size_parallel", m.SizeParallel},
		{"size_perpendicular", m.SizePerpendicular},
		{"statement_indent", m.StatementIndent},
		{"statement_bottom_height", m.StatementBottomHeight},
		{"min_width", m.MinWidth},
		{"min_height", m.MinHeight},
		{"field_padding", m.FieldPadding},
		{"min_cutout_width", m.MinCutoutWidth},
	}
	for _, c := range checks {
		if c.v < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "metric %s must be non-negative, got %d", c.name, c.v)
		}
	}
	return nil
}

// Span is the length a connector occupies along its edge, measured from
// the anchor.
func (m Metrics) Span() int {
	return m.OffsetFromCorner + 2*m.SizePerpendicular + m.SizeParallel
}

// MinStatementHeight is the smallest opening of a statement input. The next
// tab hangs SizePerpendicular into the opening and must clear its lower arm.
func (m Metrics) MinStatementHeight() int {
	return 2 * m.SizePerpendicular
}
