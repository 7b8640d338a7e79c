// Package highlight tracks what part of a block is emphasised and resolves
// it to a path to stroke.
package highlight

import (
	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/model"
	"github.com/matzehuels/blockview/pkg/render/block/connector"
	"github.com/matzehuels/blockview/pkg/render/block/outline"
	"github.com/matzehuels/blockview/pkg/render/block/path"
)

// Mode is the highlight target kind.
type Mode int

const (
	None Mode = iota
	Block
	Connection
)

func (m Mode) String() string {
	switch m {
	case Block:
		return "block"
	case Connection:
		return "connection"
	default:
		return "none"
	}
}

// Selector holds the current highlight target. The most recent call wins.
type Selector struct {
	mode Mode
	conn *model.Connection
}

func (s *Selector) SetBlock() {
	s.mode = Block
	s.conn = nil
}

func (s *Selector) SetConnection(c *model.Connection) {
	s.mode = Connection
	s.conn = c
}

func (s *Selector) Clear() {
	s.mode = None
	s.conn = nil
}

func (s *Selector) Mode() Mode                    { return s.mode }
func (s *Selector) Connection() *model.Connection { return s.conn }

// Resolve returns the path to stroke for the current target: the outline
// itself, a connector shape offset to its anchor and written into dst, or
// nil when nothing is highlighted.
func (s *Selector) Resolve(dst, outlinePath *path.Path, b *model.Block, anchors *outline.Anchors, m connector.Metrics, sign int) (*path.Path, error) {
	switch s.mode {
	case Block:
		return outlinePath, nil
	case Connection:
	default:
		return nil, nil
	}

	c := s.conn
	if c == nil {
		return nil, errors.New(errors.ErrCodeUnknownConnector, "no connection selected on block %q", b.Type)
	}
	switch c {
	case b.OutputConnection():
		m.Path(connector.ShapeOutput, sign).Offset(anchors.Output, dst)
		return dst, nil
	case b.PreviousConnection():
		m.Path(connector.ShapePrevious, sign).Offset(anchors.Previous, dst)
		return dst, nil
	case b.NextConnection():
		m.Path(connector.ShapeNext, sign).Offset(anchors.Next, dst)
		return dst, nil
	}

	in := c.Input()
	for i, candidate := range b.Inputs() {
		if in == nil || candidate != in || i >= len(anchors.Inputs) {
			continue
		}
		shape := connector.ShapeValueInput
		if in.Kind == model.InputStatement {
			shape = connector.ShapeNext
		}
		m.Path(shape, sign).Offset(anchors.Inputs[i], dst)
		return dst, nil
	}
	return nil, errors.New(errors.ErrCodeUnknownConnector,
		"connection %s is not owned by block %q", c.ID, b.Type)
}
