package model

import (
	"github.com/google/uuid"

	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/geom"
)

// ConnectionKind identifies the role a connection plays on its block.
type ConnectionKind int

const (
	ConnPrevious ConnectionKind = iota
	ConnNext
	ConnOutput
	ConnValueInput
	ConnStatementInput
)

func (k ConnectionKind) String() string {
	switch k {
	case ConnPrevious:
		return "previous"
	case ConnNext:
		return "next"
	case ConnOutput:
		return "output"
	case ConnValueInput:
		return "value_input"
	case ConnStatementInput:
		return "statement_input"
	default:
		return "unknown"
	}
}

// Connection is a typed attachment point owned by a block or one of its inputs.
type Connection struct {
	ID   uuid.UUID
	Kind ConnectionKind

	block    *Block
	input    *Input
	target   *Connection
	position geom.Point
}

func newConnection(kind ConnectionKind, b *Block, in *Input) *Connection {
	return &Connection{ID: uuid.New(), Kind: kind, block: b, input: in}
}

// Block returns the block that owns the connection.
func (c *Connection) Block() *Block { return c.block }

// Input returns the owning input, or nil for block-level connections.
func (c *Connection) Input() *Input { return c.input }

// Target returns the connection this one is attached to, if any.
func (c *Connection) Target() *Connection { return c.target }

// TargetBlock returns the block on the other side of the connection, if any.
func (c *Connection) TargetBlock() *Block {
	if c.target == nil {
		return nil
	}
	return c.target.block
}

// IsConnected reports whether the connection is attached.
func (c *Connection) IsConnected() bool { return c.target != nil }

// Position returns the last workspace anchor recorded for this connection.
func (c *Connection) Position() geom.Point { return c.position }

// SetPosition records the workspace anchor of this connection.
func (c *Connection) SetPosition(p geom.Point) { c.position = p }

// Connect attaches a to b. Both must be free, belong to different blocks and
// have compatible kinds.
func Connect(a, b *Connection) error {
	if a == nil || b == nil {
		return errors.New(errors.ErrCodeInvalidConnection, "cannot connect nil connection")
	}
	if a.block == b.block {
		return errors.New(errors.ErrCodeInvalidConnection, "cannot connect block %q to itself", a.block.Type)
	}
	if a.target != nil || b.target != nil {
		return errors.New(errors.ErrCodeInvalidConnection, "connection already attached")
	}
	if !compatible(a.Kind, b.Kind) {
		return errors.New(errors.ErrCodeInvalidConnection, "incompatible connection kinds %s and %s", a.Kind, b.Kind)
	}
	a.target = b
	b.target = a
	return nil
}

// Disconnect detaches c from its target. It is a no-op on a free connection.
func Disconnect(c *Connection) {
	if c == nil || c.target == nil {
		return
	}
	c.target.target = nil
	c.target = nil
}

func compatible(a, b ConnectionKind) bool {
	if a > b {
		a, b = b, a
	}
	switch {
	case a == ConnPrevious && (b == ConnNext || b == ConnStatementInput):
		return true
	case a == ConnOutput && b == ConnValueInput:
		return true
	default:
		return false
	}
}
