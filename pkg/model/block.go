package model

import (
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/geom"
)

// InputKind is the kind of an input slot.
type InputKind int

const (
	InputValue InputKind = iota
	InputStatement
	InputDummy
)

func (k InputKind) String() string {
	switch k {
	case InputValue:
		return "value"
	case InputStatement:
		return "statement"
	case InputDummy:
		return "dummy"
	default:
		return "unknown"
	}
}

// ParseInputKind parses "value", "statement" or "dummy".
func ParseInputKind(s string) (InputKind, error) {
	switch s {
	case "value":
		return InputValue, nil
	case "statement":
		return InputStatement, nil
	case "dummy":
		return InputDummy, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown input kind %q", s)
}

// Field is an opaque field widget as far as layout is concerned: a labelled
// box of fixed size.
type Field struct {
	Label  string
	Width  int
	Height int
}

// Input is a named slot on a block.
type Input struct {
	Name   string
	Kind   InputKind
	Fields []Field

	block      *Block
	connection *Connection
}

// Block returns the owning block.
func (in *Input) Block() *Block { return in.block }

// Connection returns the input's connection; nil for dummy inputs.
func (in *Input) Connection() *Connection { return in.connection }

// TargetBlock returns the child block attached to this input, if any.
func (in *Input) TargetBlock() *Block {
	if in.connection == nil {
		return nil
	}
	return in.connection.TargetBlock()
}

// Block is a single visual programming block.
type Block struct {
	ID           uuid.UUID
	Type         string
	Hue          float64
	InputsInline bool

	inputs   []*Input
	previous *Connection
	next     *Connection
	output   *Connection
	position geom.Point
}

// Option configures a block in [NewBlock].
type Option func(*Block)

// WithPrevious gives the block a previous connection.
func WithPrevious() Option {
	return func(b *Block) { b.previous = newConnection(ConnPrevious, b, nil) }
}

// WithNext gives the block a next connection.
func WithNext() Option {
	return func(b *Block) { b.next = newConnection(ConnNext, b, nil) }
}

// WithOutput gives the block an output connection.
func WithOutput() Option {
	return func(b *Block) { b.output = newConnection(ConnOutput, b, nil) }
}

// WithHue sets the block colour hue in degrees.
func WithHue(h float64) Option { return func(b *Block) { b.Hue = h } }

// WithInline selects inline input layout.
func WithInline(inline bool) Option { return func(b *Block) { b.InputsInline = inline } }

// WithPosition sets the initial workspace position.
func WithPosition(p geom.Point) Option { return func(b *Block) { b.position = p } }

// WithInput appends an input of the given kind.
func WithInput(name string, kind InputKind, fields ...Field) Option {
	return func(b *Block) {
		in := &Input{Name: name, Kind: kind, Fields: fields, block: b}
		switch kind {
		case InputValue:
			in.connection = newConnection(ConnValueInput, b, in)
		case InputStatement:
			in.connection = newConnection(ConnStatementInput, b, in)
		}
		b.inputs = append(b.inputs, in)
	}
}

// NewBlock creates a block of the given type.
func NewBlock(typ string, opts ...Option) (*Block, error) {
	b := &Block{ID: uuid.New(), Type: typ}
	for _, opt := range opts {
		opt(b)
	}
	if b.previous != nil && b.output != nil {
		return nil, errors.New(errors.ErrCodeInvalidConnection,
			"block %q cannot have both a previous and an output connection", typ)
	}
	return b, nil
}

// Inputs returns the ordered inputs.
func (b *Block) Inputs() []*Input { return b.inputs }

// Input returns the input with the given name.
func (b *Block) Input(name string) (*Input, bool) {
	for _, in := range b.inputs {
		if in.Name == name {
			return in, true
		}
	}
	return nil, false
}

func (b *Block) PreviousConnection() *Connection { return b.previous }
func (b *Block) NextConnection() *Connection     { return b.next }
func (b *Block) OutputConnection() *Connection   { return b.output }

// PreviousBlock returns the block this block's previous connection is
// attached to: either the block above it in a stack or the owner of the
// statement input it sits in.
func (b *Block) PreviousBlock() *Block {
	if b.previous == nil {
		return nil
	}
	return b.previous.TargetBlock()
}

// NextBlock returns the block attached below this one.
func (b *Block) NextBlock() *Block {
	if b.next == nil {
		return nil
	}
	return b.next.TargetBlock()
}

// IsTopLevel reports whether the block has no parent: nothing above it and
// its output, if any, is free.
func (b *Block) IsTopLevel() bool {
	if b.PreviousBlock() != nil {
		return false
	}
	return b.output == nil || b.output.target == nil
}

// AllConnections returns every connection on the block: previous, next,
// output, then the input connections in order.
func (b *Block) AllConnections() []*Connection {
	var out []*Connection
	for _, c := range []*Connection{b.previous, b.next, b.output} {
		if c != nil {
			out = append(out, c)
		}
	}
	for _, in := range b.inputs {
		if in.connection != nil {
			out = append(out, in.connection)
		}
	}
	return out
}

// Owns reports whether c belongs to this block or one of its inputs.
func (b *Block) Owns(c *Connection) bool {
	return c != nil && c.block == b
}

// Position returns the block's workspace position.
func (b *Block) Position() geom.Point { return b.position }

// SetPosition updates the block's workspace position.
func (b *Block) SetPosition(p geom.Point) { b.position = p }

// Color returns the fill colour derived from the hue.
func (b *Block) Color() colorful.Color {
	return colorful.Hsv(b.Hue, 0.45, 0.65)
}
