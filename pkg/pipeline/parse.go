package pipeline

import (
	"strings"

	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/model"
	"github.com/matzehuels/blockview/pkg/render/block"
)

// Highlight targets accepted by [ParseHighlight].
const (
	HighlightBlock    = "block"
	HighlightPrevious = "previous"
	HighlightNext     = "next"
	HighlightOutput   = "output"
	HighlightInput    = "input"
)

// Highlight is a parsed highlight request for the root block.
type Highlight struct {
	Target string // empty for no highlight
	Input  string // input name when Target is HighlightInput
}

// ParseHighlight parses "block", "previous", "next", "output" or
// "input:<name>". The empty string means no highlight.
func ParseHighlight(s string) (Highlight, error) {
	switch s {
	case "":
		return Highlight{}, nil
	case HighlightBlock, HighlightPrevious, HighlightNext, HighlightOutput:
		return Highlight{Target: s}, nil
	}
	name, ok := strings.CutPrefix(s, HighlightInput+":")
	if !ok || name == "" {
		return Highlight{}, errors.New(errors.ErrCodeInvalidInput,
			"invalid highlight: %q (must be one of: block, previous, next, output, input:<name>)", s)
	}
	return Highlight{Target: HighlightInput, Input: name}, nil
}

// String returns the flag form of h.
func (h Highlight) String() string {
	if h.Target == HighlightInput {
		return HighlightInput + ":" + h.Input
	}
	return h.Target
}

// Connection resolves the connector h names on b. It returns nil for no
// highlight and for a whole-block highlight.
func (h Highlight) Connection(b *model.Block) (*model.Connection, error) {
	var c *model.Connection
	switch h.Target {
	case "", HighlightBlock:
		return nil, nil
	case HighlightPrevious:
		c = b.PreviousConnection()
	case HighlightNext:
		c = b.NextConnection()
	case HighlightOutput:
		c = b.OutputConnection()
	case HighlightInput:
		in, ok := b.Input(h.Input)
		if !ok {
			return nil, errors.New(errors.ErrCodeUnknownConnector, "block %q has no input %q", b.Type, h.Input)
		}
		if in.Connection() == nil {
			return nil, errors.New(errors.ErrCodeUnknownConnector, "input %q of block %q has no connector", h.Input, b.Type)
		}
		return in.Connection(), nil
	}
	if c == nil {
		return nil, errors.New(errors.ErrCodeUnknownConnector, "block %q has no %s connector", b.Type, h.Target)
	}
	return c, nil
}

// Apply sets the highlight on v, replacing any previous one.
func (h Highlight) Apply(v *block.View) error {
	v.ClearHighlight()
	if h.Target == "" {
		return nil
	}
	if h.Target == HighlightBlock {
		v.SetHighlightBlock()
		return nil
	}
	c, err := h.Connection(v.Block())
	if err != nil {
		return err
	}
	return v.SetHighlightConnection(c)
}
