// Package sample provides the built-in gallery of block trees used by the
// CLI, the preview server and tests.
package sample

import (
	"slices"

	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/geom"
	"github.com/matzehuels/blockview/pkg/model"
)

// Sample is a named block tree.
type Sample struct {
	Name        string
	Description string
	build       func(b *builder) *model.Block
}

// Build creates a fresh copy of the tree and returns its root block.
func (s Sample) Build() (*model.Block, error) {
	b := &builder{}
	root := s.build(b)
	if b.err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, b.err, "build sample %q", s.Name)
	}
	root.SetPosition(Origin)
	return root, nil
}

// Origin is the workspace position given to every sample root.
var Origin = geom.Pt(40, 40)

var gallery = []Sample{
	{"empty", "block with no inputs", buildEmpty},
	{"text_print", "statement block printing a nested text value", buildTextPrint},
	{"math_arithmetic", "inline expression with two value inputs", buildArithmetic},
	{"controls_if", "external if/do with a nested condition and body", buildIf},
	{"repeat", "inline repeat with a two-block body stack", buildRepeat},
	{"row_break", "inline [value, value, statement, dummy] row break", buildRowBreak},
	{"adjacent_statements", "inline block with two statement inputs back to back", buildAdjacent},
	{"nested", "three levels of statement and value nesting", buildNested},
}

// All returns the gallery in display order.
func All() []Sample { return slices.Clone(gallery) }

// Names returns the sample names in display order.
func Names() []string {
	names := make([]string, len(gallery))
	for i, s := range gallery {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a sample by name.
func Lookup(name string) (Sample, error) {
	if err := errors.ValidateSampleName(name); err != nil {
		return Sample{}, err
	}
	for _, s := range gallery {
		if s.Name == name {
			return s, nil
		}
	}
	return Sample{}, errors.New(errors.ErrCodeSampleNotFound, "no sample named %q", name)
}

// Build looks up a sample and builds it.
func Build(name string) (*model.Block, error) {
	s, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return s.Build()
}
