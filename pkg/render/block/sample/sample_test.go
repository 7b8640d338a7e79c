package sample

import (
	"testing"

	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/model"
)

func TestAllSamplesBuild(t *testing.T) {
	for _, s := range All() {
		t.Run(s.Name, func(t *testing.T) {
			root, err := s.Build()
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if root.Position() != Origin {
				t.Errorf("root position = %v, want %v", root.Position(), Origin)
			}
			if !root.IsTopLevel() {
				t.Error("root is not top-level")
			}
			if err := errors.ValidateSampleName(s.Name); err != nil {
				t.Errorf("sample name rejected: %v", err)
			}
		})
	}
}

func TestBuildReturnsFreshTrees(t *testing.T) {
	a, err := Build("controls_if")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	b, err := Build("controls_if")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if a == b || a.ID == b.ID {
		t.Error("Build() returned a shared tree")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		wantCode errors.Code
	}{
		{"repeat", ""},
		{"missing", errors.ErrCodeSampleNotFound},
		{"Bad Name", errors.ErrCodeInvalidInput},
		{"", errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Lookup(tt.name)
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Fatalf("Lookup(%q) code = %q, want %q (err %v)", tt.name, got, tt.wantCode, err)
			}
			if err == nil && s.Name != tt.name {
				t.Errorf("Lookup(%q) returned %q", tt.name, s.Name)
			}
		})
	}
}

func TestRowBreakShape(t *testing.T) {
	root, err := Build("row_break")
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	want := []model.InputKind{model.InputValue, model.InputValue, model.InputStatement, model.InputDummy}
	inputs := root.Inputs()
	if len(inputs) != len(want) || !root.InputsInline {
		t.Fatalf("row_break has %d inputs, inline=%v", len(inputs), root.InputsInline)
	}
	for i, in := range inputs {
		if in.Kind != want[i] {
			t.Errorf("input %d kind = %s, want %s", i, in.Kind, want[i])
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(All()) || names[0] != "empty" {
		t.Errorf("Names() = %v", names)
	}
}
