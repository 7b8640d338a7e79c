package errors

import (
	"testing"
)

func TestValidateSampleName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "controls_if", false},
		{"valid with dash", "row-break", false},
		{"valid with digits", "math2", false},

		{"empty", "", true},
		{"too long", "a" + string(make([]byte, 80)), true},
		{"uppercase", "Controls_if", true},
		{"leading digit", "2math", true},
		{"path traversal", "../etc", true},
		{"slash", "a/b", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSampleName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSampleName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateSampleName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative file", "out/block.svg", false},
		{"absolute file", "/tmp/block.png", false},
		{"bare name", "block", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"path traversal", "../block.svg", true},
		{"null byte", "block\x00.svg", true},
		{"control char", "block\x01.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
