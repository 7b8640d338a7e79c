package cli

import (
	"testing"

	"github.com/matzehuels/blockview/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces trimmed", "svg, json", []string{"svg", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid svg", []string{"svg"}, false},
		{"valid all", []string{"svg", "pdf", "png", "json"}, false},
		{"invalid format", []string{"invalid"}, true},
		{"mixed valid invalid", []string{"svg", "invalid"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pipeline.ValidateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		sample string
		format string
		single bool
		want   string
	}{
		{"derived from sample", "", "controls_if", "svg", true, "controls_if.svg"},
		{"explicit single", "out/if.svg", "controls_if", "svg", true, "out/if.svg"},
		{"explicit single keeps odd extension", "if.image", "controls_if", "png", true, "if.image"},
		{"base with format extension", "out/if.svg", "controls_if", "png", false, "out/if.png"},
		{"base without extension", "out/if", "controls_if", "json", false, "out/if.json"},
		{"multiple derived", "", "repeat", "pdf", false, "repeat.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.output, tt.sample, tt.format, tt.single); got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
