package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blockview/pkg/config"
	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/geom"
	"github.com/matzehuels/blockview/pkg/observability"
	"github.com/matzehuels/blockview/pkg/render/block/highlight"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	got := ParseFormats(" svg, png,,json ")
	want := []string{"svg", "png", "json"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("ParseFormats() = %v, want %v", got, want)
	}
	if ParseFormats("") != nil {
		t.Error("ParseFormats(\"\") should be nil")
	}
}

func TestParseHighlight(t *testing.T) {
	tests := []struct {
		in      string
		want    Highlight
		wantErr bool
	}{
		{"", Highlight{}, false},
		{"block", Highlight{Target: HighlightBlock}, false},
		{"previous", Highlight{Target: HighlightPrevious}, false},
		{"next", Highlight{Target: HighlightNext}, false},
		{"output", Highlight{Target: HighlightOutput}, false},
		{"input:DO0", Highlight{Target: HighlightInput, Input: "DO0"}, false},
		{"input:", Highlight{}, true},
		{"input", Highlight{}, true},
		{"sideways", Highlight{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHighlight(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHighlight(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHighlight(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if !tt.wantErr && got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if opts.Sample != DefaultSample || opts.Mode != ModeAuto {
		t.Errorf("sample %q mode %q, want defaults", opts.Sample, opts.Mode)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Padding != DefaultPadding || opts.RasterScale != DefaultRasterScale {
		t.Errorf("padding %d raster scale %v, want defaults", opts.Padding, opts.RasterScale)
	}
	if opts.Config == nil || opts.Logger == nil {
		t.Error("config and logger should be defaulted")
	}
	if opts.EffectiveScale() != 1 || opts.EffectiveRTL() {
		t.Errorf("effective scale %v rtl %v", opts.EffectiveScale(), opts.EffectiveRTL())
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	badConfig := config.Default()
	badConfig.Workspace.Scale = 0

	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"bad sample name", Options{Sample: "Bad Name"}, errors.ErrCodeInvalidInput},
		{"bad mode", Options{Mode: "sideways"}, errors.ErrCodeInvalidInput},
		{"negative scale", Options{Scale: -1}, errors.ErrCodeInvalidInput},
		{"bad highlight", Options{Highlight: "middle"}, errors.ErrCodeInvalidInput},
		{"bad format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"negative padding", Options{Padding: -2}, errors.ErrCodeInvalidInput},
		{"bad config", Options{Config: &badConfig}, errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestEffectiveDirectionAndScale(t *testing.T) {
	cfg := config.Default()
	cfg.Workspace.RTL = true
	cfg.Workspace.Scale = 1.5

	opts := Options{Config: &cfg}
	if !opts.EffectiveRTL() || opts.EffectiveScale() != 1.5 {
		t.Errorf("config values not used: rtl %v scale %v", opts.EffectiveRTL(), opts.EffectiveScale())
	}
	opts.Scale = 3
	if opts.EffectiveScale() != 3 {
		t.Errorf("explicit scale ignored: %v", opts.EffectiveScale())
	}
}

func TestExecute(t *testing.T) {
	r := NewRunner(log.New(&bytes.Buffer{}))
	res, err := r.Execute(context.Background(), Options{
		Sample:  "text_print",
		Formats: []string{FormatSVG, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if len(res.Artifacts) != 2 {
		t.Errorf("artifacts = %d, want 2", len(res.Artifacts))
	}
	if !bytes.HasPrefix(res.Artifacts[FormatSVG], []byte("<svg")) {
		t.Error("svg artifact does not start with <svg")
	}
	if !bytes.Contains(res.Artifacts[FormatJSON], []byte(`"sample": "text_print"`)) {
		t.Error("json artifact is missing the sample name")
	}
	if res.Stats.BlockCount != 2 {
		t.Errorf("BlockCount = %d, want 2", res.Stats.BlockCount)
	}
	// text_print: previous, next, TEXT input; text: output.
	if res.Stats.ConnectorCount != 4 || res.Tracker.Len() != 4 {
		t.Errorf("connectors = %d, published = %d, want 4", res.Stats.ConnectorCount, res.Tracker.Len())
	}
}

func TestLayoutOffset(t *testing.T) {
	r := NewRunner(nil)
	res, err := r.Layout(context.Background(), Options{Sample: "text_print", DX: 5, DY: -3})
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	root := res.Group.First().Block()
	got, ok := res.Tracker.Position(root.PreviousConnection())
	if !ok || got != geom.Pt(45, 37) {
		t.Errorf("previous connector at %v (published %v), want (45,37)", got, ok)
	}
	if len(res.Artifacts) != 0 {
		t.Errorf("Layout() rendered %d artifacts", len(res.Artifacts))
	}
}

func TestLayoutModeOverride(t *testing.T) {
	r := NewRunner(nil)
	ctx := context.Background()

	auto, err := r.Layout(ctx, Options{Sample: "math_arithmetic"})
	if err != nil {
		t.Fatalf("Layout(auto) error: %v", err)
	}
	ext, err := r.Layout(ctx, Options{Sample: "math_arithmetic", Mode: ModeExternal})
	if err != nil {
		t.Fatalf("Layout(external) error: %v", err)
	}

	if !auto.Group.First().Block().InputsInline {
		t.Error("auto mode should keep the sample's inline flag")
	}
	if ext.Group.First().Block().InputsInline {
		t.Error("external mode should clear the inline flag")
	}
	if auto.Group.Size() == ext.Group.Size() {
		t.Errorf("inline and external layouts have the same size %v", auto.Group.Size())
	}
}

func TestLayoutHighlight(t *testing.T) {
	tests := []struct {
		name      string
		sample    string
		highlight string
		want      highlight.Mode
		code      errors.Code
	}{
		{"none", "text_print", "", highlight.None, ""},
		{"block", "text_print", "block", highlight.Block, ""},
		{"previous", "text_print", "previous", highlight.Connection, ""},
		{"input", "controls_if", "input:DO0", highlight.Connection, ""},
		{"missing output", "text_print", "output", highlight.None, errors.ErrCodeUnknownConnector},
		{"missing input", "text_print", "input:NOPE", highlight.None, errors.ErrCodeUnknownConnector},
	}

	r := NewRunner(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Layout(context.Background(), Options{Sample: tt.sample, Highlight: tt.highlight})
			if tt.code != "" {
				if !errors.Is(err, tt.code) {
					t.Errorf("error = %v, want %s", err, tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("Layout() error: %v", err)
			}
			if got := res.Group.First().Highlight(); got != tt.want {
				t.Errorf("Highlight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExecuteUnknownSample(t *testing.T) {
	_, err := NewRunner(nil).Execute(context.Background(), Options{Sample: "missing"})
	if !errors.Is(err, errors.ErrCodeSampleNotFound) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeSampleNotFound)
	}
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewRunner(nil).Execute(ctx, Options{}); err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	events []string
	blocks int
}

func (h *recordingHooks) OnLayoutStart(_ context.Context, sample string, blocks int) {
	h.events = append(h.events, "layout start "+sample)
	h.blocks = blocks
}

func (h *recordingHooks) OnLayoutComplete(_ context.Context, sample string, _ time.Duration, err error) {
	h.events = append(h.events, "layout complete "+sample)
}

func (h *recordingHooks) OnRenderStart(_ context.Context, formats []string) {
	h.events = append(h.events, "render start "+strings.Join(formats, ","))
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, formats []string, _ time.Duration, err error) {
	h.events = append(h.events, "render complete "+strings.Join(formats, ","))
}

func TestExecuteHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	t.Cleanup(observability.Reset)

	_, err := NewRunner(nil).Execute(context.Background(), Options{Sample: "repeat", Formats: []string{FormatJSON}})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	want := []string{"layout start repeat", "layout complete repeat", "render start json", "render complete json"}
	if strings.Join(hooks.events, "|") != strings.Join(want, "|") {
		t.Errorf("events = %q, want %q", hooks.events, want)
	}
	// controls_repeat_ext, math_number and two text_print blocks with a text each.
	if hooks.blocks != 6 {
		t.Errorf("layout start block count = %d, want 6", hooks.blocks)
	}
}
