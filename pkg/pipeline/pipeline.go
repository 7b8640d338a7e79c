// Package pipeline provides the build → layout → render pipeline for block
// trees.
//
// The CLI, the preview server and the interactive inspector all go through
// this package so that mode overrides, highlight selection and output
// rendering behave the same everywhere.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Build: Look up a gallery sample and build a fresh model tree
//  2. Layout: Measure and lay out the view tree, building outlines and
//     publishing connector anchors to an in-memory tracker
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Sample:    "controls_if",
//	    RTL:       true,
//	    Highlight: "input:DO0",
//	    Formats:   []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Layout without rendering:
//
//	result, err := runner.Layout(ctx, opts)
//	view, _ := result.Group.HitTest(geom.Pt(10, 10))
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blockview/pkg/config"
	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/render/block"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultSample is rendered when no sample name is given.
	DefaultSample = "controls_if"

	// DefaultPadding is the blank margin around SVG, PNG and PDF output.
	DefaultPadding = 8

	// DefaultRasterScale is the PNG pixel density.
	DefaultRasterScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// Mode constants select how input rows are arranged.
const (
	// ModeAuto keeps each block's own inline flag.
	ModeAuto     = "auto"
	ModeInline   = "inline"
	ModeExternal = "external"
)

// ValidModes is the set of supported mode overrides.
var ValidModes = map[string]bool{
	ModeAuto:     true,
	ModeInline:   true,
	ModeExternal: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for server requests.
type Options struct {
	// Build options
	Sample string `json:"sample"`
	DX     int    `json:"dx,omitempty"` // Root position shift in workspace units
	DY     int    `json:"dy,omitempty"`

	// Layout options
	Mode      string  `json:"mode,omitempty"`
	RTL       bool    `json:"rtl,omitempty"`   // Forces RTL on; the config file may also enable it
	Scale     float64 `json:"scale,omitempty"` // Zero keeps the config file's scale
	Highlight string  `json:"highlight,omitempty"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Centers     bool     `json:"centers,omitempty"`
	Padding     int      `json:"padding,omitempty"`
	RasterScale float64  `json:"raster_scale,omitempty"`

	// Runtime options (not serialized)
	Config *config.Config `json:"-"`
	Logger *log.Logger    `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Group is the laid-out root stack.
	Group *block.Group

	// Tracker holds every published connector position.
	Tracker *block.Index

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BlockCount     int
	ConnectorCount int
	BuildTime      time.Duration
	LayoutTime     time.Duration
	RenderTime     time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateMode checks that a mode override is valid.
func ValidateMode(mode string) error {
	if !ValidModes[mode] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid mode: %q (must be one of: auto, inline, external)", mode)
	}
	return nil
}

// ParseFormats splits a comma-separated format list such as "svg,png".
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLayout checks the build and layout fields and applies their defaults.
func (o *Options) ValidateForLayout() error {
	if o.Sample == "" {
		o.Sample = DefaultSample
	}
	if err := errors.ValidateSampleName(o.Sample); err != nil {
		return err
	}
	if o.Mode == "" {
		o.Mode = ModeAuto
	}
	if err := ValidateMode(o.Mode); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", o.Scale)
	}
	if _, err := ParseHighlight(o.Highlight); err != nil {
		return err
	}
	if o.Config == nil {
		cfg := config.Default()
		o.Config = &cfg
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ValidateForRender checks the render fields and applies their defaults.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "padding must be non-negative, got %d", o.Padding)
	}
	if o.Padding == 0 {
		o.Padding = DefaultPadding
	}
	if o.RasterScale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "raster scale must be positive, got %v", o.RasterScale)
	}
	if o.RasterScale == 0 {
		o.RasterScale = DefaultRasterScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// EffectiveRTL reports whether the run lays out right to left.
func (o *Options) EffectiveRTL() bool {
	return o.RTL || (o.Config != nil && o.Config.Workspace.RTL)
}

// EffectiveScale returns the workspace scale: the explicit option when set,
// otherwise the config file's.
func (o *Options) EffectiveScale() float64 {
	if o.Scale > 0 {
		return o.Scale
	}
	if o.Config != nil && o.Config.Workspace.Scale > 0 {
		return o.Config.Workspace.Scale
	}
	return 1
}
