package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blockview/pkg/observability"
)

// Runner encapsulates pipeline execution.
// Both the CLI and the preview server use it so that every entry point
// builds, lays out and renders trees the same way.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with
// different options; each run builds its own tree.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete build → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result, err := r.Layout(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()
	artifacts, err := Render(result.Group, result.Tracker, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Layout builds the sample tree and lays it out without rendering.
func (r *Runner) Layout(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Artifacts: make(map[string][]byte)}

	// Stage 1: Build
	buildStart := time.Now()
	root, err := BuildTree(opts)
	if err != nil {
		return nil, err
	}
	result.Stats.BuildTime = time.Since(buildStart)

	// Stage 2: Layout
	hooks := observability.Pipeline()
	blocks := countBlocks(root)
	hooks.OnLayoutStart(ctx, opts.Sample, blocks)
	layoutStart := time.Now()
	g, idx, err := LayoutTree(root, opts)
	result.Stats.LayoutTime = time.Since(layoutStart)
	hooks.OnLayoutComplete(ctx, opts.Sample, result.Stats.LayoutTime, err)
	if err != nil {
		return nil, err
	}

	result.Group = g
	result.Tracker = idx
	result.Stats.BlockCount = blocks
	result.Stats.ConnectorCount = CountConnectors(g)

	opts.Logger.Info("computed layout",
		"sample", opts.Sample,
		"blocks", blocks,
		"size", g.Size(),
		"published", idx.Len(),
		"duration", result.Stats.LayoutTime)

	return result, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
