package cli

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/pipeline"
	"github.com/matzehuels/blockview/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	layout  layoutFlags
	output  string   // output file path (or base path for multiple outputs)
	formats []string // output formats: "svg", "pdf", "png", "json"
	padding int      // blank margin around the tree
	dpi     float64  // PNG pixel density
}

// renderCommand creates the render command for generating block images.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:               "render <sample>",
		Short:             "Render a gallery sample to SVG, PNG, PDF or JSON",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSamples,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	opts.layout.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().IntVar(&opts.padding, "padding", pipeline.DefaultPadding, "blank margin around the tree")
	cmd.Flags().Float64Var(&opts.dpi, "raster-scale", pipeline.DefaultRasterScale, "PNG pixel density")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if formats := pipeline.ParseFormats(s); len(formats) > 0 {
		return formats
	}
	return []string{pipeline.FormatSVG}
}

// basePath derives the base output path from the output flag and sample name.
// If output is empty, the sample name is used.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, name string) string {
	if output == "" {
		return name
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns the file for one format. A single format written to an
// explicit --output keeps the path as given.
func outputPath(output, name, format string, single bool) string {
	if single && output != "" {
		return output
	}
	return basePath(output, name) + "." + format
}

// runRender lays out the sample and writes one file per requested format.
func (c *CLI) runRender(ctx context.Context, name string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	for _, f := range opts.formats {
		if f == pipeline.FormatPDF && !render.HasPDFSupport() {
			printWarning("PDF output needs rsvg-convert on PATH")
			break
		}
	}

	po := c.options(name, opts.layout)
	po.Formats = opts.formats
	po.Padding = opts.padding
	po.RasterScale = opts.dpi

	prog := newProgress(logger)
	spin := startSpinner(ctx, os.Stderr, name)
	result, err := c.newRunner().Execute(ctx, po)
	spin.stop(err)
	if err != nil {
		return err
	}
	prog.done("Rendered " + name)

	formats := make([]string, 0, len(result.Artifacts))
	for f := range result.Artifacts {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	size := result.Group.Size()
	printSuccess("Rendered %s", StyleHighlight.Render(name))
	printStats(result.Stats.BlockCount, result.Stats.ConnectorCount, size.W, size.H)
	for _, f := range formats {
		path := outputPath(opts.output, name, f, len(formats) == 1)
		if err := errors.ValidatePath(path); err != nil {
			return err
		}
		if err := os.WriteFile(path, result.Artifacts[f], 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
		logger.Debugf("Generated %s: %d bytes", path, len(result.Artifacts[f]))
		printFile(path)
	}
	printNextStep("Inspect anchors", "blockview anchors "+name)
	return nil
}
