package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/pipeline"
	"github.com/matzehuels/blockview/pkg/render/nodelink"
)

const (
	treeFormatDOT = "dot"
	treeFormatSVG = "svg"
	treeFormatPDF = "pdf"
)

// treeCommand draws the connection tree of a sample.
func (c *CLI) treeCommand() *cobra.Command {
	var format, output string
	var detailed bool

	cmd := &cobra.Command{
		Use:               "tree <sample>",
		Short:             "Draw the connection tree of a sample with Graphviz",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSamples,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := openOutput(cmd.OutOrStdout(), output)
			if err != nil {
				return err
			}
			defer out.Close()
			return c.runTree(cmd.Context(), out, args[0], format, detailed)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", treeFormatDOT, "output format: dot, svg, pdf")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label nodes with inputs and positions")
	return cmd
}

func (c *CLI) runTree(ctx context.Context, w io.Writer, name, format string, detailed bool) error {
	opts := pipeline.Options{Sample: name}
	if err := opts.ValidateForLayout(); err != nil {
		return err
	}
	root, err := pipeline.BuildTree(opts)
	if err != nil {
		return err
	}
	dot := nodelink.ToDOT(root, nodelink.Options{Detailed: detailed})

	var data []byte
	switch format {
	case treeFormatDOT:
		data = []byte(dot)
	case treeFormatSVG:
		data, err = nodelink.RenderSVG(ctx, dot)
	case treeFormatPDF:
		data, err = nodelink.RenderPDF(ctx, dot)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "invalid tree format: %q (must be one of: dot, svg, pdf)", format)
	}
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debugf("Generated tree %s: %d bytes", format, len(data))
	_, err = w.Write(data)
	return err
}

// nopCloser wraps a writer that must not be closed, such as stdout.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns w when path is empty, otherwise a newly created file.
func openOutput(w io.Writer, path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{w}, nil
	}
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	return f, nil
}
