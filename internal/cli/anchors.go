package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/geom"
	"github.com/matzehuels/blockview/pkg/pipeline"
	"github.com/matzehuels/blockview/pkg/render/block"
)

// anchorsCommand prints every connector of a laid-out sample.
func (c *CLI) anchorsCommand() *cobra.Command {
	var flags layoutFlags
	var dx, dy int

	cmd := &cobra.Command{
		Use:               "anchors <sample>",
		Short:             "Print the local and workspace position of every connector",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSamples,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.options(args[0], flags)
			opts.DX, opts.DY = dx, dy
			return c.runAnchors(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&dx, "dx", 0, "shift the root block horizontally (workspace units)")
	cmd.Flags().IntVar(&dy, "dy", 0, "shift the root block vertically (workspace units)")
	return cmd
}

func (c *CLI) runAnchors(ctx context.Context, w io.Writer, opts pipeline.Options) error {
	res, err := c.newRunner().Layout(ctx, opts)
	if err != nil {
		return err
	}
	rows, err := anchorRows(res.Group, res.Tracker)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, StyleTitle.Render(opts.Sample))
	fmt.Fprintln(w, renderTable([]string{"Block", "Connector", "Local", "Workspace", "State"}, rows))
	return nil
}

// anchorRows lists every connector in drawing order with its block-local
// anchor and its published workspace position.
func anchorRows(g *block.Group, idx *block.Index) ([][]string, error) {
	var rows [][]string
	err := g.Walk(func(v *block.View) error {
		b := v.Block()
		for _, conn := range b.AllConnections() {
			local, err := v.AnchorOf(conn)
			if err != nil {
				return err
			}
			workspace := "-"
			if p, ok := idx.Position(conn); ok {
				workspace = p.String()
			}
			name := conn.Kind.String()
			if in := conn.Input(); in != nil {
				name += " " + in.Name
			}
			rows = append(rows, []string{b.Type, name, local.String(), workspace, connectionState(conn.IsConnected())})
		}
		return nil
	})
	return rows, err
}

// hitCommand hit-tests a point against a laid-out sample.
func (c *CLI) hitCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:               "hit <sample> <x> <y>",
		Short:             "Report which block's opaque area contains a point",
		Long:              "Hit-test a point given in root stack coordinates. Only field areas count as opaque; connected children and gaps between rows do not.",
		Args:              cobra.ExactArgs(3),
		ValidArgsFunction: completeSamples,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[1], args[2])
			if err != nil {
				return err
			}
			return c.runHit(cmd.Context(), cmd.OutOrStdout(), c.options(args[0], flags), p)
		},
	}

	flags.register(cmd)
	return cmd
}

func (c *CLI) runHit(ctx context.Context, w io.Writer, opts pipeline.Options, p geom.Point) error {
	res, err := c.newRunner().Layout(ctx, opts)
	if err != nil {
		return err
	}
	v, err := res.Group.HitTest(p)
	if err != nil {
		return err
	}
	printKeyValue(w, "point", p.String())
	printKeyValue(w, "hit", strconv.FormatBool(v != nil))
	if v != nil {
		printKeyValue(w, "block", v.Block().Type)
		printKeyValue(w, "local", p.Sub(v.ViewOrigin()).String())
	}
	return nil
}

// parsePoint parses integer x and y arguments.
func parsePoint(xs, ys string) (geom.Point, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return geom.Point{}, errors.New(errors.ErrCodeInvalidInput, "x must be an integer, got %q", xs)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return geom.Point{}, errors.New(errors.ErrCodeInvalidInput, "y must be an integer, got %q", ys)
	}
	return geom.Pt(x, y), nil
}
