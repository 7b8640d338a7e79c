package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/model"
	"github.com/matzehuels/blockview/pkg/render"
)

// Options configures connection-tree rendering.
type Options struct {
	// Detailed adds inline mode, input names and workspace position to
	// node labels. When false, only the block type is shown.
	Detailed bool
}

type edge struct {
	from, to int
	label    string
	kind     model.ConnectionKind
}

// ToDOT converts the block tree rooted at root to Graphviz DOT. Blocks become
// nodes filled with their block colour; edges run from a parent to each
// attached child and are labelled with the input name, or "next" for stacks.
// Nodes are numbered in depth-first drawing order.
func ToDOT(root *model.Block, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	blocks, edges := walk(root)
	for i, b := range blocks {
		fmt.Fprintf(&buf, "  b%d [label=%q, fillcolor=%q];\n", i, fmtLabel(b, opts.Detailed), b.Color().Hex())
	}

	buf.WriteString("\n")
	for _, e := range edges {
		attrs := []string{fmt.Sprintf("label=%q", e.label)}
		switch e.kind {
		case model.ConnNext:
			attrs = append(attrs, "style=dotted")
		case model.ConnStatementInput:
			attrs = append(attrs, "style=bold")
		}
		fmt.Fprintf(&buf, "  b%d -> b%d [%s];\n", e.from, e.to, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// walk lists blocks depth-first: a block, the stacks attached to its
// inputs in order, then the block below it.
func walk(root *model.Block) ([]*model.Block, []edge) {
	var blocks []*model.Block
	var edges []edge

	type item struct {
		b      *model.Block
		parent int
		label  string
		kind   model.ConnectionKind
	}
	stack := []item{{b: root, parent: -1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		id := len(blocks)
		blocks = append(blocks, it.b)
		if it.parent >= 0 {
			edges = append(edges, edge{from: it.parent, to: id, label: it.label, kind: it.kind})
		}

		if next := it.b.NextBlock(); next != nil {
			stack = append(stack, item{b: next, parent: id, label: "next", kind: model.ConnNext})
		}
		inputs := it.b.Inputs()
		for i := len(inputs) - 1; i >= 0; i-- {
			in := inputs[i]
			if child := in.TargetBlock(); child != nil {
				stack = append(stack, item{b: child, parent: id, label: in.Name, kind: in.Connection().Kind})
			}
		}
	}
	return blocks, edges
}

func fmtLabel(b *model.Block, detailed bool) string {
	if !detailed {
		return b.Type
	}

	mode := "external"
	if b.InputsInline {
		mode = "inline"
	}
	parts := []string{mode}
	for _, in := range b.Inputs() {
		parts = append(parts, fmt.Sprintf("%s: %s", in.Name, in.Kind))
	}
	parts = append(parts, "at "+b.Position().String())
	return b.Type + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}
