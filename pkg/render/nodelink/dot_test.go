package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/blockview/pkg/render/block/sample"
)

func TestToDOT_Basic(t *testing.T) {
	root, err := sample.Build("text_print")
	if err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(root, Options{})

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if !strings.Contains(dot, `b0 [label="text_print"`) {
		t.Error("ToDOT() output missing root node")
	}
	if !strings.Contains(dot, `b1 [label="text"`) {
		t.Error("ToDOT() output missing child node")
	}
	if !strings.Contains(dot, `b0 -> b1 [label="TEXT"]`) {
		t.Errorf("ToDOT() output missing value edge:\n%s", dot)
	}
}

func TestToDOT_Edges(t *testing.T) {
	root, err := sample.Build("repeat")
	if err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(root, Options{})

	// repeat: b0 repeat, b1 number, b2 print, b3 text, b4 print, b5 text
	for _, want := range []string{
		`b0 -> b1 [label="TIMES"]`,
		`b0 -> b2 [label="DO", style=bold]`,
		`b2 -> b3 [label="TEXT"]`,
		`b2 -> b4 [label="next", style=dotted]`,
		`b4 -> b5 [label="TEXT"]`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %s:\n%s", want, dot)
		}
	}
}

func TestToDOT_Detailed(t *testing.T) {
	root, err := sample.Build("row_break")
	if err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(root, Options{Detailed: true})

	for _, want := range []string{"inline", "S: statement", "at (40,40)"} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() detailed output missing %q", want)
		}
	}
}

func TestRenderSVG(t *testing.T) {
	root, err := sample.Build("controls_if")
	if err != nil {
		t.Fatal(err)
	}

	svg, err := RenderSVG(context.Background(), ToDOT(root, Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output is not SVG")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 10.00 20.00"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 10.00 20.00" width="10" height="20"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
}
