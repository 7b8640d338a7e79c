package sink

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/blockview/pkg/errors"
)

func TestRenderSVG(t *testing.T) {
	g := laidOutTree(t, "controls_if")
	out, err := RenderSVG(g)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	svg := string(out)

	size := g.Size()
	viewBox := fmt.Sprintf(`viewBox="-8 -8 %d %d"`, size.W+16, size.H+16)
	if !strings.Contains(svg, viewBox) {
		t.Errorf("missing %s in:\n%s", viewBox, svg)
	}
	n := countViews(g)
	if got := strings.Count(svg, `class="block"`); got != n {
		t.Errorf("block paths = %d, want %d", got, n)
	}
	if got := strings.Count(svg, `fill-rule="evenodd"`); got != n {
		t.Errorf("even-odd paths = %d, want %d", got, n)
	}
	if strings.Contains(svg, "<rect") {
		t.Error("unexpected background rect")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	g := laidOutTree(t, "empty")
	bg, _ := colorful.Hex("#ffffff")
	out, err := RenderSVG(g, WithPadding(0), WithBackground(bg))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	svg := string(out)
	if !strings.Contains(svg, `viewBox="0 0 60 70"`) {
		t.Errorf("unpadded viewBox missing:\n%s", svg)
	}
	if !strings.Contains(svg, `fill="#ffffff"`) {
		t.Errorf("background fill missing:\n%s", svg)
	}
}

func TestRenderSVGBeforeLayout(t *testing.T) {
	_, err := RenderSVG(newTree(t, "empty"))
	if !errors.Is(err, errors.ErrCodeNotLaidOut) {
		t.Errorf("RenderSVG() error = %v, want %s", err, errors.ErrCodeNotLaidOut)
	}
}
