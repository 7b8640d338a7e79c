package sink

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/render/block"
)

func TestRenderJSON(t *testing.T) {
	idx := block.NewIndex()
	g := laidOutTree(t, "repeat", block.WithTracker(idx))
	g.First().SetHighlightBlock()

	data, err := RenderJSON(g, WithJSONTracker(idx), WithJSONSample("repeat"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Sample != "repeat" || out.Width != g.Size().W || out.Height != g.Size().H {
		t.Errorf("header = %q %dx%d", out.Sample, out.Width, out.Height)
	}
	if len(out.Blocks) != countViews(g) {
		t.Fatalf("blocks = %d, want %d", len(out.Blocks), countViews(g))
	}

	root := out.Blocks[0]
	if root.Type != "controls_repeat_ext" || !root.Inline || len(root.RowWidths) != 2 {
		t.Errorf("root block = %s inline=%v rows=%v", root.Type, root.Inline, root.RowWidths)
	}
	if root.Highlight == "" || root.Highlight != root.Path {
		t.Error("block highlight should export the outline path")
	}

	tracked := 0
	for _, b := range out.Blocks {
		for _, c := range b.Connectors {
			if c.Workspace == nil {
				t.Errorf("%s %s connector has no workspace position", b.Type, c.Kind)
				continue
			}
			tracked++
		}
	}
	if tracked != idx.Len() {
		t.Errorf("connectors with workspace positions = %d, tracker has %d", tracked, idx.Len())
	}
}

func TestRenderJSONWithoutTracker(t *testing.T) {
	data, err := RenderJSON(laidOutTree(t, "text_print"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	for _, b := range out.Blocks {
		for _, c := range b.Connectors {
			if c.Workspace != nil {
				t.Errorf("%s connector has a workspace position without a tracker", c.Kind)
			}
		}
	}
}

func TestRenderJSONBeforeLayout(t *testing.T) {
	_, err := RenderJSON(newTree(t, "text_print"))
	if !errors.Is(err, errors.ErrCodeNotLaidOut) {
		t.Errorf("RenderJSON() error = %v, want %s", err, errors.ErrCodeNotLaidOut)
	}
}
