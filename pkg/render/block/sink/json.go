package sink

import (
	"encoding/json"

	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/geom"
	"github.com/matzehuels/blockview/pkg/render/block"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	tracker *block.Index
	sample  string
}

// WithJSONTracker includes the workspace position each connector was last
// published at.
func WithJSONTracker(idx *block.Index) JSONOption {
	return func(r *jsonRenderer) { r.tracker = idx }
}

// WithJSONSample records the sample name in the output.
func WithJSONSample(name string) JSONOption {
	return func(r *jsonRenderer) { r.sample = name }
}

type jsonOutput struct {
	Sample string      `json:"sample,omitempty"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	RTL    bool        `json:"rtl"`
	Scale  float64     `json:"scale"`
	Blocks []jsonBlock `json:"blocks"`
}

type jsonPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type jsonRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type jsonBlock struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Inline     bool            `json:"inline"`
	Origin     jsonPoint       `json:"origin"`
	Position   jsonPoint       `json:"position"`
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	BlockWidth int             `json:"block_width"`
	NextOffset int             `json:"next_offset"`
	MarginLeft int             `json:"margin_left"`
	RowWidths  []int           `json:"row_widths,omitempty"`
	Path       string          `json:"path"`
	Highlight  string          `json:"highlight,omitempty"`
	Inputs     []jsonInput     `json:"inputs,omitempty"`
	Connectors []jsonConnector `json:"connectors,omitempty"`
}

type jsonInput struct {
	Name             string   `json:"name"`
	Kind             string   `json:"kind"`
	Bounds           jsonRect `json:"bounds"`
	FieldLayoutWidth int      `json:"field_layout_width"`
	RowHeight        int      `json:"row_height"`
}

type jsonConnector struct {
	ID        string     `json:"id"`
	Kind      string     `json:"kind"`
	Input     string     `json:"input,omitempty"`
	Local     jsonPoint  `json:"local"`
	Workspace *jsonPoint `json:"workspace,omitempty"`
	Connected bool       `json:"connected"`
}

// RenderJSON exports the geometry of every view in drawing order as a
// pretty-printed JSON document. Points are in root group coordinates except
// connector "local" anchors, which are block-local.
func RenderJSON(g *block.Group, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	size := g.Size()
	out := jsonOutput{
		Sample: r.sample,
		Width:  size.W,
		Height: size.H,
		RTL:    g.Helper().RTL(),
		Scale:  g.Helper().Scale(),
	}

	err := g.Walk(func(v *block.View) error {
		jb, err := buildJSONBlock(v, r.tracker)
		if err != nil {
			return err
		}
		out.Blocks = append(out.Blocks, jb)
		return nil
	})
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal geometry")
	}
	return data, nil
}

func buildJSONBlock(v *block.View, idx *block.Index) (jsonBlock, error) {
	b := v.Block()
	origin := v.ViewOrigin()
	st := v.State()
	jb := jsonBlock{
		ID:         b.ID.String(),
		Type:       b.Type,
		Inline:     b.InputsInline,
		Origin:     toPoint(origin),
		Position:   toPoint(b.Position()),
		Width:      st.Size.W,
		Height:     st.Size.H,
		BlockWidth: st.BlockWidth,
		NextOffset: st.NextBlockVerticalOffset,
		MarginLeft: st.MarginLeft,
		Path:       v.Outline().SVGData(geom.Point{}),
	}
	if st.Inline {
		jb.RowWidths = append(jb.RowWidths, st.RowWidths...)
	}

	hl, err := v.HighlightPath()
	if err != nil {
		return jb, err
	}
	if hl != nil {
		jb.Highlight = hl.SVGData(geom.Point{})
	}

	for i := range v.InputCount() {
		iv := v.Input(i)
		bounds := iv.Bounds()
		jb.Inputs = append(jb.Inputs, jsonInput{
			Name:             iv.Input().Name,
			Kind:             iv.Kind().String(),
			Bounds:           jsonRect{X: bounds.Left, Y: bounds.Top, Width: bounds.Width(), Height: bounds.Height()},
			FieldLayoutWidth: iv.FieldLayoutWidth(),
			RowHeight:        iv.RowHeight(),
		})
	}

	for _, c := range b.AllConnections() {
		local, err := v.AnchorOf(c)
		if err != nil {
			return jb, err
		}
		jc := jsonConnector{
			ID:        c.ID.String(),
			Kind:      c.Kind.String(),
			Local:     toPoint(local),
			Connected: c.IsConnected(),
		}
		if in := c.Input(); in != nil {
			jc.Input = in.Name
		}
		if idx != nil {
			if p, ok := idx.Position(c); ok {
				wp := toPoint(p)
				jc.Workspace = &wp
			}
		}
		jb.Connectors = append(jb.Connectors, jc)
	}
	return jb, nil
}

func toPoint(p geom.Point) jsonPoint { return jsonPoint{X: p.X, Y: p.Y} }
