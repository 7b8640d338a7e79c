package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/geom"
	"github.com/matzehuels/blockview/pkg/pipeline"
	"github.com/matzehuels/blockview/pkg/render/block/sample"
)

func TestAnchorRows(t *testing.T) {
	c := New(io.Discard, LogInfo)
	res, err := c.newRunner().Layout(context.Background(), pipeline.Options{Sample: "text_print"})
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}

	rows, err := anchorRows(res.Group, res.Tracker)
	if err != nil {
		t.Fatalf("anchorRows() error: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}
	if rows[0][0] != "text_print" || rows[0][1] != "previous" {
		t.Errorf("first row = %v, want the previous connector of text_print", rows[0])
	}
	if rows[2][1] != "value_input TEXT" {
		t.Errorf("third row connector = %q, want value_input TEXT", rows[2][1])
	}
	for _, row := range rows {
		if row[3] == "-" {
			t.Errorf("connector %v was not published", row)
		}
	}
}

func TestRunAnchors(t *testing.T) {
	c := New(io.Discard, LogInfo)
	var buf bytes.Buffer
	if err := c.runAnchors(context.Background(), &buf, pipeline.Options{Sample: "controls_if"}); err != nil {
		t.Fatalf("runAnchors() error: %v", err)
	}
	for _, want := range []string{"controls_if", "statement_input DO0", "logic_compare"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}

	err := c.runAnchors(context.Background(), &buf, pipeline.Options{Sample: "missing"})
	if !errors.Is(err, errors.ErrCodeSampleNotFound) {
		t.Errorf("runAnchors(missing) error = %v, want %s", err, errors.ErrCodeSampleNotFound)
	}
}

func TestRunHit(t *testing.T) {
	c := New(io.Discard, LogInfo)

	var buf bytes.Buffer
	if err := c.runHit(context.Background(), &buf, pipeline.Options{Sample: "text_print"}, geom.Pt(5, 5)); err != nil {
		t.Fatalf("runHit() error: %v", err)
	}
	if !strings.Contains(buf.String(), "true") || !strings.Contains(buf.String(), "text_print") {
		t.Errorf("runHit() output = %q, want a hit on text_print", buf.String())
	}

	buf.Reset()
	if err := c.runHit(context.Background(), &buf, pipeline.Options{Sample: "text_print"}, geom.Pt(500, 500)); err != nil {
		t.Fatalf("runHit() error: %v", err)
	}
	if !strings.Contains(buf.String(), "false") {
		t.Errorf("runHit() output = %q, want a miss", buf.String())
	}
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		x, y    string
		want    geom.Point
		wantErr bool
	}{
		{"5", "7", geom.Pt(5, 7), false},
		{"-3", "0", geom.Pt(-3, 0), false},
		{"a", "1", geom.Point{}, true},
		{"1", "1.5", geom.Point{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.x+","+tt.y, func(t *testing.T) {
			got, err := parsePoint(tt.x, tt.y)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePoint() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidInput)
				}
				return
			}
			if got != tt.want {
				t.Errorf("parsePoint() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunTree(t *testing.T) {
	c := New(io.Discard, LogInfo)

	var buf bytes.Buffer
	if err := c.runTree(context.Background(), &buf, "controls_if", treeFormatDOT, false); err != nil {
		t.Fatalf("runTree() error: %v", err)
	}
	if !strings.Contains(buf.String(), "digraph") {
		t.Errorf("dot output missing digraph header")
	}

	err := c.runTree(context.Background(), &buf, "controls_if", "gif", false)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("runTree(gif) error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestPrintSamples(t *testing.T) {
	var buf bytes.Buffer
	printSamples(&buf, true)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if strings.Join(lines, ",") != strings.Join(sample.Names(), ",") {
		t.Errorf("names = %v, want %v", lines, sample.Names())
	}

	buf.Reset()
	printSamples(&buf, false)
	for _, s := range sample.All() {
		if !strings.Contains(buf.String(), s.Name) {
			t.Errorf("table missing %q", s.Name)
		}
	}
}

func TestWriteCompletion(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		var buf bytes.Buffer
		if err := writeCompletion(root, &buf, shell); err != nil {
			t.Errorf("writeCompletion(%s) error: %v", shell, err)
		}
		if !strings.Contains(buf.String(), appName) {
			t.Errorf("writeCompletion(%s) does not mention %s", shell, appName)
		}
	}
	if err := writeCompletion(root, io.Discard, "tcsh"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("writeCompletion(tcsh) error = %v", err)
	}
}
