package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerAnimatesLabel(t *testing.T) {
	var buf bytes.Buffer
	s := startSpinner(context.Background(), &buf, "controls_if")
	time.Sleep(3 * spinnerInterval)
	s.stop(nil)

	out := buf.String()
	if !strings.Contains(out, "Rendering controls_if...") {
		t.Errorf("output %q does not show the sample label", out)
	}
	if !strings.Contains(out, spinnerFrames[0]) {
		t.Errorf("output %q has no animation frame", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("output %q should end by clearing the line", out)
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	s := startSpinner(context.Background(), &buf, "repeat")
	s.stop(nil)
	n := buf.Len()
	s.stop(nil)
	s.stop(nil)
	if buf.Len() != n {
		t.Error("repeated stop should not write again")
	}
}

func TestSpinnerEndsWithContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), spinnerInterval/2)
	defer cancel()

	var buf bytes.Buffer
	s := startSpinner(ctx, &buf, "text_print")
	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner kept running after the context ended")
	}
	s.stop(nil)
}
