package model

import (
	"testing"

	"github.com/matzehuels/blockview/pkg/errors"
	"github.com/matzehuels/blockview/pkg/geom"
)

func mustBlock(t *testing.T, typ string, opts ...Option) *Block {
	t.Helper()
	b, err := NewBlock(typ, opts...)
	if err != nil {
		t.Fatalf("NewBlock(%q): %v", typ, err)
	}
	return b
}

func TestNewBlockPreviousAndOutput(t *testing.T) {
	_, err := NewBlock("bad", WithPrevious(), WithOutput())
	if !errors.Is(err, errors.ErrCodeInvalidConnection) {
		t.Fatalf("NewBlock() error = %v, want %s", err, errors.ErrCodeInvalidConnection)
	}
}

func TestInputConnections(t *testing.T) {
	b := mustBlock(t, "mixed",
		WithInput("A", InputValue),
		WithInput("B", InputStatement),
		WithInput("C", InputDummy, Field{Label: "x", Width: 10, Height: 10}),
	)

	tests := []struct {
		name     string
		wantKind ConnectionKind
		wantNil  bool
	}{
		{"A", ConnValueInput, false},
		{"B", ConnStatementInput, false},
		{"C", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, ok := b.Input(tt.name)
			if !ok {
				t.Fatalf("Input(%q) not found", tt.name)
			}
			c := in.Connection()
			if tt.wantNil {
				if c != nil {
					t.Errorf("Connection() = %v, want nil", c)
				}
				return
			}
			if c.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", c.Kind, tt.wantKind)
			}
			if c.Block() != b || c.Input() != in {
				t.Error("connection owner not wired")
			}
		})
	}

	if got := len(b.AllConnections()); got != 2 {
		t.Errorf("AllConnections() = %d, want 2", got)
	}
}

func TestConnectCompatibility(t *testing.T) {
	tests := []struct {
		name    string
		a, b    func(p, c *Block) *Connection
		wantErr bool
	}{
		{"next to previous", func(p, c *Block) *Connection { return p.NextConnection() }, func(p, c *Block) *Connection { return c.PreviousConnection() }, false},
		{"statement to previous", func(p, c *Block) *Connection { return p.inputs[1].Connection() }, func(p, c *Block) *Connection { return c.PreviousConnection() }, false},
		{"value to missing output", func(p, c *Block) *Connection { return p.inputs[0].Connection() }, func(p, c *Block) *Connection { return c.OutputConnection() }, true},
		{"next to next", func(p, c *Block) *Connection { return p.NextConnection() }, func(p, c *Block) *Connection { return c.NextConnection() }, true},
		{"value to previous", func(p, c *Block) *Connection { return p.inputs[0].Connection() }, func(p, c *Block) *Connection { return c.PreviousConnection() }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := mustBlock(t, "parent", WithPrevious(), WithNext(),
				WithInput("V", InputValue), WithInput("S", InputStatement))
			child := mustBlock(t, "child", WithPrevious(), WithNext())
			err := Connect(tt.a(parent, child), tt.b(parent, child))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Connect() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConnectValueOutput(t *testing.T) {
	parent := mustBlock(t, "parent", WithInput("V", InputValue))
	child := mustBlock(t, "child", WithOutput())

	if !child.IsTopLevel() {
		t.Fatal("free output block should be top level")
	}
	if err := Connect(parent.inputs[0].Connection(), child.OutputConnection()); err != nil {
		t.Fatalf("Connect() = %v", err)
	}
	if child.IsTopLevel() {
		t.Error("connected output block should not be top level")
	}
	if parent.inputs[0].TargetBlock() != child {
		t.Error("TargetBlock() did not return child")
	}
	if err := Connect(parent.inputs[0].Connection(), child.OutputConnection()); err == nil {
		t.Error("second Connect() should fail")
	}

	Disconnect(child.OutputConnection())
	if parent.inputs[0].Connection().IsConnected() || !child.IsTopLevel() {
		t.Error("Disconnect() did not detach both sides")
	}
}

func TestStackRelations(t *testing.T) {
	a := mustBlock(t, "a", WithPrevious(), WithNext())
	b := mustBlock(t, "b", WithPrevious(), WithNext())
	if err := Connect(a.NextConnection(), b.PreviousConnection()); err != nil {
		t.Fatal(err)
	}
	if a.NextBlock() != b || b.PreviousBlock() != a {
		t.Error("stack links not set")
	}
	if !a.IsTopLevel() || b.IsTopLevel() {
		t.Error("IsTopLevel() wrong for stack")
	}
	if !a.Owns(a.NextConnection()) || a.Owns(b.PreviousConnection()) {
		t.Error("Owns() wrong")
	}
}

func TestPositionAndColor(t *testing.T) {
	b := mustBlock(t, "p", WithPosition(geom.Pt(5, 7)), WithHue(120))
	if b.Position() != geom.Pt(5, 7) {
		t.Errorf("Position() = %v", b.Position())
	}
	b.SetPosition(geom.Pt(1, 2))
	if b.Position() != geom.Pt(1, 2) {
		t.Errorf("SetPosition() not applied")
	}
	h, _, _ := b.Color().Hsv()
	if h < 119.5 || h > 120.5 {
		t.Errorf("Color() hue = %v, want 120", h)
	}
}

func TestParseInputKind(t *testing.T) {
	for _, k := range []InputKind{InputValue, InputStatement, InputDummy} {
		got, err := ParseInputKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseInputKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseInputKind("bogus"); err == nil {
		t.Error("ParseInputKind(bogus) should fail")
	}
}
