package block

import (
	"github.com/google/uuid"

	"github.com/matzehuels/blockview/pkg/geom"
	"github.com/matzehuels/blockview/pkg/model"
)

// Tracker receives the workspace anchor of every connector after each
// layout pass or move. Calls with an unchanged position must be harmless.
type Tracker interface {
	MoveConnectorTo(c *model.Connection, p geom.Point)
}

// Entry is a tracked connector and its last reported position.
type Entry struct {
	Conn     *model.Connection
	Position geom.Point
}

// Index is an in-memory Tracker keyed by connection ID. It also records the
// position on the connection itself.
type Index struct {
	entries map[uuid.UUID]int
	list    []Entry
	moves   int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{entries: make(map[uuid.UUID]int)}
}

// MoveConnectorTo implements Tracker.
func (x *Index) MoveConnectorTo(c *model.Connection, p geom.Point) {
	x.moves++
	c.SetPosition(p)
	if i, ok := x.entries[c.ID]; ok {
		x.list[i].Position = p
		return
	}
	x.entries[c.ID] = len(x.list)
	x.list = append(x.list, Entry{Conn: c, Position: p})
}

// Position returns the last position reported for c.
func (x *Index) Position(c *model.Connection) (geom.Point, bool) {
	i, ok := x.entries[c.ID]
	if !ok {
		return geom.Point{}, false
	}
	return x.list[i].Position, true
}

// Entries returns the tracked connectors in first-report order.
func (x *Index) Entries() []Entry {
	out := make([]Entry, len(x.list))
	copy(out, x.list)
	return out
}

// Len returns the number of distinct connectors tracked.
func (x *Index) Len() int { return len(x.list) }

// Moves returns the total number of MoveConnectorTo calls.
func (x *Index) Moves() int { return x.moves }
