package game

import "github.com/samber/lo"

// Snapshot is a read-only copy of everything the display needs after an intent.
type Snapshot struct {
	ID          string
	Geometry    Geometry
	Text        []byte
	Cells       []Cell
	Cursor      int
	Highlight   Range
	Attempts    int
	MaxAttempts int
	Status      string
	History     []string
	State       State
	Exit        bool
	BaseAddress int
}

// Snapshot captures the current round state. The highlight covers the whole
// run under the cursor, or just the cursor cell on plain filler.
func (r *Round) Snapshot() Snapshot {
	pos := r.Cursor.Position()
	hl, ok := r.Board.Run(pos)
	if !ok {
		hl = Range{Start: pos, End: pos + 1}
	}
	return Snapshot{
		ID:          r.ID,
		Geometry:    r.cfg.Geometry,
		Text:        append([]byte(nil), r.Board.Text...),
		Cells:       append([]Cell(nil), r.Board.Cells...),
		Cursor:      pos,
		Highlight:   hl,
		Attempts:    r.Attempts,
		MaxAttempts: r.cfg.MaxAttempts,
		Status:      r.Status(),
		History:     r.History(),
		State:       r.State,
		Exit:        r.Exit,
		BaseAddress: r.address,
	}
}

// Selection returns the highlighted text.
func (s Snapshot) Selection() string {
	return string(s.Text[s.Highlight.Start:s.Highlight.End])
}

// Markers returns the signed marker of every position.
func (s Snapshot) Markers() []int {
	return lo.Map(s.Cells, func(c Cell, _ int) int { return c.Marker() })
}

// RowAddress returns the gutter address of a row, counting rows of field 0
// first and continuing into field 1.
func (s Snapshot) RowAddress(row int) int {
	return s.BaseAddress + row*s.Geometry.Span
}
