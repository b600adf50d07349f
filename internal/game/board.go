// internal/game/board.go
//
// Board holds the shared character buffer for both panels together with the
// per-position cell tags, and answers run queries over them.
//
// A run is a maximal contiguous sequence of positions sharing the same
// non-plain cell tag. Placement and dud scanning guarantee every tag forms
// exactly one run, so run bounds are found by walking outwards from any
// member position.

package game

import (
	"math/rand/v2"

	"github.com/samber/lo"
)

// FillerChars are the garbage characters scattered around hidden words.
const FillerChars = `\/!@#$%^'",.-_&*(){}[]<>`

// BlankChar replaces the text of removed duds and decoys.
const BlankChar = '.'

// Board is the display buffer plus its index-aligned cell tags.
type Board struct {
	geom  Geometry
	Text  []byte
	Cells []Cell
}

// NewBoard allocates a board for g with every position plain and blank.
func NewBoard(g Geometry) *Board {
	b := &Board{
		geom:  g,
		Text:  make([]byte, g.Len()),
		Cells: make([]Cell, g.Len()),
	}
	for i := range b.Text {
		b.Text[i] = BlankChar
	}
	return b
}

// Geometry returns the board dimensions.
func (b *Board) Geometry() Geometry { return b.geom }

// Len returns the buffer length.
func (b *Board) Len() int { return len(b.Text) }

// Scramble fills the whole buffer with random filler and clears all tags.
func (b *Board) Scramble(rng *rand.Rand) {
	for i := range b.Text {
		b.Text[i] = FillerChars[rng.IntN(len(FillerChars))]
		b.Cells[i] = plainCell
	}
}

// Write copies s into the buffer starting at pos without touching tags.
func (b *Board) Write(pos int, s string) {
	copy(b.Text[pos:pos+len(s)], s)
}

// Tag marks every position of r with c.
func (b *Board) Tag(r Range, c Cell) {
	for i := r.Start; i < r.End; i++ {
		b.Cells[i] = c
	}
}

// Blank overwrites r with BlankChar and makes it plain filler.
func (b *Board) Blank(r Range) {
	for i := r.Start; i < r.End; i++ {
		b.Text[i] = BlankChar
		b.Cells[i] = plainCell
	}
}

// IsOnRun reports whether pos belongs to a word or dud.
func (b *Board) IsOnRun(pos int) bool {
	return b.Cells[pos].Kind != KindPlain
}

// RangeStart returns the first position of the run containing pos,
// or pos itself when pos is plain.
func (b *Board) RangeStart(pos int) int {
	if !b.IsOnRun(pos) {
		return pos
	}
	c := b.Cells[pos]
	for pos > 0 && b.Cells[pos-1] == c {
		pos--
	}
	return pos
}

// RangeEnd returns the first position after the run containing pos,
// or pos itself when pos is plain.
func (b *Board) RangeEnd(pos int) int {
	if !b.IsOnRun(pos) {
		return pos
	}
	c := b.Cells[pos]
	end := pos + 1
	for end < len(b.Cells) && b.Cells[end] == c {
		end++
	}
	return end
}

// Run returns the bounds of the run containing pos. ok is false for plain positions.
func (b *Board) Run(pos int) (r Range, ok bool) {
	if !b.IsOnRun(pos) {
		return Range{Start: pos, End: pos}, false
	}
	return Range{Start: b.RangeStart(pos), End: b.RangeEnd(pos)}, true
}

// RunText returns the text of the run containing pos, or "" when pos is plain.
func (b *Board) RunText(pos int) string {
	r, ok := b.Run(pos)
	if !ok {
		return ""
	}
	return string(b.Text[r.Start:r.End])
}

// Find returns the run tagged with c.
func (b *Board) Find(c Cell) (Range, bool) {
	for i, cell := range b.Cells {
		if cell == c {
			return Range{Start: i, End: b.RangeEnd(i)}, true
		}
	}
	return Range{}, false
}

// Present returns the distinct tags of the given kind still on the board,
// in buffer order.
func (b *Board) Present(kind CellKind) []Cell {
	return lo.Uniq(lo.Filter(b.Cells, func(c Cell, _ int) bool {
		return c.Kind == kind
	}))
}

// Markers returns the signed marker encoding of every position.
func (b *Board) Markers() []int {
	return lo.Map(b.Cells, func(c Cell, _ int) int { return c.Marker() })
}
