// internal/game/types.go
//
// Core type definitions for the puzzle engine.
// Defines:
//   - Cell: per-position tag telling plain filler, placed words and duds apart.
//   - State: round state machine (playing → won/lost).
//   - Intent: player actions consumed by a Round.
//   - Range: half-open run bounds.

package game

import "fmt"

// CellKind classifies a buffer position.
type CellKind uint8

const (
	KindPlain CellKind = iota
	KindWord
	KindDud
)

// Cell tags one buffer position. Index is 1-based and identifies which placed
// word or detected dud the position belongs to; it is zero for plain cells.
type Cell struct {
	Kind  CellKind
	Index int
}

var plainCell = Cell{}

// WordCell returns the tag for the i-th placed word (1-based).
func WordCell(i int) Cell { return Cell{Kind: KindWord, Index: i} }

// DudCell returns the tag for the d-th detected dud (1-based).
func DudCell(d int) Cell { return Cell{Kind: KindDud, Index: d} }

// Marker returns the signed encoding of the cell:
// 0 for plain filler, +k for word k and -d for dud d.
func (c Cell) Marker() int {
	switch c.Kind {
	case KindWord:
		return c.Index
	case KindDud:
		return -c.Index
	}
	return 0
}

func (c Cell) String() string {
	switch c.Kind {
	case KindWord:
		return fmt.Sprintf("word#%d", c.Index)
	case KindDud:
		return fmt.Sprintf("dud#%d", c.Index)
	}
	return "plain"
}

// State is the round state machine.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	}
	return "playing"
}

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool { return s != StatePlaying }

// Intent is one player action, independent of the physical key that produced it.
type Intent int

const (
	IntentNone Intent = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Submit
	Abort
)

func (i Intent) String() string {
	switch i {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case Submit:
		return "submit"
	case Abort:
		return "abort"
	}
	return "none"
}

// Range is a half-open span of buffer positions [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of positions in r.
func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether pos lies inside r.
func (r Range) Contains(pos int) bool { return pos >= r.Start && pos < r.End }
