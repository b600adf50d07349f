package game

import (
	"math/rand/v2"
	"testing"
)

func smallBoard() *Board {
	b := NewBoard(Geometry{Span: 6, Limit: 2}) // 24 cells
	b.Write(2, "ABCD")
	b.Tag(Range{Start: 2, End: 6}, WordCell(1))
	b.Write(6, "EFGH") // adjacent run, different tag
	b.Tag(Range{Start: 6, End: 10}, WordCell(2))
	b.Write(14, "(..)")
	b.Tag(Range{Start: 14, End: 18}, DudCell(1))
	return b
}

func TestRunBounds(t *testing.T) {
	b := smallBoard()
	for pos := 0; pos < b.Len(); pos++ {
		if !b.IsOnRun(pos) {
			if b.RangeStart(pos) != pos || b.RangeEnd(pos) != pos {
				t.Fatalf("plain pos %d: expected (%d,%d), got (%d,%d)", pos, pos, pos, b.RangeStart(pos), b.RangeEnd(pos))
			}
			continue
		}
		s, e := b.RangeStart(pos), b.RangeEnd(pos)
		if !(s <= pos && pos < e) {
			t.Fatalf("pos %d outside its run [%d,%d)", pos, s, e)
		}
		for i := s; i < e; i++ {
			if b.Cells[i] != b.Cells[pos] {
				t.Fatalf("pos %d: cell %d in run has tag %v, want %v", pos, i, b.Cells[i], b.Cells[pos])
			}
		}
		if s > 0 && b.Cells[s-1] == b.Cells[pos] {
			t.Fatalf("pos %d: run start %d is not maximal", pos, s)
		}
		if e < b.Len() && b.Cells[e] == b.Cells[pos] {
			t.Fatalf("pos %d: run end %d is not maximal", pos, e)
		}
	}
}

func TestRunTextAndFind(t *testing.T) {
	b := smallBoard()
	if got := b.RunText(4); got != "ABCD" {
		t.Fatalf("expected ABCD, got %q", got)
	}
	if got := b.RunText(6); got != "EFGH" {
		t.Fatalf("expected EFGH, got %q", got)
	}
	if got := b.RunText(15); got != "(..)" {
		t.Fatalf("expected dud text, got %q", got)
	}
	if got := b.RunText(0); got != "" {
		t.Fatalf("expected empty text on plain cell, got %q", got)
	}

	r, ok := b.Find(WordCell(2))
	if !ok || r != (Range{Start: 6, End: 10}) {
		t.Fatalf("expected word 2 at [6,10), got %+v ok=%v", r, ok)
	}
	if _, ok := b.Find(WordCell(9)); ok {
		t.Fatalf("expected missing word not to be found")
	}
}

func TestBlankAndPresent(t *testing.T) {
	b := smallBoard()
	if got := b.Present(KindWord); len(got) != 2 {
		t.Fatalf("expected two words present, got %v", got)
	}
	b.Blank(Range{Start: 2, End: 6})
	if got := b.Present(KindWord); len(got) != 1 || got[0] != WordCell(2) {
		t.Fatalf("expected only word 2 present, got %v", got)
	}
	for i := 2; i < 6; i++ {
		if b.Text[i] != BlankChar || b.IsOnRun(i) {
			t.Fatalf("pos %d not blanked: %q %v", i, b.Text[i], b.Cells[i])
		}
	}
}

func TestMarkers(t *testing.T) {
	b := smallBoard()
	m := b.Markers()
	if m[0] != 0 || m[3] != 1 || m[7] != 2 || m[15] != -1 {
		t.Fatalf("unexpected markers %v", m)
	}
}

func TestScrambleUsesFiller(t *testing.T) {
	b := NewBoard(Geometry{Span: 12, Limit: 17})
	b.Scramble(rand.New(rand.NewPCG(1, 1)))
	for i, c := range b.Text {
		if isLetter(c) {
			t.Fatalf("filler at %d is a letter: %q", i, c)
		}
		if b.IsOnRun(i) {
			t.Fatalf("scrambled cell %d is tagged", i)
		}
	}
}
