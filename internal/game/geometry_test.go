package game

import "testing"

var geometries = []Geometry{
	{Span: 12, Limit: 17},
	{Span: 1, Limit: 1},
	{Span: 5, Limit: 3},
	{Span: 16, Limit: 2},
}

func TestGeometryRoundTrip(t *testing.T) {
	for _, g := range geometries {
		for pos := 0; pos < g.Len(); pos++ {
			f, x, y := g.Field(pos), g.X(pos), g.Y(pos)
			if f < 0 || f >= Fields || x < 0 || x >= g.Span || y < 0 || y >= g.Limit {
				t.Fatalf("%+v pos %d: coords out of range (%d,%d,%d)", g, pos, f, x, y)
			}
			if back := g.Position(f, x, y); back != pos {
				t.Fatalf("%+v pos %d: round trip gave %d", g, pos, back)
			}
		}
	}
}

func TestCursorLeftRightInverse(t *testing.T) {
	for _, g := range geometries {
		c := NewCursor(g)
		for pos := 0; pos < g.Len(); pos++ {
			c.SetPosition(pos)
			if c.AdvanceLeft() {
				if !c.AdvanceRight() || c.Position() != pos {
					t.Fatalf("%+v: left then right from %d ended at %d", g, pos, c.Position())
				}
			} else if c.Position() != pos {
				t.Fatalf("%+v: blocked left moved cursor from %d to %d", g, pos, c.Position())
			}

			c.SetPosition(pos)
			if c.AdvanceRight() {
				if !c.AdvanceLeft() || c.Position() != pos {
					t.Fatalf("%+v: right then left from %d ended at %d", g, pos, c.Position())
				}
			} else if c.Position() != pos {
				t.Fatalf("%+v: blocked right moved cursor from %d to %d", g, pos, c.Position())
			}
		}
	}
}

func TestCursorUpDownInverse(t *testing.T) {
	for _, g := range geometries {
		c := NewCursor(g)
		for pos := 0; pos < g.Len(); pos++ {
			c.SetPosition(pos)
			field := c.Field()
			if c.AdvanceUp() {
				if c.Field() != field {
					t.Fatalf("%+v: up changed field from %d", g, pos)
				}
				if !c.AdvanceDown() || c.Position() != pos {
					t.Fatalf("%+v: up then down from %d ended at %d", g, pos, c.Position())
				}
			}
			c.SetPosition(pos)
			if c.AdvanceDown() {
				if c.Field() != field {
					t.Fatalf("%+v: down changed field from %d", g, pos)
				}
				if !c.AdvanceUp() || c.Position() != pos {
					t.Fatalf("%+v: down then up from %d ended at %d", g, pos, c.Position())
				}
			}
		}
	}
}

func TestCursorFieldCarry(t *testing.T) {
	g := Geometry{Span: 12, Limit: 17}
	c := NewCursor(g)

	c.SetCoords(0, 11, 3)
	if !c.AdvanceRight() {
		t.Fatalf("expected right edge of field 0 to carry")
	}
	if c.Field() != 1 || c.X() != 0 || c.Y() != 3 {
		t.Fatalf("expected (1,0,3), got (%d,%d,%d)", c.Field(), c.X(), c.Y())
	}

	if !c.AdvanceLeft() {
		t.Fatalf("expected left edge of field 1 to carry")
	}
	if c.Field() != 0 || c.X() != 11 || c.Y() != 3 {
		t.Fatalf("expected (0,11,3), got (%d,%d,%d)", c.Field(), c.X(), c.Y())
	}
}

func TestCursorBlocked(t *testing.T) {
	g := Geometry{Span: 12, Limit: 17}
	cases := []struct {
		name        string
		field, x, y int
		move        func(*Cursor) bool
	}{
		{"left of field 0", 0, 0, 5, (*Cursor).AdvanceLeft},
		{"right of field 1", 1, 11, 5, (*Cursor).AdvanceRight},
		{"top of field 0", 0, 4, 0, (*Cursor).AdvanceUp},
		{"top of field 1", 1, 4, 0, (*Cursor).AdvanceUp},
		{"bottom of field 0", 0, 4, 16, (*Cursor).AdvanceDown},
		{"bottom of field 1", 1, 4, 16, (*Cursor).AdvanceDown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCursor(g)
			c.SetCoords(tc.field, tc.x, tc.y)
			before := c.Position()
			if tc.move(c) {
				t.Fatalf("expected move to be blocked")
			}
			if c.Position() != before {
				t.Fatalf("blocked move changed position %d -> %d", before, c.Position())
			}
		})
	}
}
