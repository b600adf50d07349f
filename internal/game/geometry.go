package game

// Fields is the number of side-by-side panels packed into one buffer.
const Fields = 2

// Geometry maps linear buffer positions onto (field, x, y) coordinates.
// Both fields share the same Span (columns) and Limit (rows); field 1 follows
// field 0 in linear order.
type Geometry struct {
	Span  int
	Limit int
}

// FieldLen returns the number of positions in one field.
func (g Geometry) FieldLen() int { return g.Span * g.Limit }

// Len returns the total buffer length across both fields.
func (g Geometry) Len() int { return Fields * g.FieldLen() }

// Field returns the panel index of pos.
func (g Geometry) Field(pos int) int { return pos / g.FieldLen() }

// X returns the column of pos within its field.
func (g Geometry) X(pos int) int { return (pos % g.FieldLen()) % g.Span }

// Y returns the row of pos within its field.
func (g Geometry) Y(pos int) int { return (pos % g.FieldLen()) / g.Span }

// Position is the inverse of Field/X/Y.
func (g Geometry) Position(field, x, y int) int {
	return field*g.FieldLen() + y*g.Span + x
}

// Valid reports whether the geometry describes a usable buffer.
func (g Geometry) Valid() bool { return g.Span > 0 && g.Limit > 0 }

// Cursor is a linear position moved with panel-aware rules.
// A failed advance leaves the position unchanged.
type Cursor struct {
	geom Geometry
	pos  int
}

// NewCursor returns a cursor at position 0.
func NewCursor(g Geometry) *Cursor {
	return &Cursor{geom: g}
}

func (c *Cursor) Position() int { return c.pos }
func (c *Cursor) Field() int    { return c.geom.Field(c.pos) }
func (c *Cursor) X() int        { return c.geom.X(c.pos) }
func (c *Cursor) Y() int        { return c.geom.Y(c.pos) }

// SetPosition moves the cursor to pos. Out of range positions panic.
func (c *Cursor) SetPosition(pos int) {
	if pos < 0 || pos >= c.geom.Len() {
		panic("game: cursor position out of range")
	}
	c.pos = pos
}

// SetCoords moves the cursor to (field, x, y).
func (c *Cursor) SetCoords(field, x, y int) {
	c.SetPosition(c.geom.Position(field, x, y))
}

// AdvanceLeft moves one column left, carrying into the right edge of field 0
// from the left edge of field 1. Blocked at the left edge of field 0.
func (c *Cursor) AdvanceLeft() bool {
	field, x, y := c.Field(), c.X(), c.Y()
	if x == 0 {
		if field == 0 {
			return false
		}
		field--
		x = c.geom.Span - 1
	} else {
		x--
	}
	c.SetCoords(field, x, y)
	return true
}

// AdvanceRight moves one column right, carrying into the left edge of field 1
// from the right edge of field 0. Blocked at the right edge of the last field.
func (c *Cursor) AdvanceRight() bool {
	field, x, y := c.Field(), c.X(), c.Y()
	if x >= c.geom.Span-1 {
		if field >= Fields-1 {
			return false
		}
		field++
		x = 0
	} else {
		x++
	}
	c.SetCoords(field, x, y)
	return true
}

// AdvanceUp moves one row up within the current field.
func (c *Cursor) AdvanceUp() bool {
	y := c.Y()
	if y < 1 {
		return false
	}
	c.SetCoords(c.Field(), c.X(), y-1)
	return true
}

// AdvanceDown moves one row down within the current field.
func (c *Cursor) AdvanceDown() bool {
	y := c.Y()
	if y >= c.geom.Limit-1 {
		return false
	}
	c.SetCoords(c.Field(), c.X(), y+1)
	return true
}
