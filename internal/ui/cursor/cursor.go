// Package cursor tracks the selected row and scroll window of a list whose
// length changes underneath it.
package cursor

// Cursor is a selected row plus the first visible row. List length and
// viewport height are passed in on every call.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above and below the selection
}

// New creates a cursor that keeps margin rows of context around the
// selection.
func New(margin int) Cursor {
	return Cursor{margin: max(margin, 0)}
}

func (c Cursor) Pos() int    { return c.pos }
func (c Cursor) Offset() int { return c.offset }

// Window returns the half-open range of rows visible in height lines.
func (c Cursor) Window(listLen, height int) (start, end int) {
	start = min(c.offset, max(listLen, 0))
	end = min(start+max(height, 0), max(listLen, 0))
	return start, end
}

// Move shifts the selection by delta rows. An empty list is left alone.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Set(c.pos+delta, listLen, height)
}

// Set selects row pos, clamped to the list.
func (c *Cursor) Set(pos, listLen, height int) {
	if listLen <= 0 {
		return
	}
	c.pos = min(max(pos, 0), listLen-1)
	c.scroll(listLen, height)
}

// JumpStart selects the first row.
func (c *Cursor) JumpStart() {
	c.pos, c.offset = 0, 0
}

// JumpEnd selects the last row.
func (c *Cursor) JumpEnd(listLen, height int) {
	c.Set(listLen-1, listLen, height)
}

// EnsureVisible scrolls so the selection sits at least margin rows from
// either edge, or as close as a short viewport allows.
func (c *Cursor) EnsureVisible(listLen, height int) {
	if listLen > 0 {
		c.scroll(listLen, height)
	}
}

// ClampToBounds keeps the selection inside a list that may have shrunk.
func (c *Cursor) ClampToBounds(listLen, height int) {
	if listLen <= 0 {
		c.JumpStart()
		return
	}
	c.Set(c.pos, listLen, height)
}

func (c *Cursor) scroll(listLen, height int) {
	if height <= 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)
	lowest := c.pos - height + margin + 1
	highest := c.pos - margin
	c.offset = min(max(c.offset, lowest), highest)
	c.offset = min(max(c.offset, 0), max(listLen-height, 0))
}
