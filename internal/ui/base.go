package ui

// Base holds the focus flag and allotted size shared by panels and
// overlays. Components embed it.
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component receives keys.
func (b *Base) SetFocused(focused bool) { b.focused = focused }

// IsFocused reports whether the component receives keys.
func (b Base) IsFocused() bool { return b.focused }

// SetSize records the allotted size. Negative values are stored as zero.
func (b *Base) SetSize(width, height int) {
	b.width, b.height = max(width, 0), max(height, 0)
}

func (b Base) Width() int  { return b.width }
func (b Base) Height() int { return b.height }

// ListHeight returns the rows left for list content once overhead rows,
// such as borders and headers, are taken.
func (b Base) ListHeight(overhead int) int {
	return max(b.height-overhead, 0)
}
