// Package cursor tracks the selected row and scroll offset of a
// scrollable list.
package cursor

// Cursor holds a selection and the scroll offset that keeps it on screen.
// List length and viewport height are method arguments rather than fields
// because both change out from under the cursor on every resize and
// search.
type Cursor struct {
	pos    int // selected index, 0-based
	offset int // first visible index
	margin int // rows kept visible above and below the selection
}

// New creates a cursor that scrolls early enough to keep margin rows of
// context around the selection.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected index.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the index of the first visible row.
func (c Cursor) Offset() int {
	return c.offset
}

// Move shifts the selection by delta within a list of listLen items,
// clamping at both ends and scrolling as needed. A zero-length list is a
// no-op.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.ensureVisible(listLen, height)
}

// JumpStart selects the first item and scrolls to the top.
func (c *Cursor) JumpStart() {
	c.pos = 0
	c.offset = 0
}

// JumpEnd selects the last item and scrolls it into view.
func (c *Cursor) JumpEnd(listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = listLen - 1
	c.ensureVisible(listLen, height)
}

// VisibleRange returns the half-open range [start, end) of indices that
// fit in the viewport.
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// Reset returns the cursor to the top, for when the list is replaced.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// HandleKey applies the common list navigation keys and reports whether
// the key was one of them: j/down, k/up, g/home, G/end, ctrl+d and
// ctrl+u for half pages.
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
		return true
	case "k", "up":
		c.Move(-1, listLen, height)
		return true
	case "g", "home":
		c.JumpStart()
		return true
	case "G", "end":
		c.JumpEnd(listLen, height)
		return true
	case "ctrl+d":
		c.Move(height/2, listLen, height)
		return true
	case "ctrl+u":
		c.Move(-height/2, listLen, height)
		return true
	}
	return false
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	if c.pos < c.offset+c.margin {
		c.offset = max(c.pos-c.margin, 0)
	}
	if c.pos >= c.offset+height-c.margin {
		c.offset = c.pos - height + c.margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
