// Package ui provides shared building blocks for the browse interface.
package ui

// Base provides size bookkeeping for component models. Embed it to get
// the standard size methods:
//
//	type Model struct {
//	    ui.Base
//	    cursor cursor.Cursor
//	    items  []Item
//	}
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// ListHeight returns the height left for list content after subtracting
// overhead rows.
func (b Base) ListHeight(overhead int) int {
	return b.height - overhead
}
