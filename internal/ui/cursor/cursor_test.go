package cursor

import "testing"

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		initial    int
		delta      int
		len        int
		height     int
		wantPos    int
		wantOffset int
	}{
		{
			name:       "move down within view",
			margin:     2,
			initial:    0,
			delta:      1,
			len:        10,
			height:     5,
			wantPos:    1,
			wantOffset: 0,
		},
		{
			name:       "move down scrolls when margin is reached",
			margin:     2,
			initial:    0,
			delta:      3,
			len:        10,
			height:     5,
			wantPos:    3,
			wantOffset: 1,
		},
		{
			name:       "move up clamps to 0",
			margin:     2,
			initial:    2,
			delta:      -5,
			len:        10,
			height:     5,
			wantPos:    0,
			wantOffset: 0,
		},
		{
			name:       "move down clamps to last item",
			margin:     2,
			initial:    5,
			delta:      15,
			len:        10,
			height:     5,
			wantPos:    9,
			wantOffset: 5,
		},
		{
			name:       "no margin scrolls only at the edge",
			margin:     0,
			initial:    4,
			delta:      1,
			len:        10,
			height:     5,
			wantPos:    5,
			wantOffset: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin)
			c.pos = tt.initial
			c.Move(tt.delta, tt.len, tt.height)
			if c.Pos() != tt.wantPos {
				t.Errorf("Move() pos = %d, want %d", c.Pos(), tt.wantPos)
			}
			if c.Offset() != tt.wantOffset {
				t.Errorf("Move() offset = %d, want %d", c.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestMoveEmptyList(t *testing.T) {
	c := New(2)
	c.pos = 5
	c.Move(1, 0, 5)
	if c.Pos() != 5 {
		t.Errorf("Move() on empty list changed pos to %d", c.Pos())
	}
}

func TestJumpStart(t *testing.T) {
	c := New(2)
	c.pos = 5
	c.offset = 3
	c.JumpStart()
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("JumpStart() = pos %d offset %d, want 0 0", c.Pos(), c.Offset())
	}
}

func TestJumpEnd(t *testing.T) {
	c := New(2)
	c.JumpEnd(10, 5)
	if c.Pos() != 9 {
		t.Errorf("JumpEnd() pos = %d, want 9", c.Pos())
	}
	if c.Offset() != 5 {
		t.Errorf("JumpEnd() offset = %d, want 5", c.Offset())
	}

	c2 := New(2)
	c2.JumpEnd(0, 5)
	if c2.Pos() != 0 {
		t.Errorf("JumpEnd() on empty list pos = %d, want 0", c2.Pos())
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name      string
		offset    int
		len       int
		height    int
		wantStart int
		wantEnd   int
	}{
		{
			name:      "mid-list window",
			offset:    2,
			len:       10,
			height:    5,
			wantStart: 2,
			wantEnd:   7,
		},
		{
			name:      "window at end of list",
			offset:    7,
			len:       10,
			height:    5,
			wantStart: 7,
			wantEnd:   10,
		},
		{
			name:      "list shorter than window",
			offset:    0,
			len:       3,
			height:    5,
			wantStart: 0,
			wantEnd:   3,
		},
		{
			name:      "empty list",
			offset:    0,
			len:       0,
			height:    5,
			wantStart: 0,
			wantEnd:   0,
		},
		{
			name:      "zero height",
			offset:    0,
			len:       10,
			height:    0,
			wantStart: 0,
			wantEnd:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(2)
			c.offset = tt.offset
			start, end := c.VisibleRange(tt.len, tt.height)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("VisibleRange() = (%d, %d), want (%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestReset(t *testing.T) {
	c := New(2)
	c.pos = 5
	c.offset = 3
	c.Reset()
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("Reset() = pos %d offset %d, want 0 0", c.Pos(), c.Offset())
	}
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		name    string
		keys    []string
		wantPos int
	}{
		{
			name:    "j moves down",
			keys:    []string{"j", "j"},
			wantPos: 2,
		},
		{
			name:    "arrow keys mirror j and k",
			keys:    []string{"down", "down", "up"},
			wantPos: 1,
		},
		{
			name:    "G jumps to end",
			keys:    []string{"G"},
			wantPos: 9,
		},
		{
			name:    "g returns to start",
			keys:    []string{"G", "g"},
			wantPos: 0,
		},
		{
			name:    "ctrl+d moves half a page",
			keys:    []string{"ctrl+d"},
			wantPos: 2,
		},
		{
			name:    "ctrl+u clamps at the top",
			keys:    []string{"j", "ctrl+u"},
			wantPos: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(1)
			for _, key := range tt.keys {
				if !c.HandleKey(key, 10, 5) {
					t.Fatalf("HandleKey(%q) not handled", key)
				}
			}
			if c.Pos() != tt.wantPos {
				t.Errorf("pos after %v = %d, want %d", tt.keys, c.Pos(), tt.wantPos)
			}
		})
	}
}

func TestHandleKeyUnknown(t *testing.T) {
	c := New(1)
	if c.HandleKey("x", 10, 5) {
		t.Error("HandleKey(\"x\") claimed to handle an unbound key")
	}
	if c.Pos() != 0 {
		t.Errorf("unbound key moved cursor to %d", c.Pos())
	}
}
