package render

import (
	"errors"
	"strings"
	"testing"
)

func TestEstimateRows(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		columns int
		want    int
	}{
		{
			name:    "two short lines",
			lines:   []string{"abc", "de"},
			columns: 3,
			want:    2,
		},
		{
			name:    "empty line still occupies a row",
			lines:   []string{""},
			columns: 80,
			want:    1,
		},
		{
			name:    "exact fit does not wrap",
			lines:   []string{"abcde"},
			columns: 5,
			want:    1,
		},
		{
			name:    "one glyph over wraps",
			lines:   []string{"abcdef"},
			columns: 5,
			want:    2,
		},
		{
			name:    "long line wraps twice",
			lines:   []string{strings.Repeat("x", 50)},
			columns: 20,
			want:    3,
		},
		{
			name:    "wide glyphs count double",
			lines:   []string{"日本語"},
			columns: 4,
			want:    2,
		},
		{
			name:    "wide glyph wraps early instead of splitting",
			lines:   []string{"ab日"},
			columns: 3,
			want:    2,
		},
		{
			name:    "combining mark adds no width",
			lines:   []string{"éée"},
			columns: 3,
			want:    1,
		},
		{
			name:    "caption block",
			lines:   []string{"The Bedroom (1889)", "Vincent van Gogh", "https://www.artic.edu/artworks/28560"},
			columns: 40,
			want:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EstimateRows(tt.lines, tt.columns)
			if err != nil {
				t.Fatalf("EstimateRows(%v, %d) error: %v", tt.lines, tt.columns, err)
			}
			if got != tt.want {
				t.Errorf("EstimateRows(%v, %d) = %d, want %d", tt.lines, tt.columns, got, tt.want)
			}
		})
	}
}

// Widening the terminal can only reduce the number of rows a caption needs.
func TestEstimateRowsMonotonic(t *testing.T) {
	lines := []string{
		"A Sunday on La Grande Jatte — 1884 (1884/86)",
		"Georges Seurat",
		"French, 1859-1891",
		"https://www.artic.edu/artworks/27992",
	}
	last := 0
	for columns := 1; columns <= 120; columns++ {
		got, err := EstimateRows(lines, columns)
		if err != nil {
			t.Fatalf("EstimateRows at %d columns: %v", columns, err)
		}
		if columns > 1 && got > last {
			t.Fatalf("EstimateRows at %d columns = %d rows, more than %d at %d columns",
				columns, got, last, columns-1)
		}
		last = got
	}
}

func TestEstimateRowsRejectsBadWidth(t *testing.T) {
	for _, columns := range []int{0, -1, -80} {
		_, err := EstimateRows([]string{"abc"}, columns)
		if !errors.Is(err, ErrInvalidTerminal) {
			t.Errorf("EstimateRows with %d columns: err = %v, want ErrInvalidTerminal", columns, err)
		}
	}
}
