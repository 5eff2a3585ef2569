package engine

import "testing"

func TestCoordIndex(t *testing.T) {
	tests := []struct {
		row, col, n int
		want        int
	}{
		{1, 1, 9, 0},
		{1, 9, 9, 8},
		{2, 1, 9, 9},
		{9, 9, 9, 80},
		{5, 5, 9, 40},
	}
	for _, tt := range tests {
		got := NewCoord(tt.n, tt.row, tt.col).Index()
		if got != tt.want {
			t.Errorf("NewCoord(%d,%d,%d).Index() = %d, want %d", tt.n, tt.row, tt.col, got, tt.want)
		}
	}
}

func TestCoordBox(t *testing.T) {
	tests := []struct {
		row, col, n int
		want        int
	}{
		{1, 1, 9, 1},
		{1, 3, 9, 1},
		{1, 4, 9, 2},
		{4, 4, 9, 5},
		{9, 9, 9, 9},
		{1, 1, 16, 1},
		{4, 4, 16, 1},
		{4, 5, 16, 2},
	}
	for _, tt := range tests {
		got := NewCoord(tt.n, tt.row, tt.col).Box()
		if got != tt.want {
			t.Errorf("NewCoord(%d,%d,%d).Box() = %d, want %d", tt.n, tt.row, tt.col, got, tt.want)
		}
	}
}

func TestCoordIsPeerOfExcludesSelf(t *testing.T) {
	c := NewCoord(9, 5, 5)
	if c.IsPeerOf(c) {
		t.Errorf("a coordinate must not be its own peer")
	}
}

func TestCoordIsPeerOf(t *testing.T) {
	c := NewCoord(9, 5, 5)
	sameRow := NewCoord(9, 5, 1)
	sameCol := NewCoord(9, 1, 5)
	sameBox := NewCoord(9, 4, 4)
	unrelated := NewCoord(9, 1, 1)

	if !c.IsPeerOf(sameRow) {
		t.Error("expected same-row cells to be peers")
	}
	if !c.IsPeerOf(sameCol) {
		t.Error("expected same-column cells to be peers")
	}
	if !c.IsPeerOf(sameBox) {
		t.Error("expected same-box cells to be peers")
	}
	if c.IsPeerOf(unrelated) {
		t.Error("expected unrelated cells not to be peers")
	}
}

func TestFormatDigitLetters(t *testing.T) {
	tests := []struct {
		digit int
		want  string
	}{
		{1, "1"},
		{9, "9"},
		{10, "a"},
		{16, "g"},
		{25, "p"},
	}
	for _, tt := range tests {
		if got := FormatDigit(tt.digit); got != tt.want {
			t.Errorf("FormatDigit(%d) = %q, want %q", tt.digit, got, tt.want)
		}
	}
}
