package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 5)
	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}
}

func TestRectInner(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		expected Rect
	}{
		{"well box", NewRect(4, 1, 22, 22), NewRect(5, 2, 20, 20)},
		{"preview box", NewRect(0, 0, 10, 4), NewRect(1, 1, 8, 2)},
		{"degenerate", NewRect(3, 3, 1, 1), NewRect(4, 4, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inner(); got != tc.expected {
				t.Errorf("Inner() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestCentered(t *testing.T) {
	tests := []struct {
		name           string
		w, h           int
		outerW, outerH int
		expected       Rect
	}{
		{"fits", 38, 22, 80, 24, NewRect(21, 1, 38, 22)},
		{"exact", 80, 24, 80, 24, NewRect(0, 0, 80, 24)},
		{"too small", 38, 22, 30, 10, NewRect(0, 0, 38, 22)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Centered(tc.w, tc.h, tc.outerW, tc.outerH)
			if got != tc.expected {
				t.Errorf("Centered(%d, %d, %d, %d) = %+v, expected %+v",
					tc.w, tc.h, tc.outerW, tc.outerH, got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"just inside bottom-right", 29, 29, true},
		{"right edge (exclusive)", 30, 15, false},
		{"bottom edge (exclusive)", 15, 30, false},
		{"left of rect", 5, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}
