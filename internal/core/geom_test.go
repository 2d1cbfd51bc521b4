package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{"overlapping", RectF{0, 0, 2, 2}, RectF{1, 1, 2, 2}, true},
		{"disjoint horizontal", RectF{0, 0, 2, 2}, RectF{3, 0, 2, 2}, false},
		{"disjoint vertical", RectF{0, 0, 2, 2}, RectF{0, 3, 2, 2}, false},
		{"shared vertical edge", RectF{0, 0, 2, 2}, RectF{2, 0, 2, 2}, false},
		{"shared horizontal edge", RectF{0, 0, 2, 2}, RectF{0, 2, 2, 2}, false},
		{"contained", RectF{0, 0, 10, 10}, RectF{4.5, 4.5, 0.5, 0.5}, true},
		{"sliver overlap", RectF{0, 0, 1, 1}, RectF{0.99, 0.99, 1, 1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFOverlap(t *testing.T) {
	a := RectF{X: 3.5, Y: 0.5, W: 1, H: 1}
	b := RectF{X: 0, Y: 0, W: 4, H: 1}

	dx, dy := a.Overlap(b)
	if dx != 0.5 || dy != 0.5 {
		t.Errorf("Overlap() = (%v, %v), expected (0.5, 0.5)", dx, dy)
	}

	dx, _ = a.Overlap(RectF{X: 10, Y: 0, W: 1, H: 1})
	if dx > 0 {
		t.Errorf("Overlap() of disjoint boxes should be <= 0 on x, got %v", dx)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
