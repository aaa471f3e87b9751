package core

import "testing"

func TestRectIntersects(t *testing.T) {
	base := NewRect(10, 10, 4, 4)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same", base, true},
		{"inside", NewRect(11, 11, 1, 1), true},
		{"corner overlap", NewRect(13, 13, 4, 4), true},
		{"touching right", NewRect(14, 10, 4, 4), false},
		{"touching below", NewRect(10, 14, 4, 4), false},
		{"far left", NewRect(0, 10, 4, 4), false},
		{"zero size", NewRect(11, 11, 0, 0), false},
		{"zero width", NewRect(11, 11, 0, 2), false},
		{"zero height", NewRect(11, 11, 2, 0), false},
		{"negative size", NewRect(13, 13, -2, -2), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Intersects(tc.other); got != tc.want {
				t.Errorf("Intersects() = %v, expected %v", got, tc.want)
			}
			if got := tc.other.Intersects(base); got != tc.want {
				t.Errorf("Intersects() is not symmetric")
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	if !r.Contains(2, 3) || !r.Contains(5, 4) {
		t.Error("Expected corners inside")
	}
	if r.Contains(6, 3) || r.Contains(2, 5) || r.Contains(1, 3) {
		t.Error("Expected points on or past the far edges outside")
	}
}

func TestIntHelpers(t *testing.T) {
	if Clamp(-3, 0, 10) != 0 || Clamp(30, 0, 10) != 10 || Clamp(4, 0, 10) != 4 {
		t.Error("Clamp returned a wrong value")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs returned a wrong value")
	}
	if Min(2, 7) != 2 || Max(2, 7) != 7 {
		t.Error("Min/Max returned a wrong value")
	}
}
