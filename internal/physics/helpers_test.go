package physics

import "testing"

// testDT is a pinned 60 Hz timestep. Results depend on dt, so every test
// that compares positions across frames uses this value.
const testDT = 1.0 / 60.0

// gridFromRows builds a grid from a text layout or fails the test.
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := ParseGrid(rows)
	if err != nil {
		t.Fatalf("ParseGrid() failed: %v", err)
	}
	return g
}

// solidRowGrid returns a w×h grid where only row y is solid.
func solidRowGrid(w, h, row int) *Grid {
	return NewGrid(w, h, func(_, y int) TileKind {
		if y == row {
			return TileBlock
		}
		return TileEmpty
	})
}

// newTestEntity creates the prototype 12×12 body with default tuning.
func newTestEntity(x, y float64) *Entity {
	return NewEntity(Vec2{X: x, Y: y}, 12, 12, DefaultMotionParams())
}

func approxEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
