package physics

import "testing"

// wallRoom has a floor at tile row 8 and wall columns at tile x=2 and x=10.
// The floor surface is pixel row 127; the right wall starts at pixel x=160,
// the left wall ends at pixel x=47.
func wallRoom(t *testing.T) *Grid {
	t.Helper()
	column := "..#.......#........."
	return gridFromRows(t,
		column, column, column, column,
		column, column, column, column,
		"####################",
		"####################",
	)
}

func TestWallSnapMovingRight(t *testing.T) {
	g := wallRoom(t)
	e := newTestEntity(140, 127)
	e.Velocity.X = e.Params.MaxSpeed
	in := &Intent{Right: 1}

	hit := false
	for range 120 {
		StepEntity(e, g, in, testDT)
		if e.HitOnWall {
			hit = true
			break
		}
	}

	if !hit {
		t.Fatal("Expected to hit the wall")
	}

	rightEdge := int(e.Position.X) + e.Width/2 - 1
	if rightEdge != 159 {
		t.Errorf("Expected right edge at pixel 159 (wall at 160), got %d (x=%v)", rightEdge, e.Position.X)
	}
	if e.Velocity.X != 0 {
		t.Errorf("Expected velocity.x == 0, got %v", e.Velocity.X)
	}
	if e.Hsp != 0 {
		t.Errorf("Expected hsp == 0, got %v", e.Hsp)
	}
}

func TestWallHoldsWhilePushing(t *testing.T) {
	g := wallRoom(t)
	e := newTestEntity(154, 127)
	in := &Intent{Right: 1}

	for i := range 120 {
		StepEntity(e, g, in, testDT)
		if e.Position.X > 154 {
			t.Fatalf("frame %d: body entered the wall, x=%v", i, e.Position.X)
		}
	}
}

func TestWallSnapMovingLeft(t *testing.T) {
	g := wallRoom(t)
	e := newTestEntity(70, 127)
	e.Velocity.X = -e.Params.MaxSpeed
	in := &Intent{Left: 1}

	hit := false
	for range 120 {
		StepEntity(e, g, in, testDT)
		if e.HitOnWall {
			hit = true
			break
		}
	}

	if !hit {
		t.Fatal("Expected to hit the wall")
	}

	leftEdge := int(e.Position.X) - e.Width/2
	if leftEdge != 48 {
		t.Errorf("Expected left edge at pixel 48 (wall ends at 47), got %d (x=%v)", leftEdge, e.Position.X)
	}
	if e.Velocity.X != 0 || e.Hsp != 0 {
		t.Errorf("Expected velocity.x and hsp zeroed, got %v and %v", e.Velocity.X, e.Hsp)
	}
}

func TestSlideDownWall(t *testing.T) {
	g := wallRoom(t)
	e := newTestEntity(154, 60)
	in := &Intent{Right: 1}

	for i := range 20 {
		StepEntity(e, g, in, testDT)
		if e.Position.X != 154 {
			t.Fatalf("frame %d: expected x to stay at 154 against the wall, got %v", i, e.Position.X)
		}
	}

	if e.Position.Y <= 60 {
		t.Errorf("Expected body to fall along the wall, y=%v", e.Position.Y)
	}
}

func TestLandingSnapsToFloor(t *testing.T) {
	g := wallRoom(t)
	e := newTestEntity(100, 100)

	landed := false
	for range 120 {
		StepEntity(e, g, &Intent{}, testDT)
		if e.HitOnFloor {
			landed = true
			break
		}
	}

	if !landed {
		t.Fatal("Expected to land on the floor")
	}
	if e.Position.Y != 127 {
		t.Errorf("Expected feet on pixel row 127, got %v", e.Position.Y)
	}
	if e.Velocity.Y != 0 || e.Vsp != 0 {
		t.Errorf("Expected velocity.y and vsp zeroed, got %v and %v", e.Velocity.Y, e.Vsp)
	}
}

func TestCeilingSnap(t *testing.T) {
	g := gridFromRows(t,
		"##########",
		"#........#",
		"#........#",
		"#........#",
		"#........#",
		"##########",
		"#........#",
		"#........#",
		"##########",
		"##########",
	)
	e := newTestEntity(80, 127)
	in := &Intent{JumpHeld: true}

	bumped := false
	for range 60 {
		StepEntity(e, g, in, testDT)
		if e.HitOnCeiling {
			bumped = true
			break
		}
	}

	if !bumped {
		t.Fatal("Expected to bump the ceiling")
	}

	top := int(e.Position.Y) - e.Height + 1
	if top != 96 {
		t.Errorf("Expected head on pixel row 96 (ceiling ends at 95), got %d", top)
	}
	if e.Velocity.Y != 0 || e.Vsp != 0 {
		t.Errorf("Expected velocity.y and vsp zeroed, got %v and %v", e.Velocity.Y, e.Vsp)
	}
}

func TestCollisionFlagsResetWithoutMovement(t *testing.T) {
	g := wallRoom(t)
	e := newTestEntity(100, 127)
	e.HitOnWall = true
	e.HitOnFloor = true
	e.HitOnCeiling = true

	resolveHorizontal(e, g, testDT)
	if e.HitOnWall {
		t.Error("Expected hitOnWall cleared by a zero-displacement check")
	}

	resolveVertical(e, g, testDT)
	if e.HitOnFloor || e.HitOnCeiling {
		t.Error("Expected floor and ceiling flags cleared by a zero-displacement check")
	}
}

func TestZeroDisplacementSkipsSnap(t *testing.T) {
	g := wallRoom(t)
	// Sub-pixel push toward the wall from an already-touching position.
	e := newTestEntity(154, 127)
	e.Velocity.X = 10

	resolveHorizontal(e, g, testDT)

	if e.HitOnWall {
		t.Error("Expected no wall hit when the pending move rounds to zero pixels")
	}
	if e.Velocity.X != 10 {
		t.Errorf("Expected velocity untouched, got %v", e.Velocity.X)
	}
}

// singleTileGrid is an open 16×12 grid with one solid tile at (tx, ty).
func singleTileGrid(tx, ty int) *Grid {
	return NewGrid(16, 12, func(x, y int) TileKind {
		if x == tx && y == ty {
			return TileBlock
		}
		return TileEmpty
	})
}

// A 24×24 body puts each of its three collision points on a leading edge in a
// different tile, so one tile can be touched by exactly one point.
func TestSingleTileHitsEachCollisionPoint(t *testing.T) {
	const size = 24

	tests := []struct {
		name      string
		vertical  bool
		pos       Vec2
		velocity  float64
		tx, ty    int
		wantHit   bool
		wantCoord float64
	}{
		// Horizontal probes at y=114: feet in tile row 7, middle in row 6,
		// head in row 5.
		{"right feet only", false, Vec2{X: 100, Y: 114}, 90, 7, 7, true, 100},
		{"right middle only", false, Vec2{X: 100, Y: 114}, 90, 7, 6, true, 100},
		{"right head-height ledge", false, Vec2{X: 100, Y: 114}, 90, 7, 5, true, 100},
		{"right above head", false, Vec2{X: 100, Y: 114}, 90, 7, 4, false, 100},
		{"left head-height ledge", false, Vec2{X: 108, Y: 114}, -90, 5, 5, true, 108},
		{"left feet only", false, Vec2{X: 108, Y: 114}, -90, 5, 7, true, 108},

		// Vertical probes at x=88: left edge in tile column 4, center in
		// column 5, right edge in column 6.
		{"falling left edge only", true, Vec2{X: 88, Y: 111}, 90, 4, 7, true, 111},
		{"falling center only", true, Vec2{X: 88, Y: 111}, 90, 5, 7, true, 111},
		{"falling right edge only", true, Vec2{X: 88, Y: 111}, 90, 6, 7, true, 111},
		{"falling beside body", true, Vec2{X: 88, Y: 111}, 90, 3, 7, false, 111},
		{"rising left edge only", true, Vec2{X: 88, Y: 119}, -90, 4, 5, true, 119},
		{"rising right edge only", true, Vec2{X: 88, Y: 119}, -90, 6, 5, true, 119},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := singleTileGrid(tc.tx, tc.ty)
			e := NewEntity(tc.pos, size, size, DefaultMotionParams())

			var hit bool
			var coord, v float64
			if tc.vertical {
				e.Velocity.Y = tc.velocity
				resolveVertical(e, g, testDT)
				hit = e.HitOnFloor || e.HitOnCeiling
				coord, v = e.Position.Y, e.Velocity.Y
			} else {
				e.Velocity.X = tc.velocity
				resolveHorizontal(e, g, testDT)
				hit = e.HitOnWall
				coord, v = e.Position.X, e.Velocity.X
			}

			if hit != tc.wantHit {
				t.Fatalf("hit = %v, expected %v", hit, tc.wantHit)
			}
			if coord != tc.wantCoord {
				t.Errorf("position = %v, expected snap to %v", coord, tc.wantCoord)
			}
			if tc.wantHit && v != 0 {
				t.Errorf("Expected velocity zeroed on hit, got %v", v)
			}
			if !tc.wantHit && v != tc.velocity {
				t.Errorf("Expected velocity untouched without a hit, got %v", v)
			}
		})
	}
}
