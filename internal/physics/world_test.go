package physics

import "testing"

func runScript(w *World, frames int) []Vec2 {
	in := &Intent{}
	trace := make([]Vec2, 0, frames)
	for i := range frames {
		in.Right, in.Left = 0, 0
		switch {
		case i%90 < 40:
			in.Right = 1
		case i%90 < 70:
			in.Left = 1
		}
		if i%45 == 0 {
			in.JumpHeld = true
		}
		if i%45 == 20 {
			in.JumpHeld = false
		}
		w.Step(in, testDT)
		trace = append(trace, w.Player.Position)
	}
	return trace
}

func testWorld(t *testing.T) *World {
	t.Helper()
	g := gridFromRows(t,
		"##############################",
		"#............................#",
		"#............................#",
		"#............................#",
		"#............................#",
		"#............................#",
		"#.......###..........###.....#",
		"#............###.............#",
		"#..###............##.........#",
		"#............................#",
		"#............................#",
		"##############################",
	)
	return NewWorld(g, Vec2{X: 240, Y: 175}, 12, 12, DefaultMotionParams())
}

func TestWorldDeterminism(t *testing.T) {
	a := runScript(testWorld(t), 600)
	b := runScript(testWorld(t), 600)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("frame %d: runs diverged, %v vs %v", i, a[i], b[i])
		}
	}
}

func TestWorldStaysInsideBorder(t *testing.T) {
	w := testWorld(t)
	trace := runScript(w, 900)

	for i, p := range trace {
		if p.X < 16 || p.X >= float64(w.Grid.PixelWidth()-16) {
			t.Fatalf("frame %d: x=%v left the playfield", i, p.X)
		}
		if p.Y < 16 || p.Y >= float64(w.Grid.PixelHeight()-16) {
			t.Fatalf("frame %d: y=%v left the playfield", i, p.Y)
		}
	}
}

func TestWorldSpawnFallsToFloor(t *testing.T) {
	w := testWorld(t)
	for range 60 {
		w.Step(&Intent{}, testDT)
	}

	if w.Player.Position.Y != 175 {
		t.Errorf("Expected player resting on the floor at y=175, got %v", w.Player.Position.Y)
	}
	if !detectGround(w.Player, w.Grid) {
		t.Error("Expected player to be on the ground")
	}
}

func TestWorldResetEntity(t *testing.T) {
	w := testWorld(t)
	runScript(w, 100)

	w.ResetEntity()
	p := w.Player

	if p.Position != w.Spawn {
		t.Errorf("Expected position %v, got %v", w.Spawn, p.Position)
	}
	if p.Velocity != (Vec2{}) {
		t.Errorf("Expected zero velocity, got %v", p.Velocity)
	}
	if p.Hsp != 0 || p.Vsp != 0 {
		t.Errorf("Expected zero remainders, got %v, %v", p.Hsp, p.Vsp)
	}
	if p.IsJumping || p.IsGrounded || p.HitOnWall || p.HitOnFloor || p.HitOnCeiling {
		t.Error("Expected all flags cleared")
	}
}

func TestNewEntityPanicsOnBadSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for zero-sized entity")
		}
	}()
	NewEntity(Vec2{}, 0, 12, DefaultMotionParams())
}
