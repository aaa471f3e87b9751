package physics

// World owns one simulation: the tile grid and the body moving through it.
// It replaces module-level state, so any number of worlds can run side by
// side (one per SSH session, one per test).
type World struct {
	Grid   *Grid
	Player *Entity
	Spawn  Vec2
}

// NewWorld creates a world with the player body at spawn.
func NewWorld(grid *Grid, spawn Vec2, width, height int, params MotionParams) *World {
	return &World{
		Grid:   grid,
		Player: NewEntity(spawn, width, height, params),
		Spawn:  spawn,
	}
}

// Step advances the world by dt seconds using the intent for this tick.
// The intent is owned by the caller; Step may clear its jump latch.
func (w *World) Step(in *Intent, dt float64) {
	StepEntity(w.Player, w.Grid, in, dt)
}

// ResetEntity returns the player to the spawn point at rest.
func (w *World) ResetEntity() {
	w.Player.Reset(w.Spawn)
}

// StepEntity runs one tick for a single body:
// ground check, direction, horizontal motion, jump state, gravity,
// collision (horizontal then vertical) and finally integration.
func StepEntity(e *Entity, g *Grid, in *Intent, dt float64) {
	e.IsGrounded = detectGround(e, g)
	readDirection(e, in)
	moveHorizontal(e, dt)
	updateJump(e, in)
	applyGravity(e, dt)
	resolveCollisions(e, g, dt)
	integrate(e, dt, g.PixelWidth(), g.PixelHeight())
}
