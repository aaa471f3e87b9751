package physics

import "fmt"

// Vec2 is a 2D point or vector in world pixels.
type Vec2 struct {
	X, Y float64
}

// MotionParams tunes the motion policy. Speeds are in pixels per second and
// rates in pixels per second squared. JumpImpulse is negative (y grows down);
// its magnitude is also the terminal fall speed.
type MotionParams struct {
	MaxSpeed    float64
	Accel       float64
	Decel       float64
	Gravity     float64
	JumpImpulse float64
	JumpRelease float64 // upward speed kept when jump is released early
	DeadZone    float64 // horizontal intent at or below this is "no input"
}

// DefaultMotionParams returns the prototype tuning, authored as per-frame
// values at 60 frames per second and scaled to per-second units.
func DefaultMotionParams() MotionParams {
	const fps = 60.0
	jump := -6.5625 * fps
	return MotionParams{
		MaxSpeed:    1.5625 * fps,
		Accel:       0.218164 * fps * fps,
		Decel:       0.113281 * fps * fps,
		Gravity:     0.363281 * fps * fps,
		JumpImpulse: jump,
		JumpRelease: jump * 0.2,
		DeadZone:    0,
	}
}

// Intent is the per-tick input a body acts on. Directions are 0 or 1.
// JumpHeld is a latch rather than an edge: holding it before landing buffers
// the next jump. The motion policy clears it when a jump completes.
type Intent struct {
	Right    float64
	Left     float64
	Up       float64
	Down     float64
	JumpHeld bool
}

// Entity is a dynamically simulated body. Position is the bottom-center pixel
// of its bounding box.
type Entity struct {
	Position  Vec2
	Width     int
	Height    int
	Velocity  Vec2
	Direction float64

	// Subpixel remainders carried between frames.
	Hsp float64
	Vsp float64

	IsGrounded   bool
	IsJumping    bool
	HitOnFloor   bool
	HitOnCeiling bool
	HitOnWall    bool

	Params MotionParams
}

// NewEntity creates a body of the given size at rest at pos.
// Panics if the size is not positive.
func NewEntity(pos Vec2, width, height int, params MotionParams) *Entity {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("physics: invalid entity size %dx%d", width, height))
	}
	return &Entity{
		Position:  pos,
		Width:     width,
		Height:    height,
		Direction: 1,
		Params:    params,
	}
}

// Reset puts the body back at pos with zero velocity, remainders and flags.
func (e *Entity) Reset(pos Vec2) {
	e.Position = pos
	e.Velocity = Vec2{}
	e.Direction = 1
	e.Hsp = 0
	e.Vsp = 0
	e.IsGrounded = false
	e.IsJumping = false
	e.HitOnFloor = false
	e.HitOnCeiling = false
	e.HitOnWall = false
}

// Bounds returns the body's rectangle in world pixels as (x, y, w, h) with
// (x, y) the top-left corner. Used for rendering and pickup overlap tests.
func (e *Entity) Bounds() (x, y, w, h float64) {
	return e.Position.X - float64(e.Width)*0.5,
		e.Position.Y - float64(e.Height) + 1,
		float64(e.Width),
		float64(e.Height)
}

// Edge offsets relative to the integer position, in pixels. Right and top are
// inclusive, so a 12 pixel wide body spans left..right = x-6..x+5.
func (e *Entity) leftOffset() int   { return -e.Width / 2 }
func (e *Entity) rightOffset() int  { return e.Width/2 - 1 }
func (e *Entity) topOffset() int    { return -e.Height + 1 }
func (e *Entity) middleOffset() int { return -e.Height / 2 }

// pixel returns the integer position used for tile probes.
func (e *Entity) pixel() (int, int) {
	return int(e.Position.X), int(e.Position.Y)
}
