package physics

import "math"

// readDirection sets the horizontal intent: -1 left, 1 right, 0 for none or both.
func readDirection(e *Entity, in *Intent) {
	e.Direction = in.Right - in.Left
}

// moveHorizontal accelerates toward the held direction up to MaxSpeed, or
// decelerates toward rest. Within one frame of deceleration the velocity snaps
// to exactly zero instead of overshooting.
func moveHorizontal(e *Entity, dt float64) {
	p := e.Params

	if math.Abs(e.Direction) > p.DeadZone {
		e.Velocity.X += e.Direction * p.Accel * dt
		e.Velocity.X = clampF(e.Velocity.X, -p.MaxSpeed, p.MaxSpeed)
		return
	}

	step := p.Decel * dt
	switch {
	case math.Abs(e.Velocity.X) < step:
		e.Velocity.X = 0
	case e.Velocity.X > 0:
		e.Velocity.X -= step
	default:
		e.Velocity.X += step
	}
}

// updateJump runs the jump state machine over (grounded, jumping):
//
//	grounded, not jumping, jump held -> impulse, jumping, airborne
//	grounded, jumping                -> landed: clear jumping and the input latch
//	airborne, jumping, jump released -> cut upward speed to JumpRelease
func updateJump(e *Entity, in *Intent) {
	p := e.Params

	if e.IsGrounded {
		if e.IsJumping {
			e.IsJumping = false
			in.JumpHeld = false
		} else if in.JumpHeld {
			jump(e)
		}
		return
	}

	if e.IsJumping && !in.JumpHeld {
		e.IsJumping = false
		if e.Velocity.Y < p.JumpRelease {
			e.Velocity.Y = p.JumpRelease
		}
	}
}

func jump(e *Entity) {
	e.Velocity.Y = e.Params.JumpImpulse
	e.IsJumping = true
	e.IsGrounded = false
}

// applyGravity accelerates the body downward every tick, grounded or not,
// and caps the fall at the jump impulse magnitude.
func applyGravity(e *Entity, dt float64) {
	e.Velocity.Y += e.Params.Gravity * dt

	if terminal := -e.Params.JumpImpulse; e.Velocity.Y > terminal {
		e.Velocity.Y = terminal
	}
}
