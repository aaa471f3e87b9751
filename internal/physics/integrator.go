package physics

import "math"

// signEpsilon treats tiny positive values as stationary so a body does not
// jitter by a pixel on leftover rounding error.
const signEpsilon = 0.0001

// Sign returns -1 for negative values, 0 for values below signEpsilon and 1
// otherwise. Negative values are never treated as zero.
func Sign(x float64) int {
	if x < 0 {
		return -1
	}
	if x < signEpsilon {
		return 0
	}
	return 1
}

// pixelStep splits this frame's travel on one axis into whole pixels and the
// fraction to carry to the next frame. The magnitude is truncated before the
// sign is reapplied, so the whole part always rounds toward zero.
func pixelStep(velocity, dt, remainder float64) (delta int, carry float64) {
	combined := velocity*dt + remainder
	delta = int(math.Abs(combined)) * Sign(combined)
	return delta, combined - float64(delta)
}

// integrate applies the resolved velocity to the entity position in whole
// pixels, stores the carried remainders and clamps the body to the world.
// It must run after collision resolution for the tick.
func integrate(e *Entity, dt float64, worldW, worldH int) {
	dx, hsp := pixelStep(e.Velocity.X, dt, e.Hsp)
	dy, vsp := pixelStep(e.Velocity.Y, dt, e.Vsp)
	e.Hsp = hsp
	e.Vsp = vsp

	e.Position.X += float64(dx)
	e.Position.Y += float64(dy)

	// Safety net only; the border tiles do the real work.
	e.Position.X = clampF(e.Position.X, 0, float64(worldW))
	e.Position.Y = clampF(e.Position.Y, 0, float64(worldH))
}

func clampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
