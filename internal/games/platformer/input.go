package platformer

import (
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/physics"
)

// intentTracker turns terminal key presses into held intents.
//
// Terminals never report key releases; a held key shows up as a press
// followed by auto-repeats. Each press arms a countdown of hold ticks and
// the key counts as held until it runs out. Pressing the opposite direction
// releases the other one at once.
//
// Jump is a latch with its own hold window: a fresh press (one that arrives
// after the previous window ran out) sets JumpHeld, repeats only keep it
// alive, and the latch drops when the window lapses, which ends the jump
// early. The physics clears it on landing, so keeping the key down does not
// chain jumps until it is let go and pressed again.
type intentTracker struct {
	hold     int
	jumpHold int

	left, right, up, down int
	jump                  int
}

// newIntentTracker creates a tracker. A non-positive jumpHoldTicks uses
// holdTicks for jump too.
func newIntentTracker(holdTicks, jumpHoldTicks int) *intentTracker {
	hold := max(1, holdTicks)
	jumpHold := hold
	if jumpHoldTicks > 0 {
		jumpHold = jumpHoldTicks
	}
	return &intentTracker{hold: hold, jumpHold: jumpHold}
}

func (t *intentTracker) reset() {
	*t = intentTracker{hold: t.hold, jumpHold: t.jumpHold}
}

// update applies this tick's key presses to the intent.
func (t *intentTracker) update(in core.InputFrame, intent *physics.Intent) {
	t.left, t.right = countdown(t.left), countdown(t.right)
	t.up, t.down = countdown(t.up), countdown(t.down)

	if in.Has(core.ActionLeft) {
		t.left, t.right = t.hold, 0
	}
	if in.Has(core.ActionRight) {
		t.right, t.left = t.hold, 0
	}
	if in.Has(core.ActionUp) {
		t.up, t.down = t.hold, 0
	}
	if in.Has(core.ActionDown) {
		t.down, t.up = t.hold, 0
	}

	pressed := in.Has(core.ActionJump) || in.Has(core.ActionUp)
	switch {
	case pressed && t.jump == 0:
		intent.JumpHeld = true
		t.jump = t.jumpHold
	case pressed:
		t.jump = t.jumpHold
	case t.jump > 0:
		t.jump--
		if t.jump == 0 {
			intent.JumpHeld = false
		}
	}

	intent.Left = held(t.left)
	intent.Right = held(t.right)
	intent.Up = held(t.up)
	intent.Down = held(t.down)
}

func countdown(n int) int {
	if n > 0 {
		return n - 1
	}
	return 0
}

func held(n int) float64 {
	if n > 0 {
		return 1
	}
	return 0
}
