package snake

import "math"

// food is one slot of the food table. An inactive slot is refilled on the
// next tick.
type food struct {
	pos       Point
	kind      int // index into the configured kinds
	ticksLeft int
	active    bool
}

// ageFood counts lifetimes down and retires expired food.
func (g *Game) ageFood() {
	for i := range g.foods {
		f := &g.foods[i]
		if !f.active {
			continue
		}
		f.ticksLeft--
		if f.ticksLeft <= 0 {
			f.active = false
		}
	}
}

// refillFood respawns every inactive slot. A slot stays empty when the
// arena has no free cell left.
func (g *Game) refillFood() {
	for i := range g.foods {
		if g.foods[i].active {
			continue
		}
		pos, ok := g.freeCell()
		if !ok {
			return
		}
		kind := g.rollKind()
		g.foods[i] = food{
			pos:       pos,
			kind:      kind,
			ticksLeft: g.lifetimeTicks(kind),
			active:    true,
		}
	}
}

// rollKind draws a roll in [1, RollMax] and picks the kind for it.
func (g *Game) rollKind() int {
	return g.kindForRoll(g.rng.Intn(g.cfg.Food.RollMax) + 1)
}

// kindForRoll returns the first kind that takes the roll.
func (g *Game) kindForRoll(roll int) int {
	for i, k := range g.cfg.Food.Kinds {
		if k.Matches(roll) {
			return i
		}
	}
	return len(g.cfg.Food.Kinds) - 1
}

// lifetimeTicks converts a kind's lifetime to ticks, applying its jitter.
func (g *Game) lifetimeTicks(kind int) int {
	k := g.cfg.Food.Kinds[kind]
	secs := k.Lifetime
	if k.Jitter > 0 {
		secs *= 1 + k.Jitter*(2*g.rng.Float64()-1)
	}
	return max(1, int(math.Round(secs*float64(g.tickRate))))
}

// freeCell picks a random interior cell free of snake and food.
func (g *Game) freeCell() (Point, bool) {
	var cells []Point
	for y := 1; y < g.arenaH-1; y++ {
		for x := 1; x < g.arenaW-1; x++ {
			p := Point{X: x, Y: y}
			if !g.isSnakeAt(p) && g.foodAt(p) < 0 {
				cells = append(cells, p)
			}
		}
	}
	if len(cells) == 0 {
		return Point{}, false
	}
	return cells[g.rng.Intn(len(cells))], true
}

// foodAt returns the index of the active food at p, or -1.
func (g *Game) foodAt(p Point) int {
	for i, f := range g.foods {
		if f.active && f.pos == p {
			return i
		}
	}
	return -1
}
