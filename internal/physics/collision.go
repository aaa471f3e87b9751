package physics

// resolveCollisions checks the pending move against the grid, horizontal axis
// first. The vertical check sees the x position the horizontal check may have
// snapped; this order decides corner cases such as sliding down a wall.
func resolveCollisions(e *Entity, g *Grid, dt float64) {
	resolveHorizontal(e, g, dt)
	resolveVertical(e, g, dt)
}

// resolveHorizontal probes the leading vertical edge at the candidate x.
// HitOnWall is cleared on every call, including when there is no movement.
func resolveHorizontal(e *Entity, g *Grid, dt float64) {
	xsp, _ := pixelStep(e.Velocity.X, dt, e.Hsp)

	e.HitOnWall = false

	var side int
	switch {
	case xsp > 0:
		side = e.rightOffset()
	case xsp < 0:
		side = e.leftOffset()
	default:
		return
	}

	x, y := e.pixel()
	edge := x + side + xsp

	bottom := g.SolidAtPixel(edge, y)
	middle := g.SolidAtPixel(edge, y+e.middleOffset())
	top := g.SolidAtPixel(edge, y+e.topOffset())
	if !bottom && !middle && !top {
		return
	}

	if xsp > 0 {
		// Last pixel before the tile's left edge.
		x = TileOrigin(edge) - 1 - side
	} else {
		// First pixel after the tile's right edge.
		x = TileOrigin(edge) + TileSize - side
	}

	e.Position.X = float64(x)
	e.Velocity.X = 0
	e.Hsp = 0
	e.HitOnWall = true
}

// resolveVertical probes the leading horizontal edge (feet when falling, head
// when rising) at the center, left and right of the body.
// HitOnFloor and HitOnCeiling are cleared on every call.
func resolveVertical(e *Entity, g *Grid, dt float64) {
	ysp, _ := pixelStep(e.Velocity.Y, dt, e.Vsp)

	e.HitOnCeiling = false
	e.HitOnFloor = false

	var side int
	switch {
	case ysp > 0:
		side = 0
	case ysp < 0:
		side = e.topOffset()
	default:
		return
	}

	x, y := e.pixel()
	edge := y + side + ysp

	center := g.SolidAtPixel(x, edge)
	left := g.SolidAtPixel(x+e.leftOffset(), edge)
	right := g.SolidAtPixel(x+e.rightOffset(), edge)
	if !center && !left && !right {
		return
	}

	if ysp > 0 {
		y = TileOrigin(edge) - 1 - side
		e.HitOnFloor = true
	} else {
		y = TileOrigin(edge) + TileSize - side
		e.HitOnCeiling = true
	}

	e.Position.Y = float64(y)
	e.Velocity.Y = 0
	e.Vsp = 0
}
