package physics

// detectGround reports whether the body stands on a solid surface. It probes
// the pixel row just below the feet at the center, left edge and right edge,
// in that order, and stops at the first probe that qualifies.
func detectGround(e *Entity, g *Grid) bool {
	x, y := e.pixel()
	y++

	for _, px := range [3]int{x, x + e.leftOffset(), x + e.rightOffset()} {
		if standsOn(g, px, y) {
			return true
		}
	}
	return false
}

// standsOn reports whether the probe pixel is inside a solid tile at or below
// that tile's surface row.
func standsOn(g *Grid, px, py int) bool {
	kind := g.TileAtPixel(px, py)
	if !kind.Solid() {
		return false
	}
	return py >= SurfaceY(px, py, kind)
}
