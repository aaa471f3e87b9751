package physics

// SurfaceFunc returns the walkable surface row for a pixel inside a solid tile:
// the pixel row a body's foot rests on. Implementations receive the probed
// pixel so shaped tiles (slopes) can vary the height along x.
type SurfaceFunc func(px, py int) int

// surfaces maps solid tile kinds to their surface height strategy.
// Adding a slope kind means adding an entry here; callers go through SurfaceY.
var surfaces = map[TileKind]SurfaceFunc{
	TileBlock: blockSurface,
}

// blockSurface is one pixel above the top edge of the tile.
func blockSurface(_, py int) int {
	return TileOrigin(py) - 1
}

// SurfaceY returns the surface row for the pixel (px, py) inside a tile of the
// given kind. Empty tiles return py unchanged. Solid kinds without a
// registered strategy behave like full blocks.
func SurfaceY(px, py int, kind TileKind) int {
	if !kind.Solid() {
		return py
	}
	if fn, ok := surfaces[kind]; ok {
		return fn(px, py)
	}
	return blockSurface(px, py)
}
