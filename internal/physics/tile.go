// Package physics implements the platformer's tile world and body movement:
// a read-only tile grid, a subpixel velocity integrator, axis-separated
// collision resolution against solid tiles, ground detection and the
// accelerate/jump/gravity motion policy.
//
// The package has no dependencies on the terminal platform. A World is driven
// one tick at a time by its owner and is not safe for concurrent use.
package physics

// Tile geometry. TileSize must stay a power of two: pixel to tile conversion
// is a right shift by TileShift and the tile origin is the pixel with the low
// TileShift bits cleared.
const (
	TileSize  = 16
	TileShift = 4
	TileRound = TileSize - 1
)

// TileKind classifies a grid cell. Every kind greater than TileEmpty is solid.
// New solid kinds (slopes) get values above TileBlock and a surface function.
type TileKind int

const (
	TileEmpty TileKind = -1
	TileBlock TileKind = 0
)

// Solid reports whether the tile blocks movement.
func (k TileKind) Solid() bool {
	return k > TileEmpty
}

// String returns a human-readable name for the tile kind.
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "empty"
	case TileBlock:
		return "block"
	default:
		return "unknown"
	}
}

// ToTile converts a world pixel coordinate to a tile coordinate.
// Negative pixels map to negative tiles (arithmetic shift).
func ToTile(px int) int {
	return px >> TileShift
}

// TileOrigin returns the first pixel of the tile containing px.
func TileOrigin(px int) int {
	return px &^ TileRound
}
