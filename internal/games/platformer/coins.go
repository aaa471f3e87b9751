package platformer

import (
	"math"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/games/platformer/levels"
	"github.com/vovakirdan/tile-arcade/internal/physics"
)

// coin is a pickup square in world pixels.
type coin struct {
	rect   core.Rect
	active bool
}

// placeCoins centers a size×size coin in each listed tile.
func placeCoins(tiles []levels.Point, size int) []coin {
	inset := (physics.TileSize - size) / 2
	coins := make([]coin, len(tiles))
	for i, t := range tiles {
		coins[i] = coin{
			rect: core.NewRect(
				t.X*physics.TileSize+inset,
				t.Y*physics.TileSize+inset,
				size, size,
			),
			active: true,
		}
	}
	return coins
}

// restoreCoins makes every coin collectable again.
func restoreCoins(coins []coin) {
	for i := range coins {
		coins[i].active = true
	}
}

// collectCoins deactivates every active coin overlapping the body and
// returns how many were picked up.
func collectCoins(coins []coin, e *physics.Entity) int {
	body := entityRect(e)
	picked := 0
	for i := range coins {
		if coins[i].active && coins[i].rect.Intersects(body) {
			coins[i].active = false
			picked++
		}
	}
	return picked
}

// activeCoins counts coins not yet collected.
func activeCoins(coins []coin) int {
	n := 0
	for _, c := range coins {
		if c.active {
			n++
		}
	}
	return n
}

// entityRect returns the body's bounding box in whole pixels.
func entityRect(e *physics.Entity) core.Rect {
	x, y, w, h := e.Bounds()
	return core.NewRect(int(math.Floor(x)), int(math.Floor(y)), int(w), int(h))
}
