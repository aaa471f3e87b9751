package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/physics"
)

// A terminal cell is about twice as tall as it is wide, so one tile maps to
// two columns and one row. The player uses half blocks for a finer vertical
// position.
const (
	pxPerCol     = physics.TileSize / 2
	pxPerRow     = physics.TileSize
	pxPerHalfRow = physics.TileSize / 2

	hudHeight = 2
	minViewW  = 24
	minViewH  = 8
)

// Display characters.
const (
	BlockChar = '█'
	CoinChar  = 'o'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("Need at least %dx%d", minViewW, minViewH+hudHeight))
		return
	}

	v := g.viewport(dst.Width(), dst.Height())
	g.drawTiles(dst, v)
	g.drawCoins(dst, v)
	g.drawPlayer(dst, v)
	g.drawHUD(dst)

	switch {
	case g.won:
		g.drawCenteredMessage(dst, "LEVEL CLEAR",
			fmt.Sprintf("Time: %s  |  Enter or R to play again", formatTicks(g.runTicks, g.dt)))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// view maps world columns and rows onto the screen below the HUD.
type view struct {
	col, row int // world cell shown at the top-left of the play area
	w, h     int // play area size in cells
}

func (v view) toScreen(col, row int) (int, int, bool) {
	x := col - v.col
	y := row - v.row
	if x < 0 || x >= v.w || y < 0 || y >= v.h {
		return 0, 0, false
	}
	return x, y + hudHeight, true
}

// viewport centers a world that fits on screen and otherwise follows the
// player, clamped to the world edges.
func (g *Game) viewport(screenW, screenH int) view {
	v := view{w: screenW, h: screenH - hudHeight}
	cols := g.level.Grid.PixelWidth() / pxPerCol
	rows := g.level.Grid.PixelHeight() / pxPerRow

	p := g.world.Player.Position
	v.col = cameraAxis(cols, v.w, int(p.X)/pxPerCol)
	v.row = cameraAxis(rows, v.h, int(p.Y)/pxPerRow)
	return v
}

func cameraAxis(world, view, focus int) int {
	if world <= view {
		return -(view - world) / 2
	}
	return core.Clamp(focus-view/2, 0, world-view)
}

func (g *Game) drawTiles(dst *core.Screen, v view) {
	grid := g.level.Grid
	for ty := 0; ty < grid.Height(); ty++ {
		for tx := 0; tx < grid.Width(); tx++ {
			if !grid.TileAt(tx, ty).Solid() {
				continue
			}
			for c := 0; c < physics.TileSize/pxPerCol; c++ {
				if x, y, ok := v.toScreen(tx*2+c, ty); ok {
					dst.SetColor(x, y, BlockChar, core.ColorBlue)
				}
			}
		}
	}
}

func (g *Game) drawCoins(dst *core.Screen, v view) {
	for _, c := range g.coins {
		if !c.active {
			continue
		}
		cx := c.rect.X + c.rect.W/2
		cy := c.rect.Y + c.rect.H/2
		if x, y, ok := v.toScreen(cx/pxPerCol, cy/pxPerRow); ok {
			dst.SetColor(x, y, CoinChar, core.ColorBrightYellow)
		}
	}
}

// drawPlayer fills every half cell the body overlaps.
func (g *Game) drawPlayer(dst *core.Screen, v view) {
	x, y, w, h := g.world.Player.Bounds()
	left := int(math.Floor(x))
	top := int(math.Floor(y))
	right := left + int(w) - 1
	bottom := top + int(h) - 1

	for col := left / pxPerCol; col <= right/pxPerCol; col++ {
		for row := top / pxPerRow; row <= bottom/pxPerRow; row++ {
			upper := overlaps(top, bottom, row*2)
			lower := overlaps(top, bottom, row*2+1)

			var r rune
			switch {
			case upper && lower:
				r = '█'
			case upper:
				r = '▀'
			case lower:
				r = '▄'
			default:
				continue
			}
			if sx, sy, ok := v.toScreen(col, row); ok {
				dst.SetColor(sx, sy, r, core.ColorYellow)
			}
		}
	}
}

// overlaps reports whether the pixel span [top, bottom] touches half row hr.
func overlaps(top, bottom, hr int) bool {
	start := hr * pxPerHalfRow
	end := start + pxPerHalfRow - 1
	return top <= end && bottom >= start
}

func (g *Game) drawHUD(dst *core.Screen) {
	collected := len(g.coins) - activeCoins(g.coins)
	left := fmt.Sprintf(" %s  Coins: %d/%d  Score: %d ", g.level.Name, collected, len(g.coins), g.score)
	dst.DrawText(1, 0, left)

	right := fmt.Sprintf(" Time: %s ", formatTicks(g.runTicks, g.dt))
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// formatTicks renders a tick count as seconds with one decimal.
func formatTicks(ticks int, dt float64) string {
	return fmt.Sprintf("%.1fs", float64(ticks)*dt)
}
