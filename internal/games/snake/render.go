package snake

import (
	"fmt"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// foodColors tints the built-in food kinds; other kinds draw in yellow.
var foodColors = map[string]core.Color{
	"minus":   core.ColorBrightRed,
	"fast":    core.ColorBrightCyan,
	"bonus":   core.ColorBrightMagenta,
	"regular": core.ColorYellow,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(core.NewRect(g.offsetX, g.offsetY, g.arenaW, g.arenaH))
	g.renderFood(dst)
	g.renderSnake(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d", g.score, len(g.snake))
	dst.DrawText(0, 0, hud)

	if g.difficulty.IsEnabled() {
		speed := fmt.Sprintf(" Speed: %d ", g.cfg.Timing.MoveEveryTicks-g.moveInterval()+1)
		dst.DrawText(dst.Width()-len(speed)-1, 0, speed)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderFood(dst *core.Screen) {
	for _, f := range g.foods {
		if !f.active {
			continue
		}
		k := g.cfg.Food.Kinds[f.kind]
		glyph := '*'
		if r := []rune(k.Glyph); len(r) > 0 {
			glyph = r[0]
		}
		color, ok := foodColors[k.Name]
		if !ok {
			color = core.ColorYellow
		}
		dst.SetColor(g.offsetX+f.pos.X, g.offsetY+f.pos.Y, glyph, color)
	}
}

func (g *Game) renderSnake(dst *core.Screen) {
	for i, seg := range g.snake {
		r, c := 'o', core.ColorGreen
		if i == 0 {
			r, c = 'O', core.ColorBrightGreen
		}
		dst.SetColor(g.offsetX+seg.X, g.offsetY+seg.Y, r, c)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Min(core.Max(len(line1), len(line2))+4, dst.Width())
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
