package snake

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// Indices of the default food kinds.
const (
	kindMinus = iota
	kindFast
	kindBonus
	kindRegular
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	if w := g.Warnings(); len(w) > 0 {
		t.Fatalf("Unexpected warnings: %v", w)
	}
	return g
}

// placeFood replaces all food with a single item of the given kind.
func placeFood(g *Game, p Point, kind int) {
	g.foods = []food{{pos: p, kind: kind, ticksLeft: 1000, active: true}}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		switch i {
		case 20:
			input.Set(core.ActionDown)
		case 40:
			input.Set(core.ActionLeft)
		case 70:
			input.Set(core.ActionUp)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1.Tick != snap2.Tick || snap1.Score != snap2.Score || snap1.SnakeLen != snap2.SnakeLen {
		t.Errorf("Counters mismatch: %+v vs %+v", snap1, snap2)
	}
	if snap1.HeadX != snap2.HeadX || snap1.HeadY != snap2.HeadY {
		t.Errorf("Head position mismatch: (%d,%d) vs (%d,%d)",
			snap1.HeadX, snap1.HeadY, snap2.HeadX, snap2.HeadY)
	}
	if !slices.Equal(snap1.Foods, snap2.Foods) {
		t.Errorf("Food mismatch: %v vs %v", snap1.Foods, snap2.Foods)
	}
}

func TestStartLayout(t *testing.T) {
	g := newTestGame(t, 1)

	if g.arenaW != 80 || g.arenaH != 22 {
		t.Errorf("Expected 80x22 arena, got %dx%d", g.arenaW, g.arenaH)
	}
	want := []Point{{22, 11}, {21, 11}, {20, 11}}
	if !slices.Equal(g.snake, want) {
		t.Errorf("Expected snake %v, got %v", want, g.snake)
	}
	if n := len(g.Snapshot().Foods); n != g.cfg.Food.Slots {
		t.Errorf("Expected %d food items, got %d", g.cfg.Food.Slots, n)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(t, 42)

	if g.direction != DirRight {
		t.Fatalf("Expected initial direction Right, got %v", g.direction)
	}

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)

	if g.nextDir == DirLeft {
		t.Error("Should not allow immediate reversal from Right to Left")
	}

	input.Clear()
	input.Set(core.ActionDown)
	g.Step(input)

	if g.nextDir != DirDown {
		t.Errorf("Expected nextDir to be Down, got %v", g.nextDir)
	}
}

func TestFoodSpawnValidity(t *testing.T) {
	g := newTestGame(t, 999)

	for i := 0; i < 100; i++ {
		for j := range g.foods {
			g.foods[j].active = false
		}
		g.refillFood()

		seen := make(map[Point]bool)
		for _, f := range g.foods {
			if !f.active {
				t.Fatal("Expected every slot to be refilled")
			}
			if g.isWall(f.pos) {
				t.Errorf("Food spawned on the border at %v", f.pos)
			}
			if g.isSnakeAt(f.pos) {
				t.Errorf("Food spawned on snake at %v", f.pos)
			}
			if seen[f.pos] {
				t.Errorf("Two food items at %v", f.pos)
			}
			seen[f.pos] = true
		}
	}
}

func TestKindForRoll(t *testing.T) {
	g := newTestGame(t, 1)

	tests := []struct {
		roll int
		want int
	}{
		{20, kindMinus},
		{40, kindMinus},
		{10, kindFast},
		{30, kindFast},
		{5, kindBonus},
		{15, kindBonus},
		{35, kindBonus},
		{1, kindRegular},
		{7, kindRegular},
		{39, kindRegular},
	}

	for _, tc := range tests {
		if got := g.kindForRoll(tc.roll); got != tc.want {
			t.Errorf("kindForRoll(%d) = %d, expected %d", tc.roll, got, tc.want)
		}
	}
}

func TestFoodLifetime(t *testing.T) {
	g := newTestGame(t, 7)

	if got := g.lifetimeTicks(kindMinus); got != 8*60 {
		t.Errorf("Expected minus food to live 480 ticks, got %d", got)
	}
	for i := 0; i < 200; i++ {
		got := g.lifetimeTicks(kindRegular)
		if got < 20*60 || got > 60*60 {
			t.Fatalf("Regular lifetime %d outside 20s..60s", got)
		}
	}
}

func TestFoodExpires(t *testing.T) {
	g := newTestGame(t, 8)
	placeFood(g, Point{X: 40, Y: 3}, kindBonus)
	g.foods[0].ticksLeft = 2

	g.ageFood()
	if !g.foods[0].active {
		t.Fatal("Expected food alive with one tick left")
	}
	g.ageFood()
	if g.foods[0].active {
		t.Fatal("Expected food to expire")
	}

	g.refillFood()
	if !g.foods[0].active || g.foods[0].ticksLeft <= 0 {
		t.Error("Expected the slot to respawn")
	}
}

func TestCollisionDetection(t *testing.T) {
	g := newTestGame(t, 789)

	if g.gameOver {
		t.Fatal("Game should not start in game over state")
	}

	g.snake = []Point{
		{X: 1, Y: 1}, // Head next to the top-left corner
		{X: 2, Y: 1},
		{X: 3, Y: 1},
	}
	g.direction = DirUp
	g.nextDir = DirUp

	g.moveSnake()

	if !g.gameOver {
		t.Error("Game should be over after hitting wall")
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(t, 111)

	g.snake = []Point{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	g.direction = DirRight
	g.nextDir = DirRight

	// Moving right puts the head on (6, 5)
	g.moveSnake()

	if !g.gameOver {
		t.Error("Game should be over after self collision")
	}
}

func TestChaseTail(t *testing.T) {
	g := newTestGame(t, 112)
	g.foods = nil

	// A 2x2 loop: the head moves into the cell the tail is leaving.
	g.snake = []Point{{5, 5}, {5, 6}, {6, 6}, {6, 5}}
	g.direction = DirRight
	g.nextDir = DirRight

	g.moveSnake()
	if g.gameOver {
		t.Error("Moving into the departing tail should be allowed")
	}
}

func TestSnakeGrowth(t *testing.T) {
	g := newTestGame(t, 222)
	initialLen := len(g.snake)

	head := g.snake[0]
	placeFood(g, Point{X: head.X + 1, Y: head.Y}, kindRegular)
	g.moveSnake()

	if len(g.snake) != initialLen+1 {
		t.Errorf("Snake should grow by 1 after regular food, got %d", len(g.snake))
	}
	if g.score != 2 {
		t.Errorf("Score should be 2 after regular food, got %d", g.score)
	}

	head = g.snake[0]
	placeFood(g, Point{X: head.X + 1, Y: head.Y}, kindBonus)
	for i := 0; i < 6; i++ {
		g.moveSnake()
	}
	if len(g.snake) != initialLen+6 {
		t.Errorf("Expected length %d after bonus food, got %d", initialLen+6, len(g.snake))
	}
	if g.pendingGrowth != 0 {
		t.Errorf("Expected growth to be used up, pending %d", g.pendingGrowth)
	}
}

func TestShrink(t *testing.T) {
	g := newTestGame(t, 333)

	g.snake = nil
	for x := 20; x >= 11; x-- {
		g.snake = append(g.snake, Point{X: x, Y: 10})
	}
	placeFood(g, Point{X: 21, Y: 10}, kindMinus)

	g.moveSnake()

	if len(g.snake) != 5 {
		t.Errorf("Expected minus food to cut 5 segments, length %d", len(g.snake))
	}
	if g.score != 50 {
		t.Errorf("Expected 50 points, got %d", g.score)
	}
}

func TestShrinkStopsAtMinLength(t *testing.T) {
	g := newTestGame(t, 334)

	head := g.snake[0]
	placeFood(g, Point{X: head.X + 1, Y: head.Y}, kindMinus)
	g.moveSnake()

	if len(g.snake) != g.cfg.Snake.MinLength {
		t.Errorf("Expected length %d, got %d", g.cfg.Snake.MinLength, len(g.snake))
	}
	if g.pendingGrowth != 0 {
		t.Errorf("Expected leftover shrink to be dropped, pending %d", g.pendingGrowth)
	}
}

func TestSpeedRisesWithScore(t *testing.T) {
	g := newTestGame(t, 444)

	if got := g.moveInterval(); got != 6 {
		t.Errorf("Expected starting interval 6, got %d", got)
	}
	g.score = 500
	if got := g.moveInterval(); got != 2 {
		t.Errorf("Expected interval 2 at max difficulty, got %d", got)
	}
}

func TestFixedDifficulty(t *testing.T) {
	SetDifficultyPreset("fixed")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := newTestGame(t, 445)
	g.score = 500
	if got := g.moveInterval(); got != 6 {
		t.Errorf("Expected fixed interval 6, got %d", got)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, 555)
	g.score = 40
	g.gameOver = true

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	res := g.Step(input)

	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("Expected a fresh run, got %+v", res.State)
	}
	if len(g.snake) != g.cfg.Snake.InitialLength {
		t.Errorf("Expected snake length %d, got %d", g.cfg.Snake.InitialLength, len(g.snake))
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, 556)

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)

	before := g.Snapshot()
	input.Clear()
	for i := 0; i < 30; i++ {
		g.Step(input)
	}
	after := g.Snapshot()

	if after.State != StatePaused || after.HeadX != before.HeadX {
		t.Errorf("Expected no movement while paused, got %+v", after)
	}
}

func TestArenaFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("arena: {width: 40, height: 100}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := newTestGame(t, 1)

	if g.arenaW != 40 || g.arenaH != 22 {
		t.Errorf("Expected 40x22 arena, got %dx%d", g.arenaW, g.arenaH)
	}
	if g.offsetX != 20 {
		t.Errorf("Expected arena centered at x=20, got %d", g.offsetX)
	}
}

func TestBadConfigFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("food: {slots: 0}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 60})

	if len(g.Warnings()) != 1 || g.cfg.Food.Slots != 3 {
		t.Errorf("Expected defaults with one warning, got slots %d, %v", g.cfg.Food.Slots, g.Warnings())
	}
}

func TestGameID(t *testing.T) {
	g := New()
	if g.ID() != "snake" || g.Title() != "Snake" {
		t.Errorf("Unexpected identity %q %q", g.ID(), g.Title())
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 333, ScreenW: 10, ScreenH: 5})

	if !g.tooSmall {
		t.Error("Game should detect window is too small")
	}

	snap := g.Snapshot()
	if snap.State != StatePausedSmall {
		t.Errorf("State should be paused_small_window, got %s", snap.State)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 444)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Snake") {
		t.Error("HUD should contain 'Snake'")
	}
	if r := screen.Get(0, 2); r != '┌' {
		t.Errorf("Expected arena corner at (0, 2), got %q", r)
	}
	if c := screen.GetCell(22, 13); c.Rune != 'O' || c.Color != core.ColorBrightGreen {
		t.Errorf("Expected snake head at (22, 13), got %+v", c)
	}
}
