// Package snake is an arena snake: a bordered field, several food items
// alive at once, food kinds that grow or shrink the tail, and speed that
// rises with the score.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Point represents a cell in arena coordinates.
type Point struct {
	X, Y int
}

const (
	hudHeight = 2
	minArenaW = 12
	minArenaH = 6
)

// Package-level variables for config/difficulty, set from the CLI.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game implements the Snake game.
type Game struct {
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tickRate   int

	tick       uint64
	runTicks   int
	score      int
	moveTicker int // counts ticks until next move

	// Snake state
	snake         []Point // head at index 0
	direction     Direction
	nextDir       Direction // buffered direction for next move
	pendingGrowth int       // segments still to add; negative trims the tail

	foods []food

	// Arena size in cells, border included, and its placement on screen.
	arenaW  int
	arenaH  int
	offsetX int
	offsetY int

	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool

	warnings []string
}

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset loads config and starts a new run sized to the screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.warnings = nil

	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		g.warnings = append(g.warnings, fmt.Sprintf("using default config: %v", err))
		cfg = config.DefaultSnakeConfig()
	}
	if difficultyPreset != "" {
		preset := config.ParsePreset(difficultyPreset)
		if preset == "" {
			g.warnings = append(g.warnings, fmt.Sprintf("unknown difficulty %q", difficultyPreset))
		}
		cfg.Difficulty.ApplyPreset(preset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.tick = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	g.layoutArena()
	g.start()
}

// Warnings returns the problems met by the last Reset.
func (g *Game) Warnings() []string {
	return g.warnings
}

// layoutArena sizes the arena from config, shrinking it to fit the screen,
// and centers it horizontally under the HUD.
func (g *Game) layoutArena() {
	maxW := g.screenW
	maxH := g.screenH - hudHeight

	g.arenaW = maxW
	if g.cfg.Arena.Width > 0 {
		g.arenaW = core.Min(g.cfg.Arena.Width, maxW)
	}
	g.arenaH = maxH
	if g.cfg.Arena.Height > 0 {
		g.arenaH = core.Min(g.cfg.Arena.Height, maxH)
	}

	needW := core.Max(minArenaW, g.cfg.Snake.InitialLength+4)
	g.tooSmall = g.arenaW < needW || g.arenaH < minArenaH

	g.offsetX = (g.screenW - g.arenaW) / 2
	g.offsetY = hudHeight
}

// start places a fresh snake moving right and fills every food slot.
func (g *Game) start() {
	g.score = 0
	g.runTicks = 0
	g.moveTicker = 0
	g.pendingGrowth = 0
	g.gameOver = false
	g.paused = false
	g.direction = DirRight
	g.nextDir = DirRight
	g.snake = nil
	g.foods = make([]food, g.cfg.Food.Slots)

	if g.tooSmall {
		return
	}

	n := g.cfg.Snake.InitialLength
	startX := core.Max(1, g.arenaW/4)
	y := g.arenaH / 2
	g.snake = make([]Point, n)
	for i := range n {
		g.snake[i] = Point{X: startX + n - 1 - i, Y: y}
	}

	g.refillFood()
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		g.rng = rand.New(rand.NewSource(g.rng.Int63()))
		g.start()
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.runTicks++
	g.processInput(input)
	g.ageFood()

	g.moveTicker++
	if g.moveTicker >= g.moveInterval() {
		g.moveTicker = 0
		g.moveSnake()
	}

	g.refillFood()

	return core.StepResult{State: g.State()}
}

// moveInterval is the number of ticks between moves at the current score.
func (g *Game) moveInterval() int {
	t := g.cfg.Timing
	return g.difficulty.Interval(t.MoveEveryTicks, t.MinMoveTicks, g.score, g.runTicks)
}

// processInput buffers a direction change for the next move.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir

	switch {
	case input.Has(core.ActionUp):
		newDir = DirUp
	case input.Has(core.ActionDown):
		newDir = DirDown
	case input.Has(core.ActionLeft):
		newDir = DirLeft
	case input.Has(core.ActionRight):
		newDir = DirRight
	}

	if !isOpposite(newDir, g.direction) {
		g.nextDir = newDir
	}
}

func isOpposite(d1, d2 Direction) bool {
	return (d1+2)%4 == d2
}

// moveSnake moves the snake one cell in the current direction.
func (g *Game) moveSnake() {
	g.direction = g.nextDir

	head := g.snake[0]
	switch g.direction {
	case DirUp:
		head.Y--
	case DirDown:
		head.Y++
	case DirLeft:
		head.X--
	case DirRight:
		head.X++
	}

	if g.isWall(head) {
		g.gameOver = true
		return
	}

	// The tail cell frees up this move unless the snake is growing.
	checkLen := len(g.snake)
	if g.pendingGrowth <= 0 {
		checkLen--
	}
	for _, seg := range g.snake[:checkLen] {
		if seg == head {
			g.gameOver = true
			return
		}
	}

	g.snake = append([]Point{head}, g.snake...)

	if i := g.foodAt(head); i >= 0 {
		kind := g.cfg.Food.Kinds[g.foods[i].kind]
		g.score += kind.Points
		g.pendingGrowth += kind.Growth
		g.foods[i].active = false
	}

	if g.pendingGrowth > 0 {
		g.pendingGrowth--
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}

	for g.pendingGrowth < 0 && len(g.snake) > g.cfg.Snake.MinLength {
		g.snake = g.snake[:len(g.snake)-1]
		g.pendingGrowth++
	}
	if g.pendingGrowth < 0 {
		g.pendingGrowth = 0
	}
}

// isWall reports whether p is on or beyond the arena border.
func (g *Game) isWall(p Point) bool {
	return p.X <= 0 || p.X >= g.arenaW-1 || p.Y <= 0 || p.Y >= g.arenaH-1
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// RunTicks returns how many ticks the current run has been played.
func (g *Game) RunTicks() int {
	return g.runTicks
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
