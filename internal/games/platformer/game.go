// Package platformer is a single-screen tile platformer: run and jump through
// a walled level and collect every coin. Movement and collision come from the
// physics package; this package adds coins, scoring, input adaptation for
// terminals and rendering.
package platformer

import (
	"fmt"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/games/platformer/levels"
	"github.com/vovakirdan/tile-arcade/internal/physics"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

// configPath and levelPath are set from the CLI before the game is created.
var (
	configPath string
	levelPath  string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelPath sets a level file that overrides the configured level.
func SetLevelPath(path string) {
	levelPath = path
}

// Game implements the platformer.
type Game struct {
	cfg   config.PlatformerConfig
	level *levels.Level
	world *physics.World
	coins []coin

	intent physics.Intent
	input  *intentTracker
	dt     float64

	tick     uint64 // ticks since Reset, including paused ones
	runTicks int    // ticks of actual play in the current run
	score    int

	won      bool
	paused   bool
	tooSmall bool

	screenW int
	screenH int

	warnings []string
}

// New creates a new platformer game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Platformer"
}

// Reset loads config and level and starts a fresh run. Problems with a
// custom config or level fall back to the built-in ones and are reported
// through Warnings.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.warnings = nil

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		g.warn("using default config: %v", err)
		cfg = config.DefaultPlatformerConfig()
	}
	g.cfg = cfg

	g.level = g.loadLevel()
	g.world = physics.NewWorld(
		g.level.Grid,
		g.level.Spawn,
		cfg.Player.Width,
		cfg.Player.Height,
		cfg.MotionParams(),
	)
	g.coins = placeCoins(g.level.Coins, cfg.Coins.Size)
	g.input = newIntentTracker(cfg.Input.HoldTicks, cfg.Input.JumpHold())

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)
	g.tick = 0

	g.Resize(rc.ScreenW, rc.ScreenH)
	g.replay()
}

// loadLevel resolves the level source: --level, then the config, then the
// built-in level.
func (g *Game) loadLevel() *levels.Level {
	path := levelPath
	if path == "" {
		path = g.cfg.Level
	}
	if path == "" {
		return levels.Default()
	}

	l, err := levels.LoadFile(path)
	if err != nil {
		g.warn("using built-in level: %v", err)
		return levels.Default()
	}
	return l
}

func (g *Game) warn(format string, args ...any) {
	g.warnings = append(g.warnings, fmt.Sprintf(format, args...))
}

// Warnings returns the problems met by the last Reset.
func (g *Game) Warnings() []string {
	return g.warnings
}

// Resize adapts the view to a new terminal size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minViewW || h < minViewH+hudHeight
}

// replay puts the player back at the spawn with every coin restored.
func (g *Game) replay() {
	g.world.ResetEntity()
	restoreCoins(g.coins)
	g.intent = physics.Intent{}
	g.input.reset()
	g.score = 0
	g.runTicks = 0
	g.won = false
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) || (g.won && in.Has(core.ActionConfirm)) {
		g.replay()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.won {
		g.paused = !g.paused
	}

	if g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.input.update(in, &g.intent)
	g.world.Step(&g.intent, g.dt)
	g.runTicks++

	if picked := collectCoins(g.coins, g.world.Player); picked > 0 {
		g.score += picked * g.cfg.Coins.Points
		if activeCoins(g.coins) == 0 {
			g.won = true
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state. Winning ends the run.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.won,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// RunTicks returns how many ticks the current run has been played.
func (g *Game) RunTicks() int {
	return g.runTicks
}
