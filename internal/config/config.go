// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tile-arcade/internal/physics"
)

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics PlatformerPhysics `yaml:"physics"`
	Player  PlatformerPlayer  `yaml:"player"`
	Input   PlatformerInput   `yaml:"input"`
	Coins   PlatformerCoins   `yaml:"coins"`
	Level   string            `yaml:"level"` // optional level file; empty uses the built-in level
}

// PlatformerPhysics is the motion tuning in pixels per second (and per
// second squared). JumpImpulse is negative because y grows downward.
type PlatformerPhysics struct {
	MaxSpeed    float64 `yaml:"max_speed"`
	Accel       float64 `yaml:"accel"`
	Decel       float64 `yaml:"decel"`
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	JumpRelease float64 `yaml:"jump_release"` // fraction of JumpImpulse kept on early release
	DeadZone    float64 `yaml:"dead_zone"`
}

// PlatformerPlayer is the player body size in pixels.
type PlatformerPlayer struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlatformerInput tunes how key presses become held intents.
type PlatformerInput struct {
	HoldTicks     int `yaml:"hold_ticks"`      // ticks a direction stays held after its last key press
	JumpHoldTicks int `yaml:"jump_hold_ticks"` // ticks jump stays held after its last press; 0 uses hold_ticks
}

// JumpHold returns the effective jump hold window in ticks.
func (in PlatformerInput) JumpHold() int {
	if in.JumpHoldTicks > 0 {
		return in.JumpHoldTicks
	}
	return in.HoldTicks
}

// PlatformerCoins defines coin pickups.
type PlatformerCoins struct {
	Size   int `yaml:"size"` // square side in pixels
	Points int `yaml:"points"`
}

// MotionParams converts the tuning to physics parameters.
func (c PlatformerConfig) MotionParams() physics.MotionParams {
	p := c.Physics
	return physics.MotionParams{
		MaxSpeed:    p.MaxSpeed,
		Accel:       p.Accel,
		Decel:       p.Decel,
		Gravity:     p.Gravity,
		JumpImpulse: p.JumpImpulse,
		JumpRelease: p.JumpImpulse * p.JumpRelease,
		DeadZone:    p.DeadZone,
	}
}

// Validate rejects tunings the engine cannot simulate correctly.
// Probes are spaced half a body apart, so a body more than two tiles wide
// or tall could straddle a one-tile obstacle without touching it.
func (c PlatformerConfig) Validate() error {
	var errs []error

	maxBody := 2 * physics.TileSize
	if c.Player.Width <= 0 || c.Player.Width > maxBody {
		errs = append(errs, fmt.Errorf("player.width %d out of range 1..%d", c.Player.Width, maxBody))
	}
	if c.Player.Height <= 0 || c.Player.Height > maxBody {
		errs = append(errs, fmt.Errorf("player.height %d out of range 1..%d", c.Player.Height, maxBody))
	}

	p := c.Physics
	if p.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_impulse must be negative, got %v", p.JumpImpulse))
	}
	if p.MaxSpeed <= 0 || p.Accel <= 0 || p.Decel <= 0 || p.Gravity <= 0 {
		errs = append(errs, errors.New("physics: max_speed, accel, decel and gravity must be positive"))
	}
	if p.JumpRelease < 0 || p.JumpRelease > 1 {
		errs = append(errs, fmt.Errorf("physics.jump_release %v out of range 0..1", p.JumpRelease))
	}
	if p.DeadZone < 0 || p.DeadZone >= 1 {
		errs = append(errs, fmt.Errorf("physics.dead_zone %v out of range [0, 1)", p.DeadZone))
	}

	if c.Input.HoldTicks < 1 {
		errs = append(errs, fmt.Errorf("input.hold_ticks must be at least 1, got %d", c.Input.HoldTicks))
	}
	if c.Input.JumpHoldTicks < 0 {
		errs = append(errs, fmt.Errorf("input.jump_hold_ticks must not be negative, got %d", c.Input.JumpHoldTicks))
	}
	if c.Coins.Size <= 0 {
		errs = append(errs, fmt.Errorf("coins.size must be positive, got %d", c.Coins.Size))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: platformer: %w", err)
	}
	return nil
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Arena      SnakeArena       `yaml:"arena"`
	Snake      SnakeBody        `yaml:"snake"`
	Food       SnakeFood        `yaml:"food"`
	Timing     SnakeTiming      `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeArena is the playfield size in cells, border included.
// Zero means "fit the terminal".
type SnakeArena struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeBody defines the snake itself.
type SnakeBody struct {
	InitialLength int `yaml:"initial_length"`
	MinLength     int `yaml:"min_length"` // shrinking food never cuts below this
}

// SnakeFood defines the food slots and the kinds they can hold.
type SnakeFood struct {
	Slots   int        `yaml:"slots"`    // concurrent food items
	RollMax int        `yaml:"roll_max"` // each respawn rolls 1..RollMax
	Kinds   []FoodKind `yaml:"kinds"`
}

// FoodKind is one entry of the food table. Kinds are tried in order; the
// first whose Every divides the roll wins. A kind with Every 0 matches any
// roll and should come last.
type FoodKind struct {
	Name     string  `yaml:"name"`
	Glyph    string  `yaml:"glyph"`
	Every    int     `yaml:"every"`
	Points   int     `yaml:"points"`
	Growth   int     `yaml:"growth"`   // segments added; negative shrinks
	Lifetime float64 `yaml:"lifetime"` // seconds
	Jitter   float64 `yaml:"jitter"`   // lifetime varies by up to ±Jitter of itself
}

// Matches reports whether this kind takes the given roll.
func (k FoodKind) Matches(roll int) bool {
	return k.Every <= 0 || roll%k.Every == 0
}

// SnakeTiming controls movement speed.
type SnakeTiming struct {
	MoveEveryTicks int `yaml:"move_every_ticks"`
	MinMoveTicks   int `yaml:"min_move_ticks"` // fastest speed reachable through difficulty
}

// Validate rejects configurations the game cannot run.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Arena.Width < 0 || c.Arena.Height < 0 {
		errs = append(errs, errors.New("arena size cannot be negative"))
	}
	if c.Snake.InitialLength < 2 {
		errs = append(errs, fmt.Errorf("snake.initial_length must be at least 2, got %d", c.Snake.InitialLength))
	}
	if c.Snake.MinLength < 1 || c.Snake.MinLength > c.Snake.InitialLength {
		errs = append(errs, fmt.Errorf("snake.min_length %d out of range 1..%d", c.Snake.MinLength, c.Snake.InitialLength))
	}
	if c.Food.Slots < 1 {
		errs = append(errs, fmt.Errorf("food.slots must be at least 1, got %d", c.Food.Slots))
	}
	if c.Food.RollMax < 1 {
		errs = append(errs, fmt.Errorf("food.roll_max must be at least 1, got %d", c.Food.RollMax))
	}
	if len(c.Food.Kinds) == 0 {
		errs = append(errs, errors.New("food.kinds is empty"))
	} else if last := c.Food.Kinds[len(c.Food.Kinds)-1]; last.Every > 0 {
		errs = append(errs, fmt.Errorf("food kind %q is last but does not match every roll", last.Name))
	}
	for _, k := range c.Food.Kinds {
		if k.Lifetime <= 0 {
			errs = append(errs, fmt.Errorf("food kind %q: lifetime must be positive", k.Name))
		}
		if k.Jitter < 0 || k.Jitter >= 1 {
			errs = append(errs, fmt.Errorf("food kind %q: jitter %v out of range [0, 1)", k.Name, k.Jitter))
		}
	}
	if c.Timing.MoveEveryTicks < 1 || c.Timing.MinMoveTicks < 1 {
		errs = append(errs, errors.New("timing: move ticks must be at least 1"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: snake: %w", err)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	IntervalReduction int `yaml:"interval_reduction"` // Ticks removed from a step interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset switches progression on or off and sets the starting level.
func (d *DifficultyConfig) ApplyPreset(preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		d.Enabled = false
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}
