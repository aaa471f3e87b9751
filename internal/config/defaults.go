package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
// Values are the 60 Hz per-frame tuning scaled to per-second units.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			MaxSpeed:    93.75,
			Accel:       785.3904,
			Decel:       407.8116,
			Gravity:     1307.8116,
			JumpImpulse: -393.75,
			JumpRelease: 0.2,
		},
		Player: PlatformerPlayer{
			Width:  12,
			Height: 12,
		},
		Input: PlatformerInput{
			HoldTicks: 18,
		},
		Coins: PlatformerCoins{
			Size:   4,
			Points: 1,
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Snake: SnakeBody{
			InitialLength: 3,
			MinLength:     2,
		},
		Food: SnakeFood{
			Slots:   3,
			RollMax: 40,
			Kinds: []FoodKind{
				{Name: "minus", Glyph: "x", Every: 20, Points: 50, Growth: -5, Lifetime: 8},
				{Name: "fast", Glyph: "%", Every: 10, Points: 10, Growth: 10, Lifetime: 10},
				{Name: "bonus", Glyph: "$", Every: 5, Points: 10, Growth: 5, Lifetime: 10},
				{Name: "regular", Glyph: "*", Points: 2, Growth: 1, Lifetime: 40, Jitter: 0.5},
			},
		},
		Timing: SnakeTiming{
			MoveEveryTicks: 6,
			MinMoveTicks:   2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "platformer":
		return defaultPlatformerYAML
	case "snake":
		return defaultSnakeYAML
	default:
		return nil
	}
}
