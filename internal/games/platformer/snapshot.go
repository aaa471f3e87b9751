package platformer

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	RunTicks  int
	Score     int
	CoinsLeft int
	X, Y      float64
	VX, VY    float64
	Grounded  bool
	Jumping   bool
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.paused:
		state = StatePaused
	}

	p := g.world.Player
	return Snapshot{
		Tick:      g.tick,
		RunTicks:  g.runTicks,
		Score:     g.score,
		CoinsLeft: activeCoins(g.coins),
		X:         p.Position.X,
		Y:         p.Position.Y,
		VX:        p.Velocity.X,
		VY:        p.Velocity.Y,
		Grounded:  p.IsGrounded,
		Jumping:   p.IsJumping,
		State:     state,
	}
}
