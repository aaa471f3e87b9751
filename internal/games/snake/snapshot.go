package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// FoodInfo describes one active food item.
type FoodInfo struct {
	X, Y      int
	Kind      string
	TicksLeft int
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	Score          int
	SnakeLen       int
	PendingGrowth  int
	HeadX          int
	HeadY          int
	Dir            Direction
	Foods          []FoodInfo
	MoveEveryTicks int
	State          GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	headX, headY := 0, 0
	if len(g.snake) > 0 {
		headX = g.snake[0].X
		headY = g.snake[0].Y
	}

	var foods []FoodInfo
	for _, f := range g.foods {
		if f.active {
			foods = append(foods, FoodInfo{
				X:         f.pos.X,
				Y:         f.pos.Y,
				Kind:      g.cfg.Food.Kinds[f.kind].Name,
				TicksLeft: f.ticksLeft,
			})
		}
	}

	return Snapshot{
		Tick:           g.tick,
		Score:          g.score,
		SnakeLen:       len(g.snake),
		PendingGrowth:  g.pendingGrowth,
		HeadX:          headX,
		HeadY:          headY,
		Dir:            g.direction,
		Foods:          foods,
		MoveEveryTicks: g.moveInterval(),
		State:          state,
	}
}
