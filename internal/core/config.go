package core

// RuntimeConfig is what the platform tells a game on Reset: the terminal
// size it draws into, the fixed tick rate it is stepped at, and the seed for
// anything random. Games derive their timestep from TickRate rather than
// from wall time so a run replays identically.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // Step calls per second
	Seed     int64 // 0 lets the platform pick one from the clock
}

// DefaultConfig returns an 80×24 terminal stepped at 60 Hz.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the part of a game the platform acts on: the score to
// record, and whether the run is over, won or paused.
type GameState struct {
	Score    int
	GameOver bool
	Won      bool // GameOver by clearing the level rather than dying
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
