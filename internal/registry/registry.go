// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// Game is the interface every arcade game implements. Games hold pure logic
// with no terminal dependencies; the platform handles input mapping, timing
// and drawing to the terminal.
type Game interface {
	// ID is the stable identifier used on the command line and in the
	// score database (e.g. "platformer").
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts or restarts the game for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. dst is cleared beforehand.
	Render(dst *core.Screen)

	// State returns score and lifecycle flags.
	State() core.GameState
}

// Resizer is implemented by games that adapt to a new screen size without
// restarting. Other games are Reset on resize.
type Resizer interface {
	Resize(w, h int)
}

// Warner is implemented by games that fall back to defaults when their
// config or content fails to load. Warnings reports what happened during
// the last Reset.
type Warner interface {
	Warnings() []string
}

// RunTicker is implemented by games that track how long the current run
// has been played, in ticks.
type RunTicker interface {
	RunTicks() int
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu    sync.RWMutex
	games = make(map[string]entry)
)

type entry struct {
	factory Factory
	title   string
}

// Register adds a game factory. It panics on a duplicate ID, which can only
// happen through a programming error in an init() function.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := games[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	games[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(games))
	for id, e := range games {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := games[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := games[id]
	return ok
}
