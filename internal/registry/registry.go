// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the shells
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Game is the interface a playable simulation exposes to the shells.
// Games contain pure logic with no terminal dependencies; the shell handles
// key mapping, timing and drawing.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "runner").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Resize moves an already reset game to a new screen size while
	// keeping session state such as the best score.
	Resize(width, height int)

	// Step advances the simulation by one tick with at most one intent.
	Step(in core.Intent) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// TickInterval returns how long the shell should wait between Steps.
	// It may change from one tick to the next.
	TickInterval() time.Duration
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// unregister removes a game; only tests need it.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(factories, id)
}
