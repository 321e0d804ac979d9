// Package registry provides a global registry for demo factories.
// Demos register themselves in init() functions, allowing the viewer
// and the command line to discover and instantiate them without
// hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/awelkie/drawille/internal/core"
)

// Demo is an animation drawn on one of the canvases.
// Demos are deterministic: the same RuntimeConfig and number of steps
// always produce the same frame.
type Demo interface {
	// ID returns a unique identifier (e.g., "sine", "spiral").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Kind names the canvas the demo draws on: "block", "braille" or "turtle".
	Kind() string

	// Reset initializes or restarts the animation for the given screen size.
	Reset(cfg core.RuntimeConfig)

	// Step advances the animation by one tick.
	Step()

	// Frame renders the current state.
	Frame() string
}

// DemoInfo contains metadata about a registered demo.
type DemoInfo struct {
	ID    string
	Title string
	Kind  string
}

// Factory is a function that creates a new instance of a demo.
type Factory func() Demo

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]DemoInfo)
	mu        sync.RWMutex
)

// Register adds a demo factory to the registry.
// Typically called from a demo's init() function.
// Panics if a demo with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: demo %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	d := f()
	infos[id] = DemoInfo{ID: id, Title: d.Title(), Kind: d.Kind()}
}

// List returns information about all registered demos, sorted by ID.
func List() []DemoInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DemoInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new demo by its ID.
// Returns an error if the demo ID is not registered.
func Create(id string) (Demo, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown demo %q", id)
	}

	return f(), nil
}

// Exists checks if a demo with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
