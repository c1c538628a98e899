// Package registry provides a global registry of board shape factories.
// Shapes register themselves in init() functions, allowing board files, the
// generator and the CLI to lay out cells by name without hardcoded switches.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/FlightPaperStudio/project-ocelot/internal/hex"
)

// ErrUnknownShape is returned when no shape is registered under a name.
var ErrUnknownShape = errors.New("registry: unknown shape")

// Params are the dimensions passed to a shape factory.
// Each shape documents which fields it reads.
type Params struct {
	Radius int
	Width  int
	Height int
}

// Factory lays out the coordinates of a shape. It must return every
// coordinate exactly once, in a deterministic order.
type Factory func(p Params) ([]hex.Axial, error)

// ShapeInfo contains metadata about a registered shape.
type ShapeInfo struct {
	Name        string
	Description string
}

type entry struct {
	factory     Factory
	description string
}

var (
	shapes = make(map[string]entry)
	mu     sync.RWMutex
)

// Register adds a shape factory to the registry.
// Panics if a shape with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := shapes[name]; exists {
		panic(fmt.Sprintf("registry: shape %q already registered", name))
	}
	shapes[name] = entry{factory: f, description: description}
}

// List returns information about all registered shapes, sorted by name.
func List() []ShapeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ShapeInfo, 0, len(shapes))
	for name, e := range shapes {
		result = append(result, ShapeInfo{Name: name, Description: e.description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Build lays out the named shape.
func Build(name string, p Params) ([]hex.Axial, error) {
	mu.RLock()
	e, ok := shapes[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownShape, name)
	}

	coords, err := e.factory(p)
	if err != nil {
		return nil, fmt.Errorf("registry: shape %q: %w", name, err)
	}
	return coords, nil
}

// Exists checks if a shape with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := shapes[name]
	return ok
}
