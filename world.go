package wecs

import (
	"fmt"
	"reflect"
	"sync"
)

// World is the shared store of simulation data: entities, their components,
// and world-level resources. Systems receive the world during both phases of
// their contract; the scheduler itself never mutates it.
//
// Access arbitration is internal: a coarse read-write lock guards entity and
// resource storage, so reads stay safe while any mutation takes exclusive
// ownership of the affected slot. The stage pipeline calls into the world
// from a single goroutine, so no operation here ever blocks for long.
type World struct {
	mu sync.RWMutex

	// registry holds component type registrations for this world
	registry componentRegistry

	// Entity slots, indexed by Entity.index. Despawned indexes are
	// recycled through free with a bumped generation.
	generations []uint32
	masks       []Bitmask
	livemap     []bool
	free        []uint32
	aliveCount  int

	// stores holds per-type component storage indexed by ComponentID
	stores [MaxComponents]*componentStore

	// resources holds world-level singletons keyed by element type
	resources map[reflect.Type]any
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		resources: make(map[reflect.Type]any),
	}
}

// InsertResource stores a world-level singleton of type T, replacing any
// existing value of the same type. Resources are what systems typically
// register during their initialize phase and consume during runs.
func InsertResource[T any](w *World, res *T) {
	if w == nil || res == nil {
		return
	}

	w.mu.Lock()
	w.resources[typeOf[T]()] = res
	w.mu.Unlock()
}

// Resource retrieves the world-level singleton of type T.
// Returns nil if no resource of that type has been inserted.
func Resource[T any](w *World) *T {
	if w == nil {
		return nil
	}

	w.mu.RLock()
	res := w.resources[typeOf[T]()]
	w.mu.RUnlock()

	if res == nil {
		return nil
	}
	return res.(*T)
}

// HasResource reports whether a resource of type T is present.
func HasResource[T any](w *World) bool {
	if w == nil {
		return false
	}

	w.mu.RLock()
	_, ok := w.resources[typeOf[T]()]
	w.mu.RUnlock()
	return ok
}

// RemoveResource deletes the resource of type T, if present.
func RemoveResource[T any](w *World) {
	if w == nil {
		return
	}

	w.mu.Lock()
	delete(w.resources, typeOf[T]())
	w.mu.Unlock()
}

// insertResourceAny stores a resource under its pointed-to type. Resources
// are shared singletons and must be addressable, so non-pointer values are a
// wiring mistake.
func (w *World) insertResourceAny(res any) {
	t := reflect.TypeOf(res)
	if t == nil || t.Kind() != reflect.Ptr || reflect.ValueOf(res).IsNil() {
		panic(fmt.Sprintf("wecs: resource must be a non-nil pointer, got %v", t))
	}

	w.mu.Lock()
	w.resources[t.Elem()] = res
	w.mu.Unlock()
}

// resourceByType retrieves a resource by its element type.
func (w *World) resourceByType(t reflect.Type) any {
	w.mu.RLock()
	res := w.resources[t]
	w.mu.RUnlock()
	return res
}

// ComponentName returns the name of the component type with the given id,
// or the empty string for unassigned ids.
func (w *World) ComponentName(id ComponentID) string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.registry.names[id]
}

// ComponentType returns the reflect.Type of the component with the given
// id, or nil for unassigned ids.
func (w *World) ComponentType(id ComponentID) reflect.Type {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.registry.typesArr[id]
}

// RegisteredComponentCount returns the number of component types registered
// with this world.
func (w *World) RegisteredComponentCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.registry.next
}
