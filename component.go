package wecs

import (
	"fmt"
	"reflect"
)

// ComponentID is a unique identifier for a component type within one World.
// Valid IDs range from 0 to 255. IDs are assigned per world and carry no
// meaning across worlds.
type ComponentID uint8

// MaxComponents is the maximum number of component types supported per world.
const MaxComponents = 256

// componentRegistry assigns sequential ids to component types.
// Registration happens on first use of a type; the scheduler is single
// threaded, so callers synchronize through the world lock.
type componentRegistry struct {
	// types maps reflect.Type to its assigned ComponentID
	types map[reflect.Type]ComponentID

	// names and typesArr store component metadata indexed by ComponentID
	names    [MaxComponents]string
	typesArr [MaxComponents]reflect.Type

	// next is the next available component id
	next int
}

// register returns the id for t, assigning the next free one on first use.
// Callers must hold the world write lock.
func (r *componentRegistry) register(t reflect.Type) ComponentID {
	if id, ok := r.types[t]; ok {
		return id
	}

	if r.next >= MaxComponents {
		panic(fmt.Sprintf("wecs: component limit exceeded (max %d types)", MaxComponents))
	}
	if r.types == nil {
		r.types = make(map[reflect.Type]ComponentID)
	}

	id := ComponentID(r.next)
	r.next++
	r.types[t] = id
	r.names[id] = t.Name()
	r.typesArr[id] = t
	return id
}

// lookup returns the id for t without registering it.
func (r *componentRegistry) lookup(t reflect.Type) (ComponentID, bool) {
	id, ok := r.types[t]
	return id, ok
}

// componentStore holds every component of one type, keyed by entity index.
type componentStore struct {
	comps map[uint32]any
}

// storeFor returns the store for id, creating it on first use.
// Callers must hold the world write lock.
func (w *World) storeFor(id ComponentID) *componentStore {
	st := w.stores[id]
	if st == nil {
		st = &componentStore{comps: make(map[uint32]any)}
		w.stores[id] = st
	}
	return st
}

// typeOf returns the reflect.Type of T.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Attachable is implemented by components that need initialization logic
// when attached to an entity.
type Attachable interface {
	Attach(w *World, e Entity)
}

// Detachable is implemented by components that need cleanup logic when
// detached from an entity or when the entity despawns.
type Detachable interface {
	Detach(w *World, e Entity)
}

// Add attaches a component to the entity. If a component of this type
// already exists it is replaced; the old value's Detach hook (if any) runs
// before the new value's Attach hook, both outside the world lock. Dead or
// stale entity handles are ignored.
func Add[T any](w *World, e Entity, component *T) {
	if w == nil || component == nil {
		return
	}

	w.mu.Lock()
	if !w.aliveLocked(e) {
		w.mu.Unlock()
		return
	}
	id := w.registry.register(typeOf[T]())
	st := w.storeFor(id)
	old := st.comps[e.index]
	st.comps[e.index] = component
	w.masks[e.index].Set(id)
	w.mu.Unlock()

	if old != nil {
		if d, ok := old.(Detachable); ok {
			d.Detach(w, e)
		}
	}
	if a, ok := any(component).(Attachable); ok {
		a.Attach(w, e)
	}
}

// Remove detaches a component from the entity. If the component implements
// Detachable, its Detach hook is called after removal, outside the world
// lock.
func Remove[T any](w *World, e Entity) {
	if w == nil {
		return
	}

	w.mu.Lock()
	if !w.aliveLocked(e) {
		w.mu.Unlock()
		return
	}
	id, ok := w.registry.lookup(typeOf[T]())
	if !ok {
		w.mu.Unlock()
		return
	}

	var ptr any
	if st := w.stores[id]; st != nil {
		ptr = st.comps[e.index]
		delete(st.comps, e.index)
	}
	w.masks[e.index].Clear(id)
	w.mu.Unlock()

	if ptr != nil {
		if d, ok := ptr.(Detachable); ok {
			d.Detach(w, e)
		}
	}
}

// Get retrieves a component from the entity.
// Returns nil if the entity is dead or the component is not present.
func Get[T any](w *World, e Entity) *T {
	if w == nil {
		return nil
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	if !w.aliveLocked(e) {
		return nil
	}
	id, ok := w.registry.lookup(typeOf[T]())
	if !ok {
		return nil
	}
	st := w.stores[id]
	if st == nil {
		return nil
	}
	ptr := st.comps[e.index]
	if ptr == nil {
		return nil
	}
	return ptr.(*T)
}

// Has checks if a component type is present on the entity.
func Has[T any](w *World, e Entity) bool {
	if w == nil {
		return false
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	if !w.aliveLocked(e) {
		return false
	}
	id, ok := w.registry.lookup(typeOf[T]())
	if !ok {
		return false
	}
	return w.masks[e.index].Has(id)
}

// ComponentIDFor returns the world-local id for component type T,
// registering the type on first use. IDs feed view exclusion filters.
func ComponentIDFor[T any](w *World) ComponentID {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.registry.register(typeOf[T]())
}
