package wecs

// Entity is a handle to an entity slot in a World. The zero value is not a
// valid entity. Handles are generation-checked: after Despawn, stale handles
// stop resolving even once the slot index is reused.
type Entity struct {
	index      uint32
	generation uint32
}

// Index returns the slot index of the entity.
func (e Entity) Index() uint32 {
	return e.index
}

// Generation returns the generation the handle was issued with.
func (e Entity) Generation() uint32 {
	return e.generation
}

// Spawn allocates a new entity with no components. Despawned slot indexes
// are recycled with a bumped generation.
func (w *World) Spawn() Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.generations))
		// Generations start at 1 so the zero Entity never resolves
		w.generations = append(w.generations, 1)
		w.masks = append(w.masks, Bitmask{})
		w.livemap = append(w.livemap, false)
	}

	w.livemap[idx] = true
	w.aliveCount++
	return Entity{index: idx, generation: w.generations[idx]}
}

// Despawn removes the entity and all of its components. Components
// implementing Detachable have their Detach hook called after removal,
// outside the world lock. Dead or stale handles are ignored.
func (w *World) Despawn(e Entity) {
	w.mu.Lock()
	if !w.aliveLocked(e) {
		w.mu.Unlock()
		return
	}

	mask := w.masks[e.index]
	var detached []Detachable
	for i := 0; i < w.registry.next; i++ {
		id := ComponentID(i)
		if !mask.Has(id) {
			continue
		}
		st := w.stores[id]
		if st == nil {
			continue
		}
		ptr := st.comps[e.index]
		delete(st.comps, e.index)
		if d, ok := ptr.(Detachable); ok {
			detached = append(detached, d)
		}
	}

	w.masks[e.index] = Bitmask{}
	w.livemap[e.index] = false
	w.generations[e.index]++
	w.free = append(w.free, e.index)
	w.aliveCount--
	w.mu.Unlock()

	for _, d := range detached {
		d.Detach(w, e)
	}
}

// Alive reports whether the handle refers to a live entity.
func (w *World) Alive(e Entity) bool {
	w.mu.RLock()
	ok := w.aliveLocked(e)
	w.mu.RUnlock()
	return ok
}

// aliveLocked checks handle liveness. Callers must hold the world lock.
func (w *World) aliveLocked(e Entity) bool {
	if int(e.index) >= len(w.livemap) {
		return false
	}
	return w.livemap[e.index] && w.generations[e.index] == e.generation
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	w.mu.RLock()
	n := w.aliveCount
	w.mu.RUnlock()
	return n
}

// Mask returns a copy of the entity's component bitmask.
// This is primarily for debugging and testing; stale handles return the
// zero mask.
func (w *World) Mask(e Entity) Bitmask {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if !w.aliveLocked(e) {
		return Bitmask{}
	}
	return w.masks[e.index]
}
