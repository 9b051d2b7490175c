package wecs

// View iterates the live entities carrying component T. The matching set is
// snapshotted at construction, so spawning, despawning, or mutating entities
// during iteration never corrupts the walk; entities changed after the
// snapshot simply resolve to nil.
//
// Usage:
//
//	for v := wecs.NewView[Transform](w); v.Next(); {
//	    t := v.Get()
//	    if t == nil {
//	        continue
//	    }
//	    ...
//	}
type View[T any] struct {
	w       *World
	matches []Entity
	i       int
}

// NewView creates a view over all live entities carrying component T.
// Entities carrying any component in excludes are filtered out.
func NewView[T any](w *World, excludes ...ComponentID) *View[T] {
	v := &View[T]{w: w, i: -1}

	var include, exclude Bitmask
	include.Set(ComponentIDFor[T](w))
	for _, id := range excludes {
		exclude.Set(id)
	}

	v.matches = w.snapshot(include, exclude)
	return v
}

// Next advances the view. Returns false once the snapshot is exhausted.
func (v *View[T]) Next() bool {
	v.i++
	return v.i < len(v.matches)
}

// Entity returns the entity at the current position.
func (v *View[T]) Entity() Entity {
	return v.matches[v.i]
}

// Get returns the component at the current position, or nil if the entity
// was despawned or the component removed after the snapshot.
func (v *View[T]) Get() *T {
	return Get[T](v.w, v.matches[v.i])
}

// Len returns the number of matched entities.
func (v *View[T]) Len() int {
	return len(v.matches)
}

// View2 iterates the live entities carrying both component A and component
// B, with the same snapshot semantics as View.
type View2[A, B any] struct {
	w       *World
	matches []Entity
	i       int
}

// NewView2 creates a view over all live entities carrying components A and
// B. Entities carrying any component in excludes are filtered out.
func NewView2[A, B any](w *World, excludes ...ComponentID) *View2[A, B] {
	v := &View2[A, B]{w: w, i: -1}

	var include, exclude Bitmask
	include.Set(ComponentIDFor[A](w))
	include.Set(ComponentIDFor[B](w))
	for _, id := range excludes {
		exclude.Set(id)
	}

	v.matches = w.snapshot(include, exclude)
	return v
}

// Next advances the view. Returns false once the snapshot is exhausted.
func (v *View2[A, B]) Next() bool {
	v.i++
	return v.i < len(v.matches)
}

// Entity returns the entity at the current position.
func (v *View2[A, B]) Entity() Entity {
	return v.matches[v.i]
}

// Get returns both components at the current position. Either may be nil if
// the entity changed after the snapshot.
func (v *View2[A, B]) Get() (*A, *B) {
	e := v.matches[v.i]
	return Get[A](v.w, e), Get[B](v.w, e)
}

// Len returns the number of matched entities.
func (v *View2[A, B]) Len() int {
	return len(v.matches)
}

// snapshot collects the live entities whose masks contain all of include and
// none of exclude, in slot order.
func (w *World) snapshot(include, exclude Bitmask) []Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var matches []Entity
	for idx := range w.masks {
		if !w.livemap[idx] {
			continue
		}
		mask := &w.masks[idx]
		if !mask.ContainsAll(include) || mask.ContainsAny(exclude) {
			continue
		}
		matches = append(matches, Entity{index: uint32(idx), generation: w.generations[idx]})
	}
	return matches
}
