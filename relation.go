package wecs

import (
	"reflect"
	"sync"
)

// Relation is a typed link from one entity to another. Embed it in a
// component to model ownership, targeting, or hierarchy:
//
//	type Following struct {
//	    Target wecs.Relation[Transform] // target must carry Transform
//	}
//
// The type parameter documents which component the target is expected to
// carry; Resolve enforces it. A relation is not cleaned up when its target
// despawns: the stored entity goes stale and simply stops resolving, which
// callers detect through Valid or Resolve.
type Relation[T any] struct {
	target Entity
	set    bool
}

// Set points the relation at target. The target should carry a component of
// type T, though this is checked at resolve time, not at set time.
func (r *Relation[T]) Set(target Entity) {
	r.target = target
	r.set = true
}

// Clear unsets the relation.
func (r *Relation[T]) Clear() {
	r.target = Entity{}
	r.set = false
}

// Target returns the linked entity. The second return is false when the
// relation is unset.
func (r *Relation[T]) Target() (Entity, bool) {
	return r.target, r.set
}

// Valid reports whether the relation points at a live entity that still
// carries component T.
func (r *Relation[T]) Valid(w *World) bool {
	if !r.set {
		return false
	}
	return Has[T](w, r.target)
}

// TargetType returns the component type the relation expects on its target.
func (r *Relation[T]) TargetType() reflect.Type {
	return typeOf[T]()
}

// Resolve follows a relation to its target entity and component. The third
// return is false when the relation is unset, the target was despawned, or
// the target no longer carries T.
func Resolve[T any](w *World, r *Relation[T]) (Entity, *T, bool) {
	target, ok := r.Target()
	if !ok {
		return Entity{}, nil, false
	}
	comp := Get[T](w, target)
	if comp == nil {
		return Entity{}, nil, false
	}
	return target, comp, true
}

// RelationSet is a set of typed links to other entities. The type parameter
// indicates what component target entities should carry.
//
// Usage:
//
//	type Party struct {
//	    Members wecs.RelationSet[PartyMember]
//	}
//
// Like Relation, entries are not cleaned up when their targets despawn;
// stale entries are skipped by All and AllValid and dropped by Compact.
type RelationSet[T any] struct {
	mu      sync.RWMutex
	targets map[Entity]struct{}
}

// Add adds an entity to the set.
func (rs *RelationSet[T]) Add(target Entity) {
	rs.mu.Lock()
	if rs.targets == nil {
		rs.targets = make(map[Entity]struct{})
	}
	rs.targets[target] = struct{}{}
	rs.mu.Unlock()
}

// Remove removes an entity from the set.
func (rs *RelationSet[T]) Remove(target Entity) {
	rs.mu.Lock()
	delete(rs.targets, target)
	rs.mu.Unlock()
}

// Has reports whether target is in the set.
func (rs *RelationSet[T]) Has(target Entity) bool {
	rs.mu.RLock()
	_, ok := rs.targets[target]
	rs.mu.RUnlock()
	return ok
}

// Clear removes all entries.
func (rs *RelationSet[T]) Clear() {
	rs.mu.Lock()
	rs.targets = nil
	rs.mu.Unlock()
}

// Len returns the number of entries, stale ones included.
func (rs *RelationSet[T]) Len() int {
	rs.mu.RLock()
	n := len(rs.targets)
	rs.mu.RUnlock()
	return n
}

// All returns the entries that still refer to live entities.
func (rs *RelationSet[T]) All(w *World) []Entity {
	rs.mu.RLock()
	targets := make([]Entity, 0, len(rs.targets))
	for target := range rs.targets {
		if w.Alive(target) {
			targets = append(targets, target)
		}
	}
	rs.mu.RUnlock()
	return targets
}

// AllValid returns the entries that are live and carry component T.
func (rs *RelationSet[T]) AllValid(w *World) []Entity {
	rs.mu.RLock()
	targets := make([]Entity, 0, len(rs.targets))
	for target := range rs.targets {
		if Has[T](w, target) {
			targets = append(targets, target)
		}
	}
	rs.mu.RUnlock()
	return targets
}

// Compact drops entries whose entities have despawned.
func (rs *RelationSet[T]) Compact(w *World) {
	rs.mu.Lock()
	for target := range rs.targets {
		if !w.Alive(target) {
			delete(rs.targets, target)
		}
	}
	rs.mu.Unlock()
}

// TargetType returns the component type the set expects on its targets.
func (rs *RelationSet[T]) TargetType() reflect.Type {
	return typeOf[T]()
}
