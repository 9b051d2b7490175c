package wecs

import (
	"testing"
)

type health struct {
	current, max int
}

type inventory struct {
	slots []string
}

// hookComponent records its lifecycle transitions.
type hookComponent struct {
	log *[]string
	tag string
}

func (h *hookComponent) Attach(w *World, e Entity) {
	*h.log = append(*h.log, "attach:"+h.tag)
}

func (h *hookComponent) Detach(w *World, e Entity) {
	*h.log = append(*h.log, "detach:"+h.tag)
}

func TestSpawnDespawn(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	if !w.Alive(e) {
		t.Fatalf("expected a spawned entity to be alive")
	}
	if w.EntityCount() != 1 {
		t.Fatalf("expected 1 live entity, got %d", w.EntityCount())
	}

	w.Despawn(e)
	if w.Alive(e) {
		t.Fatalf("expected a despawned entity to be dead")
	}
	if w.EntityCount() != 0 {
		t.Fatalf("expected 0 live entities, got %d", w.EntityCount())
	}

	// Double despawn is a no-op
	w.Despawn(e)
	if w.EntityCount() != 0 {
		t.Fatalf("expected double despawn to be ignored")
	}
}

func TestZeroEntityNeverAlive(t *testing.T) {
	w := NewWorld()
	w.Spawn()

	if w.Alive(Entity{}) {
		t.Fatalf("the zero entity must never resolve")
	}
	if Get[health](w, Entity{}) != nil {
		t.Fatalf("the zero entity must not resolve components")
	}
}

func TestGenerationRecycling(t *testing.T) {
	w := NewWorld()
	e1 := w.Spawn()
	Add(w, e1, &health{current: 10, max: 10})
	w.Despawn(e1)

	e2 := w.Spawn()
	if e2.Index() != e1.Index() {
		t.Fatalf("expected slot reuse, got index %d then %d", e1.Index(), e2.Index())
	}
	if e2.Generation() == e1.Generation() {
		t.Fatalf("expected a bumped generation on reuse")
	}

	// The stale handle must not reach the new occupant
	if w.Alive(e1) {
		t.Fatalf("stale handle reports alive")
	}
	if Get[health](w, e1) != nil {
		t.Fatalf("stale handle resolves a component")
	}
	if Has[health](w, e2) {
		t.Fatalf("recycled slot inherited a component")
	}
}

func TestAddGetRemove(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()

	h := &health{current: 5, max: 10}
	Add(w, e, h)

	got := Get[health](w, e)
	if got != h {
		t.Fatalf("expected the stored pointer back")
	}
	got.current = 7
	if Get[health](w, e).current != 7 {
		t.Fatalf("expected mutation through the pointer to stick")
	}
	if !Has[health](w, e) {
		t.Fatalf("expected Has to report the component")
	}

	Remove[health](w, e)
	if Get[health](w, e) != nil || Has[health](w, e) {
		t.Fatalf("expected the component gone after Remove")
	}

	// Removing a never-registered component type is a no-op
	Remove[inventory](w, e)
}

func TestAddToDeadEntityIgnored(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	w.Despawn(e)

	Add(w, e, &health{})
	if Has[health](w, e) {
		t.Fatalf("a dead entity accepted a component")
	}
	if w.RegisteredComponentCount() != 0 {
		t.Fatalf("expected no registration for an ignored add")
	}
}

func TestAttachDetachHooks(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	var log []string

	Add(w, e, &hookComponent{log: &log, tag: "first"})
	expectTrace(t, log, []string{"attach:first"})

	// Replacing detaches the old value before attaching the new one
	Add(w, e, &hookComponent{log: &log, tag: "second"})
	expectTrace(t, log, []string{"attach:first", "detach:first", "attach:second"})

	Remove[hookComponent](w, e)
	expectTrace(t, log, []string{"attach:first", "detach:first", "attach:second", "detach:second"})
}

func TestDespawnRunsDetachHooks(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	var log []string
	Add(w, e, &hookComponent{log: &log, tag: "gear"})
	Add(w, e, &health{})

	w.Despawn(e)
	expectTrace(t, log, []string{"attach:gear", "detach:gear"})
}

func TestMaskTracksComponents(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	Add(w, e, &health{})
	Add(w, e, &inventory{})

	mask := w.Mask(e)
	if mask.Count() != 2 {
		t.Fatalf("expected 2 bits set, got %d", mask.Count())
	}
	if !mask.Has(ComponentIDFor[health](w)) || !mask.Has(ComponentIDFor[inventory](w)) {
		t.Fatalf("expected both component bits set")
	}

	Remove[inventory](w, e)
	if m := w.Mask(e); m.Count() != 1 {
		t.Fatalf("expected 1 bit set after removal")
	}

	w.Despawn(e)
	if m := w.Mask(e); m.Count() != 0 {
		t.Fatalf("a stale handle should see the zero mask")
	}
}

func TestComponentRegistryMetadata(t *testing.T) {
	w := NewWorld()
	hid := ComponentIDFor[health](w)
	iid := ComponentIDFor[inventory](w)

	if hid == iid {
		t.Fatalf("expected distinct component ids")
	}
	if again := ComponentIDFor[health](w); again != hid {
		t.Fatalf("expected a stable id, got %d then %d", hid, again)
	}
	if name := w.ComponentName(hid); name != "health" {
		t.Fatalf("expected component name %q, got %q", "health", name)
	}
	if w.ComponentType(iid) != typeOf[inventory]() {
		t.Fatalf("expected the registered reflect.Type back")
	}
	if w.RegisteredComponentCount() != 2 {
		t.Fatalf("expected 2 registered types, got %d", w.RegisteredComponentCount())
	}

	// Separate worlds assign ids independently
	other := NewWorld()
	if got := ComponentIDFor[inventory](other); got != 0 {
		t.Fatalf("expected a fresh world to start ids at 0, got %d", got)
	}
}

func TestResources(t *testing.T) {
	w := NewWorld()
	if Resource[tickClock](w) != nil {
		t.Fatalf("expected nil for a missing resource")
	}
	if HasResource[tickClock](w) {
		t.Fatalf("expected no resource yet")
	}

	clock := &tickClock{tick: 3}
	InsertResource(w, clock)
	if got := Resource[tickClock](w); got != clock {
		t.Fatalf("expected the inserted resource back")
	}
	if !HasResource[tickClock](w) {
		t.Fatalf("expected the resource to be present")
	}

	// Inserting again replaces
	clock2 := &tickClock{tick: 9}
	InsertResource(w, clock2)
	if got := Resource[tickClock](w); got != clock2 {
		t.Fatalf("expected the replacement resource back")
	}

	RemoveResource[tickClock](w)
	if HasResource[tickClock](w) {
		t.Fatalf("expected the resource gone after removal")
	}
}
