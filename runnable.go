package wecs

// System is the scheduler's unit of work, consumed through a two-phase
// contract: Initialize is called exactly once with exclusive world access
// before any Run, and Run is called once per tick with shared access. A
// non-nil error from Run ends the tick immediately.
type System interface {
	// Initialize prepares the system. Typical work is registering
	// long-lived resources on the world.
	Initialize(w *World)

	// Run executes one tick of the system's logic.
	Run(w *World) error
}

// Runnable is the minimal executable surface of a system. Struct systems
// converted through NewSystem only need to implement Runnable; an optional
// Initialize(*World) method is picked up when present.
type Runnable interface {
	Run(w *World) error
}

// SystemFunc adapts a plain function to the System interface with a no-op
// initialize phase.
type SystemFunc func(w *World) error

// Initialize implements System.
func (f SystemFunc) Initialize(*World) {}

// Run implements System.
func (f SystemFunc) Run(w *World) error {
	return f(w)
}
