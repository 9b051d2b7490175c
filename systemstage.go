package wecs

import (
	"github.com/google/uuid"
)

// SystemStage is one phase of the tick: an ordered list of systems behind a
// stable identity. The default implementation is SimpleSystemStage;
// alternative implementations may substitute a different intra-stage
// execution strategy without changing the collection that drives them.
type SystemStage interface {
	// ID returns the stable identifier of the stage, constant for the
	// stage's lifetime.
	ID() uuid.UUID

	// Name returns the diagnostic name of the stage.
	Name() string

	// Initialize calls every contained system's initialize hook in
	// insertion order. Invoked exactly once before any Run.
	Initialize(w *World)

	// Run calls every contained system's run hook in insertion order,
	// stopping at the first failure.
	Run(w *World) error

	// AddSystem appends a system to the end of the stage's list.
	AddSystem(sys System)
}

// SimpleSystemStage is the default stage implementation: plain sequential
// iteration preserving insertion order, with fail-fast error propagation and
// no additional scheduling logic.
type SimpleSystemStage struct {
	id      uuid.UUID
	name    string
	systems []System
}

// NewSimpleSystemStage creates an empty stage identified by label.
func NewSimpleSystemStage(label StageLabel) *SimpleSystemStage {
	return &SimpleSystemStage{
		id:   label.ID(),
		name: label.Name(),
	}
}

// ID returns the stage's stable identifier.
func (s *SimpleSystemStage) ID() uuid.UUID {
	return s.id
}

// Name returns the stage's diagnostic name.
func (s *SimpleSystemStage) Name() string {
	return s.name
}

// Initialize calls each system's initialize hook in insertion order.
func (s *SimpleSystemStage) Initialize(w *World) {
	for _, sys := range s.systems {
		sys.Initialize(w)
	}
}

// Run executes each system in insertion order. The first system returning a
// non-nil error stops the iteration; remaining systems do not run this tick
// and the error is returned unchanged.
func (s *SimpleSystemStage) Run(w *World) error {
	for _, sys := range s.systems {
		if err := sys.Run(w); err != nil {
			return err
		}
	}
	return nil
}

// AddSystem appends a system. No deduplication and no validation is
// performed.
func (s *SimpleSystemStage) AddSystem(sys System) {
	s.systems = append(s.systems, sys)
}

// Len returns the number of systems in the stage.
func (s *SimpleSystemStage) Len() int {
	return len(s.systems)
}
