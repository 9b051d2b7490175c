package wecs

import (
	"fmt"
)

// SystemStages owns the ordered sequence of stages making up the tick
// pipeline and drives the two-phase initialize/run protocol across them.
// Stage order is fixed at construction; the only supported mutation
// afterwards is appending systems into an existing stage by label.
type SystemStages struct {
	stages []SystemStage
}

// NewSystemStages creates a collection holding the given stages in order.
// With no arguments the collection starts empty.
func NewSystemStages(stages ...SystemStage) *SystemStages {
	return &SystemStages{stages: stages}
}

// WithCoreStages creates a collection pre-populated with the five built-in
// phases in their fixed order: First, PreUpdate, Update, PostUpdate, Last.
func WithCoreStages() *SystemStages {
	return NewSystemStages(
		NewSimpleSystemStage(First),
		NewSimpleSystemStage(PreUpdate),
		NewSimpleSystemStage(Update),
		NewSimpleSystemStage(PostUpdate),
		NewSimpleSystemStage(Last),
	)
}

// AddSystemToStage appends sys to the stage whose id matches label, scanning
// stages in order and taking the first match. Returns the collection for
// chaining.
//
// Registering against a label that matches no stage is a wiring mistake made
// at startup, not a runtime data condition, and panics with the label's name
// and id.
func (s *SystemStages) AddSystemToStage(label StageLabel, sys System) *SystemStages {
	id := label.ID()
	for _, stage := range s.stages {
		if stage.ID() == id {
			stage.AddSystem(sys)
			return s
		}
	}
	panic(fmt.Sprintf("wecs: stage with label %q (%s) does not exist", label.Name(), id))
}

// InitializeSystems initializes every stage in order, which initializes
// every contained system exactly once per call. Call it once, with exclusive
// world access, before the first Run; calling it again re-initializes every
// system.
func (s *SystemStages) InitializeSystems(w *World) {
	for _, stage := range s.stages {
		stage.Initialize(w)
	}
}

// Run executes one tick: every stage in construction order, every system in
// insertion order. The first failing stage ends the tick, later stages are
// skipped, and the failure is returned unchanged to the caller, who decides
// whether to log, halt, or keep ticking.
func (s *SystemStages) Run(w *World) error {
	for _, stage := range s.stages {
		if err := stage.Run(w); err != nil {
			return err
		}
	}
	return nil
}

// Stages returns a copy of the owned stage list for inspection.
func (s *SystemStages) Stages() []SystemStage {
	out := make([]SystemStage, len(s.stages))
	copy(out, s.stages)
	return out
}
