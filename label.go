package wecs

import (
	"github.com/google/uuid"
)

// StageLabel identifies a stage by a human-readable name and a stable 128-bit
// id. The scheduler never inspects the concrete type behind a label, only the
// two accessor results, so any type producing a stable, collision-free id may
// serve as one. Two labels with equal ids denote the same stage regardless of
// their name strings.
type StageLabel interface {
	// Name returns the diagnostic name of the stage.
	Name() string

	// ID returns the stable identifier of the stage.
	ID() uuid.UUID
}

// Label is a basic StageLabel with an explicit name and id. It is the
// extension point for defining custom phases beyond the built-in five.
//
// Declare labels as package-level variables with fixed ids so the phase stays
// addressable across builds:
//
//	var Networking = wecs.NewLabel("Networking", uuid.MustParse("6d3a47cc-4d8f-43f2-96f6-4d5e128e1b2a"))
//
//	stages := wecs.NewSystemStages(
//	    wecs.NewSimpleSystemStage(Networking),
//	)
type Label struct {
	name string
	id   uuid.UUID
}

// NewLabel creates a label with the given name and id.
func NewLabel(name string, id uuid.UUID) Label {
	return Label{name: name, id: id}
}

// Name returns the diagnostic name of the stage.
func (l Label) Name() string {
	return l.name
}

// ID returns the stable identifier of the stage.
func (l Label) ID() uuid.UUID {
	return l.id
}
