package wecs

import (
	"github.com/google/uuid"
)

// CoreStage enumerates the five built-in phases of the default pipeline.
// Stages execute in declaration order: First → PreUpdate → Update →
// PostUpdate → Last.
type CoreStage int

const (
	// First runs before everything else. Use for input handling and
	// per-tick bookkeeping that other systems depend on.
	First CoreStage = iota

	// PreUpdate runs second. Use for setup work that prepares the world
	// for the main simulation pass.
	PreUpdate

	// Update runs third. Use for core simulation logic including
	// movement, combat, and most gameplay systems.
	Update

	// PostUpdate runs fourth. Use for reconciliation work that reacts to
	// what the main pass changed.
	PostUpdate

	// Last runs at the end of the tick. Use for cleanup, synchronization,
	// and render preparation.
	Last

	// coreStageCount is the total number of built-in stages.
	coreStageCount
)

// Built-in phase identifiers. These are fixed constants rather than values
// derived at runtime, so the same phase resolves to the same id across
// builds, binaries, and independently compiled modules.
var (
	firstStageID      = uuid.MustParse("01855e43-bc74-e956-4957-92f5feff06de")
	preUpdateStageID  = uuid.MustParse("01855e43-dd90-a281-6a9b-ff5fbe28d044")
	updateStageID     = uuid.MustParse("01855e43-fa18-30e3-4c32-edc1eacabccc")
	postUpdateStageID = uuid.MustParse("01855e44-23ea-6fb3-1a29-4177fc3edc4d")
	lastStageID       = uuid.MustParse("01855e44-452e-9e7e-eabf-8759410cfba2")
)

// String returns the string representation of the stage.
func (s CoreStage) String() string {
	switch s {
	case First:
		return "First"
	case PreUpdate:
		return "PreUpdate"
	case Update:
		return "Update"
	case PostUpdate:
		return "PostUpdate"
	case Last:
		return "Last"
	default:
		return "Unknown"
	}
}

// Name returns the phase name. CoreStage implements StageLabel.
func (s CoreStage) Name() string {
	return s.String()
}

// ID returns the phase's constant 128-bit identifier. Values outside the
// enumeration return uuid.Nil, which matches no stage.
func (s CoreStage) ID() uuid.UUID {
	switch s {
	case First:
		return firstStageID
	case PreUpdate:
		return preUpdateStageID
	case Update:
		return updateStageID
	case PostUpdate:
		return postUpdateStageID
	case Last:
		return lastStageID
	default:
		return uuid.Nil
	}
}
