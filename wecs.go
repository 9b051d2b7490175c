// Package wecs provides a staged World Entity Component System core for
// simulation and game servers.
//
// WECS organizes units of logic ("systems") into a fixed ordered sequence of
// named phases ("stages") and drives them once per tick against a shared
// world of entities, components, and resources:
//   - Stable 128-bit stage identity so independent modules can target the
//     same phase without sharing references
//   - Five built-in phases (First, PreUpdate, Update, PostUpdate, Last)
//     forming the default pipeline
//   - Two-phase system contract: initialize once, run every tick
//   - Fail-fast error propagation: the first failing system ends the tick
//   - Declarative resource injection via struct tags
//   - Entity storage with typed components, views, and relations
//
// # Quick Start
//
// Build a pipeline on the core stages and drive it with a Runner:
//
//	world := wecs.NewWorld()
//
//	stages := wecs.WithCoreStages().
//	    AddSystemToStage(wecs.Update, wecs.NewSystem(&MoveSystem{})).
//	    AddSystemToStage(wecs.Last, wecs.SystemFunc(cleanup))
//
//	runner := wecs.NewRunner(stages, world)
//	runner.Start()
//	defer runner.Stop()
//
// # Components
//
// Components are plain Go structs attached to entities:
//
//	type Health struct {
//	    Current int
//	    Max     int
//	}
//
//	e := world.Spawn()
//	wecs.Add(world, e, &Health{100, 100})
//	health := wecs.Get[Health](world, e)
//	wecs.Remove[Health](world, e)
//
// # Systems
//
// A system is anything satisfying the two-phase contract. Plain functions
// wrap via SystemFunc; structs declare resource dependencies via tags and are
// converted with NewSystem:
//
//	type MoveSystem struct {
//	    World *wecs.World
//	    Clock *TickClock            `wecs:"res"`     // Required resource
//	    Debug *DebugFlags           `wecs:"res,opt"` // Optional (nil if missing)
//	    _     wecs.Without[Paused]                   // Skip while Paused resource exists
//	}
//
//	func (m *MoveSystem) Run(w *wecs.World) error { ... }
//
// # Tag Reference
//
//	wecs:"res"     Required resource (run fails if missing)
//	wecs:"res,opt" Optional resource (nil if missing)
//	(no tag)       *wecs.World injected; other fields left untouched
package wecs

// Version is the WECS version.
const Version = "0.1.0"
