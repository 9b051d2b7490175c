package wecs

// Bundle groups related systems and resources together so a feature can be
// installed into a pipeline as one unit.
//
// Usage:
//
//	physics := wecs.NewBundle("physics").
//	    Resource(&Gravity{Y: -9.81}).
//	    System(wecs.Update, wecs.NewSystem(&ApplyVelocity{})).
//	    System(wecs.PostUpdate, wecs.NewSystem(&ResolveCollisions{}))
//
//	physics.Install(stages, w)
type Bundle struct {
	name string

	// systems holds system registrations in install order
	systems []systemRegistration

	// resources holds bundle-level resources inserted into the world
	resources []any
}

// systemRegistration holds a system registration.
type systemRegistration struct {
	label  StageLabel
	system System
}

// NewBundle creates a new bundle with the given name.
func NewBundle(name string) *Bundle {
	return &Bundle{name: name}
}

// Name returns the bundle name.
func (b *Bundle) Name() string {
	return b.name
}

// Resource registers a resource to insert into the world at install time.
// It must be a non-nil pointer, which Install enforces.
func (b *Bundle) Resource(res any) *Bundle {
	b.resources = append(b.resources, res)
	return b
}

// System registers a system to add to the stage with the given label at
// install time.
func (b *Bundle) System(label StageLabel, sys System) *Bundle {
	b.systems = append(b.systems, systemRegistration{
		label:  label,
		system: sys,
	})
	return b
}

// Install inserts the bundle's resources into w and adds its systems to
// stages, in registration order. It panics if a registered label matches no
// stage or a resource is not a non-nil pointer, mirroring the direct
// AddSystemToStage and InsertResource calls it stands in for.
func (b *Bundle) Install(stages *SystemStages, w *World) {
	for _, res := range b.resources {
		w.insertResourceAny(res)
	}
	for _, reg := range b.systems {
		stages.AddSystemToStage(reg.label, reg.system)
	}
}
