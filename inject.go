package wecs

import (
	"fmt"
	"reflect"
)

// NewSystem converts sys into a System. Accepted forms:
//   - a SystemFunc or bare func(*World) error, wrapped with a no-op
//     initialize phase
//   - a pointer to a struct implementing Runnable; fields declared via wecs
//     tags are injected before every run
//   - any other System or Runnable, used directly
//
// Struct systems may additionally implement Initialize(*World); the hook is
// forwarded during the initialize phase. Nothing is injected at that point:
// initialize is where resources get created, so resource fields only carry
// values once Run starts.
//
// Anything else is a wiring mistake and panics.
func NewSystem(sys any) System {
	switch s := sys.(type) {
	case nil:
		panic("wecs: NewSystem called with nil system")
	case SystemFunc:
		return s
	case func(*World) error:
		return SystemFunc(s)
	}

	if v := reflect.ValueOf(sys); v.Kind() == reflect.Ptr && v.IsNil() {
		panic("wecs: NewSystem called with nil system")
	}

	if meta := analyzeSystem(sys); meta != nil && meta.hasWork() {
		r, ok := sys.(Runnable)
		if !ok {
			panic(fmt.Sprintf("wecs: system %s must implement Run(*World) error", meta.Name))
		}
		return &injectedSystem{
			run:   r,
			meta:  meta,
			value: reflect.ValueOf(sys).Elem(),
		}
	}

	// A struct passed by value cannot have its fields set. Catch declared
	// injections here instead of silently skipping them.
	if t := reflect.TypeOf(sys); t.Kind() == reflect.Struct {
		if meta := analyzeSystem(reflect.New(t).Interface()); meta != nil && meta.hasWork() {
			panic(fmt.Sprintf("wecs: system %s declares injected fields and must be registered as a pointer", t.Name()))
		}
	}

	if s, ok := sys.(System); ok {
		return s
	}
	if r, ok := sys.(Runnable); ok {
		return plainSystem{run: r}
	}
	panic(fmt.Sprintf("wecs: %T does not satisfy the system contract", sys))
}

// plainSystem adapts a Runnable with no injectable fields.
type plainSystem struct {
	run Runnable
}

// Initialize forwards to the wrapped value's hook when present.
func (p plainSystem) Initialize(w *World) {
	if init, ok := p.run.(interface{ Initialize(*World) }); ok {
		init.Initialize(w)
	}
}

// Run implements System.
func (p plainSystem) Run(w *World) error {
	return p.run.Run(w)
}

// injectedSystem wraps a struct system whose fields are populated from the
// world before each run.
type injectedSystem struct {
	run   Runnable
	meta  *systemMeta
	value reflect.Value
}

// Initialize forwards to the wrapped struct's hook when present.
func (s *injectedSystem) Initialize(w *World) {
	if init, ok := s.run.(interface{ Initialize(*World) }); ok {
		init.Initialize(w)
	}
}

// Run checks the system's gates, injects declared fields, and executes the
// wrapped Run. An absent required resource fails the run.
func (s *injectedSystem) Run(w *World) error {
	for _, gate := range s.meta.Gates {
		present := w.resourceByType(gate.ResourceType) != nil
		if present == gate.Without {
			return nil // Gate unmet, skip without error
		}
	}

	for i := range s.meta.Fields {
		field := &s.meta.Fields[i]
		target := s.value.Field(field.Index)

		switch field.Kind {
		case kindWorld:
			target.Set(reflect.ValueOf(w))

		case kindResource:
			res := w.resourceByType(field.ResourceType)
			if res == nil {
				if !field.Optional {
					return fmt.Errorf("wecs: system %s: missing required resource %s", s.meta.Name, field.ResourceType)
				}
				target.Set(reflect.Zero(target.Type()))
				continue
			}
			target.Set(reflect.ValueOf(res))
		}
	}

	return s.run.Run(w)
}
