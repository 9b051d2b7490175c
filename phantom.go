package wecs

import (
	"reflect"
)

// With is a phantom type gating a system on the presence of resource T.
// The resource is not injected - the field only contributes a run condition.
//
// Usage:
//
//	type SyncSystem struct {
//	    _ wecs.With[NetSession] // Run only while a NetSession resource exists
//	}
type With[T any] struct{}

// Without is a phantom type gating a system on the absence of resource T.
// The system is skipped, without error, while the resource exists.
//
// Usage:
//
//	type MoveSystem struct {
//	    _ wecs.Without[Paused] // Skip while the Paused resource exists
//	}
type Without[T any] struct{}

// GateTypeInfo provides resource type information for gate phantom types.
type GateTypeInfo interface {
	ResourceType() reflect.Type
	IsWithout() bool
}

// ResourceType implements GateTypeInfo for With[T].
func (With[T]) ResourceType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// IsWithout implements GateTypeInfo for With[T].
func (With[T]) IsWithout() bool {
	return false
}

// ResourceType implements GateTypeInfo for Without[T].
func (Without[T]) ResourceType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// IsWithout implements GateTypeInfo for Without[T].
func (Without[T]) IsWithout() bool {
	return true
}

// gateTypeInfoType is the reflect.Type of the GateTypeInfo interface.
var gateTypeInfoType = reflect.TypeOf((*GateTypeInfo)(nil)).Elem()

// isGateType checks if a type implements GateTypeInfo.
func isGateType(t reflect.Type) bool {
	return t.Implements(gateTypeInfoType)
}

// gateInfo extracts the resource type and direction from a gate type.
func gateInfo(t reflect.Type) (resType reflect.Type, without bool, ok bool) {
	if !t.Implements(gateTypeInfoType) {
		return nil, false, false
	}

	v := reflect.New(t).Elem().Interface().(GateTypeInfo)
	return v.ResourceType(), v.IsWithout(), true
}
