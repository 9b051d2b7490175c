package wecs

import (
	"fmt"
	"reflect"
	"strings"
)

// Struct tag constants.
const (
	tagName = "wecs"

	modRes = "res" // Resource injection
	modOpt = "opt" // Optional (nil if missing)
)

// tagInfo holds parsed tag information.
type tagInfo struct {
	Resource bool // wecs:"res"
	Optional bool // wecs:"opt"
}

// parseTag parses a wecs struct tag.
func parseTag(tag string) tagInfo {
	info := tagInfo{}
	if tag == "" {
		return info
	}

	for part := range strings.SplitSeq(tag, ",") {
		switch strings.TrimSpace(part) {
		case modRes:
			info.Resource = true
		case modOpt:
			info.Optional = true
		}
	}

	return info
}

// fieldKind classifies an injectable system field.
type fieldKind int

const (
	// kindWorld is a *World field
	kindWorld fieldKind = iota
	// kindResource is a resource field (wecs:"res")
	kindResource
)

// fieldMeta holds metadata about a single injectable field.
type fieldMeta struct {
	// Index is the struct field index used for injection
	Index int

	// Name is the field name for diagnostics
	Name string

	// Kind is the type of field (world or resource)
	Kind fieldKind

	// ResourceType is the element type of a resource field
	ResourceType reflect.Type

	// Optional indicates the field stays nil when the resource is absent
	Optional bool
}

// gateMeta holds a run condition contributed by a With[T]/Without[T] field.
type gateMeta struct {
	// ResourceType is the resource type the gate inspects
	ResourceType reflect.Type

	// Without inverts the gate: skip the run while the resource exists
	Without bool
}

// systemMeta holds pre-computed metadata about a struct system type.
// This is computed once at conversion time and reused for all executions.
type systemMeta struct {
	// Type is the reflect.Type of the system struct
	Type reflect.Type

	// Name is the type name for diagnostics
	Name string

	// Fields holds injection metadata for each injectable field
	Fields []fieldMeta

	// Gates holds resource-presence run conditions
	Gates []gateMeta
}

// hasWork reports whether the system needs a per-run injection pass at all.
func (m *systemMeta) hasWork() bool {
	return len(m.Fields) > 0 || len(m.Gates) > 0
}

// worldPtrType is the reflect.Type of *World.
var worldPtrType = reflect.TypeOf((*World)(nil))

// analyzeSystem inspects a struct system and returns its metadata, or nil if
// sys is not a pointer to a struct. Malformed field declarations are wiring
// mistakes and panic.
func analyzeSystem(sys any) *systemMeta {
	t := reflect.TypeOf(sys)
	if t == nil || t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
		return nil
	}
	st := t.Elem()

	meta := &systemMeta{
		Type: st,
		Name: st.Name(),
	}

	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		tag := parseTag(field.Tag.Get(tagName))

		// With[T] / Without[T] contribute run conditions, never injection
		if isGateType(field.Type) {
			resType, without, _ := gateInfo(field.Type)
			if resType != nil {
				meta.Gates = append(meta.Gates, gateMeta{
					ResourceType: resType,
					Without:      without,
				})
			}
			continue
		}

		// *World fields are always injected
		if field.Type == worldPtrType {
			if !field.IsExported() {
				panic(fmt.Sprintf("wecs: system %s: world field %s must be exported", meta.Name, field.Name))
			}
			meta.Fields = append(meta.Fields, fieldMeta{
				Index: i,
				Name:  field.Name,
				Kind:  kindWorld,
			})
			continue
		}

		// Resource fields
		if tag.Resource {
			if !field.IsExported() {
				panic(fmt.Sprintf("wecs: system %s: resource field %s must be exported", meta.Name, field.Name))
			}
			if field.Type.Kind() != reflect.Ptr {
				panic(fmt.Sprintf("wecs: system %s: resource field %s must be a pointer, got %v", meta.Name, field.Name, field.Type))
			}
			meta.Fields = append(meta.Fields, fieldMeta{
				Index:        i,
				Name:         field.Name,
				Kind:         kindResource,
				ResourceType: field.Type.Elem(),
				Optional:     tag.Optional,
			})
			continue
		}

		// Everything else is payload and left untouched
	}

	return meta
}
