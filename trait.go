// Package trait composes traits, reusable bundles of named values and
// methods, into objects.
//
// A bundle becomes a Map through Of or FromMap. Maps are combined with
// Compose (name clashes become conflicts), Resolve (renames or drops names
// ahead of composition) and Override (later maps win). Mixin and Create
// apply a Map onto an Object, rejecting unresolved conflicts and required
// slots the object does not provide, and binding every method to the
// object it is installed on.
//
// Composition never fails; all validation happens when a Map is applied.
package trait

import (
	"maps"
	"reflect"
	"slices"

	"github.com/avila-r/trait/modifier"
	"github.com/avila-r/trait/property"
)

type requirement struct{}

// Required marks a bundle slot that the target object must provide.
// It is matched by type, so no user value can be mistaken for it.
// Only the value form is recognized: Accessor funcs are typed and cannot
// carry the marker, so a required getter or setter is not supported.
var Required = requirement{}

func isRequired(value any) bool {
	_, ok := value.(requirement)
	return ok
}

func Of(bundle *property.List) Map {
	entries := bundle.Entries()

	b := newBuilder(len(entries))
	for _, entry := range entries {
		b.put(entry.Key, describe(entry.Value, entry.Flags))
	}

	return b.build()
}

// FromMap builds a Map from a Go map. Names are taken in sorted order.
func FromMap(bundle map[string]any) Map {
	b := newBuilder(len(bundle))
	for _, name := range slices.Sorted(maps.Keys(bundle)) {
		b.put(name, describe(bundle[name], modifier.Default))
	}
	return b.build()
}

func describe(value any, flags modifier.Flags) Descriptor {
	if isRequired(value) {
		return requiredSlot()
	}
	return plain(value, flags)
}

func plain(value any, flags modifier.Flags) Descriptor {
	if accessor, ok := value.(Accessor); ok {
		flags.Writable = false
		return Descriptor{
			Kind:  KindAccessor,
			Get:   accessor.Get,
			Set:   accessor.Set,
			Flags: flags,
		}
	}

	kind := KindValue
	if callable(value) {
		kind = KindMethod
	}

	return Descriptor{
		Kind:  kind,
		Value: value,
		Flags: flags,
	}
}

func callable(value any) bool {
	v := reflect.ValueOf(value)
	return v.Kind() == reflect.Func && !v.IsNil()
}
