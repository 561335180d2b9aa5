package trait

import (
	"fmt"

	"github.com/avila-r/trait/modifier"
)

type Kind uint8

const (
	KindValue Kind = iota
	KindMethod
	KindAccessor
	KindRequired
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindMethod:
		return "method"
	case KindAccessor:
		return "accessor"
	case KindRequired:
		return "required"
	case KindConflict:
		return "conflict"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Descriptor describes one named slot. Kind is the only source of the
// slot's role; Value, Get and Set are meaningful for concrete kinds only.
type Descriptor struct {
	Kind  Kind
	Value any
	Get   func(self *Object) any
	Set   func(self *Object, value any) error
	Flags modifier.Flags
}

// Method is a function expecting the object it is installed on as receiver.
type Method func(self *Object, args ...any) any

// Bound is a Method whose receiver has been fixed by Mixin.
type Bound func(args ...any) any

// Accessor declares a computed slot in a bundle.
type Accessor struct {
	Get func(self *Object) any
	Set func(self *Object, value any) error
}

func (d Descriptor) Required() bool {
	return d.Kind == KindRequired
}

func (d Descriptor) Conflict() bool {
	return d.Kind == KindConflict
}

// Method reports whether the slot's effective value is callable.
func (d Descriptor) Method() bool {
	return d.Kind == KindMethod || d.Kind == KindAccessor
}

func (d Descriptor) String() string {
	switch d.Kind {
	case KindRequired, KindConflict:
		return d.Kind.String()
	default:
		return d.Kind.String() + "(" + d.Flags.String() + ")"
	}
}

func (d Descriptor) equivalent(other Descriptor) bool {
	return d.Kind == other.Kind && d.Flags == other.Flags
}

func requiredSlot() Descriptor {
	return Descriptor{
		Kind:  KindRequired,
		Flags: modifier.Flags{Configurable: true},
	}
}

func conflictSlot() Descriptor {
	return Descriptor{Kind: KindConflict}
}
