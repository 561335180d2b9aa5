package trait

import (
	"reflect"
	"slices"

	"github.com/avila-r/trait/id"
	"github.com/avila-r/trait/modifier"
	"github.com/avila-r/trait/property"
)

// Object is an ordered bag of named slots with an optional prototype.
// Lookups that miss the object's own slots continue along the prototype
// chain. An Object is not safe for concurrent mutation.
type Object struct {
	id    id.ID
	proto *Object
	names []string
	slots map[string]Descriptor
}

func NewObject(proto *Object) *Object {
	return &Object{
		id:    id.Next(),
		proto: proto,
		slots: make(map[string]Descriptor),
	}
}

// ObjectOf creates a plain object holding the bundle's entries as own slots.
// No trait semantics apply: Required is stored like any other value.
func ObjectOf(bundle *property.List) *Object {
	o := NewObject(nil)
	for _, entry := range bundle.Entries() {
		o.install(entry.Key, plain(entry.Value, entry.Flags))
	}
	return o
}

func (o *Object) ID() id.ID {
	return o.id
}

func (o *Object) Proto() *Object {
	return o.proto
}

func (o *Object) HasOwn(name string) bool {
	_, ok := o.slots[name]
	return ok
}

// Has reports whether the object or its prototype chain defines name.
func (o *Object) Has(name string) bool {
	_, _, ok := o.Lookup(name)
	return ok
}

// Keys returns the enumerable own slot names in definition order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.names))
	for _, name := range o.names {
		if o.slots[name].Flags.Enumerable {
			keys = append(keys, name)
		}
	}
	return keys
}

// Names returns every own slot name in definition order.
func (o *Object) Names() []string {
	return slices.Clone(o.names)
}

// Lookup returns the descriptor for name and the object in the chain
// that owns it.
func (o *Object) Lookup(name string) (Descriptor, *Object, bool) {
	for current := o; current != nil; current = current.proto {
		if d, ok := current.slots[name]; ok {
			return d, current, true
		}
	}
	return Descriptor{}, nil, false
}

// Get reads name, evaluating accessors with o as receiver.
func (o *Object) Get(name string) property.Result {
	d, _, ok := o.Lookup(name)
	if !ok {
		return property.Empty()
	}

	if d.Kind == KindAccessor {
		if d.Get == nil {
			return property.Result{Value: nil, Ok: true}
		}
		return property.Result{Value: d.Get(o), Ok: true}
	}

	return property.Result{Value: d.Value, Ok: true}
}

// Set assigns name. Own writable data slots are updated in place, setters
// found along the chain run with o as receiver, and anything else creates
// an own slot with default flags.
func (o *Object) Set(name string, value any) error {
	d, owner, ok := o.Lookup(name)
	if !ok {
		o.install(name, plain(value, modifier.Default))
		return nil
	}

	if d.Kind == KindAccessor {
		if d.Set == nil {
			return o.fail(NotWritable.New("property %s has no setter", name), name)
		}
		return d.Set(o, value)
	}

	if !d.Flags.Writable {
		return o.fail(NotWritable.New("property %s is read-only", name), name)
	}

	flags := modifier.Default
	if owner == o {
		flags = d.Flags
	}
	o.install(name, plain(value, flags))
	return nil
}

// Define installs a single concrete descriptor as an own slot.
func (o *Object) Define(name string, d Descriptor) error {
	if err := o.check(name, d); err != nil {
		return err
	}
	o.install(name, d)
	return nil
}

// DefineAll installs every descriptor of the map, or none of them when
// any one is rejected.
func (o *Object) DefineAll(t Map) error {
	for name, d := range t.All() {
		if err := o.check(name, d); err != nil {
			return err
		}
	}
	for name, d := range t.All() {
		o.install(name, d)
	}
	return nil
}

// Call invokes the callable slot name with o as the receiver of unbound
// methods. A trailing error result of the function is returned as the error.
func (o *Object) Call(name string, args ...any) (any, error) {
	result := o.Get(name)
	if !result.Ok {
		return nil, o.fail(NotFound.New("property %s not found", name), name)
	}

	if !callable(result.Value) {
		return nil, o.fail(NotCallable.New("property %s is not callable", name), name)
	}

	switch fn := result.Value.(type) {
	case Bound:
		return fn(args...), nil
	case Method:
		return fn(o, args...), nil
	case func(args ...any) any:
		return fn(args...), nil
	}

	fn := reflect.ValueOf(result.Value)
	if takesReceiver(fn.Type()) {
		args = append([]any{o}, args...)
	}

	out, bad := invoke(fn, args)
	if bad != nil {
		return nil, o.fail(bad, name)
	}
	return results(out)
}

func (o *Object) check(name string, d Descriptor) error {
	if d.Required() || d.Conflict() {
		return o.fail(InvalidArgument.New("cannot define %s slot %s", d.Kind, name), name)
	}
	if existing, ok := o.slots[name]; ok && !existing.Flags.Configurable {
		return o.fail(NotConfigurable.New("cannot redefine property: %s", name), name)
	}
	return nil
}

func (o *Object) install(name string, d Descriptor) {
	if _, ok := o.slots[name]; !ok {
		o.names = append(o.names, name)
	}
	o.slots[name] = d
}

func (o *Object) fail(err *Error, name string) *Error {
	return err.
		With(property.Name, name).
		With(property.Object, o.id)
}

var (
	objectType = reflect.TypeOf((*Object)(nil))
	errorType  = reflect.TypeOf((*error)(nil)).Elem()
)

func takesReceiver(t reflect.Type) bool {
	return t.NumIn() > 0 && t.In(0) == objectType
}

func invoke(fn reflect.Value, args []any) ([]reflect.Value, *Error) {
	t := fn.Type()

	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
	}
	if len(args) < fixed || (!t.IsVariadic() && len(args) > fixed) {
		return nil, InvalidArgument.New("expected %d arguments, got %d", fixed, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var param reflect.Type
		if i < fixed {
			param = t.In(i)
		} else {
			param = t.In(fixed).Elem()
		}

		if arg == nil {
			in[i] = reflect.Zero(param)
			continue
		}

		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(param) {
			return nil, InvalidArgument.New("argument %d: %s is not assignable to %s", i, v.Type(), param)
		}
		in[i] = v
	}

	return fn.Call(in), nil
}

func results(out []reflect.Value) (any, error) {
	if len(out) == 0 {
		return nil, nil
	}

	last := out[len(out)-1]
	if last.Type() == errorType {
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
		out = out[:len(out)-1]
	}

	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}
