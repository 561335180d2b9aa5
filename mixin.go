package trait

import (
	"reflect"

	"github.com/rs/zerolog"

	"github.com/avila-r/trait/property"
)

// Engine applies maps onto objects.
type Engine struct {
	logger zerolog.Logger
}

type Option func(*Engine)

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger.With().Str("component", "trait").Logger()
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var std = New()

// Mixin applies t onto obj using an engine that does not log.
func Mixin(obj *Object, t Map) (*Object, error) {
	return std.Mixin(obj, t)
}

// Create applies t onto a new object inheriting from proto, using an
// engine that does not log.
func Create(proto *Object, t Map) (*Object, error) {
	return std.Create(proto, t)
}

// Create applies t onto a new object inheriting from proto.
func (e *Engine) Create(proto *Object, t Map) (*Object, error) {
	return e.Mixin(NewObject(proto), t)
}

// Mixin installs every concrete slot of t onto obj with methods bound to
// obj. Required slots must already be reachable from obj and are left as
// they are. Any required slot obj lacks, or any remaining conflict, fails
// the whole call before obj is touched.
//
// A nil obj yields a nil object and a nil error.
func (e *Engine) Mixin(obj *Object, t Map) (*Object, error) {
	if obj == nil {
		e.logger.Debug().Msg("mixin skipped, no target")
		return nil, nil
	}

	batch := newBuilder(t.Len())
	for name, d := range t.All() {
		switch {
		case d.Required():
			if !obj.Has(name) {
				return nil, e.reject(obj.fail(MissingRequired.New("missing required property: %s", name), name))
			}
			continue
		case d.Conflict():
			return nil, e.reject(obj.fail(UnresolvedConflict.New("unresolved conflict property: %s", name), name))
		case d.Method():
			d = bind(d, obj)
		}
		batch.put(name, d)
	}

	if err := obj.DefineAll(batch.build()); err != nil {
		return nil, e.reject(err)
	}

	e.logger.Debug().
		Stringer(property.Object, obj.ID()).
		Int("slots", batch.len()).
		Msg("trait applied")

	return obj, nil
}

func (e *Engine) reject(err error) error {
	event := e.logger.Warn().Err(err)
	if casted := Cast(err); casted != nil {
		event = event.Stringer("class", casted.Class())
		if name, ok := casted.Property(property.Name).Get(); ok {
			event = event.Interface(property.Name, name)
		}
	}
	event.Msg("mixin rejected")
	return err
}

// bind fixes the receiver of a method or accessor slot to target.
func bind(d Descriptor, target *Object) Descriptor {
	if d.Kind == KindAccessor {
		if get := d.Get; get != nil {
			d.Get = func(*Object) any { return get(target) }
		}
		if set := d.Set; set != nil {
			d.Set = func(_ *Object, value any) error { return set(target, value) }
		}
		return d
	}

	switch fn := d.Value.(type) {
	case Method:
		d.Value = Bound(func(args ...any) any { return fn(target, args...) })
	case func(self *Object, args ...any) any:
		d.Value = Bound(func(args ...any) any { return fn(target, args...) })
	default:
		v := reflect.ValueOf(d.Value)
		if takesReceiver(v.Type()) {
			d.Value = partial(v, target).Interface()
		}
	}

	return d
}

// partial returns fn with its leading *Object parameter fixed to target.
func partial(fn reflect.Value, target *Object) reflect.Value {
	t := fn.Type()

	in := make([]reflect.Type, 0, t.NumIn()-1)
	for i := 1; i < t.NumIn(); i++ {
		in = append(in, t.In(i))
	}
	out := make([]reflect.Type, 0, t.NumOut())
	for i := 0; i < t.NumOut(); i++ {
		out = append(out, t.Out(i))
	}

	self := reflect.ValueOf(target)
	return reflect.MakeFunc(reflect.FuncOf(in, out, t.IsVariadic()), func(args []reflect.Value) []reflect.Value {
		args = append([]reflect.Value{self}, args...)
		if t.IsVariadic() {
			return fn.CallSlice(args)
		}
		return fn.Call(args)
	})
}
