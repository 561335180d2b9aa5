package property

import (
	"reflect"

	"github.com/avila-r/trait/modifier"
)

const (
	Name   = "property"
	Object = "object"
)

// List represents an ordered bundle of named values.
// Compared to builtin type, it keeps insertion order and uses less allocations on copy.
// It is implemented as a simple linked list, newest entry first.
type List struct {
	Key   string
	Value any
	Flags modifier.Flags
	Next  *List
}

func With(key string, value any) *List {
	return (*List)(nil).Set(key, value)
}

func Define(key string, value any, attributes ...modifier.Attribute) *List {
	return (*List)(nil).Define(key, value, attributes...)
}

func (p *List) Set(key string, value any) *List {
	return &List{Key: key, Value: value, Flags: modifier.Default, Next: p}
}

func (p *List) Define(key string, value any, attributes ...modifier.Attribute) *List {
	return &List{Key: key, Value: value, Flags: modifier.Of(attributes...), Next: p}
}

func (p *List) Get(key string) (value any, ok bool) {
	for p != nil {
		if p.Key == key {
			return p.Value, true
		}
		p = p.Next
	}
	return nil, false
}

func (p *List) Len() int {
	n := 0
	for ; p != nil; p = p.Next {
		n++
	}
	return n
}

// Entries returns one entry per distinct key in insertion order.
// A key set more than once keeps its first position and its latest value.
func (p *List) Entries() []*List {
	var reversed []*List
	for ; p != nil; p = p.Next {
		reversed = append(reversed, p)
	}

	var (
		position = make(map[string]int, len(reversed))
		entries  = make([]*List, 0, len(reversed))
	)

	for i := len(reversed) - 1; i >= 0; i-- {
		entry := reversed[i]
		if at, ok := position[entry.Key]; ok {
			entries[at] = entry
			continue
		}
		position[entry.Key] = len(entries)
		entries = append(entries, entry)
	}

	return entries
}

type Result struct {
	Value any
	Ok    bool
}

func Empty() Result {
	return Result{
		Value: nil,
		Ok:    false,
	}
}

func (r Result) Get() (value any, ok bool) {
	return r.Value, r.Ok
}

func (r Result) Bind(out any) bool {
	if !r.Ok {
		return false
	}

	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return false
	}

	target := v.Elem()
	if !target.CanSet() {
		return false
	}

	if r.Value == nil {
		target.Set(reflect.Zero(target.Type()))
		return true
	}

	bind := reflect.ValueOf(r.Value)
	if !bind.Type().AssignableTo(target.Type()) {
		return false
	}

	target.Set(bind)
	return true
}
