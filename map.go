package trait

import (
	"iter"
	"slices"
	"strings"
)

// Map is an ordered, immutable mapping from slot name to Descriptor.
// The zero value is an empty map.
type Map struct {
	names []string
	slots map[string]Descriptor
}

func (m Map) Len() int {
	return len(m.names)
}

func (m Map) Names() []string {
	return slices.Clone(m.names)
}

func (m Map) Get(name string) (Descriptor, bool) {
	d, ok := m.slots[name]
	return d, ok
}

func (m Map) Has(name string) bool {
	_, ok := m.slots[name]
	return ok
}

func (m Map) All() iter.Seq2[string, Descriptor] {
	return func(yield func(string, Descriptor) bool) {
		for _, name := range m.names {
			if !yield(name, m.slots[name]) {
				return
			}
		}
	}
}

// Equal reports structural equivalence: the same names in the same order,
// each with the same kind and flags. Values are not compared.
func (m Map) Equal(other Map) bool {
	if !slices.Equal(m.names, other.names) {
		return false
	}
	for _, name := range m.names {
		if !m.slots[name].equivalent(other.slots[name]) {
			return false
		}
	}
	return true
}

func (m Map) String() string {
	parts := make([]string, 0, len(m.names))
	for name, d := range m.All() {
		parts = append(parts, name+": "+d.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

type builder struct {
	names []string
	slots map[string]Descriptor
}

func newBuilder(capacity int) *builder {
	return &builder{
		names: make([]string, 0, capacity),
		slots: make(map[string]Descriptor, capacity),
	}
}

func (b *builder) has(name string) bool {
	_, ok := b.slots[name]
	return ok
}

// put inserts or replaces; a replaced name keeps its first position.
func (b *builder) put(name string, d Descriptor) {
	if !b.has(name) {
		b.names = append(b.names, name)
	}
	b.slots[name] = d
}

// merge inserts, turning a second definition of the same name into a conflict.
func (b *builder) merge(name string, d Descriptor) {
	if b.has(name) {
		b.slots[name] = conflictSlot()
		return
	}
	b.put(name, d)
}

func (b *builder) len() int {
	return len(b.names)
}

func (b *builder) build() Map {
	return Map{names: b.names, slots: b.slots}
}
