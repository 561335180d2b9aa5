package trait

// Directive maps a slot name to its new name. An empty target drops the slot.
type Directive map[string]string

// Compose merges maps in argument order. A name defined by more than one
// map becomes a conflict, even when the definitions are identical.
func Compose(traits ...Map) Map {
	b := newBuilder(capacity(traits))
	for _, t := range traits {
		for name, d := range t.All() {
			b.merge(name, d)
		}
	}
	return b.build()
}

// Resolve renames or drops the names listed in the directive and copies
// the rest. Entries naming absent slots are ignored. A rename onto a name
// that is already taken yields a conflict.
func Resolve(directive Directive, t Map) Map {
	b := newBuilder(t.Len())
	for name, d := range t.All() {
		target, ok := directive[name]
		switch {
		case !ok:
			b.merge(name, d)
		case target != "":
			b.merge(target, d)
		}
	}
	return b.build()
}

// Override merges maps in argument order, later definitions winning.
func Override(traits ...Map) Map {
	b := newBuilder(capacity(traits))
	for _, t := range traits {
		for name, d := range t.All() {
			b.put(name, d)
		}
	}
	return b.build()
}

func capacity(traits []Map) int {
	n := 0
	for _, t := range traits {
		n += t.Len()
	}
	return n
}
