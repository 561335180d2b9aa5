package modifier

import "strings"

type Attribute int

const (
	// Hidden is a slot attribute; a hidden slot is skipped when enumerating keys
	Hidden Attribute = 1
	// ReadOnly is a slot attribute; assignments to a read-only data slot are rejected
	ReadOnly Attribute = 2
	// Sealed is a slot attribute; a sealed slot cannot be redefined once installed
	Sealed Attribute = 3
)

// Flags holds the visibility and mutability of a single slot.
type Flags struct {
	Enumerable   bool
	Configurable bool
	Writable     bool
}

var (
	// Default is what a plain assignment produces.
	Default = Flags{Enumerable: true, Configurable: true, Writable: true}

	None = Flags{}
)

func Of(attributes ...Attribute) Flags {
	return Default.With(attributes...)
}

func (f Flags) With(attributes ...Attribute) Flags {
	for _, attribute := range attributes {
		switch attribute {
		case Hidden:
			f.Enumerable = false
		case ReadOnly:
			f.Writable = false
		case Sealed:
			f.Configurable = false
		}
	}

	return f
}

// String renders the flags as "ecw", using '-' for every cleared flag.
func (f Flags) String() string {
	var b strings.Builder
	for _, flag := range []struct {
		set  bool
		char byte
	}{
		{f.Enumerable, 'e'},
		{f.Configurable, 'c'},
		{f.Writable, 'w'},
	} {
		if flag.set {
			b.WriteByte(flag.char)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
