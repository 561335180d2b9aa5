package trait

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/avila-r/trait/id"
	"github.com/avila-r/trait/property"
)

type ErrorNamespace struct {
	ID   id.ID
	Name string
}

func Namespace(name string) ErrorNamespace {
	return ErrorNamespace{
		ID:   id.Next(),
		Name: name,
	}
}

func (n ErrorNamespace) Class(name string) *ErrorClass {
	return &ErrorClass{
		Namespace: n,
		ID:        id.Next(),
		Name:      n.Name + "." + name,
	}
}

type ErrorClass struct {
	Namespace ErrorNamespace
	ID        id.ID
	Name      string
}

func (c *ErrorClass) New(message string, v ...any) *Error {
	if len(v) > 0 {
		message = fmt.Sprintf(message, v...)
	}
	return &Error{class: c, message: message}
}

func (c *ErrorClass) Is(other *ErrorClass) bool {
	return c != nil && other != nil && c.ID == other.ID
}

func (c *ErrorClass) String() string {
	return c.Name
}

var (
	// Errors is the namespace of every error returned by this package.
	Errors = Namespace("trait")

	// MissingRequired is returned by Mixin when the target lacks a required slot
	MissingRequired = Errors.Class("missing_required")

	// UnresolvedConflict is returned by Mixin when a conflict marker is still present
	UnresolvedConflict = Errors.Class("unresolved_conflict")

	NotWritable     = Errors.Class("not_writable")
	NotConfigurable = Errors.Class("not_configurable")
	NotCallable     = Errors.Class("not_callable")
	NotFound        = Errors.Class("not_found")
	InvalidArgument = Errors.Class("invalid_argument")
)

type Error struct {
	class      *ErrorClass
	message    string
	properties *property.List
}

var (
	_ error         = (*Error)(nil)
	_ fmt.Formatter = (*Error)(nil)
)

func (e *Error) Class() *ErrorClass {
	return e.class
}

func (e *Error) With(key string, value any) *Error {
	copy := *e
	copy.properties = copy.properties.Set(key, value)
	return &copy
}

func (e *Error) Property(key string) property.Result {
	value, ok := e.properties.Get(key)
	return property.Result{Value: value, Ok: ok}
}

// Is matches any *Error of the same class.
func (e *Error) Is(err error) bool {
	other, ok := err.(*Error)
	return ok && e.class.Is(other.class)
}

// Error implements the error interface.
// A result is the same as with %s formatter and does not contain the class or properties.
func (e *Error) Error() string {
	return e.message
}

// Message renders the class name, the message and the properties, oldest first.
func (e *Error) Message() string {
	text := e.class.Name + ": " + e.message

	entries := e.properties.Entries()
	if len(entries) == 0 {
		return text
	}

	strs := make([]string, 0, len(entries))
	for _, entry := range entries {
		strs = append(strs, fmt.Sprintf("%s: %v", entry.Key, entry.Value))
	}

	return text + " {" + strings.Join(strs, ", ") + "}"
}

// Format implements the Formatter interface.
//
// Supported verbs:
//
//	%s		simple message output
//	%v		simple message output
//	%+v		class, message and properties
func (e *Error) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v':
		if state.Flag('+') {
			_, _ = io.WriteString(state, e.Message())
			return
		}
		_, _ = io.WriteString(state, e.message)
	case 's':
		_, _ = io.WriteString(state, e.message)
	}
}

// Cast returns the *Error found in err's chain, or nil.
func Cast(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// Extends reports whether err carries an *Error of the given class.
func Extends(err error, c *ErrorClass) bool {
	casted := Cast(err)
	return casted != nil && casted.class.Is(c)
}
