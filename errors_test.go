package trait_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avila-r/trait"
	"github.com/avila-r/trait/property"
)

var (
	TestNamespace = trait.Namespace("foo")
	TestClass     = TestNamespace.Class("bar")
	TestOther     = TestNamespace.Class("baz")
)

func Test_ErrorClass(t *testing.T) {
	assert.Equal(t, "foo.bar", TestClass.String())
	assert.Equal(t, "trait.missing_required", trait.MissingRequired.String())
	assert.True(t, TestClass.Is(TestClass))
	assert.False(t, TestClass.Is(TestOther))
	assert.NotEqual(t, TestClass.ID, TestOther.ID)
}

func Test_Error_New(t *testing.T) {
	cases := []struct {
		name     string
		message  string
		args     []any
		expected string
	}{
		{"SimpleMessage", "error occurred", nil, "error occurred"},
		{"FormattedMessage", "error %d occurred", []any{404}, "error 404 occurred"},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			err := TestClass.New(test.message, test.args...)
			assert.Equal(t, test.expected, err.Error())
			assert.Same(t, TestClass, err.Class())
		})
	}
}

func Test_Error_Is(t *testing.T) {
	err := TestClass.New("first")
	wrapped := fmt.Errorf("wrapped: %w", err)

	tests := []struct {
		name   string
		err    error
		target error
		expect bool
	}{
		{"SameClass", err, TestClass.New("second"), true},
		{"Wrapped", wrapped, TestClass.New(""), true},
		{"OtherClass", err, TestOther.New("first"), false},
		{"Foreign", err, errors.New("first"), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expect, errors.Is(test.err, test.target))
		})
	}
}

func Test_Extends(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", TestClass.New("x"))

	assert.True(t, trait.Extends(err, TestClass))
	assert.False(t, trait.Extends(err, TestOther))
	assert.False(t, trait.Extends(errors.New("x"), TestClass))
	assert.False(t, trait.Extends(nil, TestClass))
}

func Test_Cast(t *testing.T) {
	base, custom := errors.New("base error"), TestClass.New("custom error")

	tests := []struct {
		name     string
		err      error
		expected *trait.Error
	}{
		{"NilError", nil, nil},
		{"ForeignError", base, nil},
		{"TraitError", custom, custom},
		{"WrappedTraitError", fmt.Errorf("x: %w", custom), custom},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Same(t, test.expected, trait.Cast(test.err))
		})
	}
}

func Test_Error_Properties(t *testing.T) {
	base := TestClass.New("broken")
	err := base.With("a", 1).With("b", "two")

	value, ok := err.Property("a").Get()
	assert.True(t, ok)
	assert.Equal(t, 1, value)
	assert.False(t, base.Property("a").Ok)

	assert.Equal(t, "broken", fmt.Sprintf("%v", err))
	assert.Equal(t, "broken", fmt.Sprintf("%s", err))
	assert.Equal(t, "foo.bar: broken {a: 1, b: two}", fmt.Sprintf("%+v", err))
	assert.Equal(t, "foo.bar: broken", base.Message())
}

func Test_MixinErrors_CarryContext(t *testing.T) {
	target := trait.NewObject(nil)

	_, err := trait.Mixin(target, TEquality)
	require.Error(t, err)

	casted := trait.Cast(err)
	require.NotNil(t, casted)

	name, ok := casted.Property(property.Name).Get()
	assert.True(t, ok)
	assert.Equal(t, "equals", name)

	owner, ok := casted.Property(property.Object).Get()
	assert.True(t, ok)
	assert.Equal(t, target.ID(), owner)
}
