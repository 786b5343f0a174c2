package kofi

import "strings"

// Array is an ordered, finite sequence of values. It may optionally carry
// a component type tag (an opaque token taken from an optional leading
// "$name" specifier) used by a typed-reconstruction adapter; structural
// parsing itself never interprets the tag.
type Array struct {
	values   []Value
	typeSpec string
	hasType  bool
}

// NewArray builds an Array from an already-normalized sequence of values.
func NewArray(values ...Value) *Array {
	return &Array{values: append([]Value(nil), values...)}
}

// TypeSpec returns the array's opaque type specifier token and whether one
// was present.
func (a *Array) TypeSpec() (string, bool) {
	if a == nil {
		return "", false
	}
	return a.typeSpec, a.hasType
}

// SetTypeSpec attaches an opaque component-type token to the array.
func (a *Array) SetTypeSpec(spec string) {
	a.typeSpec = spec
	a.hasType = true
}

// Len reports the number of elements in the array.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.values)
}

// At returns the value at index i.
func (a *Array) At(i int) Value { return a.values[i] }

// Values returns the array's elements in order. The returned slice must
// not be mutated by callers.
func (a *Array) Values() []Value { return a.values }

// Append adds v to the end of the array.
func (a *Array) Append(v Value) { a.values = append(a.values, v) }

// Equal reports deep structural, order-sensitive equality. The type
// specifier is metadata and does not participate in equality.
func (a *Array) Equal(other *Array) bool {
	if a == nil || other == nil {
		return a == other
	}
	if len(a.values) != len(other.values) {
		return false
	}
	for i := range a.values {
		if !a.values[i].Equal(other.values[i]) {
			return false
		}
	}
	return true
}

// Text renders the array's canonical textual form: "[" then
// comma-separated values each prefixed by a single space, closing " ]".
func (a *Array) Text() string {
	var b strings.Builder
	b.WriteByte('[')
	if a.hasType {
		b.WriteString(" $")
		b.WriteString(a.typeSpec)
		if len(a.values) > 0 {
			b.WriteByte(',')
		}
	}
	for i, v := range a.values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(' ')
		b.WriteString(v.Text())
	}
	b.WriteString(" ]")
	return b.String()
}
