package kofi

import "strings"

type objectEntry struct {
	name string
	val  Value
}

// Object is an ordered name->value mapping. Ordering is preserved as
// parsed; equality is order-insensitive between two objects holding equal
// (name, value) multisets.
type Object struct {
	entries  []objectEntry
	typeSpec string
	hasType  bool
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{}
}

// TypeSpec returns the object's opaque type specifier token and whether
// one was present.
func (o *Object) TypeSpec() (string, bool) {
	if o == nil {
		return "", false
	}
	return o.typeSpec, o.hasType
}

// SetTypeSpec attaches an opaque component-type token to the object.
func (o *Object) SetTypeSpec(spec string) {
	o.typeSpec = spec
	o.hasType = true
}

// Len reports the number of entries.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.entries)
}

// Put appends a (name, value) entry, preserving insertion order even when
// name duplicates an existing entry (the object model does not dedupe;
// callers that want map replace semantics should use Set).
func (o *Object) Put(name string, v Value) {
	o.entries = append(o.entries, objectEntry{name, v})
}

// Set replaces the value of the first entry named name, or appends a new
// entry if none exists.
func (o *Object) Set(name string, v Value) {
	for i := range o.entries {
		if o.entries[i].name == name {
			o.entries[i].val = v
			return
		}
	}
	o.Put(name, v)
}

// Get returns the value of the first entry named name.
func (o *Object) Get(name string) (Value, bool) {
	for _, e := range o.entries {
		if e.name == name {
			return e.val, true
		}
	}
	return Value{}, false
}

// Names returns the entry names in insertion order.
func (o *Object) Names() []string {
	names := make([]string, len(o.entries))
	for i, e := range o.entries {
		names[i] = e.name
	}
	return names
}

// Entries returns the (name, value) pairs in insertion order, as parallel
// slices to avoid exposing the internal entry type.
func (o *Object) Entries() (names []string, values []Value) {
	names = make([]string, len(o.entries))
	values = make([]Value, len(o.entries))
	for i, e := range o.entries {
		names[i] = e.name
		values[i] = e.val
	}
	return names, values
}

// Equal reports order-insensitive structural equality: the same
// multiset of (name, value) pairs, each first occurrence matched once.
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	if len(o.entries) != len(other.entries) {
		return false
	}
	used := make([]bool, len(other.entries))
	for _, e := range o.entries {
		matched := false
		for i, oe := range other.entries {
			if used[i] || oe.name != e.name {
				continue
			}
			if oe.val.Equal(e.val) {
				used[i] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// Text renders the object's canonical textual form: "{" then
// comma-separated " \"name\": value" pairs, closing " }".
func (o *Object) Text() string {
	var b strings.Builder
	b.WriteByte('{')
	wrote := false
	if o.hasType {
		b.WriteString(" $")
		b.WriteString(o.typeSpec)
		wrote = true
	}
	for _, e := range o.entries {
		if wrote {
			b.WriteByte(',')
		}
		b.WriteByte(' ')
		b.WriteByte('"')
		b.WriteString(escape(e.name, `"`))
		b.WriteString(`": `)
		b.WriteString(e.val.Text())
		wrote = true
	}
	b.WriteString(" }")
	return b.String()
}
