package graph

// Value is a property value: a single string or an ordered list of
// strings. A value is promoted to a list the moment a second value for
// the same key is observed, so "one value" and "a list holding one value"
// stay distinct.
type Value struct {
	single string
	list   []string
	multi  bool
}

// String builds a single-valued Value.
func String(s string) Value {
	return Value{single: s}
}

// List builds a multi-valued Value from an ordered slice.
func List(values ...string) Value {
	return Value{list: append([]string(nil), values...), multi: true}
}

// IsList reports whether the value holds more than one slot.
func (v Value) IsList() bool {
	return v.multi
}

// Strings returns the value as a slice, a single value becoming a
// one-element slice. The caller must not mutate the result.
func (v Value) Strings() []string {
	if v.multi {
		return v.list
	}
	return []string{v.single}
}

// First returns the first (or only) value.
func (v Value) First() string {
	if v.multi {
		if len(v.list) == 0 {
			return ""
		}
		return v.list[0]
	}
	return v.single
}

// Append returns a Value extended by one more entry, promoting a single
// value to a list on the first append.
func (v Value) Append(s string) Value {
	if !v.multi {
		return Value{list: []string{v.single, s}, multi: true}
	}
	return Value{list: append(v.list, s), multi: true}
}
