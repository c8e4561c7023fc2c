package domain

import "strings"

// ListSeparator joins multi-valued tags when rendered as a single string.
const ListSeparator = ", "

// Value is the value of a tag on a term: a single string for tags that may
// appear at most once per stanza (id, name, def, comment), or an ordered
// list for repeatable tags such as "is_a" and "xref".
type Value struct {
	single string
	list   []string
	multi  bool
}

// SingleValue wraps a single-occurrence tag value.
func SingleValue(s string) Value {
	return Value{single: s}
}

// MultiValue wraps an ordered list of values for a repeatable tag.
func MultiValue(values ...string) Value {
	return Value{list: values, multi: true}
}

// IsMulti reports whether the value is list-shaped.
func (v Value) IsMulti() bool {
	return v.multi
}

// String renders the value for display: the single value as-is, or the
// list joined with ListSeparator.
func (v Value) String() string {
	if v.multi {
		return strings.Join(v.list, ListSeparator)
	}
	return v.single
}

// List returns the underlying values. A single value is returned as a
// one-element slice.
func (v Value) List() []string {
	if v.multi {
		return v.list
	}
	return []string{v.single}
}

// Len returns the number of values held.
func (v Value) Len() int {
	if v.multi {
		return len(v.list)
	}
	return 1
}

func (v Value) append(s string) Value {
	return Value{list: append(v.list, s), multi: true}
}
