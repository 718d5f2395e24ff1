package queryparser

import "encoding/json"

// Value is one value slot of a key. A slot is either present, holding a
// possibly empty string, or absent, when the segment had no '='.
// The zero Value is absent.
type Value struct {
	s  string
	ok bool
}

// Present returns a present slot holding s.
func Present(s string) Value { return Value{s: s, ok: true} }

// Absent returns an absent slot.
func Absent() Value { return Value{} }

// Get returns the string and whether the slot is present.
func (v Value) Get() (string, bool) { return v.s, v.ok }

// IsAbsent reports whether the slot has no string.
func (v Value) IsAbsent() bool { return !v.ok }

// Equal reports whether v and o hold the same string, or are both absent.
// An empty string is not equal to an absent slot.
func (v Value) Equal(o Value) bool {
	return v.ok == o.ok && v.s == o.s
}

func (v Value) String() string {
	if !v.ok {
		return "<absent>"
	}
	return v.s
}

// MarshalJSON encodes an absent slot as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return json.Marshal(v.s)
}

// MarshalYAML encodes an absent slot as null.
func (v Value) MarshalYAML() (any, error) {
	if !v.ok {
		return nil, nil
	}
	return v.s, nil
}
