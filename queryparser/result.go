package queryparser

import (
	"bytes"
	"encoding/json"
	"slices"

	"github.com/goccy/go-yaml"
)

// Result is the parsed form of a query string: keys in the order they first
// appeared, each with its ordered value slots. A Result is never modified
// after Parse returns it; accessors hand out copies.
type Result struct {
	keys   []string
	values map[string][]Value
}

// finalize drops absent slots of the empty key, then every key left without
// values. A bare '&' produces an empty key with an absent slot; that is
// noise, whereas "=" deliberately sets the empty key to "".
func finalize(m *multimap) *Result {
	if vals, ok := m.values[""]; ok {
		m.values[""] = slices.DeleteFunc(vals, Value.IsAbsent)
	}

	r := &Result{values: make(map[string][]Value, len(m.keys))}
	for _, k := range m.keys {
		if len(m.values[k]) == 0 {
			continue
		}
		r.keys = append(r.keys, k)
		r.values[k] = m.values[k]
	}
	return r
}

// Len returns the number of keys.
func (r *Result) Len() int { return len(r.keys) }

// Keys returns the keys in first-seen order.
func (r *Result) Keys() []string { return slices.Clone(r.keys) }

// Has reports whether key survived parsing.
func (r *Result) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Values returns the value slots of key. ok is false when key never appeared
// or was pruned; a key that is present always has at least one slot.
func (r *Result) Values(key string) (vals []Value, ok bool) {
	vals, ok = r.values[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(vals), true
}

// Get returns the first value slot of key.
func (r *Result) Get(key string) (Value, bool) {
	vals, ok := r.values[key]
	if !ok {
		return Value{}, false
	}
	return vals[0], true
}

// Strings returns the present values of key, skipping absent slots.
func (r *Result) Strings(key string) []string {
	var out []string
	for _, v := range r.values[key] {
		if s, ok := v.Get(); ok {
			out = append(out, s)
		}
	}
	return out
}

// Map returns a copy of the result as a plain map. Key order is lost.
func (r *Result) Map() map[string][]Value {
	out := make(map[string][]Value, len(r.keys))
	for _, k := range r.keys {
		out[k] = slices.Clone(r.values[k])
	}
	return out
}

// MarshalYAML encodes the result as a mapping, keeping key order.
func (r *Result) MarshalYAML() (any, error) {
	ms := make(yaml.MapSlice, 0, len(r.keys))
	for _, k := range r.keys {
		ms = append(ms, yaml.MapItem{Key: k, Value: r.values[k]})
	}
	return ms, nil
}

// MarshalJSON encodes the result as an object, keeping key order.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
