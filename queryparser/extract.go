package queryparser

// multimap keeps keys in first-seen order and values in append order.
type multimap struct {
	keys   []string
	values map[string][]Value
}

func newMultimap(capacity int) *multimap {
	return &multimap{values: make(map[string][]Value, capacity)}
}

func (m *multimap) add(key string, vals ...Value) {
	cur, ok := m.values[key]
	if !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = append(cur, vals...)
}

// extract builds the raw multimap of an already validated query.
func extract(query string) *multimap {
	parts := Split(query, '&')
	m := newMultimap(len(parts))
	for _, part := range parts {
		kv := Split(part, '=')
		if len(kv) == 1 {
			m.add(kv[0], Absent())
			continue
		}
		m.add(kv[0], Present(kv[1]))
	}
	return m
}
