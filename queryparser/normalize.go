package queryparser

import "strings"

// stage is one normalization step over the multimap.
type stage struct {
	name string
	// flag gates the stage; zero means it always runs.
	flag  Flag
	apply func(*multimap) *multimap
}

// stages lists the normalization steps in the order they must run,
// whichever flags are set.
var stages = []stage{
	{name: "ignore-white-space", flag: IgnoreWhiteSpace, apply: collapseWhiteSpace},
	{name: "decode-spaces", apply: decodeSpaces},
	{name: "hard-ignore-white-space", flag: HardIgnoreWhiteSpace, apply: collapseWhiteSpace},
	{name: "convert-to-null", flag: ConvertToNull, apply: convertToNull},
	{name: "merge-values", flag: MergeValues, apply: mergeValues},
}

// rewrite applies fn to every key and every present value. Keys that end up
// equal are merged in iteration order, at the position of the first one.
func rewrite(m *multimap, fn func(string) string) *multimap {
	out := newMultimap(len(m.keys))
	for _, k := range m.keys {
		vals := make([]Value, len(m.values[k]))
		for i, v := range m.values[k] {
			if s, ok := v.Get(); ok {
				v = Present(fn(s))
			}
			vals[i] = v
		}
		out.add(fn(k), vals...)
	}
	return out
}

// normalizeSpace turns tabs and newlines into spaces, collapses runs of
// spaces and trims both ends.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func collapseWhiteSpace(m *multimap) *multimap {
	return rewrite(m, normalizeSpace)
}

// decodeSpaces replaces %20 with a space. Other escapes are left as they are.
func decodeSpaces(m *multimap) *multimap {
	return rewrite(m, func(s string) string {
		return strings.ReplaceAll(s, "%20", " ")
	})
}

// convertToNull turns empty present values into absent ones. Keys are untouched.
func convertToNull(m *multimap) *multimap {
	for _, k := range m.keys {
		for i, v := range m.values[k] {
			if s, ok := v.Get(); ok && s == "" {
				m.values[k][i] = Absent()
			}
		}
	}
	return m
}

// mergeValues keeps the first occurrence of each value of a key.
// Absent equals absent; the empty string is a different value.
func mergeValues(m *multimap) *multimap {
	for _, k := range m.keys {
		seen := make(map[Value]struct{}, len(m.values[k]))
		kept := m.values[k][:0]
		for _, v := range m.values[k] {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			kept = append(kept, v)
		}
		m.values[k] = kept
	}
	return m
}
