// Package queryparser parses query strings into an ordered multimap of
// keys to value slots.
//
// Each segment between '&' characters is a key, optionally followed by '='
// and a value. A key may repeat; its values are kept in order. A segment
// without '=' yields an absent value, which is distinct from the empty
// value produced by "key=":
//
//	r, _ := queryparser.Parse("key=value1&key=&key")
//	vals, _ := r.Values("key") // [value1 "" <absent>]
//
// Flags select optional normalization stages. They are fixed when a Config
// is built, and a Config can be shared between goroutines:
//
//	cfg, err := queryparser.NewConfig(queryparser.ConvertToNull, queryparser.MergeValues)
//	r, err := cfg.Parse("key=value&key=&key") // key: [value <absent>]
//
// Only %20 is decoded. Other percent escapes are kept as written.
package queryparser
