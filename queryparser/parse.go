package queryparser

import "log/slog"

// Parse parses a raw query string (the part of a URI after '?', without the
// '?') using the zero Config: no flags, unencoded white space rejected.
func Parse(query string) (*Result, error) {
	return Config{}.Parse(query)
}

// Parse validates query and turns it into a Result:
//   - the query may only contain alphanumerics, '%', the characters
//     /?:@-._~!$&'()*+,;= and, with WhiteSpaceIsValid, space, tab and newline
//   - segments are split on '&', and each holds at most one '='
//   - a segment without '=' gives its key an absent value
//   - %20 is always decoded to a space
//   - flagged stages run in a fixed order: IgnoreWhiteSpace, decoding,
//     HardIgnoreWhiteSpace, ConvertToNull, MergeValues
//   - absent values of the empty key, then keys without values, are dropped
//
// Any validation error aborts the call; there is no partial result.
func (c Config) Parse(query string) (*Result, error) {
	log := c.logger()
	if err := validate(query, c); err != nil {
		log.Debug("rejected query", slog.Any("error", err))
		return nil, err
	}

	m := extract(query)
	log.Debug("extracted", slog.Int("keys", len(m.keys)))
	for _, st := range stages {
		if st.flag != 0 && !c.Has(st.flag) {
			continue
		}
		m = st.apply(m)
		log.Debug("applied stage", slog.String("stage", st.name), slog.Int("keys", len(m.keys)))
	}
	return finalize(m), nil
}

// ParseBytes is like Parse but takes the query as bytes. A nil slice fails
// with ErrNullInput; an empty, non-nil slice is the empty query.
func (c Config) ParseBytes(query []byte) (*Result, error) {
	if query == nil {
		return nil, ErrNullInput
	}
	return c.Parse(string(query))
}
