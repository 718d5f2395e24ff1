package queryparser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cfg   Config
		query string
		want  error
	}{
		{name: "square brackets", query: "key=[value]", want: ErrInvalidCharacters},
		{name: "backslash", query: `\`, want: ErrInvalidCharacters},
		{name: "fragment", query: "key=value#", want: ErrInvalidCharacters},
		{name: "angle bracket", query: "key=value>", want: ErrInvalidCharacters},
		{name: "braces", query: "{key}", want: ErrInvalidCharacters},
		{name: "double quote", query: `key=value"`, want: ErrInvalidCharacters},
		{name: "non ascii letter", query: "k=é", want: ErrInvalidCharacters},
		{name: "invalid utf8", query: "k=\xff", want: ErrInvalidCharacters},
		{name: "carriage return", cfg: MustConfig(WhiteSpaceIsValid), query: "k=\r", want: ErrInvalidCharacters},
		{name: "space in value", query: "key= value", want: ErrUnencodedWhiteSpace},
		{name: "single space", query: " ", want: ErrUnencodedWhiteSpace},
		{name: "leading newline", query: "\nkey=value", want: ErrUnencodedWhiteSpace},
		{name: "tab in key", query: "k\tey=value", want: ErrUnencodedWhiteSpace},
		{name: "trailing newline and tab", query: "key\n\t", want: ErrUnencodedWhiteSpace},
		{name: "tab before equals", query: "key\t= value", want: ErrUnencodedWhiteSpace},
		{name: "two equals", query: "key1=value1&key2=value2=value3&key3=value4", want: ErrBadStructure},
		{name: "only equals", query: "==", want: ErrBadStructure},
		{name: "white space allowed but bad structure", cfg: MustConfig(WhiteSpaceIsValid), query: "a = b = c", want: ErrBadStructure},
		{name: "characters checked before structure", query: "a=b=c&[", want: ErrInvalidCharacters},
		{name: "white space checked before structure", query: "a=b=c& ", want: ErrUnencodedWhiteSpace},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := tt.cfg.Parse(tt.query)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseAcceptsLegalCharacters(t *testing.T) {
	t.Parallel()

	r, err := Parse("az09AZ%/?:@-._~!$'()*+,;=v&k")
	require.NoError(t, err)
	assert.Equal(t, []string{"az09AZ%/?:@-._~!$'()*+,;", "k"}, r.Keys())
}

func TestSyntaxErrorDetails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  SyntaxError
		msg   string
	}{
		{
			name:  "invalid character",
			query: "ab=c#",
			want:  SyntaxError{Err: ErrInvalidCharacters, Offset: 4, Char: '#'},
			msg:   `query string has invalid characters: '#' at offset 4`,
		},
		{
			name:  "white space",
			query: "ab=c\td",
			want:  SyntaxError{Err: ErrUnencodedWhiteSpace, Offset: 4, Char: '\t'},
			msg:   `query string contains unencoded white space: '\t' at offset 4`,
		},
		{
			name:  "bad segment",
			query: "key1=value1&key2=value2=value3&key3=value4",
			want:  SyntaxError{Err: ErrBadStructure, Offset: 12, Segment: "key2=value2=value3"},
			msg:   `query string has bad structure: segment "key2=value2=value3" at offset 12`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.query)
			var se *SyntaxError
			require.True(t, errors.As(err, &se), "got %T", err)
			assert.Equal(t, tt.want, *se)
			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestParseBytes(t *testing.T) {
	t.Parallel()

	_, err := Config{}.ParseBytes(nil)
	assert.ErrorIs(t, err, ErrNullInput)

	r, err := Config{}.ParseBytes([]byte{})
	require.NoError(t, err)
	assert.Zero(t, r.Len())

	r, err = MustConfig(MergeValues).ParseBytes([]byte("a=1&a=1"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, r.Strings("a"))
}
