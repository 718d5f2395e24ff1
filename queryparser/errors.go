package queryparser

import (
	"errors"
	"fmt"
)

// Errors returned by the parser. Use errors.Is to tell them apart; the
// concrete error may be a *SyntaxError or a joined error wrapping one of these.
var (
	ErrNullInput           = errors.New("query string should not be nil")
	ErrInvalidCharacters   = errors.New("query string has invalid characters")
	ErrUnencodedWhiteSpace = errors.New("query string contains unencoded white space")
	ErrBadStructure        = errors.New("query string has bad structure")
	ErrFlagConflict        = errors.New("flag conflict")
	ErrUnknownFlag         = errors.New("unknown flag")
)

// SyntaxError describes why a query string was rejected.
type SyntaxError struct {
	// Err is one of the sentinel errors above.
	Err error
	// Offset is the byte offset of the offending character or segment.
	Offset int
	// Char is the offending character, or 0 for structural errors.
	Char rune
	// Segment is the offending '&'-delimited segment, if any.
	Segment string
}

func (e *SyntaxError) Error() string {
	switch {
	case e.Segment != "":
		return fmt.Sprintf("%s: segment %q at offset %d", e.Err, e.Segment, e.Offset)
	case e.Char != 0:
		return fmt.Sprintf("%s: %q at offset %d", e.Err, e.Char, e.Offset)
	default:
		return e.Err.Error()
	}
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
