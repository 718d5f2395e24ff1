package queryparser

import (
	"strings"
	"unicode/utf8"
)

// In addition to alphanumerics and '%', a query may carry these characters
// unencoded.
const legalPunct = "/?:@-._~!$&'()*+,;="

const whiteSpace = " \t\n"

func isLegal(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') ||
		r == '%' || strings.ContainsRune(legalPunct, r)
}

func isWhiteSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

// validate runs the character, white space and structure checks in that
// order and returns the first failure.
func validate(query string, cfg Config) error {
	for i, r := range query {
		if r == utf8.RuneError || !(isLegal(r) || isWhiteSpace(r)) {
			return &SyntaxError{Err: ErrInvalidCharacters, Offset: i, Char: r}
		}
	}

	if !cfg.Has(WhiteSpaceIsValid) {
		if i := strings.IndexAny(query, whiteSpace); i >= 0 {
			return &SyntaxError{Err: ErrUnencodedWhiteSpace, Offset: i, Char: rune(query[i])}
		}
	}

	offset := 0
	for _, seg := range Split(query, '&') {
		if strings.Count(seg, "=") > 1 {
			return &SyntaxError{Err: ErrBadStructure, Offset: offset, Segment: seg}
		}
		offset += len(seg) + 1
	}
	return nil
}
