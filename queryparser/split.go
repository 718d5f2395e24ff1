package queryparser

import "strings"

// Split splits s around every occurrence of delim. No token is ever dropped:
// a delimiter at either end of s or next to another delimiter yields an
// empty token, and an empty s yields a single empty token.
//
//	Split("a==", '=')  // ["a" "" ""]
//	Split(" =a=", '=') // [" " "a" ""]
func Split(s string, delim byte) []string {
	return strings.Split(s, string(delim))
}
