package queryparser

import (
	"fmt"
	"strings"
)

// Flag switches one normalization behavior of the parser on.
type Flag uint8

const (
	// IgnoreWhiteSpace collapses runs of unencoded white space in keys and
	// values to a single space and trims both ends. Keys that become equal
	// are merged. Requires WhiteSpaceIsValid.
	IgnoreWhiteSpace Flag = iota + 1
	// HardIgnoreWhiteSpace does the same as IgnoreWhiteSpace after %20 has
	// been decoded, so encoded white space is normalized too.
	HardIgnoreWhiteSpace
	// ConvertToNull turns empty values into absent ones.
	ConvertToNull
	// MergeValues drops repeated values of a key, keeping the first one.
	MergeValues
	// WhiteSpaceIsValid accepts unencoded space, tab and newline in the query.
	WhiteSpaceIsValid

	flagEnd
)

var flagNames = [...]string{
	IgnoreWhiteSpace:     "IGNORE_WHITE_SPACE",
	HardIgnoreWhiteSpace: "HARD_IGNORE_WHITE_SPACE",
	ConvertToNull:        "CONVERT_TO_NULL",
	MergeValues:          "MERGE_VALUES",
	WhiteSpaceIsValid:    "WHITE_SPACE_IS_VALID",
}

// AllFlags returns every flag, in the order their stages run.
// WhiteSpaceIsValid has no stage and comes last.
func AllFlags() []Flag {
	return []Flag{IgnoreWhiteSpace, HardIgnoreWhiteSpace, ConvertToNull, MergeValues, WhiteSpaceIsValid}
}

func (f Flag) valid() bool {
	return f > 0 && f < flagEnd
}

func (f Flag) String() string {
	if !f.valid() {
		return fmt.Sprintf("Flag(%d)", uint8(f))
	}
	return flagNames[f]
}

// ParseFlag looks up a flag by name. Names are matched case-insensitively
// and '-' is accepted in place of '_', so "merge-values" and "MERGE_VALUES"
// are the same flag.
func ParseFlag(name string) (Flag, error) {
	norm := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for _, f := range AllFlags() {
		if flagNames[f] == norm {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFlag, name)
}
