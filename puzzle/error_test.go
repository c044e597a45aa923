package puzzle

import (
	"testing"
)

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  Error
		want string
	}{
		{
			"wrong cell count",
			formatError(80),
			"Invalid puzzle format: Cell count (80): Must be exactly 81 significant characters",
		},
		{
			"unknown puzzle",
			Error{
				Scope:     CatalogScope,
				Condition: UnknownPuzzleCondition,
				Attribute: NameAttribute,
				Values:    ErrorData{"bogus"},
			},
			"Puzzle catalog: Name (bogus): Not a known sample puzzle",
		},
		{
			"argument limits",
			Error{
				Scope:     ArgumentScope,
				Condition: TooLargeCondition,
				Attribute: ValueAttribute,
				Values:    ErrorData{12, 9},
			},
			"Invalid argument: Value (12): Must be at most 9",
		},
		{
			"custom message wins",
			Error{Scope: FormatScope, Message: "just this"},
			"just this",
		},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("%s:\n got %q\nwant %q", tc.name, got, tc.want)
		}
	}
}
