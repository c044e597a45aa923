package puzzle

import (
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a puzzle or a requested
// operation.  It tells the caller "this thing failed to meet this
// condition" and carries supplemental details about the thing and
// the condition, so callers can react to the shape of the failure
// rather than parsing a message string.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error is
// referring to.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	FormatScope
	ArgumentScope
	CatalogScope
	ReductionScope
	MaxScope
)

// The ErrorCondition is the predicate that the scope failed to
// satisfy.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	WrongCellCountCondition
	TooLargeCondition
	TooSmallCondition
	UnknownPuzzleCondition
	WrongSolutionSizeCondition
	WrongConstraintCountCondition
	MaxCondition
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	CellCountAttribute
	RowAttribute
	ColumnAttribute
	ValueAttribute
	NameAttribute
	AlgorithmAttribute
	MaxAttribute
)

// The ErrorData provides details about the thing that failed to
// meet the predicate (such as the value of an attribute) as well
// as the predicate itself (such as required limits).
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will
// produce an appropriate (English, non-localized) message.
func (e Error) Error() string {
	if len(e.Message) > 0 {
		return e.Message
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	var es string
	switch e.Scope {
	case FormatScope:
		es = "Invalid puzzle format: "
	case ArgumentScope:
		es = "Invalid argument: "
	case CatalogScope:
		es = "Puzzle catalog: "
	case ReductionScope:
		es = "Exact-cover reduction: "
	default:
		es = "Unknown error: "
	}
	switch e.Attribute {
	case CellCountAttribute:
		es += "Cell count"
	case RowAttribute:
		es += "Row"
	case ColumnAttribute:
		es += "Column"
	case ValueAttribute:
		es += "Value"
	case NameAttribute:
		es += "Name"
	case AlgorithmAttribute:
		es += "Algorithm"
	}
	if e.Attribute != UnknownAttribute {
		es += " (" + fmt.Sprint(nextVal()) + "): "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case WrongCellCountCondition:
		es += fmt.Sprintf("Must be exactly %v significant characters", nextVal())
	case TooLargeCondition:
		es += fmt.Sprintf("Must be at most %v", nextVal())
	case TooSmallCondition:
		es += fmt.Sprintf("Must be at least %v", nextVal())
	case UnknownPuzzleCondition:
		es += "Not a known sample puzzle"
	case WrongSolutionSizeCondition:
		es += fmt.Sprintf("Solution has %v rows, needs %v", nextVal(), nextVal())
	case WrongConstraintCountCondition:
		es += fmt.Sprintf("Solution row satisfies %v constraints, needs %v", nextVal(), nextVal())
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}

// formatError returns the Error for an input string whose
// significant-character count is not the full grid size.
func formatError(count int) Error {
	return Error{
		Scope:     FormatScope,
		Condition: WrongCellCountCondition,
		Attribute: CellCountAttribute,
		Values:    ErrorData{count, GridSize},
	}
}
