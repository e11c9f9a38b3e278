package group

import (
	"errors"
	"fmt"
)

// Error reports why a set of records could not be grouped.
// Grouping either fully succeeds or fails with an Error; no partial
// mapping is ever returned.
type Error struct {
	// Code identifies the failure category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// GroupBy is the attribute that was requested.
	GroupBy string

	// Index is the position of the offending record in the filtered input,
	// or -1 when no single record is to blame.
	Index int
}

// ErrorCode categorizes grouping failures.
type ErrorCode string

const (
	// ErrCodeUnsupportedInput indicates the records did not arrive as a plain
	// ordered sequence.
	ErrCodeUnsupportedInput ErrorCode = "UNSUPPORTED_INPUT"

	// ErrCodeNoMatchingKey indicates neither the attribute lookup nor the
	// domain-size names apply to the requested attribute.
	ErrCodeNoMatchingKey ErrorCode = "NO_MATCHING_KEY"

	// ErrCodeEmptyInput indicates there were no records to probe.
	ErrCodeEmptyInput ErrorCode = "EMPTY_INPUT"

	// ErrCodeInconsistentAttribute indicates the first record has the
	// attribute but a later one does not.
	ErrCodeInconsistentAttribute ErrorCode = "INCONSISTENT_ATTRIBUTE"
)

// Sentinels for errors.Is. Matching is by Code only.
var (
	ErrUnsupportedInput      = &Error{Code: ErrCodeUnsupportedInput, Index: -1}
	ErrNoMatchingKey         = &Error{Code: ErrCodeNoMatchingKey, Index: -1}
	ErrEmptyInput            = &Error{Code: ErrCodeEmptyInput, Index: -1}
	ErrInconsistentAttribute = &Error{Code: ErrCodeInconsistentAttribute, Index: -1}
)

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Index >= 0:
		return fmt.Sprintf("%s: %s (by=%s, record=%d)", e.Code, e.Message, e.GroupBy, e.Index)
	case e.GroupBy != "":
		return fmt.Sprintf("%s: %s (by=%s)", e.Code, e.Message, e.GroupBy)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// Is reports whether target is a grouping Error with the same Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// CodeOf returns the grouping error code carried by err, or "" if err is
// not (and does not wrap) a grouping Error.
func CodeOf(err error) ErrorCode {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Code
	}
	return ""
}

// NewUnsupportedInputError creates an Error for a records container that is
// not a plain ordered sequence. describe names what was received.
func NewUnsupportedInputError(describe string) *Error {
	return &Error{
		Code:    ErrCodeUnsupportedInput,
		Message: fmt.Sprintf("unsupported input type: %s", describe),
		Index:   -1,
	}
}

func newNoMatchingKeyError(groupBy string) *Error {
	return &Error{
		Code:    ErrCodeNoMatchingKey,
		Message: "no matching grouping key",
		GroupBy: groupBy,
		Index:   -1,
	}
}

func newEmptyInputError(groupBy string, filtered bool) *Error {
	msg := "cannot determine grouping strategy for empty input"
	if filtered {
		msg = "cannot determine grouping strategy: no started records"
	}
	return &Error{
		Code:    ErrCodeEmptyInput,
		Message: msg,
		GroupBy: groupBy,
		Index:   -1,
	}
}

func newInconsistentAttributeError(groupBy string, index int) *Error {
	return &Error{
		Code:    ErrCodeInconsistentAttribute,
		Message: "inconsistent attribute availability across records",
		GroupBy: groupBy,
		Index:   index,
	}
}
