// Package fault classifies domain failures into the three kinds the
// application boundary cares about. Domain packages declare sentinel
// faults; callers add context with Wrapf and classify with KindOf.
package fault

import (
	"errors"
	"fmt"
)

type Kind string

const (
	Validation       Kind = "VALIDATION"
	NotFound         Kind = "NOT_FOUND"
	IllegalOperation Kind = "ILLEGAL_OPERATION"
)

type Error struct {
	kind Kind
	msg  string
	err  error
}

func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Wrapf builds a contextual fault around cause. The cause stays out of the
// message but remains reachable through Unwrap for errors.Is and diagnostics.
func Wrapf(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...), err: cause}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Kind() Kind { return e.kind }

func (e *Error) Unwrap() error { return e.err }

// KindOf reports the kind of the outermost fault in err's chain, or the
// empty Kind when the chain carries no fault.
func KindOf(err error) Kind {
	var f *Error
	if errors.As(err, &f) {
		return f.kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
