package primitives

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is the only error kind a reducer produces: an action tag outside
// {increment, decrement}, or a routing key outside the known slot set.
var ErrUnknownAction = errors.New("unknown action")

// UnknownActionError carries where the unknown action was detected and what it was.
type UnknownActionError struct {
	Scope string // reducer or routing layer that rejected it
	Tag   string // printable form of the offending tag or key
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("BUG: %s: unknown action %q", e.Scope, e.Tag)
}

// Is makes errors.Is(err, ErrUnknownAction) hold.
func (e *UnknownActionError) Is(target error) bool {
	return target == ErrUnknownAction
}

// UnknownAction builds an *UnknownActionError. tag may be anything printable,
// including nil.
func UnknownAction(scope string, tag any) error {
	var s string
	switch t := tag.(type) {
	case nil:
		s = "<nil>"
	case string:
		s = t
	case fmt.Stringer:
		s = t.String()
	default:
		s = fmt.Sprintf("%T(%v)", tag, tag)
	}
	return &UnknownActionError{Scope: scope, Tag: s}
}

// IsUnknownAction reports whether err is, or wraps, an unknown action.
func IsUnknownAction(err error) bool {
	return errors.Is(err, ErrUnknownAction)
}
