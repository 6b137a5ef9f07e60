// Action provides the closed tagged-variant primitive for counter transitions.
//
// An Action is either Increment{By} or Decrement{By}. The interface is sealed by an
// unexported method so no other package can add variants; reducers switch over the
// two concrete types and treat anything else (nil, pointers) as a bug.
//
// Example:
//
//	a, err := NewAction(OpIncrement, 3)
//	// a == Increment{By: 3}
package primitives

import (
	"fmt"
	"strings"
)

// Op is the tag of an Action.
type Op string

const (
	OpIncrement Op = "increment"
	OpDecrement Op = "decrement"
)

// Valid reports whether o is one of the known tags.
func (o Op) Valid() bool {
	return o == OpIncrement || o == OpDecrement
}

// Symbol returns the one-character trigger label for o ("+" or "-").
func (o Op) Symbol() string {
	switch o {
	case OpIncrement:
		return "+"
	case OpDecrement:
		return "-"
	default:
		return "?"
	}
}

// ParseOp resolves an action tag. Matching is case-insensitive and ignores
// surrounding whitespace; anything other than increment/decrement is an UnknownAction.
func ParseOp(tag string) (Op, error) {
	switch Op(strings.ToLower(strings.TrimSpace(tag))) {
	case OpIncrement:
		return OpIncrement, nil
	case OpDecrement:
		return OpDecrement, nil
	}
	return "", UnknownAction("op", tag)
}

// Action is a requested counter transition.
type Action interface {
	// Op returns the tag.
	Op() Op
	// Step returns the step size carried by the action.
	Step() int
	String() string

	sealed()
}

// Increment adds By to a counter.
type Increment struct {
	By int `json:"by" yaml:"by"`
}

func (Increment) Op() Op { return OpIncrement }
func (a Increment) Step() int { return a.By }
func (a Increment) String() string { return fmt.Sprintf("increment(%d)", a.By) }
func (Increment) sealed() {}

// Decrement subtracts By from a counter.
type Decrement struct {
	By int `json:"by" yaml:"by"`
}

func (Decrement) Op() Op { return OpDecrement }
func (a Decrement) Step() int { return a.By }
func (a Decrement) String() string { return fmt.Sprintf("decrement(%d)", a.By) }
func (Decrement) sealed() {}

// NewAction builds the variant for op carrying step by.
// Unknown ops are rejected here so that reducers only ever see the two variants.
func NewAction(op Op, by int) (Action, error) {
	switch op {
	case OpIncrement:
		return Increment{By: by}, nil
	case OpDecrement:
		return Decrement{By: by}, nil
	}
	return nil, UnknownAction("action", string(op))
}

// ActionFromTag is ParseOp followed by NewAction.
func ActionFromTag(tag string, by int) (Action, error) {
	op, err := ParseOp(tag)
	if err != nil {
		return nil, err
	}
	return NewAction(op, by)
}
