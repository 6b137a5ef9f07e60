package core

import "github.com/comalice/reducerx/internal/primitives"

// Reducer computes the next state from the current state and an action.
// On error the returned state must be the unchanged input state, so a caller
// that ignores the error still holds a well-formed value.
type Reducer[S, A any] func(state S, action A) (S, error)

// DefaultState is the value every counter starts at.
func DefaultState() int {
	return 0
}

// Apply is the counter reducer.
func Apply(state int, action primitives.Action) (int, error) {
	switch a := action.(type) {
	case primitives.Increment:
		return state + a.By, nil
	case primitives.Decrement:
		return state - a.By, nil
	default:
		return state, primitives.UnknownAction("counter", action)
	}
}

// Fixed returns a counter reducer whose step is bound here rather than carried
// by the action: callers inject only the tag.
func Fixed(by int) Reducer[int, primitives.Op] {
	return func(state int, op primitives.Op) (int, error) {
		action, err := primitives.NewAction(op, by)
		if err != nil {
			return state, err
		}
		return Apply(state, action)
	}
}
