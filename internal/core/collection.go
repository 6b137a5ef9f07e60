package core

import (
	"strconv"

	"github.com/comalice/reducerx/internal/primitives"
)

// ApplySlots is the collection reducer. The addressed slot starts from the
// default value when it has never been touched; every other index is unchanged.
// Indices are non-negative.
func ApplySlots(s primitives.Slots, action primitives.Routed[int]) (primitives.Slots, error) {
	if action.Which < 0 {
		return s, primitives.UnknownAction("slots", strconv.Itoa(action.Which))
	}
	next, err := Apply(s.Get(action.Which), action.Sub)
	if err != nil {
		return s, err
	}
	return s.With(action.Which, next), nil
}

// DefaultSlots is an empty collection.
func DefaultSlots() primitives.Slots {
	return primitives.Slots{}
}
