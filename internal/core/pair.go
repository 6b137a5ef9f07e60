package core

import (
	"strings"

	"github.com/comalice/reducerx/internal/primitives"
)

// Slot names one half of a Pair.
type Slot string

const (
	First  Slot = "first"
	Second Slot = "second"
)

// ParseSlot resolves a slot name; anything else is an UnknownAction.
func ParseSlot(name string) (Slot, error) {
	switch Slot(strings.ToLower(strings.TrimSpace(name))) {
	case First:
		return First, nil
	case Second:
		return Second, nil
	}
	return "", primitives.UnknownAction("pair", name)
}

// Pair is the fixed-shape composite of two named counters.
type Pair struct {
	First  int `json:"first" yaml:"first"`
	Second int `json:"second" yaml:"second"`
}

// DefaultPair is both counters at their default.
func DefaultPair() Pair {
	return Pair{First: DefaultState(), Second: DefaultState()}
}

// ApplyPair routes the sub-action to the slot named by Which. The other slot is
// copied unchanged.
func ApplyPair(p Pair, action primitives.Routed[Slot]) (Pair, error) {
	switch action.Which {
	case First:
		next, err := Apply(p.First, action.Sub)
		if err != nil {
			return p, err
		}
		p.First = next
		return p, nil
	case Second:
		next, err := Apply(p.Second, action.Sub)
		if err != nil {
			return p, err
		}
		p.Second = next
		return p, nil
	default:
		return p, primitives.UnknownAction("pair", string(action.Which))
	}
}

// DerivedStep is the step of the second counter in the sequential example: the
// first counter's current value. Callers evaluate it per render; it is never stored.
func DerivedStep(p Pair) int {
	return p.First
}

// Env exposes the pair as named values, e.g. for step expressions.
func (p Pair) Env() map[string]int {
	return map[string]int{string(First): p.First, string(Second): p.Second}
}
