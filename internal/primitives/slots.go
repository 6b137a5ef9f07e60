// Package primitives provides foundational data structures for the reducer engine.
// Slots is the sparse index -> value store behind the dynamic collection.
package primitives

import "sort"

// Slots maps a non-negative index to a counter value.
//
// Absent indices read as the default value 0. The zero Slots is empty and ready to
// use. Slots is a value type: With returns a new Slots and never touches the
// receiver, so a previous state stays valid after a reducer step.
//
// The active range [0, count) is supplied by the caller; entries outside it are
// retained and reappear when the range grows again.
type Slots struct {
	values map[int]int
}

// NewSlots builds Slots from an index -> value map (copied).
func NewSlots(values map[int]int) Slots {
	s := Slots{values: make(map[int]int, len(values))}
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// Get returns the value at index, or 0 if nothing was ever written there.
func (s Slots) Get(index int) int {
	return s.values[index]
}

// Has reports whether index has been materialized.
func (s Slots) Has(index int) bool {
	_, ok := s.values[index]
	return ok
}

// With returns a copy of s with index set to value.
func (s Slots) With(index, value int) Slots {
	next := Slots{values: make(map[int]int, len(s.values)+1)}
	for k, v := range s.values {
		next.values[k] = v
	}
	next.values[index] = value
	return next
}

// Len is the number of materialized indices, visible or not.
func (s Slots) Len() int {
	return len(s.values)
}

// Active returns the indices in [0, count) in order. count <= 0 yields none.
func (s Slots) Active(count int) []int {
	if count <= 0 {
		return nil
	}
	out := make([]int, count)
	for i := range out {
		out[i] = i
	}
	return out
}

// Hidden returns the materialized indices outside [0, count), ascending.
func (s Slots) Hidden(count int) []int {
	var out []int
	for k := range s.values {
		if k < 0 || k >= count {
			out = append(out, k)
		}
	}
	sort.Ints(out)
	return out
}

// Snapshot returns a serializable copy of the materialized entries.
func (s Slots) Snapshot() map[int]int {
	snap := make(map[int]int, len(s.values))
	for k, v := range s.values {
		snap[k] = v
	}
	return snap
}
