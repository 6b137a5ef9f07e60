// Package primitives provides the foundational, dependency-free data structures
// for the reducer engine.
//
// This package uses ONLY the Go standard library plus yaml.v3 for config files.
//
// Core invariants:
//   - Actions are a closed set (Increment, Decrement); unknown tags are rejected
//     when an Action is constructed from a string
//   - Values are plain ints with default 0 and no bounds
//   - Slots never forget a value: shrinking the active range only hides entries
//   - Nothing in here is mutated in place; "With" methods return copies
package primitives
