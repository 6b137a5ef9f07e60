// Package reducerx composes counter reducers into small interactive examples.
//
// Each example owns one or more core.Store values and exposes, per render, the
// props a presentation layer needs: a label, a step, the current value and an
// injector. Examples are concatenated into a Gallery without shared state.
package reducerx

import (
	"github.com/comalice/reducerx/internal/core"
	"github.com/comalice/reducerx/internal/primitives"
)

// Re-exported so callers outside this module can build and inspect actions.
type (
	Action        = primitives.Action
	Increment     = primitives.Increment
	Decrement     = primitives.Decrement
	Op            = primitives.Op
	Kind          = primitives.Kind
	Section       = primitives.Section
	Row           = primitives.Row
	Link          = primitives.Link
	GalleryConfig = primitives.GalleryConfig
)

const (
	OpIncrement = primitives.OpIncrement
	OpDecrement = primitives.OpDecrement
)

// ErrUnknownAction is the only error a reducer produces.
var ErrUnknownAction = primitives.ErrUnknownAction

// ErrUnmounted is returned when triggering an example after Unmount.
var ErrUnmounted = core.ErrUnmounted

// CounterProps is what a presentation layer receives for one counter: what to show
// and where to send triggers.
type CounterProps struct {
	Label string
	By    int
	State int
	// Inject forwards an action to the owning reducer. Errors are reported by the
	// store, never returned to the presentation.
	Inject func(Action)
}

// Increment injects Increment{By}.
func (p CounterProps) Increment() { p.Inject(Increment{By: p.By}) }

// Decrement injects Decrement{By}.
func (p CounterProps) Decrement() { p.Inject(Decrement{By: p.By}) }

// Trigger injects the action for op. Unknown ops are injected as nil so the
// reducer reports them.
func (p CounterProps) Trigger(op Op) {
	a, err := primitives.NewAction(op, p.By)
	if err != nil {
		p.Inject(nil)
		return
	}
	p.Inject(a)
}

// Row is the render snapshot of the props.
func (p CounterProps) Row() Row {
	return Row{Label: p.Label, By: p.By, Value: p.State}
}

// Component is one example on the page.
type Component interface {
	Title() string
	Kind() Kind
	// Counters computes the props of every visible counter. Derived steps and the
	// visible range are evaluated on each call.
	Counters() []CounterProps
	// Links lists read-only dependencies between counters.
	Links() []Link
	// Mounted reports whether the example still accepts actions.
	Mounted() bool
	// Unmount discards all state.
	Unmount()
}

// SectionOf snapshots c for rendering.
func SectionOf(c Component) Section {
	props := c.Counters()
	rows := make([]Row, len(props))
	for i, p := range props {
		rows[i] = p.Row()
	}
	return Section{Title: c.Title(), Kind: c.Kind(), Rows: rows, Links: c.Links()}
}

// find returns the props labelled label, if visible.
func find(c Component, label string) (CounterProps, bool) {
	for _, p := range c.Counters() {
		if p.Label == label {
			return p, true
		}
	}
	return CounterProps{}, false
}
