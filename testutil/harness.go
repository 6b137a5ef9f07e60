package testutil

import (
	"testing"

	"github.com/comalice/reducerx"
	"github.com/comalice/reducerx/internal/primitives"
)

// Factory mounts a gallery. Every scenario suite runs against each factory in
// Factories so code-built and config-built galleries are held to the same
// behavior.
type Factory struct {
	Name string
	New  func(opts ...reducerx.Option) (*reducerx.Gallery, error)
}

// Factories returns the code-built and the config-built default gallery.
func Factories() []Factory {
	return []Factory{
		{
			Name: "Code",
			New: func(opts ...reducerx.Option) (*reducerx.Gallery, error) {
				return reducerx.DefaultGallery(opts...), nil
			},
		},
		{
			Name: "Config",
			New: func(opts ...reducerx.Option) (*reducerx.Gallery, error) {
				return reducerx.FromConfig(primitives.DefaultGalleryConfig(), opts...)
			},
		},
	}
}

// Harness drives a Gallery by section title and counter label the way a user
// would, failing the test on lookup errors.
type Harness struct {
	t testing.TB
	g *reducerx.Gallery
}

// New wraps g and unmounts it when the test ends.
func New(t testing.TB, g *reducerx.Gallery) *Harness {
	t.Helper()
	t.Cleanup(g.Unmount)
	return &Harness{t: t, g: g}
}

// Mount builds a gallery with f and wraps it.
func Mount(t testing.TB, f Factory, opts ...reducerx.Option) *Harness {
	t.Helper()
	g, err := f.New(opts...)
	if err != nil {
		t.Fatalf("%s: mount failed: %v", f.Name, err)
	}
	return New(t, g)
}

// Gallery returns the driven gallery.
func (h *Harness) Gallery() *reducerx.Gallery { return h.g }

// Press triggers op on a visible counter.
func (h *Harness) Press(section, label string, op reducerx.Op) {
	h.t.Helper()
	if err := h.g.Trigger(section, label, op); err != nil {
		h.t.Fatalf("press %s/%s %s: %v", section, label, op, err)
	}
}

// PressN presses n times.
func (h *Harness) PressN(section, label string, op reducerx.Op, n int) {
	h.t.Helper()
	for i := 0; i < n; i++ {
		h.Press(section, label, op)
	}
}

// Value reads the displayed value of a visible counter.
func (h *Harness) Value(section, label string) int {
	h.t.Helper()
	return h.props(section, label).State
}

// Step reads the step a visible counter would apply right now.
func (h *Harness) Step(section, label string) int {
	h.t.Helper()
	return h.props(section, label).By
}

// Visible lists the labels shown in section, in order.
func (h *Harness) Visible(section string) []string {
	h.t.Helper()
	rows, err := h.g.Rows(section)
	if err != nil {
		h.t.Fatalf("rows %s: %v", section, err)
	}
	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = r.Label
	}
	return labels
}

func (h *Harness) props(section, label string) reducerx.CounterProps {
	h.t.Helper()
	rows, err := h.g.Rows(section)
	if err != nil {
		h.t.Fatalf("rows %s: %v", section, err)
	}
	for _, r := range rows {
		if r.Label == label {
			return r
		}
	}
	h.t.Fatalf("%s/%s is not visible", section, label)
	return reducerx.CounterProps{}
}
