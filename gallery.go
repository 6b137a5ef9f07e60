package reducerx

import (
	"errors"
	"fmt"

	"github.com/comalice/reducerx/internal/primitives"
)

var (
	ErrNotFound     = errors.New("section or counter not found")
	ErrExists       = errors.New("constructor already registered")
	ErrKindMismatch = errors.New("example kind mismatch")
)

// Gallery is a page of examples, concatenated without shared state.
type Gallery struct {
	id         string
	components []Component
}

// NewGallery composes components in order.
func NewGallery(id string, components ...Component) *Gallery {
	return &Gallery{id: id, components: components}
}

// DefaultGallery mounts the four default examples.
func DefaultGallery(opts ...Option) *Gallery {
	return NewGallery("counters",
		NewBasic(opts...),
		NewParallel(opts...),
		NewSequential(opts...),
		NewMultiplicity(opts...),
	)
}

// ID names the gallery.
func (g *Gallery) ID() string { return g.id }

// Components returns the examples in page order.
func (g *Gallery) Components() []Component {
	return append([]Component(nil), g.components...)
}

// Component returns the example titled title.
func (g *Gallery) Component(title string) (Component, error) {
	for _, c := range g.components {
		if c.Title() == title {
			return c, nil
		}
	}
	return nil, fmt.Errorf("section %q: %w", title, ErrNotFound)
}

// Sections snapshots every example.
func (g *Gallery) Sections() []Section {
	out := make([]Section, len(g.components))
	for i, c := range g.components {
		out[i] = SectionOf(c)
	}
	return out
}

// Rows returns the current props of section.
func (g *Gallery) Rows(section string) ([]CounterProps, error) {
	c, err := g.Component(section)
	if err != nil {
		return nil, err
	}
	return c.Counters(), nil
}

// Trigger presses the op button of the visible counter label in section.
// A missing section or hidden counter is ErrNotFound. An unknown op reaches the
// reducer, which reports it; Trigger then returns the UnknownAction error too.
// Triggering an unmounted example is reported by its store and returns
// ErrUnmounted.
func (g *Gallery) Trigger(section, label string, op Op) error {
	c, err := g.Component(section)
	if err != nil {
		return err
	}
	p, ok := find(c, label)
	if !ok {
		return fmt.Errorf("%s/%s: %w", section, label, ErrNotFound)
	}
	p.Trigger(op)
	if !c.Mounted() {
		return fmt.Errorf("%s/%s: %w", section, label, ErrUnmounted)
	}
	if !op.Valid() {
		return primitives.UnknownAction(section, string(op))
	}
	return nil
}

// Unmount unmounts every example.
func (g *Gallery) Unmount() {
	for _, c := range g.components {
		c.Unmount()
	}
}
