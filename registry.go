package reducerx

import (
	"fmt"
	"sort"

	"github.com/comalice/reducerx/internal/primitives"
)

// Constructor mounts one example from its configuration.
type Constructor func(ex primitives.ExampleConfig, opts ...Option) (Component, error)

// Registry maps example kinds to constructors.
type Registry struct {
	ctors map[Kind]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[Kind]Constructor)}
}

// DefaultRegistry knows the four built-in kinds.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.ctors[primitives.Basic] = func(ex primitives.ExampleConfig, opts ...Option) (Component, error) {
		return component(newBasic(ex, newSettings(opts)))
	}
	r.ctors[primitives.Parallel] = func(ex primitives.ExampleConfig, opts ...Option) (Component, error) {
		return component(newParallel(ex, newSettings(opts)))
	}
	r.ctors[primitives.Sequential] = func(ex primitives.ExampleConfig, opts ...Option) (Component, error) {
		return component(newSequential(ex, newSettings(opts)))
	}
	r.ctors[primitives.Multiplicity] = func(ex primitives.ExampleConfig, opts ...Option) (Component, error) {
		return component(newMultiplicity(ex, newSettings(opts)))
	}
	return r
}

// component avoids returning a typed nil inside the interface.
func component[T Component](c T, err error) (Component, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Register adds a constructor for kind.
func (r *Registry) Register(kind Kind, ctor Constructor) error {
	if _, ok := r.ctors[kind]; ok {
		return fmt.Errorf("kind %q: %w", kind, ErrExists)
	}
	r.ctors[kind] = ctor
	return nil
}

// Kinds returns the registered kinds, sorted.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, 0, len(r.ctors))
	for k := range r.ctors {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Build mounts one example.
func (r *Registry) Build(ex primitives.ExampleConfig, opts ...Option) (Component, error) {
	ctor, ok := r.ctors[ex.Kind]
	if !ok {
		return nil, fmt.Errorf("kind %q: %w", ex.Kind, ErrNotFound)
	}
	return ctor(ex, opts...)
}

// Gallery validates cfg and mounts every example. On error nothing stays mounted.
func (r *Registry) Gallery(cfg GalleryConfig, opts ...Option) (*Gallery, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	components := make([]Component, 0, len(cfg.Examples))
	for i, ex := range cfg.Examples {
		c, err := r.Build(ex, opts...)
		if err != nil {
			for _, m := range components {
				m.Unmount()
			}
			return nil, fmt.Errorf("example[%d]: %w", i, err)
		}
		components = append(components, c)
	}
	return NewGallery(cfg.ID, components...), nil
}

// FromConfig mounts cfg with the default registry.
func FromConfig(cfg GalleryConfig, opts ...Option) (*Gallery, error) {
	return DefaultRegistry().Gallery(cfg, opts...)
}
