package reducerx

import (
	"fmt"

	"github.com/comalice/reducerx/internal/core"
	"github.com/comalice/reducerx/internal/primitives"
)

// Basic is a single counter whose step is bound by its reducer. Only the tag of
// an injected action reaches the store.
type Basic struct {
	title string
	label string
	by    int
	store *core.Store[int, primitives.Op]
}

// NewBasic mounts the default single counter.
func NewBasic(opts ...Option) *Basic {
	b, err := newBasic(defaultExample(primitives.Basic), newSettings(opts))
	if err != nil {
		panic(err)
	}
	return b
}

func newBasic(ex primitives.ExampleConfig, s *settings) (*Basic, error) {
	if err := checkExample(ex, primitives.Basic); err != nil {
		return nil, err
	}
	c := ex.Counters[0]
	by := c.StepOrDefault()
	title := ex.TitleOrKind()
	return &Basic{
		title: title,
		label: c.Label,
		by:    by,
		store: core.NewStore(title, core.DefaultState, core.Fixed(by), s.storeOptions()...),
	}, nil
}

func (b *Basic) Title() string { return b.title }
func (b *Basic) Kind() Kind { return primitives.Basic }

// Value is the current count.
func (b *Basic) Value() int { return b.store.State() }

func (b *Basic) Counters() []CounterProps {
	return []CounterProps{{
		Label: b.label,
		By:    b.by,
		State: b.store.State(),
		Inject: func(a Action) {
			b.store.Inject(tagOf(a))
		},
	}}
}

func (b *Basic) Links() []Link { return nil }

func (b *Basic) Mounted() bool { return b.store.Mounted() }

func (b *Basic) Unmount() { b.store.Unmount() }

// tagOf keeps only the tag; nil becomes an empty tag the reducer rejects.
func tagOf(a Action) primitives.Op {
	if a == nil {
		return ""
	}
	return a.Op()
}

func defaultExample(kind primitives.Kind) primitives.ExampleConfig {
	for _, ex := range primitives.DefaultGalleryConfig().Examples {
		if ex.Kind == kind {
			return ex
		}
	}
	return primitives.ExampleConfig{Kind: kind}
}

func checkExample(ex primitives.ExampleConfig, kind primitives.Kind) error {
	if ex.Kind != kind {
		return fmt.Errorf("%w: got %s example, want %s", ErrKindMismatch, ex.Kind, kind)
	}
	if err := ex.Validate(); err != nil {
		return fmt.Errorf("%s: %w", ex.TitleOrKind(), err)
	}
	return nil
}
