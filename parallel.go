package reducerx

import (
	"github.com/comalice/reducerx/internal/core"
	"github.com/comalice/reducerx/internal/primitives"
)

// Parallel is two named counters in one Pair state. Each injector routes to its
// own slot; neither can move the other.
type Parallel struct {
	title    string
	counters [2]primitives.CounterConfig
	store    *core.Store[core.Pair, primitives.Routed[core.Slot]]
}

// NewParallel mounts the default pair of independent counters.
func NewParallel(opts ...Option) *Parallel {
	p, err := newParallel(defaultExample(primitives.Parallel), newSettings(opts))
	if err != nil {
		panic(err)
	}
	return p
}

func newParallel(ex primitives.ExampleConfig, s *settings) (*Parallel, error) {
	if err := checkExample(ex, primitives.Parallel); err != nil {
		return nil, err
	}
	title := ex.TitleOrKind()
	return &Parallel{
		title:    title,
		counters: [2]primitives.CounterConfig{ex.Counters[0], ex.Counters[1]},
		store:    core.NewStore(title, core.DefaultPair, core.ApplyPair, s.storeOptions()...),
	}, nil
}

func (p *Parallel) Title() string { return p.title }
func (p *Parallel) Kind() Kind { return primitives.Parallel }

// State is the current pair.
func (p *Parallel) State() core.Pair { return p.store.State() }

func (p *Parallel) Counters() []CounterProps {
	st := p.store.State()
	return []CounterProps{
		pairProps(p.store, core.First, p.counters[0], p.counters[0].StepOrDefault(), st.First),
		pairProps(p.store, core.Second, p.counters[1], p.counters[1].StepOrDefault(), st.Second),
	}
}

func (p *Parallel) Links() []Link { return nil }

func (p *Parallel) Mounted() bool { return p.store.Mounted() }

func (p *Parallel) Unmount() { p.store.Unmount() }

func pairProps(store *core.Store[core.Pair, primitives.Routed[core.Slot]], slot core.Slot, c primitives.CounterConfig, by, value int) CounterProps {
	return CounterProps{
		Label: c.Label,
		By:    by,
		State: value,
		Inject: func(a Action) {
			store.Inject(primitives.Route(slot, a))
		},
	}
}
