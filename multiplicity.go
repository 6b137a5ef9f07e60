package reducerx

import (
	"github.com/comalice/reducerx/internal/core"
	"github.com/comalice/reducerx/internal/primitives"
)

// Multiplicity is a "how many" counter followed by that many item counters.
// Count and items live in separate stores. Items past the count are hidden but
// keep their values, so they reappear unchanged when the count grows again.
type Multiplicity struct {
	title string
	count primitives.CounterConfig
	item  primitives.CounterConfig
	size  *core.Store[int, primitives.Action]
	slots *core.Store[primitives.Slots, primitives.Routed[int]]
}

// NewMultiplicity mounts the default dynamic list.
func NewMultiplicity(opts ...Option) *Multiplicity {
	m, err := newMultiplicity(defaultExample(primitives.Multiplicity), newSettings(opts))
	if err != nil {
		panic(err)
	}
	return m
}

func newMultiplicity(ex primitives.ExampleConfig, s *settings) (*Multiplicity, error) {
	if err := checkExample(ex, primitives.Multiplicity); err != nil {
		return nil, err
	}
	title := ex.TitleOrKind()
	opts := s.storeOptions()
	return &Multiplicity{
		title: title,
		count: ex.Counters[0],
		item:  ex.Counters[1],
		size:  core.NewStore(title+"/count", core.DefaultState, core.Apply, opts...),
		slots: core.NewStore(title+"/slots", core.DefaultSlots, core.ApplySlots, opts...),
	}, nil
}

func (m *Multiplicity) Title() string { return m.title }
func (m *Multiplicity) Kind() Kind { return primitives.Multiplicity }

// Count is the current value of the "how many" counter.
func (m *Multiplicity) Count() int { return m.size.State() }

// Slots is the full item state, hidden entries included.
func (m *Multiplicity) Slots() primitives.Slots { return m.slots.State() }

// ItemLabel is the label of item i.
func (m *Multiplicity) ItemLabel(i int) string { return primitives.ItemLabel(m.item.Label, i) }

func (m *Multiplicity) Counters() []CounterProps {
	count := m.size.State()
	slots := m.slots.State()
	active := slots.Active(count)

	props := make([]CounterProps, 0, len(active)+1)
	props = append(props, CounterProps{
		Label:  m.count.Label,
		By:     m.count.StepOrDefault(),
		State:  count,
		Inject: m.size.Inject,
	})
	by := m.item.StepOrDefault()
	for _, i := range active {
		props = append(props, CounterProps{
			Label: m.ItemLabel(i),
			By:    by,
			State: slots.Get(i),
			Inject: func(a Action) {
				m.slots.Inject(primitives.Route(i, a))
			},
		})
	}
	return props
}

func (m *Multiplicity) Links() []Link {
	active := m.slots.State().Active(m.size.State())
	links := make([]Link, 0, len(active))
	for _, i := range active {
		links = append(links, Link{From: m.count.Label, To: m.ItemLabel(i), Label: "count"})
	}
	return links
}

func (m *Multiplicity) Mounted() bool { return m.size.Mounted() && m.slots.Mounted() }

func (m *Multiplicity) Unmount() {
	m.size.Unmount()
	m.slots.Unmount()
}
