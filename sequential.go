package reducerx

import (
	"fmt"

	"github.com/comalice/reducerx/internal/core"
	"github.com/comalice/reducerx/internal/extensibility"
	"github.com/comalice/reducerx/internal/primitives"
)

// Sequential is two named counters where the second one steps by a projection
// of the state, by default the first counter's current value. The step is
// recomputed on every call to Counters and never stored.
type Sequential struct {
	title    string
	counters [2]primitives.CounterConfig
	program  *extensibility.StepProgram
	reporter core.Reporter
	store    *core.Store[core.Pair, primitives.Routed[core.Slot]]
}

// NewSequential mounts the default derived-step pair.
func NewSequential(opts ...Option) *Sequential {
	q, err := newSequential(defaultExample(primitives.Sequential), newSettings(opts))
	if err != nil {
		panic(err)
	}
	return q
}

func newSequential(ex primitives.ExampleConfig, s *settings) (*Sequential, error) {
	if err := checkExample(ex, primitives.Sequential); err != nil {
		return nil, err
	}
	title := ex.TitleOrKind()
	q := &Sequential{
		title:    title,
		counters: [2]primitives.CounterConfig{ex.Counters[0], ex.Counters[1]},
		reporter: s.reporter,
	}
	if src := ex.Counters[1].Step; src != "" {
		prog, err := s.steps.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("%s: counter[1]: %w", title, err)
		}
		q.program = prog
	}
	q.store = core.NewStore(title, core.DefaultPair, core.ApplyPair, s.storeOptions()...)
	return q, nil
}

func (q *Sequential) Title() string { return q.title }
func (q *Sequential) Kind() Kind { return primitives.Sequential }

// State is the current pair.
func (q *Sequential) State() core.Pair { return q.store.State() }

// Step is the current step of the second counter.
func (q *Sequential) Step() int {
	by, _ := q.step(q.store.State())
	return by
}

// step falls back to the static step when the expression fails. The error is
// only reported when the second counter is actually triggered, so rendering
// does not repeat it.
func (q *Sequential) step(p core.Pair) (int, error) {
	if q.program == nil {
		return core.DerivedStep(p), nil
	}
	by, err := q.program.Eval(p.Env())
	if err != nil {
		return q.counters[1].StepOrDefault(), fmt.Errorf("%s: %w", q.counters[1].Label, err)
	}
	return by, nil
}

func (q *Sequential) Counters() []CounterProps {
	st := q.store.State()
	by, err := q.step(st)
	second := pairProps(q.store, core.Second, q.counters[1], by, st.Second)
	if err != nil {
		inject := second.Inject
		second.Inject = func(a Action) {
			q.reporter.Report(q.title, err)
			inject(a)
		}
	}
	return []CounterProps{
		pairProps(q.store, core.First, q.counters[0], q.counters[0].StepOrDefault(), st.First),
		second,
	}
}

func (q *Sequential) Links() []Link {
	label := "step"
	if q.program != nil {
		label = q.program.Source()
	}
	return []Link{{From: q.counters[0].Label, To: q.counters[1].Label, Label: label}}
}

func (q *Sequential) Mounted() bool { return q.store.Mounted() }

func (q *Sequential) Unmount() { q.store.Unmount() }
