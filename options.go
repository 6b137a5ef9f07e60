package reducerx

import (
	"time"

	"go.uber.org/zap"

	"github.com/comalice/reducerx/internal/core"
	"github.com/comalice/reducerx/internal/extensibility"
)

// Option configures the stores an example mounts.
type Option func(*settings)

type settings struct {
	logger    *zap.Logger
	reporter  core.Reporter
	observer  core.Observer
	publisher core.Publisher
	clock     func() time.Time
	steps     *extensibility.StepEvaluator
}

func newSettings(opts []Option) *settings {
	s := &settings{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.reporter == nil {
		s.reporter = extensibility.NewLoggingReporter(s.logger)
	}
	if s.steps == nil {
		s.steps = extensibility.NewStepEvaluator()
	}
	return s
}

func (s *settings) storeOptions() []core.Option {
	opts := []core.Option{
		core.WithLogger(s.logger),
		core.WithReporter(s.reporter),
	}
	if s.observer != nil {
		opts = append(opts, core.WithObserver(s.observer))
	}
	if s.publisher != nil {
		opts = append(opts, core.WithPublisher(s.publisher))
	}
	if s.clock != nil {
		opts = append(opts, core.WithClock(s.clock))
	}
	return opts
}

// WithLogger sets the logger of every store. nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithReporter receives every detected bug, including failed step expressions.
// Without it bugs are logged at error level.
func WithReporter(r core.Reporter) Option {
	return func(s *settings) {
		s.reporter = r
	}
}

// WithObserver observes every dispatch and mount.
func WithObserver(o core.Observer) Option {
	return func(s *settings) {
		s.observer = o
	}
}

// WithPublisher receives a transition record per dispatch.
func WithPublisher(p core.Publisher) Option {
	return func(s *settings) {
		s.publisher = p
	}
}

// WithClock overrides the transition timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		s.clock = now
	}
}

// WithStepEvaluator shares a compiled-expression cache between examples.
func WithStepEvaluator(e *extensibility.StepEvaluator) Option {
	return func(s *settings) {
		s.steps = e
	}
}
