package core

import (
	"time"

	"go.uber.org/zap"
)

// Option applies configuration to a Store via functional options pattern.
type Option func(*options)

type options struct {
	logger    *zap.Logger
	reporter  Reporter
	observer  Observer
	publisher Publisher
	clock     func() time.Time
}

func defaultOptions() options {
	return options{
		logger: zap.NewNop(),
		clock:  time.Now,
	}
}

// WithLogger configures the Store logger. nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithReporter configures where detected bugs are reported.
// Without it the Store logs them at error level.
func WithReporter(r Reporter) Option {
	return func(o *options) {
		o.reporter = r
	}
}

// WithObserver configures the Store with a dispatch Observer.
func WithObserver(ob Observer) Option {
	return func(o *options) {
		o.observer = ob
	}
}

// WithPublisher configures the Store with a transition Publisher.
func WithPublisher(p Publisher) Option {
	return func(o *options) {
		o.publisher = p
	}
}

// WithClock overrides the timestamp source for published transitions.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}
