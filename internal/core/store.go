// Package core provides the runtime core tier of the reducer engine.
// This includes the counter reducer, the composition reducers and the Store that
// owns one piece of state for the lifetime of a mounted component.
// Dependencies: internal/primitives, zap for logging, uuid for mount IDs.
// Pluggable components are declared here and implemented in extensibility/production.
package core

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/comalice/reducerx/internal/primitives"
)

// ErrUnmounted is returned by Dispatch after Unmount.
var ErrUnmounted = errors.New("store unmounted")

// Pluggable component interfaces.

// Reporter receives the errors a reducer detects. Reducers themselves stay pure;
// the Store is the point where a detected bug becomes a report.
type Reporter interface {
	Report(scope string, err error)
}

// Observer is notified of every dispatch and of mount lifecycle changes.
type Observer interface {
	ObserveDispatch(store string, op primitives.Op, err error)
	ObserveMount(store string, mounted bool)
}

// Publisher receives a record of every dispatch, successful or not.
type Publisher interface {
	Publish(t Transition) error
}

// Transition is the record of one dispatch.
type Transition struct {
	StoreID   string        `json:"storeID" yaml:"storeID"`
	Store     string        `json:"store" yaml:"store"`
	Action    string        `json:"action" yaml:"action"`
	Op        primitives.Op `json:"op,omitempty" yaml:"op,omitempty"`
	Before    any           `json:"before" yaml:"before"`
	After     any           `json:"after" yaml:"after"`
	Err       string        `json:"error,omitempty" yaml:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp" yaml:"timestamp"`
}

// Store owns one state value and is its only mutation path.
//
// Dispatch is synchronous: reduce, store, report/observe/publish, then notify
// subscribers, all before returning. Nothing runs in the background. A Store is
// meant to be driven from a single goroutine and carries no locks.
type Store[S, A any] struct {
	id        string
	name      string
	state     S
	reduce    Reducer[S, A]
	mounted   bool
	listeners map[int]func(S)
	nextID    int
	opts      options
}

// NewStore mounts a store holding initial() and mutated only through reduce.
func NewStore[S, A any](name string, initial func() S, reduce Reducer[S, A], opts ...Option) *Store[S, A] {
	s := &Store[S, A]{
		id:        uuid.NewString(),
		name:      name,
		state:     initial(),
		reduce:    reduce,
		mounted:   true,
		listeners: make(map[int]func(S)),
		opts:      defaultOptions(),
	}

	// Apply functional options
	for _, opt := range opts {
		opt(&s.opts)
	}
	s.opts.logger = s.opts.logger.With(zap.String("store", name), zap.String("id", s.id))
	if s.opts.reporter == nil {
		s.opts.reporter = logReporter{logger: s.opts.logger}
	}

	if s.opts.observer != nil {
		s.opts.observer.ObserveMount(s.name, true)
	}
	s.opts.logger.Debug("store mounted")
	return s
}

// ID is unique per mount.
func (s *Store[S, A]) ID() string { return s.id }

// Name is the scope the store was created with.
func (s *Store[S, A]) Name() string { return s.name }

// State returns the current state.
func (s *Store[S, A]) State() S { return s.state }

// Mounted reports whether Unmount has not been called yet.
func (s *Store[S, A]) Mounted() bool { return s.mounted }

// Dispatch applies action. On a reducer error the state is left as it was, the
// error is reported and returned. Subscribers are only notified of successful
// transitions.
func (s *Store[S, A]) Dispatch(action A) error {
	op := opOf(action)
	if !s.mounted {
		err := fmt.Errorf("dispatch %v to %s: %w", action, s.name, ErrUnmounted)
		s.opts.reporter.Report(s.name, err)
		if s.opts.observer != nil {
			s.opts.observer.ObserveDispatch(s.name, op, err)
		}
		return err
	}

	before := s.state
	next, err := s.reduce(before, action)
	if err != nil {
		// Keep the prior state: a failed step must not leak a half-built value.
		next = before
		s.opts.reporter.Report(s.name, err)
	} else {
		s.state = next
		s.opts.logger.Debug("dispatch", zap.Stringer("action", stringer{action}))
	}

	if s.opts.observer != nil {
		s.opts.observer.ObserveDispatch(s.name, op, err)
	}
	if s.opts.publisher != nil {
		t := Transition{
			StoreID:   s.id,
			Store:     s.name,
			Action:    fmt.Sprint(action),
			Op:        op,
			Before:    before,
			After:     next,
			Timestamp: s.opts.clock(),
		}
		if err != nil {
			t.Err = err.Error()
		}
		if perr := s.opts.publisher.Publish(t); perr != nil {
			s.opts.logger.Warn("publish failed", zap.Error(perr))
		}
	}
	if err != nil {
		return err
	}

	for _, fn := range s.subscribers() {
		fn(s.state)
	}
	return nil
}

// Inject is Dispatch for callers that hold only an injector: the error has
// already been reported.
func (s *Store[S, A]) Inject(action A) {
	_ = s.Dispatch(action)
}

// Subscribe registers fn to run after every successful dispatch, in
// subscription order. The returned function cancels the subscription.
func (s *Store[S, A]) Subscribe(fn func(S)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}

func (s *Store[S, A]) subscribers() []func(S) {
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]func(S), len(ids))
	for i, id := range ids {
		out[i] = s.listeners[id]
	}
	return out
}

// Unmount discards the state and drops all subscribers.
// Safe to call multiple times.
func (s *Store[S, A]) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false
	var zero S
	s.state = zero
	s.listeners = make(map[int]func(S))
	if s.opts.observer != nil {
		s.opts.observer.ObserveMount(s.name, false)
	}
	s.opts.logger.Debug("store unmounted")
}

// opOf extracts the tag from actions that carry one.
func opOf(action any) primitives.Op {
	switch a := action.(type) {
	case primitives.Op:
		return a
	case interface{ Op() primitives.Op }:
		return a.Op()
	default:
		return ""
	}
}

type stringer struct{ v any }

func (s stringer) String() string { return fmt.Sprint(s.v) }

// logReporter is used when no Reporter option is given.
type logReporter struct {
	logger *zap.Logger
}

func (r logReporter) Report(scope string, err error) {
	r.logger.Error("BUG", zap.String("scope", scope), zap.Error(err))
}
