package production

import (
	"fmt"
	"io"
	"sync"

	"github.com/comalice/reducerx/internal/core"
)

// DefaultJournalSize is used when NewJournalPublisher is given a non-positive limit.
const DefaultJournalSize = 256

// JournalPublisher keeps the most recent transitions in a ring.
type JournalPublisher struct {
	mu      sync.Mutex
	limit   int
	entries []core.Transition
	next    int
	total   int
}

var _ core.Publisher = (*JournalPublisher)(nil)

// NewJournalPublisher creates a journal holding at most limit transitions.
func NewJournalPublisher(limit int) *JournalPublisher {
	if limit <= 0 {
		limit = DefaultJournalSize
	}
	return &JournalPublisher{limit: limit, entries: make([]core.Transition, 0, limit)}
}

// Publish appends t, evicting the oldest entry when full. Never fails.
func (j *JournalPublisher) Publish(t core.Transition) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.total++
	if len(j.entries) < j.limit {
		j.entries = append(j.entries, t)
		return nil
	}
	j.entries[j.next] = t
	j.next = (j.next + 1) % j.limit
	return nil
}

// Entries returns the retained transitions, oldest first.
func (j *JournalPublisher) Entries() []core.Transition {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]core.Transition, 0, len(j.entries))
	out = append(out, j.entries[j.next:]...)
	out = append(out, j.entries[:j.next]...)
	return out
}

// Total is the number of transitions ever published, including evicted ones.
func (j *JournalPublisher) Total() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.total
}

// WriteTo prints one line per retained transition.
func (j *JournalPublisher) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, t := range j.Entries() {
		line := fmt.Sprintf("%s %-10s %-16s %v -> %v", t.Timestamp.Format("15:04:05.000"), t.Store, t.Action, t.Before, t.After)
		if t.Err != "" {
			line += "  ! " + t.Err
		}
		c, err := fmt.Fprintln(w, line)
		n += int64(c)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// ChannelPublisher forwards transitions to a Go channel.
// Publish never blocks: when the channel is full the transition is dropped and
// counted.
type ChannelPublisher struct {
	ch      chan<- core.Transition
	mu      sync.Mutex
	dropped int
}

var _ core.Publisher = (*ChannelPublisher)(nil)

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- core.Transition) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

// Publish sends t if there is room.
func (p *ChannelPublisher) Publish(t core.Transition) error {
	select {
	case p.ch <- t:
	default:
		p.mu.Lock()
		p.dropped++
		p.mu.Unlock()
	}
	return nil
}

// Dropped is the number of transitions discarded on a full channel.
func (p *ChannelPublisher) Dropped() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dropped
}

// Close closes the output channel.
func (p *ChannelPublisher) Close() error {
	close(p.ch)
	return nil
}

// MultiPublisher publishes to each publisher in order and returns the first error.
type MultiPublisher []core.Publisher

// Publish forwards t to every publisher, even after a failure.
func (m MultiPublisher) Publish(t core.Transition) error {
	var first error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Publish(t); err != nil && first == nil {
			first = err
		}
	}
	return first
}
