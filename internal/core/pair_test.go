package core

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/reducerx/internal/primitives"
)

func TestParseSlot(t *testing.T) {
	s, err := ParseSlot(" First ")
	require.NoError(t, err)
	assert.Equal(t, First, s)

	s, err = ParseSlot("second")
	require.NoError(t, err)
	assert.Equal(t, Second, s)

	_, err = ParseSlot("third")
	assert.ErrorIs(t, err, primitives.ErrUnknownAction)
}

func TestApplyPair_Routing(t *testing.T) {
	p := DefaultPair()

	p, err := ApplyPair(p, primitives.Route(First, primitives.Action(primitives.Increment{By: 2})))
	require.NoError(t, err)
	assert.Equal(t, Pair{First: 2, Second: 0}, p)

	p, err = ApplyPair(p, primitives.Route(Second, primitives.Action(primitives.Decrement{By: 5})))
	require.NoError(t, err)
	assert.Equal(t, Pair{First: 2, Second: -5}, p)
}

func TestApplyPair_UnknownRouting(t *testing.T) {
	start := Pair{First: 4, Second: 9}

	got, err := ApplyPair(start, primitives.Route(Slot("third"), primitives.Action(primitives.Increment{By: 1})))
	require.ErrorIs(t, err, primitives.ErrUnknownAction)
	assert.Equal(t, start, got, "no slot may change on a bad routing key")

	got, err = ApplyPair(start, primitives.Routed[Slot]{Which: First})
	require.ErrorIs(t, err, primitives.ErrUnknownAction)
	assert.Equal(t, start, got, "sibling must survive an unknown sub-action")
}

// Interleaved actions on one slot never move the other.
func TestApplyPair_Independence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := DefaultPair()
	var wantFirst, wantSecond int

	for i := 0; i < 500; i++ {
		by := rng.Intn(10) + 1
		var sub primitives.Action = primitives.Increment{By: by}
		delta := by
		if rng.Intn(2) == 0 {
			sub = primitives.Decrement{By: by}
			delta = -by
		}
		which := First
		if rng.Intn(2) == 0 {
			which = Second
		}

		before := p
		var err error
		p, err = ApplyPair(p, primitives.Route(which, sub))
		require.NoError(t, err)

		if which == First {
			wantFirst += delta
			assert.Equal(t, before.Second, p.Second, "step %d: second moved", i)
		} else {
			wantSecond += delta
			assert.Equal(t, before.First, p.First, "step %d: first moved", i)
		}
	}
	if diff := cmp.Diff(Pair{First: wantFirst, Second: wantSecond}, p); diff != "" {
		t.Errorf("final pair mismatch (-want +got):\n%s", diff)
	}
}

func TestDerivedStep(t *testing.T) {
	p := DefaultPair()
	var err error
	for i := 0; i < 3; i++ {
		p, err = ApplyPair(p, primitives.Route(First, primitives.Action(primitives.Increment{By: 1})))
		require.NoError(t, err)
	}
	step := DerivedStep(p)
	require.Equal(t, 3, step)

	p, err = ApplyPair(p, primitives.Route(Second, primitives.Action(primitives.Increment{By: step})))
	require.NoError(t, err)
	assert.Equal(t, 3, p.Second)

	assert.Equal(t, map[string]int{"first": 3, "second": 3}, p.Env())
}
