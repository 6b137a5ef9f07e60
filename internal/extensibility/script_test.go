package extensibility

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/reducerx/internal/primitives"
)

const sampleScript = `
# warm up
counter/counter +
parallel/second dec

how many/how many  increment
how many/0	-
`

func TestParseScript(t *testing.T) {
	s, err := ParseScript(strings.NewReader(sampleScript))
	require.NoError(t, err)

	want := Script{
		{Line: 3, Section: "counter", Label: "counter", Op: primitives.OpIncrement},
		{Line: 4, Section: "parallel", Label: "second", Op: primitives.OpDecrement},
		{Line: 6, Section: "how many", Label: "how many", Op: primitives.OpIncrement},
		{Line: 7, Section: "how many", Label: "0", Op: primitives.OpDecrement},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("ParseScript mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "how many/0 -", s[3].String())
}

func TestParseScript_UnknownOp(t *testing.T) {
	_, err := ParseScript(strings.NewReader("counter/counter +\ncounter/counter reset\n"))
	require.ErrorIs(t, err, primitives.ErrUnknownAction)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseScript_Malformed(t *testing.T) {
	for _, src := range []string{"+", "counter +", "/x +", "counter/ +"} {
		_, err := ParseScript(strings.NewReader(src))
		require.Error(t, err, "input %q", src)
		assert.NotErrorIs(t, err, primitives.ErrUnknownAction)
		assert.Contains(t, err.Error(), "line 1")
	}
}

type recordingTarget struct {
	got  []string
	fail string
}

func (r *recordingTarget) Trigger(section, label string, op primitives.Op) error {
	if label == r.fail {
		return errors.New("no such counter")
	}
	r.got = append(r.got, section+"/"+label+" "+string(op))
	return nil
}

func TestScript_Run(t *testing.T) {
	s, err := ParseScript(strings.NewReader(sampleScript))
	require.NoError(t, err)

	target := &recordingTarget{}
	require.NoError(t, s.Run(context.Background(), target))
	assert.Equal(t, []string{
		"counter/counter increment",
		"parallel/second decrement",
		"how many/how many increment",
		"how many/0 decrement",
	}, target.got)
}

func TestScript_RunStopsAtError(t *testing.T) {
	s, err := ParseScript(strings.NewReader(sampleScript))
	require.NoError(t, err)

	target := &recordingTarget{fail: "second"}
	err = s.Run(context.Background(), target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
	assert.Len(t, target.got, 1)
}

func TestScript_RunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	target := &recordingTarget{}
	err := Script{{Section: "a", Label: "b", Op: primitives.OpIncrement}}.Run(ctx, target)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, target.got)
}
