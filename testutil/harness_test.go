package testutil

import (
	"testing"

	"go.uber.org/goleak"

	"github.com/comalice/reducerx"
	"github.com/comalice/reducerx/internal/extensibility"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestScenarios runs the same scenarios on every factory.
func TestScenarios(t *testing.T) {
	for _, f := range Factories() {
		t.Run(f.Name, func(t *testing.T) {
			t.Run("Basic", func(t *testing.T) {
				h := Mount(t, f)
				h.PressN("basic", "counter", reducerx.OpIncrement, 3)
				h.Press("basic", "counter", reducerx.OpDecrement)
				if got := h.Value("basic", "counter"); got != 2 {
					t.Errorf("counter = %d, want 2", got)
				}
			})

			t.Run("ParallelIndependence", func(t *testing.T) {
				h := Mount(t, f)
				h.PressN("parallel", "first", reducerx.OpIncrement, 4)
				h.PressN("parallel", "second", reducerx.OpDecrement, 2)
				h.Press("parallel", "first", reducerx.OpDecrement)
				if got := h.Value("parallel", "first"); got != 3 {
					t.Errorf("first = %d, want 3", got)
				}
				if got := h.Value("parallel", "second"); got != -2 {
					t.Errorf("second = %d, want -2", got)
				}
			})

			t.Run("DerivedStep", func(t *testing.T) {
				h := Mount(t, f)
				h.PressN("sequential", "first", reducerx.OpIncrement, 3)
				if got := h.Step("sequential", "second"); got != 3 {
					t.Fatalf("second step = %d, want 3", got)
				}
				h.Press("sequential", "second", reducerx.OpIncrement)
				if got := h.Value("sequential", "second"); got != 3 {
					t.Errorf("second = %d, want 3", got)
				}

				// The step follows the first counter on the next render.
				h.Press("sequential", "first", reducerx.OpDecrement)
				if got := h.Step("sequential", "second"); got != 2 {
					t.Errorf("second step after decrement = %d, want 2", got)
				}
			})

			t.Run("CollectionRetention", func(t *testing.T) {
				h := Mount(t, f)
				h.PressN("multiplicity", "how many", reducerx.OpIncrement, 2)
				assertLabels(t, h.Visible("multiplicity"), "how many", "0", "1")
				if got := h.Value("multiplicity", "1"); got != 0 {
					t.Fatalf("new slot = %d, want 0", got)
				}

				h.PressN("multiplicity", "1", reducerx.OpIncrement, 5)
				h.Press("multiplicity", "how many", reducerx.OpIncrement)
				assertLabels(t, h.Visible("multiplicity"), "how many", "0", "1", "2")

				h.PressN("multiplicity", "how many", reducerx.OpDecrement, 2)
				assertLabels(t, h.Visible("multiplicity"), "how many", "0")

				h.Press("multiplicity", "how many", reducerx.OpIncrement)
				if got := h.Value("multiplicity", "1"); got != 5 {
					t.Errorf("retained slot = %d, want 5", got)
				}
			})

			t.Run("UnknownAction", func(t *testing.T) {
				rep := &extensibility.CollectingReporter{}
				h := Mount(t, f, reducerx.WithReporter(rep))
				h.Press("parallel", "first", reducerx.OpIncrement)

				err := h.Gallery().Trigger("parallel", "first", reducerx.Op("reset"))
				if err == nil {
					t.Fatal("expected an error for an unknown op")
				}
				if got := h.Value("parallel", "first"); got != 1 {
					t.Errorf("first = %d after unknown op, want 1", got)
				}
				if rep.Count() != 1 {
					t.Errorf("reports = %d, want 1", rep.Count())
				}
			})
		})
	}
}

func assertLabels(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("labels = %v, want %v", got, want)
		}
	}
}
