// Tests for DefaultVisualizer text, JSON and DOT export.
package production

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/comalice/reducerx/internal/primitives"
)

func sampleSections() []primitives.Section {
	return []primitives.Section{
		{
			Title: "counter",
			Kind:  primitives.Basic,
			Rows:  []primitives.Row{{Label: "counter", By: 1, Value: 3}},
		},
		{
			Title: "sequential",
			Kind:  primitives.Sequential,
			Rows: []primitives.Row{
				{Label: "first", By: 1, Value: 2},
				{Label: "second", By: 2, Value: -4},
			},
			Links: []primitives.Link{{From: "first", To: "second", Label: "step"}},
		},
	}
}

func TestDefaultVisualizer_ExportText(t *testing.T) {
	v := &DefaultVisualizer{}
	got := v.ExportText(sampleSections())
	want := "counter (basic)\n" +
		"  counter: [-1] 3 [+1]\n" +
		"\n" +
		"sequential (sequential)\n" +
		"  first: [-1] 2 [+1]\n" +
		"  second: [-2] -4 [+2]\n"
	if got != want {
		t.Errorf("ExportText mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestDefaultVisualizer_ExportText_Empty(t *testing.T) {
	v := &DefaultVisualizer{}
	if got := v.ExportText(nil); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestDefaultVisualizer_ExportJSON(t *testing.T) {
	v := &DefaultVisualizer{}
	data, err := v.ExportJSON("abc123", sampleSections())
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.Fingerprint != "abc123" {
		t.Errorf("fingerprint = %q", doc.Fingerprint)
	}
	if len(doc.Sections) != 2 || doc.Sections[1].Rows[1].Value != -4 {
		t.Errorf("sections not preserved: %+v", doc.Sections)
	}

	data, err = v.ExportJSON("", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"sections": []`) {
		t.Errorf("nil sections should encode as empty list: %s", data)
	}
}

func TestDefaultVisualizer_ExportDOT(t *testing.T) {
	v := &DefaultVisualizer{}
	dot := v.ExportDOT(sampleSections())

	if !strings.HasPrefix(dot, "digraph Counters {") {
		t.Error("Missing DOT header")
	}
	if !strings.Contains(dot, "subgraph cluster_0 {") || !strings.Contains(dot, "subgraph cluster_1 {") {
		t.Error("Missing section clusters")
	}
	if !strings.Contains(dot, `"1/first" -> "1/second" [label="step" style=dashed];`) {
		t.Error("Missing link edge")
	}
	if !strings.Contains(dot, `[label="second\n-4 (by 2)"]`) {
		t.Errorf("Missing node label, got:\n%s", dot)
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Error("DOT not closed")
	}
}

func TestDefaultVisualizer_ExportDOT_Parallel(t *testing.T) {
	v := &DefaultVisualizer{}
	dot := v.ExportDOT([]primitives.Section{{Title: `say "hi"`, Kind: primitives.Parallel}})
	if !strings.Contains(dot, "fillcolor=lightblue") {
		t.Error("Missing parallel highlight")
	}
	if !strings.Contains(dot, `label="say \"hi\" (parallel)"`) {
		t.Errorf("title not escaped:\n%s", dot)
	}
}
