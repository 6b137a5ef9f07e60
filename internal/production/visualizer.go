// Package production provides production integrations: transition journals,
// Prometheus metrics and rendering of gallery snapshots.
package production

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/comalice/reducerx/internal/primitives"
)

// DefaultVisualizer renders gallery snapshots as text, JSON or Graphviz DOT.
type DefaultVisualizer struct{}

// ExportText renders each section as a heading followed by one line per counter:
//
//	label: [-by] value [+by]
func (v *DefaultVisualizer) ExportText(sections []primitives.Section) string {
	var buf bytes.Buffer
	for i, s := range sections {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "%s (%s)\n", s.Title, s.Kind)
		for _, r := range s.Rows {
			buf.WriteString("  ")
			buf.WriteString(FormatRow(r))
			buf.WriteString("\n")
		}
	}
	return buf.String()
}

// FormatRow is the one-line form of a counter.
func FormatRow(r primitives.Row) string {
	return fmt.Sprintf("%s: [-%d] %d [+%d]", r.Label, r.By, r.Value, r.By)
}

// Document is the JSON form of a snapshot.
type Document struct {
	Fingerprint string               `json:"fingerprint,omitempty"`
	Sections    []primitives.Section `json:"sections"`
}

// ExportJSON serializes the snapshot together with the config fingerprint.
func (v *DefaultVisualizer) ExportJSON(fingerprint string, sections []primitives.Section) ([]byte, error) {
	if sections == nil {
		sections = []primitives.Section{}
	}
	return json.MarshalIndent(Document{Fingerprint: fingerprint, Sections: sections}, "", "  ")
}

// ExportDOT generates Graphviz DOT source: one cluster per section, one node per
// counter, and an edge for every link.
func (v *DefaultVisualizer) ExportDOT(sections []primitives.Section) string {
	var buf bytes.Buffer
	buf.WriteString(`digraph Counters {
  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)

	for i, s := range sections {
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&buf, "    label=%s;\n", dotQuote(s.Title+" ("+string(s.Kind)+")"))
		if s.Kind == primitives.Parallel {
			buf.WriteString("    style=filled fillcolor=lightblue;\n")
		}
		for _, r := range s.Rows {
			fmt.Fprintf(&buf, "    %s [label=%s];\n", dotQuote(nodeID(i, r.Label)), dotQuote(fmt.Sprintf("%s\n%d (by %d)", r.Label, r.Value, r.By)))
		}
		buf.WriteString("  }\n")
	}

	for i, s := range sections {
		for _, l := range s.Links {
			fmt.Fprintf(&buf, "  %s -> %s [label=%s style=dashed];\n", dotQuote(nodeID(i, l.From)), dotQuote(nodeID(i, l.To)), dotQuote(l.Label))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(section int, label string) string {
	return fmt.Sprintf("%d/%s", section, label)
}

func dotQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}
