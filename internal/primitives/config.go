// Package primitives defines the foundational data structures for the reducer engine.
//
// GalleryConfig is the top-level description of a page of examples: each
// ExampleConfig names a composition kind and the counters it shows.
// Validation checks IDs, kinds, per-kind counter arity and step settings.
package primitives

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind selects the composition pattern of an example.
type Kind string

const (
	// Basic is one counter whose step is bound by the reducer.
	Basic Kind = "basic"
	// Parallel is two independent named counters.
	Parallel Kind = "parallel"
	// Sequential is two named counters; the second steps by a projection of the state.
	Sequential Kind = "sequential"
	// Multiplicity is a "how many" counter plus that many item counters.
	Multiplicity Kind = "multiplicity"
)

// arity is the number of counters each kind declares.
var arity = map[Kind]int{
	Basic:        1,
	Parallel:     2,
	Sequential:   2,
	Multiplicity: 2,
}

// CounterConfig describes one rendered counter.
type CounterConfig struct {
	Label string `json:"label" yaml:"label"`
	By    int    `json:"by,omitempty" yaml:"by,omitempty"`
	// Step is an expression over the sibling values ("first", "second"), only
	// meaningful for the second counter of a sequential example.
	Step string `json:"step,omitempty" yaml:"step,omitempty"`
}

// ExampleConfig describes one example on the page.
type ExampleConfig struct {
	Kind     Kind            `json:"kind" yaml:"kind"`
	Title    string          `json:"title,omitempty" yaml:"title,omitempty"`
	Counters []CounterConfig `json:"counters" yaml:"counters"`
}

// GalleryConfig is the complete page configuration.
type GalleryConfig struct {
	Version  string          `json:"version,omitempty" yaml:"version,omitempty"`
	ID       string          `json:"id" yaml:"id"`
	Examples []ExampleConfig `json:"examples" yaml:"examples"`
}

// Validate validates a single counter.
func (c *CounterConfig) Validate() error {
	if strings.TrimSpace(c.Label) == "" && c.Label != "" {
		return errors.New("label must not be blank")
	}
	if c.By < 0 {
		return fmt.Errorf("by must be non-negative, got %d", c.By)
	}
	return nil
}

// StepOrDefault returns By, or 1 when By is unset.
func (c *CounterConfig) StepOrDefault() int {
	if c.By == 0 {
		return 1
	}
	return c.By
}

// TitleOrKind returns Title, or the kind name when no title is set.
func (e *ExampleConfig) TitleOrKind() string {
	if e.Title != "" {
		return e.Title
	}
	return string(e.Kind)
}

// Validate validates an example:
// - Known Kind
// - Exactly the counters the kind needs
// - Labels unique within the example
// - Step expressions only on the second counter of a sequential example
// - A multiplicity count label never equals a generated item label
func (e *ExampleConfig) Validate() error {
	want, ok := arity[e.Kind]
	if !ok {
		return fmt.Errorf("invalid kind %q", e.Kind)
	}
	if len(e.Counters) != want {
		return fmt.Errorf("%s example needs %d counters, got %d", e.Kind, want, len(e.Counters))
	}
	seen := make(map[string]bool, len(e.Counters))
	for i := range e.Counters {
		c := &e.Counters[i]
		if err := c.Validate(); err != nil {
			return fmt.Errorf("counter[%d]: %w", i, err)
		}
		if c.Label == "" && (e.Kind != Multiplicity || i != 1) {
			// only multiplicity items fall back to their index
			return fmt.Errorf("counter[%d]: label is required", i)
		}
		if c.Label != "" {
			if seen[c.Label] {
				return fmt.Errorf("counter[%d]: duplicate label %q", i, c.Label)
			}
			seen[c.Label] = true
		}
		if c.Step != "" && (e.Kind != Sequential || i != 1) {
			return fmt.Errorf("counter[%d]: step expression only allowed on the second counter of a sequential example", i)
		}
	}
	if e.Kind == Multiplicity && isItemLabel(e.Counters[0].Label, e.Counters[1].Label) {
		return fmt.Errorf("counter[0]: label %q collides with an item label", e.Counters[0].Label)
	}
	return nil
}

// ItemLabel is the label of item i of a collection whose item counter is
// labelled template: the bare index, or "<template> <i>".
func ItemLabel(template string, i int) string {
	if template == "" {
		return strconv.Itoa(i)
	}
	return fmt.Sprintf("%s %d", template, i)
}

// isItemLabel reports whether ItemLabel(template, i) == label for some i >= 0.
func isItemLabel(label, template string) bool {
	rest := label
	if template != "" {
		var ok bool
		if rest, ok = strings.CutPrefix(label, template+" "); !ok {
			return false
		}
	}
	i, err := strconv.Atoi(rest)
	return err == nil && i >= 0 && ItemLabel(template, i) == label
}

// Validate validates the whole gallery:
// - Non-empty ID
// - At least one example
// - Every example validates
// - Titles unique (they address sections in scripts)
func (g *GalleryConfig) Validate() error {
	if g.ID == "" {
		return errors.New("gallery ID is required")
	}
	if len(g.Examples) == 0 {
		return errors.New("examples are required and cannot be empty")
	}
	titles := make(map[string]bool, len(g.Examples))
	for i := range g.Examples {
		e := &g.Examples[i]
		if err := e.Validate(); err != nil {
			return fmt.Errorf("example[%d] (%s): %w", i, e.Kind, err)
		}
		title := e.TitleOrKind()
		if titles[title] {
			return fmt.Errorf("example[%d]: duplicate title %q", i, title)
		}
		titles[title] = true
	}
	return nil
}

// ParseConfig decodes and validates a YAML gallery.
func ParseConfig(data []byte) (GalleryConfig, error) {
	var cfg GalleryConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GalleryConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GalleryConfig{}, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a YAML gallery from path.
func LoadConfig(path string) (GalleryConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GalleryConfig{}, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return GalleryConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// MarshalConfig encodes cfg as YAML.
func MarshalConfig(cfg GalleryConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// DefaultGalleryConfig is the four-example page: one counter, two parallel
// counters, two sequential counters, and a dynamic list.
func DefaultGalleryConfig() GalleryConfig {
	return GalleryConfig{
		ID: "counters",
		Examples: []ExampleConfig{
			{Kind: Basic, Counters: []CounterConfig{{Label: "counter", By: 1}}},
			{Kind: Parallel, Counters: []CounterConfig{{Label: "first", By: 1}, {Label: "second", By: 1}}},
			{Kind: Sequential, Counters: []CounterConfig{{Label: "first", By: 1}, {Label: "second", By: 1}}},
			{Kind: Multiplicity, Counters: []CounterConfig{{Label: "how many", By: 1}, {By: 1}}},
		},
	}
}
