// Package primitives includes builder helpers for GalleryConfig.
package primitives

// GalleryBuilder builds a GalleryConfig fluently.
type GalleryBuilder struct {
	config GalleryConfig
}

// NewGalleryBuilder creates a new GalleryBuilder.
func NewGalleryBuilder(id string) *GalleryBuilder {
	return &GalleryBuilder{config: GalleryConfig{ID: id}}
}

// ExampleBuilder adds counters to the example most recently started.
type ExampleBuilder struct {
	gb  *GalleryBuilder
	idx int
}

func (b *GalleryBuilder) example(kind Kind, title string) *ExampleBuilder {
	b.config.Examples = append(b.config.Examples, ExampleConfig{Kind: kind, Title: title})
	return &ExampleBuilder{gb: b, idx: len(b.config.Examples) - 1}
}

// Basic starts a single-counter example.
func (b *GalleryBuilder) Basic(title string) *ExampleBuilder { return b.example(Basic, title) }

// Parallel starts an independent-siblings example.
func (b *GalleryBuilder) Parallel(title string) *ExampleBuilder { return b.example(Parallel, title) }

// Sequential starts a derived-step example.
func (b *GalleryBuilder) Sequential(title string) *ExampleBuilder {
	return b.example(Sequential, title)
}

// Multiplicity starts a dynamic-collection example.
func (b *GalleryBuilder) Multiplicity(title string) *ExampleBuilder {
	return b.example(Multiplicity, title)
}

// Counter appends a counter with a fixed step.
func (eb *ExampleBuilder) Counter(label string, by int) *ExampleBuilder {
	e := &eb.gb.config.Examples[eb.idx]
	e.Counters = append(e.Counters, CounterConfig{Label: label, By: by})
	return eb
}

// Derived appends a counter whose step is the given expression.
func (eb *ExampleBuilder) Derived(label, step string) *ExampleBuilder {
	e := &eb.gb.config.Examples[eb.idx]
	e.Counters = append(e.Counters, CounterConfig{Label: label, By: 1, Step: step})
	return eb
}

// Done returns to the gallery builder.
func (eb *ExampleBuilder) Done() *GalleryBuilder {
	return eb.gb
}

// Build validates and returns the config.
func (b *GalleryBuilder) Build() (GalleryConfig, error) {
	cfg := b.config
	cfg.Examples = append([]ExampleConfig(nil), b.config.Examples...)
	if err := cfg.Validate(); err != nil {
		return GalleryConfig{}, err
	}
	return cfg, nil
}

// MustBuild is Build that panics on an invalid config. Meant for static setups.
func (b *GalleryBuilder) MustBuild() GalleryConfig {
	cfg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cfg
}
