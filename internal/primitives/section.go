package primitives

// Row is the render-time snapshot of one counter: what a presentation layer shows.
type Row struct {
	Label string `json:"label" yaml:"label"`
	By    int    `json:"by" yaml:"by"`
	Value int    `json:"value" yaml:"value"`
}

// Link records a read-only dependency between two rows of a section, e.g. the
// second counter stepping by the first one's value.
type Link struct {
	From  string `json:"from" yaml:"from"`
	To    string `json:"to" yaml:"to"`
	Label string `json:"label" yaml:"label"`
}

// Section is the snapshot of one example.
type Section struct {
	Title string `json:"title" yaml:"title"`
	Kind  Kind   `json:"kind" yaml:"kind"`
	Rows  []Row  `json:"rows" yaml:"rows"`
	Links []Link `json:"links,omitempty" yaml:"links,omitempty"`
}
