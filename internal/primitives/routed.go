package primitives

import "fmt"

// Routed addresses a sub-action to one slot of a composite state.
// K is the routing key: a slot name for fixed records, an index for collections.
type Routed[K comparable] struct {
	Which K      `json:"which" yaml:"which"`
	Sub   Action `json:"subAction" yaml:"subAction"`
}

// Route builds a Routed action.
func Route[K comparable](which K, sub Action) Routed[K] {
	return Routed[K]{Which: which, Sub: sub}
}

// Op forwards the tag of the sub-action; empty when Sub is nil.
func (r Routed[K]) Op() Op {
	if r.Sub == nil {
		return ""
	}
	return r.Sub.Op()
}

func (r Routed[K]) String() string {
	return fmt.Sprintf("%v/%v", r.Which, r.Sub)
}
