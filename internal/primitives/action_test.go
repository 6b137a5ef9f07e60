package primitives

import (
	"errors"
	"testing"
)

func TestParseOp(t *testing.T) {
	tests := []struct {
		tag     string
		want    Op
		wantErr bool
	}{
		{tag: "increment", want: OpIncrement},
		{tag: "decrement", want: OpDecrement},
		{tag: "  Increment ", want: OpIncrement},
		{tag: "DECREMENT", want: OpDecrement},
		{tag: "reset", wantErr: true},
		{tag: "", wantErr: true},
		{tag: "+", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseOp(tt.tag)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownAction) {
					t.Fatalf("ParseOp(%q) err = %v, want ErrUnknownAction", tt.tag, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOp(%q) unexpected error: %v", tt.tag, err)
			}
			if got != tt.want {
				t.Errorf("ParseOp(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func TestNewAction(t *testing.T) {
	a, err := NewAction(OpIncrement, 3)
	if err != nil {
		t.Fatal(err)
	}
	if a != (Increment{By: 3}) {
		t.Errorf("got %#v, want Increment{By: 3}", a)
	}
	if a.Op() != OpIncrement || a.Step() != 3 {
		t.Errorf("Op/Step = %q/%d", a.Op(), a.Step())
	}

	d, err := NewAction(OpDecrement, 2)
	if err != nil {
		t.Fatal(err)
	}
	if d != (Decrement{By: 2}) {
		t.Errorf("got %#v, want Decrement{By: 2}", d)
	}

	if _, err := NewAction(Op("multiply"), 2); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
}

func TestActionFromTag(t *testing.T) {
	a, err := ActionFromTag("decrement", 5)
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != "decrement(5)" {
		t.Errorf("String() = %q", a.String())
	}

	_, err = ActionFromTag("explode", 1)
	var uae *UnknownActionError
	if !errors.As(err, &uae) {
		t.Fatalf("expected *UnknownActionError, got %T", err)
	}
	if uae.Tag != "explode" || uae.Scope != "op" {
		t.Errorf("got scope=%q tag=%q", uae.Scope, uae.Tag)
	}
}

func TestOpSymbol(t *testing.T) {
	if OpIncrement.Symbol() != "+" || OpDecrement.Symbol() != "-" || Op("x").Symbol() != "?" {
		t.Error("unexpected symbols")
	}
	if Op("x").Valid() {
		t.Error("unknown op reported valid")
	}
}

func TestUnknownActionFormatting(t *testing.T) {
	tests := []struct {
		name string
		tag  any
		want string
	}{
		{name: "nil", tag: nil, want: `BUG: s: unknown action "<nil>"`},
		{name: "string", tag: "x", want: `BUG: s: unknown action "x"`},
		{name: "stringer", tag: Increment{By: 1}, want: `BUG: s: unknown action "increment(1)"`},
		{name: "other", tag: 7, want: `BUG: s: unknown action "int(7)"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnknownAction("s", tt.tag).Error(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRouted(t *testing.T) {
	r := Route("first", Action(Increment{By: 2}))
	if r.Op() != OpIncrement {
		t.Errorf("Op() = %q", r.Op())
	}
	if r.String() != "first/increment(2)" {
		t.Errorf("String() = %q", r.String())
	}

	empty := Routed[int]{Which: 4}
	if empty.Op() != "" {
		t.Errorf("nil sub Op() = %q, want empty", empty.Op())
	}
}
