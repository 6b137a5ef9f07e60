package extensibility

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/comalice/reducerx/internal/primitives"
)

// Trigger is one scripted button press.
type Trigger struct {
	Line    int
	Section string
	Label   string
	Op      primitives.Op
}

func (t Trigger) String() string {
	return fmt.Sprintf("%s/%s %s", t.Section, t.Label, t.Op.Symbol())
}

// Target receives scripted triggers. The root Gallery implements it.
type Target interface {
	Trigger(section, label string, op primitives.Op) error
}

// Script is an ordered list of triggers.
//
// The text form has one trigger per line:
//
//	# comment
//	parallel/first +
//	how many/0 increment
//
// The operation is the last field on the line; everything before it is
// "<section>/<label>", split at the first slash.
type Script []Trigger

var scriptOps = map[string]primitives.Op{
	"+":         primitives.OpIncrement,
	"inc":       primitives.OpIncrement,
	"increment": primitives.OpIncrement,
	"-":         primitives.OpDecrement,
	"dec":       primitives.OpDecrement,
	"decrement": primitives.OpDecrement,
}

// ParseScript reads a script. An unrecognized operation yields an error wrapping
// primitives.ErrUnknownAction; both kinds of error carry the line number.
func ParseScript(r io.Reader) (Script, error) {
	var script Script
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		t, err := parseTrigger(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		t.Line = line
		script = append(script, t)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return script, nil
}

func parseTrigger(text string) (Trigger, error) {
	cut := strings.LastIndexAny(text, " \t")
	if cut < 0 {
		return Trigger{}, fmt.Errorf("expected \"<section>/<label> <op>\", got %q", text)
	}
	target, opText := strings.TrimSpace(text[:cut]), text[cut+1:]

	op, ok := scriptOps[strings.ToLower(opText)]
	if !ok {
		return Trigger{}, primitives.UnknownAction("script", opText)
	}
	section, label, found := strings.Cut(target, "/")
	section, label = strings.TrimSpace(section), strings.TrimSpace(label)
	if !found || section == "" || label == "" {
		return Trigger{}, fmt.Errorf("expected \"<section>/<label>\", got %q", target)
	}
	return Trigger{Section: section, Label: label, Op: op}, nil
}

// Run feeds every trigger to target in order and stops at the first error or
// when ctx is done.
func (s Script) Run(ctx context.Context, target Target) error {
	for _, t := range s {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := target.Trigger(t.Section, t.Label, t.Op); err != nil {
			return fmt.Errorf("line %d (%s): %w", t.Line, t, err)
		}
	}
	return nil
}
