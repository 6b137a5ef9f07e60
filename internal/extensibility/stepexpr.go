package extensibility

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"
)

// ErrInvalidStep is wrapped by every compile or evaluation failure of a step expression.
var ErrInvalidStep = errors.New("invalid step expression")

// StepVariables are the names a step expression may reference.
var StepVariables = []string{"first", "second"}

// StepEvaluator compiles step expressions such as "first" or "first * 2" with
// github.com/expr-lang/expr. Compiled programs are cached by source text.
type StepEvaluator struct {
	mu    sync.Mutex
	cache map[string]*StepProgram
}

// NewStepEvaluator creates an evaluator with an empty program cache.
func NewStepEvaluator() *StepEvaluator {
	return &StepEvaluator{cache: make(map[string]*StepProgram)}
}

// StepProgram is a compiled step expression.
type StepProgram struct {
	source  string
	program *exprvm.Program
}

// Compile parses and type-checks expression. Only the names in StepVariables are
// defined; anything else fails here rather than at evaluation time.
func (e *StepEvaluator) Compile(expression string) (*StepProgram, error) {
	src := strings.TrimSpace(expression)
	if src == "" {
		return nil, fmt.Errorf("%w: expression must not be empty", ErrInvalidStep)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if p, ok := e.cache[src]; ok {
		return p, nil
	}

	env := make(map[string]any, len(StepVariables))
	for _, name := range StepVariables {
		env[name] = 0
	}
	program, err := exprlang.Compile(src, exprlang.Env(env))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidStep, src, err)
	}
	p := &StepProgram{source: src, program: program}
	e.cache[src] = p
	return p, nil
}

// Source returns the expression text.
func (p *StepProgram) Source() string { return p.source }

// Eval runs the program against env. Missing variables read as 0. The result must
// be a whole number.
func (p *StepProgram) Eval(env map[string]int) (int, error) {
	vars := make(map[string]any, len(StepVariables))
	for _, name := range StepVariables {
		vars[name] = env[name]
	}
	out, err := exprlang.Run(p.program, vars)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidStep, p.source, err)
	}
	return toStep(p.source, out)
}

func toStep(src string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, fmt.Errorf("%w %q: result %v is not a whole number", ErrInvalidStep, src, n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w %q: result has type %T, want a number", ErrInvalidStep, src, v)
	}
}
