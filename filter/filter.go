// Package filter compiles expr-lang expressions and evaluates them against
// JSON rows (map-shaped API results), so CLI output can be narrowed with
// expressions like:
//
//	contains(title, "golang") && location == "Oslo"
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled, reusable filter expression. It is safe for
// concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile parses and compiles a filter expression. Row fields become
// undefined variables resolved at evaluation time, so any key present in
// the JSON row can be referenced directly.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // row fields are dynamic
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Match evaluates the filter against a single row.
func (f *Filter) Match(row map[string]any) (bool, error) {
	env := make(map[string]any, len(row)+8)
	for name, fn := range helperFunctions() {
		env[name] = fn
	}
	for key, value := range row {
		env[key] = value
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, Err: err}
	}

	// AsBool at compile time guarantees the assertion.
	return result.(bool), nil
}

// Apply returns the rows matching the filter. Rows that are not JSON
// objects are skipped.
func (f *Filter) Apply(rows []any) ([]any, error) {
	var matched []any
	for _, row := range rows {
		obj, ok := row.(map[string]any)
		if !ok {
			continue
		}
		match, err := f.Match(obj)
		if err != nil {
			return nil, err
		}
		if match {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

// Expression returns the original expression text.
func (f *Filter) Expression() string {
	return f.expression
}

func helperFunctions() map[string]any {
	return map[string]any{
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}
