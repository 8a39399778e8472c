// Package filter compiles expr expressions for filtering API records, such
// as food or recipe search results.
package filter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/lwagner94/fattrack/fatsecret"
)

// Filter is a compiled filter expression.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile parses and compiles a filter expression. Record fields are exposed
// as variables; FatSecret encodes most scalars as strings, so the num()
// helper converts them for numeric comparisons:
//
//	contains(food_name, "oat") && num(food_id) > 0
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // record fields vary per operation
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the original filter expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a single record.
func (f *Filter) Match(record fatsecret.Record) (bool, error) {
	env := helperFunctions()
	for key, value := range record {
		env[key] = value
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression did not evaluate to a boolean")
	}
	return matched, nil
}

// Apply returns the records matching the filter, preserving order.
func (f *Filter) Apply(records []fatsecret.Record) ([]fatsecret.Record, error) {
	var matched []fatsecret.Record
	for _, record := range records {
		ok, err := f.Match(record)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// helperFunctions builds the static helper environment available to every
// expression.
func helperFunctions() map[string]any {
	return map[string]any{
		// String helpers
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
		// Numeric conversion for string-encoded values
		"num": func(s string) float64 {
			v, _ := strconv.ParseFloat(s, 64)
			return v
		},
		// Date helpers
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse("2006-01-02", dateStr)
			return t
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"now": time.Now,
	}
}
