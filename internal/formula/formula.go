// Package formula provides request-level sanitization and validation of
// spreadsheet formulas.
package formula

import (
	"errors"
	"strings"

	"fxfmt/internal/scanner"
)

var (
	// ErrEmptyFormula rejects empty or whitespace-only input.
	ErrEmptyFormula = errors.New("formula cannot be empty")
	// ErrUnbalancedParens rejects input whose parentheses do not balance.
	ErrUnbalancedParens = errors.New("unbalanced parentheses in formula")
)

// Sanitize trims surrounding whitespace and strips one layer of
// fully-surrounding double quotes, which guards against clients that
// double-encode the formula as a JSON string.
func Sanitize(formula string) string {
	formula = strings.TrimSpace(formula)
	if len(formula) >= 2 && formula[0] == '"' && formula[len(formula)-1] == '"' {
		// Trim again so Sanitize is idempotent when the quoted interior
		// carries edge whitespace.
		formula = strings.TrimSpace(formula[1 : len(formula)-1])
	}
	return formula
}

// Validate checks a formula for structural well-formedness. A nil return
// means the formula is acceptable for formatting. Semantic checks (cell
// references, arity, types) are out of scope.
func Validate(formula string) error {
	if strings.TrimSpace(formula) == "" {
		return ErrEmptyFormula
	}
	if !scanner.Balanced(formula) {
		return ErrUnbalancedParens
	}
	return nil
}
