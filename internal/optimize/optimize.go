// Package optimize asks an LLM provider for a simplified version of a
// spreadsheet formula. Provider failures degrade to returning the original
// formula with an explanatory comment; optimization is advisory and must
// never take a request down with it.
package optimize

import (
	"errors"
	"fmt"

	"fxfmt/internal/provider"
)

// ErrNoProvider means the optimizer was built without an LLM backend. This
// is a configuration error, unlike runtime provider failures.
var ErrNoProvider = errors.New("no LLM provider configured")

// Result holds an optimization suggestion.
type Result struct {
	// Simplified is the suggested formula, always prefixed with "=".
	Simplified string
	// Comment explains the changes, or why none were possible.
	Comment string
}

// Optimizer produces formula simplification suggestions.
type Optimizer struct {
	provider provider.Provider
}

// New creates an Optimizer on the given provider. A nil provider yields an
// optimizer whose Optimize always returns ErrNoProvider.
func New(p provider.Provider) *Optimizer {
	return &Optimizer{provider: p}
}

// Optimize asks the provider for a simplified version of formula. The
// beautified rendering is included in the prompt to give the model the
// structure at a glance. Runtime provider failures return a fallback Result
// and a nil error; configuration errors (a missing provider, a provider
// without credentials) are reported as errors.
func (o *Optimizer) Optimize(formula, beautified string) (Result, error) {
	if o.provider == nil {
		return Result{}, ErrNoProvider
	}

	reply, err := o.provider.Prompt(systemPrompt, userPrompt(formula, beautified))
	if errors.Is(err, provider.ErrMissingAPIKey) {
		return Result{}, err
	}
	if err != nil {
		return Result{
			Simplified: formula,
			Comment:    fmt.Sprintf("unable to optimize formula: %v", err),
		}, nil
	}

	return parseReply(reply), nil
}
