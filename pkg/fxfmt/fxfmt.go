// Package fxfmt provides the public API for spreadsheet formula formatting
// and AI-backed simplification.
package fxfmt

import (
	"time"

	"fxfmt/internal/beautify"
	"fxfmt/internal/formula"
	"fxfmt/internal/optimize"
	"fxfmt/internal/provider"
	"fxfmt/internal/store"
)

// SimplifyResult is the outcome of a Simplify call.
type SimplifyResult struct {
	// Pretty is the beautified rendering of the input.
	Pretty string
	// Simplified is the AI-suggested formula, prefixed with "=".
	Simplified string
	// Comment explains the suggestion.
	Comment string
}

// HistoryEntry is one recorded request.
type HistoryEntry = store.Entry

// Engine ties the formatter, optimizer, and history store together. An
// Engine is safe for concurrent use.
type Engine struct {
	beautifier *beautify.Beautifier
	optimizer  *optimize.Optimizer
	provider   provider.Provider
	history    store.Store
	streamCb   provider.StreamCallback
	indentSize int
	maxDepth   int
	timeout    time.Duration
}

// New creates an Engine with the given options. Without a provider option,
// Simplify reports a configuration error; formatting always works.
func New(opts ...Option) *Engine {
	e := &Engine{
		indentSize: beautify.DefaultIndentSize,
		maxDepth:   beautify.DefaultMaxDepth,
		timeout:    2 * time.Minute,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.beautifier = beautify.New(
		beautify.WithIndentSize(e.indentSize),
		beautify.WithMaxDepth(e.maxDepth),
	)
	e.optimizer = optimize.New(e.provider)
	return e
}

// Validate checks a formula after sanitization. A nil return means Format
// will succeed.
func (e *Engine) Validate(formulaText string) error {
	return formula.Validate(formula.Sanitize(formulaText))
}

// Format sanitizes, validates, and beautifies a formula.
func (e *Engine) Format(formulaText string) (string, error) {
	f := formula.Sanitize(formulaText)
	if err := formula.Validate(f); err != nil {
		return "", err
	}

	pretty := e.beautifier.Beautify(f)
	e.record(store.Entry{Kind: store.KindFormat, Formula: f, Pretty: pretty})
	return pretty, nil
}

// Simplify beautifies a formula and asks the configured provider for an
// optimized version. Provider runtime failures degrade to returning the
// original formula with an explanatory comment.
func (e *Engine) Simplify(formulaText string) (SimplifyResult, error) {
	f := formula.Sanitize(formulaText)
	if err := formula.Validate(f); err != nil {
		return SimplifyResult{}, err
	}

	pretty := e.beautifier.Beautify(f)
	result, err := e.optimizer.Optimize(f, pretty)
	if err != nil {
		return SimplifyResult{}, err
	}

	e.record(store.Entry{
		Kind:       store.KindSimplify,
		Formula:    f,
		Pretty:     pretty,
		Simplified: result.Simplified,
		Comment:    result.Comment,
	})
	return SimplifyResult{
		Pretty:     pretty,
		Simplified: result.Simplified,
		Comment:    result.Comment,
	}, nil
}

// History returns up to limit recorded requests, newest first. Without a
// history store it returns nothing.
func (e *Engine) History(limit int) ([]HistoryEntry, error) {
	if e.history == nil {
		return nil, nil
	}
	return e.history.Recent(limit)
}

// Close releases the history store, if any.
func (e *Engine) Close() error {
	if e.history != nil {
		return e.history.Close()
	}
	return nil
}

func (e *Engine) record(entry store.Entry) {
	if e.history == nil {
		return
	}
	// Best effort: history must never fail a request.
	_ = e.history.Record(entry)
}
