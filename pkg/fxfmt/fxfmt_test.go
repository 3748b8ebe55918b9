package fxfmt

import (
	"errors"
	"strings"
	"testing"

	"fxfmt/internal/formula"
	"fxfmt/internal/optimize"
)

func TestEngineFormat(t *testing.T) {
	e := New()
	defer e.Close()

	pretty, err := e.Format(`=IF(A1>0,"Yes","No")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(pretty, "\n") {
		t.Errorf("expected multi-line output, got %q", pretty)
	}
}

func TestEngineFormatInvalid(t *testing.T) {
	e := New()
	defer e.Close()

	if _, err := e.Format(""); !errors.Is(err, formula.ErrEmptyFormula) {
		t.Errorf("expected ErrEmptyFormula, got %v", err)
	}
	if _, err := e.Format("=IF(A1,1,0"); !errors.Is(err, formula.ErrUnbalancedParens) {
		t.Errorf("expected ErrUnbalancedParens, got %v", err)
	}
}

func TestEngineIndentOption(t *testing.T) {
	e := New(WithIndentSize(2))
	defer e.Close()

	pretty, err := e.Format(`=IF(A1>0,"Yes","No")`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(pretty, "\n  A1>0,") {
		t.Errorf("expected two-space indent, got %q", pretty)
	}
}

func TestEngineSimplify(t *testing.T) {
	e := New(
		WithMockProvider("SIMPLIFIED:\n=A1>0\nCOMMENT:\nComparison is enough."),
		WithMemoryHistory(),
	)
	defer e.Close()

	result, err := e.Simplify("=IF(A1>0,TRUE,FALSE)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Simplified != "=A1>0" {
		t.Errorf("unexpected simplified: %q", result.Simplified)
	}
	if result.Pretty == "" || result.Comment == "" {
		t.Errorf("incomplete result: %+v", result)
	}

	entries, err := e.History(10)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(entries))
	}
	if entries[0].Simplified != "=A1>0" {
		t.Errorf("history entry incomplete: %+v", entries[0])
	}
}

func TestEngineSimplifyWithoutProvider(t *testing.T) {
	e := New()
	defer e.Close()

	if _, err := e.Simplify("=SUM(A:A)"); !errors.Is(err, optimize.ErrNoProvider) {
		t.Errorf("expected ErrNoProvider, got %v", err)
	}
}

func TestEngineValidate(t *testing.T) {
	e := New()
	defer e.Close()

	if err := e.Validate(` "=SUM(A1:A10)" `); err != nil {
		t.Errorf("sanitized formula should validate, got %v", err)
	}
	if err := e.Validate("   "); err == nil {
		t.Error("whitespace-only formula should fail validation")
	}
}

func TestEngineHistoryWithoutStore(t *testing.T) {
	e := New()
	defer e.Close()

	entries, err := e.History(5)
	if err != nil || entries != nil {
		t.Errorf("expected empty history, got %v, %v", entries, err)
	}
}
