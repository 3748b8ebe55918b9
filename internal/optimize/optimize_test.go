package optimize

import (
	"errors"
	"strings"
	"testing"

	"fxfmt/internal/provider"
)

func TestParseReply(t *testing.T) {
	reply := `SIMPLIFIED:
=IFS(A1>0,"Yes",TRUE,"No")

COMMENT:
Replaced the nested IF with IFS.
The behavior is unchanged.`

	got := parseReply(reply)
	if got.Simplified != `=IFS(A1>0,"Yes",TRUE,"No")` {
		t.Errorf("unexpected simplified: %q", got.Simplified)
	}
	if got.Comment != "Replaced the nested IF with IFS. The behavior is unchanged." {
		t.Errorf("unexpected comment: %q", got.Comment)
	}
}

func TestParseReplyAddsEquals(t *testing.T) {
	reply := "SIMPLIFIED:\nSUM(A:A)\nCOMMENT:\nAlready minimal."
	got := parseReply(reply)
	if got.Simplified != "=SUM(A:A)" {
		t.Errorf("missing equals prefix: %q", got.Simplified)
	}
}

func TestParseReplyUnparseable(t *testing.T) {
	got := parseReply("I cannot help with that.")
	if got.Simplified != "Unable to parse response" {
		t.Errorf("unexpected simplified fallback: %q", got.Simplified)
	}
	if got.Comment != "Unable to parse optimization explanation" {
		t.Errorf("unexpected comment fallback: %q", got.Comment)
	}
}

func TestOptimize(t *testing.T) {
	p := provider.NewMockHandler(func(system, user string) string {
		if !strings.Contains(user, "=IF(A1>0,1,0)") {
			t.Errorf("prompt missing original formula: %q", user)
		}
		if !strings.Contains(user, "Beautified version:") {
			t.Errorf("prompt missing beautified section: %q", user)
		}
		return "SIMPLIFIED:\n=A1>0\nCOMMENT:\nBoolean coercion is enough."
	})

	result, err := New(p).Optimize("=IF(A1>0,1,0)", "=IF(\n    A1>0,\n    1,\n    0\n)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Simplified != "=A1>0" {
		t.Errorf("unexpected simplified: %q", result.Simplified)
	}
}

func TestOptimizeProviderFailureDegrades(t *testing.T) {
	p := &provider.Mock{Err: errors.New("connection refused")}

	result, err := New(p).Optimize("=SUM(A:A)", "=SUM(A:A)")
	if err != nil {
		t.Fatalf("provider failure must not surface as error, got: %v", err)
	}
	if result.Simplified != "=SUM(A:A)" {
		t.Errorf("fallback should return the original formula, got %q", result.Simplified)
	}
	if !strings.Contains(result.Comment, "unable to optimize formula") {
		t.Errorf("fallback comment missing explanation: %q", result.Comment)
	}
}

func TestOptimizeMissingAPIKeyIsConfigError(t *testing.T) {
	// A provider without credentials must not be swallowed into the
	// degrade-to-comment path; it surfaces like a missing provider.
	p := provider.NewAnthropic(provider.WithAnthropicAPIKey(""))

	_, err := New(p).Optimize("=SUM(A:A)", "=SUM(A:A)")
	if !errors.Is(err, provider.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestOptimizeNoProvider(t *testing.T) {
	_, err := New(nil).Optimize("=SUM(A:A)", "=SUM(A:A)")
	if !errors.Is(err, ErrNoProvider) {
		t.Fatalf("expected ErrNoProvider, got %v", err)
	}
}
