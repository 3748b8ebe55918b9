package beautify

import (
	"strings"
	"testing"
)

// stripSpace removes every whitespace character, for content-preservation
// checks.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}

func TestBeautifySimpleIf(t *testing.T) {
	got := New().Beautify("=IF(A1>0,\"Yes\",\"No\")")
	want := "=IF(\n" +
		"    A1>0,\n" +
		"    \"Yes\",\n" +
		"    \"No\"\n" +
		")"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestBeautifyNestedIf(t *testing.T) {
	got := New().Beautify("=IF(A1>0,IF(B1<10,\"OK\",\"NO\"),\"FAIL\")")
	want := "=IF(\n" +
		"    A1>0,\n" +
		"    IF(\n" +
		"        B1<10,\n" +
		"        \"OK\",\n" +
		"        \"NO\"\n" +
		"    ),\n" +
		"    \"FAIL\"\n" +
		")"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestBeautifyNonRegistryStaysSingleLine(t *testing.T) {
	got := New().Beautify("=SUM(A1:A10)")
	if got != "=SUM(A1:A10)" {
		t.Errorf("got %q, want %q", got, "=SUM(A1:A10)")
	}
	if strings.Contains(got, "\n") {
		t.Errorf("expected single line, got %q", got)
	}
}

func TestBeautifySingleArgumentStaysSingleLine(t *testing.T) {
	// NOT is in the multi-line registry but one argument never splits.
	got := New().Beautify("=NOT(TRUE)")
	if got != "=NOT(TRUE)" {
		t.Errorf("got %q, want %q", got, "=NOT(TRUE)")
	}
}

func TestBeautifyZeroArguments(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"=TODAY()", "=TODAY()"},
		// Whitespace-only argument lists count as zero arguments.
		{"=IF(   )", "=IF()"},
	}
	b := New()
	for _, tt := range tests {
		if got := b.Beautify(tt.input); got != tt.want {
			t.Errorf("Beautify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBeautifyEqualsPreserved(t *testing.T) {
	b := New()
	if got := b.Beautify("IF(A1>0,1,0)"); strings.HasPrefix(got, "=") {
		t.Errorf("unexpected leading equals: %q", got)
	}
	if got := b.Beautify("=IF(A1>0,1,0)"); !strings.HasPrefix(got, "=") {
		t.Errorf("missing leading equals: %q", got)
	}
}

func TestBeautifyNameUpperCased(t *testing.T) {
	got := New().Beautify("=if(a1>0,sum(b1:b2),\"no Change\")")
	if !strings.Contains(got, "IF(") || !strings.Contains(got, "SUM(") {
		t.Errorf("function names not upper-cased: %q", got)
	}
	// Argument contents keep their case.
	if !strings.Contains(got, "a1>0") || !strings.Contains(got, "\"no Change\"") {
		t.Errorf("argument content was altered: %q", got)
	}
}

func TestBeautifyQuotedCommas(t *testing.T) {
	got := New().Beautify("=IF(A1>0,\"Hello, World\",\"Goodbye\")")
	if !strings.Contains(got, "\"Hello, World\"") {
		t.Errorf("quoted comma split an argument: %q", got)
	}
}

func TestBeautifyTrailingFragment(t *testing.T) {
	got := New().Beautify("=IF(A1>0,\"Yes\",\"No\")&\" done\"")
	if !strings.Contains(got, ")&\" done\"") {
		t.Errorf("trailing fragment lost or moved: %q", got)
	}
}

func TestBeautifyMalformedPassthrough(t *testing.T) {
	inputs := []string{
		"=IF(A1>0,\"Yes\",\"No\"",
		"=IF(((",
		")",
	}
	b := New()
	for _, in := range inputs {
		if got := b.Beautify(in); got != in {
			t.Errorf("Beautify(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestBeautifyEmptyInput(t *testing.T) {
	b := New()
	if got := b.Beautify(""); got != "" {
		t.Errorf("Beautify(\"\") = %q, want \"\"", got)
	}
	if got := b.Beautify("   "); got != "   " {
		t.Errorf("whitespace input altered: %q", got)
	}
}

func TestBeautifyCustomIndent(t *testing.T) {
	got := New(WithIndentSize(2)).Beautify("=IF(A1>0,\"Yes\",\"No\")")
	want := "=IF(\n" +
		"  A1>0,\n" +
		"  \"Yes\",\n" +
		"  \"No\"\n" +
		")"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestBeautifyMaxDepth(t *testing.T) {
	in := "=IF(A1,IF(B1,IF(C1,1,2),3),4)"
	got := New(WithMaxDepth(2)).Beautify(in)
	if got != in {
		t.Errorf("over-deep formula should pass through, got %q", got)
	}
}

func TestBeautifyContentPreserved(t *testing.T) {
	inputs := []string{
		"=IF(A1>0,\"Yes\",\"No\")",
		"=IF(AND(A1>0,B1<10),SUM(C1:C10),\"N/A\")",
		"=SUMIFS(D:D,A:A,\">=2023\",B:B,\"Sales\")",
		"=VLOOKUP(A1,Sheet2!A:B,2,FALSE)",
		"=XLOOKUP(A1,B:B,C:C,\"missing\")&\"!\"",
		"A1+B1*2",
		"=LET(x,A1,IF(x>0,x,0))",
	}
	b := New()
	for _, in := range inputs {
		got := b.Beautify(in)
		if stripSpace(got) != stripSpace(in) {
			t.Errorf("content changed for %q:\n got %q", in, got)
		}
	}
}

func TestFormat(t *testing.T) {
	got := Format("=AND(A1>0,B1<10,C1=\"Active\")", 2)
	if !strings.Contains(got, "\n") {
		t.Errorf("expected multi-line output, got %q", got)
	}
	if !strings.Contains(got, "\n  A1>0,") {
		t.Errorf("expected two-space indent, got %q", got)
	}
}
