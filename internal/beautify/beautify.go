// Package beautify renders spreadsheet formulas with indentation and line
// breaks. Formatting never alters content: stripping all whitespace from the
// output yields the same character sequence as stripping it from the input.
//
// The formatter parses a formula into a small tree of function calls and
// opaque literals, then renders the tree. Anything that is not a recognizable
// function call (operators, cell references, plain values) passes through
// verbatim, and any malformed structure degrades to returning the input
// unchanged.
package beautify

import (
	"errors"
	"regexp"
	"strings"

	"fxfmt/internal/scanner"
)

const (
	// DefaultIndentSize is the number of spaces per nesting level.
	DefaultIndentSize = 4
	// DefaultMaxDepth bounds parse recursion against adversarially nested
	// input. Past the bound the formula is returned unformatted.
	DefaultMaxDepth = 64
)

// funcHead matches a function-call head: an identifier immediately followed
// by an opening parenthesis, with optional whitespace between.
var funcHead = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_.]*)\s*\(`)

// multiline lists the functions that read better with one argument per
// line. Calls to any other function, and calls with at most one argument,
// stay on a single line.
var multiline = map[string]bool{
	"IF": true, "IFS": true, "SWITCH": true, "CHOOSE": true,
	"AND": true, "OR": true, "NOT": true, "XOR": true,
	"SUMIF": true, "SUMIFS": true, "COUNTIF": true, "COUNTIFS": true,
	"AVERAGEIF": true, "AVERAGEIFS": true,
	"LET": true, "LAMBDA": true, "FILTER": true, "SORT": true, "SORTBY": true,
	"VLOOKUP": true, "HLOOKUP": true, "XLOOKUP": true, "INDEX": true, "MATCH": true,
}

var errTooDeep = errors.New("formula nesting too deep")

// Beautifier formats formulas. It is stateless per call and safe for
// concurrent use.
type Beautifier struct {
	indentSize int
	maxDepth   int
}

// Option configures a Beautifier.
type Option func(*Beautifier)

// WithIndentSize sets the number of spaces per indentation level.
func WithIndentSize(n int) Option {
	return func(b *Beautifier) {
		if n > 0 {
			b.indentSize = n
		}
	}
}

// WithMaxDepth sets the maximum nesting depth the formatter will descend
// into before giving up and returning the input unchanged.
func WithMaxDepth(n int) Option {
	return func(b *Beautifier) {
		if n > 0 {
			b.maxDepth = n
		}
	}
}

// New creates a Beautifier with the given options.
func New(opts ...Option) *Beautifier {
	b := &Beautifier{
		indentSize: DefaultIndentSize,
		maxDepth:   DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// node is a parsed formula fragment.
type node interface {
	isNode()
}

// literal is text the formatter does not decompose: operators, references,
// constants, or anything structurally unrecognizable.
type literal string

// call is a recognized function call. rest holds whatever text followed the
// matched closing parenthesis, such as a chained "&" fragment.
type call struct {
	name string
	args []node
	rest node
}

func (literal) isNode() {}
func (*call) isNode()   {}

// parse builds the tree for one expression. Malformed structure is never an
// error: it collapses to a literal holding the raw text.
func (b *Beautifier) parse(expr string, depth int) (node, error) {
	if depth > b.maxDepth {
		return nil, errTooDeep
	}

	expr = strings.TrimSpace(expr)
	loc := funcHead.FindStringSubmatchIndex(expr)
	if loc == nil {
		return literal(expr), nil
	}

	name := strings.ToUpper(expr[loc[2]:loc[3]])
	open := loc[1] - 1
	closer := scanner.MatchingClose(expr, open)
	if closer == scanner.NotFound {
		return literal(expr), nil
	}

	c := &call{name: name}
	for _, arg := range scanner.SplitArgs(expr[open+1 : closer]) {
		n, err := b.parse(arg, depth+1)
		if err != nil {
			return nil, err
		}
		c.args = append(c.args, n)
	}

	if rest := expr[closer+1:]; strings.TrimSpace(rest) != "" {
		n, err := b.parse(rest, depth)
		if err != nil {
			return nil, err
		}
		c.rest = n
	}

	return c, nil
}

// render produces the formatted text of n at the given indentation depth.
func (b *Beautifier) render(n node, depth int) string {
	switch n := n.(type) {
	case literal:
		return string(n)
	case *call:
		var sb strings.Builder
		if multiline[n.name] && len(n.args) > 1 {
			argIndent := b.indent(depth + 1)
			sb.WriteString(n.name)
			sb.WriteString("(\n")
			for i, arg := range n.args {
				sb.WriteString(argIndent)
				sb.WriteString(b.render(arg, depth+1))
				if i < len(n.args)-1 {
					sb.WriteString(",")
				}
				sb.WriteString("\n")
			}
			sb.WriteString(b.indent(depth))
			sb.WriteString(")")
		} else {
			sb.WriteString(n.name)
			sb.WriteString("(")
			for i, arg := range n.args {
				if i > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(b.render(arg, depth+1))
			}
			sb.WriteString(")")
		}
		if n.rest != nil {
			sb.WriteString(b.render(n.rest, depth))
		}
		return sb.String()
	}
	return ""
}

func (b *Beautifier) indent(depth int) string {
	return strings.Repeat(" ", depth*b.indentSize)
}

// Beautify formats a formula, preserving a leading "=" when present.
// Formatting is strictly best effort: empty input, malformed structure,
// excessive nesting, and any internal failure all return the input
// unchanged. Beautify never panics.
func (b *Beautifier) Beautify(formulaText string) (out string) {
	if strings.TrimSpace(formulaText) == "" {
		return formulaText
	}

	out = formulaText
	defer func() {
		if recover() != nil {
			out = formulaText
		}
	}()

	body := strings.TrimSpace(formulaText)
	hasEquals := strings.HasPrefix(body, "=")
	if hasEquals {
		body = body[1:]
	}

	root, err := b.parse(body, 0)
	if err != nil {
		return formulaText
	}

	formatted := b.render(root, 0)
	if hasEquals {
		formatted = "=" + formatted
	}
	return formatted
}

// Format beautifies a formula with the given indent size and all other
// settings at their defaults.
func Format(formulaText string, indentSize int) string {
	return New(WithIndentSize(indentSize)).Beautify(formulaText)
}
