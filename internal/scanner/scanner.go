// Package scanner provides string-aware structural scanning of spreadsheet
// formulas. All operations share one quoting rule: a double or single quote
// toggles in-string mode unless escaped with a backslash, and the closing
// quote must match the opening one. While inside a string, parentheses and
// commas are ordinary characters.
package scanner

import "strings"

// NotFound is returned by MatchingClose when the input ends before the
// opening parenthesis is closed.
const NotFound = -1

// quoteState tracks whether the current scan position lies inside a quoted
// string literal.
type quoteState struct {
	inString bool
	quote    byte
}

// step advances the state over s[i].
func (q *quoteState) step(s string, i int) {
	c := s[i]
	if c != '"' && c != '\'' {
		return
	}
	if i > 0 && s[i-1] == '\\' {
		return
	}
	if !q.inString {
		q.inString = true
		q.quote = c
	} else if c == q.quote {
		q.inString = false
		q.quote = 0
	}
}

// Balanced reports whether the parentheses in text balance, ignoring any
// parenthesis inside a quoted string. It returns false as soon as a closing
// parenthesis appears without a matching opener.
func Balanced(text string) bool {
	depth := 0
	var qs quoteState
	for i := 0; i < len(text); i++ {
		qs.step(text, i)
		if qs.inString {
			continue
		}
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// MatchingClose returns the index of the ')' that closes the '(' at open,
// honoring quoted strings. It returns NotFound when text ends before the
// parenthesis closes; callers treat that as "not a recognizable call"
// rather than an error.
func MatchingClose(text string, open int) int {
	depth := 0
	var qs quoteState
	for i := open; i < len(text); i++ {
		qs.step(text, i)
		if qs.inString {
			continue
		}
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return NotFound
}

// SplitArgs splits a function call's argument list at top-level commas.
// Commas nested inside parentheses or quoted strings do not separate
// arguments. An empty or all-whitespace list yields no arguments.
func SplitArgs(argsText string) []string {
	if strings.TrimSpace(argsText) == "" {
		return nil
	}

	var args []string
	depth := 0
	start := 0
	var qs quoteState
	for i := 0; i < len(argsText); i++ {
		qs.step(argsText, i)
		if qs.inString {
			continue
		}
		switch argsText[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, argsText[start:i])
				start = i + 1
			}
		}
	}
	if tail := argsText[start:]; tail != "" {
		args = append(args, tail)
	}
	return args
}
