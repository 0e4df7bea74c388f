// Package token provides the token model consumed by the analysis core.
package token

import "slices"

// Kind classifies a token.
type Kind int

// Token kinds.
const (
	KindPunct Kind = iota
	KindName
	KindNumber
	KindString
	KindChar
)

// Token is one lexical element of a translation unit.
type Token struct {
	Str  string
	Kind Kind
	Line int
	// Directive is the 1-based index of the preprocessor directive holding
	// the token, or 0 for code.
	Directive int
}

// IsName reports whether the token is an identifier or keyword.
func (t Token) IsName() bool {
	return t.Kind == KindName
}

// Stream is the token sequence of one translation unit.
type Stream []Token

// At returns the token at index i, or the zero Token when i is out of range.
func (s Stream) At(i int) Token {
	if i < 0 || i >= len(s) {
		return Token{}
	}
	return s[i]
}

// Str returns the text of the token at index i, or "" when out of range.
func (s Stream) Str(i int) string {
	return s.At(i).Str
}

// Match reports whether the tokens starting at index i equal the given texts.
// An empty pattern element matches any identifier.
func (s Stream) Match(i int, pattern ...string) bool {
	for k, p := range pattern {
		tok := s.At(i + k)
		if tok.Str == "" {
			return false
		}
		if p == "" {
			if !tok.IsName() {
				return false
			}
			continue
		}
		if tok.Str != p {
			return false
		}
	}
	return true
}

// Code returns the tokens outside preprocessor directives.
func (s Stream) Code() Stream {
	if !slices.ContainsFunc(s, isDirective) {
		return s
	}
	return slices.DeleteFunc(slices.Clone(s), isDirective)
}

// Directives returns the tokens of every preprocessor directive, one stream
// per directive, in source order. Each stream starts with its "#".
func (s Stream) Directives() []Stream {
	var (
		out     []Stream
		current int
	)
	for _, tok := range s {
		if tok.Directive == 0 {
			continue
		}
		if tok.Directive != current {
			out = append(out, nil)
			current = tok.Directive
		}
		out[len(out)-1] = append(out[len(out)-1], tok)
	}
	return out
}

func isDirective(t Token) bool {
	return t.Directive != 0
}

// MatchingParen returns the index of the ")" closing the "(" at index open,
// or -1 when the parentheses are unbalanced.
func (s Stream) MatchingParen(open int) int {
	if s.Str(open) != "(" {
		return -1
	}
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i].Str {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				return i
			}
		case "{", "}", ";":
			// Parameter lists never hold a statement boundary.
			return -1
		}
	}
	return -1
}
