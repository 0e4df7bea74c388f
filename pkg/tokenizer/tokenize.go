package tokenizer

import (
	"bytes"
	"text/scanner"

	"github.com/lerenn/cppcheck-go/pkg/token"
)

// operators lists the multi-character operators assembled from adjacent
// punctuation. Shift operators are left split so that nested template
// argument lists keep their closing brackets.
var operators = map[string]struct{}{
	"::": {}, "->": {}, "==": {}, "!=": {}, "<=": {}, ">=": {},
	"&&": {}, "||": {}, "++": {}, "--": {},
	"+=": {}, "-=": {}, "*=": {}, "/=": {}, "%=": {},
	"&=": {}, "|=": {}, "^=": {},
	"..": {}, "...": {},
}

// Tokenize splits C/C++ source text into tokens. Comments are dropped.
// Preprocessor directives are kept, their tokens tagged with the index of
// the directive; line continuations are removed. No macro expansion takes
// place.
func Tokenize(filename string, src []byte) token.Stream {
	var s scanner.Scanner
	s.Init(bytes.NewReader(src))
	s.Filename = filename
	s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats |
		scanner.ScanChars | scanner.ScanStrings | scanner.ScanComments | scanner.SkipComments
	// Malformed literals are tokenized best-effort.
	s.Error = func(*scanner.Scanner, string) {}

	var (
		out           token.Stream
		prevEnd       = -1
		prevLine      = 0
		directives    = 0
		directiveLine = 0
		continued     = false
	)

	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		pos := s.Position
		text := s.TokenText()

		directive := 0
		if directiveLine != 0 {
			if pos.Line == directiveLine || (continued && pos.Line == directiveLine+1) {
				directive = directives
				directiveLine = pos.Line
			} else {
				directiveLine = 0
			}
		}
		if directive == 0 && tok == '#' && pos.Line != prevLine {
			directives++
			directive = directives
			directiveLine = pos.Line
		}
		prevLine = pos.Line

		continued = directive != 0 && text == `\`
		if continued {
			prevEnd = -1
			continue
		}

		kind := kindOf(tok)
		if kind == token.KindPunct && prevEnd == pos.Offset && len(out) > 0 {
			last := &out[len(out)-1]
			if _, ok := operators[last.Str+text]; ok && last.Kind == token.KindPunct && last.Directive == directive {
				last.Str += text
				prevEnd = pos.Offset + len(text)
				continue
			}
		}

		out = append(out, token.Token{Str: text, Kind: kind, Line: pos.Line, Directive: directive})
		prevEnd = pos.Offset + len(text)
	}

	return out
}

func kindOf(tok rune) token.Kind {
	switch tok {
	case scanner.Ident:
		return token.KindName
	case scanner.Int, scanner.Float:
		return token.KindNumber
	case scanner.String, scanner.RawString:
		return token.KindString
	case scanner.Char:
		return token.KindChar
	default:
		return token.KindPunct
	}
}
