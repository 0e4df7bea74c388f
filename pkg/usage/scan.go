package usage

import (
	"strings"

	"github.com/lerenn/cppcheck-go/pkg/token"
)

// keywords can never name a function and never count as a function use.
var keywords = map[string]struct{}{
	"if": {}, "else": {}, "for": {}, "while": {}, "do": {}, "switch": {}, "case": {},
	"default": {}, "return": {}, "break": {}, "continue": {}, "goto": {},
	"sizeof": {}, "alignof": {}, "decltype": {}, "typeid": {}, "noexcept": {},
	"static_assert": {}, "new": {}, "delete": {}, "throw": {}, "catch": {}, "try": {},
	"static_cast": {}, "dynamic_cast": {}, "const_cast": {}, "reinterpret_cast": {},
	"defined": {}, "__attribute__": {}, "__declspec": {}, "asm": {}, "__asm__": {},
	"co_return": {}, "co_await": {}, "co_yield": {},
}

func isKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// trailingQualifiers may follow the parameter list of a function declaration.
var trailingQualifiers = map[string]struct{}{
	"const": {}, "volatile": {}, "override": {}, "final": {}, "&": {}, "&&": {},
}

// referencePrev and referenceNext bracket a function name used as a value,
// e.g. a callback passed by name, a dispatch table entry, a ternary branch
// or a cast operand.
var (
	referencePrev = map[string]struct{}{
		";": {}, "{": {}, "}": {}, ".": {}, ",": {}, "(": {}, ")": {}, "[": {},
		"=": {}, "+": {}, "-": {}, "/": {}, "&": {}, "|": {}, "!": {}, "?": {}, ":": {},
		"return": {},
	}
	referenceNext = map[string]struct{}{"(": {}, ")": {}, ",": {}, ";": {}, ":": {}, "}": {}}
)

// declaration is a function-like declaration found in a token stream.
type declaration struct {
	index   int // index of the name token
	name    string
	line    int
	kind    ScopeKind
	defined bool
	body    int // index of the "{" opening the body when defined
}

type scope int

const (
	scopeNamespace scope = iota
	scopeClass
	scopeBlock
)

// ScanFile runs the declare and use phases over one translation unit and
// returns the partial registry of its definitions and references. Macro
// bodies take part in the use phase only.
func ScanFile(file string, toks token.Stream) *Registry {
	reg := NewRegistry()
	code := toks.Code()

	decls := scanDeclarations(code)
	declared := make(map[int]struct{}, len(decls))
	for _, d := range decls {
		declared[d.index] = struct{}{}
		if d.defined {
			reg.Declare(Symbol{Name: d.name, File: file, Line: d.line, Kind: d.kind})
		}
	}

	scanUses(reg, code, declared)
	for _, body := range macroBodies(toks) {
		scanUses(reg, body, nil)
	}

	return reg
}

// scanUses records every use in toks, skipping the declared indexes.
func scanUses(reg *Registry, toks token.Stream, declared map[int]struct{}) {
	for i, tok := range toks {
		if !tok.IsName() || isKeyword(tok.Str) {
			continue
		}
		if _, ok := declared[i]; ok {
			continue
		}
		if isUse(toks, i) {
			reg.Use(tok.Str, 1)
		}
	}
}

// macroBodies returns the replacement lists of the #define directives of
// toks, each enclosed in ";" so that a lone function name counts as a use.
func macroBodies(toks token.Stream) []token.Stream {
	var bodies []token.Stream
	for _, d := range toks.Directives() {
		if !d.Match(0, "#", "define", "") || len(d) == 3 {
			continue
		}
		body := make(token.Stream, 0, len(d)-1)
		body = append(body, token.Token{Str: ";", Line: d[0].Line})
		body = append(body, d[3:]...)
		body = append(body, token.Token{Str: ";", Line: d[len(d)-1].Line})
		bodies = append(bodies, body)
	}
	return bodies
}

// isUse reports whether the name at index i is called or referenced by value.
func isUse(toks token.Stream, i int) bool {
	next := toks.Str(i + 1)
	if next == "(" {
		return true
	}
	_, prevOK := referencePrev[toks.Str(i-1)]
	_, nextOK := referenceNext[next]
	return prevOK && nextOK
}

// scanDeclarations finds function definitions and prototypes at namespace
// and class scope. Function bodies and other blocks are skipped.
func scanDeclarations(toks token.Stream) []declaration {
	var (
		decls []declaration
		stack []scope
		body  = -1
	)
	current := func() scope {
		if len(stack) == 0 {
			return scopeNamespace
		}
		return stack[len(stack)-1]
	}

	for i := 0; i < len(toks); {
		switch toks[i].Str {
		case "{":
			if i == body {
				stack = append(stack, scopeBlock)
			} else {
				stack = append(stack, braceScope(toks, i))
			}
			i++
			continue
		case "}":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			i++
			continue
		}

		sc := current()
		if sc == scopeBlock {
			i++
			continue
		}

		d, next, ok := matchDeclaration(toks, i, sc == scopeClass)
		if !ok {
			i++
			continue
		}
		decls = append(decls, d)
		if d.defined {
			body = d.body
		}
		i = next
	}

	return decls
}

// braceScope classifies the block opened by the "{" at index open.
func braceScope(toks token.Stream, open int) scope {
	start := windowStart(toks, open)
	var isClass, hasParen, hasAssign bool
	for i := start; i < open; i++ {
		switch toks[i].Str {
		case "namespace":
			return scopeNamespace
		case "extern":
			if toks.At(i+1).Kind == token.KindString {
				return scopeNamespace
			}
		case "enum":
			return scopeBlock
		case "class", "struct", "union":
			isClass = true
		case "(":
			hasParen = true
		case "=":
			hasAssign = true
		}
	}
	if isClass && !hasParen && !hasAssign {
		return scopeClass
	}
	return scopeBlock
}

// matchDeclaration matches a function declaration whose name starts at index
// i. It returns the declaration and the index scanning resumes at.
func matchDeclaration(toks token.Stream, i int, inClass bool) (declaration, int, bool) {
	if i == 0 {
		return declaration{}, 0, false
	}

	name, open, ok := functionName(toks, i)
	if !ok {
		return declaration{}, 0, false
	}
	if toks[i].Str != "operator" && !validPrev(toks.At(i-1)) {
		return declaration{}, 0, false
	}

	closeParen := toks.MatchingParen(open)
	if closeParen < 0 {
		return declaration{}, 0, false
	}
	k := skipQualifiers(toks, closeParen+1)

	d := declaration{
		index: i,
		name:  name,
		line:  toks[i].Line,
		kind:  Classify(toks[windowStart(toks, i):i+1], inClass),
	}

	switch toks.Str(k) {
	case "{":
		d.defined = true
		d.body = k
		return d, k, true
	case ":":
		// Constructor initializer list.
		if d.kind == ScopeFree {
			return declaration{}, 0, false
		}
		b := skipInitializers(toks, k+1)
		if b < 0 {
			return declaration{}, 0, false
		}
		d.defined = true
		d.body = b
		return d, b, true
	case ";":
		return d, k + 1, true
	case "=":
		// Pure virtual, defaulted and deleted functions.
		switch toks.Str(k + 1) {
		case "0", "default", "delete":
			if toks.Str(k+2) == ";" {
				return d, k + 3, true
			}
		}
	}
	return declaration{}, 0, false
}

// functionName returns the function name starting at index i and the index
// of the "(" opening its parameter list.
func functionName(toks token.Stream, i int) (string, int, bool) {
	tok := toks[i]
	if tok.Str == "operator" {
		return operatorName(toks, i)
	}
	if !tok.IsName() || isKeyword(tok.Str) || toks.Str(i+1) != "(" {
		return "", 0, false
	}
	return tok.Str, i + 1, true
}

// operatorName assembles the name of an operator function, e.g. "operator==",
// "operator()" or "operator new[]".
func operatorName(toks token.Stream, i int) (string, int, bool) {
	var b strings.Builder
	b.WriteString("operator")

	j := i + 1
	if toks.Match(j, "(", ")") {
		b.WriteString("()")
		j += 2
	}
	for ; j < len(toks) && j <= i+4; j++ {
		tok := toks[j]
		if tok.Str == "(" {
			if b.Len() == len("operator") {
				return "", 0, false
			}
			return b.String(), j, true
		}
		if tok.Str == ";" || tok.Str == "{" || tok.Str == "}" {
			break
		}
		if tok.IsName() {
			b.WriteString(" ")
		}
		b.WriteString(tok.Str)
	}
	return "", 0, false
}

// validPrev reports whether tok may directly precede a function name in a
// declaration: a return type, a qualifier, or a declarator punctuator.
func validPrev(tok token.Token) bool {
	if tok.IsName() {
		return !isKeyword(tok.Str)
	}
	switch tok.Str {
	case "*", "&", "&&", "::", "~", ">":
		return true
	}
	return false
}

// skipQualifiers returns the index of the first token after the trailing
// qualifiers of a parameter list ending before index k.
func skipQualifiers(toks token.Stream, k int) int {
	for k < len(toks) {
		s := toks[k].Str
		if _, ok := trailingQualifiers[s]; ok {
			k++
			continue
		}
		switch s {
		case "noexcept", "throw":
			k++
			if toks.Str(k) == "(" {
				c := toks.MatchingParen(k)
				if c < 0 {
					return len(toks)
				}
				k = c + 1
			}
			continue
		case "->":
			// Trailing return type runs up to the body or the terminator.
			for k < len(toks) && toks[k].Str != "{" && toks[k].Str != ";" && toks[k].Str != "=" {
				k++
			}
			return k
		}
		return k
	}
	return k
}

// skipInitializers skips a constructor initializer list starting at index k
// and returns the index of the "{" opening the constructor body, or -1.
func skipInitializers(toks token.Stream, k int) int {
	for k < len(toks) {
		// Member or base name, possibly qualified or templated.
		for k < len(toks) && toks[k].Str != "(" && toks[k].Str != "{" {
			switch toks[k].Str {
			case ";", "}":
				return -1
			}
			k++
		}
		if k >= len(toks) {
			return -1
		}
		if toks[k].Str == "(" {
			c := toks.MatchingParen(k)
			if c < 0 {
				return -1
			}
			k = c + 1
		} else {
			c := matchingBrace(toks, k)
			if c < 0 {
				return -1
			}
			k = c + 1
		}

		switch toks.Str(k) {
		case ",":
			k++
		case "{":
			return k
		default:
			return -1
		}
	}
	return -1
}

func matchingBrace(toks token.Stream, open int) int {
	depth := 0
	for i := open; i < len(toks); i++ {
		switch toks[i].Str {
		case "{":
			depth++
		case "}":
			depth--
			if depth == 0 {
				return i
			}
		case ";":
			return -1
		}
	}
	return -1
}
