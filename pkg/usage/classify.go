package usage

import (
	"github.com/lerenn/cppcheck-go/pkg/token"
)

// Classify returns the scope kind of a function definition from its
// declaration window: the tokens from the previous statement boundary up to
// and including the function name. inClass is true when the definition sits
// directly inside a class, struct, or union body.
func Classify(window []token.Token, inClass bool) ScopeKind {
	n := len(window)
	if n == 0 {
		return ScopeFree
	}

	var isTemplate, isVirtual bool
	for _, tok := range window {
		switch tok.Str {
		case "operator":
			return ScopeOperator
		case "template":
			isTemplate = true
		case "virtual":
			isVirtual = true
		}
	}

	switch {
	case isTemplate:
		return ScopeTemplate
	case isVirtual:
		return ScopeVirtual
	case inClass:
		return ScopeMember
	case n >= 2 && (window[n-2].Str == "::" || window[n-2].Str == "~"):
		// Qualified names are out-of-line members or namespace members;
		// neither can be told apart without name lookup.
		return ScopeMember
	default:
		return ScopeFree
	}
}

// accessLabels are the keywords that open a labelled section of a class body.
var accessLabels = map[string]struct{}{
	"public":    {},
	"protected": {},
	"private":   {},
}

// windowStart returns the index of the first token of the declaration
// statement that contains the token at index name.
func windowStart(toks token.Stream, name int) int {
	i := name
	for i > 0 {
		switch toks.Str(i - 1) {
		case ";", "{", "}":
			return i
		case ":":
			if _, ok := accessLabels[toks.Str(i-2)]; ok {
				return i
			}
		}
		i--
	}
	return 0
}
