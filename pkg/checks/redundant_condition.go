package checks

import (
	"github.com/lerenn/cppcheck-go/pkg/diagnostic"
	"github.com/lerenn/cppcheck-go/pkg/token"
)

// RedundantConditionName is the name of the redundant condition check.
const RedundantConditionName = "redundantCondition"

// RedundantCondition reports a null check guarding nothing but the
// deallocation of the checked pointer.
type RedundantCondition struct{}

// NewRedundantCondition creates a new RedundantCondition check.
func NewRedundantCondition() *RedundantCondition {
	return &RedundantCondition{}
}

// Name returns the check name.
func (c *RedundantCondition) Name() string {
	return RedundantConditionName
}

// Description returns a one-line summary of the check.
func (c *RedundantCondition) Description() string {
	return "null checks before delete or free"
}

// Check reports every redundant deallocation guard in tokens.
func (c *RedundantCondition) Check(file string, tokens token.Stream, r diagnostic.Reporter) {
	tokens = tokens.Code()
	for i, tok := range tokens {
		if !tokens.Match(i, "if", "(", "", ")") {
			continue
		}
		ptr := tokens.Str(i + 2)

		k := i + 4
		braced := tokens.Str(k) == "{"
		if braced {
			k++
		}

		end := deallocation(tokens, k, ptr)
		if end < 0 {
			continue
		}
		if braced {
			if tokens.Str(end) != "}" {
				continue
			}
			end++
		}
		if tokens.Str(end) == "else" {
			continue
		}

		report(r, RedundantConditionName, diagnostic.SeverityStyle, file, tok.Line,
			"Redundant condition. It is safe to deallocate a NULL pointer")
	}
}

// deallocation matches "delete p ;", "delete [ ] p ;" or "free ( p ) ;" at
// index k and returns the index following the statement, or -1.
func deallocation(tokens token.Stream, k int, ptr string) int {
	switch {
	case tokens.Match(k, "delete", ptr, ";"):
		return k + 3
	case tokens.Match(k, "delete", "[", "]", ptr, ";"):
		return k + 5
	case tokens.Match(k, "free", "(", ptr, ")", ";"):
		return k + 5
	}
	return -1
}
