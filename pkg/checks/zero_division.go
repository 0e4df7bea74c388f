package checks

import (
	"github.com/lerenn/cppcheck-go/pkg/diagnostic"
	"github.com/lerenn/cppcheck-go/pkg/token"
)

// ZeroDivisionName is the name of the division by zero check.
const ZeroDivisionName = "zeroDivision"

// ZeroDivision reports integer division or modulo by a literal zero.
type ZeroDivision struct{}

// NewZeroDivision creates a new ZeroDivision check.
func NewZeroDivision() *ZeroDivision {
	return &ZeroDivision{}
}

// Name returns the check name.
func (c *ZeroDivision) Name() string {
	return ZeroDivisionName
}

// Description returns a one-line summary of the check.
func (c *ZeroDivision) Description() string {
	return "division or modulo by a literal zero"
}

// Check reports every division by zero in tokens.
func (c *ZeroDivision) Check(file string, tokens token.Stream, r diagnostic.Reporter) {
	tokens = tokens.Code()
	for i, tok := range tokens {
		switch tok.Str {
		case "/", "%", "/=", "%=":
		default:
			continue
		}
		if next := tokens.At(i + 1); next.Kind == token.KindNumber && isZero(next.Str) {
			report(r, ZeroDivisionName, diagnostic.SeverityError, file, tok.Line, "Division by zero")
		}
	}
}

// isZero reports whether lit is an integer literal of value zero, with or
// without a suffix.
func isZero(lit string) bool {
	switch lit {
	case "0", "0u", "0U", "0l", "0L", "0ul", "0UL", "0ll", "0LL", "0x0", "0X0":
		return true
	}
	return false
}
