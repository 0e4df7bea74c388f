package checks

import (
	"github.com/lerenn/cppcheck-go/pkg/diagnostic"
	"github.com/lerenn/cppcheck-go/pkg/token"
)

// DangerousFunctionsName is the name of the dangerous functions check.
const DangerousFunctionsName = "dangerousFunctions"

// DangerousFunctions reports calls to libc functions that cannot bound the
// size of their input.
type DangerousFunctions struct{}

// NewDangerousFunctions creates a new DangerousFunctions check.
func NewDangerousFunctions() *DangerousFunctions {
	return &DangerousFunctions{}
}

// Name returns the check name.
func (c *DangerousFunctions) Name() string {
	return DangerousFunctionsName
}

// Description returns a one-line summary of the check.
func (c *DangerousFunctions) Description() string {
	return "calls to gets and unbounded scanf(\"%s\")"
}

// Check reports every dangerous call in tokens.
func (c *DangerousFunctions) Check(file string, tokens token.Stream, r diagnostic.Reporter) {
	tokens = tokens.Code()
	for i, tok := range tokens {
		if !tok.IsName() || memberAccess(tokens, i) {
			continue
		}

		switch {
		case tokens.Match(i, "gets", "("):
			report(r, DangerousFunctionsName, diagnostic.SeverityWarning, file, tok.Line,
				"Found 'gets'. You should use 'fgets' instead")
		case tokens.Match(i, "scanf", "(", `"%s"`):
			report(r, DangerousFunctionsName, diagnostic.SeverityWarning, file, tok.Line,
				"Found 'scanf'. You should use 'fgets' instead")
		}
	}
}
