package tokenizer

import (
	"fmt"

	"github.com/lerenn/cppcheck-go/pkg/fs"
	"github.com/lerenn/cppcheck-go/pkg/token"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=provider.go -destination=mocks/provider.gen.go -package=mocks

// Provider returns the token stream of a translation unit.
type Provider interface {
	// TokensFor returns the tokens of the file at path.
	TokensFor(path string) (token.Stream, error)
}

type realProvider struct {
	fs fs.FS
}

// NewProvider creates a Provider reading sources through fsys.
func NewProvider(fsys fs.FS) Provider {
	return &realProvider{
		fs: fsys,
	}
}

// TokensFor reads the file at path and tokenizes it.
func (p *realProvider) TokensFor(path string) (token.Stream, error) {
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
	}
	return Tokenize(path, data), nil
}
