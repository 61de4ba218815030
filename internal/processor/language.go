package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// ErrUnsupportedLanguage is returned for files no grammar is registered for.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language selects the grammar a file is parsed with.
type Language int

const (
	TypeScript Language = iota
	TSX
)

func (l Language) String() string {
	if l == TSX {
		return "tsx"
	}
	return "typescript"
}

// LanguageFor picks the grammar from a file extension. JavaScript files are
// parsed with the TSX grammar, which accepts them.
func LanguageFor(path string) (Language, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".mts", ".cts":
		return TypeScript, nil
	case ".tsx", ".js", ".jsx", ".mjs", ".cjs":
		return TSX, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnsupportedLanguage)
	}
}

// Parser pools to avoid recreating parsers
var parserPools = map[Language]*sync.Pool{
	TypeScript: newParserPool(typescript.GetLanguage()),
	TSX:        newParserPool(tsx.GetLanguage()),
}

func newParserPool(lang *sitter.Language) *sync.Pool {
	return &sync.Pool{
		New: func() any {
			parser := sitter.NewParser()
			parser.SetLanguage(lang)
			return parser
		},
	}
}

// Parse parses content with a pooled parser. The caller closes the tree.
//
// Pooled parsers always parse under a background context, since tree-sitter
// keeps a cancellation flag on the parser. ctx is checked before and after.
func Parse(ctx context.Context, lang Language, content []byte) (*sitter.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pool := parserPools[lang]
	parser := pool.Get().(*sitter.Parser)

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", lang, err)
	}
	pool.Put(parser)

	if err := ctx.Err(); err != nil {
		tree.Close()
		return nil, err
	}
	return tree, nil
}
