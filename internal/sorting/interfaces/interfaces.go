package interfaces

import (
	"fmt"
	"strings"

	"github.com/evanrichards/tsorder/internal/config"
	"github.com/evanrichards/tsorder/internal/sorting"

	sitter "github.com/smacker/go-tree-sitter"
)

// Kind names a construct whose members can be kept sorted.
type Kind string

const (
	KindObject    Kind = "object"
	KindArray     Kind = "array"
	KindInterface Kind = "interface"
	KindClass     Kind = "class"
	KindEnum      Kind = "enum"

	// KindParameters reorders call signatures, so "all" leaves it out.
	KindParameters Kind = "parameters"
)

// AllKinds lists the constructs "all" selects.
func AllKinds() []Kind {
	return []Kind{KindObject, KindArray, KindInterface, KindClass, KindEnum}
}

func knownKind(name string) (Kind, bool) {
	for _, k := range append(AllKinds(), KindParameters) {
		if string(k) == name {
			return k, true
		}
	}
	return "", false
}

// ParseKinds converts user supplied kind names, rejecting unknown ones.
func ParseKinds(names []string) ([]Kind, error) {
	var out []Kind
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if name == "all" {
			return AllKinds(), nil
		}
		k, ok := knownKind(name)
		if !ok {
			return nil, fmt.Errorf("unknown kind %q", name)
		}
		out = append(out, k)
	}
	return out, nil
}

// Item is one sibling of a container as seen by key strategies.
type Item interface {
	// Node returns the underlying AST node
	Node() *sitter.Node

	// LeadingComments returns comments that appear before this item
	LeadingComments() []*sitter.Node

	// TrailingComment returns the inline comment after this item, if any
	TrailingComment() *sitter.Node
}

// KeyStrategy computes the sort key of an item when its own name is not what
// the user wants to sort by.
type KeyStrategy interface {
	// ExtractKey extracts the sorting key from an item
	ExtractKey(item Item, content []byte) (string, error)

	// Name returns the strategy name for debugging
	Name() string
}

// Container is a syntax node whose members are kept sorted.
type Container interface {
	// Kind returns the construct this container is.
	Kind() Kind

	// Node returns the container node itself.
	Node() *sitter.Node

	// MagicComment returns the keep-sorted comment, or nil when the container
	// was selected by kind.
	MagicComment() *sitter.Node

	// Defaults adjusts the project defaults before comment options apply.
	Defaults(base config.SortConfig) config.SortConfig

	// Runs returns the members after the magic comment, split into runs that
	// are sorted independently of each other.
	Runs(content []byte, cfg config.SortConfig) ([][]sorting.Member, error)
}
