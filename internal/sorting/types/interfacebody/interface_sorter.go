// Package interfacebody sorts the members of interface bodies and type literals.
package interfacebody

import (
	"github.com/evanrichards/tsorder/internal/config"
	"github.com/evanrichards/tsorder/internal/sorting"
	"github.com/evanrichards/tsorder/internal/sorting/common"
	"github.com/evanrichards/tsorder/internal/sorting/interfaces"

	sitter "github.com/smacker/go-tree-sitter"
)

// InterfaceSorter handles sorting of interface and type literal members
type InterfaceSorter struct {
	node         *sitter.Node
	magicComment *sitter.Node
	magicIndex   int
}

// NewInterfaceSorter creates a new interface sorter. magicIndex is -1 when
// the body has no magic comment.
func NewInterfaceSorter(bodyNode, magicComment *sitter.Node, magicIndex int) *InterfaceSorter {
	return &InterfaceSorter{
		node:         bodyNode,
		magicComment: magicComment,
		magicIndex:   magicIndex,
	}
}

func (s *InterfaceSorter) Kind() interfaces.Kind {
	return interfaces.KindInterface
}

func (s *InterfaceSorter) Node() *sitter.Node {
	return s.node
}

func (s *InterfaceSorter) MagicComment() *sitter.Node {
	return s.magicComment
}

func (s *InterfaceSorter) Defaults(base config.SortConfig) config.SortConfig {
	return base
}

// Runs extracts the members after the magic comment. Separators stay in
// place, so members ending with ";" and "," can be mixed.
func (s *InterfaceSorter) Runs(content []byte, _ config.SortConfig) ([][]sorting.Member, error) {
	walk := common.Walk{
		From:  s.magicIndex + 1,
		Break: func(n *sitter.Node) bool { return !isSignature(n) },
	}

	var runs [][]sorting.Member
	for _, siblings := range walk.Siblings(s.node) {
		run := make([]sorting.Member, 0, len(siblings))
		for _, sib := range siblings {
			run = append(run, NewSignature(sib, content))
		}
		runs = append(runs, run)
	}
	return runs, nil
}
