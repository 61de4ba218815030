// Package classes sorts class bodies.
package classes

import (
	"github.com/evanrichards/tsorder/internal/config"
	"github.com/evanrichards/tsorder/internal/sorting"
	"github.com/evanrichards/tsorder/internal/sorting/common"
	"github.com/evanrichards/tsorder/internal/sorting/interfaces"

	sitter "github.com/smacker/go-tree-sitter"
)

// ClassSorter handles sorting of class members
type ClassSorter struct {
	node         *sitter.Node
	magicComment *sitter.Node
	magicIndex   int
}

// NewClassSorter creates a new class sorter for a class_body node. magicIndex
// is -1 when the body has no magic comment.
func NewClassSorter(bodyNode, magicComment *sitter.Node, magicIndex int) *ClassSorter {
	return &ClassSorter{
		node:         bodyNode,
		magicComment: magicComment,
		magicIndex:   magicIndex,
	}
}

func (c *ClassSorter) Kind() interfaces.Kind {
	return interfaces.KindClass
}

func (c *ClassSorter) Node() *sitter.Node {
	return c.node
}

func (c *ClassSorter) MagicComment() *sitter.Node {
	return c.magicComment
}

func (c *ClassSorter) Defaults(base config.SortConfig) config.SortConfig {
	return base
}

// Runs extracts the members after the magic comment. A member owns the ";"
// that ends it, so fields and methods can trade places.
func (c *ClassSorter) Runs(content []byte, _ config.SortConfig) ([][]sorting.Member, error) {
	walk := common.Walk{
		From:  c.magicIndex + 1,
		Break: func(n *sitter.Node) bool { return !isClassMember(n) },
	}

	var runs [][]sorting.Member
	for _, siblings := range walk.Siblings(c.node) {
		run := make([]sorting.Member, 0, len(siblings))
		for _, s := range siblings {
			run = append(run, NewClassMember(s, content))
		}
		runs = append(runs, run)
	}
	return runs, nil
}
