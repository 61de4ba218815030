package objects

import (
	"github.com/evanrichards/tsorder/internal/config"
	"github.com/evanrichards/tsorder/internal/sorting"
	"github.com/evanrichards/tsorder/internal/sorting/common"
	"github.com/evanrichards/tsorder/internal/sorting/interfaces"
	"github.com/evanrichards/tsorder/internal/sorting/strategies"

	sitter "github.com/smacker/go-tree-sitter"
)

// ObjectSorter handles sorting of object literal members
type ObjectSorter struct {
	node         *sitter.Node
	magicComment *sitter.Node
	magicIndex   int
}

// NewObjectSorter creates a new object sorter. magicIndex is -1 when the
// object has no magic comment.
func NewObjectSorter(objectNode, magicComment *sitter.Node, magicIndex int) *ObjectSorter {
	return &ObjectSorter{
		node:         objectNode,
		magicComment: magicComment,
		magicIndex:   magicIndex,
	}
}

func (o *ObjectSorter) Kind() interfaces.Kind {
	return interfaces.KindObject
}

func (o *ObjectSorter) Node() *sitter.Node {
	return o.node
}

func (o *ObjectSorter) MagicComment() *sitter.Node {
	return o.magicComment
}

func (o *ObjectSorter) Defaults(base config.SortConfig) config.SortConfig {
	return base
}

// Runs extracts the properties after the magic comment. Properties never move
// across a spread element, so spreads split the object into runs.
func (o *ObjectSorter) Runs(content []byte, cfg config.SortConfig) ([][]sorting.Member, error) {
	walk := common.Walk{
		From:  o.magicIndex + 1,
		Break: func(n *sitter.Node) bool { return !isProperty(n) },
	}
	// Properties are named by their keys; key paths only apply to arrays.
	var strategy interfaces.KeyStrategy
	if cfg.SortByComment {
		strategy = &strategies.CommentContentStrategy{}
	}

	var runs [][]sorting.Member
	for _, siblings := range walk.Siblings(o.node) {
		run := make([]sorting.Member, 0, len(siblings))
		for _, s := range siblings {
			m := NewProperty(s, content)
			if strategy != nil {
				strategies.ApplyExplicitKey(&m, strategy, s, content)
			}
			run = append(run, m)
		}
		runs = append(runs, run)
	}
	return runs, nil
}
