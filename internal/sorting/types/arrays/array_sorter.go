package arrays

import (
	"github.com/evanrichards/tsorder/internal/config"
	"github.com/evanrichards/tsorder/internal/sorting"
	"github.com/evanrichards/tsorder/internal/sorting/common"
	"github.com/evanrichards/tsorder/internal/sorting/interfaces"
	"github.com/evanrichards/tsorder/internal/sorting/strategies"

	sitter "github.com/smacker/go-tree-sitter"
)

// ArraySorter handles sorting of array elements
type ArraySorter struct {
	node         *sitter.Node
	magicComment *sitter.Node
	magicIndex   int
}

// NewArraySorter creates a new array sorter. magicIndex is -1 when the array
// has no magic comment.
func NewArraySorter(arrayNode, magicComment *sitter.Node, magicIndex int) *ArraySorter {
	return &ArraySorter{
		node:         arrayNode,
		magicComment: magicComment,
		magicIndex:   magicIndex,
	}
}

func (a *ArraySorter) Kind() interfaces.Kind {
	return interfaces.KindArray
}

func (a *ArraySorter) Node() *sitter.Node {
	return a.node
}

func (a *ArraySorter) MagicComment() *sitter.Node {
	return a.magicComment
}

// Defaults compares numbers in array values by magnitude unless another
// sort type was configured.
func (a *ArraySorter) Defaults(base config.SortConfig) config.SortConfig {
	if base.Type == config.TypeAlphabetical {
		base.Type = config.TypeNatural
	}
	return base
}

// Runs extracts the elements after the magic comment as a single run.
func (a *ArraySorter) Runs(content []byte, cfg config.SortConfig) ([][]sorting.Member, error) {
	walk := common.Walk{From: a.magicIndex + 1}
	strategy := strategies.NewFactory().CreateStrategy(cfg)

	var runs [][]sorting.Member
	for _, siblings := range walk.Siblings(a.node) {
		run := make([]sorting.Member, 0, len(siblings))
		for _, s := range siblings {
			run = append(run, NewElement(s, strategy, content))
		}
		runs = append(runs, run)
	}
	return runs, nil
}
