// Package enums sorts enum bodies.
package enums

import (
	"github.com/evanrichards/tsorder/internal/config"
	"github.com/evanrichards/tsorder/internal/sorting"
	"github.com/evanrichards/tsorder/internal/sorting/common"
	"github.com/evanrichards/tsorder/internal/sorting/interfaces"

	sitter "github.com/smacker/go-tree-sitter"
)

// EnumSorter handles sorting of enum members
type EnumSorter struct {
	node         *sitter.Node
	magicComment *sitter.Node
	magicIndex   int
}

// NewEnumSorter creates a new enum sorter for an enum_body node. magicIndex
// is -1 when the body has no magic comment.
func NewEnumSorter(bodyNode, magicComment *sitter.Node, magicIndex int) *EnumSorter {
	return &EnumSorter{
		node:         bodyNode,
		magicComment: magicComment,
		magicIndex:   magicIndex,
	}
}

func (e *EnumSorter) Kind() interfaces.Kind {
	return interfaces.KindEnum
}

func (e *EnumSorter) Node() *sitter.Node {
	return e.node
}

func (e *EnumSorter) MagicComment() *sitter.Node {
	return e.magicComment
}

func (e *EnumSorter) Defaults(base config.SortConfig) config.SortConfig {
	return base
}

// Runs extracts the enum members after the magic comment.
func (e *EnumSorter) Runs(content []byte, _ config.SortConfig) ([][]sorting.Member, error) {
	walk := common.Walk{
		From:  e.magicIndex + 1,
		Break: func(n *sitter.Node) bool { return !isEnumMember(n) },
	}

	var runs [][]sorting.Member
	for _, siblings := range walk.Siblings(e.node) {
		run := make([]sorting.Member, 0, len(siblings))
		for _, s := range siblings {
			run = append(run, NewEnumMember(s, content))
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func isEnumMember(node *sitter.Node) bool {
	switch node.Type() {
	case "enum_assignment", "property_identifier", "string", "number":
		return true
	}
	return false
}

// NewEnumMember describes an enum member for the engine. Members with an
// initializer carry the "initialized" modifier.
func NewEnumMember(s *common.Sibling, content []byte) sorting.Member {
	m := common.Member(s, content, false)
	m.Selectors = []string{"member"}

	keyNode := s.Elem
	if s.Elem.Type() == "enum_assignment" {
		m.Modifiers = append(m.Modifiers, "initialized")
		name := s.Elem.ChildByFieldName("name")
		if name == nil {
			name = s.Elem.NamedChild(0)
		}
		if name != nil {
			keyNode = name
		}
	}
	m.Key, m.KeySpan = common.KeyFromNode(keyNode)
	return m
}
