// Package parameters sorts the parameter lists of functions, methods and
// constructors.
package parameters

import (
	"strings"

	"github.com/evanrichards/tsorder/internal/config"
	"github.com/evanrichards/tsorder/internal/sorting"
	"github.com/evanrichards/tsorder/internal/sorting/common"
	"github.com/evanrichards/tsorder/internal/sorting/interfaces"

	sitter "github.com/smacker/go-tree-sitter"
)

// ParameterSorter handles sorting of formal parameters
type ParameterSorter struct {
	node         *sitter.Node
	magicComment *sitter.Node
	magicIndex   int
}

// NewParameterSorter creates a sorter for a formal_parameters node.
// magicIndex is -1 when the list has no magic comment.
func NewParameterSorter(paramsNode, magicComment *sitter.Node, magicIndex int) *ParameterSorter {
	return &ParameterSorter{
		node:         paramsNode,
		magicComment: magicComment,
		magicIndex:   magicIndex,
	}
}

func (p *ParameterSorter) Kind() interfaces.Kind {
	return interfaces.KindParameters
}

func (p *ParameterSorter) Node() *sitter.Node {
	return p.node
}

func (p *ParameterSorter) MagicComment() *sitter.Node {
	return p.magicComment
}

func (p *ParameterSorter) Defaults(base config.SortConfig) config.SortConfig {
	return base
}

// Runs extracts the parameters after the magic comment. Rest parameters and
// "this" parameters keep their position.
func (p *ParameterSorter) Runs(content []byte, _ config.SortConfig) ([][]sorting.Member, error) {
	walk := common.Walk{
		From:  p.magicIndex + 1,
		Break: func(n *sitter.Node) bool { return !isParameter(n) },
	}

	var runs [][]sorting.Member
	for _, siblings := range walk.Siblings(p.node) {
		run := make([]sorting.Member, 0, len(siblings))
		for _, s := range siblings {
			run = append(run, NewParameter(s, content))
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func isParameter(node *sitter.Node) bool {
	switch node.Type() {
	case "required_parameter", "optional_parameter":
	default:
		return false
	}
	pattern := node.ChildByFieldName("pattern")
	if pattern == nil {
		return false
	}
	switch pattern.Type() {
	case "rest_pattern", "this":
		return false
	}
	return true
}

// NewParameter describes a formal parameter for the engine. Destructured
// parameters are named by their pattern source.
func NewParameter(s *common.Sibling, content []byte) sorting.Member {
	node := s.Elem
	m := common.Member(s, content, false)
	m.Selectors = []string{"parameter"}

	if acc := common.ChildOfType(node, "accessibility_modifier"); acc != nil {
		m.Modifiers = append(m.Modifiers, strings.TrimSpace(common.Text(acc, content)))
	}
	if common.HasChild(node, "override_modifier") {
		m.Modifiers = append(m.Modifiers, "override")
	}
	if common.HasChild(node, "readonly") {
		m.Modifiers = append(m.Modifiers, "readonly")
	}
	if node.Type() == "optional_parameter" {
		m.Optional = true
		m.Modifiers = append(m.Modifiers, "optional")
	} else {
		m.Modifiers = append(m.Modifiers, "required")
	}
	if node.ChildByFieldName("value") != nil {
		m.Modifiers = append(m.Modifiers, "initialized")
	}

	pattern := node.ChildByFieldName("pattern")
	if pattern.Type() == "identifier" {
		m.Key, m.KeySpan = sorting.KeyIdentifier, common.NodeSpan(pattern)
	} else {
		m.Key, m.KeySpan = sorting.KeyRaw, common.NodeSpan(pattern)
	}
	return m
}
