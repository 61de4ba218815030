package objects

import (
	"github.com/evanrichards/tsorder/internal/sorting"
	"github.com/evanrichards/tsorder/internal/sorting/common"

	sitter "github.com/smacker/go-tree-sitter"
)

// isProperty reports whether a child of an object literal can be sorted.
// Spread elements and anything unexpected split the object into runs.
func isProperty(node *sitter.Node) bool {
	switch node.Type() {
	case "pair", "shorthand_property_identifier", "method_definition":
		return true
	}
	return false
}

// NewProperty describes an object literal member for the engine.
func NewProperty(s *common.Sibling, content []byte) sorting.Member {
	node := s.Elem
	m := common.Member(s, content, false)

	var keyNode *sitter.Node
	switch node.Type() {
	case "pair":
		keyNode = node.ChildByFieldName("key")
		if common.IsFunction(node.ChildByFieldName("value")) {
			m.Selectors = []string{"method", "member"}
		} else {
			m.Selectors = []string{"property", "member"}
		}
	case "shorthand_property_identifier":
		keyNode = node
		m.Selectors = []string{"property", "member"}
	case "method_definition":
		keyNode = node.ChildByFieldName("name")
		m.Selectors = methodSelectors(node)
		if common.HasChild(node, "async") {
			m.Modifiers = append(m.Modifiers, "async")
		}
	}

	if keyNode != nil {
		m.Key, m.KeySpan = common.KeyFromNode(keyNode)
	} else {
		m.Key, m.KeyText = sorting.KeyExplicit, common.Text(node, content)
	}
	return m
}

func methodSelectors(node *sitter.Node) []string {
	switch {
	case common.HasChild(node, "get"):
		return []string{"get-method", "method", "member"}
	case common.HasChild(node, "set"):
		return []string{"set-method", "method", "member"}
	default:
		return []string{"method", "member"}
	}
}
