package classes

import (
	"strings"

	"github.com/evanrichards/tsorder/internal/sorting"
	"github.com/evanrichards/tsorder/internal/sorting/common"

	sitter "github.com/smacker/go-tree-sitter"
)

func isClassMember(node *sitter.Node) bool {
	switch node.Type() {
	case "method_definition", "abstract_method_signature", "method_signature",
		"public_field_definition", "index_signature", "class_static_block":
		return true
	}
	return false
}

// keywordModifiers are keyword children that become modifiers as written.
var keywordModifiers = []string{"static", "abstract", "readonly", "override", "declare", "async"}

// NewClassMember describes a class member for the engine.
func NewClassMember(s *common.Sibling, content []byte) sorting.Member {
	node := s.Elem
	m := common.Member(s, content, true)

	if acc := common.ChildOfType(node, "accessibility_modifier"); acc != nil {
		m.Modifiers = append(m.Modifiers, strings.TrimSpace(common.Text(acc, content)))
	}
	for _, kw := range keywordModifiers {
		if common.HasChild(node, kw) {
			m.Modifiers = append(m.Modifiers, kw)
		}
	}
	if common.HasChild(node, "?") {
		m.Optional = true
		m.Modifiers = append(m.Modifiers, "optional")
	}

	name := node.ChildByFieldName("name")
	if name != nil && name.Type() == "private_property_identifier" && !m.HasModifier("private") {
		m.Modifiers = append(m.Modifiers, "private")
	}
	if node.Type() == "abstract_method_signature" && !m.HasModifier("abstract") {
		m.Modifiers = append(m.Modifiers, "abstract")
	}

	switch node.Type() {
	case "method_definition", "abstract_method_signature", "method_signature":
		m.Selectors = methodSelectors(node, name, content)
	case "public_field_definition":
		switch {
		case common.HasChild(node, "accessor"):
			m.Selectors = []string{"accessor-property"}
		case common.IsFunction(node.ChildByFieldName("value")):
			m.Selectors = []string{"function-property", "property"}
		default:
			m.Selectors = []string{"property"}
		}
	case "index_signature":
		m.Selectors = []string{"index-signature"}
	case "class_static_block":
		m.Selectors = []string{"static-block"}
	}

	switch {
	case name != nil && node.Type() != "index_signature":
		m.Key, m.KeySpan = common.KeyFromNode(name)
	case node.Type() == "index_signature":
		m.Key = sorting.KeyRaw
		m.KeySpan = common.NodeSpan(node)
		if t := node.ChildByFieldName("type"); t != nil {
			span := common.NodeSpan(t)
			m.TypeAnnotation = &span
		}
	default:
		m.Key, m.KeyText = sorting.KeyExplicit, "static"
	}
	return m
}

func methodSelectors(node, name *sitter.Node, content []byte) []string {
	switch {
	case name != nil && common.Text(name, content) == "constructor":
		return []string{"constructor"}
	case common.HasChild(node, "get"):
		return []string{"get-method", "method"}
	case common.HasChild(node, "set"):
		return []string{"set-method", "method"}
	default:
		return []string{"method"}
	}
}
