package interfacebody

import (
	"github.com/evanrichards/tsorder/internal/sorting"
	"github.com/evanrichards/tsorder/internal/sorting/common"

	sitter "github.com/smacker/go-tree-sitter"
)

func isSignature(node *sitter.Node) bool {
	switch node.Type() {
	case "property_signature", "method_signature", "index_signature",
		"call_signature", "construct_signature":
		return true
	}
	return false
}

// NewSignature describes an interface member for the engine. Signatures
// without a name are keyed by their source up to the type annotation, e.g.
// "[key: string]" or "(event: Event)".
func NewSignature(s *common.Sibling, content []byte) sorting.Member {
	node := s.Elem
	m := common.Member(s, content, false)

	switch node.Type() {
	case "property_signature":
		m.Selectors = []string{"property", "member"}
	case "method_signature":
		m.Selectors = []string{"method", "member"}
	case "index_signature":
		m.Selectors = []string{"index-signature", "member"}
	case "call_signature":
		m.Selectors = []string{"call-signature", "member"}
	case "construct_signature":
		m.Selectors = []string{"construct-signature", "member"}
	}

	if common.HasChild(node, "readonly") {
		m.Modifiers = append(m.Modifiers, "readonly")
	}
	m.Optional = common.HasChild(node, "?")
	if m.Optional {
		m.Modifiers = append(m.Modifiers, "optional")
	} else {
		m.Modifiers = append(m.Modifiers, "required")
	}

	if name := node.ChildByFieldName("name"); name != nil && node.Type() != "index_signature" {
		m.Key, m.KeySpan = common.KeyFromNode(name)
		return m
	}

	m.Key = sorting.KeyRaw
	m.KeySpan = common.NodeSpan(node)
	if t := node.ChildByFieldName("type"); t != nil {
		span := common.NodeSpan(t)
		m.TypeAnnotation = &span
	}
	if rt := node.ChildByFieldName("return_type"); rt != nil {
		span := common.NodeSpan(rt)
		m.ReturnType = &span
	}
	return m
}
