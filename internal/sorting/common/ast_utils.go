package common

import (
	"strings"

	"github.com/evanrichards/tsorder/internal/sorting"

	sitter "github.com/smacker/go-tree-sitter"
)

// Text returns the source of a node.
func Text(node *sitter.Node, content []byte) string {
	return string(content[node.StartByte():node.EndByte()])
}

// NodeSpan returns the byte range of a node.
func NodeSpan(node *sitter.Node) sorting.Span {
	return sorting.Span{Start: int(node.StartByte()), End: int(node.EndByte())}
}

// KeyFromNode tells the engine how a key node names its member: string and
// number literals by value, everything else (identifiers, private names,
// computed names like [Status.ACTIVE]) by their text.
func KeyFromNode(keyNode *sitter.Node) (sorting.KeyKind, sorting.Span) {
	switch keyNode.Type() {
	case "string", "number":
		return sorting.KeyLiteral, NodeSpan(keyNode)
	default:
		return sorting.KeyIdentifier, NodeSpan(keyNode)
	}
}

// ExtractKeyFromNode extracts the key text from an AST key node
func ExtractKeyFromNode(keyNode *sitter.Node, content []byte) string {
	kind, _ := KeyFromNode(keyNode)
	if kind == sorting.KeyLiteral {
		return sorting.LiteralValue(Text(keyNode, content))
	}
	return Text(keyNode, content)
}

// ExtractValueAsString extracts a value node as a string for comparison
func ExtractValueAsString(node *sitter.Node, content []byte) string {
	switch node.Type() {
	case "string", "number", "template_string":
		return sorting.LiteralValue(Text(node, content))
	case "null", "undefined", "true", "false":
		return node.Type()
	default:
		// For complex types, use the raw text
		return strings.TrimSpace(Text(node, content))
	}
}

// ChildOfType returns the first direct child of the given type, named or not.
func ChildOfType(node *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(node.ChildCount()); i++ {
		if child := node.Child(i); child.Type() == typ {
			return child
		}
	}
	return nil
}

// HasChild reports whether node has a direct child of the given type. Keyword
// tokens such as "static" or "readonly" are children too.
func HasChild(node *sitter.Node, typ string) bool {
	return ChildOfType(node, typ) != nil
}

// IsFunction reports whether a value node is a function expression.
func IsFunction(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	switch node.Type() {
	case "arrow_function", "function", "function_expression", "generator_function":
		return true
	}
	return false
}
