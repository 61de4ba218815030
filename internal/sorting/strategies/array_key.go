package strategies

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/evanrichards/tsorder/internal/sorting/common"
	"github.com/evanrichards/tsorder/internal/sorting/interfaces"

	sitter "github.com/smacker/go-tree-sitter"
)

// ArrayKeyStrategy sorts array elements by a key path: a dotted property path
// for objects ("profile.firstName") or an index for tuples ("1").
type ArrayKeyStrategy struct {
	KeyPath string
}

func (s *ArrayKeyStrategy) ExtractKey(item interfaces.Item, content []byte) (string, error) {
	node := item.Node()

	switch node.Type() {
	case "object":
		return s.extractObjectProperty(node, strings.Split(s.KeyPath, "."), content)
	case "array":
		return s.extractArrayIndex(node, s.KeyPath, content)
	default:
		// For scalars, use the value itself
		return common.ExtractValueAsString(node, content), nil
	}
}

func (s *ArrayKeyStrategy) Name() string {
	return fmt.Sprintf("array-key[%s]", s.KeyPath)
}

func (s *ArrayKeyStrategy) extractObjectProperty(objNode *sitter.Node, keys []string, content []byte) (string, error) {
	current := objNode
	for depth, key := range keys {
		value := findProperty(current, key, content)
		if value == nil {
			return "", fmt.Errorf("key not found: %s", strings.Join(keys[:depth+1], "."))
		}
		if depth == len(keys)-1 {
			return common.ExtractValueAsString(value, content), nil
		}
		if value.Type() != "object" {
			return "", fmt.Errorf("key %s is not an object", strings.Join(keys[:depth+1], "."))
		}
		current = value
	}
	return "", fmt.Errorf("key not found: %s", s.KeyPath)
}

// findProperty returns the value node of the property named key.
func findProperty(objNode *sitter.Node, key string, content []byte) *sitter.Node {
	for i := 0; i < int(objNode.ChildCount()); i++ {
		child := objNode.Child(i)
		switch child.Type() {
		case "pair":
			keyNode := child.ChildByFieldName("key")
			if keyNode != nil && common.ExtractKeyFromNode(keyNode, content) == key {
				return child.ChildByFieldName("value")
			}
		case "shorthand_property_identifier":
			if common.Text(child, content) == key {
				return child
			}
		}
	}
	return nil
}

func (s *ArrayKeyStrategy) extractArrayIndex(arrNode *sitter.Node, indexStr string, content []byte) (string, error) {
	index, err := strconv.Atoi(indexStr)
	if err != nil || index < 0 {
		return "", fmt.Errorf("invalid index: %s", indexStr)
	}

	// Count actual elements (skip punctuation and comments)
	elementCount := 0
	for i := 0; i < int(arrNode.ChildCount()); i++ {
		child := arrNode.Child(i)
		if !child.IsNamed() || child.Type() == "comment" {
			continue
		}
		if elementCount == index {
			return common.ExtractValueAsString(child, content), nil
		}
		elementCount++
	}

	return "", fmt.Errorf("index out of bounds: %d", index)
}
