package parser

import (
	"regexp"

	"github.com/evanrichards/tsorder/internal/config"
	"github.com/evanrichards/tsorder/internal/sorting/interfaces"
	"github.com/evanrichards/tsorder/internal/sorting/types/arrays"
	"github.com/evanrichards/tsorder/internal/sorting/types/classes"
	"github.com/evanrichards/tsorder/internal/sorting/types/enums"
	"github.com/evanrichards/tsorder/internal/sorting/types/interfacebody"
	"github.com/evanrichards/tsorder/internal/sorting/types/objects"
	"github.com/evanrichards/tsorder/internal/sorting/types/parameters"

	sitter "github.com/smacker/go-tree-sitter"
)

var directiveRegex = regexp.MustCompile(`tsorder:\s*keep-sorted\b`)

// HasDirective is a cheap pre-check for files that cannot contain a magic
// comment.
func HasDirective(content []byte) bool {
	return directiveRegex.Match(content)
}

// ContainerKind maps a node type to the construct it sorts.
func ContainerKind(node *sitter.Node) (interfaces.Kind, bool) {
	switch node.Type() {
	case "object":
		return interfaces.KindObject, true
	case "array":
		return interfaces.KindArray, true
	case "interface_body", "object_type":
		return interfaces.KindInterface, true
	case "class_body":
		return interfaces.KindClass, true
	case "enum_body":
		return interfaces.KindEnum, true
	case "formal_parameters":
		return interfaces.KindParameters, true
	}
	return "", false
}

// FindContainers finds all containers holding a magic comment, plus every
// container of the given kinds, in document order.
func FindContainers(root *sitter.Node, content []byte, kinds []interfaces.Kind) []interfaces.Container {
	enabled := make(map[interfaces.Kind]bool, len(kinds))
	for _, k := range kinds {
		enabled[k] = true
	}

	var results []interfaces.Container

	var traverse func(*sitter.Node)
	traverse = func(n *sitter.Node) {
		if kind, ok := ContainerKind(n); ok {
			if index, comment := findMagicComment(n, content); comment != nil {
				results = append(results, NewContainer(kind, n, comment, index))
			} else if enabled[kind] {
				results = append(results, NewContainer(kind, n, nil, -1))
			}
		}

		for i := 0; i < int(n.ChildCount()); i++ {
			traverse(n.Child(i))
		}
	}

	traverse(root)
	return results
}

// NewContainer wraps a container node in the adapter for its kind.
func NewContainer(kind interfaces.Kind, node, magicComment *sitter.Node, magicIndex int) interfaces.Container {
	switch kind {
	case interfaces.KindArray:
		return arrays.NewArraySorter(node, magicComment, magicIndex)
	case interfaces.KindInterface:
		return interfacebody.NewInterfaceSorter(node, magicComment, magicIndex)
	case interfaces.KindClass:
		return classes.NewClassSorter(node, magicComment, magicIndex)
	case interfaces.KindEnum:
		return enums.NewEnumSorter(node, magicComment, magicIndex)
	case interfaces.KindParameters:
		return parameters.NewParameterSorter(node, magicComment, magicIndex)
	default:
		return objects.NewObjectSorter(node, magicComment, magicIndex)
	}
}

// findMagicComment returns the first child comment carrying the directive.
func findMagicComment(n *sitter.Node, content []byte) (int, *sitter.Node) {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.Type() != "comment" {
			continue
		}
		if config.IsMagicComment(content[child.StartByte():child.EndByte()]) {
			return i, child
		}
	}
	return -1, nil
}
