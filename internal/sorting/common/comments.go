package common

import (
	"errors"
	"strings"

	"github.com/evanrichards/tsorder/internal/sorting"

	sitter "github.com/smacker/go-tree-sitter"
)

// ErrNoComment is returned when an item has no comment to sort by.
var ErrNoComment = errors.New("no comment found for sorting")

// ExtractCommentText extracts the text content from a comment node, removing comment markers
func ExtractCommentText(commentNode *sitter.Node, content []byte) string {
	if commentNode == nil {
		return ""
	}
	return sorting.CommentText(Text(commentNode, content))
}

// HasDeprecatedAnnotation checks if any of the comment nodes contain @deprecated annotation
func HasDeprecatedAnnotation(nodes []*sitter.Node, content []byte) bool {
	for _, node := range nodes {
		if node != nil && strings.Contains(Text(node, content), "@deprecated") {
			return true
		}
	}
	return false
}

// FindCommentTextForSorting finds the appropriate comment text for sorting.
// It checks the inline comment first, then the closest preceding comment.
func FindCommentTextForSorting(beforeNodes []*sitter.Node, afterNode *sitter.Node, content []byte) (string, error) {
	if text := ExtractCommentText(afterNode, content); text != "" {
		return text, nil
	}
	for i := len(beforeNodes) - 1; i >= 0; i-- {
		if text := ExtractCommentText(beforeNodes[i], content); text != "" {
			return text, nil
		}
	}
	return "", ErrNoComment
}

// Comments converts comment nodes to engine comments.
func Comments(nodes []*sitter.Node, content []byte) []sorting.Comment {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]sorting.Comment, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, sorting.Comment{Span: NodeSpan(n), Text: Text(n, content)})
	}
	return out
}
